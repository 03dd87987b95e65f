package colour

import (
	"strings"
	"testing"
)

func TestColourPreview(t *testing.T) {
	got := ColourPreview(RGB{255, 87, 51}, 4)
	if !strings.HasPrefix(got, "\033[48;2;255;87;51m") {
		t.Errorf("preview missing background escape: %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Errorf("preview missing reset: %q", got)
	}
	if !strings.Contains(got, "    ") {
		t.Errorf("preview missing 4-wide block: %q", got)
	}
}

func TestColourPreviewWithTextContrast(t *testing.T) {
	// Light backgrounds get black text, dark backgrounds white text.
	light := ColourPreviewWithText(RGB{240, 240, 240}, "50", 8)
	if !strings.Contains(light, ansiFgPrefix+"0;0;0"+ansiSuffix) {
		t.Errorf("light background should use black text: %q", light)
	}

	dark := ColourPreviewWithText(RGB{10, 10, 40}, "900", 8)
	if !strings.Contains(dark, ansiFgPrefix+"255;255;255"+ansiSuffix) {
		t.Errorf("dark background should use white text: %q", dark)
	}
}

func TestColourPreviewWithTextTruncates(t *testing.T) {
	got := ColourPreviewWithText(RGB{0, 0, 0}, "much too long for the block", 6)
	if !strings.Contains(got, "much t") {
		t.Errorf("overlong text should truncate to width: %q", got)
	}
}
