package export

import (
	"fmt"
	"strings"
	"testing"

	"github.com/greghuntoon-figma/color-utils/internal/colour"
)

func testPalette(t *testing.T) colour.Palette {
	t.Helper()
	p, err := colour.GeneratePalette("#3B82F6")
	if err != nil {
		t.Fatalf("GeneratePalette returned error: %v", err)
	}
	return p
}

func TestCSS(t *testing.T) {
	p := testPalette(t)

	out, err := CSS(p)
	if err != nil {
		t.Fatalf("CSS returned error: %v", err)
	}
	css := string(out)

	for _, step := range p.Steps {
		want := fmt.Sprintf("--%s-%d: %s;", p.TokenName, step.Step, step.Hex)
		if !strings.Contains(css, want) {
			t.Errorf("CSS output missing %q", want)
		}
	}

	alias := fmt.Sprintf("--%s: var(--%s-%d);", p.TokenName, p.TokenName, p.ChosenStep)
	if !strings.Contains(css, alias) {
		t.Errorf("CSS output missing base alias %q", alias)
	}
}

func TestCSSDeterministic(t *testing.T) {
	p := testPalette(t)

	a, err := CSS(p)
	if err != nil {
		t.Fatalf("CSS returned error: %v", err)
	}
	b, err := CSS(p)
	if err != nil {
		t.Fatalf("CSS returned error: %v", err)
	}
	if string(a) != string(b) {
		t.Error("CSS output differs between identical calls")
	}
}

func TestTailwindConfig(t *testing.T) {
	p := testPalette(t)

	out, err := TailwindConfig(p)
	if err != nil {
		t.Fatalf("TailwindConfig returned error: %v", err)
	}
	cfg := string(out)

	if !strings.Contains(cfg, fmt.Sprintf("'%s': {", p.TokenName)) {
		t.Errorf("config missing token key %q", p.TokenName)
	}
	if !strings.Contains(cfg, "DEFAULT: '#3B82F6',") {
		t.Error("config missing DEFAULT entry for the chosen colour")
	}
	for _, step := range p.Steps {
		want := fmt.Sprintf("%d: '%s',", step.Step, step.Hex)
		if !strings.Contains(cfg, want) {
			t.Errorf("config missing step entry %q", want)
		}
	}
}
