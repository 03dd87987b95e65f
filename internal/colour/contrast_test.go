package colour

import (
	"errors"
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name  string
		rgb   RGB
		want  float64
		delta float64
	}{
		{name: "black", rgb: RGB{0, 0, 0}, want: 0.0, delta: 0.0001},
		{name: "white", rgb: RGB{255, 255, 255}, want: 1.0, delta: 0.0001},
		{name: "mid grey", rgb: RGB{128, 128, 128}, want: 0.2159, delta: 0.001},
		{name: "pure red", rgb: RGB{255, 0, 0}, want: 0.2126, delta: 0.0001},
		{name: "pure green", rgb: RGB{0, 255, 0}, want: 0.7152, delta: 0.0001},
		{name: "pure blue", rgb: RGB{0, 0, 255}, want: 0.0722, delta: 0.0001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance(tt.rgb)
			if math.Abs(got-tt.want) > tt.delta {
				t.Errorf("Luminance(%v) = %.4f, want %.4f (±%v)", tt.rgb, got, tt.want, tt.delta)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 RGB
		want   float64
		delta  float64
	}{
		{name: "black on white is maximum", c1: RGB{0, 0, 0}, c2: RGB{255, 255, 255}, want: 21.0, delta: 0.0001},
		{name: "order does not matter", c1: RGB{255, 255, 255}, c2: RGB{0, 0, 0}, want: 21.0, delta: 0.0001},
		{name: "identical colours", c1: RGB{59, 130, 246}, c2: RGB{59, 130, 246}, want: 1.0, delta: 0.0001},
		{name: "white on mid grey", c1: RGB{255, 255, 255}, c2: RGB{128, 128, 128}, want: 3.95, delta: 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContrastRatio(tt.c1, tt.c2)
			if math.Abs(got-tt.want) > tt.delta {
				t.Errorf("ContrastRatio(%v, %v) = %.4f, want %.4f (±%v)", tt.c1, tt.c2, got, tt.want, tt.delta)
			}
		})
	}
}

func TestContrastRatioHex(t *testing.T) {
	got, err := ContrastRatioHex("#000000", "#FFFFFF")
	if err != nil {
		t.Fatalf("ContrastRatioHex returned error: %v", err)
	}
	if math.Abs(got-21.0) > 0.0001 {
		t.Errorf("ContrastRatioHex(#000000, #FFFFFF) = %.4f, want 21", got)
	}

	if _, err := ContrastRatioHex("bogus", "#FFFFFF"); !errors.Is(err, ErrInvalidColourFormat) {
		t.Errorf("first argument error = %v, want ErrInvalidColourFormat", err)
	}
	if _, err := ContrastRatioHex("#000000", "bogus"); !errors.Is(err, ErrInvalidColourFormat) {
		t.Errorf("second argument error = %v, want ErrInvalidColourFormat", err)
	}
}

func TestContrastLevel(t *testing.T) {
	tests := []struct {
		ratio float64
		want  WCAGLevel
	}{
		{21.0, LevelAAA},
		{7.0, LevelAAA},
		{6.99, LevelAA},
		{4.5, LevelAA},
		{4.49, LevelFail},
		{1.0, LevelFail},
	}

	for _, tt := range tests {
		if got := ContrastLevel(tt.ratio); got != tt.want {
			t.Errorf("ContrastLevel(%.2f) = %q, want %q", tt.ratio, got, tt.want)
		}
	}
}
