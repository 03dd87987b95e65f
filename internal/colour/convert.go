// Package colour provides deterministic colour conversion, naming and
// tonal-ramp generation. Every function is a pure computation over its
// arguments: no I/O, no caching, no shared state.
package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColourFormat is returned when a hex string does not match
// #?[0-9A-Fa-f]{3} or {6}. It is the only error the package produces;
// numeric transforms clamp or wrap out-of-range input instead of failing.
var ErrInvalidColourFormat = errors.New("invalid colour format")

// RGB represents a colour as 8-bit red, green and blue channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as an uppercase hex string (e.g. "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// HSL represents a colour as hue (0-360 degrees), saturation and
// lightness (both 0-100 percent).
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the HSL colour as a string in the format "hsl(h, s%, l%)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", hsl.H, hsl.S, hsl.L)
}

// HSV represents a colour as hue (0-360 degrees), saturation and value
// (both 0-100 percent).
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// String returns the HSV colour as a string in the format "hsv(h, s%, v%)".
func (hsv HSV) String() string {
	return fmt.Sprintf("hsv(%.0f, %.0f%%, %.0f%%)", hsv.H, hsv.S, hsv.V)
}

// HexToRGB parses a hex colour string into RGB. It accepts 3- or 6-digit
// hex with an optional leading #, case-insensitive. Shorthand digits
// expand by doubling ("#F53" parses as "#FF5533").
func HexToRGB(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")

	switch len(s) {
	case 3:
		// Expand shorthand by doubling each digit.
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColourFormat, hex)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColourFormat, hex)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// RGBToHex encodes red, green and blue channel values as an uppercase
// 6-digit hex string with a leading #. Each channel is clamped to
// [0, 255] and rounded before encoding.
func RGBToHex(r, g, b float64) string {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}.Hex()
}

// clampChannel clamps a channel value to [0, 255] and rounds to the
// nearest integer.
func clampChannel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

// RGBToHSL converts RGB to HSL colour space.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l := (maxVal + minVal) / 2.0

	if delta == 0 {
		// Achromatic (grey).
		return HSL{H: 0, S: 0, L: l * 100}
	}

	// Saturation.
	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	// Hue.
	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	return HSL{H: h, S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL to RGB colour space. Hue wraps into [0, 360);
// saturation and lightness clamp to [0, 100]. Channels round to the
// nearest integer, so zero saturation yields grey r=g=b=round(l*255/100).
func HSLToRGB(hsl HSL) RGB {
	h := wrapHue(hsl.H)
	s := clampPercent(hsl.S) / 100.0
	l := clampPercent(hsl.L) / 100.0

	if s == 0 {
		// Achromatic (grey).
		v := clampChannel(l * 255)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: clampChannel(hueToRGB(p, q, h+120) * 255),
		G: clampChannel(hueToRGB(p, q, h) * 255),
		B: clampChannel(hueToRGB(p, q, h-120) * 255),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	// Normalize t to 0-360 range.
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// RGBToHSV converts RGB to HSV colour space.
func RGBToHSV(rgb RGB) HSV {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	v := maxVal

	var s float64
	if maxVal > 0 {
		s = delta / maxVal
	}

	if delta == 0 {
		return HSV{H: 0, S: 0, V: v * 100}
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	return HSV{H: h, S: s * 100, V: v * 100}
}

// HSVToRGB converts HSV to RGB colour space. Hue wraps into [0, 360);
// saturation and value clamp to [0, 100]. Channels round.
func HSVToRGB(hsv HSV) RGB {
	h := wrapHue(hsv.H)
	s := clampPercent(hsv.S) / 100.0
	v := clampPercent(hsv.V) / 100.0

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: clampChannel((r + m) * 255),
		G: clampChannel((g + m) * 255),
		B: clampChannel((b + m) * 255),
	}
}

// HexToHSL parses a hex colour string and converts it to HSL.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb), nil
}

// HSLToHex converts HSL to an uppercase hex string.
func HSLToHex(hsl HSL) string {
	return HSLToRGB(hsl).Hex()
}

// HexToHSV parses a hex colour string and converts it to HSV.
func HexToHSV(hex string) (HSV, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSV{}, err
	}
	return RGBToHSV(rgb), nil
}

// HSVToHex converts HSV to an uppercase hex string.
func HSVToHex(hsv HSV) string {
	return HSVToRGB(hsv).Hex()
}

// wrapHue normalises a hue angle into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// clampPercent clamps a percentage value to [0, 100].
func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
