package colour

import "math"

// WCAGLevel classifies a contrast ratio against the WCAG 2.0 thresholds
// for normal text.
type WCAGLevel string

const (
	// LevelAAA is met by contrast ratios of 7:1 or higher.
	LevelAAA WCAGLevel = "AAA"
	// LevelAA is met by contrast ratios of 4.5:1 or higher.
	LevelAA WCAGLevel = "AA"
	// LevelFail is anything below the AA threshold.
	LevelFail WCAGLevel = "Fail"
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	rf := gammaCorrect(float64(rgb.R) / 255.0)
	gf := gammaCorrect(float64(rgb.G) / 255.0)
	bf := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatioHex calculates the WCAG contrast ratio between two hex
// colour strings.
func ContrastRatioHex(hex1, hex2 string) (float64, error) {
	c1, err := HexToRGB(hex1)
	if err != nil {
		return 0, err
	}
	c2, err := HexToRGB(hex2)
	if err != nil {
		return 0, err
	}
	return ContrastRatio(c1, c2), nil
}

// ContrastLevel classifies a contrast ratio: AAA at 7:1 or above, AA at
// 4.5:1 or above, Fail otherwise.
func ContrastLevel(ratio float64) WCAGLevel {
	switch {
	case ratio >= 7.0:
		return LevelAAA
	case ratio >= 4.5:
		return LevelAA
	default:
		return LevelFail
	}
}
