package colour

import "math"

// Tone adjective buckets. Each holds 1-3 candidates; which candidate a
// colour gets is decided by a deterministic arithmetic hash over its HSL
// components, so the same input always names the same, while adjacent
// ramp steps still vary.
var (
	veryLightTones = []string{"Pale", "Washed", "Faint"}
	lightSoftTones = []string{"Soft", "Misty"}
	lightTones     = []string{"Light", "Airy"}
	brightTones    = []string{"Bright", "Brilliant", "Radiant"}
	mutedTones     = []string{"Muted", "Dusty", "Faded"}
	mediumTones    = []string{"Clear", "True"}
	vividTones     = []string{"Vivid", "Electric", "Intense"}
	dimTones       = []string{"Dim", "Smoky"}
	darkTones      = []string{"Dark"}
	richTones      = []string{"Rich", "Royal"}
	charcoalTones  = []string{"Charcoal", "Shadowed"}
	deepTones      = []string{"Deep", "Midnight"}
	inkyTones      = []string{"Inky", "Abyssal"}
)

// ToneName returns the tone adjective for a colour given its saturation,
// lightness (both percent) and hue (degrees). The bucket is chosen by
// lightness band then saturation tier; the adjective within the bucket
// is a pure function of the full HSL triple.
func ToneName(saturation, lightness, hue float64) string {
	bucket := toneBucket(saturation, lightness)
	return bucket[toneIndex(hue, saturation, lightness, len(bucket))]
}

// toneBucket partitions lightness into 5 bands, each but the lightest
// and darkest split into 3 saturation tiers, for 13 buckets total.
func toneBucket(s, l float64) []string {
	switch {
	case l > 85:
		return veryLightTones
	case l > 65:
		switch {
		case s < 30:
			return lightSoftTones
		case s < 60:
			return lightTones
		default:
			return brightTones
		}
	case l > 35:
		switch {
		case s < 30:
			return mutedTones
		case s < 60:
			return mediumTones
		default:
			return vividTones
		}
	case l > 25:
		switch {
		case s < 30:
			return dimTones
		case s < 70:
			return darkTones
		default:
			return richTones
		}
	default:
		switch {
		case s < 30:
			return charcoalTones
		case s < 70:
			return deepTones
		default:
			return inkyTones
		}
	}
}

// toneIndex hashes the HSL triple into a bucket index. Plain arithmetic,
// not a PRNG, so the result is identical across calls and platforms.
func toneIndex(h, s, l float64, size int) int {
	return int(math.Mod(h*7+s*5+l*3, float64(size)))
}
