package colour

// MinChromaticSaturation is the saturation (percent) below which hue is
// perceptually unreliable and a colour is named Neutral.
const MinChromaticSaturation = 8.0

// hueBand is a half-open angular range [from, to) of the hue wheel with
// the names assigned to it. Bands with more than one name subdivide
// their span into equal sub-intervals, one per name.
type hueBand struct {
	from  float64
	to    float64
	names []string
}

// hueBands covers the full hue wheel. The final band wraps to the same
// names as the first so reds read consistently on either side of 0.
var hueBands = []hueBand{
	{0, 15, []string{"Scarlet", "Red", "Crimson"}},
	{15, 35, []string{"Tangerine", "Orange"}},
	{35, 50, []string{"Amber", "Honey"}},
	{50, 70, []string{"Lemon", "Yellow", "Gold"}},
	{70, 85, []string{"Lime", "Chartreuse"}},
	{85, 155, []string{"Mint", "Green", "Emerald"}},
	{155, 180, []string{"Teal", "Aqua"}},
	{180, 200, []string{"Cyan", "Sky"}},
	{200, 240, []string{"Azure", "Blue", "Cobalt"}},
	{240, 270, []string{"Indigo"}},
	{270, 295, []string{"Violet", "Lavender"}},
	{295, 320, []string{"Purple", "Grape"}},
	{320, 335, []string{"Magenta", "Fuchsia"}},
	{335, 350, []string{"Rose", "Cerise", "Rosewood"}},
	{350, 360, []string{"Scarlet", "Red", "Crimson"}},
}

// HueName returns the hue-family name for a hue angle (degrees) and
// saturation (percent). Saturation below MinChromaticSaturation always
// yields "Neutral". Hue is normalised into [0, 360) first.
func HueName(hue, saturation float64) string {
	if saturation < MinChromaticSaturation {
		return "Neutral"
	}

	h := wrapHue(hue)
	for _, band := range hueBands {
		if h >= band.from && h < band.to {
			return band.pick(h)
		}
	}
	// Not reached: the bands cover [0, 360) and wrapHue never returns 360.
	return hueBands[0].names[0]
}

// pick selects a name by linear position within the band's angular span.
func (b hueBand) pick(h float64) string {
	n := len(b.names)
	if n == 1 {
		return b.names[0]
	}

	idx := int(((h - b.from) / (b.to - b.from)) * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return b.names[idx]
}
