package colour

import (
	"github.com/greghuntoon-figma/color-utils/internal/util"
)

// Classification is the derived naming record for a single colour. It is
// computed fresh per input and never cached or mutated.
type Classification struct {
	FullName  string `json:"full_name"`
	TokenName string `json:"token_name"`
	Tone      string `json:"tone"`
	HueGroup  string `json:"hue_group"`
	HSL       HSL    `json:"hsl"`
}

// Classify names a hex colour. The full name is "{tone} {hueGroup}",
// where the hue group falls back to "Neutral" for near-grey input. The
// token name is the camelCase form of the full name. Invalid hex input
// propagates ErrInvalidColourFormat from the conversion layer.
func Classify(hex string) (Classification, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return Classification{}, err
	}
	return classifyRGB(rgb), nil
}

// classifyRGB composes the hue and tone classifiers for an already
// parsed colour.
func classifyRGB(rgb RGB) Classification {
	hsl := RGBToHSL(rgb)

	hueGroup := HueName(hsl.H, hsl.S)
	tone := ToneName(hsl.S, hsl.L, hsl.H)
	fullName := tone + " " + hueGroup

	return Classification{
		FullName:  fullName,
		TokenName: util.CamelToken(fullName),
		Tone:      tone,
		HueGroup:  hueGroup,
		HSL:       hsl,
	}
}
