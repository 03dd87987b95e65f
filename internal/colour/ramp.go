package colour

import (
	"encoding/json"
	"math"
)

// The ramp's step labels and target lightness values are parallel
// arrays ordered light to dark. The saturation shaping below keys off
// array position, not step label; a reordered table must keep the index
// thresholds in sync.
var (
	rampSteps           = [10]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}
	rampTargetLightness = [10]float64{95, 90, 80, 65, 50, 40, 30, 20, 12, 8}
)

const (
	// The two lightest steps desaturate toward white and the two darkest
	// saturate toward black; everything between keeps the input saturation.
	paleSaturationFactor = 0.3
	deepSaturationFactor = 1.2
)

// Contrast reference colours: pure white and the near-black used for
// dark text.
var (
	contrastWhiteRef = RGB{R: 255, G: 255, B: 255}
	contrastDarkRef  = RGB{R: 10, G: 10, B: 10}
)

// ColourStep is a single entry of a tonal ramp with its accessibility
// metrics against white and near-black text.
type ColourStep struct {
	Step           int       `json:"step"`
	Hex            string    `json:"hex"`
	ContrastWhite  float64   `json:"contrast_white"`
	ContrastDark   float64   `json:"contrast_dark"`
	WCAGWhite      WCAGLevel `json:"wcag_white"`
	WCAGDark       WCAGLevel `json:"wcag_dark"`
	IsChosenColour bool      `json:"is_chosen_colour"`
}

// Palette is a 10-step tonal ramp derived from a base colour. Exactly
// one step carries the input colour verbatim (uppercased); ChosenStep is
// that step's label, not its array index.
type Palette struct {
	Name           string         `json:"name"`
	TokenName      string         `json:"token_name"`
	ChosenStep     int            `json:"chosen_step"`
	Steps          []ColourStep   `json:"steps"`
	Classification Classification `json:"classification"`
}

// ToJSON renders the palette as indented JSON.
func (p Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// GeneratePalette builds the tonal ramp for a hex colour. The input is
// classified first, slotted into the step whose target lightness it
// sits closest to, and passed through that step unchanged; the other
// nine steps are synthesized at their target lightness with the input
// hue. Invalid hex input fails before any step is built.
func GeneratePalette(hex string) (Palette, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return Palette{}, err
	}

	cls := classifyRGB(rgb)
	chosen := closestStepIndex(cls.HSL.L)

	steps := make([]ColourStep, len(rampSteps))
	for i, label := range rampSteps {
		var stepRGB RGB
		if i == chosen {
			// Exact pass-through of the input colour.
			stepRGB = rgb
		} else {
			s := cls.HSL.S
			switch {
			case i < 2:
				s *= paleSaturationFactor
			case i > 7:
				s = math.Min(100, s*deepSaturationFactor)
			}
			stepRGB = HSLToRGB(HSL{H: cls.HSL.H, S: s, L: rampTargetLightness[i]})
		}

		contrastWhite := ContrastRatio(stepRGB, contrastWhiteRef)
		contrastDark := ContrastRatio(stepRGB, contrastDarkRef)

		steps[i] = ColourStep{
			Step:           label,
			Hex:            stepRGB.Hex(),
			ContrastWhite:  contrastWhite,
			ContrastDark:   contrastDark,
			WCAGWhite:      ContrastLevel(contrastWhite),
			WCAGDark:       ContrastLevel(contrastDark),
			IsChosenColour: i == chosen,
		}
	}

	return Palette{
		Name:           cls.FullName,
		TokenName:      cls.TokenName,
		ChosenStep:     rampSteps[chosen],
		Steps:          steps,
		Classification: cls,
	}, nil
}

// closestStepIndex finds the ramp index whose target lightness is
// nearest the given lightness. The scan is strictly left to right and
// keeps the first index on a distance tie, so equidistant input always
// lands on the lighter step.
func closestStepIndex(lightness float64) int {
	best := 0
	bestDist := math.Abs(lightness - rampTargetLightness[0])
	for i := 1; i < len(rampTargetLightness); i++ {
		if d := math.Abs(lightness - rampTargetLightness[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
