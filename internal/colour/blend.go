package colour

import "math"

// Interpolate blends three anchor colours in RGB space by barycentric
// weights. Negative weights clamp to zero and the weights are normalised
// by their sum; an all-zero triple blends the anchors equally. Channels
// round the same way RGBToHex does.
func Interpolate(a, b, c RGB, u, v, w float64) RGB {
	u = math.Max(0, u)
	v = math.Max(0, v)
	w = math.Max(0, w)

	sum := u + v + w
	if sum == 0 {
		u, v, w, sum = 1, 1, 1, 3
	}
	u, v, w = u/sum, v/sum, w/sum

	return RGB{
		R: clampChannel(u*float64(a.R) + v*float64(b.R) + w*float64(c.R)),
		G: clampChannel(u*float64(a.G) + v*float64(b.G) + w*float64(c.G)),
		B: clampChannel(u*float64(a.B) + v*float64(b.B) + w*float64(c.B)),
	}
}

// InterpolateHex blends three hex colours by barycentric weights and
// returns the result as an uppercase hex string.
func InterpolateHex(hexA, hexB, hexC string, u, v, w float64) (string, error) {
	a, err := HexToRGB(hexA)
	if err != nil {
		return "", err
	}
	b, err := HexToRGB(hexB)
	if err != nil {
		return "", err
	}
	c, err := HexToRGB(hexC)
	if err != nil {
		return "", err
	}
	return Interpolate(a, b, c, u, v, w).Hex(), nil
}
