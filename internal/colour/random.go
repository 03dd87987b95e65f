package colour

import (
	crand "crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// NewRand returns a ChaCha8-backed random source. Any non-zero seed
// produces a fully reproducible sequence; seed 0 draws a fresh seed from
// crypto/rand instead.
func NewRand(seed uint64) *mathrand.Rand {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err == nil {
			seed = binary.LittleEndian.Uint64(b[:])
		}
	}

	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return mathrand.New(mathrand.NewChaCha8(key))
}

// Random returns a colour sampled uniformly from the 24-bit RGB cube.
func Random(rng *mathrand.Rand) RGB {
	return RGB{
		R: uint8(rng.IntN(256)),
		G: uint8(rng.IntN(256)),
		B: uint8(rng.IntN(256)),
	}
}

// RandomWarm returns a random darker, muted colour drawn from a
// restricted HSV space.
func RandomWarm(rng *mathrand.Rand) RGB {
	return fromColorful(colorful.FastWarmColorWithRand(colorfulRand{rng}))
}

// RandomHappy returns a random bright, saturated colour drawn from a
// restricted HSV space.
func RandomHappy(rng *mathrand.Rand) RGB {
	return fromColorful(colorful.FastHappyColorWithRand(colorfulRand{rng}))
}

// colorfulRand adapts math/rand/v2 to go-colorful's rand interface,
// which still expects the v1 Intn spelling.
type colorfulRand struct {
	*mathrand.Rand
}

func (r colorfulRand) Intn(n int) int { return r.IntN(n) }

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}
