package colour

import "testing"

func TestRandomReproducible(t *testing.T) {
	a := NewRand(12345)
	b := NewRand(12345)

	for i := 0; i < 20; i++ {
		ca, cb := Random(a), Random(b)
		if ca != cb {
			t.Fatalf("same seed diverged at draw %d: %v vs %v", i, ca, cb)
		}
	}
}

func TestRandomSeedsDiffer(t *testing.T) {
	a := NewRand(1)
	b := NewRand(2)

	same := true
	for i := 0; i < 10; i++ {
		if Random(a) != Random(b) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical sequences")
	}
}

func TestRandomWarmRange(t *testing.T) {
	rng := NewRand(7)
	for i := 0; i < 50; i++ {
		c := RandomWarm(rng)
		hsv := RGBToHSV(c)
		// FastWarm draws saturation from [50%, 80%] and value from [30%, 60%];
		// allow one rounding unit either side.
		if hsv.S < 48 || hsv.S > 82 {
			t.Errorf("warm colour %v saturation %.1f outside warm range", c, hsv.S)
		}
		if hsv.V < 28 || hsv.V > 62 {
			t.Errorf("warm colour %v value %.1f outside warm range", c, hsv.V)
		}
	}
}

func TestRandomHappyRange(t *testing.T) {
	rng := NewRand(7)
	for i := 0; i < 50; i++ {
		c := RandomHappy(rng)
		hsv := RGBToHSV(c)
		// FastHappy draws saturation from [70%, 100%] and value from [60%, 90%].
		if hsv.S < 68 {
			t.Errorf("happy colour %v saturation %.1f below happy range", c, hsv.S)
		}
		if hsv.V < 58 || hsv.V > 92 {
			t.Errorf("happy colour %v value %.1f outside happy range", c, hsv.V)
		}
	}
}

func TestRandomWarmReproducible(t *testing.T) {
	a := RandomWarm(NewRand(42))
	b := RandomWarm(NewRand(42))
	if a != b {
		t.Errorf("same seed produced different warm colours: %v vs %v", a, b)
	}
}
