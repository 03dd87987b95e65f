package colour

import "testing"

func TestToneNameBuckets(t *testing.T) {
	// One representative per bucket, checked against the bucket's
	// candidate set rather than a single adjective.
	tests := []struct {
		name       string
		saturation float64
		lightness  float64
		bucket     []string
	}{
		{name: "very light ignores saturation", saturation: 5, lightness: 90, bucket: veryLightTones},
		{name: "very light saturated", saturation: 95, lightness: 86, bucket: veryLightTones},
		{name: "light soft", saturation: 20, lightness: 75, bucket: lightSoftTones},
		{name: "light", saturation: 45, lightness: 75, bucket: lightTones},
		{name: "bright", saturation: 80, lightness: 75, bucket: brightTones},
		{name: "muted", saturation: 20, lightness: 50, bucket: mutedTones},
		{name: "medium", saturation: 45, lightness: 50, bucket: mediumTones},
		{name: "vivid", saturation: 92, lightness: 60, bucket: vividTones},
		{name: "dim", saturation: 20, lightness: 30, bucket: dimTones},
		{name: "dark", saturation: 50, lightness: 30, bucket: darkTones},
		{name: "rich", saturation: 85, lightness: 30, bucket: richTones},
		{name: "charcoal", saturation: 20, lightness: 15, bucket: charcoalTones},
		{name: "deep", saturation: 50, lightness: 15, bucket: deepTones},
		{name: "inky", saturation: 85, lightness: 15, bucket: inkyTones},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToneName(tt.saturation, tt.lightness, 217)
			found := false
			for _, candidate := range tt.bucket {
				if got == candidate {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("ToneName(%v, %v, 217) = %q, want one of %v", tt.saturation, tt.lightness, got, tt.bucket)
			}
		})
	}
}

func TestToneNameBoundaries(t *testing.T) {
	// Lightness 25 belongs to the darkest band; 25.01 to the dim/dark/rich band.
	if got := ToneName(50, 25, 0); got != "Deep" && got != "Midnight" {
		t.Errorf("ToneName(50, 25, 0) = %q, want a deep tone", got)
	}
	if got := ToneName(50, 25.01, 0); got != "Dark" {
		t.Errorf("ToneName(50, 25.01, 0) = %q, want Dark", got)
	}
	// The dark bucket has a single candidate, so any hue gives the same name.
	for _, h := range []float64{0, 90, 217, 359} {
		if got := ToneName(50, 30, h); got != "Dark" {
			t.Errorf("ToneName(50, 30, %v) = %q, want Dark", h, got)
		}
	}
}

func TestToneNameDeterminism(t *testing.T) {
	first := ToneName(92, 60, 217)
	for i := 0; i < 100; i++ {
		if got := ToneName(92, 60, 217); got != first {
			t.Fatalf("ToneName changed between calls: %q then %q", first, got)
		}
	}
}

func TestToneIndexVariesAcrossInputs(t *testing.T) {
	// The arithmetic hash should not collapse to a single adjective over
	// a bucket with multiple candidates.
	seen := map[string]bool{}
	for h := 0.0; h < 360; h += 11 {
		seen[ToneName(92, 60, h)] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected adjective variety across hues, got %v", seen)
	}
}
