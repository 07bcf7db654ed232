package board

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		elev, moist float64
		want        Biome
	}{
		{-0.3, 0, Water},
		{0.7, 0, Mountain},
		{0.7, -0.5, Mountain}, // elevation rules win over moisture
		{0, -0.5, Desert},
		{0, 0.4, Forest},
		{0, 0, Plains},
		{0.3, 0.1, Plains},
	}
	for _, c := range cases {
		if got := Classify(c.elev, c.moist); got != c.want {
			t.Fatalf("Classify(%v, %v) = %v, want %v", c.elev, c.moist, got, c.want)
		}
	}
}

func TestClassifyBoundariesFallThrough(t *testing.T) {
	// Comparisons are strict: a value exactly on a threshold falls to the
	// next rule.
	if got := Classify(-0.05, 0.3); got != Forest {
		t.Fatalf("Classify(-0.05, 0.3) = %v, want forest (not water)", got)
	}
	if got := Classify(0.55, 0); got != Plains {
		t.Fatalf("Classify(0.55, 0) = %v, want plains (not mountain)", got)
	}
	if got := Classify(0, -0.1); got != Plains {
		t.Fatalf("Classify(0, -0.1) = %v, want plains (not desert)", got)
	}
	if got := Classify(0, 0.25); got != Plains {
		t.Fatalf("Classify(0, 0.25) = %v, want plains (not forest)", got)
	}
}

func TestClassifyIsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Classify(0.2, -0.3); got != Desert {
			t.Fatalf("Classify(0.2, -0.3) = %v on call %d, want desert", got, i)
		}
	}
}
