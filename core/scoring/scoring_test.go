package scoring

import (
	"math"
	"testing"
)

func TestSetOverlapRatio(t *testing.T) {
	cases := []struct {
		name      string
		required  []string
		available []string
		want      float64
	}{
		{"vacuous", nil, []string{"Mapping"}, 1.0},
		{"vacuous empty both", nil, nil, 1.0},
		{"full", []string{"Mapping", "Thermal"}, []string{"thermal", " MAPPING "}, 1.0},
		{"half", []string{"Mapping", "Thermal"}, []string{"Mapping"}, 0.5},
		{"none", []string{"LiDAR"}, []string{"Mapping"}, 0.0},
		{"extra available ignored", []string{"Mapping"}, []string{"Mapping", "LiDAR"}, 1.0},
	}
	for _, c := range cases {
		if got := SetOverlapRatio(c.required, c.available); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestLocationMatch(t *testing.T) {
	if LocationMatch("Bangalore", " bangalore ") != 1.0 {
		t.Error("case and whitespace should not matter")
	}
	if LocationMatch("Bangalore", "Mumbai") != 0.0 {
		t.Error("different cities should not match")
	}
	if LocationMatch("", "Mumbai") != 0.0 || LocationMatch("Bangalore", "") != 0.0 {
		t.Error("missing locations never match")
	}
}

func TestWeightedScore(t *testing.T) {
	w := DefaultWeights()
	if got := WeightedScore(1, 1, 1, 1, w); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("all-ones composite = %v, want 1.0", got)
	}
	if got := WeightedScore(0.5, 1, 0, 0.5, w); math.Abs(got-0.575) > 1e-9 {
		t.Errorf("composite = %v, want 0.575", got)
	}
	// Custom weights are used as given, no normalization.
	custom := Weights{Skill: 2}
	if got := WeightedScore(0.5, 1, 1, 1, custom); got != 1.0 {
		t.Errorf("custom weight composite = %v, want 1.0", got)
	}
}

func TestRound2(t *testing.T) {
	if Round2(1.0/3.0) != 0.33 {
		t.Errorf("Round2(1/3) = %v", Round2(1.0/3.0))
	}
	if Round2(0.675) != 0.68 {
		t.Errorf("Round2(0.675) = %v", Round2(0.675))
	}
}
