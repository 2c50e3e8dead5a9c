// Package scoring provides the pure score primitives shared by the matching
// and reassignment engines.
package scoring

import (
	"math"

	"github.com/skystride/droneops/core/model"
)

// Weights holds the coefficients of the pilot composite score. The default
// weights sum to 1.0 so the composite stays in [0,1]; callers overriding them
// are responsible for the resulting range.
type Weights struct {
	Skill        float64
	Cert         float64
	Location     float64
	Availability float64
}

// DefaultWeights returns the standard pilot weighting:
// skill 40%, cert 30%, location 15%, availability 15%.
func DefaultWeights() Weights {
	return Weights{Skill: 0.40, Cert: 0.30, Location: 0.15, Availability: 0.15}
}

// SetOverlapRatio returns the fraction of required tags present in available,
// compared case-insensitively after trimming. An empty requirement is
// vacuously satisfied and scores 1.0.
func SetOverlapRatio(required, available []string) float64 {
	req := model.TagSet(required)
	if len(req) == 0 {
		return 1.0
	}
	avail := model.TagSet(available)
	matched := 0
	for tag := range req {
		if _, ok := avail[tag]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(req))
}

// LocationMatch is binary: 1.0 when both locations are non-empty and equal
// case-insensitively after trimming, else 0.0.
func LocationMatch(a, b string) float64 {
	if model.CleanCell(a) == "" || model.CleanCell(b) == "" {
		return 0.0
	}
	if model.FoldEqual(a, b) {
		return 1.0
	}
	return 0.0
}

// WeightedScore combines the four pilot sub-scores linearly.
func WeightedScore(skill, cert, location, availability float64, w Weights) float64 {
	return skill*w.Skill + cert*w.Cert + location*w.Location + availability*w.Availability
}

// Round2 rounds a sub-score to two decimals for display. Ranking always uses
// the unrounded value.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
