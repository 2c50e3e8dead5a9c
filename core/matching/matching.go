// Package matching ranks candidate pilots and drones against a mission using
// a weighted greedy score.
package matching

import (
	"sort"

	"github.com/skystride/droneops/core/model"
	"github.com/skystride/droneops/core/scoring"
)

// DefaultTopN is the number of candidates returned when the caller does not
// ask for a specific count.
const DefaultTopN = 3

// Fixed drone weights. These are not configurable, unlike the pilot weights.
const (
	droneCapabilityWeight  = 0.50
	droneLocationWeight    = 0.30
	droneMaintenanceWeight = 0.20
)

// PilotBreakdown holds the per-component pilot scores, rounded to two
// decimals for display.
type PilotBreakdown struct {
	Skill        float64 `json:"skill_match"`
	Cert         float64 `json:"cert_match"`
	Location     float64 `json:"location_match"`
	Availability float64 `json:"availability"`
	Total        float64 `json:"total_score"`
}

// DroneBreakdown holds the per-component drone scores, rounded to two
// decimals for display.
type DroneBreakdown struct {
	Capability  float64 `json:"capability_match"`
	Location    float64 `json:"location_match"`
	Maintenance float64 `json:"maintenance_safe"`
	Total       float64 `json:"total_score"`
}

// PilotCandidate is one ranked pilot with its raw score and display breakdown.
type PilotCandidate struct {
	Pilot     model.Pilot    `json:"pilot"`
	Score     float64        `json:"score"`
	Breakdown PilotBreakdown `json:"breakdown"`
}

// DroneCandidate is one ranked drone with its raw score and display breakdown.
type DroneCandidate struct {
	Drone     model.Drone    `json:"drone"`
	Score     float64        `json:"score"`
	Breakdown DroneBreakdown `json:"breakdown"`
}

// Engine scores and ranks candidates. The pilot weights can be tuned from
// configuration; drone weights are fixed.
type Engine struct {
	Weights scoring.Weights
}

// New returns an engine with the default pilot weights.
func New() Engine {
	return Engine{Weights: scoring.DefaultWeights()}
}

// ScorePilot scores a pilot against a mission. The returned score is the raw
// ranking value; the breakdown is rounded for display.
func (e Engine) ScorePilot(p model.Pilot, m model.Mission) (float64, PilotBreakdown) {
	skill := scoring.SetOverlapRatio(m.RequiredSkills, p.Skills)
	cert := scoring.SetOverlapRatio(m.RequiredCerts, p.Certifications)
	loc := scoring.LocationMatch(p.Location, m.Location)

	// Partial credit when either side of the availability window is unknown.
	avail := 0.5
	if !p.AvailableFrom.IsZero() && !m.StartDate.IsZero() {
		if p.AvailableFrom.After(m.StartDate) {
			avail = 0.0
		} else {
			avail = 1.0
		}
	}

	total := scoring.WeightedScore(skill, cert, loc, avail, e.Weights)
	return total, PilotBreakdown{
		Skill:        scoring.Round2(skill),
		Cert:         scoring.Round2(cert),
		Location:     scoring.Round2(loc),
		Availability: scoring.Round2(avail),
		Total:        scoring.Round2(total),
	}
}

// ScoreDrone scores a drone against a mission. Capability requirements come
// from the mission's skill field (see model.Mission).
func (e Engine) ScoreDrone(d model.Drone, m model.Mission) (float64, DroneBreakdown) {
	capability := scoring.SetOverlapRatio(m.RequiredSkills, d.Capabilities)
	loc := scoring.LocationMatch(d.Location, m.Location)

	// Maintenance safety: due date must clear the mission end. Partial
	// credit when either date is unknown.
	maint := 0.5
	if !d.MaintenanceDue.IsZero() && !m.EndDate.IsZero() {
		if d.MaintenanceDue.After(m.EndDate) {
			maint = 1.0
		} else {
			maint = 0.0
		}
	}

	total := capability*droneCapabilityWeight + loc*droneLocationWeight + maint*droneMaintenanceWeight
	return total, DroneBreakdown{
		Capability:  scoring.Round2(capability),
		Location:    scoring.Round2(loc),
		Maintenance: scoring.Round2(maint),
		Total:       scoring.Round2(total),
	}
}

// FindBestPilots returns the top N available pilots ranked by score. The sort
// is stable, so equal scores keep roster order. An empty result is a valid
// answer, not an error.
func (e Engine) FindBestPilots(pilots []model.Pilot, m model.Mission, topN int) []PilotCandidate {
	if topN <= 0 {
		topN = DefaultTopN
	}
	var candidates []PilotCandidate
	for _, p := range pilots {
		if !p.IsAvailable() {
			continue
		}
		score, breakdown := e.ScorePilot(p, m)
		candidates = append(candidates, PilotCandidate{Pilot: p, Score: score, Breakdown: breakdown})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}
	return candidates
}

// FindBestDrones returns the top N available drones ranked by score.
func (e Engine) FindBestDrones(drones []model.Drone, m model.Mission, topN int) []DroneCandidate {
	if topN <= 0 {
		topN = DefaultTopN
	}
	var candidates []DroneCandidate
	for _, d := range drones {
		if !d.IsAvailable() {
			continue
		}
		score, breakdown := e.ScoreDrone(d, m)
		candidates = append(candidates, DroneCandidate{Drone: d, Score: score, Breakdown: breakdown})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}
	return candidates
}
