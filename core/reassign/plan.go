// Package reassign builds and executes risk-scored swap plans for urgent
// missions that have no free resources.
package reassign

import (
	"fmt"
	"math"
	"strings"

	"github.com/skystride/droneops/core/matching"
	"github.com/skystride/droneops/core/model"
)

// SwapPlan is a proposed reassignment for an urgent mission. It is a proposal
// record, not a state machine: nothing happens until Execute applies it.
type SwapPlan struct {
	ID              string `json:"id"`
	UrgentMissionID string `json:"urgent_mission_id"`

	SuggestedPilot *model.Pilot            `json:"suggested_pilot,omitempty"`
	PilotScore     float64                 `json:"pilot_score"`
	PilotBreakdown matching.PilotBreakdown `json:"pilot_breakdown"`

	SuggestedDrone *model.Drone            `json:"suggested_drone,omitempty"`
	DroneScore     float64                 `json:"drone_score"`
	DroneBreakdown matching.DroneBreakdown `json:"drone_breakdown"`

	// Set when the plan reuses a currently assigned pilot.
	DisplacedFromMission string         `json:"displaced_from_mission,omitempty"`
	DisplacedPriority    model.Priority `json:"displaced_priority,omitempty"`

	RiskScore     int      `json:"risk_score"` // 0 (safe) to 100 (dangerous)
	Justification string   `json:"justification"`
	Warnings      []string `json:"warnings,omitempty"`
}

// IsSwap reports whether the plan displaces a pilot from another mission.
func (p SwapPlan) IsSwap() bool { return p.DisplacedFromMission != "" }

// Summary renders the plan as human-readable text.
func (p SwapPlan) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Swap plan for %s\n", p.UrgentMissionID)
	fmt.Fprintf(&b, "Risk score: %d/100\n", p.RiskScore)
	if p.SuggestedPilot != nil {
		fmt.Fprintf(&b, "Pilot: %s (%s), score %.0f%%\n",
			p.SuggestedPilot.Name, p.SuggestedPilot.ID, p.PilotScore*100)
	}
	if p.SuggestedDrone != nil {
		fmt.Fprintf(&b, "Drone: %s (%s), score %.0f%%\n",
			p.SuggestedDrone.Model, p.SuggestedDrone.ID, p.DroneScore*100)
	}
	if p.IsSwap() {
		fmt.Fprintf(&b, "Displaces pilot from %s (priority %s)\n",
			p.DisplacedFromMission, p.DisplacedPriority)
	}
	fmt.Fprintf(&b, "Justification: %s", p.Justification)
	for _, w := range p.Warnings {
		fmt.Fprintf(&b, "\nWarning: %s", w)
	}
	return b.String()
}

// ComputeRisk scores a plan between 0 and 100. Strong pilot and drone matches
// lower the risk; swapping raises it, and displacing a higher-priority
// mission raises it further. The Urgent branch is defensive only: the
// candidate pool never offers Urgent or High missions.
func ComputeRisk(pilotScore, droneScore float64, isSwap bool, displacedPriority model.Priority) int {
	risk := int(math.Round((1.0 - (pilotScore+droneScore)/2) * 50))

	if isSwap {
		risk += 20
		switch displacedPriority {
		case model.PriorityHigh:
			risk += 20
		case model.PriorityUrgent:
			risk += 30
		case model.PriorityStandard, model.PriorityLow:
			risk += 5
		}
	}

	if risk < 0 {
		return 0
	}
	if risk > 100 {
		return 100
	}
	return risk
}
