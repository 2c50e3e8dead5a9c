package reassign

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/skystride/droneops/core/logger"
	"github.com/skystride/droneops/core/matching"
	"github.com/skystride/droneops/core/model"
)

// MinViableScore is the floor below which a displaced pilot is not worth
// offering for the urgent mission.
const MinViableScore = 0.30

// noDroneRiskPenalty is added to every plan when no drone candidate exists.
const noDroneRiskPenalty = 15

// Engine produces swap plans. It only proposes; Execute applies a chosen
// plan.
type Engine struct {
	match matching.Engine
	log   logger.Logger
}

// New returns a reassignment engine using the given matcher.
func New(match matching.Engine, log logger.Logger) Engine {
	if log == nil {
		log = logger.Nop{}
	}
	return Engine{match: match, log: log}
}

// Suggest generates reassignment plans for an urgent mission, ordered safest
// first. The result is read-only with respect to the inputs; an empty list
// means no viable option exists, which is a valid answer rather than an
// error.
func (e Engine) Suggest(urgent model.Mission, pilots []model.Pilot, drones []model.Drone, missions []model.Mission) []SwapPlan {
	var plans []SwapPlan

	// Phase 1: free pilots and drones.
	bestPilots := e.match.FindBestPilots(pilots, urgent, matching.DefaultTopN)
	bestDrones := e.match.FindBestDrones(drones, urgent, matching.DefaultTopN)

	if len(bestPilots) > 0 && len(bestDrones) > 0 {
		top := bestDrones[0]
		for _, pc := range bestPilots[:min(2, len(bestPilots))] {
			pilot := pc.Pilot
			plans = append(plans, SwapPlan{
				ID:              uuid.NewString(),
				UrgentMissionID: urgent.ID,
				SuggestedPilot:  &pilot,
				PilotScore:      pc.Score,
				PilotBreakdown:  pc.Breakdown,
				SuggestedDrone:  &top.Drone,
				DroneScore:      top.Score,
				DroneBreakdown:  top.Breakdown,
				RiskScore:       ComputeRisk(pc.Score, top.Score, false, ""),
				Justification: fmt.Sprintf(
					"Available pilot %s and drone %s match the mission requirements.",
					pilot.Name, top.Drone.Model),
			})
		}
	}

	// Phase 2: displacement, only when no pilot is free at all. Drone
	// scarcity alone does not justify disturbing running missions.
	if len(bestPilots) == 0 {
		e.log.Infof("no available pilots for %s, looking for swap candidates", urgent.ID)
		plans = append(plans, e.displacementPlans(urgent, pilots, missions, bestDrones)...)
	}

	if len(bestDrones) == 0 {
		for i := range plans {
			plans[i].Warnings = append(plans[i].Warnings,
				"No available drones found. Manual drone assignment needed.")
			plans[i].RiskScore = min(100, plans[i].RiskScore+noDroneRiskPenalty)
		}
	}

	// Safest first; stable to keep discovery order among equal risks.
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].RiskScore < plans[j].RiskScore
	})
	return plans
}

// displacementPlans inspects missions whose pilot could be pulled away.
// Candidates come only from Standard and Low priority missions, lowest
// urgency first.
func (e Engine) displacementPlans(urgent model.Mission, pilots []model.Pilot, missions []model.Mission, bestDrones []matching.DroneCandidate) []SwapPlan {
	var reassignable []model.Mission
	for _, m := range missions {
		if m.AssignedPilot == "" {
			continue
		}
		if m.Priority == model.PriorityStandard || m.Priority == model.PriorityLow {
			reassignable = append(reassignable, m)
		}
	}
	sort.SliceStable(reassignable, func(i, j int) bool {
		return reassignable[i].Priority.Rank() > reassignable[j].Priority.Rank()
	})

	byID := make(map[string]model.Pilot, len(pilots))
	for _, p := range pilots {
		byID[p.ID] = p
	}

	var plans []SwapPlan
	for _, m := range reassignable {
		candidate, ok := byID[m.AssignedPilot]
		if !ok {
			continue
		}
		score, breakdown := e.match.ScorePilot(candidate, urgent)
		if score < MinViableScore {
			continue
		}

		plan := SwapPlan{
			ID:                   uuid.NewString(),
			UrgentMissionID:      urgent.ID,
			SuggestedPilot:       &candidate,
			PilotScore:           score,
			PilotBreakdown:       breakdown,
			DisplacedFromMission: m.ID,
			DisplacedPriority:    m.Priority,
			Justification: fmt.Sprintf(
				"Swap pilot %s from %s (priority %s) to urgent mission %s.",
				candidate.Name, m.ID, m.Priority, urgent.ID),
			Warnings: []string{fmt.Sprintf(
				"Mission %s (%s) will be left without a pilot.", m.ID, m.Client)},
		}
		var droneScore float64
		if len(bestDrones) > 0 {
			top := bestDrones[0]
			plan.SuggestedDrone = &top.Drone
			plan.DroneScore = top.Score
			plan.DroneBreakdown = top.Breakdown
			droneScore = top.Score
		}
		plan.RiskScore = ComputeRisk(score, droneScore, true, m.Priority)
		plans = append(plans, plan)
	}
	return plans
}
