package reassign

import (
	"fmt"

	"github.com/skystride/droneops/core/fleet"
)

// Execute applies a chosen swap plan to the snapshot, keeping both sides of
// every assignment relationship consistent. It returns the human-readable
// list of changes made. When the target mission does not exist, the snapshot
// is left untouched and a descriptive error is returned. The caller is
// responsible for holding the snapshot's writer lock.
func Execute(plan SwapPlan, snap *fleet.Snapshot) ([]string, error) {
	urgent, ok := snap.Mission(plan.UrgentMissionID)
	if !ok {
		return nil, fmt.Errorf("mission %s not found", plan.UrgentMissionID)
	}

	var changes []string

	if plan.SuggestedPilot != nil {
		// A swap first frees the displaced mission's pilot slot. The old
		// mission's drone stays where it is.
		if plan.DisplacedFromMission != "" {
			if _, ok := snap.Mission(plan.DisplacedFromMission); ok {
				if err := snap.ClearMissionPilot(plan.DisplacedFromMission); err != nil {
					return changes, err
				}
				changes = append(changes, fmt.Sprintf("Removed %s from %s",
					plan.SuggestedPilot.Name, plan.DisplacedFromMission))
			}
		}

		if err := snap.AssignPilot(urgent.ID, plan.SuggestedPilot.ID); err != nil {
			return changes, err
		}
		changes = append(changes, fmt.Sprintf("Assigned pilot %s (%s) to %s",
			plan.SuggestedPilot.Name, plan.SuggestedPilot.ID, urgent.ID))
	}

	if plan.SuggestedDrone != nil {
		if err := snap.AssignDrone(urgent.ID, plan.SuggestedDrone.ID); err != nil {
			return changes, err
		}
		changes = append(changes, fmt.Sprintf("Assigned drone %s (%s) to %s",
			plan.SuggestedDrone.Model, plan.SuggestedDrone.ID, urgent.ID))
	}

	if len(changes) == 0 {
		changes = append(changes, "No changes were made.")
	}
	return changes, nil
}
