package conflict

import (
	"fmt"
	"strings"

	"github.com/skystride/droneops/core/model"
)

// DetectAll runs every scan and concatenates the results in a fixed order:
// pilot double bookings, drone double bookings, skill/cert mismatches,
// maintenance conflicts, location mismatches.
func DetectAll(pilots []model.Pilot, drones []model.Drone, missions []model.Mission) []Conflict {
	var conflicts []Conflict
	conflicts = append(conflicts, DetectPilotDoubleBookings(pilots, missions)...)
	conflicts = append(conflicts, DetectDroneDoubleBookings(drones, missions)...)
	conflicts = append(conflicts, DetectSkillMismatches(pilots, missions)...)
	conflicts = append(conflicts, DetectMaintenanceConflicts(drones, missions)...)
	conflicts = append(conflicts, DetectLocationMismatches(pilots, drones, missions)...)
	return conflicts
}

// groupByAssignee buckets missions by an assignee ID, keeping both the bucket
// contents and the first-seen assignee order deterministic.
func groupByAssignee(missions []model.Mission, assignee func(model.Mission) string, known map[string]bool) ([]string, map[string][]model.Mission) {
	var order []string
	groups := make(map[string][]model.Mission)
	for _, m := range missions {
		id := assignee(m)
		if id == "" || !known[id] {
			continue
		}
		if _, seen := groups[id]; !seen {
			order = append(order, id)
		}
		groups[id] = append(groups[id], m)
	}
	return order, groups
}

// DetectPilotDoubleBookings reports every pair of date-overlapping missions
// held by the same pilot. Three mutually overlapping missions yield three
// conflicts, one per pair.
func DetectPilotDoubleBookings(pilots []model.Pilot, missions []model.Mission) []Conflict {
	byID := make(map[string]model.Pilot, len(pilots))
	known := make(map[string]bool, len(pilots))
	for _, p := range pilots {
		byID[p.ID] = p
		known[p.ID] = true
	}

	var conflicts []Conflict
	order, groups := groupByAssignee(missions, func(m model.Mission) string { return m.AssignedPilot }, known)
	for _, pid := range order {
		group := groups[pid]
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if !group[i].OverlapsWith(group[j]) {
					continue
				}
				p := byID[pid]
				conflicts = append(conflicts, Conflict{
					Type:       DoubleBooking,
					Severity:   SeverityCritical,
					EntityID:   pid,
					EntityName: p.Name,
					MissionID:  group[i].ID + " & " + group[j].ID,
					Description: fmt.Sprintf(
						"Pilot %s (%s) is assigned to overlapping missions %s (%s to %s) and %s (%s to %s).",
						p.Name, pid,
						group[i].ID, model.FormatDate(group[i].StartDate), model.FormatDate(group[i].EndDate),
						group[j].ID, model.FormatDate(group[j].StartDate), model.FormatDate(group[j].EndDate)),
				})
			}
		}
	}
	return conflicts
}

// DetectDroneDoubleBookings reports every pair of date-overlapping missions
// held by the same drone.
func DetectDroneDoubleBookings(drones []model.Drone, missions []model.Mission) []Conflict {
	byID := make(map[string]model.Drone, len(drones))
	known := make(map[string]bool, len(drones))
	for _, d := range drones {
		byID[d.ID] = d
		known[d.ID] = true
	}

	var conflicts []Conflict
	order, groups := groupByAssignee(missions, func(m model.Mission) string { return m.AssignedDrone }, known)
	for _, did := range order {
		group := groups[did]
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if !group[i].OverlapsWith(group[j]) {
					continue
				}
				d := byID[did]
				conflicts = append(conflicts, Conflict{
					Type:       DoubleBooking,
					Severity:   SeverityCritical,
					EntityID:   did,
					EntityName: d.Model,
					MissionID:  group[i].ID + " & " + group[j].ID,
					Description: fmt.Sprintf(
						"Drone %s (%s) is assigned to overlapping missions %s and %s.",
						d.Model, did, group[i].ID, group[j].ID),
				})
			}
		}
	}
	return conflicts
}

// DetectSkillMismatches reports assigned pilots missing required skills or
// certifications. Missing skills and missing certs each produce their own
// conflict, so one mission can raise up to two against the same pilot.
func DetectSkillMismatches(pilots []model.Pilot, missions []model.Mission) []Conflict {
	byID := make(map[string]model.Pilot, len(pilots))
	for _, p := range pilots {
		byID[p.ID] = p
	}

	var conflicts []Conflict
	for _, m := range missions {
		p, ok := byID[m.AssignedPilot]
		if m.AssignedPilot == "" || !ok {
			continue
		}
		skills := model.TagSet(p.Skills)
		certs := model.TagSet(p.Certifications)

		var missingSkills, missingCerts []string
		for _, s := range m.RequiredSkills {
			if _, ok := skills[model.NormalizeTag(s)]; !ok {
				missingSkills = append(missingSkills, s)
			}
		}
		for _, c := range m.RequiredCerts {
			if _, ok := certs[model.NormalizeTag(c)]; !ok {
				missingCerts = append(missingCerts, c)
			}
		}

		if len(missingSkills) > 0 {
			conflicts = append(conflicts, Conflict{
				Type:       SkillMismatch,
				Severity:   SeverityCritical,
				EntityID:   p.ID,
				EntityName: p.Name,
				MissionID:  m.ID,
				Description: fmt.Sprintf("Pilot %s is missing required skills: %s for %s.",
					p.Name, strings.Join(missingSkills, ", "), m.ID),
			})
		}
		if len(missingCerts) > 0 {
			conflicts = append(conflicts, Conflict{
				Type:       SkillMismatch,
				Severity:   SeverityCritical,
				EntityID:   p.ID,
				EntityName: p.Name,
				MissionID:  m.ID,
				Description: fmt.Sprintf("Pilot %s is missing required certifications: %s for %s.",
					p.Name, strings.Join(missingCerts, ", "), m.ID),
			})
		}
	}
	return conflicts
}

// DetectMaintenanceConflicts reports assigned drones that are in maintenance
// or whose maintenance falls due before their mission ends. A drone already
// in Maintenance status short-circuits the date rule, so only the first
// applicable rule fires per mission/drone pair.
func DetectMaintenanceConflicts(drones []model.Drone, missions []model.Mission) []Conflict {
	byID := make(map[string]model.Drone, len(drones))
	for _, d := range drones {
		byID[d.ID] = d
	}

	var conflicts []Conflict
	for _, m := range missions {
		d, ok := byID[m.AssignedDrone]
		if m.AssignedDrone == "" || !ok {
			continue
		}

		if d.Status == model.DroneMaintenance {
			conflicts = append(conflicts, Conflict{
				Type:       Maintenance,
				Severity:   SeverityCritical,
				EntityID:   d.ID,
				EntityName: d.Model,
				MissionID:  m.ID,
				Description: fmt.Sprintf(
					"Drone %s (%s) is currently in Maintenance and cannot be assigned to %s.",
					d.Model, d.ID, m.ID),
			})
			continue
		}

		if !d.MaintenanceDue.IsZero() && !m.EndDate.IsZero() && !d.MaintenanceDue.After(m.EndDate) {
			conflicts = append(conflicts, Conflict{
				Type:       Maintenance,
				Severity:   SeverityWarning,
				EntityID:   d.ID,
				EntityName: d.Model,
				MissionID:  m.ID,
				Description: fmt.Sprintf(
					"Drone %s (%s) has maintenance due on %s but mission %s ends on %s.",
					d.Model, d.ID, model.FormatDate(d.MaintenanceDue), m.ID, model.FormatDate(m.EndDate)),
			})
		}
	}
	return conflicts
}

// DetectLocationMismatches reports assigned pilots and drones based away from
// their mission's location. Each mismatching resource yields its own
// conflict. A mission without a location suppresses the check.
func DetectLocationMismatches(pilots []model.Pilot, drones []model.Drone, missions []model.Mission) []Conflict {
	pilotByID := make(map[string]model.Pilot, len(pilots))
	for _, p := range pilots {
		pilotByID[p.ID] = p
	}
	droneByID := make(map[string]model.Drone, len(drones))
	for _, d := range drones {
		droneByID[d.ID] = d
	}

	var conflicts []Conflict
	for _, m := range missions {
		if m.Location == "" {
			continue
		}

		if p, ok := pilotByID[m.AssignedPilot]; ok && m.AssignedPilot != "" {
			if p.Location != "" && !model.FoldEqual(p.Location, m.Location) {
				conflicts = append(conflicts, Conflict{
					Type:       LocationMismatch,
					Severity:   SeverityWarning,
					EntityID:   p.ID,
					EntityName: p.Name,
					MissionID:  m.ID,
					Description: fmt.Sprintf("Pilot %s is in %s but mission %s is in %s.",
						p.Name, p.Location, m.ID, m.Location),
				})
			}
		}

		if d, ok := droneByID[m.AssignedDrone]; ok && m.AssignedDrone != "" {
			if d.Location != "" && !model.FoldEqual(d.Location, m.Location) {
				conflicts = append(conflicts, Conflict{
					Type:       LocationMismatch,
					Severity:   SeverityWarning,
					EntityID:   d.ID,
					EntityName: d.Model,
					MissionID:  m.ID,
					Description: fmt.Sprintf("Drone %s (%s) is in %s but mission %s is in %s.",
						d.Model, d.ID, d.Location, m.ID, m.Location),
				})
			}
		}
	}
	return conflicts
}
