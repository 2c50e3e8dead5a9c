package fleet

import "github.com/skystride/droneops/core/model"

// PilotFilter enumerates the recognized roster query dimensions. Zero-value
// fields are ignored; tag filters match when any listed tag is present.
type PilotFilter struct {
	Location string
	Status   model.PilotStatus
	Skills   []string
	Certs    []string
}

// DroneFilter enumerates the recognized fleet query dimensions.
type DroneFilter struct {
	Location     string
	Status       model.DroneStatus
	Capabilities []string
}

// MissionFilter enumerates the recognized mission query dimensions.
type MissionFilter struct {
	Location  string
	Priority  model.Priority
	Unstaffed bool // only missions without an assigned pilot
}

func anyTagMatch(want, have []string) bool {
	if len(want) == 0 {
		return true
	}
	set := model.TagSet(have)
	for _, w := range want {
		if _, ok := set[model.NormalizeTag(w)]; ok {
			return true
		}
	}
	return false
}

// FilterPilots returns the pilots matching every set dimension, in roster
// order.
func (s *Snapshot) FilterPilots(f PilotFilter) []model.Pilot {
	var out []model.Pilot
	for _, p := range s.pilots {
		if f.Location != "" && !model.FoldEqual(p.Location, f.Location) {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if !anyTagMatch(f.Skills, p.Skills) {
			continue
		}
		if !anyTagMatch(f.Certs, p.Certifications) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterDrones returns the drones matching every set dimension.
func (s *Snapshot) FilterDrones(f DroneFilter) []model.Drone {
	var out []model.Drone
	for _, d := range s.drones {
		if f.Location != "" && !model.FoldEqual(d.Location, f.Location) {
			continue
		}
		if f.Status != "" && d.Status != f.Status {
			continue
		}
		if !anyTagMatch(f.Capabilities, d.Capabilities) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// FilterMissions returns the missions matching every set dimension.
func (s *Snapshot) FilterMissions(f MissionFilter) []model.Mission {
	var out []model.Mission
	for _, m := range s.missions {
		if f.Location != "" && !model.FoldEqual(m.Location, f.Location) {
			continue
		}
		if f.Priority != "" && m.Priority != f.Priority {
			continue
		}
		if f.Unstaffed && m.AssignedPilot != "" {
			continue
		}
		out = append(out, m)
	}
	return out
}
