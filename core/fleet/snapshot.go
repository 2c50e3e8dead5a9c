// Package fleet holds the in-memory entity snapshot and the store that
// serializes mutations against it. Cross-references between missions and
// resources are stored as ID values; every paired-field update goes through a
// single mutation function so the two sides can never drift apart.
package fleet

import (
	"fmt"
	"strings"

	"github.com/skystride/droneops/core/model"
)

// Snapshot is the full entity state for one session. It is loaded as a whole,
// mutated only through its methods, and persisted back as a full replacement.
// The slices keep roster order; the indexes map IDs to slice positions.
type Snapshot struct {
	pilots   []model.Pilot
	drones   []model.Drone
	missions []model.Mission

	pilotIdx   map[string]int
	droneIdx   map[string]int
	missionIdx map[string]int
}

// NewSnapshot builds a snapshot from loaded rosters. On duplicate IDs the
// first record wins.
func NewSnapshot(pilots []model.Pilot, drones []model.Drone, missions []model.Mission) *Snapshot {
	s := &Snapshot{
		pilots:     pilots,
		drones:     drones,
		missions:   missions,
		pilotIdx:   make(map[string]int, len(pilots)),
		droneIdx:   make(map[string]int, len(drones)),
		missionIdx: make(map[string]int, len(missions)),
	}
	for i, p := range pilots {
		if _, ok := s.pilotIdx[p.ID]; !ok {
			s.pilotIdx[p.ID] = i
		}
	}
	for i, d := range drones {
		if _, ok := s.droneIdx[d.ID]; !ok {
			s.droneIdx[d.ID] = i
		}
	}
	for i, m := range missions {
		if _, ok := s.missionIdx[m.ID]; !ok {
			s.missionIdx[m.ID] = i
		}
	}
	return s
}

// Pilots returns the pilot roster in load order.
func (s *Snapshot) Pilots() []model.Pilot { return s.pilots }

// Drones returns the drone fleet in load order.
func (s *Snapshot) Drones() []model.Drone { return s.drones }

// Missions returns the mission list in load order.
func (s *Snapshot) Missions() []model.Mission { return s.missions }

// Pilot looks up a pilot by ID.
func (s *Snapshot) Pilot(id string) (*model.Pilot, bool) {
	if i, ok := s.pilotIdx[id]; ok {
		return &s.pilots[i], true
	}
	return nil, false
}

// Drone looks up a drone by ID.
func (s *Snapshot) Drone(id string) (*model.Drone, bool) {
	if i, ok := s.droneIdx[id]; ok {
		return &s.drones[i], true
	}
	return nil, false
}

// Mission looks up a mission by ID.
func (s *Snapshot) Mission(id string) (*model.Mission, bool) {
	if i, ok := s.missionIdx[id]; ok {
		return &s.missions[i], true
	}
	return nil, false
}

// FindPilot resolves an identifier to a pilot: exact ID or name first, then
// partial name, all case-insensitive.
func (s *Snapshot) FindPilot(identifier string) (*model.Pilot, bool) {
	needle := strings.ToLower(strings.TrimSpace(identifier))
	if needle == "" {
		return nil, false
	}
	for i := range s.pilots {
		if strings.EqualFold(s.pilots[i].ID, needle) || strings.EqualFold(s.pilots[i].Name, needle) {
			return &s.pilots[i], true
		}
	}
	for i := range s.pilots {
		if strings.Contains(strings.ToLower(s.pilots[i].Name), needle) {
			return &s.pilots[i], true
		}
	}
	return nil, false
}

// FindDrone resolves an identifier to a drone: exact ID or model first, then
// partial model name.
func (s *Snapshot) FindDrone(identifier string) (*model.Drone, bool) {
	needle := strings.ToLower(strings.TrimSpace(identifier))
	if needle == "" {
		return nil, false
	}
	for i := range s.drones {
		if strings.EqualFold(s.drones[i].ID, needle) || strings.EqualFold(s.drones[i].Model, needle) {
			return &s.drones[i], true
		}
	}
	for i := range s.drones {
		if strings.Contains(strings.ToLower(s.drones[i].Model), needle) {
			return &s.drones[i], true
		}
	}
	return nil, false
}

// FindMission resolves an identifier to a mission: exact ID first, then
// partial match on ID or client.
func (s *Snapshot) FindMission(identifier string) (*model.Mission, bool) {
	needle := strings.ToLower(strings.TrimSpace(identifier))
	if needle == "" {
		return nil, false
	}
	for i := range s.missions {
		if strings.EqualFold(s.missions[i].ID, needle) {
			return &s.missions[i], true
		}
	}
	for i := range s.missions {
		if strings.Contains(strings.ToLower(s.missions[i].ID), needle) ||
			strings.Contains(strings.ToLower(s.missions[i].Client), needle) {
			return &s.missions[i], true
		}
	}
	return nil, false
}

// AssignPilot binds a pilot to a mission, updating both sides of the
// relationship in one step.
func (s *Snapshot) AssignPilot(missionID, pilotID string) error {
	m, ok := s.Mission(missionID)
	if !ok {
		return fmt.Errorf("mission %s not found", missionID)
	}
	p, ok := s.Pilot(pilotID)
	if !ok {
		return fmt.Errorf("pilot %s not found", pilotID)
	}
	m.AssignedPilot = p.ID
	p.Status = model.PilotAssigned
	p.CurrentAssignment = m.ID
	return nil
}

// UnassignPilot releases a pilot back to Available and clears the mission
// side if it still points at this pilot.
func (s *Snapshot) UnassignPilot(pilotID string) error {
	p, ok := s.Pilot(pilotID)
	if !ok {
		return fmt.Errorf("pilot %s not found", pilotID)
	}
	if m, ok := s.Mission(p.CurrentAssignment); ok && m.AssignedPilot == p.ID {
		m.AssignedPilot = ""
	}
	p.Status = model.PilotAvailable
	p.CurrentAssignment = ""
	return nil
}

// AssignDrone binds a drone to a mission, updating both sides in one step.
func (s *Snapshot) AssignDrone(missionID, droneID string) error {
	m, ok := s.Mission(missionID)
	if !ok {
		return fmt.Errorf("mission %s not found", missionID)
	}
	d, ok := s.Drone(droneID)
	if !ok {
		return fmt.Errorf("drone %s not found", droneID)
	}
	m.AssignedDrone = d.ID
	d.Status = model.DroneAssigned
	d.CurrentAssignment = m.ID
	return nil
}

// UnassignDrone releases a drone back to Available and clears the mission
// side if it still points at this drone.
func (s *Snapshot) UnassignDrone(droneID string) error {
	d, ok := s.Drone(droneID)
	if !ok {
		return fmt.Errorf("drone %s not found", droneID)
	}
	if m, ok := s.Mission(d.CurrentAssignment); ok && m.AssignedDrone == d.ID {
		m.AssignedDrone = ""
	}
	d.Status = model.DroneAvailable
	d.CurrentAssignment = ""
	return nil
}

// ClearMissionPilot removes only the mission's pilot reference. The pilot's
// own fields are left for the caller to rebind; used when a swap displaces a
// pilot that is immediately reassigned elsewhere.
func (s *Snapshot) ClearMissionPilot(missionID string) error {
	m, ok := s.Mission(missionID)
	if !ok {
		return fmt.Errorf("mission %s not found", missionID)
	}
	m.AssignedPilot = ""
	return nil
}

// SetPilotStatus updates a pilot's status. Any non-Assigned status clears the
// assignment on both sides; Assigned cannot be entered directly without a
// mission.
func (s *Snapshot) SetPilotStatus(pilotID string, status model.PilotStatus) error {
	p, ok := s.Pilot(pilotID)
	if !ok {
		return fmt.Errorf("pilot %s not found", pilotID)
	}
	if status == model.PilotAssigned {
		if p.CurrentAssignment == "" {
			return fmt.Errorf("pilot %s has no mission: assign one instead of forcing status", pilotID)
		}
		p.Status = status
		return nil
	}
	if m, ok := s.Mission(p.CurrentAssignment); ok && m.AssignedPilot == p.ID {
		m.AssignedPilot = ""
	}
	p.Status = status
	p.CurrentAssignment = ""
	return nil
}

// SetDroneStatus updates a drone's status with the same pairing rules as
// SetPilotStatus.
func (s *Snapshot) SetDroneStatus(droneID string, status model.DroneStatus) error {
	d, ok := s.Drone(droneID)
	if !ok {
		return fmt.Errorf("drone %s not found", droneID)
	}
	if status == model.DroneAssigned {
		if d.CurrentAssignment == "" {
			return fmt.Errorf("drone %s has no mission: assign one instead of forcing status", droneID)
		}
		d.Status = status
		return nil
	}
	if m, ok := s.Mission(d.CurrentAssignment); ok && m.AssignedDrone == d.ID {
		m.AssignedDrone = ""
	}
	d.Status = status
	d.CurrentAssignment = ""
	return nil
}

// CancelMission releases both resources of a mission back to Available.
// Returns the released pilot and drone IDs (empty when none).
func (s *Snapshot) CancelMission(missionID string) (pilotID, droneID string, err error) {
	m, ok := s.Mission(missionID)
	if !ok {
		return "", "", fmt.Errorf("mission %s not found", missionID)
	}
	if m.AssignedPilot != "" {
		pilotID = m.AssignedPilot
		if p, ok := s.Pilot(pilotID); ok {
			p.Status = model.PilotAvailable
			p.CurrentAssignment = ""
		}
		m.AssignedPilot = ""
	}
	if m.AssignedDrone != "" {
		droneID = m.AssignedDrone
		if d, ok := s.Drone(droneID); ok {
			d.Status = model.DroneAvailable
			d.CurrentAssignment = ""
		}
		m.AssignedDrone = ""
	}
	return pilotID, droneID, nil
}
