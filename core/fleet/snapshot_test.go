package fleet

import (
	"testing"

	"github.com/skystride/droneops/core/model"
)

func testRoster() ([]model.Pilot, []model.Drone, []model.Mission) {
	pilots := []model.Pilot{
		{ID: "P001", Name: "Arjun Rao", Status: model.PilotAvailable, Location: "Bangalore",
			Skills: []string{"Thermal", "Mapping"}, Certifications: []string{"DGCA"}},
		{ID: "P002", Name: "Meera Nair", Status: model.PilotAssigned, CurrentAssignment: "PRJ100",
			Location: "Mumbai", Skills: []string{"LiDAR"}},
		{ID: "P003", Name: "Ravi Iyer", Status: model.PilotOnLeave, Location: "Bangalore"},
	}
	drones := []model.Drone{
		{ID: "D001", Model: "Matrice 350", Status: model.DroneAvailable, Location: "Bangalore",
			Capabilities: []string{"Thermal"}},
		{ID: "D002", Model: "Mavic 3E", Status: model.DroneAssigned, CurrentAssignment: "PRJ100"},
	}
	missions := []model.Mission{
		{ID: "PRJ100", Client: "AgriCo", Priority: model.PriorityLow,
			AssignedPilot: "P002", AssignedDrone: "D002"},
		{ID: "PRJ200", Client: "GridCo", Priority: model.PriorityUrgent, Location: "Bangalore"},
	}
	return pilots, drones, missions
}

func TestNewSnapshot_FirstRecordWins(t *testing.T) {
	pilots := []model.Pilot{
		{ID: "P001", Name: "First"},
		{ID: "P001", Name: "Second"},
	}
	s := NewSnapshot(pilots, nil, nil)
	p, ok := s.Pilot("P001")
	if !ok || p.Name != "First" {
		t.Fatalf("duplicate ID should keep the first record, got %+v", p)
	}
}

func TestFindByPartialName(t *testing.T) {
	s := NewSnapshot(testRoster())

	p, ok := s.FindPilot("meera")
	if !ok || p.ID != "P002" {
		t.Fatalf("partial name lookup failed: %+v", p)
	}
	// Exact ID beats partial containment.
	p, ok = s.FindPilot("P001")
	if !ok || p.ID != "P001" {
		t.Fatalf("exact id lookup failed: %+v", p)
	}
	d, ok := s.FindDrone("mavic")
	if !ok || d.ID != "D002" {
		t.Fatalf("drone model lookup failed: %+v", d)
	}
	m, ok := s.FindMission("agrico")
	if !ok || m.ID != "PRJ100" {
		t.Fatalf("mission client lookup failed: %+v", m)
	}
	if _, ok := s.FindPilot("nobody"); ok {
		t.Fatal("unknown identifier should not resolve")
	}
}

func TestAssignUnassignPairing(t *testing.T) {
	s := NewSnapshot(testRoster())

	if err := s.AssignPilot("PRJ200", "P001"); err != nil {
		t.Fatalf("assign: %v", err)
	}
	p, _ := s.Pilot("P001")
	m, _ := s.Mission("PRJ200")
	if p.Status != model.PilotAssigned || p.CurrentAssignment != "PRJ200" || m.AssignedPilot != "P001" {
		t.Fatalf("pairing broken after assign: pilot=%+v mission=%+v", p, m)
	}

	if err := s.UnassignPilot("P001"); err != nil {
		t.Fatalf("unassign: %v", err)
	}
	p, _ = s.Pilot("P001")
	m, _ = s.Mission("PRJ200")
	if p.Status != model.PilotAvailable || p.CurrentAssignment != "" || m.AssignedPilot != "" {
		t.Fatalf("pairing broken after unassign: pilot=%+v mission=%+v", p, m)
	}

	if err := s.AssignPilot("PRJ999", "P001"); err == nil {
		t.Fatal("assign to unknown mission must fail")
	}
}

func TestSetPilotStatus(t *testing.T) {
	s := NewSnapshot(testRoster())

	// Leaving Assigned releases the mission too.
	if err := s.SetPilotStatus("P002", model.PilotOnLeave); err != nil {
		t.Fatalf("set status: %v", err)
	}
	p, _ := s.Pilot("P002")
	m, _ := s.Mission("PRJ100")
	if p.Status != model.PilotOnLeave || p.CurrentAssignment != "" || m.AssignedPilot != "" {
		t.Fatalf("status change did not release mission: pilot=%+v mission=%+v", p, m)
	}

	// Assigned cannot be forced without a mission.
	if err := s.SetPilotStatus("P001", model.PilotAssigned); err == nil {
		t.Fatal("forcing Assigned without a mission must fail")
	}
}

func TestCancelMission(t *testing.T) {
	s := NewSnapshot(testRoster())

	pilotID, droneID, err := s.CancelMission("PRJ100")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if pilotID != "P002" || droneID != "D002" {
		t.Fatalf("released ids = %q, %q", pilotID, droneID)
	}
	p, _ := s.Pilot("P002")
	d, _ := s.Drone("D002")
	m, _ := s.Mission("PRJ100")
	if p.Status != model.PilotAvailable || d.Status != model.DroneAvailable {
		t.Fatal("resources not released")
	}
	if m.AssignedPilot != "" || m.AssignedDrone != "" {
		t.Fatal("mission still references released resources")
	}
}

func TestFilters(t *testing.T) {
	s := NewSnapshot(testRoster())

	got := s.FilterPilots(PilotFilter{Location: "bangalore", Status: model.PilotAvailable})
	if len(got) != 1 || got[0].ID != "P001" {
		t.Fatalf("location+status filter: %+v", got)
	}

	got = s.FilterPilots(PilotFilter{Skills: []string{"lidar"}})
	if len(got) != 1 || got[0].ID != "P002" {
		t.Fatalf("skill filter is case-insensitive: %+v", got)
	}

	drones := s.FilterDrones(DroneFilter{Status: model.DroneAvailable})
	if len(drones) != 1 || drones[0].ID != "D001" {
		t.Fatalf("drone status filter: %+v", drones)
	}

	missions := s.FilterMissions(MissionFilter{Unstaffed: true})
	if len(missions) != 1 || missions[0].ID != "PRJ200" {
		t.Fatalf("unstaffed filter: %+v", missions)
	}

	missions = s.FilterMissions(MissionFilter{Priority: model.PriorityLow})
	if len(missions) != 1 || missions[0].ID != "PRJ100" {
		t.Fatalf("priority filter: %+v", missions)
	}
}
