package analytics

import (
	"math"
	"testing"

	"github.com/skystride/droneops/core/conflict"
	"github.com/skystride/droneops/core/matching"
	"github.com/skystride/droneops/core/model"
)

func TestSummarize(t *testing.T) {
	pilots := []model.Pilot{
		{ID: "P1", Status: model.PilotAssigned},
		{ID: "P2", Status: model.PilotAvailable},
		{ID: "P3", Status: model.PilotOnLeave},
		{ID: "P4", Status: model.PilotInactive},
	}
	drones := []model.Drone{
		{ID: "D1", Status: model.DroneAssigned},
		{ID: "D2", Status: model.DroneMaintenance},
	}
	missions := []model.Mission{
		{ID: "M1", Priority: model.PriorityUrgent, AssignedPilot: "P1", AssignedDrone: "D1"},
		{ID: "M2", Priority: model.PriorityLow, AssignedPilot: "P1"},
		{ID: "M3", Priority: model.PriorityLow, AssignedDrone: "D1"},
		{ID: "M4", Priority: model.PriorityStandard},
	}

	r := Summarize(pilots, drones, missions)

	if r.Pilots.Assigned != 1 || r.Pilots.Available != 1 || r.Pilots.Unavailable != 2 {
		t.Errorf("pilot utilization: %+v", r.Pilots)
	}
	if r.Pilots.Rate != 0.25 {
		t.Errorf("pilot rate = %v", r.Pilots.Rate)
	}
	if r.Drones.Rate != 0.5 {
		t.Errorf("drone rate = %v", r.Drones.Rate)
	}
	if r.Missions.FullyStaffed != 1 || r.Missions.PilotOnly != 1 || r.Missions.DroneOnly != 1 || r.Missions.Unstaffed != 1 {
		t.Errorf("coverage: %+v", r.Missions)
	}
	if r.Missions.ByPriority[model.PriorityLow] != 2 {
		t.Errorf("priority tally: %+v", r.Missions.ByPriority)
	}
	if r.Missions.CoverageRate != 0.25 {
		t.Errorf("coverage rate = %v", r.Missions.CoverageRate)
	}
}

func TestSummarize_Empty(t *testing.T) {
	r := Summarize(nil, nil, nil)
	if r.Pilots.Rate != 0 || r.Missions.CoverageRate != 0 {
		t.Errorf("empty roster should have zero rates: %+v", r)
	}
}

func TestPilotScoreStats(t *testing.T) {
	e := matching.New()
	m := model.Mission{ID: "M1", RequiredSkills: []string{"Thermal"}, Location: "Bangalore"}
	pilots := []model.Pilot{
		{ID: "P1", Skills: []string{"Thermal"}, Location: "Bangalore"},
		{ID: "P2", Skills: []string{"Thermal"}},
		{ID: "P3"},
	}

	s := PilotScoreStats(e, pilots, m)
	if s.Count != 3 {
		t.Fatalf("count = %d", s.Count)
	}
	if s.Min > s.Median || s.Median > s.Max {
		t.Errorf("ordering violated: %+v", s)
	}
	// P1: 0.4 + 0.3 + 0.15 + 0.075 = 0.925
	if math.Abs(s.Max-0.925) > 1e-9 {
		t.Errorf("max = %v, want 0.925", s.Max)
	}
	if s.StdDev <= 0 {
		t.Errorf("spread scores should have positive stddev: %v", s.StdDev)
	}
}

func TestScoreStats_Empty(t *testing.T) {
	if s := PilotScoreStats(matching.New(), nil, model.Mission{}); s.Count != 0 {
		t.Fatalf("empty input: %+v", s)
	}
}

func TestBreakdownConflicts(t *testing.T) {
	b := BreakdownConflicts([]conflict.Conflict{
		{Type: conflict.DoubleBooking, Severity: conflict.SeverityCritical},
		{Type: conflict.DoubleBooking, Severity: conflict.SeverityCritical},
		{Type: conflict.Maintenance, Severity: conflict.SeverityWarning},
	})
	if b.Total != 3 {
		t.Fatalf("total = %d", b.Total)
	}
	if b.ByType[string(conflict.DoubleBooking)] != 2 {
		t.Errorf("type tally: %+v", b.ByType)
	}
	if b.BySeverity[string(conflict.SeverityWarning)] != 1 {
		t.Errorf("severity tally: %+v", b.BySeverity)
	}
}
