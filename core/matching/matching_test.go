package matching

import (
	"math"
	"testing"
	"time"

	"github.com/skystride/droneops/core/model"
)

func day(s string) time.Time {
	t, _ := time.ParseInLocation(model.DateLayout, s, time.UTC)
	return t
}

func TestScorePilot_Components(t *testing.T) {
	e := New()
	mission := model.Mission{
		ID:             "PRJ001",
		Location:       "Bangalore",
		RequiredSkills: []string{"Mapping", "Thermal"},
		StartDate:      day("2024-02-01"),
		EndDate:        day("2024-02-05"),
	}
	pilot := model.Pilot{
		ID:       "P001",
		Name:     "Arjun",
		Skills:   []string{"Mapping"},
		Location: "Bangalore",
		Status:   model.PilotAvailable,
	}

	score, bd := e.ScorePilot(pilot, mission)
	if bd.Skill != 0.5 {
		t.Errorf("skill component = %v, want 0.5", bd.Skill)
	}
	if bd.Cert != 1.0 {
		t.Errorf("cert component = %v, want 1.0 (vacuous)", bd.Cert)
	}
	if bd.Location != 1.0 {
		t.Errorf("location component = %v, want 1.0", bd.Location)
	}
	if bd.Availability != 0.5 {
		t.Errorf("availability = %v, want 0.5 partial credit", bd.Availability)
	}
	want := 0.5*0.40 + 1.0*0.30 + 1.0*0.15 + 0.5*0.15
	if math.Abs(score-want) > 1e-9 {
		t.Errorf("composite = %v, want %v", score, want)
	}
	if score < 0 || score > 1 {
		t.Errorf("composite out of bounds: %v", score)
	}
}

func TestScorePilot_Availability(t *testing.T) {
	e := New()
	mission := model.Mission{ID: "PRJ001", StartDate: day("2024-02-01"), EndDate: day("2024-02-05")}

	ready := model.Pilot{AvailableFrom: day("2024-01-15")}
	late := model.Pilot{AvailableFrom: day("2024-02-10")}
	unknown := model.Pilot{}

	if _, bd := e.ScorePilot(ready, mission); bd.Availability != 1.0 {
		t.Errorf("ready pilot availability = %v, want 1.0", bd.Availability)
	}
	if _, bd := e.ScorePilot(late, mission); bd.Availability != 0.0 {
		t.Errorf("late pilot availability = %v, want 0.0", bd.Availability)
	}
	if _, bd := e.ScorePilot(unknown, mission); bd.Availability != 0.5 {
		t.Errorf("unknown availability = %v, want 0.5", bd.Availability)
	}
	// Boundary: available exactly on the start day counts.
	onTime := model.Pilot{AvailableFrom: day("2024-02-01")}
	if _, bd := e.ScorePilot(onTime, mission); bd.Availability != 1.0 {
		t.Errorf("on-time availability = %v, want 1.0", bd.Availability)
	}
}

func TestScoreDrone_Maintenance(t *testing.T) {
	e := New()
	mission := model.Mission{
		ID:             "PRJ001",
		Location:       "Mumbai",
		RequiredSkills: []string{"LiDAR"},
		StartDate:      day("2024-02-01"),
		EndDate:        day("2024-02-05"),
	}

	safe := model.Drone{Capabilities: []string{"LiDAR"}, Location: "Mumbai", MaintenanceDue: day("2024-03-01")}
	score, bd := e.ScoreDrone(safe, mission)
	if bd.Capability != 1.0 || bd.Location != 1.0 || bd.Maintenance != 1.0 {
		t.Fatalf("unexpected breakdown: %+v", bd)
	}
	if math.Abs(score-1.0) > 1e-9 {
		t.Errorf("full-match drone score = %v, want 1.0", score)
	}

	due := model.Drone{MaintenanceDue: day("2024-02-05")}
	if _, bd := e.ScoreDrone(due, mission); bd.Maintenance != 0.0 {
		t.Errorf("maintenance due on mission end must score 0, got %v", bd.Maintenance)
	}
	unknown := model.Drone{}
	if _, bd := e.ScoreDrone(unknown, mission); bd.Maintenance != 0.5 {
		t.Errorf("unknown maintenance = %v, want 0.5", bd.Maintenance)
	}
}

func TestFindBestPilots(t *testing.T) {
	e := New()
	mission := model.Mission{ID: "PRJ001", RequiredSkills: []string{"Mapping"}, Location: "Pune"}
	pilots := []model.Pilot{
		{ID: "P001", Status: model.PilotAssigned, Skills: []string{"Mapping"}, Location: "Pune"},
		{ID: "P002", Status: model.PilotAvailable, Skills: []string{"Mapping"}, Location: "Pune"},
		{ID: "P003", Status: model.PilotAvailable},
		{ID: "P004", Status: model.PilotOnLeave, Skills: []string{"Mapping"}},
		{ID: "P005", Status: model.PilotAvailable, Skills: []string{"Mapping"}},
	}

	got := e.FindBestPilots(pilots, mission, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}
	if got[0].Pilot.ID != "P002" {
		t.Errorf("best candidate = %s, want P002", got[0].Pilot.ID)
	}
	// Assigned and On Leave pilots never qualify.
	for _, c := range got {
		if c.Pilot.ID == "P001" || c.Pilot.ID == "P004" {
			t.Errorf("non-available pilot %s ranked", c.Pilot.ID)
		}
	}
}

func TestFindBestPilots_StableTies(t *testing.T) {
	e := New()
	mission := model.Mission{ID: "PRJ001"}
	pilots := []model.Pilot{
		{ID: "P010", Status: model.PilotAvailable},
		{ID: "P011", Status: model.PilotAvailable},
		{ID: "P012", Status: model.PilotAvailable},
	}
	got := e.FindBestPilots(pilots, mission, 0)
	if len(got) != DefaultTopN {
		t.Fatalf("expected default top %d, got %d", DefaultTopN, len(got))
	}
	for i, want := range []string{"P010", "P011", "P012"} {
		if got[i].Pilot.ID != want {
			t.Errorf("tie order broken at %d: got %s, want %s", i, got[i].Pilot.ID, want)
		}
	}
}

func TestFindBestDrones_Empty(t *testing.T) {
	e := New()
	got := e.FindBestDrones([]model.Drone{{ID: "D001", Status: model.DroneMaintenance}}, model.Mission{ID: "PRJ001"}, 3)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}
