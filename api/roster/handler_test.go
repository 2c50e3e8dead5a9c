package roster

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skystride/droneops/core/conflict"
	"github.com/skystride/droneops/core/fleet"
	"github.com/skystride/droneops/core/matching"
	"github.com/skystride/droneops/core/model"
)

func newTestFleet(t *testing.T) *fleet.Store {
	t.Helper()
	provider := fleet.StaticProvider{
		Pilots: []model.Pilot{
			{ID: "P001", Name: "Arjun", Status: model.PilotAvailable, Location: "Bangalore",
				Skills: []string{"Thermal"}},
			{ID: "P002", Name: "Meera", Status: model.PilotAssigned, CurrentAssignment: "PRJ100"},
		},
		Drones: []model.Drone{
			{ID: "D001", Model: "Matrice", Status: model.DroneAvailable, Capabilities: []string{"Thermal"}},
		},
		Missions: []model.Mission{
			{ID: "PRJ100", Client: "AgriCo", Priority: model.PriorityLow, AssignedPilot: "P002",
				RequiredSkills: []string{"Mapping"}},
			{ID: "PRJ200", Client: "GridCo", Priority: model.PriorityUrgent,
				RequiredSkills: []string{"Thermal"}},
		},
	}
	st := fleet.NewStore(provider, fleet.StoreOptions{})
	if err := st.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	return st
}

func TestPilotsHandler(t *testing.T) {
	h := NewPilotsHandler(newTestFleet(t))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/pilots?status=Available", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var pilots []model.Pilot
	if err := json.Unmarshal(rr.Body.Bytes(), &pilots); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(pilots) != 1 || pilots[0].ID != "P001" {
		t.Fatalf("unexpected pilots: %+v", pilots)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/api/pilots", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST status = %d", rr.Code)
	}
}

func TestMissionsHandler_Unstaffed(t *testing.T) {
	h := NewMissionsHandler(newTestFleet(t))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/missions?unstaffed=true", nil))
	var missions []model.Mission
	if err := json.Unmarshal(rr.Body.Bytes(), &missions); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(missions) != 1 || missions[0].ID != "PRJ200" {
		t.Fatalf("unexpected missions: %+v", missions)
	}
}

func TestConflictsHandler(t *testing.T) {
	h := NewConflictsHandler(newTestFleet(t))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/conflicts", nil))
	var conflicts []conflict.Conflict
	if err := json.Unmarshal(rr.Body.Bytes(), &conflicts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// P002 is missing the Mapping skill on PRJ100.
	if len(conflicts) != 1 || conflicts[0].Type != conflict.SkillMismatch {
		t.Fatalf("unexpected conflicts: %+v", conflicts)
	}
}

func TestCandidatesHandler(t *testing.T) {
	h := NewCandidatesHandler(newTestFleet(t), matching.New())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/candidates?mission=PRJ200", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp CandidatesResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Pilots) != 1 || resp.Pilots[0].Pilot.ID != "P001" {
		t.Fatalf("unexpected pilots: %+v", resp.Pilots)
	}
	if len(resp.Drones) != 1 || resp.Drones[0].Drone.ID != "D001" {
		t.Fatalf("unexpected drones: %+v", resp.Drones)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/candidates?mission=PRJ999", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown mission status = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/candidates", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("missing mission status = %d", rr.Code)
	}
}

func TestSummaryHandler(t *testing.T) {
	h := NewSummaryHandler(newTestFleet(t))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/summary", nil))
	var out struct {
		Pilots struct {
			Total    int `json:"total"`
			Assigned int `json:"assigned"`
		} `json:"pilots"`
		Conflicts struct {
			Total int `json:"total"`
		} `json:"conflicts"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Pilots.Total != 2 || out.Pilots.Assigned != 1 {
		t.Fatalf("unexpected summary: %+v", out)
	}
	if out.Conflicts.Total != 1 {
		t.Fatalf("conflict tally: %+v", out)
	}
}
