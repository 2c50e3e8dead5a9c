// Package roster exposes the read-only HTTP surface over the fleet store:
// roster listings, conflict scans, candidate rankings and the utilization
// summary. Mutations stay on the agent and CLI paths.
package roster

import (
	"encoding/json"
	"net/http"

	"github.com/skystride/droneops/core/analytics"
	"github.com/skystride/droneops/core/conflict"
	"github.com/skystride/droneops/core/fleet"
	"github.com/skystride/droneops/core/matching"
	"github.com/skystride/droneops/core/model"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// NewPilotsHandler serves GET /api/pilots with optional location, status,
// skill and cert query filters.
func NewPilotsHandler(store *fleet.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !requireGet(w, r) {
			return
		}
		q := r.URL.Query()
		f := fleet.PilotFilter{
			Location: q.Get("location"),
			Status:   model.PilotStatus(q.Get("status")),
			Skills:   q["skill"],
			Certs:    q["cert"],
		}
		var pilots []model.Pilot
		store.View(func(s *fleet.Snapshot) {
			pilots = s.FilterPilots(f)
		})
		writeJSON(w, pilots)
	})
}

// NewDronesHandler serves GET /api/drones.
func NewDronesHandler(store *fleet.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !requireGet(w, r) {
			return
		}
		q := r.URL.Query()
		f := fleet.DroneFilter{
			Location:     q.Get("location"),
			Status:       model.DroneStatus(q.Get("status")),
			Capabilities: q["capability"],
		}
		var drones []model.Drone
		store.View(func(s *fleet.Snapshot) {
			drones = s.FilterDrones(f)
		})
		writeJSON(w, drones)
	})
}

// NewMissionsHandler serves GET /api/missions.
func NewMissionsHandler(store *fleet.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !requireGet(w, r) {
			return
		}
		q := r.URL.Query()
		f := fleet.MissionFilter{
			Location:  q.Get("location"),
			Priority:  model.Priority(q.Get("priority")),
			Unstaffed: q.Get("unstaffed") == "true",
		}
		var missions []model.Mission
		store.View(func(s *fleet.Snapshot) {
			missions = s.FilterMissions(f)
		})
		writeJSON(w, missions)
	})
}

// NewConflictsHandler serves GET /api/conflicts: a fresh full scan per
// request.
func NewConflictsHandler(store *fleet.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !requireGet(w, r) {
			return
		}
		var conflicts []conflict.Conflict
		store.View(func(s *fleet.Snapshot) {
			conflicts = conflict.DetectAll(s.Pilots(), s.Drones(), s.Missions())
		})
		writeJSON(w, conflicts)
	})
}

// CandidatesResponse pairs the ranked pilots and drones for one mission.
type CandidatesResponse struct {
	MissionID string                    `json:"mission_id"`
	Pilots    []matching.PilotCandidate `json:"pilots"`
	Drones    []matching.DroneCandidate `json:"drones"`
}

// NewCandidatesHandler serves GET /api/candidates?mission=<id>: the ranked
// available pilots and drones for the mission.
func NewCandidatesHandler(store *fleet.Store, match matching.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !requireGet(w, r) {
			return
		}
		missionID := r.URL.Query().Get("mission")
		if missionID == "" {
			http.Error(w, "missing mission parameter", http.StatusBadRequest)
			return
		}
		var (
			resp  CandidatesResponse
			found bool
		)
		store.View(func(s *fleet.Snapshot) {
			m, ok := s.FindMission(missionID)
			if !ok {
				return
			}
			found = true
			resp = CandidatesResponse{
				MissionID: m.ID,
				Pilots:    match.FindBestPilots(s.Pilots(), *m, matching.DefaultTopN),
				Drones:    match.FindBestDrones(s.Drones(), *m, matching.DefaultTopN),
			}
		})
		if !found {
			http.Error(w, "mission not found", http.StatusNotFound)
			return
		}
		writeJSON(w, resp)
	})
}

// NewSummaryHandler serves GET /api/summary: utilization, coverage and
// conflict tallies.
func NewSummaryHandler(store *fleet.Store) http.Handler {
	type summary struct {
		analytics.Report
		Conflicts analytics.ConflictBreakdown `json:"conflicts"`
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !requireGet(w, r) {
			return
		}
		var out summary
		store.View(func(s *fleet.Snapshot) {
			out.Report = analytics.Summarize(s.Pilots(), s.Drones(), s.Missions())
			out.Conflicts = analytics.BreakdownConflicts(
				conflict.DetectAll(s.Pilots(), s.Drones(), s.Missions()))
		})
		writeJSON(w, out)
	})
}
