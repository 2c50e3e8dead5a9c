// Package analytics computes fleet utilization and scoring statistics from a
// roster snapshot. All functions are pure; callers pass the slices they got
// from the store.
package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/skystride/droneops/core/conflict"
	"github.com/skystride/droneops/core/matching"
	"github.com/skystride/droneops/core/model"
)

// ResourceUtilization summarizes how one resource class is spread across
// states.
type ResourceUtilization struct {
	Total       int     `json:"total"`
	Assigned    int     `json:"assigned"`
	Available   int     `json:"available"`
	Unavailable int     `json:"unavailable"`
	Rate        float64 `json:"rate"` // assigned / total, 0 when the class is empty
}

// MissionCoverage summarizes staffing across the mission book.
type MissionCoverage struct {
	Total        int                    `json:"total"`
	FullyStaffed int                    `json:"fully_staffed"`
	PilotOnly    int                    `json:"pilot_only"`
	DroneOnly    int                    `json:"drone_only"`
	Unstaffed    int                    `json:"unstaffed"`
	ByPriority   map[model.Priority]int `json:"by_priority"`
	CoverageRate float64                `json:"coverage_rate"` // fully staffed / total
}

// Report is the combined utilization picture.
type Report struct {
	Pilots   ResourceUtilization `json:"pilots"`
	Drones   ResourceUtilization `json:"drones"`
	Missions MissionCoverage     `json:"missions"`
}

// Summarize computes the utilization report for a roster.
func Summarize(pilots []model.Pilot, drones []model.Drone, missions []model.Mission) Report {
	var r Report

	r.Pilots.Total = len(pilots)
	for _, p := range pilots {
		switch p.Status {
		case model.PilotAssigned:
			r.Pilots.Assigned++
		case model.PilotAvailable:
			r.Pilots.Available++
		default:
			r.Pilots.Unavailable++
		}
	}
	if r.Pilots.Total > 0 {
		r.Pilots.Rate = float64(r.Pilots.Assigned) / float64(r.Pilots.Total)
	}

	r.Drones.Total = len(drones)
	for _, d := range drones {
		switch d.Status {
		case model.DroneAssigned:
			r.Drones.Assigned++
		case model.DroneAvailable:
			r.Drones.Available++
		default:
			r.Drones.Unavailable++
		}
	}
	if r.Drones.Total > 0 {
		r.Drones.Rate = float64(r.Drones.Assigned) / float64(r.Drones.Total)
	}

	r.Missions.Total = len(missions)
	r.Missions.ByPriority = make(map[model.Priority]int)
	for _, m := range missions {
		r.Missions.ByPriority[m.Priority]++
		switch {
		case m.AssignedPilot != "" && m.AssignedDrone != "":
			r.Missions.FullyStaffed++
		case m.AssignedPilot != "":
			r.Missions.PilotOnly++
		case m.AssignedDrone != "":
			r.Missions.DroneOnly++
		default:
			r.Missions.Unstaffed++
		}
	}
	if r.Missions.Total > 0 {
		r.Missions.CoverageRate = float64(r.Missions.FullyStaffed) / float64(r.Missions.Total)
	}
	return r
}

// ScoreStats describes the distribution of match scores for one query.
type ScoreStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
}

func scoreStats(scores []float64) ScoreStats {
	if len(scores) == 0 {
		return ScoreStats{}
	}
	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)
	s := ScoreStats{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}

// PilotScoreStats scores every pilot in the roster against the mission,
// regardless of status, and summarizes the distribution. It answers "how
// deep is our bench for this mission".
func PilotScoreStats(e matching.Engine, pilots []model.Pilot, m model.Mission) ScoreStats {
	scores := make([]float64, 0, len(pilots))
	for _, p := range pilots {
		score, _ := e.ScorePilot(p, m)
		scores = append(scores, score)
	}
	return scoreStats(scores)
}

// DroneScoreStats is the drone counterpart of PilotScoreStats.
func DroneScoreStats(e matching.Engine, drones []model.Drone, m model.Mission) ScoreStats {
	scores := make([]float64, 0, len(drones))
	for _, d := range drones {
		score, _ := e.ScoreDrone(d, m)
		scores = append(scores, score)
	}
	return scoreStats(scores)
}

// ConflictBreakdown counts conflicts by type and severity.
type ConflictBreakdown struct {
	Total      int            `json:"total"`
	BySeverity map[string]int `json:"by_severity"`
	ByType     map[string]int `json:"by_type"`
}

// BreakdownConflicts tallies a scan result.
func BreakdownConflicts(conflicts []conflict.Conflict) ConflictBreakdown {
	b := ConflictBreakdown{
		BySeverity: make(map[string]int),
		ByType:     make(map[string]int),
	}
	for _, c := range conflicts {
		b.Total++
		b.BySeverity[string(c.Severity)]++
		b.ByType[string(c.Type)]++
	}
	return b
}
