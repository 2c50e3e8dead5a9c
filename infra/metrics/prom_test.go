package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/skystride/droneops/core/metrics"
)

func TestPromSinkRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	assert.NoError(t, sink.RecordAssignment(coremetrics.AssignmentEvent{
		Action:     "assign",
		EntityType: "pilot",
		EntityID:   "P001",
		MissionID:  "PRJ100",
		Time:       time.Now(),
	}))
	assert.NoError(t, sink.RecordMatchQuery(coremetrics.MatchQueryEvent{
		MissionID:  "PRJ100",
		Kind:       "pilot",
		Candidates: 3,
		BestScore:  0.92,
	}))
	assert.NoError(t, sink.RecordConflictScan(coremetrics.ConflictScanEvent{
		Total: 4, Critical: 1, Warning: 3,
	}))
	assert.NoError(t, sink.RecordReassignment(coremetrics.ReassignmentEvent{
		MissionID: "PRJ100", Plans: 2, Executed: true, RiskScore: 40, Displaced: true,
	}))
	assert.NoError(t, sink.RecordFleetSize(coremetrics.FleetSizeEvent{
		Pilots: 8, Drones: 5, Missions: 6,
	}))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"allocation_assignment_events_total",
		"allocation_match_queries_total",
		"allocation_match_best_score",
		"allocation_conflicts_detected",
		"allocation_reassignments_total",
		"allocation_reassignment_risk_score",
		"fleet_size",
	} {
		assert.True(t, names[want], "missing metric %s", want)
	}
}

func TestPromSinkDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	_, err = NewPromSinkWithRegistry(reg)
	assert.NoError(t, err, "second registration should reuse existing collectors")
}
