package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/skystride/droneops/core/metrics"
)

// PromSink records allocation events in Prometheus metrics.
type PromSink struct {
	assignments   *prometheus.CounterVec
	matchQueries  *prometheus.CounterVec
	bestScore     *prometheus.HistogramVec
	conflicts     *prometheus.GaugeVec
	reassignments *prometheus.CounterVec
	riskScore     prometheus.Histogram
	fleet         *prometheus.GaugeVec
}

// NewPromSink registers allocation metrics on the default Prometheus
// registerer. The HTTP exposition endpoint is served separately.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	assignments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "allocation_assignment_events_total",
		Help: "Total number of assignment mutations",
	}, []string{"action", "entity_type"})
	matchQueries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "allocation_match_queries_total",
		Help: "Total number of candidate ranking queries",
	}, []string{"kind"})
	bestScore := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "allocation_match_best_score",
		Help:    "Best candidate score per ranking query",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	}, []string{"kind"})
	conflicts := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "allocation_conflicts_detected",
		Help: "Conflicts found by the latest full scan",
	}, []string{"severity"})
	reassignments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "allocation_reassignments_total",
		Help: "Total number of reassignment suggestions and executions",
	}, []string{"executed", "displaced"})
	riskScore := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "allocation_reassignment_risk_score",
		Help:    "Risk score of executed reassignment plans",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})
	fleet := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fleet_size",
		Help: "Number of roster entities after the latest reload",
	}, []string{"entity"})

	if err := reg.Register(assignments); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			assignments = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(matchQueries); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			matchQueries = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(bestScore); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			bestScore = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(conflicts); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			conflicts = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(reassignments); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			reassignments = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(riskScore); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			riskScore = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(fleet); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			fleet = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{
		assignments:   assignments,
		matchQueries:  matchQueries,
		bestScore:     bestScore,
		conflicts:     conflicts,
		reassignments: reassignments,
		riskScore:     riskScore,
		fleet:         fleet,
	}, nil
}

// RecordMatchQuery counts the query and observes its best score.
func (s *PromSink) RecordMatchQuery(ev coremetrics.MatchQueryEvent) error {
	s.matchQueries.WithLabelValues(ev.Kind).Inc()
	if ev.Candidates > 0 {
		s.bestScore.WithLabelValues(ev.Kind).Observe(ev.BestScore)
	}
	return nil
}

// RecordConflictScan sets the per-severity gauges from the latest scan.
func (s *PromSink) RecordConflictScan(ev coremetrics.ConflictScanEvent) error {
	s.conflicts.WithLabelValues("Critical").Set(float64(ev.Critical))
	s.conflicts.WithLabelValues("Warning").Set(float64(ev.Warning))
	return nil
}

// RecordReassignment counts the plan and observes its risk when executed.
func (s *PromSink) RecordReassignment(ev coremetrics.ReassignmentEvent) error {
	s.reassignments.WithLabelValues(
		strconv.FormatBool(ev.Executed), strconv.FormatBool(ev.Displaced)).Inc()
	if ev.Executed {
		s.riskScore.Observe(float64(ev.RiskScore))
	}
	return nil
}

// RecordAssignment increments the mutation counter.
func (s *PromSink) RecordAssignment(ev coremetrics.AssignmentEvent) error {
	s.assignments.WithLabelValues(ev.Action, ev.EntityType).Inc()
	return nil
}

// RecordFleetSize sets the roster size gauges.
func (s *PromSink) RecordFleetSize(ev coremetrics.FleetSizeEvent) error {
	s.fleet.WithLabelValues("pilots").Set(float64(ev.Pilots))
	s.fleet.WithLabelValues("drones").Set(float64(ev.Drones))
	s.fleet.WithLabelValues("missions").Set(float64(ev.Missions))
	return nil
}
