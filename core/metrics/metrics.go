// Package metrics defines the observability events emitted by the allocation
// engine and the Sink interface adapters implement.
package metrics

import "time"

// MatchQueryEvent records one candidate ranking query.
type MatchQueryEvent struct {
	MissionID  string
	Kind       string // "pilot" or "drone"
	Candidates int
	BestScore  float64
	Time       time.Time
}

// ConflictScanEvent records one full conflict scan.
type ConflictScanEvent struct {
	Total    int
	Critical int
	Warning  int
	ByType   map[string]int
	Time     time.Time
}

// ReassignmentEvent records a reassignment suggestion or execution.
type ReassignmentEvent struct {
	MissionID string
	Plans     int
	Executed  bool
	RiskScore int
	Displaced bool
	Time      time.Time
}

// AssignmentEvent records one assignment-state mutation.
type AssignmentEvent struct {
	Action     string // audit action name
	EntityType string // "pilot" or "drone"
	EntityID   string
	MissionID  string
	Time       time.Time
}

// FleetSizeEvent is a snapshot of entity counts after a reload.
type FleetSizeEvent struct {
	Pilots   int
	Drones   int
	Missions int
	Time     time.Time
}

// Sink records allocation engine events for observability purposes.
type Sink interface {
	RecordMatchQuery(ev MatchQueryEvent) error
	RecordConflictScan(ev ConflictScanEvent) error
	RecordReassignment(ev ReassignmentEvent) error
	RecordAssignment(ev AssignmentEvent) error
	RecordFleetSize(ev FleetSizeEvent) error
}

// NopSink ignores all events.
type NopSink struct{}

func (NopSink) RecordMatchQuery(MatchQueryEvent) error     { return nil }
func (NopSink) RecordConflictScan(ConflictScanEvent) error { return nil }
func (NopSink) RecordReassignment(ReassignmentEvent) error { return nil }
func (NopSink) RecordAssignment(AssignmentEvent) error     { return nil }
func (NopSink) RecordFleetSize(FleetSizeEvent) error       { return nil }

// MultiSink fans events out to multiple sinks, returning the first error.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

func (m *MultiSink) RecordMatchQuery(ev MatchQueryEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordMatchQuery(ev); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiSink) RecordConflictScan(ev ConflictScanEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordConflictScan(ev); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiSink) RecordReassignment(ev ReassignmentEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordReassignment(ev); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiSink) RecordAssignment(ev AssignmentEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordAssignment(ev); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiSink) RecordFleetSize(ev FleetSizeEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordFleetSize(ev); err != nil {
			return err
		}
	}
	return nil
}
