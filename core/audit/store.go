// Package audit persists decision log records for every executed mutation.
package audit

import (
	"context"
	"time"
)

// Actions recorded in the decision log.
const (
	ActionAssign       = "assign"
	ActionUnassign     = "unassign"
	ActionCancel       = "cancel"
	ActionStatusChange = "status_change"
	ActionReassignment = "reassignment"
)

// Record captures the semantic facts of one mutation: who changed, from what,
// to what. Formatting for display is the caller's concern.
type Record struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Action     string    `json:"action"`
	EntityID   string    `json:"entity_id"`
	EntityName string    `json:"entity_name"`
	MissionID  string    `json:"mission_id,omitempty"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to,omitempty"`
	Detail     string    `json:"detail,omitempty"`
}

// Query defines filters for retrieving records. Zero-value fields are
// ignored.
type Query struct {
	Start     time.Time
	End       time.Time
	Action    string
	EntityID  string
	MissionID string
}

func (q Query) matches(r Record) bool {
	if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.Timestamp.After(q.End) {
		return false
	}
	if q.Action != "" && r.Action != q.Action {
		return false
	}
	if q.EntityID != "" && r.EntityID != q.EntityID {
		return false
	}
	if q.MissionID != "" && r.MissionID != q.MissionID {
		return false
	}
	return true
}

// Store persists Records and supports querying.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}

// NopStore discards all records. Used when auditing is disabled.
type NopStore struct{}

func (NopStore) Append(context.Context, Record) error           { return nil }
func (NopStore) Query(context.Context, Query) ([]Record, error) { return nil, nil }
func (NopStore) Close() error                                   { return nil }
