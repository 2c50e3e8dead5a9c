// Package events defines the allocation events emitted on the event bus.
//
// Available event types:
//   - AssignmentChanged: a resource was bound to or released from a mission
//   - StatusChanged: a pilot or drone status update
//   - ConflictScanRun: a full conflict scan completed
//   - ReassignmentExecuted: a swap plan was applied to the snapshot
package events

// AssignmentChanged is emitted when a pilot or drone is bound to or released
// from a mission. Action mirrors the audit action names.
type AssignmentChanged struct {
	Action     string
	EntityType string // "pilot" or "drone"
	EntityID   string
	MissionID  string
}

// StatusChanged is emitted on a direct status update.
type StatusChanged struct {
	EntityType string
	EntityID   string
	From       string
	To         string
}

// ConflictScanRun is emitted after a full conflict scan.
type ConflictScanRun struct {
	Total    int
	Critical int
}

// ReassignmentExecuted is emitted after a swap plan is applied.
type ReassignmentExecuted struct {
	MissionID string
	PlanID    string
	RiskScore int
}
