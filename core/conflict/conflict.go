// Package conflict scans a fleet snapshot for assignment inconsistencies.
// The scans are read-only and idempotent: the same snapshot always yields the
// same conflicts in the same order.
package conflict

import "fmt"

// Type classifies a detected conflict.
type Type string

const (
	DoubleBooking    Type = "Double Booking"
	SkillMismatch    Type = "Skill Mismatch"
	Maintenance      Type = "Maintenance"
	LocationMismatch Type = "Location Mismatch"
)

// Severity grades how serious a conflict is.
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityWarning  Severity = "Warning"
	SeverityInfo     Severity = "Info"
)

// Conflict is one detected inconsistency between current assignments and
// resource constraints.
type Conflict struct {
	Type        Type     `json:"type"`
	Severity    Severity `json:"severity"`
	EntityID    string   `json:"entity_id"`
	EntityName  string   `json:"entity_name"`
	MissionID   string   `json:"mission_id"` // "A & B" for pairwise conflicts
	Description string   `json:"description"`
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s [%s] %s", c.Type, c.Severity, c.Description)
}
