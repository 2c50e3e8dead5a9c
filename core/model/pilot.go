package model

import "time"

// PilotStatus describes a pilot's availability state.
type PilotStatus string

const (
	PilotAvailable PilotStatus = "Available"
	PilotAssigned  PilotStatus = "Assigned"
	PilotOnLeave   PilotStatus = "On Leave"
	PilotInactive  PilotStatus = "Inactive"
)

// Pilot represents a drone pilot on the roster.
type Pilot struct {
	ID                string
	Name              string
	Skills            []string
	Certifications    []string
	Location          string
	Status            PilotStatus
	CurrentAssignment string    // mission ID, empty when unassigned
	AvailableFrom     time.Time // zero when unknown
}

// IsAvailable reports whether the pilot can be offered for new missions.
func (p Pilot) IsAvailable() bool { return p.Status == PilotAvailable }

// PilotFromRecord builds a Pilot from a flat roster row. Malformed fields
// degrade to their zero value instead of failing the record.
func PilotFromRecord(row map[string]string) Pilot {
	status := PilotStatus(CleanCell(row["status"]))
	if status == "" {
		status = PilotAvailable
	}
	avail, _ := ParseDate(row["available_from"])
	return Pilot{
		ID:                CleanCell(row["pilot_id"]),
		Name:              CleanCell(row["name"]),
		Skills:            ParseList(row["skills"]),
		Certifications:    ParseList(row["certifications"]),
		Location:          CleanCell(row["location"]),
		Status:            status,
		CurrentAssignment: CleanCell(row["current_assignment"]),
		AvailableFrom:     avail,
	}
}

// Record serializes the pilot back to a flat roster row.
func (p Pilot) Record() map[string]string {
	return map[string]string{
		"pilot_id":           p.ID,
		"name":               p.Name,
		"skills":             joinList(p.Skills),
		"certifications":     joinList(p.Certifications),
		"location":           p.Location,
		"status":             string(p.Status),
		"current_assignment": p.CurrentAssignment,
		"available_from":     FormatDate(p.AvailableFrom),
	}
}
