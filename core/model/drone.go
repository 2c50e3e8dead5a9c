package model

import "time"

// DroneStatus describes a drone's fleet state.
type DroneStatus string

const (
	DroneAvailable   DroneStatus = "Available"
	DroneAssigned    DroneStatus = "Assigned"
	DroneMaintenance DroneStatus = "Maintenance"
)

// Drone represents an airframe in the fleet.
type Drone struct {
	ID                string
	Model             string
	Capabilities      []string
	Status            DroneStatus
	Location          string
	CurrentAssignment string    // mission ID, empty when unassigned
	MaintenanceDue    time.Time // zero when not scheduled
}

// IsAvailable reports whether the drone can be offered for new missions.
func (d Drone) IsAvailable() bool { return d.Status == DroneAvailable }

// DroneFromRecord builds a Drone from a flat fleet row. Malformed fields
// degrade to their zero value instead of failing the record.
func DroneFromRecord(row map[string]string) Drone {
	status := DroneStatus(CleanCell(row["status"]))
	if status == "" {
		status = DroneAvailable
	}
	due, _ := ParseDate(row["maintenance_due"])
	return Drone{
		ID:                CleanCell(row["drone_id"]),
		Model:             CleanCell(row["model"]),
		Capabilities:      ParseList(row["capabilities"]),
		Status:            status,
		Location:          CleanCell(row["location"]),
		CurrentAssignment: CleanCell(row["current_assignment"]),
		MaintenanceDue:    due,
	}
}

// Record serializes the drone back to a flat fleet row.
func (d Drone) Record() map[string]string {
	return map[string]string{
		"drone_id":           d.ID,
		"model":              d.Model,
		"capabilities":       joinList(d.Capabilities),
		"status":             string(d.Status),
		"location":           d.Location,
		"current_assignment": d.CurrentAssignment,
		"maintenance_due":    FormatDate(d.MaintenanceDue),
	}
}
