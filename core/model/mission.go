package model

import "time"

// Priority classifies how urgent a mission is. Lower rank means more urgent.
type Priority string

const (
	PriorityUrgent   Priority = "Urgent"
	PriorityHigh     Priority = "High"
	PriorityStandard Priority = "Standard"
	PriorityLow      Priority = "Low"
)

var priorityRank = map[Priority]int{
	PriorityUrgent:   1,
	PriorityHigh:     2,
	PriorityStandard: 3,
	PriorityLow:      4,
}

// Rank returns the numeric urgency rank (Urgent=1 ... Low=4). Unknown
// priorities rank as Standard.
func (p Priority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return priorityRank[PriorityStandard]
}

// Mission represents a time-bounded work order for one pilot and one drone.
//
// RequiredSkills doubles as the drone capability requirement: the roster
// format has no dedicated drone-requirement column, so drone matching reads
// the same field. Intentional, inherited from the data model.
type Mission struct {
	ID             string
	Client         string
	Location       string
	RequiredSkills []string
	RequiredCerts  []string
	StartDate      time.Time // zero when unknown
	EndDate        time.Time // zero when unknown
	Priority       Priority
	AssignedPilot  string // pilot ID, empty when unstaffed
	AssignedDrone  string // drone ID, empty when unstaffed
}

// OverlapsWith reports whether two missions' date ranges intersect. Missions
// missing either date never report an overlap.
func (m Mission) OverlapsWith(other Mission) bool {
	if m.StartDate.IsZero() || m.EndDate.IsZero() ||
		other.StartDate.IsZero() || other.EndDate.IsZero() {
		return false
	}
	return !m.StartDate.After(other.EndDate) && !other.StartDate.After(m.EndDate)
}

// MissionFromRecord builds a Mission from a flat roster row. Malformed fields
// degrade to their zero value instead of failing the record.
func MissionFromRecord(row map[string]string) Mission {
	priority := Priority(CleanCell(row["priority"]))
	if priority == "" {
		priority = PriorityStandard
	}
	start, _ := ParseDate(row["start_date"])
	end, _ := ParseDate(row["end_date"])
	return Mission{
		ID:             CleanCell(row["project_id"]),
		Client:         CleanCell(row["client"]),
		Location:       CleanCell(row["location"]),
		RequiredSkills: ParseList(row["required_skills"]),
		RequiredCerts:  ParseList(row["required_certs"]),
		StartDate:      start,
		EndDate:        end,
		Priority:       priority,
		AssignedPilot:  CleanCell(row["assigned_pilot"]),
		AssignedDrone:  CleanCell(row["assigned_drone"]),
	}
}

// Record serializes the mission back to a flat roster row.
func (m Mission) Record() map[string]string {
	return map[string]string{
		"project_id":      m.ID,
		"client":          m.Client,
		"location":        m.Location,
		"required_skills": joinList(m.RequiredSkills),
		"required_certs":  joinList(m.RequiredCerts),
		"start_date":      FormatDate(m.StartDate),
		"end_date":        FormatDate(m.EndDate),
		"priority":        string(m.Priority),
		"assigned_pilot":  m.AssignedPilot,
		"assigned_drone":  m.AssignedDrone,
	}
}
