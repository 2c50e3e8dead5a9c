package scenarios

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/skystride/droneops/core/model"
)

type PilotDef struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Skills   []string `yaml:"skills,omitempty"`
	Certs    []string `yaml:"certs,omitempty"`
	Location string   `yaml:"location,omitempty"`
	Status   string   `yaml:"status,omitempty"`
	Mission  string   `yaml:"mission,omitempty"`
}

func (p PilotDef) ToModel() model.Pilot {
	status := model.PilotStatus(p.Status)
	if status == "" {
		status = model.PilotAvailable
	}
	return model.Pilot{
		ID:                p.ID,
		Name:              p.Name,
		Skills:            p.Skills,
		Certifications:    p.Certs,
		Location:          p.Location,
		Status:            status,
		CurrentAssignment: p.Mission,
	}
}

type DroneDef struct {
	ID           string   `yaml:"id"`
	Model        string   `yaml:"model"`
	Capabilities []string `yaml:"capabilities,omitempty"`
	Location     string   `yaml:"location,omitempty"`
	Status       string   `yaml:"status,omitempty"`
	Mission      string   `yaml:"mission,omitempty"`
}

func (d DroneDef) ToModel() model.Drone {
	status := model.DroneStatus(d.Status)
	if status == "" {
		status = model.DroneAvailable
	}
	return model.Drone{
		ID:                d.ID,
		Model:             d.Model,
		Capabilities:      d.Capabilities,
		Location:          d.Location,
		Status:            status,
		CurrentAssignment: d.Mission,
	}
}

type MissionDef struct {
	ID       string   `yaml:"id"`
	Client   string   `yaml:"client,omitempty"`
	Location string   `yaml:"location,omitempty"`
	Skills   []string `yaml:"skills,omitempty"`
	Certs    []string `yaml:"certs,omitempty"`
	Priority string   `yaml:"priority,omitempty"`
	Start    string   `yaml:"start,omitempty"`
	End      string   `yaml:"end,omitempty"`
	Pilot    string   `yaml:"pilot,omitempty"`
	Drone    string   `yaml:"drone,omitempty"`
}

func (m MissionDef) ToModel() model.Mission {
	priority := model.Priority(m.Priority)
	if priority == "" {
		priority = model.PriorityStandard
	}
	return model.Mission{
		ID:             m.ID,
		Client:         m.Client,
		Location:       m.Location,
		RequiredSkills: m.Skills,
		RequiredCerts:  m.Certs,
		StartDate:      parseDate(m.Start),
		EndDate:        parseDate(m.End),
		Priority:       priority,
		AssignedPilot:  m.Pilot,
		AssignedDrone:  m.Drone,
	}
}

// Step is one message sent to the agent with substrings the reply must and
// must not contain.
type Step struct {
	Say    string   `yaml:"say"`
	Expect []string `yaml:"expect,omitempty"`
	Reject []string `yaml:"reject,omitempty"`
}

type Scenario struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Pilots      []PilotDef   `yaml:"pilots"`
	Drones      []DroneDef   `yaml:"drones"`
	Missions    []MissionDef `yaml:"missions"`
	Steps       []Step       `yaml:"steps"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
