// Package csvstore implements the fleet roster provider on top of flat CSV
// files, the format operations teams already maintain the roster in.
package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skystride/droneops/core/model"
	"github.com/skystride/droneops/infra/logger"
)

// File names inside the data directory.
const (
	PilotsFile   = "pilots.csv"
	DronesFile   = "drones.csv"
	MissionsFile = "missions.csv"
)

// Column order for serialization. Loading is header-driven and accepts any
// order; extra columns are ignored.
var (
	pilotHeader = []string{"pilot_id", "name", "skills", "certifications",
		"location", "status", "current_assignment", "available_from"}
	droneHeader = []string{"drone_id", "model", "capabilities", "status",
		"location", "current_assignment", "maintenance_due"}
	missionHeader = []string{"project_id", "client", "location", "required_skills",
		"required_certs", "start_date", "end_date", "priority",
		"assigned_pilot", "assigned_drone"}
)

// Provider reads and writes the roster CSV files in one directory.
type Provider struct {
	dir string
	log logger.Logger
}

// New creates a Provider rooted at dir.
func New(dir string) *Provider {
	return &Provider{dir: dir, log: logger.New("csvstore")}
}

// Load reads the three roster files. A missing file yields an empty slice,
// not an error, so partial deployments still start.
func (p *Provider) Load(ctx context.Context) ([]model.Pilot, []model.Drone, []model.Mission, error) {
	pilotRows, err := p.readFile(ctx, PilotsFile)
	if err != nil {
		return nil, nil, nil, err
	}
	droneRows, err := p.readFile(ctx, DronesFile)
	if err != nil {
		return nil, nil, nil, err
	}
	missionRows, err := p.readFile(ctx, MissionsFile)
	if err != nil {
		return nil, nil, nil, err
	}

	pilots := make([]model.Pilot, 0, len(pilotRows))
	for _, row := range pilotRows {
		pilot := model.PilotFromRecord(row)
		if pilot.ID == "" {
			p.log.Warnf("skipping pilot row without id: %v", row)
			continue
		}
		pilots = append(pilots, pilot)
	}
	drones := make([]model.Drone, 0, len(droneRows))
	for _, row := range droneRows {
		drone := model.DroneFromRecord(row)
		if drone.ID == "" {
			p.log.Warnf("skipping drone row without id: %v", row)
			continue
		}
		drones = append(drones, drone)
	}
	missions := make([]model.Mission, 0, len(missionRows))
	for _, row := range missionRows {
		mission := model.MissionFromRecord(row)
		if mission.ID == "" {
			p.log.Warnf("skipping mission row without id: %v", row)
			continue
		}
		missions = append(missions, mission)
	}
	return pilots, drones, missions, nil
}

// Save writes the three roster files atomically per file: each is written to
// a temp file and renamed into place.
func (p *Provider) Save(ctx context.Context, pilots []model.Pilot, drones []model.Drone, missions []model.Mission) error {
	pilotRows := make([]map[string]string, len(pilots))
	for i, pilot := range pilots {
		pilotRows[i] = pilot.Record()
	}
	if err := p.writeFile(ctx, PilotsFile, pilotHeader, pilotRows); err != nil {
		return err
	}
	droneRows := make([]map[string]string, len(drones))
	for i, drone := range drones {
		droneRows[i] = drone.Record()
	}
	if err := p.writeFile(ctx, DronesFile, droneHeader, droneRows); err != nil {
		return err
	}
	missionRows := make([]map[string]string, len(missions))
	for i, mission := range missions {
		missionRows[i] = mission.Record()
	}
	return p.writeFile(ctx, MissionsFile, missionHeader, missionRows)
}

func (p *Provider) readFile(ctx context.Context, name string) ([]map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(p.dir, name)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		p.log.Warnf("%s not found, starting empty", name)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (p *Provider) writeFile(ctx context.Context, name string, header []string, rows []map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(p.dir, name)
	tmp, err := os.CreateTemp(p.dir, name+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s header: %w", name, err)
	}
	line := make([]string, len(header))
	for _, row := range rows {
		for i, col := range header {
			line[i] = row[col]
		}
		if err := w.Write(line); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("write %s row: %w", name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("flush %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
