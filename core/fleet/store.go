package fleet

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skystride/droneops/core/audit"
	"github.com/skystride/droneops/core/events"
	"github.com/skystride/droneops/core/logger"
	"github.com/skystride/droneops/core/metrics"
	"github.com/skystride/droneops/core/model"
	"github.com/skystride/droneops/internal/eventbus"
)

// Store owns the live fleet snapshot behind a single writer lock. All
// mutations go through it so that every change is audited, published on the
// bus and reflected in metrics. Reads share the lock via View.
type Store struct {
	mu       sync.RWMutex
	snap     *Snapshot
	provider Provider
	audit    audit.Store
	bus      eventbus.EventBus
	sink     metrics.Sink
	log      logger.Logger
}

// StoreOptions carries the optional collaborators of a Store. Nil fields are
// replaced with no-op implementations.
type StoreOptions struct {
	Audit   audit.Store
	Bus     eventbus.EventBus
	Metrics metrics.Sink
	Logger  logger.Logger
}

// NewStore creates a Store around the given provider. Call Reload to
// populate it.
func NewStore(provider Provider, opts StoreOptions) *Store {
	if opts.Audit == nil {
		opts.Audit = audit.NopStore{}
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NopSink{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop{}
	}
	return &Store{
		snap:     NewSnapshot(nil, nil, nil),
		provider: provider,
		audit:    opts.Audit,
		bus:      opts.Bus,
		sink:     opts.Metrics,
		log:      opts.Logger,
	}
}

// Reload replaces the snapshot with a fresh load from the provider.
func (s *Store) Reload(ctx context.Context) error {
	pilots, drones, missions, err := s.provider.Load(ctx)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	s.mu.Lock()
	s.snap = NewSnapshot(pilots, drones, missions)
	s.mu.Unlock()

	s.log.Infof("roster loaded: %d pilots, %d drones, %d missions",
		len(pilots), len(drones), len(missions))
	if err := s.sink.RecordFleetSize(metrics.FleetSizeEvent{
		Pilots:   len(pilots),
		Drones:   len(drones),
		Missions: len(missions),
		Time:     time.Now(),
	}); err != nil {
		s.log.Warnf("record fleet size: %v", err)
	}
	return nil
}

// Save persists the current snapshot through the provider. The roster is
// copied under the read lock so the provider never reads elements a
// concurrent mutator is writing.
func (s *Store) Save(ctx context.Context) error {
	s.mu.RLock()
	pilots := append([]model.Pilot(nil), s.snap.Pilots()...)
	drones := append([]model.Drone(nil), s.snap.Drones()...)
	missions := append([]model.Mission(nil), s.snap.Missions()...)
	s.mu.RUnlock()
	return s.provider.Save(ctx, pilots, drones, missions)
}

// View runs fn with read access to the snapshot. The snapshot must not be
// retained or mutated by fn.
func (s *Store) View(fn func(*Snapshot)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.snap)
}

// Mutate runs fn with exclusive access to the snapshot. When fn returns an
// error the audit record and events are skipped; partial mutations inside fn
// are fn's responsibility to avoid.
func (s *Store) Mutate(ctx context.Context, rec audit.Record, fn func(*Snapshot) error) error {
	s.mu.Lock()
	err := fn(s.snap)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.record(ctx, rec)
	return nil
}

// AssignPilot binds a pilot to a mission and updates both sides.
func (s *Store) AssignPilot(ctx context.Context, missionID, pilotID string) error {
	s.mu.Lock()
	name := s.pilotName(pilotID)
	err := s.snap.AssignPilot(missionID, pilotID)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.record(ctx, audit.Record{
		Action:     audit.ActionAssign,
		EntityID:   pilotID,
		EntityName: name,
		MissionID:  missionID,
	})
	s.publishAssignment(audit.ActionAssign, "pilot", pilotID, missionID)
	return nil
}

// AssignDrone binds a drone to a mission and updates both sides.
func (s *Store) AssignDrone(ctx context.Context, missionID, droneID string) error {
	s.mu.Lock()
	name := s.droneName(droneID)
	err := s.snap.AssignDrone(missionID, droneID)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.record(ctx, audit.Record{
		Action:     audit.ActionAssign,
		EntityID:   droneID,
		EntityName: name,
		MissionID:  missionID,
	})
	s.publishAssignment(audit.ActionAssign, "drone", droneID, missionID)
	return nil
}

// UnassignPilot releases a pilot from its current mission.
func (s *Store) UnassignPilot(ctx context.Context, pilotID string) error {
	s.mu.Lock()
	name := s.pilotName(pilotID)
	var missionID string
	if p, ok := s.snap.Pilot(pilotID); ok {
		missionID = p.CurrentAssignment
	}
	err := s.snap.UnassignPilot(pilotID)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.record(ctx, audit.Record{
		Action:     audit.ActionUnassign,
		EntityID:   pilotID,
		EntityName: name,
		MissionID:  missionID,
	})
	s.publishAssignment(audit.ActionUnassign, "pilot", pilotID, missionID)
	return nil
}

// UnassignDrone releases a drone from its current mission.
func (s *Store) UnassignDrone(ctx context.Context, droneID string) error {
	s.mu.Lock()
	name := s.droneName(droneID)
	var missionID string
	if d, ok := s.snap.Drone(droneID); ok {
		missionID = d.CurrentAssignment
	}
	err := s.snap.UnassignDrone(droneID)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.record(ctx, audit.Record{
		Action:     audit.ActionUnassign,
		EntityID:   droneID,
		EntityName: name,
		MissionID:  missionID,
	})
	s.publishAssignment(audit.ActionUnassign, "drone", droneID, missionID)
	return nil
}

// SetPilotStatus updates a pilot's status. Moving away from Assigned also
// releases the current mission.
func (s *Store) SetPilotStatus(ctx context.Context, pilotID string, status model.PilotStatus) error {
	s.mu.Lock()
	var name, from string
	if p, ok := s.snap.Pilot(pilotID); ok {
		name = p.Name
		from = string(p.Status)
	}
	err := s.snap.SetPilotStatus(pilotID, status)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.record(ctx, audit.Record{
		Action:     audit.ActionStatusChange,
		EntityID:   pilotID,
		EntityName: name,
		From:       from,
		To:         string(status),
	})
	if s.bus != nil {
		s.bus.Publish(events.StatusChanged{
			EntityType: "pilot",
			EntityID:   pilotID,
			From:       from,
			To:         string(status),
		})
	}
	return nil
}

// SetDroneStatus updates a drone's status. Moving away from Assigned also
// releases the current mission.
func (s *Store) SetDroneStatus(ctx context.Context, droneID string, status model.DroneStatus) error {
	s.mu.Lock()
	var name, from string
	if d, ok := s.snap.Drone(droneID); ok {
		name = d.Model
		from = string(d.Status)
	}
	err := s.snap.SetDroneStatus(droneID, status)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.record(ctx, audit.Record{
		Action:     audit.ActionStatusChange,
		EntityID:   droneID,
		EntityName: name,
		From:       from,
		To:         string(status),
	})
	if s.bus != nil {
		s.bus.Publish(events.StatusChanged{
			EntityType: "drone",
			EntityID:   droneID,
			From:       from,
			To:         string(status),
		})
	}
	return nil
}

// CancelMission cancels a mission and releases its pilot and drone.
func (s *Store) CancelMission(ctx context.Context, missionID string) error {
	s.mu.Lock()
	pilotID, droneID, err := s.snap.CancelMission(missionID)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	detail := ""
	if pilotID != "" || droneID != "" {
		detail = fmt.Sprintf("released pilot=%q drone=%q", pilotID, droneID)
	}
	s.record(ctx, audit.Record{
		Action:    audit.ActionCancel,
		EntityID:  missionID,
		MissionID: missionID,
		Detail:    detail,
	})
	if pilotID != "" {
		s.publishAssignment(audit.ActionUnassign, "pilot", pilotID, missionID)
	}
	if droneID != "" {
		s.publishAssignment(audit.ActionUnassign, "drone", droneID, missionID)
	}
	return nil
}

// Bus exposes the event bus for callers that emit their own events, such as
// the reassignment executor.
func (s *Store) Bus() eventbus.EventBus { return s.bus }

// Metrics exposes the metrics sink.
func (s *Store) Metrics() metrics.Sink { return s.sink }

// History returns decision log records matching the query.
func (s *Store) History(ctx context.Context, q audit.Query) ([]audit.Record, error) {
	return s.audit.Query(ctx, q)
}

// Close releases the store's collaborators.
func (s *Store) Close() error {
	if s.bus != nil {
		s.bus.Close()
	}
	return s.audit.Close()
}

func (s *Store) record(ctx context.Context, rec audit.Record) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	if err := s.audit.Append(ctx, rec); err != nil {
		s.log.Errorf("append audit record: %v", err)
	}
}

func (s *Store) publishAssignment(action, entityType, entityID, missionID string) {
	if err := s.sink.RecordAssignment(metrics.AssignmentEvent{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		MissionID:  missionID,
		Time:       time.Now(),
	}); err != nil {
		s.log.Warnf("record assignment metric: %v", err)
	}
	if s.bus == nil {
		return
	}
	s.bus.Publish(events.AssignmentChanged{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		MissionID:  missionID,
	})
}

// pilotName and droneName are called with the lock held.
func (s *Store) pilotName(id string) string {
	if p, ok := s.snap.Pilot(id); ok {
		return p.Name
	}
	return ""
}

func (s *Store) droneName(id string) string {
	if d, ok := s.snap.Drone(id); ok {
		return d.Model
	}
	return ""
}
