package fleet

import (
	"context"

	"github.com/skystride/droneops/core/model"
)

// Provider loads and persists the fleet roster. Implementations live under
// infra; the store only sees this interface.
type Provider interface {
	Load(ctx context.Context) (pilots []model.Pilot, drones []model.Drone, missions []model.Mission, err error)
	Save(ctx context.Context, pilots []model.Pilot, drones []model.Drone, missions []model.Mission) error
}

// StaticProvider serves a fixed roster and discards saves. Useful in tests
// and for read-only deployments.
type StaticProvider struct {
	Pilots   []model.Pilot
	Drones   []model.Drone
	Missions []model.Mission
}

func (p StaticProvider) Load(context.Context) ([]model.Pilot, []model.Drone, []model.Mission, error) {
	return p.Pilots, p.Drones, p.Missions, nil
}

func (p StaticProvider) Save(context.Context, []model.Pilot, []model.Drone, []model.Mission) error {
	return nil
}
