package scenarios

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/skystride/droneops/agent"
	"github.com/skystride/droneops/core/fleet"
	corelogger "github.com/skystride/droneops/core/logger"
	"github.com/skystride/droneops/core/matching"
	"github.com/skystride/droneops/core/model"
	"github.com/skystride/droneops/core/reassign"
	"github.com/skystride/droneops/infra/metrics"
	"github.com/skystride/droneops/internal/eventbus"
)

// RunScenario drives the coordinator agent through the scripted conversation
// and checks each reply against the step's expectations.
func RunScenario(t *testing.T, sc *Scenario) {
	reg := prometheus.NewRegistry()
	sink, err := metrics.NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("prom sink: %v", err)
	}

	var (
		pilots   []model.Pilot
		drones   []model.Drone
		missions []model.Mission
	)
	for _, p := range sc.Pilots {
		pilots = append(pilots, p.ToModel())
	}
	for _, d := range sc.Drones {
		drones = append(drones, d.ToModel())
	}
	for _, m := range sc.Missions {
		missions = append(missions, m.ToModel())
	}

	bus := eventbus.New()
	defer bus.Close()
	store := fleet.NewStore(
		fleet.StaticProvider{Pilots: pilots, Drones: drones, Missions: missions},
		fleet.StoreOptions{Bus: bus, Metrics: sink},
	)
	ctx := context.Background()
	if err := store.Reload(ctx); err != nil {
		t.Fatalf("load roster: %v", err)
	}

	match := matching.New()
	ag := agent.New(store, match, reassign.New(match, corelogger.Nop{}), corelogger.Nop{}, sink)

	for i, step := range sc.Steps {
		reply := ag.Process(ctx, step.Say)
		for _, want := range step.Expect {
			if !strings.Contains(reply, want) {
				t.Errorf("step %d %q: reply missing %q\nreply:\n%s", i+1, step.Say, want, reply)
			}
		}
		for _, bad := range step.Reject {
			if strings.Contains(reply, bad) {
				t.Errorf("step %d %q: reply must not contain %q\nreply:\n%s", i+1, step.Say, bad, reply)
			}
		}
	}
}
