package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/kinelab/internal/config"
	"github.com/san-kum/kinelab/internal/sim"
)

// Experiment is one offline run of a configured scenario.
type Experiment struct {
	cfg       *config.Config
	registry  *Registry
	simulator *sim.Simulator
}

func New(cfg *config.Config, registry *Registry) *Experiment {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Experiment{cfg: cfg, registry: registry}
}

// Setup validates the config and builds the scenario with its default
// metrics.
func (e *Experiment) Setup() error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	sc, err := e.registry.GetScenario(e.cfg.Scenario, e.cfg)
	if err != nil {
		return err
	}
	e.simulator = sim.New(sc)
	for _, m := range e.registry.DefaultMetrics(sc) {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, sim.Config{Dt: e.cfg.Dt, Duration: e.cfg.Duration})
}

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}

func (e *Experiment) Config() *config.Config { return e.cfg }
