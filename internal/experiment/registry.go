package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/kinelab/internal/config"
	"github.com/san-kum/kinelab/internal/integrators"
	"github.com/san-kum/kinelab/internal/kinematics"
	"github.com/san-kum/kinelab/internal/metrics"
	"github.com/san-kum/kinelab/internal/models"
	"github.com/san-kum/kinelab/internal/sim"
)

type Registry struct {
	scenarios   map[string]func(*config.Config) (sim.Scenario, error)
	integrators map[string]func() sim.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		scenarios:   make(map[string]func(*config.Config) (sim.Scenario, error)),
		integrators: make(map[string]func() sim.Integrator),
	}

	r.scenarios["catapult"] = func(cfg *config.Config) (sim.Scenario, error) {
		speed, err := cfg.LaunchSpeed()
		if err != nil {
			return nil, err
		}
		return models.NewCatapult(cfg.Catapult.AngleDegrees, speed, cfg.Catapult.Gravity)
	}
	r.scenarios["pendulum"] = func(cfg *config.Config) (sim.Scenario, error) {
		p := cfg.Pendulum
		return models.NewPendulum(p.Length, p.Gravity, p.Amplitude)
	}

	r.integrators["euler"] = func() sim.Integrator { return integrators.NewEuler() }
	r.integrators["rk4"] = func() sim.Integrator { return integrators.NewRK4() }
	r.integrators["verlet"] = func() sim.Integrator { return integrators.NewVerlet() }
	r.integrators["leapfrog"] = func() sim.Integrator { return integrators.NewLeapfrog() }

	return r
}

// GetScenario builds the named scenario from the matching config section.
func (r *Registry) GetScenario(name string, cfg *config.Config) (sim.Scenario, error) {
	fn, ok := r.scenarios[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario: %s", name)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return fn(cfg)
}

func (r *Registry) GetIntegrator(name string) (sim.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListScenarios() []string {
	return sortedKeys(r.scenarios)
}

func (r *Registry) ListIntegrators() []string {
	return sortedKeys(r.integrators)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics returns fresh metrics for one run of sc. Gravity is read
// from the scenario itself so swept or edited parameters are honoured.
func (r *Registry) DefaultMetrics(sc sim.Scenario) []sim.Metric {
	switch sc.Name() {
	case "catapult":
		g := kinematics.StandardGravity
		if c, ok := sc.(sim.Configurable); ok {
			g = c.GetParams()["gravity"]
		}
		return []sim.Metric{
			metrics.NewPeak("apex", 1),
			metrics.NewSpecificEnergy(g),
		}
	case "pendulum":
		return []sim.Metric{
			metrics.NewSpan("angle_span", 0),
			metrics.NewPeak("max_omega", 1),
		}
	}
	return nil
}
