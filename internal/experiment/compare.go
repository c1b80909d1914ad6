package experiment

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/kinelab/internal/models"
	"github.com/san-kum/kinelab/internal/sim"
)

// Comparison is the gap between a scenario's closed form and a numeric
// integration of its reference dynamics.
type Comparison struct {
	Integrator string
	Steps      int
	MaxError   float64
	FinalError float64
	Times      []float64
	Errors     []float64
}

// Compare integrates the reference ODE of sc with the named integrator and
// measures, at every step, the distance between the integrated state and
// the leading components of the closed-form frame. The run ends at
// cfg.Duration or on the first terminal frame.
func (r *Registry) Compare(ctx context.Context, sc sim.Scenario, integrator string, cfg sim.Config) (*Comparison, error) {
	if cfg.Dt <= 0 || cfg.Duration <= 0 {
		return nil, fmt.Errorf("dt and duration must be positive, got %g and %g", cfg.Dt, cfg.Duration)
	}
	integ, err := r.GetIntegrator(integrator)
	if err != nil {
		return nil, err
	}
	dyn, x, ok := models.Reference(sc)
	if !ok {
		return nil, fmt.Errorf("scenario %s has no reference dynamics", sc.Name())
	}

	steps := int(math.Round(cfg.Duration / cfg.Dt))
	cmp := &Comparison{
		Integrator: integrator,
		Times:      make([]float64, 0, steps+1),
		Errors:     make([]float64, 0, steps+1),
	}

	for i := 0; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return cmp, ctx.Err()
		default:
		}

		t := float64(i) * cfg.Dt
		f, err := sc.Frame(t)
		if err != nil {
			return cmp, stepError(t, i, err)
		}
		if f.Done {
			break
		}
		if !x.IsValid() {
			return cmp, sim.SimError{Time: t, Step: i, Message: "integrated state diverged"}
		}

		n := len(x)
		if len(f.State) < n {
			n = len(f.State)
		}
		gap := x[:n].Sub(f.State[:n]).Norm()

		cmp.Times = append(cmp.Times, t)
		cmp.Errors = append(cmp.Errors, gap)
		cmp.MaxError = math.Max(cmp.MaxError, gap)
		cmp.FinalError = gap
		cmp.Steps++

		x = integ.Step(dyn, x, t, cfg.Dt)
	}

	return cmp, nil
}

func stepError(t float64, step int, err error) error {
	return sim.SimError{Time: t, Step: step, Message: err.Error()}
}
