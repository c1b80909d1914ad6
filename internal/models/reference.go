package models

import (
	"math"

	"github.com/san-kum/kinelab/internal/sim"
)

// NonlinearPendulum integrates θ'' = -(g/L)·sin θ without the small-angle
// approximation. State: theta, omega.
type NonlinearPendulum struct {
	Length  float64
	Gravity float64
}

func (p *NonlinearPendulum) StateDim() int { return 2 }

func (p *NonlinearPendulum) Derivative(x sim.State, t float64) sim.State {
	return sim.State{x[1], -p.Gravity / p.Length * math.Sin(x[0])}
}

// Energy per unit mass, zero at the bottom of the swing.
func (p *NonlinearPendulum) Energy(x sim.State) float64 {
	v := p.Length * x[1]
	return 0.5*v*v + p.Gravity*p.Length*(1-math.Cos(x[0]))
}

// Ballistic is drag-free flight under constant gravity. State: x, y, vx, vy.
type Ballistic struct {
	Gravity float64
}

func (b *Ballistic) StateDim() int { return 4 }

func (b *Ballistic) Derivative(x sim.State, t float64) sim.State {
	return sim.State{x[2], x[3], 0, -b.Gravity}
}

// Reference returns ODE dynamics and the matching initial state for a
// scenario, or false when the scenario has none.
func Reference(sc sim.Scenario) (sim.Dynamics, sim.State, bool) {
	switch s := sc.(type) {
	case *Catapult:
		f, err := s.Frame(0)
		if err != nil {
			return nil, nil, false
		}
		return &Ballistic{Gravity: s.traj.Params.Gravity}, f.State.Clone(), true
	case *Pendulum:
		params := s.osc.Params
		return &NonlinearPendulum{Length: params.Length, Gravity: params.Gravity}, sim.State{params.Amplitude, 0}, true
	}
	return nil, nil, false
}
