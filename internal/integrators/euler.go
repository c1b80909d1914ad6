package integrators

import "github.com/san-kum/kinelab/internal/sim"

// Euler is the explicit first-order stepper. On the catapult reference it
// overshoots the height at time t by g·t·dt/2.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn sim.Dynamics, x sim.State, t float64, dt float64) sim.State {
	dx := dyn.Derivative(x, t)
	result := make(sim.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
