package metrics

import (
	"math"

	"github.com/san-kum/kinelab/internal/sim"
)

// SpecificEnergy tracks ½v² + g·y per unit mass of a projectile frame
// (x, y, vx, vy) and reports the largest relative drift from the launch
// value. Free flight conserves it, so any drift is numerical.
type SpecificEnergy struct {
	name          string
	gravity       float64
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewSpecificEnergy(gravity float64) *SpecificEnergy {
	return &SpecificEnergy{
		name:    "energy_drift",
		gravity: gravity,
	}
}

func (e *SpecificEnergy) Name() string { return e.name }

func (e *SpecificEnergy) Observe(f sim.Frame) {
	x := f.State
	if len(x) < 4 {
		return
	}
	energy := 0.5*(x[2]*x[2]+x[3]*x[3]) + e.gravity*x[1]

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *SpecificEnergy) Value() float64 {
	return e.maxDrift
}

func (e *SpecificEnergy) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}
