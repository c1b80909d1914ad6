package models

import (
	"fmt"

	"github.com/san-kum/kinelab/internal/kinematics"
	"github.com/san-kum/kinelab/internal/sim"
)

const DefaultLength = 1.0

var PendulumBounds = map[string]sim.Bounds{
	"length": {Min: 0.1, Max: 2.0, Step: 0.1, Unit: "m"},
}

// Pendulum is the small-angle pendulum scenario. State layout: theta,
// omega, x, y with x and y the bob offset from the pivot.
type Pendulum struct {
	osc *kinematics.Oscillation
}

func NewPendulum(length, gravity, amplitude float64) (*Pendulum, error) {
	p := &Pendulum{}
	if err := p.rebuild(kinematics.PendulumParams{Length: length, Gravity: gravity, Amplitude: amplitude}); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pendulum) rebuild(params kinematics.PendulumParams) error {
	osc, err := kinematics.NewOscillation(params)
	if err != nil {
		return err
	}
	p.osc = osc
	return nil
}

func (p *Pendulum) Name() string                        { return "pendulum" }
func (p *Pendulum) StateLabels() []string               { return []string{"theta", "omega", "x", "y"} }
func (p *Pendulum) Oscillation() *kinematics.Oscillation { return p.osc }

// RestartOnChange releases the bob again from the amplitude after a length
// or gravity change.
func (p *Pendulum) RestartOnChange() bool { return true }

func (p *Pendulum) Frame(elapsed float64) (sim.Frame, error) {
	f, err := p.osc.At(elapsed)
	if err != nil {
		return sim.Frame{}, err
	}
	return sim.Frame{
		Time:  f.Time,
		State: sim.State{f.Angle, f.AngularVelocity, f.HorizontalOffset, f.VerticalOffset},
	}, nil
}

func (p *Pendulum) Summary() map[string]float64 {
	return map[string]float64{
		"period":            p.osc.Period,
		"angular_frequency": p.osc.AngularFrequency,
		"amplitude":         p.osc.Params.Amplitude,
	}
}

func (p *Pendulum) GetParams() map[string]float64 {
	return map[string]float64{
		"length":  p.osc.Params.Length,
		"gravity": p.osc.Params.Gravity,
	}
}

// SetParam changes length or gravity. The amplitude is fixed at
// construction.
func (p *Pendulum) SetParam(name string, value float64) error {
	params := p.osc.Params
	switch name {
	case "length":
		params.Length = value
	case "gravity":
		params.Gravity = value
	default:
		return fmt.Errorf("pendulum %q: %w", name, sim.ErrUnknownParam)
	}
	return p.rebuild(params)
}

func (p *Pendulum) ParamBounds() map[string]sim.Bounds { return PendulumBounds }
