package models

import (
	"fmt"

	"github.com/san-kum/kinelab/internal/kinematics"
	"github.com/san-kum/kinelab/internal/sim"
)

const (
	DefaultAngle = 45.0
	DefaultSpeed = 20.0
)

// CatapultBounds are the slider ranges of the catapult view.
var CatapultBounds = map[string]sim.Bounds{
	"angle": {Min: 10, Max: 80, Step: 1, Unit: "°"},
	"speed": {Min: 5, Max: 40, Step: 1, Unit: "m/s"},
}

// Catapult is the projectile scenario. State layout: x, y, vx, vy.
type Catapult struct {
	traj *kinematics.Trajectory
}

func NewCatapult(angleDegrees, speed, gravity float64) (*Catapult, error) {
	c := &Catapult{}
	if err := c.rebuild(kinematics.ProjectileParams{AngleDegrees: angleDegrees, Speed: speed, Gravity: gravity}); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catapult) rebuild(p kinematics.ProjectileParams) error {
	traj, err := kinematics.NewTrajectory(p)
	if err != nil {
		return err
	}
	c.traj = traj
	return nil
}

func (c *Catapult) Name() string                      { return "catapult" }
func (c *Catapult) StateLabels() []string             { return []string{"x", "y", "vx", "vy"} }
func (c *Catapult) Trajectory() *kinematics.Trajectory { return c.traj }
func (c *Catapult) RestartOnChange() bool             { return true }

func (c *Catapult) Frame(elapsed float64) (sim.Frame, error) {
	f, err := c.traj.At(elapsed)
	if err != nil {
		return sim.Frame{}, err
	}
	return sim.Frame{
		Time:  f.Time,
		State: sim.State{f.X, f.Y, f.VX, f.VY},
		Done:  f.Landed,
	}, nil
}

func (c *Catapult) Summary() map[string]float64 {
	return map[string]float64{
		"range":          c.traj.Range,
		"time_of_flight": c.traj.TimeOfFlight,
		"max_height":     c.traj.MaxHeight,
	}
}

func (c *Catapult) GetParams() map[string]float64 {
	return map[string]float64{
		"angle":   c.traj.Params.AngleDegrees,
		"speed":   c.traj.Params.Speed,
		"gravity": c.traj.Params.Gravity,
	}
}

func (c *Catapult) SetParam(name string, value float64) error {
	p := c.traj.Params
	switch name {
	case "angle":
		p.AngleDegrees = value
	case "speed":
		p.Speed = value
	case "gravity":
		p.Gravity = value
	default:
		return fmt.Errorf("catapult %q: %w", name, sim.ErrUnknownParam)
	}
	return c.rebuild(p)
}

func (c *Catapult) ParamBounds() map[string]sim.Bounds { return CatapultBounds }
