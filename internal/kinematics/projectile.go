package kinematics

import "math"

// StandardGravity is the gravitational acceleration used by every scenario
// unless overridden.
const StandardGravity = 9.8

// ProjectileParams describes a launch from ground level.
type ProjectileParams struct {
	AngleDegrees float64
	Speed        float64
	Gravity      float64
}

func (p ProjectileParams) validate() error {
	if err := requireFinite("angle", p.AngleDegrees); err != nil {
		return err
	}
	if err := requireNonNegative("speed", p.Speed); err != nil {
		return err
	}
	return requirePositive("gravity", p.Gravity)
}

// Trajectory holds the quantities derived once per parameter change.
type Trajectory struct {
	Params       ProjectileParams
	AngleRadians float64
	TimeOfFlight float64
	Range        float64
	MaxHeight    float64

	vx, vy0 float64
}

// ProjectileFrame is the projectile state at one instant. Once Landed is set
// the position and velocity are those at touchdown.
type ProjectileFrame struct {
	Time   float64
	X, Y   float64
	VX, VY float64
	Landed bool
}

// NewTrajectory derives time of flight, range and apex height.
func NewTrajectory(p ProjectileParams) (*Trajectory, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	rad := p.AngleDegrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	v2 := p.Speed * p.Speed

	return &Trajectory{
		Params:       p,
		AngleRadians: rad,
		TimeOfFlight: 2 * p.Speed * sin / p.Gravity,
		Range:        v2 * math.Sin(2*rad) / p.Gravity,
		MaxHeight:    v2 * sin * sin / (2 * p.Gravity),
		vx:           p.Speed * cos,
		vy0:          p.Speed * sin,
	}, nil
}

// At evaluates the arc at elapsed seconds after launch.
func (t *Trajectory) At(elapsed float64) (ProjectileFrame, error) {
	if err := requireNonNegative("elapsed", elapsed); err != nil {
		return ProjectileFrame{}, err
	}

	if elapsed > t.TimeOfFlight {
		f := t.position(math.Max(t.TimeOfFlight, 0))
		f.Landed = true
		return f, nil
	}
	return t.position(elapsed), nil
}

// ApexTime is the instant the vertical velocity crosses zero.
func (t *Trajectory) ApexTime() float64 {
	return t.TimeOfFlight / 2
}

func (t *Trajectory) position(at float64) ProjectileFrame {
	g := t.Params.Gravity
	return ProjectileFrame{
		Time: at,
		X:    t.vx * at,
		Y:    t.vy0*at - 0.5*g*at*at,
		VX:   t.vx,
		VY:   t.vy0 - g*at,
	}
}

// ProjectileResult is the combined per-frame and summary output of
// EvaluateProjectile.
type ProjectileResult struct {
	ProjectileFrame
	Range        float64
	TimeOfFlight float64
	MaxHeight    float64
}

// EvaluateProjectile is the one-shot form of NewTrajectory followed by At.
func EvaluateProjectile(angleDegrees, speed, gravity, elapsed float64) (ProjectileResult, error) {
	traj, err := NewTrajectory(ProjectileParams{AngleDegrees: angleDegrees, Speed: speed, Gravity: gravity})
	if err != nil {
		return ProjectileResult{}, err
	}
	f, err := traj.At(elapsed)
	if err != nil {
		return ProjectileResult{}, err
	}
	return ProjectileResult{
		ProjectileFrame: f,
		Range:           traj.Range,
		TimeOfFlight:    traj.TimeOfFlight,
		MaxHeight:       traj.MaxHeight,
	}, nil
}
