package kinematics

import "math"

// DefaultAmplitude is the release angle of the pendulum in radians.
const DefaultAmplitude = 0.5

// PendulumParams describes a simple pendulum released from rest.
type PendulumParams struct {
	Length    float64
	Gravity   float64
	Amplitude float64 // rad, measured from the downward vertical
}

func (p PendulumParams) validate() error {
	if err := requirePositive("length", p.Length); err != nil {
		return err
	}
	if err := requirePositive("gravity", p.Gravity); err != nil {
		return err
	}
	return requireFinite("amplitude", p.Amplitude)
}

// Oscillation holds the quantities derived once per parameter change.
//
// The period is the small-angle value 2π√(L/g) and does not depend on the
// amplitude.
type Oscillation struct {
	Params           PendulumParams
	AngularFrequency float64
	Period           float64
}

// PendulumFrame is the bob state at one instant. Offsets are relative to the
// pivot with y pointing down.
type PendulumFrame struct {
	Time             float64
	Angle            float64
	AngularVelocity  float64
	HorizontalOffset float64
	VerticalOffset   float64
}

func NewOscillation(p PendulumParams) (*Oscillation, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Oscillation{
		Params:           p,
		AngularFrequency: math.Sqrt(p.Gravity / p.Length),
		Period:           2 * math.Pi * math.Sqrt(p.Length/p.Gravity),
	}, nil
}

// At evaluates the swing at elapsed seconds after release. The oscillator is
// undamped and never settles.
func (o *Oscillation) At(elapsed float64) (PendulumFrame, error) {
	if err := requireNonNegative("elapsed", elapsed); err != nil {
		return PendulumFrame{}, err
	}

	sinWt, cosWt := math.Sincos(o.AngularFrequency * elapsed)
	angle := o.Params.Amplitude * cosWt
	sin, cos := math.Sincos(angle)

	return PendulumFrame{
		Time:             elapsed,
		Angle:            angle,
		AngularVelocity:  -o.Params.Amplitude * o.AngularFrequency * sinWt,
		HorizontalOffset: o.Params.Length * sin,
		VerticalOffset:   o.Params.Length * cos,
	}, nil
}

// PendulumResult is the combined output of EvaluatePendulum.
type PendulumResult struct {
	PendulumFrame
	Period float64
}

// EvaluatePendulum is the one-shot form of NewOscillation followed by At.
func EvaluatePendulum(length, gravity, amplitude, elapsed float64) (PendulumResult, error) {
	osc, err := NewOscillation(PendulumParams{Length: length, Gravity: gravity, Amplitude: amplitude})
	if err != nil {
		return PendulumResult{}, err
	}
	f, err := osc.At(elapsed)
	if err != nil {
		return PendulumResult{}, err
	}
	return PendulumResult{PendulumFrame: f, Period: osc.Period}, nil
}
