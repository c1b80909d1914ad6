package sim

import (
	"errors"
	"fmt"
	"math"
)

// State is a scenario's observable vector at one instant.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] + other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// Frame is one evaluation of a scenario. Done marks a terminal frame; the
// caller must stop advancing the clock once it sees one.
type Frame struct {
	Time  float64
	State State
	Done  bool
}

// Scenario maps elapsed simulated time to a frame. Implementations hold
// only parameters and quantities derived from them.
type Scenario interface {
	Name() string
	Frame(elapsed float64) (Frame, error)
	Summary() map[string]float64
	StateLabels() []string
}

type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Bounds is the slider range of a parameter.
type Bounds struct {
	Min, Max, Step float64
	Unit           string
}

func (b Bounds) Clamp(v float64) float64 {
	return math.Max(b.Min, math.Min(b.Max, v))
}

type Bounded interface {
	ParamBounds() map[string]Bounds
}

// Restarter is implemented by scenarios whose motion restarts from t=0 when
// a parameter changes mid-run.
type Restarter interface {
	RestartOnChange() bool
}

// Dynamics is an ODE right-hand side dx/dt = f(x, t).
type Dynamics interface {
	Derivative(x State, t float64) State
	StateDim() int
}

type Integrator interface {
	Step(dyn Dynamics, x State, t float64, dt float64) State
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f Frame)
}

type Config struct {
	Dt       float64
	Duration float64
}

func DefaultConfig() Config {
	return Config{
		Dt:       0.01,
		Duration: 10.0,
	}
}

type Result struct {
	Scenario   string
	Labels     []string
	States     []State
	Times      []float64
	Metrics    map[string]float64
	Summary    map[string]float64
	Landed     bool
	StepsTaken int
}

var (
	// ErrUnknownParam indicates a parameter name the scenario does not expose.
	ErrUnknownParam = errors.New("sim: unknown parameter")

	// ErrNotConfigurable indicates the scenario has no adjustable parameters.
	ErrNotConfigurable = errors.New("sim: scenario is not configurable")
)

type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
