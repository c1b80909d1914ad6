package sim

import (
	"context"
	"fmt"
	"math"
)

// Simulator samples a scenario at a fixed step for offline runs.
type Simulator struct {
	scenario  Scenario
	metrics   []Metric
	observers []Observer
}

func New(sc Scenario) *Simulator {
	return &Simulator{
		scenario:  sc,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Scenario() Scenario { return s.scenario }

// Run samples t = 0, dt, 2dt, ... up to cfg.Duration. A terminal frame is
// recorded and ends the run early.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(math.Round(cfg.Duration / cfg.Dt))
	result := &Result{
		Scenario: s.scenario.Name(),
		Labels:   s.scenario.StateLabels(),
		States:   make([]State, 0, steps+1),
		Times:    make([]float64, 0, steps+1),
		Metrics:  make(map[string]float64),
		Summary:  s.scenario.Summary(),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		t := float64(i) * cfg.Dt
		f, err := s.scenario.Frame(t)
		if err != nil {
			return result, SimError{Time: t, Step: i, Message: err.Error()}
		}
		if !f.State.IsValid() {
			return result, SimError{Time: t, Step: i, Message: "invalid state (NaN/Inf)"}
		}

		for _, m := range s.metrics {
			m.Observe(f)
		}
		for _, obs := range s.observers {
			obs.OnFrame(f)
		}

		result.States = append(result.States, f.State.Clone())
		result.Times = append(result.Times, f.Time)
		result.StepsTaken++

		if f.Done {
			result.Landed = true
			break
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}

// RunWithCallback samples like Run without recording, stopping when the
// callback returns false.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(Frame) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	steps := int(math.Round(cfg.Duration / cfg.Dt))
	for i := 0; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f, err := s.scenario.Frame(float64(i) * cfg.Dt)
		if err != nil {
			return err
		}
		if !callback(f) || f.Done {
			return nil
		}
	}

	return nil
}
