package sim

import (
	"fmt"
	"time"
)

// Session is the explicit state of one simulation view: the scenario with
// its parameters, the clock, and the last frame drawn. It is owned by a
// single controller and is not safe for concurrent use.
type Session struct {
	scenario Scenario
	clock    Clock
	lastTick time.Time
	frame    Frame
}

// NewSession evaluates the rest frame and returns a paused session.
func NewSession(sc Scenario) (*Session, error) {
	s := &Session{scenario: sc}
	if err := s.evaluate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Scenario() Scenario { return s.scenario }
func (s *Session) Frame() Frame       { return s.frame }
func (s *Session) Elapsed() float64   { return s.clock.Elapsed() }
func (s *Session) Running() bool      { return s.clock.Running() }

// Play resumes the clock. A session that already reached a terminal frame
// starts over from launch.
func (s *Session) Play() {
	if s.frame.Done {
		s.clock.Restart()
		s.frame = Frame{}
	}
	s.lastTick = time.Time{}
	s.clock.Start()
}

func (s *Session) Pause() {
	s.clock.Stop()
	s.lastTick = time.Time{}
}

func (s *Session) Toggle() {
	if s.Running() {
		s.Pause()
	} else {
		s.Play()
	}
}

// Reset stops the clock, zeroes elapsed time and redraws the rest frame.
func (s *Session) Reset() error {
	s.clock.Reset()
	s.lastTick = time.Time{}
	return s.evaluate()
}

// Tick advances the clock by the wall time since the previous tick and
// evaluates the scenario once. now is the single clock read for this frame.
// A terminal frame pauses the session.
func (s *Session) Tick(now time.Time) (Frame, error) {
	if s.clock.Running() {
		if !s.lastTick.IsZero() {
			s.clock.Advance(now.Sub(s.lastTick))
		}
		s.lastTick = now
	}

	if err := s.evaluate(); err != nil {
		s.Pause()
		return Frame{}, err
	}
	if s.frame.Done {
		s.Pause()
	}
	return s.frame, nil
}

func (s *Session) Params() map[string]float64 {
	if c, ok := s.scenario.(Configurable); ok {
		return c.GetParams()
	}
	return nil
}

// SetParam updates a scenario parameter and re-derives its quantities.
// Scenarios implementing Restarter begin again from t=0.
func (s *Session) SetParam(name string, value float64) error {
	c, ok := s.scenario.(Configurable)
	if !ok {
		return fmt.Errorf("%s: %w", s.scenario.Name(), ErrNotConfigurable)
	}
	if err := c.SetParam(name, value); err != nil {
		return err
	}
	if r, ok := s.scenario.(Restarter); ok && r.RestartOnChange() {
		s.clock.Restart()
		s.frame = Frame{}
	}
	return s.evaluate()
}

func (s *Session) evaluate() error {
	f, err := s.scenario.Frame(s.clock.Elapsed())
	if err != nil {
		return err
	}
	s.frame = f
	return nil
}
