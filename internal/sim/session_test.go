package sim

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

func TestClock(t *testing.T) {
	var c Clock

	c.Advance(time.Second)
	if c.Elapsed() != 0 {
		t.Errorf("stopped clock advanced to %g", c.Elapsed())
	}

	c.Start()
	c.Advance(500 * time.Millisecond)
	c.Advance(-time.Second)
	if c.Elapsed() != 0.5 {
		t.Errorf("elapsed = %g, want 0.5", c.Elapsed())
	}

	c.Stop()
	c.Advance(time.Second)
	if c.Elapsed() != 0.5 {
		t.Errorf("paused clock advanced to %g", c.Elapsed())
	}

	c.Start()
	c.Restart()
	if c.Elapsed() != 0 || !c.Running() {
		t.Errorf("restart should zero elapsed and keep running, got %g running=%v", c.Elapsed(), c.Running())
	}

	c.Advance(time.Second)
	c.Reset()
	if c.Elapsed() != 0 || c.Running() {
		t.Errorf("reset should zero elapsed and stop, got %g running=%v", c.Elapsed(), c.Running())
	}
}

func TestSessionTick(t *testing.T) {
	s, err := NewSession(&dropScenario{height: 2})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if s.Running() {
		t.Fatal("new session should be paused")
	}
	if s.Frame().State[0] != 2 {
		t.Errorf("rest frame y = %g, want 2", s.Frame().State[0])
	}

	base := time.Now()
	s.Play()
	s.Tick(base)
	f, _ := s.Tick(base.Add(500 * time.Millisecond))
	if math.Abs(f.Time-0.5) > 1e-9 {
		t.Errorf("frame time = %g, want 0.5", f.Time)
	}

	s.Pause()
	f, _ = s.Tick(base.Add(5 * time.Second))
	if math.Abs(f.Time-0.5) > 1e-9 {
		t.Errorf("paused session advanced to %g", f.Time)
	}

	// the paused interval must not count once resumed
	s.Play()
	s.Tick(base.Add(10 * time.Second))
	f, _ = s.Tick(base.Add(10*time.Second + 250*time.Millisecond))
	if math.Abs(f.Time-0.75) > 1e-9 {
		t.Errorf("frame time after resume = %g, want 0.75", f.Time)
	}
}

func TestSessionStopsWhenDone(t *testing.T) {
	s, _ := NewSession(&dropScenario{height: 0.3})

	base := time.Now()
	s.Play()
	s.Tick(base)
	f, err := s.Tick(base.Add(time.Second))
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if !f.Done {
		t.Fatal("expected terminal frame")
	}
	if s.Running() {
		t.Error("session should pause on a terminal frame")
	}

	frozen := s.Elapsed()
	s.Tick(base.Add(2 * time.Second))
	if s.Elapsed() != frozen {
		t.Errorf("clock moved after landing: %g -> %g", frozen, s.Elapsed())
	}

	s.Play()
	if s.Elapsed() != 0 {
		t.Errorf("playing after landing should relaunch, elapsed %g", s.Elapsed())
	}
}

func TestSessionReset(t *testing.T) {
	s, _ := NewSession(&dropScenario{height: 3})

	base := time.Now()
	s.Play()
	s.Tick(base)
	s.Tick(base.Add(time.Second))

	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if s.Running() || s.Elapsed() != 0 {
		t.Errorf("reset left running=%v elapsed=%g", s.Running(), s.Elapsed())
	}
	if s.Frame().State[0] != 3 {
		t.Errorf("reset should redraw the rest frame, got %v", s.Frame().State)
	}
}

func TestSessionSetParam(t *testing.T) {
	tests := []struct {
		name    string
		restart bool
		elapsed float64
	}{
		{"restarting scenario", true, 0},
		{"continuing scenario", false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := NewSession(&dropScenario{height: 5, restart: tt.restart})

			base := time.Now()
			s.Play()
			s.Tick(base)
			s.Tick(base.Add(time.Second))

			if err := s.SetParam("height", 4); err != nil {
				t.Fatalf("set param: %v", err)
			}
			if math.Abs(s.Elapsed()-tt.elapsed) > 1e-9 {
				t.Errorf("elapsed = %g, want %g", s.Elapsed(), tt.elapsed)
			}
			if !s.Running() {
				t.Error("parameter change should not pause the session")
			}
			if s.Params()["height"] != 4 {
				t.Errorf("params = %v", s.Params())
			}
		})
	}
}

func TestSessionSetParamErrors(t *testing.T) {
	s, _ := NewSession(&dropScenario{height: 1})
	if err := s.SetParam("mass", 1); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}

	w, _ := NewSession(waveScenario{})
	if err := w.SetParam("a", 1); !errors.Is(err, ErrNotConfigurable) {
		t.Errorf("expected ErrNotConfigurable, got %v", err)
	}
	if w.Params() != nil {
		t.Errorf("expected nil params, got %v", w.Params())
	}
}

func TestLoopRunsUntilLanding(t *testing.T) {
	s, _ := NewSession(&dropScenario{height: 0.05})
	loop := NewLoop(200, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var last Frame
	frames := 0
	err := loop.Run(ctx, s, func(f Frame) bool {
		if f.Time < last.Time {
			t.Errorf("frame time went backwards: %g -> %g", last.Time, f.Time)
		}
		last = f
		frames++
		return true
	})
	if err != nil {
		t.Fatalf("loop: %v", err)
	}
	if !last.Done {
		t.Error("loop should end on the terminal frame")
	}
	if s.Running() {
		t.Error("session should be paused after the loop ends")
	}
	if frames < 2 {
		t.Errorf("expected several frames, got %d", frames)
	}
}

func TestLoopStops(t *testing.T) {
	s, _ := NewSession(waveScenario{})
	loop := NewLoop(200, nil)

	count := 0
	err := loop.Run(context.Background(), s, func(f Frame) bool {
		count++
		return count < 3
	})
	if err != nil {
		t.Fatalf("loop: %v", err)
	}
	if count != 3 || s.Running() {
		t.Errorf("callback stop: count=%d running=%v", count, s.Running())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if err := loop.Run(ctx, s, func(Frame) bool { return true }); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}

	if err := NewLoop(0, nil).Run(context.Background(), s, func(Frame) bool { return true }); err == nil {
		t.Error("expected error for zero fps")
	}
}
