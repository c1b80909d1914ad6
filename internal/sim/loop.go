package sim

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Loop drives a Session in real time at a fixed frame rate.
type Loop struct {
	FPS    int
	Logger *slog.Logger
}

func NewLoop(fps int, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{FPS: fps, Logger: logger}
}

// Run plays the session and hands every frame to fn. It returns when the
// context is done, fn returns false, or the session stops on its own after
// a terminal frame.
func (l *Loop) Run(ctx context.Context, s *Session, fn func(Frame) bool) error {
	if l.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", l.FPS)
	}

	ticker := time.NewTicker(time.Second / time.Duration(l.FPS))
	defer ticker.Stop()

	s.Play()
	l.Logger.Debug("loop started", "scenario", s.Scenario().Name(), "fps", l.FPS)

	frames := 0
	for {
		select {
		case <-ctx.Done():
			s.Pause()
			l.Logger.Debug("loop canceled", "frames", frames, "elapsed", s.Elapsed())
			return ctx.Err()
		case now := <-ticker.C:
			f, err := s.Tick(now)
			if err != nil {
				return SimError{Time: s.Elapsed(), Step: frames, Message: err.Error()}
			}
			frames++
			if !fn(f) {
				s.Pause()
				return nil
			}
			if !s.Running() {
				l.Logger.Debug("loop finished", "frames", frames, "elapsed", s.Elapsed())
				return nil
			}
		}
	}
}
