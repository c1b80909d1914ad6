package sim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
)

// dropScenario falls at unit speed from height h and lands at t = h.
type dropScenario struct {
	height  float64
	restart bool
}

func (d *dropScenario) Name() string { return "drop" }

func (d *dropScenario) Frame(elapsed float64) (Frame, error) {
	if elapsed < 0 {
		return Frame{}, fmt.Errorf("negative elapsed %g", elapsed)
	}
	if elapsed > d.height {
		return Frame{Time: d.height, State: State{0, -1}, Done: true}, nil
	}
	return Frame{Time: elapsed, State: State{d.height - elapsed, -1}}, nil
}

func (d *dropScenario) Summary() map[string]float64 {
	return map[string]float64{"landing_time": d.height}
}

func (d *dropScenario) StateLabels() []string { return []string{"y", "vy"} }

func (d *dropScenario) GetParams() map[string]float64 {
	return map[string]float64{"height": d.height}
}

func (d *dropScenario) SetParam(name string, value float64) error {
	if name != "height" {
		return fmt.Errorf("%s: %w", name, ErrUnknownParam)
	}
	d.height = value
	return nil
}

func (d *dropScenario) RestartOnChange() bool { return d.restart }

// waveScenario never terminates.
type waveScenario struct{}

func (waveScenario) Name() string { return "wave" }
func (waveScenario) Frame(elapsed float64) (Frame, error) {
	return Frame{Time: elapsed, State: State{math.Sin(elapsed)}}, nil
}
func (waveScenario) Summary() map[string]float64 { return map[string]float64{} }
func (waveScenario) StateLabels() []string       { return []string{"a"} }

type testMetric struct {
	count int
	sum   float64
}

func (t *testMetric) Name() string { return "test" }
func (t *testMetric) Observe(f Frame) {
	t.count++
	t.sum += f.State[0]
}
func (t *testMetric) Value() float64 {
	if t.count == 0 {
		return 0
	}
	return t.sum / float64(t.count)
}
func (t *testMetric) Reset() {
	t.count = 0
	t.sum = 0
}

func TestSimulatorRun(t *testing.T) {
	sim := New(waveScenario{})

	cfg := Config{Dt: 0.1, Duration: 1.0}
	result, err := sim.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 11 {
		t.Errorf("expected 11 states, got %d", len(result.States))
	}
	if len(result.Times) != 11 {
		t.Errorf("expected 11 times, got %d", len(result.Times))
	}
	if result.Landed {
		t.Error("non-terminating scenario reported landed")
	}

	final := result.States[len(result.States)-1][0]
	if math.Abs(final-math.Sin(1.0)) > 1e-12 {
		t.Errorf("expected final state %.4f, got %.4f", math.Sin(1.0), final)
	}
}

func TestSimulatorStopsOnTerminalFrame(t *testing.T) {
	sim := New(&dropScenario{height: 0.35})

	result, err := sim.Run(context.Background(), Config{Dt: 0.1, Duration: 5.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !result.Landed {
		t.Fatal("expected landed result")
	}
	// t = 0, 0.1, 0.2, 0.3 and the landing frame at 0.35
	if len(result.States) != 5 {
		t.Errorf("expected 5 states, got %d", len(result.States))
	}
	if last := result.Times[len(result.Times)-1]; last != 0.35 {
		t.Errorf("expected landing time 0.35, got %g", last)
	}
	if result.Summary["landing_time"] != 0.35 {
		t.Errorf("summary not carried into result: %v", result.Summary)
	}
}

func TestSimulatorInvalidConfig(t *testing.T) {
	sim := New(waveScenario{})

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Duration: 1.0}},
		{"negative dt", Config{Dt: -0.1, Duration: 1.0}},
		{"zero duration", Config{Dt: 0.1, Duration: 0}},
		{"negative duration", Config{Dt: 0.1, Duration: -1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sim.Run(context.Background(), tt.cfg)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSimulatorMetrics(t *testing.T) {
	sim := New(waveScenario{})

	metric := &testMetric{}
	sim.AddMetric(metric)

	result, err := sim.Run(context.Background(), Config{Dt: 0.1, Duration: 1.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if _, ok := result.Metrics["test"]; !ok {
		t.Error("metric not found in result")
	}
	if metric.count != 11 {
		t.Errorf("expected 11 observations, got %d", metric.count)
	}
}

func TestSimulatorCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(waveScenario{}).Run(ctx, Config{Dt: 0.1, Duration: 1.0})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunWithCallback(t *testing.T) {
	sim := New(&dropScenario{height: 1})

	var frames []Frame
	err := sim.RunWithCallback(context.Background(), Config{Dt: 0.25, Duration: 10}, func(f Frame) bool {
		frames = append(frames, f)
		return true
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	// 0, 0.25, 0.5, 0.75, 1.0, then the landing frame at 1.25
	if len(frames) != 6 {
		t.Fatalf("expected 6 frames, got %d", len(frames))
	}
	if !frames[5].Done {
		t.Error("last frame should be terminal")
	}

	count := 0
	_ = sim.RunWithCallback(context.Background(), Config{Dt: 0.25, Duration: 10}, func(f Frame) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Errorf("callback returning false should stop the run, got %d calls", count)
	}
}

func TestSweep(t *testing.T) {
	heights := []float64{0.2, 0.5, 0.9}
	sweep := NewSweep(func(h float64) (Scenario, error) {
		return &dropScenario{height: h}, nil
	}, func(Scenario) []Metric { return []Metric{&testMetric{}} })

	results, err := sweep.Run(context.Background(), heights, Config{Dt: 0.05, Duration: 2})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	for i, h := range heights {
		if results[i].Summary["landing_time"] != h {
			t.Errorf("result %d out of order: %v", i, results[i].Summary)
		}
		if _, ok := results[i].Metrics["test"]; !ok {
			t.Errorf("result %d missing metric", i)
		}
	}
}

func TestSweepBuildError(t *testing.T) {
	sweep := NewSweep(func(h float64) (Scenario, error) {
		if h < 0 {
			return nil, errors.New("negative height")
		}
		return &dropScenario{height: h}, nil
	}, nil)

	if _, err := sweep.Run(context.Background(), []float64{1, -1}, Config{Dt: 0.1, Duration: 1}); err == nil {
		t.Error("expected build error")
	}
}
