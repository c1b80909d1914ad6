package sim

import (
	"context"
	"sync"
)

// Sweep runs one independent simulation per parameter value. Each run owns
// its scenario, so no state is shared between goroutines.
type Sweep struct {
	build   func(value float64) (Scenario, error)
	metrics func(Scenario) []Metric
}

// NewSweep takes a builder for the scenario at each value and an optional
// factory for that run's metrics.
func NewSweep(build func(value float64) (Scenario, error), metrics func(Scenario) []Metric) *Sweep {
	return &Sweep{build: build, metrics: metrics}
}

// Run returns results in the order of values.
func (w *Sweep) Run(ctx context.Context, values []float64, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(values))
	errs := make([]error, len(values))

	var wg sync.WaitGroup
	for i, v := range values {
		wg.Add(1)
		go func(idx int, value float64) {
			defer wg.Done()

			sc, err := w.build(value)
			if err != nil {
				errs[idx] = err
				return
			}

			s := New(sc)
			if w.metrics != nil {
				for _, m := range w.metrics(sc) {
					s.AddMetric(m)
				}
			}

			results[idx], errs[idx] = s.Run(ctx, cfg)
		}(i, v)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
