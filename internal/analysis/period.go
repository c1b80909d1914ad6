package analysis

import "fmt"

// UpwardCrossings returns the interpolated times at which values rises
// through threshold.
func UpwardCrossings(times, values []float64, threshold float64) []float64 {
	n := len(times)
	if len(values) < n {
		n = len(values)
	}

	crossings := make([]float64, 0)
	for i := 1; i < n; i++ {
		prev, curr := values[i-1], values[i]
		if prev < threshold && curr >= threshold {
			frac := (threshold - prev) / (curr - prev)
			crossings = append(crossings, times[i-1]+frac*(times[i]-times[i-1]))
		}
	}
	return crossings
}

// PeriodFromCrossings measures the mean interval between successive upward
// zero crossings of a sampled oscillation.
func PeriodFromCrossings(times, values []float64) (float64, error) {
	crossings := UpwardCrossings(times, values, 0)
	if len(crossings) < 2 {
		return 0, fmt.Errorf("need at least two full oscillations, found %d crossings", len(crossings))
	}
	return (crossings[len(crossings)-1] - crossings[0]) / float64(len(crossings)-1), nil
}
