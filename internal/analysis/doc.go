// Package analysis measures sampled runs.
//
//   - [PowerSpectrum] and [DominantFrequency]: FFT of one state component
//   - [PeriodFromCrossings]: period from interpolated zero crossings
//   - [NewPhasePortrait]: two state components against each other
//
// # Checking a period
//
// The measured period of a pendulum run should agree with the derived one:
//
//	measured, err := analysis.PeriodFromCrossings(times, angles)
//	if err == nil && math.Abs(measured-summary["period"]) > dt {
//	    // sampling too coarse or the run too short
//	}
package analysis
