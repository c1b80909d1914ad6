package analysis

import (
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of the first half of the real FFT of
// data, with the mean removed so the DC bin does not dominate.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC
// bin for samples spaced dt seconds apart. Resolution is 1/(len·dt).
func DominantFrequency(data []float64, dt float64) (float64, error) {
	if dt <= 0 {
		return 0, fmt.Errorf("dt must be positive, got %f", dt)
	}
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0, fmt.Errorf("need at least 4 samples, got %d", len(data))
	}

	maxIdx := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}
	return float64(maxIdx) / (float64(len(data)) * dt), nil
}
