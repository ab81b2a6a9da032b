package analysis

import "gonum.org/v1/gonum/floats"

// normEpsilon guards the divide: series whose peak is at or below this are
// passed through unchanged so silence is not amplified into noise.
const normEpsilon = 1e-10

// Normalize rescales a series in place so its maximum is 1. Each series is
// scaled against its own peak only; series are never cross-normalized. An
// all-zero (or near-zero) series is returned unchanged.
func Normalize(series []float64) []float64 {
	if len(series) == 0 {
		return series
	}
	m := floats.Max(series)
	if m <= normEpsilon {
		return series
	}
	floats.Scale(1/m, series)
	return series
}
