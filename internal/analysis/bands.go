package analysis

// Standard and extended band edges in Hz.
const (
	bassLow, bassHigh     = 20, 150
	midLow, midHigh       = 150, 2000
	trebleLow, trebleHigh = 2000, 8000

	subBassLow, subBassHigh   = 20, 60
	lowMidLow, lowMidHigh     = 250, 500
	highMidLow, highMidHigh   = 2000, 4000
	presenceLow, presenceHigh = 4000, 6000
	brillianceLow             = 6000 // upper edge is Nyquist
)

// bandEnergy returns the mean magnitude per frame across bins whose center
// frequency falls in [fmin, fmax). If no bin qualifies (degenerate sample
// rate, band above Nyquist) it returns an all-zero series of full length.
func bandEnergy(s *spectrogram, fmin, fmax float64) []float64 {
	lo, hi := -1, -1
	for k, f := range s.Freqs {
		if f >= fmin && f < fmax {
			if lo < 0 {
				lo = k
			}
			hi = k
		}
	}

	out := make([]float64, s.NumFrames)
	if lo < 0 {
		return out
	}

	count := float64(hi - lo + 1)
	for i, row := range s.Mag {
		var sum float64
		for k := lo; k <= hi; k++ {
			sum += row[k]
		}
		out[i] = sum / count
	}
	return out
}
