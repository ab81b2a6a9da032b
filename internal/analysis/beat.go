package analysis

import "math"

const (
	tempoPrior = 120.0 // BPM prior for the autocorrelation weighting
	tempoMin   = 30.0
	tempoMax   = 300.0
)

// estimateTempo derives a global BPM estimate and beat-aligned frame indices
// from the onset envelope. Autocorrelation over the 30-300 BPM lag range,
// weighted by a log-normal prior around 120 BPM; beats are then placed by
// stepping at the winning period and snapping to local onset maxima. A flat
// or too-short envelope falls back to the prior with no beats.
func estimateTempo(onset []float64, cfg Config) (float64, []int) {
	fps := float64(cfg.SampleRate) / float64(cfg.HopLength)
	lagMin := int(60.0 / tempoMax * fps)
	lagMax := int(60.0 / tempoMin * fps)
	if lagMin < 1 {
		lagMin = 1
	}
	if lagMax >= len(onset) {
		lagMax = len(onset) - 1
	}
	if lagMax <= lagMin {
		return tempoPrior, nil
	}

	var energy float64
	for _, v := range onset {
		energy += v * v
	}
	if energy == 0 {
		return tempoPrior, nil
	}

	bestLag, bestScore := 0, 0.0
	for lag := lagMin; lag <= lagMax; lag++ {
		var ac float64
		for i := lag; i < len(onset); i++ {
			ac += onset[i] * onset[i-lag]
		}
		bpm := 60.0 * fps / float64(lag)
		logDev := math.Log2(bpm / tempoPrior)
		weight := math.Exp(-0.5 * logDev * logDev)
		score := ac * weight
		if score > bestScore {
			bestScore = score
			bestLag = lag
		}
	}
	if bestLag == 0 {
		return tempoPrior, nil
	}

	bpm := 60.0 * fps / float64(bestLag)
	return bpm, pickBeats(onset, bestLag)
}

// pickBeats anchors on the strongest onset frame and walks outward in steps
// of the beat period, snapping each beat to the local onset maximum within
// an eighth of a period.
func pickBeats(onset []float64, period int) []int {
	if len(onset) == 0 || period <= 0 {
		return nil
	}

	anchor := 0
	for i, v := range onset {
		if v > onset[anchor] {
			anchor = i
		}
	}

	tol := period / 8
	snap := func(i int) int {
		best := i
		lo, hi := i-tol, i+tol
		if lo < 0 {
			lo = 0
		}
		if hi >= len(onset) {
			hi = len(onset) - 1
		}
		for j := lo; j <= hi; j++ {
			if onset[j] > onset[best] {
				best = j
			}
		}
		return best
	}

	var backward []int
	for i := anchor - period; i >= 0; i -= period {
		backward = append(backward, snap(i))
	}

	beats := make([]int, 0, len(onset)/period+1)
	for i := len(backward) - 1; i >= 0; i-- {
		beats = append(beats, backward[i])
	}
	for i := anchor; i < len(onset); i += period {
		beats = append(beats, snap(i))
	}

	// Snapping can reorder or duplicate adjacent beats; keep strictly
	// increasing indices.
	dedup := beats[:0]
	last := -1
	for _, b := range beats {
		if b > last {
			dedup = append(dedup, b)
			last = b
		}
	}
	return dedup
}

// tempogramCurve approximates the tempogram collapsed over its tempo axis:
// for each frame, the mean autocorrelation of a centered onset window over a
// coarse grid of beat-range lags.
func tempogramCurve(onset []float64, cfg Config) []float64 {
	fps := float64(cfg.SampleRate) / float64(cfg.HopLength)
	window := int(4.0 * fps) // 4 second context
	if window < 8 {
		window = 8
	}
	lagMin := int(60.0 / tempoMax * fps)
	if lagMin < 1 {
		lagMin = 1
	}
	lagMax := int(60.0 / tempoMin * fps)
	if lagMax > window/2 {
		lagMax = window / 2
	}

	const numLags = 16
	lags := make([]int, 0, numLags)
	for i := 0; i < numLags; i++ {
		lag := lagMin + (lagMax-lagMin)*i/(numLags-1)
		if lag >= 1 && (len(lags) == 0 || lag != lags[len(lags)-1]) {
			lags = append(lags, lag)
		}
	}

	out := make([]float64, len(onset))
	for i := range onset {
		lo := i - window/2
		hi := i + window/2
		if lo < 0 {
			lo = 0
		}
		if hi > len(onset) {
			hi = len(onset)
		}
		var sum float64
		for _, lag := range lags {
			var ac float64
			for j := lo + lag; j < hi; j++ {
				ac += onset[j] * onset[j-lag]
			}
			sum += ac
		}
		if len(lags) > 0 {
			out[i] = sum / float64(len(lags))
		}
	}
	return out
}
