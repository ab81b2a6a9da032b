package analysis

import "math"

// rmsEnergy computes root-mean-square magnitude per frame.
func rmsEnergy(s *spectrogram) []float64 {
	out := make([]float64, s.NumFrames)
	for i, row := range s.Mag {
		var sum float64
		for _, m := range row {
			sum += m * m
		}
		out[i] = math.Sqrt(sum / float64(len(row)))
	}
	return out
}

// spectralCentroid computes the magnitude-weighted mean frequency per frame.
func spectralCentroid(s *spectrogram) []float64 {
	out := make([]float64, s.NumFrames)
	for i, row := range s.Mag {
		var num, den float64
		for k, m := range row {
			num += s.Freqs[k] * m
			den += m
		}
		if den > 0 {
			out[i] = num / den
		}
	}
	return out
}

// spectralRolloff computes the frequency below which rollPercent of the
// spectral energy sits, per frame.
func spectralRolloff(s *spectrogram, rollPercent float64) []float64 {
	out := make([]float64, s.NumFrames)
	for i, row := range s.Mag {
		var total float64
		for _, m := range row {
			total += m * m
		}
		if total == 0 {
			continue
		}
		target := rollPercent * total
		var cum float64
		for k, m := range row {
			cum += m * m
			if cum >= target {
				out[i] = s.Freqs[k]
				break
			}
		}
	}
	return out
}

// spectralFlatness computes geometric mean / arithmetic mean per frame, the
// tone-vs-noise descriptor. Log domain for numerical stability.
func spectralFlatness(s *spectrogram) []float64 {
	const minMag = 1e-10
	out := make([]float64, s.NumFrames)
	for i, row := range s.Mag {
		var logSum, mean float64
		for _, m := range row {
			if m < minMag {
				m = minMag
			}
			logSum += math.Log(m)
			mean += m
		}
		n := float64(len(row))
		mean /= n
		if mean <= minMag {
			continue
		}
		out[i] = math.Exp(logSum/n) / mean
	}
	return out
}

// spectralBandwidth computes the magnitude-weighted standard deviation of
// frequency around the centroid, per frame.
func spectralBandwidth(s *spectrogram, centroid []float64) []float64 {
	out := make([]float64, s.NumFrames)
	for i, row := range s.Mag {
		var num, den float64
		for k, m := range row {
			d := s.Freqs[k] - centroid[i]
			num += m * d * d
			den += m
		}
		if den > 0 {
			out[i] = math.Sqrt(num / den)
		}
	}
	return out
}

// spectralContrast computes peak-to-valley contrast per octave sub-band and
// collapses the bands by mean, per frame.
func spectralContrast(s *spectrogram) []float64 {
	// Octave-ish band edges starting at 200 Hz.
	edges := []float64{0, 200, 400, 800, 1600, 3200, 6400, math.Inf(1)}

	// Precompute bin ranges per band.
	type binRange struct{ lo, hi int }
	ranges := make([]binRange, 0, len(edges)-1)
	for b := 0; b+1 < len(edges); b++ {
		lo, hi := -1, -1
		for k, f := range s.Freqs {
			if f >= edges[b] && f < edges[b+1] {
				if lo < 0 {
					lo = k
				}
				hi = k
			}
		}
		if lo >= 0 {
			ranges = append(ranges, binRange{lo, hi})
		}
	}

	out := make([]float64, s.NumFrames)
	if len(ranges) == 0 {
		return out
	}

	for i, row := range s.Mag {
		var sum float64
		for _, r := range ranges {
			// Band extremes stand in for the usual top/bottom quantile
			// means; close enough for a visual driver.
			var peak, valley float64
			valley = math.Inf(1)
			for k := r.lo; k <= r.hi; k++ {
				if row[k] > peak {
					peak = row[k]
				}
				if row[k] < valley {
					valley = row[k]
				}
			}
			const eps = 1e-10
			sum += math.Log(peak+eps) - math.Log(valley+eps)
		}
		out[i] = sum / float64(len(ranges))
	}
	return out
}

// spectralFlux computes the summed absolute frame-to-frame magnitude change
// per frequency bin. Frame 0 has no predecessor and stays 0.
func spectralFlux(s *spectrogram) []float64 {
	out := make([]float64, s.NumFrames)
	for i := 1; i < s.NumFrames; i++ {
		var sum float64
		prev, cur := s.Mag[i-1], s.Mag[i]
		for k := range cur {
			sum += math.Abs(cur[k] - prev[k])
		}
		out[i] = sum
	}
	return out
}

// onsetStrength computes a novelty curve: half-wave rectified spectral
// difference summed over bins, in the log-magnitude domain so quiet onsets
// still register.
func onsetStrength(s *spectrogram) []float64 {
	out := make([]float64, s.NumFrames)
	for i := 1; i < s.NumFrames; i++ {
		var sum float64
		prev, cur := s.Mag[i-1], s.Mag[i]
		for k := range cur {
			d := math.Log1p(cur[k]) - math.Log1p(prev[k])
			if d > 0 {
				sum += d
			}
		}
		out[i] = sum
	}
	return out
}

// zeroCrossingRate computes the fraction of sign changes per analysis frame
// from the raw waveform. The frame grid matches the spectrogram.
func zeroCrossingRate(samples []float64, cfg Config, numFrames int) []float64 {
	out := make([]float64, numFrames)
	n := cfg.FFTSize
	for i := 0; i < numFrames; i++ {
		start := i*cfg.HopLength - n/2
		end := start + n
		if start < 0 {
			start = 0
		}
		if end > len(samples) {
			end = len(samples)
		}
		if end-start < 2 {
			continue
		}
		crossings := 0
		for j := start + 1; j < end; j++ {
			if (samples[j-1] >= 0) != (samples[j] >= 0) {
				crossings++
			}
		}
		out[i] = float64(crossings) / float64(end-start-1)
	}
	return out
}
