package analysis

import (
	"math"
	"sort"
)

// hpssEnergy splits the spectrogram into harmonic (tonal) and percussive
// (transient) energy curves. Two strategies, selected by the profile:
// median-filter source separation (harmonic content is smooth along time,
// percussive content smooth along frequency), or a cheap frequency-threshold
// approximation for the fast profiles. The contract is two curves of
// opposite character, not bit-exact separation.
func hpssEnergy(s *spectrogram, cfg Config) (harmonic, percussive []float64) {
	if cfg.MedianHPSS {
		return hpssMedian(s)
	}
	return hpssThreshold(s)
}

const hpssKernel = 17 // median filter length, frames/bins

func hpssMedian(s *spectrogram) (harmonic, percussive []float64) {
	half := hpssKernel / 2

	harmonic = make([]float64, s.NumFrames)
	percussive = make([]float64, s.NumFrames)

	timeBuf := make([]float64, 0, hpssKernel)
	freqBuf := make([]float64, 0, hpssKernel)

	for i, row := range s.Mag {
		var hSum, pSum float64
		for k, m := range row {
			// Median across time at this bin: harmonic evidence.
			timeBuf = timeBuf[:0]
			for j := i - half; j <= i+half; j++ {
				if j >= 0 && j < s.NumFrames {
					timeBuf = append(timeBuf, s.Mag[j][k])
				}
			}
			h := median(timeBuf)

			// Median across frequency at this frame: percussive evidence.
			freqBuf = freqBuf[:0]
			for j := k - half; j <= k+half; j++ {
				if j >= 0 && j < len(row) {
					freqBuf = append(freqBuf, row[j])
				}
			}
			p := median(freqBuf)

			// Soft mask the original magnitude between the two.
			if h+p > 0 {
				hSum += m * m * (h / (h + p))
				pSum += m * m * (p / (h + p))
			}
		}
		n := float64(len(row))
		harmonic[i] = math.Sqrt(hSum / n)
		percussive[i] = math.Sqrt(pSum / n)
	}
	return harmonic, percussive
}

// hpssThreshold approximates the split by frequency: sustained tonal energy
// lives below the cutoff, transients dominate above it.
func hpssThreshold(s *spectrogram) (harmonic, percussive []float64) {
	const cutoffHz = 2000.0

	harmonic = make([]float64, s.NumFrames)
	percussive = make([]float64, s.NumFrames)
	for i, row := range s.Mag {
		var hSum, pSum float64
		var hN, pN float64
		for k, m := range row {
			if s.Freqs[k] < cutoffHz {
				hSum += m * m
				hN++
			} else {
				pSum += m * m
				pN++
			}
		}
		if hN > 0 {
			harmonic[i] = math.Sqrt(hSum / hN)
		}
		if pN > 0 {
			percussive[i] = math.Sqrt(pSum / pN)
		}
	}
	return harmonic, percussive
}

func median(buf []float64) float64 {
	if len(buf) == 0 {
		return 0
	}
	sort.Float64s(buf)
	mid := len(buf) / 2
	if len(buf)%2 == 1 {
		return buf[mid]
	}
	return (buf[mid-1] + buf[mid]) / 2
}
