package analysis

import "math"

// mfccSummary computes per-frame MFCCs from the shared spectrogram and
// collapses the coefficient axis by mean, which is all the scenes consume.
// Returns the collapsed curve plus first and second discrete differences
// (velocity and acceleration proxies).
func mfccSummary(s *spectrogram, cfg Config) (mfcc, delta, delta2 []float64) {
	filters := melFilterbank(cfg, s.FreqBins)
	dct := dctMatrix(cfg.NumMFCC, cfg.MelBands)

	mfcc = make([]float64, s.NumFrames)
	melEnergies := make([]float64, cfg.MelBands)
	coeffs := make([]float64, cfg.NumMFCC)

	for i, row := range s.Mag {
		for m, filter := range filters {
			var e float64
			for _, tap := range filter {
				e += row[tap.bin] * tap.weight
			}
			melEnergies[m] = math.Log(e + 1e-10)
		}
		for c := 0; c < cfg.NumMFCC; c++ {
			var sum float64
			for m := 0; m < cfg.MelBands; m++ {
				sum += dct[c][m] * melEnergies[m]
			}
			coeffs[c] = sum
		}
		var mean float64
		for _, c := range coeffs {
			mean += c
		}
		mfcc[i] = mean / float64(cfg.NumMFCC)
	}

	delta = diff(mfcc)
	delta2 = diff(delta)

	// The downstream normalization contract wants nonnegative series: shift
	// the coefficient curve by its floor and fold the deltas to magnitudes.
	if len(mfcc) > 0 {
		min := mfcc[0]
		for _, v := range mfcc {
			if v < min {
				min = v
			}
		}
		for i := range mfcc {
			mfcc[i] -= min
		}
	}
	for i := range delta {
		delta[i] = math.Abs(delta[i])
	}
	for i := range delta2 {
		delta2[i] = math.Abs(delta2[i])
	}
	return mfcc, delta, delta2
}

// diff returns the discrete difference of x, same length, first element 0.
func diff(x []float64) []float64 {
	out := make([]float64, len(x))
	for i := 1; i < len(x); i++ {
		out[i] = x[i] - x[i-1]
	}
	return out
}

type melTap struct {
	bin    int
	weight float64
}

// melFilterbank builds triangular filters spaced evenly on the mel scale
// from 0 Hz to Nyquist, as sparse bin/weight lists.
func melFilterbank(cfg Config, freqBins int) [][]melTap {
	hzToMel := func(hz float64) float64 { return 2595.0 * math.Log10(1.0+hz/700.0) }
	melToHz := func(mel float64) float64 { return 700.0 * (math.Pow(10, mel/2595.0) - 1.0) }

	maxMel := hzToMel(cfg.Nyquist())
	points := make([]float64, cfg.MelBands+2)
	for i := range points {
		points[i] = melToHz(maxMel * float64(i) / float64(cfg.MelBands+1))
	}

	binFreq := func(k int) float64 {
		return float64(k) * float64(cfg.SampleRate) / float64(cfg.FFTSize)
	}

	filters := make([][]melTap, cfg.MelBands)
	for m := 0; m < cfg.MelBands; m++ {
		left, center, right := points[m], points[m+1], points[m+2]
		var taps []melTap
		for k := 0; k < freqBins; k++ {
			f := binFreq(k)
			var w float64
			switch {
			case f <= left || f >= right:
				continue
			case f <= center:
				w = (f - left) / (center - left)
			default:
				w = (right - f) / (right - center)
			}
			taps = append(taps, melTap{bin: k, weight: w})
		}
		filters[m] = taps
	}
	return filters
}

// dctMatrix builds a type-II DCT matrix with orthonormal scaling.
func dctMatrix(numCoeffs, numBands int) [][]float64 {
	m := make([][]float64, numCoeffs)
	scale := math.Sqrt(2.0 / float64(numBands))
	for c := range m {
		m[c] = make([]float64, numBands)
		for b := 0; b < numBands; b++ {
			m[c][b] = scale * math.Cos(math.Pi*float64(c)*(float64(b)+0.5)/float64(numBands))
		}
		if c == 0 {
			for b := range m[c] {
				m[c][b] /= math.Sqrt2
			}
		}
	}
	return m
}
