package analysis

import "math"

// chromaCurve folds spectral energy onto the 12 pitch classes and collapses
// the class axis by mean per frame, the single curve the scenes consume.
func chromaCurve(s *spectrogram) []float64 {
	classes := chromaClasses(s)
	out := make([]float64, s.NumFrames)
	for i := range classes {
		var mean float64
		for _, e := range classes[i] {
			mean += e
		}
		out[i] = mean / 12.0
	}
	return out
}

// tonnetzCurve projects per-frame chroma onto the six tonnetz axes (fifths,
// minor thirds, major thirds, as sin/cos pairs) and collapses by mean of
// absolute coordinates.
func tonnetzCurve(s *spectrogram) []float64 {
	classes := chromaClasses(s)

	// r1=fifths, r2=minor thirds, r3=major thirds
	radii := []float64{1.0, 1.0, 0.5}
	steps := []float64{7, 3, 4}

	out := make([]float64, s.NumFrames)
	for i, chroma := range classes {
		var total float64
		for _, e := range chroma {
			total += e
		}
		if total <= 0 {
			continue
		}
		var sum float64
		for a := 0; a < 3; a++ {
			var x, y float64
			for pc, e := range chroma {
				angle := 2 * math.Pi * steps[a] * float64(pc) / 12.0
				x += radii[a] * math.Cos(angle) * e / total
				y += radii[a] * math.Sin(angle) * e / total
			}
			sum += math.Abs(x) + math.Abs(y)
		}
		out[i] = sum / 6.0
	}
	return out
}

// chromaClasses maps each spectrogram bin to its nearest pitch class and
// accumulates energy per class per frame. Bins below 27.5 Hz (A0) are
// ignored.
func chromaClasses(s *spectrogram) [][12]float64 {
	const a440 = 440.0
	pitchClass := make([]int, len(s.Freqs))
	for k, f := range s.Freqs {
		if f < 27.5 {
			pitchClass[k] = -1
			continue
		}
		midi := 69.0 + 12.0*math.Log2(f/a440)
		pc := int(math.Round(midi)) % 12
		if pc < 0 {
			pc += 12
		}
		pitchClass[k] = pc
	}

	out := make([][12]float64, s.NumFrames)
	for i, row := range s.Mag {
		for k, m := range row {
			if pitchClass[k] >= 0 {
				out[i][pitchClass[k]] += m
			}
		}
	}
	return out
}
