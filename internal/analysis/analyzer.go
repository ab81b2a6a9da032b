package analysis

import (
	"sync"

	"github.com/mlaroche/beatstage/internal/audio"
)

// Analyze computes the full feature table for a waveform, synchronously,
// before playback starts. Feature groups are independent given the shared
// read-only spectrogram and run as parallel tasks writing disjoint fields;
// the result is equivalent to a sequential pass.
//
// logf receives console diagnostics ("[analysis] ..." lines); pass nil to
// silence them.
func Analyze(w audio.Waveform, cfg Config, logf func(format string, args ...any)) *Features {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	logf("[analysis] resampling %d Hz -> %d Hz", w.SampleRate, cfg.SampleRate)
	samples := resample(w.Samples, w.SampleRate, cfg.SampleRate)

	logf("[analysis] computing spectrogram (n_fft=%d hop=%d)", cfg.FFTSize, cfg.HopLength)
	s := computeSTFT(samples, cfg)

	f := &Features{
		SampleRate: cfg.SampleRate,
		Duration:   float64(len(samples)) / float64(cfg.SampleRate),
		Times:      make([]float64, s.NumFrames),
	}
	for i := range f.Times {
		f.Times[i] = float64(i) * float64(cfg.HopLength) / float64(cfg.SampleRate)
	}

	var wg sync.WaitGroup
	run := func(name string, task func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logf("[analysis] extracting %s...", name)
			task()
		}()
	}

	run("frequency bands", func() {
		f.Bass = bandEnergy(s, bassLow, bassHigh)
		f.Mid = bandEnergy(s, midLow, midHigh)
		f.Treble = bandEnergy(s, trebleLow, trebleHigh)
		f.SubBass = bandEnergy(s, subBassLow, subBassHigh)
		f.LowMid = bandEnergy(s, lowMidLow, lowMidHigh)
		f.HighMid = bandEnergy(s, highMidLow, highMidHigh)
		f.Presence = bandEnergy(s, presenceLow, presenceHigh)
		f.Brilliance = bandEnergy(s, brillianceLow, cfg.Nyquist())
	})

	run("spectral shape", func() {
		f.Centroid = spectralCentroid(s)
		f.Rolloff = spectralRolloff(s, 0.85)
		f.Flatness = spectralFlatness(s)
		f.Bandwidth = spectralBandwidth(s, f.Centroid)
		f.Contrast = spectralContrast(s)
		f.Flux = spectralFlux(s)
	})

	run("rhythm", func() {
		f.RMS = rmsEnergy(s)
		f.Loudness = append([]float64(nil), f.RMS...)
		onset := onsetStrength(s)
		f.Onset = onset
		f.Novelty = append([]float64(nil), onset...)
		f.Tempo, f.BeatFrames = estimateTempo(onset, cfg)
		f.BeatTimes = make([]float64, len(f.BeatFrames))
		for i, frame := range f.BeatFrames {
			f.BeatTimes[i] = f.Times[frame]
		}
		f.Tempogram = tempogramCurve(onset, cfg)
	})

	run("harmonic/percussive split", func() {
		f.Harmonic, f.Percussive = hpssEnergy(s, cfg)
	})

	run("chroma", func() {
		f.Chroma = chromaCurve(s)
		f.Tonnetz = tonnetzCurve(s)
	})

	run("MFCCs and dynamics", func() {
		f.MFCC, f.MFCCDelta, f.MFCCDelta2 = mfccSummary(s, cfg)
		f.ZCR = zeroCrossingRate(samples, cfg, s.NumFrames)
	})

	wg.Wait()

	for _, series := range f.Named() {
		Normalize(series)
	}

	logf("[analysis] done (%d frames, %.1fs, ~%.0f BPM)", s.NumFrames, f.Duration, f.Tempo)
	return f
}
