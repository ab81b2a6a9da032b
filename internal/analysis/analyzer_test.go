package analysis

import (
	"math"
	"testing"

	"github.com/mlaroche/beatstage/internal/audio"
)

// testConfig keeps test signals short without changing the algorithms.
func testConfig() Config {
	return Config{SampleRate: 8000, FFTSize: 256, HopLength: 128, MelBands: 20, NumMFCC: 13}
}

func sineWave(freq float64, seconds float64, sampleRate int) audio.Waveform {
	n := int(seconds * float64(sampleRate))
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
	}
	return audio.Waveform{Samples: samples, SampleRate: sampleRate}
}

func TestAnalyzeTableInvariants(t *testing.T) {
	cfg := testConfig()
	f := Analyze(sineWave(500, 2.0, cfg.SampleRate), cfg, nil)

	if len(f.Times) == 0 {
		t.Fatal("empty feature table")
	}
	if f.Times[0] != 0 {
		t.Fatalf("times[0] = %v, want 0", f.Times[0])
	}
	for i := 1; i < len(f.Times); i++ {
		if f.Times[i] <= f.Times[i-1] {
			t.Fatalf("times not strictly increasing at %d: %v <= %v", i, f.Times[i], f.Times[i-1])
		}
	}

	for name, series := range f.Named() {
		if len(series) != len(f.Times) {
			t.Errorf("%s: length %d, want %d", name, len(series), len(f.Times))
			continue
		}
		max := 0.0
		for i, v := range series {
			if v < 0 || v > 1 {
				t.Errorf("%s[%d] = %v, out of [0, 1]", name, i, v)
				break
			}
			if v > max {
				max = v
			}
		}
		// Either an untouched all-zero series or scaled so the max is 1.
		if max != 0 && math.Abs(max-1) > 1e-9 {
			t.Errorf("%s: max = %v, want 0 or 1", name, max)
		}
	}

	if f.Duration <= 0 {
		t.Fatalf("duration = %v", f.Duration)
	}
	if f.Tempo <= 0 {
		t.Fatalf("tempo = %v", f.Tempo)
	}
}

func TestAnalyzeSilence(t *testing.T) {
	cfg := testConfig()
	w := audio.Waveform{Samples: make([]float64, cfg.SampleRate), SampleRate: cfg.SampleRate}
	f := Analyze(w, cfg, nil)

	for name, series := range f.Named() {
		for i, v := range series {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("%s[%d] = %v on silent input", name, i, v)
			}
		}
	}
	if f.Tempo != tempoPrior {
		t.Fatalf("silent tempo = %v, want the %v prior", f.Tempo, tempoPrior)
	}
	if len(f.BeatFrames) != 0 {
		t.Fatalf("silence produced %d beats", len(f.BeatFrames))
	}
}

func TestIndexAtClampsAndIsMonotonic(t *testing.T) {
	cfg := testConfig()
	f := Analyze(sineWave(440, 1.0, cfg.SampleRate), cfg, nil)
	last := len(f.Times) - 1

	if got := f.IndexAt(-5); got != 0 {
		t.Fatalf("IndexAt(-5) = %d, want 0", got)
	}
	if got := f.IndexAt(f.Duration + 100); got != last {
		t.Fatalf("IndexAt(past end) = %d, want %d", got, last)
	}

	prev := -1
	for _, tt := range []float64{-1, 0, 0.1, 0.25, 0.5, 0.9, 2, 100} {
		idx := f.IndexAt(tt)
		if idx < prev {
			t.Fatalf("IndexAt not monotonic: t=%v gave %d after %d", tt, idx, prev)
		}
		if idx < 0 || idx > last {
			t.Fatalf("IndexAt(%v) = %d, out of range", tt, idx)
		}
		prev = idx
	}
}

func TestSTFTPeakBin(t *testing.T) {
	cfg := testConfig()
	// 500 Hz sits exactly on bin 16 of a 256-point FFT at 8 kHz.
	w := sineWave(500, 1.0, cfg.SampleRate)
	s := computeSTFT(w.Samples, cfg)

	mid := s.Mag[s.NumFrames/2]
	peak := 0
	for k, m := range mid {
		if m > mid[peak] {
			peak = k
		}
	}
	if peak != 16 {
		t.Fatalf("spectral peak at bin %d (%.0f Hz), want bin 16 (500 Hz)", peak, s.Freqs[peak])
	}
}

func TestEstimateTempoFindsPulse(t *testing.T) {
	cfg := testConfig()
	// Impulse train every 31 frames: 60 * (8000/128) / 31 = 121 BPM.
	onset := make([]float64, 1000)
	for i := 0; i < len(onset); i += 31 {
		onset[i] = 1
	}
	bpm, beats := estimateTempo(onset, cfg)
	if bpm < 100 || bpm > 145 {
		t.Fatalf("bpm = %v, want around 121", bpm)
	}
	if len(beats) == 0 {
		t.Fatal("no beats picked")
	}
	for i := 1; i < len(beats); i++ {
		if beats[i] <= beats[i-1] {
			t.Fatalf("beat frames not strictly increasing: %v", beats)
		}
	}
}

func TestResample(t *testing.T) {
	in := []float64{0, 1, 0, -1, 0, 1, 0, -1}
	out := resample(in, 8000, 4000)
	if len(out) != 4 {
		t.Fatalf("len = %d, want 4", len(out))
	}
	if out[0] != 0 || out[1] != 0 {
		t.Fatalf("downsample picked wrong samples: %v", out)
	}

	same := resample(in, 8000, 8000)
	if &same[0] != &in[0] {
		t.Fatal("equal-rate resample should be a passthrough")
	}
}
