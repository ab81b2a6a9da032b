package analysis

import "sort"

// Features is the immutable feature table for a whole song. Every series has
// exactly len(Times) entries, index-aligned to Times, and is normalized to
// [0, 1]. Tempo (BPM) and Duration (seconds) are unscaled scalars. The table
// is computed once before playback and shared read-only by all scenes.
type Features struct {
	SampleRate int
	Duration   float64
	Times      []float64

	// Core
	RMS      []float64
	Loudness []float64
	Bass     []float64
	Mid      []float64
	Treble   []float64
	Onset    []float64
	Novelty  []float64 // alias curve of Onset, kept as its own series

	// Extended frequency bands
	SubBass    []float64
	LowMid     []float64
	HighMid    []float64
	Presence   []float64
	Brilliance []float64

	// Spectral shape
	Centroid  []float64
	Rolloff   []float64
	Flatness  []float64
	Bandwidth []float64
	Contrast  []float64
	Flux      []float64

	// Rhythm
	Tempo      float64
	BeatFrames []int
	BeatTimes  []float64
	Tempogram  []float64

	// Harmonic
	Harmonic   []float64
	Percussive []float64
	Chroma     []float64
	Tonnetz    []float64

	// Dynamics
	ZCR        []float64
	MFCC       []float64
	MFCCDelta  []float64
	MFCCDelta2 []float64
}

// IndexAt resolves a song time to a feature frame index: the insertion point
// of t in Times, clamped to [0, T-1]. Scenes index series with this, never
// with raw t, so clock drift at the edges cannot read out of bounds.
func (f *Features) IndexAt(t float64) int {
	idx := sort.SearchFloat64s(f.Times, t)
	if idx >= len(f.Times) {
		idx = len(f.Times) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// IsBeat reports whether the given frame index lands on an estimated beat.
func (f *Features) IsBeat(idx int) bool {
	i := sort.SearchInts(f.BeatFrames, idx)
	return i < len(f.BeatFrames) && f.BeatFrames[i] == idx
}

// Named returns every per-frame series keyed by name. The map is rebuilt on
// each call; mutating the returned slices would violate the read-only
// contract.
func (f *Features) Named() map[string][]float64 {
	return map[string][]float64{
		"rms":        f.RMS,
		"loudness":   f.Loudness,
		"bass":       f.Bass,
		"mid":        f.Mid,
		"treble":     f.Treble,
		"onset":      f.Onset,
		"novelty":    f.Novelty,
		"sub_bass":   f.SubBass,
		"low_mid":    f.LowMid,
		"high_mid":   f.HighMid,
		"presence":   f.Presence,
		"brilliance": f.Brilliance,
		"centroid":   f.Centroid,
		"rolloff":    f.Rolloff,
		"flatness":   f.Flatness,
		"bandwidth":  f.Bandwidth,
		"contrast":   f.Contrast,
		"flux":       f.Flux,
		"tempogram":  f.Tempogram,
		"harmonic":   f.Harmonic,
		"percussive": f.Percussive,
		"chroma":     f.Chroma,
		"tonnetz":    f.Tonnetz,
		"zcr":        f.ZCR,
		"mfcc":       f.MFCC,
		"mfcc_d1":    f.MFCCDelta,
		"mfcc_d2":    f.MFCCDelta2,
	}
}
