package analysis

import "fmt"

// Profile selects a speed/quality tradeoff for feature extraction. The
// extremes differ in analysis sample rate, hop length and how the
// harmonic/percussive split is computed.
type Profile string

const (
	ProfileUltraFast Profile = "ultrafast"
	ProfileFast      Profile = "fast"
	ProfileBalanced  Profile = "balanced"
	ProfileQuality   Profile = "quality"
)

// Config holds the analysis frame grid parameters.
type Config struct {
	SampleRate int  // waveform is resampled to this rate before analysis
	FFTSize    int  // STFT window size N
	HopLength  int  // samples advanced between analysis frames
	MelBands   int  // mel filterbank size for MFCC
	NumMFCC    int  // cepstral coefficients kept
	MedianHPSS bool // true: median-filter separation; false: frequency-threshold approximation
}

// DefaultConfig is the balanced profile.
func DefaultConfig() Config {
	cfg, _ := ProfileConfig(ProfileBalanced)
	return cfg
}

// ProfileConfig returns the Config for a named profile.
func ProfileConfig(p Profile) (Config, error) {
	switch p {
	case ProfileUltraFast:
		return Config{SampleRate: 8000, FFTSize: 4096, HopLength: 4096, MelBands: 20, NumMFCC: 13}, nil
	case ProfileFast:
		return Config{SampleRate: 11025, FFTSize: 2048, HopLength: 1024, MelBands: 26, NumMFCC: 13}, nil
	case ProfileBalanced:
		return Config{SampleRate: 22050, FFTSize: 2048, HopLength: 512, MelBands: 40, NumMFCC: 13, MedianHPSS: true}, nil
	case ProfileQuality:
		return Config{SampleRate: 44100, FFTSize: 2048, HopLength: 512, MelBands: 40, NumMFCC: 13, MedianHPSS: true}, nil
	default:
		return Config{}, fmt.Errorf("unknown profile %q (want ultrafast, fast, balanced or quality)", p)
	}
}

// Nyquist returns half the analysis sample rate.
func (c Config) Nyquist() float64 {
	return float64(c.SampleRate) / 2
}
