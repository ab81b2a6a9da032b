package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Waveform is a fully decoded mono signal, the input to feature extraction.
// It is not retained after analysis.
type Waveform struct {
	Samples    []float64 // amplitude in [-1, 1]
	SampleRate int
}

// Duration returns the signal length in seconds.
func (w Waveform) Duration() float64 {
	if w.SampleRate <= 0 {
		return 0
	}
	return float64(len(w.Samples)) / float64(w.SampleRate)
}

// LoadMono decodes the whole file and downmixes it to mono float64 samples.
func LoadMono(path string) (Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return Waveform{}, err
	}
	defer f.Close()

	dec, err := newDecoder(f)
	if err != nil {
		return Waveform{}, err
	}

	raw, err := io.ReadAll(dec)
	if err != nil && err != io.EOF {
		return Waveform{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	channels := dec.ChannelCount()
	if channels < 1 {
		return Waveform{}, fmt.Errorf("decoder reported %d channels", channels)
	}

	frameBytes := channels * 2
	frames := len(raw) / frameBytes
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		off := i * frameBytes
		for ch := 0; ch < channels; ch++ {
			s := int16(binary.LittleEndian.Uint16(raw[off+ch*2:]))
			sum += float64(s) / 32768.0
		}
		samples[i] = sum / float64(channels)
	}

	return Waveform{Samples: samples, SampleRate: dec.SampleRate()}, nil
}
