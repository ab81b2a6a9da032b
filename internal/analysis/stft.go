package analysis

import (
	"math"
	"math/cmplx"
	"runtime"
	"sync"

	"github.com/mjibson/go-dsp/fft"
)

// spectrogram is the magnitude STFT every spectral feature is derived from.
// Mag is indexed [frame][bin]; Freqs holds the center frequency of each bin.
type spectrogram struct {
	Mag       [][]float64
	Freqs     []float64
	NumFrames int
	FreqBins  int
}

// computeSTFT computes a Hann-windowed magnitude spectrogram on the fixed
// frame grid. Frames are centered on i*hop, with zero padding at the edges,
// so frame 0 corresponds to t=0.
func computeSTFT(samples []float64, cfg Config) *spectrogram {
	n := cfg.FFTSize
	hop := cfg.HopLength
	numFrames := 1 + len(samples)/hop
	freqBins := n/2 + 1

	window := hannWindow(n)

	freqs := make([]float64, freqBins)
	for k := range freqs {
		freqs[k] = float64(k) * float64(cfg.SampleRate) / float64(n)
	}

	mag := make([][]float64, numFrames)
	for i := range mag {
		mag[i] = make([]float64, freqBins)
	}

	// Frames are independent; fan out over a worker pool.
	numWorkers := runtime.NumCPU()
	if numWorkers > numFrames {
		numWorkers = numFrames
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	jobs := make(chan int, numFrames)
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			frame := make([]float64, n)
			for i := range jobs {
				center := i * hop
				start := center - n/2
				for j := 0; j < n; j++ {
					src := start + j
					if src >= 0 && src < len(samples) {
						frame[j] = samples[src] * window[j]
					} else {
						frame[j] = 0
					}
				}
				spectrum := fft.FFTReal(frame)
				row := mag[i]
				for k := 0; k < freqBins; k++ {
					row[k] = cmplx.Abs(spectrum[k])
				}
			}
		}()
	}
	for i := 0; i < numFrames; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return &spectrogram{Mag: mag, Freqs: freqs, NumFrames: numFrames, FreqBins: freqBins}
}

func hannWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}
