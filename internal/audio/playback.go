package audio

import (
	"os"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

var (
	otoCtx     *oto.Context
	otoOnce    sync.Once
	otoInitErr error
)

func initOto(sampleRate, channels int) (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return otoCtx, otoInitErr
}

// Play starts one-shot playback of the file through the default audio device.
// It is fire-and-forget: once started there is no control channel back, the
// device is held until the stream drains or the process exits. An error is
// returned only for setup failures (open, decode, device); the caller is
// expected to keep rendering visuals without sound in that case.
func Play(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	dec, err := newDecoder(f)
	if err != nil {
		f.Close()
		return err
	}

	ctx, err := initOto(dec.SampleRate(), dec.ChannelCount())
	if err != nil {
		f.Close()
		return err
	}

	p := ctx.NewPlayer(dec)
	p.Play()

	// Hold the player and file handle until the stream drains. Abandoned,
	// not joined, if the process exits first.
	go func() {
		defer f.Close()
		for p.IsPlaying() {
			time.Sleep(200 * time.Millisecond)
		}
		p.Close()
	}()

	return nil
}
