package scenes

import (
	"math"

	"github.com/mlaroche/beatstage/internal/analysis"
)

// Stripes renders vertical band-energy stripes with stick figures jumping on
// onsets, the opening look of the show.
type Stripes struct {
	width, height int
	feats         *analysis.Features

	phase  float64
	bass   float64
	mid    float64
	treble float64
	rms    float64
	onset  float64
}

// NewStripes creates the stripes scene for the given frame size.
func NewStripes(width, height int, feats *analysis.Features) *Stripes {
	return &Stripes{width: width, height: height, feats: feats}
}

func (s *Stripes) Name() string { return "stripes" }

func (s *Stripes) Enter() {
	s.phase = 0
	s.bass, s.mid, s.treble, s.rms, s.onset = 0, 0, 0, 0, 0
}

func (s *Stripes) Exit() {}

func (s *Stripes) Update(dt, t float64, frame int) {
	s.phase += dt * (2 + 10*s.rms)
	s.bass = s.feats.Bass[frame]
	s.mid = s.feats.Mid[frame]
	s.treble = s.feats.Treble[frame]
	s.rms = s.feats.RMS[frame]
	s.onset = s.feats.Onset[frame]
}

func (s *Stripes) View() string {
	g := newGrid(s.width, s.height)

	const stripeCount = 5
	stripeW := s.width / (stripeCount + 2)
	if stripeW < 2 {
		stripeW = 2
	}
	marginX := (s.width - stripeCount*stripeW) / 2

	values := []float64{s.bass, s.mid, s.treble, s.rms, s.rms}
	for i := 0; i < stripeCount; i++ {
		v := clamp01(values[i])
		x0 := marginX + i*stripeW
		barH := int(float64(s.height) * (0.3 + 0.6*v))
		for y := s.height - barH; y < s.height; y++ {
			for x := x0; x < x0+stripeW-1; x++ {
				g.set(x, y, '█')
			}
		}
		// wobble line through the stripe
		centerY := s.height - barH/2
		for x := x0; x < x0+stripeW-1; x++ {
			wob := math.Sin(float64(x)*0.7+s.phase) * 1.5 * v
			g.set(x, centerY+int(wob), '─')
		}
	}

	// stick figures above the stripes, jump amplitude driven by onset
	baseY := s.height / 4
	jump := 1 + s.onset*float64(s.height)/4
	for i := 0; i < 4; i++ {
		fx := s.width/5 + i*s.width/5
		fy := baseY - int(math.Sin(s.phase*2+float64(i))*jump)
		drawStick(g, fx, fy)
	}

	return stripesStyle.Render(g.String())
}

func drawStick(g *grid, x, y int) {
	g.set(x, y, 'o')
	g.set(x, y+1, '|')
	g.set(x-1, y+1, '/')
	g.set(x+1, y+1, '\\')
	g.set(x-1, y+2, '/')
	g.set(x+1, y+2, '\\')
}
