package scenes

import (
	"math"

	"github.com/mlaroche/beatstage/internal/analysis"
)

// Vinyl renders a spinning record. Rotation rate follows loudness, the
// groove shimmer follows treble, and the label flashes on beats.
type Vinyl struct {
	width, height int
	feats         *analysis.Features

	angle  float64
	rms    float64
	treble float64
	beat   bool
}

// NewVinyl creates the vinyl scene for the given frame size.
func NewVinyl(width, height int, feats *analysis.Features) *Vinyl {
	return &Vinyl{width: width, height: height, feats: feats}
}

func (v *Vinyl) Name() string { return "vinyl" }

func (v *Vinyl) Enter() {
	v.angle = 0
	v.rms, v.treble = 0, 0
	v.beat = false
}

func (v *Vinyl) Exit() {}

func (v *Vinyl) Update(dt, t float64, frame int) {
	v.rms = v.feats.RMS[frame]
	v.treble = v.feats.Treble[frame]
	v.beat = v.feats.IsBeat(frame)
	// 33 RPM at full loudness, much slower when quiet
	v.angle += dt * 2 * math.Pi * (0.1 + 0.45*v.rms)
}

func (v *Vinyl) View() string {
	g := newGrid(v.width, v.height)

	cx := float64(v.width) / 2
	cy := float64(v.height) / 2
	maxR := math.Min(cx, cy) - 1
	if maxR < 2 {
		maxR = 2
	}

	// concentric grooves, cell aspect corrected
	for r := maxR; r > 1; r -= 2 {
		steps := int(r * 8)
		for i := 0; i < steps; i++ {
			a := float64(i) / float64(steps) * 2 * math.Pi
			x := cx + math.Cos(a)*r*2
			y := cy + math.Sin(a)*r
			ch := '·'
			// shimmer: treble lights up groove segments aligned with the
			// rotation angle
			if math.Abs(math.Mod(a-v.angle, 2*math.Pi)) < v.treble*math.Pi/2 {
				ch = '∙'
			}
			g.set(int(x), int(y), ch)
		}
	}

	// spindle arm at the current angle
	for r := 0.0; r < maxR; r += 0.5 {
		x := cx + math.Cos(v.angle)*r*2
		y := cy + math.Sin(v.angle)*r
		g.set(int(x), int(y), '█')
	}

	label := "◉"
	if v.beat {
		label = "◎"
	}
	g.text(int(cx), int(cy), label)

	return vinylStyle.Render(g.String())
}
