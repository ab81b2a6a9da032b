package scenes

import (
	"math/rand"

	"github.com/charmbracelet/harmonica"
	"github.com/mlaroche/beatstage/internal/analysis"
)

const maxParticles = 256

type particle struct {
	x, y  float64
	vy    float64
	restY float64
	glyph rune
	age   float64
}

// Graffiti renders spray-paint bursts: onsets above threshold spawn a cloud
// of particles that spring down toward a drip line and fade out.
type Graffiti struct {
	width, height int
	feats         *analysis.Features
	spring        harmonica.Spring
	rng           *rand.Rand

	particles []particle
	onset     float64
	mid       float64
}

// NewGraffiti creates the graffiti scene. fps is the render rate the spring
// integrator is tuned for.
func NewGraffiti(width, height, fps int, feats *analysis.Features) *Graffiti {
	return &Graffiti{
		width:  width,
		height: height,
		feats:  feats,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 0.3),
		rng:    rand.New(rand.NewSource(1)),
	}
}

func (gr *Graffiti) Name() string { return "graffiti" }

func (gr *Graffiti) Enter() {
	gr.particles = gr.particles[:0]
	gr.onset, gr.mid = 0, 0
}

func (gr *Graffiti) Exit() {
	gr.particles = nil
}

var sprayGlyphs = []rune("*+•○◦x")

func (gr *Graffiti) Update(dt, t float64, frame int) {
	gr.onset = gr.feats.Onset[frame]
	gr.mid = gr.feats.Mid[frame]

	if gr.onset > 0.55 {
		burst := 4 + int(gr.onset*12)
		cx := float64(gr.rng.Intn(gr.width))
		cy := float64(gr.rng.Intn(gr.height / 2))
		for i := 0; i < burst && len(gr.particles) < maxParticles; i++ {
			gr.particles = append(gr.particles, particle{
				x:     cx + gr.rng.Float64()*8 - 4,
				y:     cy + gr.rng.Float64()*4 - 2,
				restY: cy + 4 + gr.rng.Float64()*float64(gr.height)/3,
				glyph: sprayGlyphs[gr.rng.Intn(len(sprayGlyphs))],
			})
		}
	}

	alive := gr.particles[:0]
	for _, p := range gr.particles {
		p.y, p.vy = gr.spring.Update(p.y, p.vy, p.restY)
		p.age += dt
		if p.age < 2.5 {
			alive = append(alive, p)
		}
	}
	gr.particles = alive
}

func (gr *Graffiti) View() string {
	g := newGrid(gr.width, gr.height)

	// baseline wall texture driven by mids
	wallY := gr.height - 1
	for x := 0; x < gr.width; x += 3 {
		g.set(x, wallY, barRune(gr.mid))
	}

	for _, p := range gr.particles {
		g.set(int(p.x), int(p.y), p.glyph)
	}

	return sprayStyle.Render(g.String())
}
