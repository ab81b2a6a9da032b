package scenes

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/mlaroche/beatstage/internal/analysis"
)

// BrainHUD renders the monitor-style scene: a pulsing silhouette on the
// left, a panel with BPM readout, a waveform strip, song progress and a
// timer on the right.
type BrainHUD struct {
	width, height int
	feats         *analysis.Features
	bar           progress.Model

	t      float64
	rms    float64
	bass   float64
	treble float64
	onset  float64
}

// NewBrainHUD creates the HUD scene for the given frame size.
func NewBrainHUD(width, height int, feats *analysis.Features) *BrainHUD {
	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false
	return &BrainHUD{width: width, height: height, feats: feats, bar: bar}
}

func (b *BrainHUD) Name() string { return "brain hud" }

func (b *BrainHUD) Enter() {
	b.t, b.rms, b.bass, b.treble, b.onset = 0, 0, 0, 0, 0
	b.bar.Width = b.width/2 - 6
	if b.bar.Width < 4 {
		b.bar.Width = 4
	}
}

func (b *BrainHUD) Exit() {}

func (b *BrainHUD) Update(dt, t float64, frame int) {
	b.t = t
	b.rms = b.feats.RMS[frame]
	b.bass = b.feats.Bass[frame]
	b.treble = b.feats.Treble[frame]
	b.onset = b.feats.Onset[frame]
}

func (b *BrainHUD) View() string {
	g := newGrid(b.width, b.height)

	// Hex-ish grid background
	for x := 0; x < b.width; x += 10 {
		g.vline(x, 0, b.height-1, '·')
	}

	// Silhouette: box scaled by rms, brain circle by treble, bass speaker
	cx := b.width / 4
	cy := b.height / 2
	halfW := int(float64(b.width) / 10 * (1 + 0.3*b.rms))
	halfH := int(float64(b.height) / 4 * (1 + 0.3*b.rms))
	g.hline(cx-halfW, cx+halfW, cy-halfH, '─')
	g.hline(cx-halfW, cx+halfW, cy+halfH, '─')
	g.vline(cx-halfW, cy-halfH, cy+halfH, '│')
	g.vline(cx+halfW, cy-halfH, cy+halfH, '│')

	brainR := 1 + int(3*b.treble)
	for dx := -brainR; dx <= brainR; dx++ {
		g.set(cx+dx, cy-halfH+1, '*')
	}
	if b.onset > 0.6 {
		g.text(cx-2, cy, "▓▓▓▓▓")
	}
	bassR := 1 + int(3*b.bass)
	for dx := -bassR; dx <= bassR; dx++ {
		g.set(cx+dx, cy+halfH-1, '●')
	}

	// Right panel
	px := b.width / 2
	g.text(px, 1, fmt.Sprintf("BPM %3.0f", b.feats.Tempo))

	// waveform strip
	stripY := 3
	for x := px; x < b.width-1; x++ {
		amp := b.rms*0.7 + b.onset*0.3
		wob := math.Sin(b.t*8+float64(x-px)*0.7) * amp * 2
		g.set(x, stripY+1+int(wob), '~')
	}

	minutes := int(b.t) / 60
	seconds := int(b.t) % 60
	centis := int((b.t - math.Floor(b.t)) * 100)
	g.text(px, b.height-3, fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, centis))

	frame := hudStyle.Render(g.String())

	// song progress bar stitched onto the bottom panel row
	pct := 0.0
	if b.feats.Duration > 0 {
		pct = clamp01(b.t / b.feats.Duration)
	}
	return frame + "\n" + hudDimStyle.Render("  ") + b.bar.ViewAs(pct)
}
