package scenes

import (
	"fmt"

	"github.com/mlaroche/beatstage/internal/analysis"
	"github.com/mlaroche/beatstage/internal/chart"
)

const (
	laneCount  = 4
	hitWindow  = 0.1 // seconds around the receptor line that counts as a hit
	lookahead  = 2.0 // seconds of notes visible above the receptor
	lookbehind = 0.3
)

var laneGlyphs = []rune{'←', '↓', '↑', '→'}

// ChartLane renders the scrolling note highway from the loaded chart. Notes
// fall toward a receptor line; notes whose time has passed are marked hit by
// index, so re-renders never double-count.
type ChartLane struct {
	width, height int
	feats         *analysis.Features
	chart         *chart.Data

	hit     map[int]bool
	t       float64
	density float64
	pulse   float64
}

// NewChartLane creates the chart scene. The chart may be the empty
// placeholder, in which case the highway just pulses with the music.
func NewChartLane(width, height int, feats *analysis.Features, data *chart.Data) *ChartLane {
	return &ChartLane{width: width, height: height, feats: feats, chart: data}
}

func (c *ChartLane) Name() string { return "chart lane" }

func (c *ChartLane) Enter() {
	c.hit = make(map[int]bool)
	c.t, c.density, c.pulse = 0, 0, 0
}

func (c *ChartLane) Exit() {
	c.hit = nil
}

func (c *ChartLane) Update(dt, t float64, frame int) {
	c.t = t
	c.density = c.chart.NoteDensity(t, 1.0, true)
	c.pulse = c.feats.Percussive[frame]

	// mark player notes crossing the receptor as hit
	for _, i := range c.chart.NotesInRange(t-hitWindow, t+hitWindow, true) {
		if c.chart.Notes[i].Time <= t {
			c.hit[i] = true
		}
	}
}

func (c *ChartLane) View() string {
	g := newGrid(c.width, c.height)

	laneW := c.width / (laneCount + 2)
	if laneW < 3 {
		laneW = 3
	}
	marginX := (c.width - laneCount*laneW) / 2
	receptorY := c.height - 3

	for lane := 0; lane < laneCount; lane++ {
		x := marginX + lane*laneW + laneW/2
		g.vline(x, 0, c.height-1, '┊')
		g.set(x, receptorY, laneGlyphs[lane])
	}

	visible := c.chart.NotesInRange(c.t-lookbehind, c.t+lookahead, true)
	for _, i := range visible {
		n := c.chart.Notes[i]
		if n.Lane < 0 || n.Lane >= laneCount {
			continue
		}
		x := marginX + n.Lane*laneW + laneW/2
		// distance above the receptor proportional to time-to-hit
		y := receptorY - int((n.Time-c.t)/lookahead*float64(receptorY))
		if y < 0 || y >= c.height {
			continue
		}
		if c.hit[i] {
			g.set(x, y, '◆')
		} else {
			g.set(x, y, '◇')
		}
		// sustain tail
		if n.Sustain > 0 {
			tail := int(n.Sustain / lookahead * float64(receptorY))
			g.vline(x, y-tail, y-1, '┃')
		}
	}

	g.text(1, c.height-1, fmt.Sprintf("hits %d/%d  density %.1f n/s  pulse %s",
		len(c.hit), c.chart.PlayerCount(), c.density, string(barRune(c.pulse))))

	// flash the whole highway when a note is crossing the receptor
	if len(c.chart.NotesInRange(c.t-hitWindow, c.t+hitWindow, true)) > 0 {
		return hitStyle.Render(g.String())
	}
	return laneStyle.Render(g.String())
}
