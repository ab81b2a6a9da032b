// Package scenes holds the hand-authored visual renderers and the timeline
// that binds them to the song. Scenes are cosmetic collaborators of the
// core: they consume the feature table and chart through their interfaces
// and own nothing but their own animation state.
package scenes

import (
	"github.com/mlaroche/beatstage/internal/analysis"
	"github.com/mlaroche/beatstage/internal/chart"
	"github.com/mlaroche/beatstage/internal/timeline"
)

// Build constructs fresh scene instances for the given frame size and a
// contiguous timeline covering [0, duration). Called once at startup and
// again wholesale on every resize; previous instances and their state are
// discarded, never migrated.
func Build(width, height, fps int, feats *analysis.Features, data *chart.Data) []timeline.Entry {
	d := feats.Duration

	roster := []timeline.Scene{
		NewStripes(width, height, feats),
		NewChartLane(width, height, feats, data),
		NewGraffiti(width, height, fps, feats),
		NewVinyl(width, height, feats),
		NewBrainHUD(width, height, feats),
	}

	n := float64(len(roster))
	entries := make([]timeline.Entry, len(roster))
	for i, s := range roster {
		entries[i] = timeline.Entry{
			Start: d * float64(i) / n,
			End:   d * float64(i+1) / n,
			Scene: s,
		}
	}
	// Close the last interval at the exact duration so the cover is
	// [0, duration) regardless of rounding.
	entries[len(entries)-1].End = d
	return entries
}
