package scenes

import (
	"testing"

	"github.com/mlaroche/beatstage/internal/analysis"
	"github.com/mlaroche/beatstage/internal/chart"
	"github.com/mlaroche/beatstage/internal/timeline"
)

func testFeatures(duration float64) *analysis.Features {
	const frames = 100
	f := &analysis.Features{Duration: duration, Times: make([]float64, frames), Tempo: 120}
	for i := range f.Times {
		f.Times[i] = duration * float64(i) / frames
	}
	zeros := func() []float64 { return make([]float64, frames) }
	f.RMS, f.Bass, f.Mid, f.Treble, f.Onset = zeros(), zeros(), zeros(), zeros(), zeros()
	f.Percussive = zeros()
	return f
}

func TestBuildCoversWholeSong(t *testing.T) {
	const d = 60.0
	entries := Build(80, 24, 60, testFeatures(d), chart.Empty(120, d))

	if len(entries) == 0 {
		t.Fatal("no entries")
	}
	if entries[0].Start != 0 {
		t.Fatalf("first entry starts at %v, want 0", entries[0].Start)
	}
	if entries[len(entries)-1].End != d {
		t.Fatalf("last entry ends at %v, want %v", entries[len(entries)-1].End, d)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Start != entries[i-1].End {
			t.Fatalf("gap between entries %d and %d: %v != %v",
				i-1, i, entries[i-1].End, entries[i].Start)
		}
	}
	for i, e := range entries {
		if e.End <= e.Start {
			t.Fatalf("entry %d has empty interval [%v, %v)", i, e.Start, e.End)
		}
		if e.Scene == nil {
			t.Fatalf("entry %d has nil scene", i)
		}
	}
}

func TestRebuildDiscardsSceneState(t *testing.T) {
	const d = 60.0
	feats := testFeatures(d)
	data := chart.Empty(120, d)

	entries := Build(80, 24, 60, feats, data)
	r := timeline.NewRouter(entries)
	first := r.SceneFor(1).(*Stripes)
	first.Update(0.016, 1, 10)
	first.Update(0.016, 1.02, 10)
	if first.phase == 0 {
		t.Fatal("updates should have advanced the animation phase")
	}

	// Simulated resize: a wholesale rebuild.
	rebuilt := Build(100, 30, 60, feats, data)
	r2 := timeline.NewRouter(rebuilt)
	second := r2.SceneFor(1).(*Stripes)

	if second == first {
		t.Fatal("rebuild reused a scene instance")
	}
	if second.phase != 0 {
		t.Fatalf("rebuilt scene phase = %v, want enter baseline 0", second.phase)
	}
}

func TestScenesRenderAtAnySize(t *testing.T) {
	feats := testFeatures(10)
	data := chart.Empty(120, 10)

	for _, size := range []struct{ w, h int }{{80, 24}, {20, 6}, {3, 2}} {
		for _, e := range Build(size.w, size.h, 30, feats, data) {
			e.Scene.Enter()
			e.Scene.Update(0.033, 1, 5)
			if out := e.Scene.View(); out == "" {
				t.Errorf("%s rendered empty frame at %dx%d", e.Scene.Name(), size.w, size.h)
			}
			e.Scene.Exit()
		}
	}
}
