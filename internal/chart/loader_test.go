package chart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeChart(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadClassifiesLanes(t *testing.T) {
	tests := []struct {
		name       string
		mustHit    string
		wantPlayer bool
	}{
		{name: "lane 5 without must-hit is a player note", mustHit: "false", wantPlayer: true},
		{name: "lane 5 with must-hit swaps to opponent", mustHit: "true", wantPlayer: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeChart(t, `{"song":{"bpm":150,"speed":2.5,"player1":"bf","player2":"dad",
				"notes":[{"mustHitSection":`+tt.mustHit+`,"sectionNotes":[[1000,5,500]]}]}}`)

			d, err := Load(path, 0)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(d.Notes) != 1 {
				t.Fatalf("got %d notes, want 1", len(d.Notes))
			}
			n := d.Notes[0]
			if n.Lane != 1 {
				t.Errorf("lane = %d, want 1", n.Lane)
			}
			if n.IsPlayer != tt.wantPlayer {
				t.Errorf("IsPlayer = %v, want %v", n.IsPlayer, tt.wantPlayer)
			}
			if n.Time != 1.0 || n.Sustain != 0.5 {
				t.Errorf("time/sustain = %v/%v, want 1/0.5", n.Time, n.Sustain)
			}
		})
	}
}

func TestLoadSkipsEventsAndSortsNotes(t *testing.T) {
	path := writeChart(t, `{"song":{"bpm":100,"speed":3,
		"notes":[
			{"mustHitSection":true,"sectionNotes":[[2000,2,0],[500,0,0],["event",-1,0],[1000,-1,0]]},
			{"mustHitSection":false,"sectionNotes":[[100,6,0]]}
		]}}`)

	d, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(d.Notes) != 3 {
		t.Fatalf("got %d notes, want 3 (events skipped)", len(d.Notes))
	}
	for i := 1; i < len(d.Notes); i++ {
		if d.Notes[i].Time < d.Notes[i-1].Time {
			t.Fatalf("notes not sorted by time: %v", d.Notes)
		}
	}
}

func TestLoadDurationFallbacks(t *testing.T) {
	withNotes := `{"song":{"bpm":100,"speed":3,"notes":[{"mustHitSection":false,"sectionNotes":[[10000,4,2000]]}]}}`

	d, err := Load(writeChart(t, withNotes), 123.0)
	if err != nil {
		t.Fatal(err)
	}
	if d.Duration != 123.0 {
		t.Fatalf("audio duration should win: got %v", d.Duration)
	}

	d, err = Load(writeChart(t, withNotes), 0)
	if err != nil {
		t.Fatal(err)
	}
	if d.Duration != 12.0+tailPadding {
		t.Fatalf("derived duration = %v, want %v", d.Duration, 12.0+tailPadding)
	}

	d, err = Load(writeChart(t, `{"song":{"bpm":100,"speed":3,"notes":[]}}`), 0)
	if err != nil {
		t.Fatal(err)
	}
	if d.Duration != fallbackDuration {
		t.Fatalf("empty-chart duration = %v, want %v", d.Duration, fallbackDuration)
	}
}

func TestLoadErrorTaxonomy(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json"), 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing file error = %v, want ErrNotFound", err)
	}

	if _, err := Load(writeChart(t, `{not json`), 0); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("malformed JSON error = %v, want ErrInvalidFormat", err)
	}

	if _, err := Load(writeChart(t, `{"title":"no song key"}`), 0); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("missing song key error = %v, want ErrInvalidFormat", err)
	}
}

func TestEmpty(t *testing.T) {
	d := Empty(174, 60)
	if len(d.Notes) != 0 {
		t.Fatalf("empty chart has %d notes", len(d.Notes))
	}
	if d.BPM != 174 || d.Duration != 60 {
		t.Fatalf("bpm/duration = %v/%v, want 174/60", d.BPM, d.Duration)
	}

	d = Empty(0, -1)
	if d.BPM != defaultBPM || d.Duration != fallbackDuration {
		t.Fatalf("defaults not applied: %v/%v", d.BPM, d.Duration)
	}
}

func TestQueries(t *testing.T) {
	d := &Data{
		Duration: 10,
		Notes: []Note{
			{Time: 1.0, Lane: 0, IsPlayer: true},
			{Time: 1.5, Lane: 2, IsPlayer: false},
			{Time: 2.0, Lane: 1, IsPlayer: true},
			{Time: 5.0, Lane: 3, IsPlayer: true},
		},
	}

	if got := d.NotesInRange(0.5, 2.5, true); len(got) != 2 {
		t.Fatalf("NotesInRange player-only = %v, want 2 indices", got)
	}
	if got := d.NotesInRange(0.5, 2.5, false); len(got) != 3 {
		t.Fatalf("NotesInRange all = %v, want 3 indices", got)
	}

	if got := d.NoteDensity(1.5, 2.0, false); got != 1.5 {
		t.Fatalf("NoteDensity = %v, want 1.5", got)
	}

	if !d.NoteAt(2.01, 1, 0.05, true) {
		t.Fatal("NoteAt missed lane 1 at t=2.01")
	}
	if d.NoteAt(2.01, 3, 0.05, true) {
		t.Fatal("NoteAt matched wrong lane")
	}
}
