package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mlaroche/beatstage/internal/analysis"
	"github.com/mlaroche/beatstage/internal/audio"
	"github.com/mlaroche/beatstage/internal/chart"
)

func testModel() Model {
	feats := &analysis.Features{
		Duration: 10,
		Times:    []float64{0, 5},
		RMS:      []float64{0, 0},
		Bass:     []float64{0, 0},
		Mid:      []float64{0, 0},
		Treble:   []float64{0, 0},
		Onset:    []float64{0, 0},
	}
	feats.Percussive = []float64{0, 0}
	return New("song.mp3", audio.Metadata{Title: "Song"}, feats, chart.Empty(120, 10), 30)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61 * time.Second, "1:01"},
		{10 * time.Minute, "10:00"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestHelpTextTracksManualMode(t *testing.T) {
	if got := helpText(false); !strings.Contains(got, "m manual") {
		t.Errorf("auto help = %q", got)
	}
	if got := helpText(true); !strings.Contains(got, "n next scene") {
		t.Errorf("manual help = %q", got)
	}
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := testModel()
	if got := m.View(); got != "terminal too small" {
		t.Errorf("View() without a size = %q", got)
	}
}

func TestResizeBuildsRouterAndTinySizeTearsItDown(t *testing.T) {
	m := testModel()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)
	if m.router == nil {
		t.Fatal("resize did not build a router")
	}

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 2, Height: 2})
	m = updated.(Model)
	if m.router != nil {
		t.Fatal("tiny resize should tear the router down")
	}
	if got := m.View(); got != "terminal too small" {
		t.Errorf("tiny View() = %q", got)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		m := testModel()
		var msg tea.KeyMsg
		switch key {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		updated, cmd := m.Update(msg)
		m = updated.(Model)
		if !m.quitting || cmd == nil {
			t.Errorf("key %q did not quit", key)
		}
		if m.View() != "" {
			t.Errorf("quitting View() should be empty")
		}
	}
}

func TestManualToggleAcrossResize(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	m = updated.(Model)
	if !m.router.Manual() {
		t.Fatal("m key did not enable manual mode")
	}

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)
	if !m.router.Manual() {
		t.Fatal("manual mode lost across resize")
	}
}
