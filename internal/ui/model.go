package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mlaroche/beatstage/internal/analysis"
	"github.com/mlaroche/beatstage/internal/audio"
	"github.com/mlaroche/beatstage/internal/chart"
	"github.com/mlaroche/beatstage/internal/scenes"
	"github.com/mlaroche/beatstage/internal/timeline"
)

// statusRows is the vertical space reserved for the status bar under the
// scene frame.
const statusRows = 2

// Model is the bubbletea model driving the show: it owns the clock, the
// router, the active scene's frame, and nothing of the audio task beyond the
// one-time start error.
type Model struct {
	audioPath string
	meta      audio.Metadata
	feats     *analysis.Features
	chartData *chart.Data
	fps       int

	clock  *timeline.Clock
	router *timeline.Router

	width, height int
	showStatus    bool
	quitting      bool
	audioErr      error
	lastTick      time.Time
	frame         string
}

// New creates the model. Playback has not started yet; Init triggers it.
func New(audioPath string, meta audio.Metadata, feats *analysis.Features, chartData *chart.Data, fps int) Model {
	return Model{
		audioPath:  audioPath,
		meta:       meta,
		feats:      feats,
		chartData:  chartData,
		fps:        fps,
		clock:      timeline.NewClock(),
		showStatus: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.fps), tea.SetWindowTitle("beatstage - "+m.meta.Title))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		if m.router == nil {
			return m, nil
		}
		switch msg.String() {
		case "m":
			m.router.SetManual(!m.router.Manual(), m.clock.Elapsed())
		case "n":
			m.router.NextScene()
		case "s":
			m.showStatus = !m.showStatus
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuild()
		return m, nil

	case tickMsg:
		now := time.Time(msg)

		// The first tick triggers playback and anchors t=0. The audio task
		// is fire-and-forget; a device error is surfaced once and the show
		// goes on without sound.
		if !m.clock.Started() {
			if err := audio.Play(m.audioPath); err != nil {
				m.audioErr = err
			}
			m.clock.Start()
			m.lastTick = now
		}

		t := m.clock.Elapsed()
		if t > m.feats.Duration {
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}

		dt := now.Sub(m.lastTick).Seconds()
		m.lastTick = now

		if m.router != nil {
			if scene := m.router.SceneFor(t); scene != nil {
				scene.Update(dt, t, m.feats.IndexAt(t))
				m.frame = scene.View()
			}
		}
		return m, tickCmd(m.fps)
	}

	return m, nil
}

// rebuild tears down the current timeline and constructs a fresh one at the
// current size. Scene state never survives a resize.
func (m *Model) rebuild() {
	if m.width < 4 || m.height < statusRows+2 {
		m.router = nil
		return
	}
	wasManual := m.router != nil && m.router.Manual()
	entries := scenes.Build(m.width, m.height-statusRows, m.fps, m.feats, m.chartData)
	m.router = timeline.NewRouter(entries)
	if wasManual {
		m.router.SetManual(true, m.clock.Elapsed())
	}
	m.frame = ""
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.router == nil {
		return "terminal too small"
	}

	frame := m.frame
	if !m.showStatus {
		return frame
	}

	status := titleStyle.Render(m.meta.Title)
	if m.meta.Artist != "" {
		status += sceneStyle.Render(" - " + m.meta.Artist)
	}
	if active := m.router.Active(); active != nil {
		status += sceneStyle.Render(fmt.Sprintf("  [%s]", active.Name()))
	}
	elapsed := time.Duration(m.clock.Elapsed() * float64(time.Second))
	total := time.Duration(m.feats.Duration * float64(time.Second))
	status += timeStyle.Render(fmt.Sprintf("  %s / %s", formatDuration(elapsed), formatDuration(total)))
	if m.audioErr != nil {
		status += warnStyle.Render(fmt.Sprintf("  (no audio: %v)", m.audioErr))
	}

	return frame + "\n" + status + "\n" + helpStyle.Render(helpText(m.router.Manual()))
}
