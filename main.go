package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mlaroche/beatstage/internal/analysis"
	"github.com/mlaroche/beatstage/internal/audio"
	"github.com/mlaroche/beatstage/internal/chart"
	"github.com/mlaroche/beatstage/internal/ui"
)

func main() {
	chartPath := flag.String("chart", "", "optional Psych Engine chart JSON for the note highway scene")
	profile := flag.String("profile", string(analysis.ProfileBalanced), "analysis profile: ultrafast, fast, balanced, quality")
	fps := flag.Int("fps", 60, "target render frame rate")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <audio file>\n\nSupported formats: %s\n\nFlags:\n", os.Args[0], audio.SupportedExtsList())
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	// Everything that can fail fatally does so here, before any UI exists.
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: %s is a directory\n", path)
		os.Exit(1)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !audio.IsSupportedExt(ext) {
		fmt.Fprintf(os.Stderr, "Error: unsupported format %s (supported: %s)\n", ext, audio.SupportedExtsList())
		os.Exit(1)
	}

	cfg, err := analysis.ProfileConfig(analysis.Profile(*profile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *fps < 1 || *fps > 240 {
		fmt.Fprintf(os.Stderr, "Error: fps must be between 1 and 240\n")
		os.Exit(1)
	}

	logf := func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}

	logf("[analysis] loading %s...", path)
	wave, err := audio.LoadMono(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading audio: %v\n", err)
		os.Exit(1)
	}

	feats := analysis.Analyze(wave, cfg, logf)
	wave = audio.Waveform{} // the raw waveform is not needed during playback

	chartData := loadChart(*chartPath, feats, logf)
	meta := audio.ReadMetadata(path)

	model := ui.New(path, meta, feats, chartData, *fps)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadChart parses the optional chart. Chart problems are recoverable: the
// show runs on the empty placeholder instead of aborting.
func loadChart(path string, feats *analysis.Features, logf func(string, ...any)) *chart.Data {
	if path == "" {
		return chart.Empty(feats.Tempo, feats.Duration)
	}

	data, err := chart.Load(path, feats.Duration)
	if err != nil {
		switch {
		case errors.Is(err, chart.ErrNotFound):
			logf("[chart] warning: %v, continuing without a chart", err)
		case errors.Is(err, chart.ErrInvalidFormat):
			logf("[chart] warning: %v, continuing without a chart", err)
		default:
			logf("[chart] warning: reading chart: %v, continuing without a chart", err)
		}
		return chart.Empty(feats.Tempo, feats.Duration)
	}

	logf("[chart] loaded %s: bpm=%.0f speed=%.1f notes=%d (player %d)",
		path, data.BPM, data.ScrollSpeed, len(data.Notes), data.PlayerCount())
	return data
}
