package chart

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

var (
	// ErrNotFound means the chart file does not exist.
	ErrNotFound = errors.New("chart file not found")
	// ErrInvalidFormat means the file exists but is not a usable chart.
	ErrInvalidFormat = errors.New("invalid chart format")
)

const (
	playerLaneOffset = 4   // lanes >= this are the player side before must-hit inversion
	tailPadding      = 2.0 // seconds appended when duration is derived from the last note
	fallbackDuration = 60.0
	defaultBPM       = 120.0
	defaultSpeed     = 3.0
)

type chartFile struct {
	Song *songSection `json:"song"`
}

type songSection struct {
	BPM     float64       `json:"bpm"`
	Speed   float64       `json:"speed"`
	Player1 string        `json:"player1"`
	Player2 string        `json:"player2"`
	Notes   []noteSection `json:"notes"`
}

// SectionNotes tuples mix numbers with optional trailing note-type strings,
// and event rows use non-numeric lanes, so elements decode as any.
type noteSection struct {
	MustHitSection bool    `json:"mustHitSection"`
	SectionNotes   [][]any `json:"sectionNotes"`
}

// Load parses a Psych Engine chart. audioDuration, when positive, wins over
// any note-derived duration; otherwise the duration is the last note's end
// plus padding, or a fixed fallback for an empty chart.
func Load(path string, audioDuration float64) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}

	var file chartFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if file.Song == nil {
		return nil, fmt.Errorf("%w: missing top-level \"song\" object", ErrInvalidFormat)
	}

	song := file.Song
	d := &Data{
		BPM:         song.BPM,
		ScrollSpeed: song.Speed,
		Player1:     song.Player1,
		Player2:     song.Player2,
	}
	if d.BPM <= 0 {
		d.BPM = defaultBPM
	}
	if d.ScrollSpeed <= 0 {
		d.ScrollSpeed = defaultSpeed
	}

	for _, section := range song.Notes {
		for _, tuple := range section.SectionNotes {
			note, ok := parseNote(tuple, section.MustHitSection)
			if !ok {
				continue
			}
			d.Notes = append(d.Notes, note)
		}
	}

	sort.SliceStable(d.Notes, func(i, j int) bool {
		return d.Notes[i].Time < d.Notes[j].Time
	})

	switch {
	case audioDuration > 0:
		d.Duration = audioDuration
	case len(d.Notes) > 0:
		last := 0.0
		for _, n := range d.Notes {
			if end := n.Time + n.Sustain; end > last {
				last = end
			}
		}
		d.Duration = last + tailPadding
	default:
		d.Duration = fallbackDuration
	}

	return d, nil
}

// parseNote converts a [time_ms, lane, sustain_ms, ...] tuple. Tuples that
// are too short, non-numeric, or carry a negative lane are chart events, not
// notes, and are skipped.
func parseNote(tuple []any, mustHit bool) (Note, bool) {
	if len(tuple) < 3 {
		return Note{}, false
	}
	timeMS, ok1 := tuple[0].(float64)
	laneF, ok2 := tuple[1].(float64)
	sustainMS, ok3 := tuple[2].(float64)
	if !ok1 || !ok2 || !ok3 {
		return Note{}, false
	}
	lane := int(laneF)
	if lane < 0 {
		return Note{}, false
	}

	isPlayer := lane >= playerLaneOffset
	if isPlayer {
		lane -= playerLaneOffset
	}
	// A must-hit section swaps which side the lane ranges belong to.
	if mustHit {
		isPlayer = !isPlayer
	}

	return Note{
		Time:     timeMS / 1000.0,
		Lane:     lane,
		Sustain:  sustainMS / 1000.0,
		IsPlayer: isPlayer,
	}, true
}

// Empty returns a valid chart with no notes, the documented degraded-mode
// substitute when no real chart exists.
func Empty(bpm, duration float64) *Data {
	if bpm <= 0 {
		bpm = defaultBPM
	}
	if duration <= 0 {
		duration = fallbackDuration
	}
	return &Data{
		BPM:         bpm,
		ScrollSpeed: defaultSpeed,
		Duration:    duration,
		Player1:     "bf",
		Player2:     "dad",
	}
}
