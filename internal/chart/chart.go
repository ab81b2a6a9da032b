// Package chart loads Psych Engine note charts for the chart-driven scene.
// A chart is optional input: when missing or unreadable the caller falls back
// to Empty rather than aborting.
package chart

// Note is a single chart note. Times are in seconds.
type Note struct {
	Time     float64
	Lane     int // 0-3 after offset removal
	Sustain  float64
	IsPlayer bool
}

// Data is a parsed chart. Immutable once loaded; hit tracking lives with the
// consuming scene as a set of note indices, never in here.
type Data struct {
	BPM         float64
	ScrollSpeed float64
	Duration    float64
	Player1     string
	Player2     string
	Notes       []Note // globally sorted by time
}

// NotesInRange returns the indices of notes with start <= time <= end,
// optionally restricted to player notes. Indices are stable handles into
// Notes for hit tracking.
func (d *Data) NotesInRange(start, end float64, playerOnly bool) []int {
	var out []int
	for i, n := range d.Notes {
		if n.Time > end {
			break
		}
		if n.Time < start {
			continue
		}
		if playerOnly && !n.IsPlayer {
			continue
		}
		out = append(out, i)
	}
	return out
}

// NoteDensity returns notes per second in a window centered on t.
func (d *Data) NoteDensity(t, window float64, playerOnly bool) float64 {
	if window <= 0 {
		return 0
	}
	return float64(len(d.NotesInRange(t-window/2, t+window/2, playerOnly))) / window
}

// NoteAt reports whether a note exists in the given lane within threshold
// seconds of t.
func (d *Data) NoteAt(t float64, lane int, threshold float64, playerOnly bool) bool {
	for _, i := range d.NotesInRange(t-threshold, t+threshold, playerOnly) {
		if d.Notes[i].Lane == lane {
			return true
		}
	}
	return false
}

// PlayerCount returns how many notes belong to the player side.
func (d *Data) PlayerCount() int {
	count := 0
	for _, n := range d.Notes {
		if n.IsPlayer {
			count++
		}
	}
	return count
}
