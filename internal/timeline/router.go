package timeline

// Router maps song time to the single active scene and runs the enter/exit
// lifecycle across transitions. Entries are evaluated in order, first match
// wins; the set is expected to be contiguous and non-overlapping over
// [0, duration), built once per window size and rebuilt wholesale on resize.
type Router struct {
	entries   []Entry
	current   Scene
	manual    bool
	manualIdx int
}

// NewRouter builds a router over the given entries. No scene is active
// until the first lookup.
func NewRouter(entries []Entry) *Router {
	return &Router{entries: entries}
}

// Entries exposes the configured timeline, in order.
func (r *Router) Entries() []Entry {
	return r.entries
}

// Active returns the currently active scene, nil before the first lookup.
func (r *Router) Active() Scene {
	return r.current
}

// Manual reports whether manual override is pinned.
func (r *Router) Manual() bool {
	return r.manual
}

// SceneFor resolves the scene owning song time t and performs the lifecycle
// transition if ownership changed: previous.Exit() then next.Enter(),
// exactly one pair per transition, including re-entry of a scene that was
// active earlier in the timeline. In manual mode the pinned scene wins
// regardless of t. If no interval contains t (a gap that the contiguity
// invariant rules out, handled defensively anyway) the current scene stays
// active with no transition.
func (r *Router) SceneFor(t float64) Scene {
	if r.manual {
		return r.activate(r.entries[r.manualIdx].Scene)
	}
	for _, e := range r.entries {
		if t >= e.Start && t < e.End {
			return r.activate(e.Scene)
		}
	}
	return r.current
}

func (r *Router) activate(next Scene) Scene {
	if r.current == next {
		return next
	}
	if r.current != nil {
		r.current.Exit()
	}
	r.current = next
	r.current.Enter()
	return next
}

// SetManual toggles manual override. Entering manual mode pins whichever
// entry owns time t (or the first entry); leaving it re-synchronizes to the
// time-based lookup with the same enter/exit contract.
func (r *Router) SetManual(on bool, t float64) {
	if len(r.entries) == 0 {
		return
	}
	r.manual = on
	if on {
		r.manualIdx = r.indexFor(t)
		r.SceneFor(t)
	}
}

// NextScene advances the manual pin to the next entry, wrapping around.
// No-op outside manual mode.
func (r *Router) NextScene() {
	if !r.manual || len(r.entries) == 0 {
		return
	}
	r.manualIdx = (r.manualIdx + 1) % len(r.entries)
	r.SceneFor(0)
}

func (r *Router) indexFor(t float64) int {
	for i, e := range r.entries {
		if t >= e.Start && t < e.End {
			return i
		}
	}
	return 0
}
