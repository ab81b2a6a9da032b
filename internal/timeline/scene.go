package timeline

// Scene is one visual renderer bound to a time interval. Exactly one scene
// is active at a time; Enter runs on activation and Exit on deactivation,
// always as a pair across a transition. A scene owns its mutable visual
// state and is only ever touched by the render loop.
type Scene interface {
	Name() string

	// Enter resets the scene to its baseline state and acquires any
	// per-scene resources. Exit releases them.
	Enter()
	Exit()

	// Update advances animation state. dt is the frame delta in seconds,
	// t the current song time, and frame the resolved feature-table row.
	Update(dt, t float64, frame int)

	// View renders the current frame as styled terminal cells.
	View() string
}

// Entry binds a scene to the half-open song-time interval [Start, End).
type Entry struct {
	Start float64
	End   float64
	Scene Scene
}
