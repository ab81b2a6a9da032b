package timeline

import "testing"

// spyScene records lifecycle calls.
type spyScene struct {
	name    string
	enters  int
	exits   int
	updates int
}

func (s *spyScene) Name() string               { return s.name }
func (s *spyScene) Enter()                     { s.enters++ }
func (s *spyScene) Exit()                      { s.exits++ }
func (s *spyScene) Update(_, _ float64, _ int) { s.updates++ }
func (s *spyScene) View() string               { return s.name }

func twoSceneRouter(d float64) (*Router, *spyScene, *spyScene) {
	a := &spyScene{name: "a"}
	b := &spyScene{name: "b"}
	r := NewRouter([]Entry{
		{Start: 0, End: d / 2, Scene: a},
		{Start: d / 2, End: d, Scene: b},
	})
	return r, a, b
}

func TestRouterLifecyclePairs(t *testing.T) {
	const d = 10.0
	r, a, b := twoSceneRouter(d)

	if got := r.SceneFor(0); got != a {
		t.Fatalf("SceneFor(0) = %v, want a", got)
	}
	if a.enters != 1 || a.exits != 0 {
		t.Fatalf("a enters/exits = %d/%d, want 1/0", a.enters, a.exits)
	}

	if got := r.SceneFor(d / 2); got != b {
		t.Fatalf("SceneFor(d/2) = %v, want b", got)
	}
	if a.exits != 1 || b.enters != 1 {
		t.Fatalf("transition ran a.exits=%d b.enters=%d, want 1/1", a.exits, b.enters)
	}

	// Staying inside b's interval is not a transition.
	r.SceneFor(d * 0.75)
	r.SceneFor(d * 0.9)
	if a.enters != 1 || a.exits != 1 || b.enters != 1 || b.exits != 0 {
		t.Fatalf("idempotent lookup mutated lifecycle: a=%d/%d b=%d/%d",
			a.enters, a.exits, b.enters, b.exits)
	}
}

func TestRouterReentryRunsLifecycleAgain(t *testing.T) {
	r, a, b := twoSceneRouter(10)
	r.SceneFor(1)
	r.SceneFor(6)
	r.SceneFor(2) // back into a's interval

	if a.enters != 2 || a.exits != 1 {
		t.Fatalf("a enters/exits = %d/%d, want 2/1 on re-entry", a.enters, a.exits)
	}
	if b.exits != 1 {
		t.Fatalf("b.exits = %d, want 1", b.exits)
	}
}

func TestRouterGapKeepsCurrentScene(t *testing.T) {
	r, a, _ := twoSceneRouter(10)
	r.SceneFor(1)

	// Out-of-cover times should not occur, but are handled defensively.
	if got := r.SceneFor(-5); got != a {
		t.Fatalf("SceneFor(-5) = %v, want current scene", got)
	}
	if got := r.SceneFor(99); got != a {
		t.Fatalf("SceneFor(99) = %v, want current scene", got)
	}
	if a.enters != 1 || a.exits != 0 {
		t.Fatalf("gap lookup ran lifecycle: %d/%d", a.enters, a.exits)
	}
}

func TestRouterManualOverride(t *testing.T) {
	r, a, b := twoSceneRouter(10)
	r.SceneFor(1)

	// Pin manual mode at t=1: entry 0 stays active.
	r.SetManual(true, 1)
	if r.Active() != a || a.enters != 1 {
		t.Fatalf("pinning should keep a active without a new enter")
	}

	// Advance pins b even though t stays in a's interval.
	r.NextScene()
	if r.Active() != b {
		t.Fatal("NextScene did not activate b")
	}
	if a.exits != 1 || b.enters != 1 {
		t.Fatalf("manual advance lifecycle a.exits=%d b.enters=%d", a.exits, b.enters)
	}

	// Time-based lookup is bypassed while pinned.
	if got := r.SceneFor(1); got != b {
		t.Fatalf("manual SceneFor(1) = %v, want pinned b", got)
	}

	// Wrap-around.
	r.NextScene()
	if r.Active() != a || a.enters != 2 {
		t.Fatal("NextScene did not wrap to a")
	}

	// Back to automatic: re-sync to whatever owns t with the same contract.
	r.SetManual(false, 0)
	if got := r.SceneFor(7); got != b {
		t.Fatalf("auto SceneFor(7) = %v, want b", got)
	}
	if b.enters != 2 {
		t.Fatalf("b.enters = %d, want 2 after re-sync", b.enters)
	}
}

func TestRouterNextSceneOutsideManualIsNoop(t *testing.T) {
	r, a, b := twoSceneRouter(10)
	r.SceneFor(1)
	r.NextScene()
	if r.Active() != a || b.enters != 0 {
		t.Fatal("NextScene outside manual mode must not switch scenes")
	}
}
