package gizmo

import (
	"math"
	"testing"

	"github.com/philipparndt/goarm/pkg/camera"
	"github.com/philipparndt/goarm/pkg/geometry"
	"github.com/philipparndt/goarm/pkg/pointer"
)

type testScene struct {
	cam     *camera.Camera
	mounted bool
}

func (s *testScene) ActiveCamera() pointer.Camera {
	if !s.mounted {
		return nil
	}
	return s.cam
}

func (s *testScene) Viewport() (pointer.Rect, bool) {
	w, h := s.cam.Viewport()
	return pointer.Rect{Width: w, Height: h}, s.mounted
}

type fixture struct {
	scene   *testScene
	bus     *pointer.Bus
	group   *Group
	commits []geometry.Vector3
	changes map[AxisID][]State
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cam := camera.New(geometry.NewVector3(80, 80, 80), geometry.Vector3{}, 50, 0.1, 2000)
	cam.SetViewport(800, 600)

	f := &fixture{
		scene:   &testScene{cam: cam, mounted: true},
		changes: make(map[AxisID][]State),
	}
	f.bus = pointer.NewBus(pointer.NewTracker(f.scene))
	f.group = NewGroup(f.bus.Tracker(), geometry.Vector3{}, Options{Scale: 10, Tolerance: 2})
	f.group.OnCommit(func(v geometry.Vector3) { f.commits = append(f.commits, v) })
	f.group.OnStateChange(func(id AxisID, s State) { f.changes[id] = append(f.changes[id], s) })

	closer := f.group.Activate(f.bus)
	t.Cleanup(func() { closer.Close() })
	return f
}

// screen returns the pixel under which p appears
func (f *fixture) screen(p geometry.Vector3) (float64, float64) {
	x, y, _ := f.scene.cam.Project(p)
	return x, y
}

func (f *fixture) moveTo(x, y float64) {
	f.bus.Dispatch(pointer.Event{Kind: pointer.Move, X: x, Y: y})
}

func (f *fixture) hover(p geometry.Vector3) {
	f.moveTo(f.screen(p))
}

func (f *fixture) press() {
	f.bus.Dispatch(pointer.Event{Kind: pointer.Down})
}

func (f *fixture) release() {
	f.bus.Dispatch(pointer.Event{Kind: pointer.Up})
}

func TestHoverSelectsAxisUnderPointer(t *testing.T) {
	tests := []struct {
		name  string
		point geometry.Vector3
		want  AxisID
	}{
		{"x axis", geometry.NewVector3(5, 0, 0), AxisX},
		{"y axis", geometry.NewVector3(0, 7, 0), AxisY},
		{"z axis", geometry.NewVector3(0, 0, 7), AxisZ},
		{"shared origin prefers x", geometry.NewVector3(0, 0, 0), AxisX},
		{"between axes beyond tolerance", geometry.NewVector3(5, 6, 0), AxisNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.hover(tt.point)

			if got := f.group.Hovered(); got != tt.want {
				t.Errorf("expected %s hovered, got %s", tt.want, got)
			}
			for _, axis := range f.group.Axes() {
				want := Idle
				if axis.ID == tt.want {
					want = Hovering
				}
				if axis.State() != want {
					t.Errorf("axis %s: expected %s, got %s", axis.ID, want, axis.State())
				}
			}
		})
	}
}

func TestHoverTransitionsAreEdgeTriggered(t *testing.T) {
	f := newFixture(t)

	f.hover(geometry.NewVector3(5, 0, 0))
	f.hover(geometry.NewVector3(5, 0, 0))
	f.hover(geometry.NewVector3(6, 0, 0))

	if got := f.changes[AxisX]; len(got) != 1 || got[0] != Hovering {
		t.Fatalf("expected a single Idle->Hovering transition, got %v", got)
	}

	f.moveTo(10, 10)
	f.moveTo(12, 10)

	if got := f.changes[AxisX]; len(got) != 2 || got[1] != Idle {
		t.Errorf("expected a single Hovering->Idle transition, got %v", got)
	}
	if len(f.changes[AxisY]) != 0 || len(f.changes[AxisZ]) != 0 {
		t.Errorf("unexpected transitions on other axes: %v", f.changes)
	}
}

func TestHoverMovesBetweenAxes(t *testing.T) {
	f := newFixture(t)

	f.hover(geometry.NewVector3(5, 0, 0))
	f.hover(geometry.NewVector3(0, 7, 0))

	if got := f.changes[AxisX]; len(got) != 2 || got[1] != Idle {
		t.Errorf("expected X to return to idle, got %v", got)
	}
	if got := f.changes[AxisY]; len(got) != 1 || got[0] != Hovering {
		t.Errorf("expected Y to start hovering, got %v", got)
	}
}

func TestDragXAxisHorizontally(t *testing.T) {
	f := newFixture(t)

	x, y := f.screen(geometry.NewVector3(5, 0, 0))
	f.moveTo(x, y)
	f.press()

	if f.group.Dragging() != AxisX {
		t.Fatalf("expected X to be dragging, got %s", f.group.Dragging())
	}
	if f.group.Axis(AxisX).State() != Dragging {
		t.Fatalf("expected X state dragging, got %s", f.group.Axis(AxisX).State())
	}

	f.moveTo(x+40, y)
	origin := f.group.Origin()

	if origin.X <= 0 {
		t.Errorf("expected positive X displacement, got %v", origin)
	}
	if math.Abs(origin.Y) > 1e-9 || math.Abs(origin.Z) > 1e-9 {
		t.Errorf("expected Y and Z to stay 0, got %v", origin)
	}

	f.release()

	if len(f.commits) != 1 || f.commits[0] != origin {
		t.Fatalf("expected a single commit of %v, got %v", origin, f.commits)
	}
	if f.group.Dragging() != AxisNone || f.group.Hovered() != AxisNone {
		t.Errorf("expected no drag and no hover after release, got %s/%s", f.group.Dragging(), f.group.Hovered())
	}
	if f.group.Axis(AxisX).State() != Idle {
		t.Errorf("expected X to return to idle, got %s", f.group.Axis(AxisX).State())
	}
}

func TestDragIsRelativeToStart(t *testing.T) {
	f := newFixture(t)

	x, y := f.screen(geometry.NewVector3(5, 0, 0))
	f.moveTo(x, y)
	f.press()

	f.moveTo(x+30, y)
	f.moveTo(x+60, y)
	f.moveTo(x, y)

	if got := f.group.Origin(); !got.ApproxEqual(geometry.Vector3{}, 1e-9) {
		t.Errorf("returning to the press position should restore the start origin, got %v", got)
	}
}

func TestBeginDragRejectedWhileAnotherAxisDrags(t *testing.T) {
	f := newFixture(t)

	f.hover(geometry.NewVector3(5, 0, 0))
	f.press()
	x, y := f.screen(geometry.NewVector3(5, 0, 0))
	f.moveTo(x+20, y)

	session := f.group.Session()
	origin := f.group.Origin()

	if f.group.BeginDrag(AxisY) {
		t.Error("expected drag on Y to be rejected")
	}
	if f.group.BeginDrag(AxisX) {
		t.Error("expected a second drag on X to be rejected")
	}
	if f.group.Session() != session || f.group.Origin() != origin {
		t.Error("rejected drag changed the active session or origin")
	}
	if f.group.Axis(AxisY).State() != Idle {
		t.Errorf("expected Y to stay idle, got %s", f.group.Axis(AxisY).State())
	}
}

func TestBeginDragRequiresHover(t *testing.T) {
	f := newFixture(t)

	if f.group.BeginDrag(AxisZ) {
		t.Error("expected drag without hover to be rejected")
	}
	if f.group.BeginDrag(AxisNone) {
		t.Error("expected drag on AxisNone to be rejected")
	}

	f.press()
	if f.group.Session() != nil {
		t.Error("press without hover must not start a drag")
	}
}

func TestEndDragWithoutSessionIsNoop(t *testing.T) {
	f := newFixture(t)

	f.release()
	if f.group.EndDrag() {
		t.Error("expected EndDrag without a session to report false")
	}
	if len(f.commits) != 0 {
		t.Errorf("expected no commits, got %v", f.commits)
	}

	f.hover(geometry.NewVector3(0, 7, 0))
	f.press()
	f.release()
	f.release()

	if len(f.commits) != 1 {
		t.Errorf("expected exactly one commit, got %d", len(f.commits))
	}
}

func TestLeaveDuringDragCommits(t *testing.T) {
	f := newFixture(t)

	x, y := f.screen(geometry.NewVector3(0, 7, 0))
	f.moveTo(x, y)
	f.press()
	f.moveTo(x, y-25)
	moved := f.group.Origin()
	f.bus.Dispatch(pointer.Event{Kind: pointer.Leave})

	if len(f.commits) != 1 || f.commits[0] != moved {
		t.Fatalf("expected leave to commit %v, got %v", moved, f.commits)
	}
	if moved.Y <= 0 || math.Abs(moved.X) > 1e-9 || math.Abs(moved.Z) > 1e-9 {
		t.Errorf("expected an upward Y-only move, got %v", moved)
	}
	if f.group.Session() != nil || f.group.Hovered() != AxisNone {
		t.Error("expected leave to end the drag and clear hover")
	}
}

func TestLeaveClearsHover(t *testing.T) {
	f := newFixture(t)

	f.hover(geometry.NewVector3(5, 0, 0))
	f.bus.Dispatch(pointer.Event{Kind: pointer.Leave})

	if f.group.Hovered() != AxisNone || f.group.Axis(AxisX).State() != Idle {
		t.Error("expected leave to clear hover")
	}
	if len(f.commits) != 0 {
		t.Errorf("expected no commit without a drag, got %v", f.commits)
	}
}

func TestDragSkipsTicksWithoutCamera(t *testing.T) {
	f := newFixture(t)

	x, y := f.screen(geometry.NewVector3(5, 0, 0))
	f.moveTo(x, y)
	f.press()
	f.moveTo(x+20, y)
	before := f.group.Origin()

	f.scene.mounted = false
	f.moveTo(x+80, y)

	if f.group.Origin() != before {
		t.Errorf("origin moved without a camera: %v -> %v", before, f.group.Origin())
	}
	if f.group.Session() == nil {
		t.Fatal("session must survive a missing camera")
	}

	f.scene.mounted = true
	f.moveTo(x+80, y)
	if f.group.Origin().X <= before.X {
		t.Errorf("expected drag to resume, origin %v", f.group.Origin())
	}
}

func TestSetOriginIgnoredWhileDragging(t *testing.T) {
	f := newFixture(t)

	if !f.group.SetOrigin(geometry.NewVector3(0, 0, 0)) {
		t.Fatal("expected SetOrigin to apply while idle")
	}
	f.hover(geometry.NewVector3(5, 0, 0))
	f.press()

	if f.group.SetOrigin(geometry.NewVector3(1, 2, 3)) {
		t.Error("expected SetOrigin to be refused during a drag")
	}
}

func TestDeactivateAbortsDrag(t *testing.T) {
	cam := camera.New(geometry.NewVector3(80, 80, 80), geometry.Vector3{}, 50, 0.1, 2000)
	cam.SetViewport(800, 600)
	scene := &testScene{cam: cam, mounted: true}
	bus := pointer.NewBus(pointer.NewTracker(scene))
	group := NewGroup(bus.Tracker(), geometry.Vector3{}, Options{})

	commits := 0
	group.OnCommit(func(geometry.Vector3) { commits++ })
	closer := group.Activate(bus)

	x, y, _ := cam.Project(geometry.NewVector3(5, 0, 0))
	bus.Dispatch(pointer.Event{Kind: pointer.Move, X: x, Y: y})
	bus.Dispatch(pointer.Event{Kind: pointer.Down})
	bus.Dispatch(pointer.Event{Kind: pointer.Move, X: x + 50, Y: y})

	closer.Close()
	closer.Close()

	if bus.Len() != 0 {
		t.Errorf("expected the group to unsubscribe, %d handlers left", bus.Len())
	}
	if group.Session() != nil || group.Origin() != (geometry.Vector3{}) {
		t.Errorf("expected drag to be abandoned and origin restored, got %v", group.Origin())
	}
	if commits != 0 {
		t.Errorf("expected no commits, got %d", commits)
	}

	bus.Dispatch(pointer.Event{Kind: pointer.Move, X: x, Y: y})
	if group.Hovered() != AxisNone {
		t.Error("deactivated group must not react to events")
	}
}
