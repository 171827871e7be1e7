package editor

import (
	"github.com/philipparndt/goarm/pkg/gizmo"
	"github.com/philipparndt/goarm/pkg/pointer"
)

// Pick moves the pointer to pixel (x, y) and returns the hovered axis
func (e *Editor) Pick(x, y float64) gizmo.AxisID {
	e.Dispatch(pointer.Event{Kind: pointer.Move, X: x, Y: y})
	return e.group.Hovered()
}

// Drag replays a press at (fromX, fromY), steps moves towards (toX, toY)
// and a release. It returns the dragged axis and whether a drag was
// committed.
func (e *Editor) Drag(fromX, fromY, toX, toY float64, steps int) (gizmo.AxisID, bool) {
	if steps < 1 {
		steps = 1
	}
	axis := e.Pick(fromX, fromY)
	e.Dispatch(pointer.Event{Kind: pointer.Down, X: fromX, Y: fromY})
	if e.group.Dragging() == gizmo.AxisNone {
		return gizmo.AxisNone, false
	}

	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		e.Dispatch(pointer.Event{
			Kind: pointer.Move,
			X:    fromX + (toX-fromX)*t,
			Y:    fromY + (toY-fromY)*t,
		})
	}
	e.Dispatch(pointer.Event{Kind: pointer.Up, X: toX, Y: toY})
	return axis, true
}
