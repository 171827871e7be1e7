package gizmo

import (
	"math"

	"github.com/philipparndt/goarm/pkg/geometry"
)

// AxisID names one of the three gizmo axes
type AxisID int

const (
	AxisX AxisID = iota
	AxisY
	AxisZ
)

// AxisNone means no axis
const AxisNone AxisID = -1

func (id AxisID) String() string {
	switch id {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "none"
	}
}

// Valid reports whether id names one of the three axes
func (id AxisID) Valid() bool {
	return id >= AxisX && id <= AxisZ
}

// State is the interaction state of a single axis
type State int

const (
	Idle State = iota
	Hovering
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hovering:
		return "hovering"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Axis is one draggable line of the gizmo. It starts at the group origin and
// extends Scale units along Direction. Tolerance is the largest ray distance
// that still counts as touching the line.
type Axis struct {
	ID        AxisID
	Direction geometry.Vector3
	Scale     float64
	Tolerance float64

	state State
}

func newAxis(id AxisID, direction geometry.Vector3, scale, tolerance float64) *Axis {
	return &Axis{
		ID:        id,
		Direction: direction.Normalize(),
		Scale:     scale,
		Tolerance: tolerance,
	}
}

// State returns the current interaction state
func (a *Axis) State() State {
	return a.state
}

// Segment returns the axis endpoints for the given origin
func (a *Axis) Segment(origin geometry.Vector3) (geometry.Vector3, geometry.Vector3) {
	return origin, origin.Add(a.Direction.Mul(a.Scale))
}

// Intersects reports whether the ray passes within Tolerance of the segment
func (a *Axis) Intersects(ray geometry.Ray, origin geometry.Vector3) bool {
	v0, v1 := a.Segment(origin)
	approach := ray.DistanceSqToSegment(v0, v1)
	return math.Sqrt(approach.DistanceSq) <= a.Tolerance
}

// setHovering moves between Idle and Hovering and reports whether the state
// changed. Dragging axes are left alone.
func (a *Axis) setHovering(hovering bool) bool {
	switch {
	case a.state == Dragging:
		return false
	case hovering && a.state == Idle:
		a.state = Hovering
		return true
	case !hovering && a.state == Hovering:
		a.state = Idle
		return true
	}
	return false
}
