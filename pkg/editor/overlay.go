package editor

import (
	"image/color"

	"github.com/philipparndt/goarm/pkg/geometry"
	"github.com/philipparndt/goarm/pkg/gizmo"
)

// Colors used by every host
var (
	ArmColor   = color.NRGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}
	JointColor = color.NRGBA{R: 0xff, G: 0x11, B: 0x11, A: 0xff}
	AxisColors = [3]color.NRGBA{
		{R: 0xff, A: 0xff},
		{G: 0x80, A: 0xff},
		{B: 0xff, A: 0xff},
	}
)

// Opacity of the arm lines and of idle gizmo axes
const (
	ArmOpacity        = 0.7
	IdleAxisOpacity   = 0.7
	ActiveAxisOpacity = 1.0
)

// Segment is a world-space line to draw
type Segment struct {
	From, To geometry.Vector3
	Color    color.NRGBA
}

// AxisLine is a gizmo axis to draw
type AxisLine struct {
	Segment
	Axis  gizmo.AxisID
	State gizmo.State
}

// JointLabel marks a joint with its angle
type JointLabel struct {
	Index    int
	Position geometry.Vector3
	Angle    float64
}

// Overlay is everything a host draws for the editor in one frame
type Overlay struct {
	Arm    []Segment
	Joints []geometry.Vector3
	Labels []JointLabel
	Axes   []AxisLine
}

// Overlay builds the current frame's drawing list. Axes are only present in
// translate mode.
func (e *Editor) Overlay() Overlay {
	s := e.store.Snapshot()
	var o Overlay

	armColor := withOpacity(ArmColor, ArmOpacity)
	for i := 1; i < len(s.Vertices); i++ {
		o.Arm = append(o.Arm, Segment{From: s.Vertices[i-1], To: s.Vertices[i], Color: armColor})
	}
	o.Joints = append(o.Joints, s.Vertices...)
	for _, p := range s.Pairs() {
		o.Labels = append(o.Labels, JointLabel{Index: p.Index, Position: p.Vertex, Angle: p.Angle})
	}

	// The last arm segment follows the gizmo during a drag.
	if n := len(o.Arm); n > 0 {
		o.Arm[n-1].To = e.group.Origin()
	}
	if n := len(o.Joints); n > 0 {
		o.Joints[n-1] = e.group.Origin()
	}

	if e.mode == ModeTranslate {
		for _, axis := range e.group.Axes() {
			from, to := axis.Segment(e.group.Origin())
			opacity := IdleAxisOpacity
			if axis.State() != gizmo.Idle {
				opacity = ActiveAxisOpacity
			}
			o.Axes = append(o.Axes, AxisLine{
				Segment: Segment{From: from, To: to, Color: withOpacity(AxisColors[axis.ID], opacity)},
				Axis:    axis.ID,
				State:   axis.State(),
			})
		}
	}
	return o
}

func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(float64(c.A)*opacity + 0.5)
	return c
}
