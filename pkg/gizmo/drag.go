package gizmo

import "github.com/philipparndt/goarm/pkg/geometry"

// DragPlane returns the plane used to turn a pointer ray into a point on
// line. It contains line.Origin and faces the eye: its normal runs from the
// point on the line nearest the eye to the eye itself. ok is false when the
// eye lies on the line.
func DragPlane(line geometry.Line, eye geometry.Vector3) (geometry.Plane, bool) {
	normal := eye.Sub(line.ClosestPoint(eye))
	if normal.IsZero() {
		return geometry.Plane{}, false
	}
	return geometry.NewPlaneFromNormalAndPoint(normal, line.Origin), true
}

// ConstrainedPoint intersects ray with the drag plane and projects the hit
// back onto line. ok is false for degenerate views.
func ConstrainedPoint(ray geometry.Ray, line geometry.Line, eye geometry.Vector3) (geometry.Vector3, bool) {
	plane, ok := DragPlane(line, eye)
	if !ok {
		return geometry.Vector3{}, false
	}
	hit, ok := ray.IntersectPlane(plane)
	if !ok {
		return geometry.Vector3{}, false
	}
	return line.ClosestPoint(hit), true
}

// Session is an active drag on one axis.
//
// Displacement is measured from the anchor, the constrained point under the
// pointer when the drag started, and applied to the origin at that time. A
// tick never builds on the previous tick's result.
type Session struct {
	Axis  AxisID
	Start geometry.Vector3

	line     geometry.Line
	anchor   geometry.Vector3
	anchored bool
	current  geometry.Vector3
}

func newSession(axis *Axis, origin geometry.Vector3) *Session {
	return &Session{
		Axis:    axis.ID,
		Start:   origin,
		line:    geometry.NewLine(origin, axis.Direction),
		current: origin,
	}
}

// Line returns the axis line through the start origin
func (s *Session) Line() geometry.Line {
	return s.line
}

// Anchored reports whether the anchor point has been fixed
func (s *Session) Anchored() bool {
	return s.anchored
}

// Current returns the origin produced by the last successful tick
func (s *Session) Current() geometry.Vector3 {
	return s.current
}

// Update resolves a pointer ray into a new origin. When the view is
// degenerate the session keeps its last value and reports false. The first
// successful call fixes the anchor if the press could not.
func (s *Session) Update(ray geometry.Ray, eye geometry.Vector3) (geometry.Vector3, bool) {
	p, ok := ConstrainedPoint(ray, s.line, eye)
	if !ok {
		return s.current, false
	}
	if !s.anchored {
		s.anchor = p
		s.anchored = true
	}
	s.current = s.Start.Add(p.Sub(s.anchor))
	return s.current, true
}
