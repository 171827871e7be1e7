package geometry

// Plane is the set of points p with Normal·p + Constant = 0
type Plane struct {
	Normal   Vector3
	Constant float64
}

// NewPlaneFromNormalAndPoint builds the plane through point facing normal.
// The normal is normalized; a zero normal yields a degenerate plane that no
// ray intersects.
func NewPlaneFromNormalAndPoint(normal, point Vector3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, Constant: -point.Dot(n)}
}

// DistanceToPoint returns the signed distance from p to the plane
func (pl Plane) DistanceToPoint(p Vector3) float64 {
	return pl.Normal.Dot(p) + pl.Constant
}

// Degenerate reports whether the plane has no usable normal
func (pl Plane) Degenerate() bool {
	return pl.Normal.IsZero()
}
