package geometry

// Line is an infinite line through Origin along a unit Direction
type Line struct {
	Origin    Vector3
	Direction Vector3
}

// NewLine creates a line, normalizing the direction
func NewLine(origin, direction Vector3) Line {
	return Line{Origin: origin, Direction: direction.Normalize()}
}

// Parameter returns t such that Origin + Direction*t is the point on the
// line closest to p
func (l Line) Parameter(p Vector3) float64 {
	return p.Sub(l.Origin).Dot(l.Direction)
}

// At returns the point at parameter t
func (l Line) At(t float64) Vector3 {
	return l.Origin.Add(l.Direction.Mul(t))
}

// ClosestPoint projects p onto the line
func (l Line) ClosestPoint(p Vector3) Vector3 {
	return l.At(l.Parameter(p))
}

// Distance returns the perpendicular distance from p to the line
func (l Line) Distance(p Vector3) float64 {
	return p.Distance(l.ClosestPoint(p))
}
