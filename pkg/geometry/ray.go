package geometry

import "math"

// Ray is a half-line starting at Origin and extending along a unit Direction
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray, normalizing the direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ClosestPointToPoint returns the point on the ray nearest to p.
// Points behind the origin clamp to the origin.
func (r Ray) ClosestPointToPoint(p Vector3) Vector3 {
	t := p.Sub(r.Origin).Dot(r.Direction)
	if t < 0 {
		return r.Origin
	}
	return r.At(t)
}

// SegmentApproach describes the closest approach between a ray and a segment
type SegmentApproach struct {
	DistanceSq float64
	OnRay      Vector3
	OnSegment  Vector3
}

// DistanceSqToSegment finds the closest points between the ray and the segment
// v0-v1. The segment is parameterized around its center so that both the ray
// parameter (s0 >= 0) and the segment parameter (|s1| <= extent) can be
// clamped region by region.
func (r Ray) DistanceSqToSegment(v0, v1 Vector3) SegmentApproach {
	center := v0.Add(v1).Mul(0.5)
	segDir := v1.Sub(v0).Normalize()
	extent := v0.Distance(v1) * 0.5
	diff := r.Origin.Sub(center)

	a01 := -r.Direction.Dot(segDir)
	b0 := diff.Dot(r.Direction)
	b1 := -diff.Dot(segDir)
	det := math.Abs(1 - a01*a01)

	clampSeg := func(s float64) float64 {
		return math.Min(math.Max(-extent, s), extent)
	}

	var s0, s1 float64
	if det > Epsilon {
		s0 = a01*b1 - b0
		s1 = a01*b0 - b1
		extDet := extent * det

		switch {
		case s0 >= 0 && s1 >= -extDet && s1 <= extDet:
			// interior of both
			s0 /= det
			s1 /= det
		case s0 >= 0 && s1 > extDet:
			s1 = extent
			s0 = math.Max(0, -(a01*s1 + b0))
		case s0 >= 0:
			s1 = -extent
			s0 = math.Max(0, -(a01*s1 + b0))
		case s1 <= -extDet:
			s0 = math.Max(0, -(-a01*extent + b0))
			if s0 > 0 {
				s1 = -extent
			} else {
				s1 = clampSeg(-b1)
			}
		case s1 <= extDet:
			s0 = 0
			s1 = clampSeg(-b1)
		default:
			s0 = math.Max(0, -(a01*extent + b0))
			if s0 > 0 {
				s1 = extent
			} else {
				s1 = clampSeg(-b1)
			}
		}
	} else {
		// parallel
		if a01 > 0 {
			s1 = -extent
		} else {
			s1 = extent
		}
		s0 = math.Max(0, -(a01*s1 + b0))
	}

	onRay := r.At(s0)
	onSegment := center.Add(segDir.Mul(s1))
	return SegmentApproach{
		DistanceSq: onRay.Sub(onSegment).LengthSq(),
		OnRay:      onRay,
		OnSegment:  onSegment,
	}
}

// IntersectPlane returns the point where the ray crosses the plane.
// ok is false when the ray is parallel to the plane, the plane is degenerate,
// or the crossing lies behind the ray origin.
func (r Ray) IntersectPlane(pl Plane) (Vector3, bool) {
	if pl.Degenerate() {
		return Vector3{}, false
	}
	denom := pl.Normal.Dot(r.Direction)
	if math.Abs(denom) < Epsilon {
		if pl.DistanceToPoint(r.Origin) == 0 {
			return r.Origin, true
		}
		return Vector3{}, false
	}
	t := -(r.Origin.Dot(pl.Normal) + pl.Constant) / denom
	if t < 0 {
		return Vector3{}, false
	}
	return r.At(t), true
}
