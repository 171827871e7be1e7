package geometry

import (
	"math"
	"testing"
)

func TestRayClosestPointToPoint(t *testing.T) {
	r := NewRay(NewVector3(0, 0, 0), NewVector3(2, 0, 0))

	if got, want := r.ClosestPointToPoint(NewVector3(5, 3, 0)), NewVector3(5, 0, 0); !got.ApproxEqual(want, 1e-12) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := r.ClosestPointToPoint(NewVector3(-5, 3, 0)); got != r.Origin {
		t.Errorf("point behind the ray should clamp to origin, got %v", got)
	}
}

func TestRayDistanceSqToSegment(t *testing.T) {
	tests := []struct {
		name      string
		ray       Ray
		v0, v1    Vector3
		wantDist  float64
		wantOnSeg Vector3
	}{
		{
			name:      "crossing above the middle",
			ray:       NewRay(NewVector3(5, 3, 10), NewVector3(0, 0, -1)),
			v0:        NewVector3(0, 0, 0),
			v1:        NewVector3(10, 0, 0),
			wantDist:  3,
			wantOnSeg: NewVector3(5, 0, 0),
		},
		{
			name:      "passing beyond the end",
			ray:       NewRay(NewVector3(14, 0, 10), NewVector3(0, 0, -1)),
			v0:        NewVector3(0, 0, 0),
			v1:        NewVector3(10, 0, 0),
			wantDist:  4,
			wantOnSeg: NewVector3(10, 0, 0),
		},
		{
			name:      "segment behind the origin",
			ray:       NewRay(NewVector3(5, 0, 2), NewVector3(0, 0, 1)),
			v0:        NewVector3(0, 0, 0),
			v1:        NewVector3(10, 0, 0),
			wantDist:  2,
			wantOnSeg: NewVector3(5, 0, 0),
		},
		{
			name:      "parallel to the segment",
			ray:       NewRay(NewVector3(-5, 1, 0), NewVector3(1, 0, 0)),
			v0:        NewVector3(0, 0, 0),
			v1:        NewVector3(10, 0, 0),
			wantDist:  1,
			wantOnSeg: NewVector3(10, 0, 0),
		},
		{
			name:      "hits the segment",
			ray:       NewRay(NewVector3(3, 5, 0), NewVector3(0, -1, 0)),
			v0:        NewVector3(0, 0, 0),
			v1:        NewVector3(10, 0, 0),
			wantDist:  0,
			wantOnSeg: NewVector3(3, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ray.DistanceSqToSegment(tt.v0, tt.v1)
			if math.Abs(math.Sqrt(got.DistanceSq)-tt.wantDist) > 1e-9 {
				t.Errorf("distance: expected %v, got %v", tt.wantDist, math.Sqrt(got.DistanceSq))
			}
			if tt.name != "parallel to the segment" && !got.OnSegment.ApproxEqual(tt.wantOnSeg, 1e-9) {
				t.Errorf("point on segment: expected %v, got %v", tt.wantOnSeg, got.OnSegment)
			}
		})
	}
}

func TestRayIntersectPlane(t *testing.T) {
	pl := NewPlaneFromNormalAndPoint(NewVector3(0, 0, 1), NewVector3(0, 0, 2))

	hit, ok := NewRay(NewVector3(1, 1, 10), NewVector3(0, 0, -1)).IntersectPlane(pl)
	if !ok {
		t.Fatal("expected an intersection")
	}
	if want := NewVector3(1, 1, 2); !hit.ApproxEqual(want, 1e-12) {
		t.Errorf("expected %v, got %v", want, hit)
	}

	if _, ok := NewRay(NewVector3(1, 1, 10), NewVector3(1, 0, 0)).IntersectPlane(pl); ok {
		t.Error("parallel ray must not intersect")
	}
	if _, ok := NewRay(NewVector3(1, 1, 10), NewVector3(0, 0, 1)).IntersectPlane(pl); ok {
		t.Error("plane behind the ray must not intersect")
	}
	if _, ok := NewRay(NewVector3(1, 1, 10), NewVector3(0, 0, -1)).IntersectPlane(Plane{}); ok {
		t.Error("degenerate plane must not intersect")
	}
}

func TestLineClosestPoint(t *testing.T) {
	l := NewLine(NewVector3(0, 20, 0), NewVector3(3, 0, 0))

	p := NewVector3(7, 25, -4)
	if got, want := l.ClosestPoint(p), NewVector3(7, 20, 0); !got.ApproxEqual(want, 1e-12) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if d := l.Distance(p); math.Abs(d-math.Sqrt(41)) > 1e-12 {
		t.Errorf("expected distance %v, got %v", math.Sqrt(41), d)
	}
	if got := l.Parameter(p); math.Abs(got-7) > 1e-12 {
		t.Errorf("expected parameter 7, got %v", got)
	}
}
