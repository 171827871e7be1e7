package camera

import (
	"math"
	"testing"

	"github.com/philipparndt/goarm/pkg/geometry"
)

func newTestCamera() *Camera {
	c := New(geometry.NewVector3(80, 80, 80), geometry.Vector3{}, 50, 0.1, 2000)
	c.SetViewport(800, 600)
	return c
}

func TestCameraPosition(t *testing.T) {
	c := newTestCamera()

	if got, want := c.Position(), geometry.NewVector3(80, 80, 80); !got.ApproxEqual(want, 1e-9) {
		t.Errorf("Position: expected %v, got %v", want, got)
	}
}

func TestCameraProjectTarget(t *testing.T) {
	c := newTestCamera()

	x, y, depth := c.Project(geometry.Vector3{})
	if math.Abs(x-400) > 1e-6 || math.Abs(y-300) > 1e-6 {
		t.Errorf("target should project to the viewport center, got (%v, %v)", x, y)
	}
	if want := math.Sqrt(3 * 80 * 80); math.Abs(depth-want) > 1e-6 {
		t.Errorf("depth: expected %v, got %v", want, depth)
	}

	// +Y points up on screen
	_, yUp, _ := c.Project(geometry.NewVector3(0, 10, 0))
	if yUp >= y {
		t.Errorf("expected a point above the target to have smaller screen y, got %v >= %v", yUp, y)
	}
}

func TestCameraUnprojectCenter(t *testing.T) {
	c := newTestCamera()

	ray, ok := c.Unproject(0, 0)
	if !ok {
		t.Fatal("expected a ray")
	}
	if !ray.Origin.ApproxEqual(c.Position(), 1e-9) {
		t.Errorf("ray origin: expected %v, got %v", c.Position(), ray.Origin)
	}
	want := geometry.NewVector3(-1, -1, -1).Normalize()
	if !ray.Direction.ApproxEqual(want, 1e-9) {
		t.Errorf("ray direction: expected %v, got %v", want, ray.Direction)
	}
}

func TestCameraProjectUnprojectRoundTrip(t *testing.T) {
	c := newTestCamera()
	w, h := c.Viewport()

	points := []geometry.Vector3{
		geometry.NewVector3(5, 0, 0),
		geometry.NewVector3(0, 7, 0),
		geometry.NewVector3(-3, 20, 12),
	}
	for _, p := range points {
		x, y, _ := c.Project(p)
		ray, ok := c.Unproject(2*x/w-1, 1-2*y/h)
		if !ok {
			t.Fatalf("no ray for %v", p)
		}
		if d := math.Sqrt(ray.DistanceSqToSegment(p, p).DistanceSq); d > 1e-6 {
			t.Errorf("ray through projection of %v misses it by %v", p, d)
		}
	}
}

func TestCameraUnprojectWithoutViewport(t *testing.T) {
	c := New(geometry.NewVector3(0, 0, 10), geometry.Vector3{}, 50, 0.1, 100)

	if _, ok := c.Unproject(0, 0); ok {
		t.Error("expected no ray before the viewport is known")
	}
}

func TestCameraRotateClampsPitch(t *testing.T) {
	c := newTestCamera()
	c.Rotate(10, 0)

	if c.Pitch > maxPitch {
		t.Errorf("pitch %v exceeds limit %v", c.Pitch, maxPitch)
	}
	if d := c.Position().Distance(c.Target); math.Abs(d-c.Distance) > 1e-9 {
		t.Errorf("orbit distance changed: expected %v, got %v", c.Distance, d)
	}
}

func TestCameraFrame(t *testing.T) {
	c := newTestCamera()
	c.Frame(geometry.BoundingBoxOf([]geometry.Vector3{{}, geometry.NewVector3(0, 50, 0)}))

	if want := geometry.NewVector3(0, 25, 0); !c.Target.ApproxEqual(want, 1e-12) {
		t.Errorf("target: expected %v, got %v", want, c.Target)
	}
	if c.Distance != 100 {
		t.Errorf("distance: expected 100, got %v", c.Distance)
	}
}
