package pointer

import "github.com/philipparndt/goarm/pkg/geometry"

// Camera is the active viewpoint the pointer is cast from
type Camera interface {
	Position() geometry.Vector3
	// Unproject returns the world ray through normalized device coordinates
	// (x right, y up, both in [-1, 1]).
	Unproject(ndcX, ndcY float64) (geometry.Ray, bool)
}

// Rect is the viewport's bounding rectangle in the same pixel space as
// pointer events
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Scene exposes the host's camera and viewport to the manipulation code.
// Either may be unavailable while the host is mounting or tearing down.
type Scene interface {
	// ActiveCamera returns nil while no camera is mounted
	ActiveCamera() Camera
	Viewport() (Rect, bool)
}

// NDC maps a pixel position inside r to normalized device coordinates
func (r Rect) NDC(x, y float64) (float64, float64) {
	return (x-r.Left)/r.Width*2 - 1, -(y-r.Top)/r.Height*2 + 1
}

// Contains reports whether the pixel lies inside the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Left+r.Width && y >= r.Top && y <= r.Top+r.Height
}

func (r Rect) valid() bool {
	return r.Width > 0 && r.Height > 0
}
