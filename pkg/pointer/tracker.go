package pointer

import "github.com/philipparndt/goarm/pkg/geometry"

// Tracker keeps the world ray under the pointer up to date.
// It holds the last ray that could be computed; updates that arrive while
// the camera or viewport is missing leave it untouched.
type Tracker struct {
	scene Scene
	ray   geometry.Ray
	valid bool
}

// NewTracker creates a tracker reading camera and viewport from scene
func NewTracker(scene Scene) *Tracker {
	return &Tracker{scene: scene}
}

// Update recomputes the ray for a pointer at pixel (x, y).
// It returns false when the update was skipped.
func (t *Tracker) Update(x, y float64) bool {
	cam := t.scene.ActiveCamera()
	if cam == nil {
		return false
	}
	rect, ok := t.scene.Viewport()
	if !ok || !rect.valid() {
		return false
	}

	ndcX, ndcY := rect.NDC(x, y)
	ray, ok := cam.Unproject(ndcX, ndcY)
	if !ok {
		return false
	}
	t.ray = ray
	t.valid = true
	return true
}

// Ray returns the last computed ray. ok is false until the first
// successful update.
func (t *Tracker) Ray() (geometry.Ray, bool) {
	return t.ray, t.valid
}

// Scene returns the scene the tracker reads from
func (t *Tracker) Scene() Scene {
	return t.scene
}
