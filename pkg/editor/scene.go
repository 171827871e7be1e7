package editor

import (
	"github.com/philipparndt/goarm/pkg/camera"
	"github.com/philipparndt/goarm/pkg/pointer"
)

// StaticScene serves a single camera whose viewport starts at the top-left
// corner. It suits hosts that draw into their whole window and headless use.
type StaticScene struct {
	Camera *camera.Camera
}

var _ pointer.Scene = (*StaticScene)(nil)

// ActiveCamera returns the camera once it has a viewport
func (s *StaticScene) ActiveCamera() pointer.Camera {
	if s.Camera == nil || !s.Camera.Ready() {
		return nil
	}
	return s.Camera
}

// Viewport returns the camera's viewport rectangle
func (s *StaticScene) Viewport() (pointer.Rect, bool) {
	if s.Camera == nil || !s.Camera.Ready() {
		return pointer.Rect{}, false
	}
	w, h := s.Camera.Viewport()
	return pointer.Rect{Width: w, Height: h}, true
}
