package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goarm/pkg/camera"
	"github.com/philipparndt/goarm/pkg/geometry"
	"github.com/philipparndt/goarm/pkg/pose"
	"github.com/philipparndt/goarm/pkg/watcher"
)

// CameraState holds the orbit camera and the view it resets to
type CameraState struct {
	camera        *camera.Camera
	defaultTarget geometry.Vector3
	defaultDist   float64
	defaultPitch  float64
	defaultYaw    float64
}

// ViewSettings holds display toggles
type ViewSettings struct {
	showGrid   bool
	showAxes   bool
	showLabels bool
}

// InteractionState holds mouse state between frames
type InteractionState struct {
	lastMousePos rl.Vector2
	hasMousePos  bool
	onScreen     bool
	orbiting     bool
	isPanning    bool
}

// FileWatchState holds pose file watching and reload state
type FileWatchState struct {
	sourceFile    string
	fileWatcher   *watcher.FileWatcher
	loaded        chan pose.Snapshot
	loadErrors    chan error
	lastReload    time.Time
	lastReloadErr error
}

// UIState holds UI resources
type UIState struct {
	font rl.Font
}
