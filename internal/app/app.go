package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goarm/pkg/camera"
	"github.com/philipparndt/goarm/pkg/config"
	"github.com/philipparndt/goarm/pkg/editor"
	"github.com/philipparndt/goarm/pkg/gizmo"
	"github.com/philipparndt/goarm/pkg/log"
	"github.com/philipparndt/goarm/pkg/pose"
)

// App is the raylib editor window
type App struct {
	Camera      CameraState
	View        ViewSettings
	Interaction InteractionState
	FileWatch   FileWatchState
	UI          UIState
	Editor      *editor.Editor

	logger log.Logger
}

// New prepares the editor without opening a window
func New(cfg *config.Config, logger log.Logger, poseFile string) (*App, error) {
	if poseFile == "" {
		poseFile = cfg.Pose.File
	}
	initial, err := loadPose(poseFile)
	if err != nil {
		return nil, err
	}

	cam := camera.New(cfg.Camera.Position.Vector3(), cfg.Camera.Target.Vector3(), cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far)
	ed, err := editor.New(&editor.StaticScene{Camera: cam}, pose.NewStore(initial), editor.Options{
		Gizmo: gizmo.Options{
			Scale:     cfg.Gizmo.Scale,
			Tolerance: cfg.Gizmo.Tolerance,
		},
		Mode:   editor.ModeTranslate,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		Camera: CameraState{
			camera:        cam,
			defaultTarget: cam.Target,
			defaultDist:   cam.Distance,
			defaultPitch:  cam.Pitch,
			defaultYaw:    cam.Yaw,
		},
		View: ViewSettings{
			showGrid:   cfg.Preview.Grid,
			showAxes:   cfg.Preview.Axes,
			showLabels: true,
		},
		FileWatch: FileWatchState{
			sourceFile: poseFile,
			loaded:     make(chan pose.Snapshot, 1),
			loadErrors: make(chan error, 1),
		},
		Editor: ed,
		logger: logger.WithField("component", "app"),
	}, nil
}

// Run opens the window and blocks until it is closed
func Run(cfg *config.Config, logger log.Logger, poseFile string) error {
	app, err := New(cfg, logger, poseFile)
	if err != nil {
		return fmt.Errorf("failed to start editor: %w", err)
	}
	defer app.Editor.Close()

	if app.FileWatch.sourceFile != "" && cfg.Pose.Watch {
		if err := app.setupFileWatcher(); err != nil {
			app.logger.Warnf("failed to set up file watching: %v", err)
			app.logger.Warnf("auto-reload will not be available")
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	if cfg.Window.FPS > 0 {
		rl.SetTargetFPS(int32(cfg.Window.FPS))
	}
	app.UI.font = rl.GetFontDefault()
	app.logger.Infof("editor window opened (%dx%d)", cfg.Window.Width, cfg.Window.Height)

	for !rl.WindowShouldClose() {
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		// Reloaded poses are applied here so the editor only ever runs on
		// this goroutine.
		app.applyLoadedPose()

		app.updateCamera()
		app.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		cam := app.raylibCamera()
		rl.BeginMode3D(cam)
		app.drawScene()
		rl.EndMode3D()

		app.drawLabels(cam)
		app.drawUI()

		rl.EndDrawing()
	}

	app.logger.Infof("editor window closed")
	return nil
}
