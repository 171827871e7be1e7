package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goarm/pkg/editor"
	"github.com/philipparndt/goarm/pkg/pointer"
)

// handleInput processes keyboard and mouse input for one frame
func (app *App) handleInput() {
	app.handleKeys()
	app.handlePointer()
	app.handleCameraControls()
}

func (app *App) handleKeys() {
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.frameArm()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		app.setCameraBackView()
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		app.setCameraLeftView()
	}
	if rl.IsKeyPressed(rl.KeyFour) {
		app.setCameraRightView()
	}

	if rl.IsKeyPressed(rl.KeyG) {
		app.View.showGrid = !app.View.showGrid
	}
	if rl.IsKeyPressed(rl.KeyA) {
		app.View.showAxes = !app.View.showAxes
	}
	if rl.IsKeyPressed(rl.KeyL) {
		app.View.showLabels = !app.View.showLabels
	}
	if rl.IsKeyPressed(rl.KeyM) {
		if app.Editor.Mode() == editor.ModeTranslate {
			app.Editor.SetMode(editor.ModeView)
		} else {
			app.Editor.SetMode(editor.ModeTranslate)
		}
	}
	if rl.IsKeyPressed(rl.KeyR) {
		if err := app.Editor.ResetPose(); err != nil {
			app.logger.Errorf("failed to reset pose: %v", err)
		}
	}
}

// handlePointer turns raylib mouse state into pointer events. Leaving the
// window counts as losing the pointer.
func (app *App) handlePointer() {
	onScreen := rl.IsCursorOnScreen()
	if !onScreen {
		if app.Interaction.onScreen {
			app.Editor.Dispatch(pointer.Event{Kind: pointer.Leave})
			app.Interaction.orbiting = false
			app.Interaction.isPanning = false
		}
		app.Interaction.onScreen = false
		app.Interaction.hasMousePos = false
		return
	}
	app.Interaction.onScreen = true

	pos := rl.GetMousePosition()
	if !app.Interaction.hasMousePos || pos != app.Interaction.lastMousePos {
		app.Editor.Dispatch(pointer.Event{Kind: pointer.Move, X: float64(pos.X), Y: float64(pos.Y)})
		app.Interaction.lastMousePos = pos
		app.Interaction.hasMousePos = true
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		switch {
		case shiftPressed:
			app.Interaction.isPanning = true
		case app.Editor.Hovering():
			app.Editor.Dispatch(pointer.Event{Kind: pointer.Down, X: float64(pos.X), Y: float64(pos.Y)})
		default:
			app.Interaction.orbiting = true
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.Editor.Dispatch(pointer.Event{Kind: pointer.Up, X: float64(pos.X), Y: float64(pos.Y)})
		app.Interaction.orbiting = false
		app.Interaction.isPanning = false
	}
}

// handleCameraControls orbits, pans and zooms unless the gizmo owns the
// pointer
func (app *App) handleCameraControls() {
	if app.Editor.CameraLocked() {
		return
	}
	cam := app.Camera.camera

	delta := rl.GetMouseDelta()
	if app.Interaction.orbiting && (delta.X != 0 || delta.Y != 0) {
		cam.Rotate(-float64(delta.Y)*0.01, float64(delta.X)*0.01)
	}
	if (app.Interaction.isPanning && rl.IsMouseButtonDown(rl.MouseLeftButton)) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		if delta.X != 0 || delta.Y != 0 {
			app.doPan(delta)
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		cam.Zoom(-float64(wheel) * 0.03)
	}
}
