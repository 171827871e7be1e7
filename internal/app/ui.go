package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goarm/pkg/editor"
	"github.com/philipparndt/goarm/pkg/gizmo"
	"github.com/philipparndt/goarm/version"
)

// drawLabels writes each joint's angle next to it on screen
func (app *App) drawLabels(cam rl.Camera3D) {
	if !app.View.showLabels {
		return
	}
	fontSize := float32(14)
	for _, label := range app.Editor.Overlay().Labels {
		// Skip joints behind the camera.
		if _, _, depth := app.Camera.camera.Project(label.Position); depth <= 0 {
			continue
		}
		screen := rl.GetWorldToScreen(toRL(label.Position), cam)
		text := fmt.Sprintf("%.2f", label.Angle)
		rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: screen.X + 8, Y: screen.Y - 8}, fontSize, 1, rl.White)
	}
}

// drawUI draws the status panel
func (app *App) drawUI() {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	ed := app.Editor
	group := ed.Group()

	// === POSE ===
	rl.DrawTextEx(app.UI.font, "Pose:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	ee := ed.EndEffector()
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  End effector: (%.2f, %.2f, %.2f)", ee.X, ee.Y, ee.Z), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Joints: %d", len(ed.Snapshot().Vertices)), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight
	if app.FileWatch.sourceFile != "" {
		rl.DrawTextEx(app.UI.font, fmt.Sprintf("  File: %s", app.FileWatch.sourceFile), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
		y += lineHeight
	}
	y += lineHeight

	// === GIZMO ===
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("Mode: %s", ed.Mode()), rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	if ed.Mode() == editor.ModeTranslate {
		status := "idle"
		statusColor := rl.LightGray
		if id := group.Dragging(); id != gizmo.AxisNone {
			status = fmt.Sprintf("dragging %s", id)
			statusColor = rl.Green
		} else if id := group.Hovered(); id != gizmo.AxisNone {
			status = fmt.Sprintf("hovering %s", id)
			statusColor = rl.NewColor(144, 238, 144, 255)
		}
		rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Gizmo: %s", status), rl.Vector2{X: 10, Y: y}, fontSize14, 1, statusColor)
		y += lineHeight
	}
	y += lineHeight

	// === VIEW ===
	rl.DrawTextEx(app.UI.font, "View:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, "  Home: Reset | F: Frame arm | T: Top", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, "  1: Front | 2: Back | 3: Left | 4: Right", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  G: Grid (%s) | A: Axes (%s) | L: Labels (%s)",
		onOff(app.View.showGrid), onOff(app.View.showAxes), onOff(app.View.showLabels)), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
	y += lineHeight * 2

	// === EDIT ===
	rl.DrawTextEx(app.UI.font, "Edit:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, "  Drag axis: Move end effector", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, "  Left Drag: Rotate | Shift+Drag: Pan | Wheel: Zoom", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, "  M: Toggle translate/view | R: Reset pose", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)

	// Reload status in the top-right corner
	if app.FileWatch.lastReloadErr != nil || time.Since(app.FileWatch.lastReload) < 2*time.Second {
		text := "Pose reloaded"
		textColor := rl.Green
		if app.FileWatch.lastReloadErr != nil {
			text = fmt.Sprintf("Reload failed: %v", app.FileWatch.lastReloadErr)
			textColor = rl.NewColor(255, 100, 100, 255)
		}
		size := rl.MeasureTextEx(app.UI.font, text, fontSize14, 1)
		x := float32(rl.GetScreenWidth()) - size.X - 20
		rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: x, Y: 20}, fontSize14, 1, textColor)
	}

	// Version and FPS in bottom-left corner
	bottomY := float32(rl.GetScreenHeight()) - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
