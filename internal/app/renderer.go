package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goarm/pkg/editor"
	"github.com/philipparndt/goarm/pkg/geometry"
	"github.com/philipparndt/goarm/pkg/gizmo"
)

const (
	gridSlices     = 20
	gridSpacing    = 10
	axesLength     = 100
	jointRadius    = 0.6
	axisRadius     = 0.15
	activeAxisGrow = 1.6
)

// drawScene draws the helpers, the arm and the gizmo. Must be called between
// BeginMode3D and EndMode3D.
func (app *App) drawScene() {
	if app.View.showGrid {
		rl.DrawGrid(gridSlices, gridSpacing)
	}
	if app.View.showAxes {
		origin := geometry.Vector3{}
		for i, dir := range []geometry.Vector3{geometry.UnitX, geometry.UnitY, geometry.UnitZ} {
			rl.DrawLine3D(toRL(origin), toRL(dir.Mul(axesLength)), toRLColor(editor.AxisColors[i]))
		}
	}

	overlay := app.Editor.Overlay()
	for _, seg := range overlay.Arm {
		rl.DrawLine3D(toRL(seg.From), toRL(seg.To), toRLColor(seg.Color))
	}
	for _, joint := range overlay.Joints {
		rl.DrawSphere(toRL(joint), jointRadius, toRLColor(editor.JointColor))
	}

	for _, line := range overlay.Axes {
		radius := float32(axisRadius)
		if line.State != gizmo.Idle {
			radius *= activeAxisGrow
		}
		// Cylinders keep the thin axes visible at any zoom level.
		rl.DrawCylinderEx(toRL(line.From), toRL(line.To), radius, radius, 8, toRLColor(line.Color))
	}
}

func toRLColor(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
