package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goarm/pkg/geometry"
)

// resetCameraView resets the camera to the configured view
func (app *App) resetCameraView() {
	cam := app.Camera.camera
	cam.Target = app.Camera.defaultTarget
	cam.Distance = app.Camera.defaultDist
	cam.Pitch = app.Camera.defaultPitch
	cam.Yaw = app.Camera.defaultYaw
}

// setCameraTopView looks straight down onto the arm
func (app *App) setCameraTopView() {
	app.Camera.camera.Pitch = math.Pi / 2
	app.Camera.camera.Yaw = 0
	app.Camera.camera.Rotate(0, 0)
}

// setCameraFrontView looks along -Z
func (app *App) setCameraFrontView() {
	app.Camera.camera.Pitch = 0
	app.Camera.camera.Yaw = 0
}

// setCameraBackView looks along +Z
func (app *App) setCameraBackView() {
	app.Camera.camera.Pitch = 0
	app.Camera.camera.Yaw = math.Pi
}

// setCameraLeftView looks along +X
func (app *App) setCameraLeftView() {
	app.Camera.camera.Pitch = 0
	app.Camera.camera.Yaw = -math.Pi / 2
}

// setCameraRightView looks along -X
func (app *App) setCameraRightView() {
	app.Camera.camera.Pitch = 0
	app.Camera.camera.Yaw = math.Pi / 2
}

// frameArm centers the camera on the current pose
func (app *App) frameArm() {
	app.Camera.camera.Frame(app.Editor.Snapshot().Bounds())
}

// updateCamera keeps the camera's viewport in step with the window
func (app *App) updateCamera() {
	app.Camera.camera.SetViewport(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
}

// raylibCamera converts the orbit camera for drawing
func (app *App) raylibCamera() rl.Camera3D {
	cam := app.Camera.camera
	return rl.Camera3D{
		Position:   toRL(cam.Position()),
		Target:     toRL(cam.Target),
		Up:         toRL(cam.Up),
		Fovy:       float32(cam.FOV * 180 / math.Pi),
		Projection: rl.CameraPerspective,
	}
}

// doPan moves the camera target in the view plane
func (app *App) doPan(delta rl.Vector2) {
	cam := app.Camera.camera
	forward := cam.Target.Sub(cam.Position()).Normalize()
	right := forward.Cross(cam.Up).Normalize()
	up := right.Cross(forward).Normalize()

	panSpeed := cam.Distance * 0.001
	move := right.Mul(-float64(delta.X) * panSpeed).Add(up.Mul(float64(delta.Y) * panSpeed))
	cam.Target = cam.Target.Add(move)
}

func toRL(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
