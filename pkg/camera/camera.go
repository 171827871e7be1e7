package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/goarm/pkg/geometry"
)

// Camera is an orbiting perspective camera. The position is derived from the
// target, distance and the two orbit angles; the matrices are rebuilt from
// those on demand so callers never observe a stale transform.
type Camera struct {
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Vertical field of view in radians
	Near     float64
	Far      float64
	Distance float64
	Pitch    float64 // Elevation above the target's horizontal plane
	Yaw      float64 // Rotation around the up axis

	width  float64
	height float64
}

// maxPitch keeps the view direction away from the up vector
const maxPitch = math.Pi/2 - 0.01

// New creates a camera at position looking at target.
// fovDegrees is the vertical field of view.
func New(position, target geometry.Vector3, fovDegrees, near, far float64) *Camera {
	c := &Camera{
		Target: target,
		Up:     geometry.UnitY,
		FOV:    mgl64.DegToRad(fovDegrees),
		Near:   near,
		Far:    far,
	}
	c.SetPosition(position)
	return c
}

// SetPosition places the camera, converting to orbit coordinates around Target
func (c *Camera) SetPosition(position geometry.Vector3) {
	offset := position.Sub(c.Target)
	c.Distance = offset.Length()
	if c.Distance == 0 {
		c.Distance = 1
		c.Pitch, c.Yaw = 0, 0
		return
	}
	c.Pitch = math.Asin(clamp(offset.Y/c.Distance, -1, 1))
	c.Yaw = math.Atan2(offset.X, offset.Z)
	c.clampPitch()
}

// Position returns the eye position in world space
func (c *Camera) Position() geometry.Vector3 {
	x := c.Distance * math.Cos(c.Pitch) * math.Sin(c.Yaw)
	y := c.Distance * math.Sin(c.Pitch)
	z := c.Distance * math.Cos(c.Pitch) * math.Cos(c.Yaw)
	return c.Target.Add(geometry.NewVector3(x, y, z))
}

// SetViewport records the pixel size of the surface the camera renders to
func (c *Camera) SetViewport(width, height float64) {
	c.width = width
	c.height = height
}

// Viewport returns the pixel size set by SetViewport
func (c *Camera) Viewport() (width, height float64) {
	return c.width, c.height
}

// Ready reports whether the camera has a usable viewport
func (c *Camera) Ready() bool {
	return c.width > 0 && c.height > 0
}

// Aspect returns width / height, or 1 when no viewport is set
func (c *Camera) Aspect() float64 {
	if !c.Ready() {
		return 1
	}
	return c.width / c.height
}

// Rotate orbits the camera by the given angle deltas
func (c *Camera) Rotate(deltaPitch, deltaYaw float64) {
	c.Pitch += deltaPitch
	c.Yaw += deltaYaw
	c.clampPitch()
}

// Zoom scales the orbit distance, delta > 0 moves away from the target
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
}

// Frame points the camera at the center of bbox from a distance that keeps
// the whole box in view
func (c *Camera) Frame(bbox geometry.BoundingBox) {
	if bbox.Empty() {
		return
	}
	c.Target = bbox.Center()
	size := bbox.Size()
	c.Distance = math.Max(math.Max(size.X, math.Max(size.Y, size.Z))*2.0, 1)
}

// View returns the world-to-camera matrix
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(toVec(c.Position()), toVec(c.Target), toVec(c.Up))
}

// Projection returns the perspective matrix for the current viewport
func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(c.FOV, c.Aspect(), c.Near, c.Far)
}

// Project maps a world point to viewport pixels. depth is the distance in
// front of the camera; points with depth <= 0 are behind it.
func (c *Camera) Project(point geometry.Vector3) (x, y, depth float64) {
	view := c.View()
	eye := view.Mul4x1(toVec(point).Vec4(1))
	clip := c.Projection().Mul4x1(eye)
	if clip.W() == 0 {
		return 0, 0, 0
	}
	ndc := clip.Vec3().Mul(1 / clip.W())

	x = (ndc.X() + 1) / 2 * c.width
	y = (1 - ndc.Y()) / 2 * c.height
	return x, y, -eye.Z()
}

// Unproject converts normalized device coordinates (both in [-1, 1], y up)
// into a world-space ray starting at the eye. ok is false while the camera
// has no viewport.
func (c *Camera) Unproject(ndcX, ndcY float64) (geometry.Ray, bool) {
	if !c.Ready() {
		return geometry.Ray{}, false
	}
	inv := c.Projection().Mul4(c.View()).Inv()
	p := inv.Mul4x1(mgl64.Vec4{ndcX, ndcY, 0.5, 1})
	if p.W() == 0 {
		return geometry.Ray{}, false
	}
	world := fromVec(p.Vec3().Mul(1 / p.W()))

	eye := c.Position()
	dir := world.Sub(eye)
	if dir.IsZero() {
		return geometry.Ray{}, false
	}
	return geometry.NewRay(eye, dir), true
}

func (c *Camera) clampPitch() {
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func toVec(v geometry.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromVec(v mgl64.Vec3) geometry.Vector3 {
	return geometry.NewVector3(v.X(), v.Y(), v.Z())
}
