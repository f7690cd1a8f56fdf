// Package camera provides the orbit camera the scene is viewed through.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/shadergrid/pkg/math"
)

// Scene defaults: 75° vertical field of view, looking at the origin from
// slightly right of and below the grid.
var (
	DefaultPosition = math.Vec3{X: 0.25, Y: -0.25, Z: 1}
	DefaultTarget   = math.Vec3{}
)

const (
	DefaultFovY    = 75
	DefaultNear    = 0.1
	DefaultFar     = 100
	DefaultDamping = 0.05
)

// OrbitCamera orbits a target point. Input accumulates pending rotation and
// zoom which Update applies, easing out when Damping is set.
type OrbitCamera struct {
	Target math.Vec3

	// Spherical coordinates around Target
	Distance float32
	Pitch    float32 // elevation, radians
	Yaw      float32 // around +Y, radians; 0 looks down -Z

	// Projection
	FovY   float32 // degrees
	Near   float32
	Far    float32
	Aspect float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32 // radians per pixel
	ZoomSensitivity float32

	// Damping is the fraction of pending motion applied per 60 Hz frame.
	// Zero applies motion immediately.
	Damping float32

	pendingYaw   float32
	pendingPitch float32
	pendingZoom  float32
}

// NewOrbitCamera returns a camera at DefaultPosition looking at DefaultTarget.
func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{
		FovY:            DefaultFovY,
		Near:            DefaultNear,
		Far:             DefaultFar,
		Aspect:          16.0 / 9.0,
		MinDistance:     0.2,
		MaxDistance:     50,
		MinPitch:        -math32.Pi/2 + 0.01,
		MaxPitch:        math32.Pi/2 - 0.01,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		Damping:         DefaultDamping,
	}
	c.LookFrom(DefaultPosition, DefaultTarget)
	return c
}

// LookFrom places the camera at pos, orbiting target.
func (c *OrbitCamera) LookFrom(pos, target math.Vec3) {
	c.Target = target
	d := pos.Sub(target)
	c.Distance = d.Length()
	if c.Distance == 0 {
		c.Distance = 1
		d = math.Vec3{Z: 1}
	}
	c.Pitch = math32.Asin(d.Y / c.Distance)
	c.Yaw = math32.Atan2(d.X, d.Z)
	c.pendingYaw, c.pendingPitch, c.pendingZoom = 0, 0, 0
	c.clamp()
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sp, cp := math32.Sincos(c.Pitch)
	sy, cy := math32.Sincos(c.Yaw)
	return math.Vec3{
		X: c.Target.X + c.Distance*cp*sy,
		Y: c.Target.Y + c.Distance*sp,
		Z: c.Target.Z + c.Distance*cp*cy,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection.
func (c *OrbitCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FovY*math32.Pi/180, c.Aspect, c.Near, c.Far)
}

// SetViewport updates the aspect ratio; zero sizes are ignored.
func (c *OrbitCamera) SetViewport(width, height int) {
	if width > 0 && height > 0 {
		c.Aspect = float32(width) / float32(height)
	}
}

// HandleDrag queues rotation from a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.pendingYaw -= deltaX * c.DragSensitivity
	c.pendingPitch += deltaY * c.DragSensitivity
}

// HandleZoom queues zoom from a scroll delta; positive zooms in.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.pendingZoom += delta
}

// Update applies pending motion for a frame of dt seconds.
func (c *OrbitCamera) Update(dt float32) {
	f := c.step(dt)

	c.Yaw += c.pendingYaw * f
	c.Pitch += c.pendingPitch * f
	c.Distance -= c.pendingZoom * f * c.Distance * c.ZoomSensitivity

	keep := 1 - f
	c.pendingYaw *= keep
	c.pendingPitch *= keep
	c.pendingZoom *= keep
	c.clamp()
}

// Moving reports whether damped motion is still pending.
func (c *OrbitCamera) Moving() bool {
	const eps = 1e-5
	return math32.Abs(c.pendingYaw) > eps || math32.Abs(c.pendingPitch) > eps || math32.Abs(c.pendingZoom) > eps
}

// step returns the fraction of pending motion to apply this frame,
// normalised so the easing feels the same at any frame rate.
func (c *OrbitCamera) step(dt float32) float32 {
	if c.Damping <= 0 || c.Damping >= 1 {
		return 1
	}
	if dt <= 0 {
		return c.Damping
	}
	return 1 - math32.Pow(1-c.Damping, dt*60)
}

func (c *OrbitCamera) clamp() {
	c.Pitch = math32.Max(c.MinPitch, math32.Min(c.MaxPitch, c.Pitch))
	if c.MaxDistance > 0 {
		c.Distance = math32.Min(c.Distance, c.MaxDistance)
	}
	c.Distance = math32.Max(c.Distance, c.MinDistance)
}
