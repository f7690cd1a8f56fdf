package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/shadergrid/pkg/math"
)

const eps = 1e-4

func assertVec(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func TestDefaultPosition(t *testing.T) {
	c := NewOrbitCamera()
	assertVec(t, DefaultPosition, c.Position())
	assert.Equal(t, float32(75), c.FovY)
	assert.Equal(t, float32(0.1), c.Near)
	assert.Equal(t, float32(100), c.Far)
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	c := NewOrbitCamera()
	c.LookFrom(math.Vec3{Z: 3}, math.Vec3{})
	v := c.ViewMatrix()

	// The target sits straight ahead on -Z in view space.
	p := v.TransformVec3(math.Vec3{})
	assertVec(t, math.Vec3{Z: -3}, p)
}

func TestUpdateWithoutDamping(t *testing.T) {
	c := NewOrbitCamera()
	c.Damping = 0
	c.LookFrom(math.Vec3{Z: 2}, math.Vec3{})

	c.HandleDrag(-100, 0)
	c.Update(1.0 / 60)
	assert.InDelta(t, 0.5, c.Yaw, eps)
	assert.False(t, c.Moving())
}

func TestDampingEasesToSameTotal(t *testing.T) {
	c := NewOrbitCamera()
	c.LookFrom(math.Vec3{Z: 2}, math.Vec3{})
	c.HandleDrag(-100, 0)

	c.Update(1.0 / 60)
	assert.InDelta(t, 0.5*DefaultDamping, c.Yaw, eps)
	assert.True(t, c.Moving())

	for i := 0; i < 2000 && c.Moving(); i++ {
		c.Update(1.0 / 60)
	}
	assert.InDelta(t, 0.5, c.Yaw, 1e-3)
	assert.False(t, c.Moving())
}

func TestDampingFrameRateIndependent(t *testing.T) {
	a, b := NewOrbitCamera(), NewOrbitCamera()
	a.HandleDrag(50, 0)
	b.HandleDrag(50, 0)

	a.Update(1.0 / 30)
	b.Update(1.0 / 60)
	b.Update(1.0 / 60)
	assert.InDelta(t, a.Yaw, b.Yaw, eps)
}

func TestClamps(t *testing.T) {
	c := NewOrbitCamera()
	c.Damping = 0

	c.HandleDrag(0, 100000)
	c.Update(0)
	assert.Equal(t, c.MaxPitch, c.Pitch)

	c.HandleDrag(0, -200000)
	c.Update(0)
	assert.Equal(t, c.MinPitch, c.Pitch)

	for i := 0; i < 200; i++ {
		c.HandleZoom(5)
		c.Update(0)
	}
	assert.Equal(t, c.MinDistance, c.Distance)

	for i := 0; i < 200; i++ {
		c.HandleZoom(-5)
		c.Update(0)
	}
	assert.Equal(t, c.MaxDistance, c.Distance)
}

func TestSetViewport(t *testing.T) {
	c := NewOrbitCamera()
	c.SetViewport(800, 400)
	assert.Equal(t, float32(2), c.Aspect)

	c.SetViewport(0, 400)
	assert.Equal(t, float32(2), c.Aspect)

	p := c.ProjectionMatrix()
	f := 1 / math32.Tan(75*math32.Pi/360)
	assert.InDelta(t, f/2, p[0], eps)
	assert.InDelta(t, f, p[5], eps)
}
