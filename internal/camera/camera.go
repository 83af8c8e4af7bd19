// Package camera implements the orbit camera that frames a mesh.
package camera

import (
	"github.com/chewxy/math32"

	"solidview/internal/bounds"
	"solidview/internal/mathutil"
)

// Limits applied on every mutation.
const (
	MaxPitch    = 1.54 // ~88.2°, keeps the eye off the poles
	MinDistance = 0.05
	MaxDistance = 1e6
	MinRadius   = 1e-4
	MinZNear    = 0.001

	// FitPadding scales the fitted distance to leave a margin around the object.
	FitPadding = 1.15
	// FitDepthRadii is how many radii the clip planes sit in front of and
	// behind the fitted distance.
	FitDepthRadii = 2.5
)

// Defaults for a fresh camera.
const (
	DefaultDistance = 2.0
	DefaultFovYDeg  = 45
	DefaultZNear    = 0.01
	DefaultZFar     = 1000
)

// Orbit is a camera orbiting Target at Distance, positioned by Yaw (around +Y)
// and Pitch. All angles are radians.
type Orbit struct {
	Target   mathutil.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32
	FovY     float32
	ZNear    float32
	ZFar     float32
}

// New returns a camera looking at the origin from +Z.
func New() *Orbit {
	return &Orbit{
		Distance: DefaultDistance,
		FovY:     mathutil.Deg2Rad(DefaultFovYDeg),
		ZNear:    DefaultZNear,
		ZFar:     DefaultZFar,
	}
}

// ViewUp is the fixed world up vector.
func (c *Orbit) ViewUp() mathutil.Vec3 {
	return mathutil.Vec3{0, 1, 0}
}

// Eye returns the camera position.
func (c *Orbit) Eye() mathutil.Vec3 {
	sy, cy := math32.Sincos(c.Yaw)
	sp, cp := math32.Sincos(c.Pitch)
	dir := mathutil.Vec3{cp * sy, sp, cp * cy}
	return c.Target.Add(dir.Scale(c.Distance))
}

// Orbit rotates around the target. Yaw accumulates freely, pitch is clamped
// to ±MaxPitch.
func (c *Orbit) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = mathutil.Clamp(c.Pitch+dPitch, -MaxPitch, MaxPitch)
}

// Zoom multiplies the distance: factor > 1 moves away, < 1 moves closer.
func (c *Orbit) Zoom(factor float32) {
	c.Distance = mathutil.Clamp(c.Distance*factor, MinDistance, MaxDistance)
}

// Pan moves the target along the current view plane.
func (c *Orbit) Pan(right, up float32) {
	camRight, camUp := c.basis()
	c.Target = c.Target.Add(camRight.Scale(right)).Add(camUp.Scale(up))
}

func (c *Orbit) basis() (right, up mathutil.Vec3) {
	forward := c.Target.Sub(c.Eye()).Normalize()
	right = forward.Cross(c.ViewUp()).Normalize()
	up = right.Cross(forward).Normalize()
	return right, up
}

// FitToBounds centers on b and picks the distance at which its bounding
// sphere fits the vertical field of view, and the horizontal one when the
// viewport is portrait. Clip planes bracket the object.
func (c *Orbit) FitToBounds(b bounds.Box, aspect float32) {
	c.Target = b.Center()
	r := math32.Max(b.Radius(), MinRadius)

	tanY := math32.Tan(c.FovY * 0.5)
	dist := r / tanY
	if tanX := tanY * aspect; tanX > 0 {
		dist = math32.Max(dist, r/tanX)
	}

	c.Distance = dist * FitPadding
	c.ZNear = math32.Max(c.Distance-r*FitDepthRadii, MinZNear)
	c.ZFar = math32.Max(c.Distance+r*FitDepthRadii, c.ZNear+1)
}

// ViewMatrix returns the look-at matrix for the current pose.
func (c *Orbit) ViewMatrix() mathutil.Mat4 {
	return mathutil.LookAt(c.Eye(), c.Target, c.ViewUp())
}

// ProjectionMatrix returns the perspective matrix for a viewport aspect ratio.
func (c *Orbit) ProjectionMatrix(aspect float32) mathutil.Mat4 {
	return mathutil.Perspective(c.FovY, aspect, c.ZNear, c.ZFar)
}
