package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"solidview/internal/bounds"
	"solidview/internal/mathutil"
)

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, mathutil.Vec3{}, c.Target)
	assert.Equal(t, float32(2), c.Distance)
	assert.Equal(t, float32(0), c.Yaw)
	assert.Equal(t, float32(0), c.Pitch)
	assert.InDelta(t, math32.Pi/4, c.FovY, 1e-6)
	assert.Equal(t, float32(0.01), c.ZNear)
	assert.Equal(t, float32(1000), c.ZFar)

	eye := c.Eye()
	assert.InDelta(t, 0, eye[0], 1e-6)
	assert.InDelta(t, 0, eye[1], 1e-6)
	assert.InDelta(t, 2, eye[2], 1e-6)
	assert.Equal(t, mathutil.Vec3{0, 1, 0}, c.ViewUp())
}

func TestEyeSpherical(t *testing.T) {
	c := New()
	c.Target = mathutil.Vec3{1, 1, 1}
	c.Yaw = math32.Pi / 2
	eye := c.Eye()
	assert.InDelta(t, 3, eye[0], 1e-5)
	assert.InDelta(t, 1, eye[1], 1e-5)
	assert.InDelta(t, 1, eye[2], 1e-5)

	c.Yaw = 0
	c.Pitch = 1.0
	eye = c.Eye()
	assert.InDelta(t, 2, eye.Sub(c.Target).Len(), 1e-5)
	assert.InDelta(t, 1+2*math32.Sin(1), eye[1], 1e-5)
}

func TestOrbitClampsPitch(t *testing.T) {
	c := New()
	for i := 0; i < 100; i++ {
		c.Orbit(0.3, 0.7)
		assert.LessOrEqual(t, c.Pitch, float32(MaxPitch))
	}
	assert.Equal(t, float32(MaxPitch), c.Pitch)
	assert.InDelta(t, 30, c.Yaw, 1e-3)

	c.Orbit(0, -1e9)
	assert.Equal(t, float32(-MaxPitch), c.Pitch)
	assert.True(t, c.Eye().IsFinite())
}

func TestZoomClampsDistance(t *testing.T) {
	c := New()
	c.Zoom(2)
	assert.InDelta(t, 4, c.Distance, 1e-6)
	c.Zoom(0.5)
	assert.InDelta(t, 2, c.Distance, 1e-6)

	for i := 0; i < 200; i++ {
		c.Zoom(0.1)
	}
	assert.Equal(t, float32(MinDistance), c.Distance)
	for i := 0; i < 200; i++ {
		c.Zoom(10)
	}
	assert.Equal(t, float32(MaxDistance), c.Distance)

	c.Zoom(0)
	assert.Equal(t, float32(MinDistance), c.Distance)
	c.Zoom(-3)
	assert.Equal(t, float32(MinDistance), c.Distance)
}

func TestPanIsViewRelative(t *testing.T) {
	c := New()
	c.Pan(1, 0)
	assert.InDelta(t, 1, c.Target[0], 1e-5)
	assert.InDelta(t, 0, c.Target[1], 1e-5)
	assert.InDelta(t, 0, c.Target[2], 1e-5)

	c = New()
	c.Orbit(math32.Pi/2, 0) // eye on +X, looking down -X
	c.Pan(1, 2)
	assert.InDelta(t, 0, c.Target[0], 1e-5)
	assert.InDelta(t, 2, c.Target[1], 1e-5)
	assert.InDelta(t, -1, c.Target[2], 1e-5)

	// panning moves eye and target together
	before := c.Eye().Sub(c.Target)
	c.Pan(0.3, -0.4)
	after := c.Eye().Sub(c.Target)
	assert.InDelta(t, 0, before.Sub(after).Len(), 1e-5)
}

func TestFitToBounds(t *testing.T) {
	unit := bounds.New(mathutil.Vec3{-1, -1, -1}, mathutil.Vec3{1, 1, 1})
	sphereLike := bounds.New(unit.Min.Scale(1/math32.Sqrt(3)), unit.Max.Scale(1/math32.Sqrt(3)))
	assert.InDelta(t, 1, sphereLike.Radius(), 1e-5)

	c := New()
	c.FitToBounds(sphereLike, 1)
	assert.Greater(t, c.Distance, float32(0))
	assert.Less(t, c.ZNear, c.Distance)
	assert.Less(t, c.Distance, c.ZFar)
	assert.InDelta(t, FitPadding/math32.Tan(c.FovY/2), c.Distance, 1e-4)
	assert.Equal(t, sphereLike.Center(), c.Target)
}

func TestFitToBoundsPortraitNeedsMoreDistance(t *testing.T) {
	b := bounds.New(mathutil.Vec3{-1, -1, -1}, mathutil.Vec3{1, 1, 1})
	wide := New()
	wide.FitToBounds(b, 2)
	square := New()
	square.FitToBounds(b, 1)
	tall := New()
	tall.FitToBounds(b, 0.5)

	assert.InDelta(t, square.Distance, wide.Distance, 1e-5)
	assert.InDelta(t, square.Distance*2, tall.Distance, 1e-3)
}

func TestFitToDegenerateBounds(t *testing.T) {
	c := New()
	c.FitToBounds(bounds.Box{}, 1)
	assert.Greater(t, c.Distance, float32(0))
	assert.GreaterOrEqual(t, c.ZNear, float32(MinZNear))
	assert.GreaterOrEqual(t, c.ZFar, c.ZNear+1)
	assert.True(t, c.Eye().IsFinite())
	for _, v := range c.ProjectionMatrix(1) {
		assert.False(t, math32.IsNaN(v) || math32.IsInf(v, 0))
	}
	for _, v := range c.ViewMatrix() {
		assert.False(t, math32.IsNaN(v) || math32.IsInf(v, 0))
	}
}

func TestMatricesMatchKernel(t *testing.T) {
	c := New()
	c.Orbit(0.4, 0.2)
	assert.Equal(t, mathutil.LookAt(c.Eye(), c.Target, c.ViewUp()), c.ViewMatrix())
	assert.Equal(t, mathutil.Perspective(c.FovY, 1.5, c.ZNear, c.ZFar), c.ProjectionMatrix(1.5))
}
