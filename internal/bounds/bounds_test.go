package bounds

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"solidview/internal/mathutil"
)

func TestFromPositions(t *testing.T) {
	tests := []struct {
		name      string
		positions []float32
		want      Box
	}{
		{"empty", nil, Box{}},
		{"partial vertex", []float32{1, 2}, Box{}},
		{"single", []float32{1, 2, 3}, New(mathutil.Vec3{1, 2, 3}, mathutil.Vec3{1, 2, 3})},
		{
			"spread",
			[]float32{-1, 0, 2, 3, -4, 1, 0, 5, -2},
			New(mathutil.Vec3{-1, -4, -2}, mathutil.Vec3{3, 5, 2}),
		},
		{
			"trailing partial ignored",
			[]float32{0, 0, 0, 1, 1, 1, 9, 9},
			New(mathutil.Vec3{0, 0, 0}, mathutil.Vec3{1, 1, 1}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromPositions(tt.positions))
		})
	}
}

func TestCenterRadius(t *testing.T) {
	b := New(mathutil.Vec3{-1, -2, -2}, mathutil.Vec3{1, 2, 2})
	assert.Equal(t, mathutil.Vec3{0, 0, 0}, b.Center())
	assert.InDelta(t, 3, b.Radius(), 1e-6)
	assert.Equal(t, mathutil.Vec3{2, 4, 4}, b.Size())

	off := New(mathutil.Vec3{1, 1, 1}, mathutil.Vec3{3, 5, 1})
	assert.Equal(t, mathutil.Vec3{2, 3, 1}, off.Center())

	var zero Box
	assert.Equal(t, float32(0), zero.Radius())
}

func TestCorners(t *testing.T) {
	b := New(mathutil.Vec3{-1, -2, -3}, mathutil.Vec3{1, 2, 3})
	c := b.Corners()
	assert.Equal(t, b.Min, c[0])
	assert.Equal(t, b.Max, c[7])
	for _, p := range c {
		assert.LessOrEqual(t, p.Sub(b.Center()).Len(), b.Radius()+1e-6)
	}
}
