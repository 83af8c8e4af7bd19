package glrender

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"solidview/internal/geometry"
)

func TestPrepareIndexed(t *testing.T) {
	m := geometry.NewCube()
	d := prepare(&m)
	assert.True(t, d.indexed)
	assert.Equal(t, int32(36), d.count)
	assert.Len(t, d.positions, 24)
	assert.Len(t, d.normals, 24)
}

func TestPrepareDropsBadTriples(t *testing.T) {
	m := geometry.NewCube()
	m.Indices = append(append([]uint16{}, m.Indices...), 0, 1, 8, 2, 3)
	d := prepare(&m)
	assert.Equal(t, int32(36), d.count)
	for _, i := range d.indices {
		assert.Less(t, int(i), 8)
	}
}

func TestPrepareNonIndexed(t *testing.T) {
	m := geometry.NewTriangle()
	m.Positions = append(m.Positions, 1, 1, 1) // partial triangle
	m.Normals = nil
	d := prepare(&m)
	assert.False(t, d.indexed)
	assert.Equal(t, int32(3), d.count)
	assert.Equal(t, []float32{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1}, d.normals)
}
