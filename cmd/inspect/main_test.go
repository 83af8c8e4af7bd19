package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"solidview/internal/geometry"
)

func TestAreaByDirectionCube(t *testing.T) {
	m := geometry.NewCube()
	byDir := areaByDirection(&m)
	for _, d := range directions {
		assert.InDelta(t, 1.0, byDir[d], 1e-5, d)
	}
}

func TestAreaByDirectionTriangle(t *testing.T) {
	m := geometry.NewTriangle()
	byDir := areaByDirection(&m)
	assert.InDelta(t, 0.5, byDir["+Z"], 1e-6)
	assert.Zero(t, byDir["-Z"])
}
