// Package bounds provides the axis-aligned box used to frame meshes.
package bounds

import "solidview/internal/mathutil"

// Box is an axis-aligned bounding box.
type Box struct {
	Min mathutil.Vec3
	Max mathutil.Vec3
}

func New(min, max mathutil.Vec3) Box {
	return Box{Min: min, Max: max}
}

// FromPositions computes the box of a flat xyz position buffer. Buffers
// holding no complete vertex yield a zero-sized box at the origin. A trailing
// partial vertex is ignored.
func FromPositions(positions []float32) Box {
	if len(positions) < 3 {
		return Box{}
	}
	min := mathutil.Vec3{positions[0], positions[1], positions[2]}
	max := min
	for i := 3; i+2 < len(positions); i += 3 {
		for k := 0; k < 3; k++ {
			v := positions[i+k]
			if v < min[k] {
				min[k] = v
			}
			if v > max[k] {
				max[k] = v
			}
		}
	}
	return Box{Min: min, Max: max}
}

// Center returns the midpoint of the box.
func (b Box) Center() mathutil.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Radius returns half the box diagonal. This bounds the box but is not the
// tightest enclosing sphere of the underlying points.
func (b Box) Radius() float32 {
	return b.Max.Sub(b.Min).Len() * 0.5
}

// Size returns the extent along each axis.
func (b Box) Size() mathutil.Vec3 {
	return b.Max.Sub(b.Min)
}

// Corners returns the eight box corners, min first, max last.
func (b Box) Corners() [8]mathutil.Vec3 {
	var c [8]mathutil.Vec3
	for i := 0; i < 8; i++ {
		for k := 0; k < 3; k++ {
			if i&(1<<k) != 0 {
				c[i][k] = b.Max[k]
			} else {
				c[i][k] = b.Min[k]
			}
		}
	}
	return c
}
