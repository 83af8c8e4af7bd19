// Package geometry builds the procedural primitive meshes and derives their
// per-vertex normals.
package geometry

import "solidview/internal/bounds"

// Mesh is an immutable triangle mesh ready for upload.
// Positions and Normals are flat (x,y,z per vertex) and have equal length.
// An empty Indices means the positions are consumed three vertices at a time.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Indices   []uint16
	Bounds    bounds.Box
}

// VertexCount returns the number of vertices.
func (m Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles drawn.
func (m Mesh) TriangleCount() int {
	if m.IsIndexed() {
		return len(m.Indices) / 3
	}
	return m.VertexCount() / 3
}

// IsIndexed reports whether the mesh carries an index buffer.
func (m Mesh) IsIndexed() bool {
	return len(m.Indices) > 0
}

// newMesh is the shared finishing step of every builder.
func newMesh(positions []float32, indices []uint16) Mesh {
	b := bounds.FromPositions(positions)
	normals := ComputeNormals(positions, indices)
	return Mesh{
		Positions: positions,
		Normals:   normals,
		Indices:   indices,
		Bounds:    b,
	}
}
