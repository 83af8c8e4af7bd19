package geometry

import "solidview/internal/mathutil"

// DefaultNormal is assigned to vertices whose accumulated normal vanishes.
var DefaultNormal = mathutil.Vec3{0, 0, 1}

// ComputeNormals derives smooth per-vertex normals by summing the unnormalized
// face normal cross(b-a, c-a) of every triangle into its three vertices, then
// normalizing. Without indices, consecutive position triples form triangles.
// Index triples pointing past the position buffer are skipped.
func ComputeNormals(positions []float32, indices []uint16) []float32 {
	nv := len(positions) / 3
	acc := make([]mathutil.Vec3, nv)

	addFace := func(ia, ib, ic int) {
		if ia >= nv || ib >= nv || ic >= nv {
			return
		}
		a := vertexAt(positions, ia)
		b := vertexAt(positions, ib)
		c := vertexAt(positions, ic)
		n := b.Sub(a).Cross(c.Sub(a))
		acc[ia] = acc[ia].Add(n)
		acc[ib] = acc[ib].Add(n)
		acc[ic] = acc[ic].Add(n)
	}

	if len(indices) == 0 {
		for i := 0; i+2 < nv; i += 3 {
			addFace(i, i+1, i+2)
		}
	} else {
		for i := 0; i+2 < len(indices); i += 3 {
			addFace(int(indices[i]), int(indices[i+1]), int(indices[i+2]))
		}
	}

	normals := make([]float32, len(positions))
	for i, n := range acc {
		if n.Len() <= mathutil.Epsilon {
			n = DefaultNormal
		} else {
			n = n.Normalize()
		}
		copy(normals[i*3:i*3+3], n[:])
	}
	return normals
}

func vertexAt(positions []float32, i int) mathutil.Vec3 {
	return mathutil.Vec3{positions[i*3], positions[i*3+1], positions[i*3+2]}
}
