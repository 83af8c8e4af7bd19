package glrender

import "solidview/internal/geometry"

// drawable is the CPU side of an upload: what the GPU buffers will hold.
type drawable struct {
	positions []float32
	normals   []float32
	indices   []uint16
	count     int32 // indices to draw, or vertices when not indexed
	indexed   bool
}

// prepare validates m for upload. Index triples referencing missing vertices
// are dropped, as is a trailing partial triangle. Missing normals fall back
// to DefaultNormal.
func prepare(m *geometry.Mesh) drawable {
	n := m.VertexCount()
	d := drawable{
		positions: m.Positions[:n*3],
		normals:   m.Normals,
		indexed:   m.IsIndexed(),
	}
	if len(d.normals) < n*3 {
		d.normals = make([]float32, n*3)
		for i := 0; i < n; i++ {
			copy(d.normals[i*3:], geometry.DefaultNormal[:])
		}
	} else {
		d.normals = d.normals[:n*3]
	}

	if !d.indexed {
		d.count = int32(n / 3 * 3)
		return d
	}

	d.indices = make([]uint16, 0, len(m.Indices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if int(a) >= n || int(b) >= n || int(c) >= n {
			continue
		}
		d.indices = append(d.indices, a, b, c)
	}
	d.count = int32(len(d.indices))
	return d
}
