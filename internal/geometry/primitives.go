package geometry

import "github.com/chewxy/math32"

// Make builds a primitive with DefaultParams.
func Make(k Kind) Mesh {
	return Build(k, DefaultParams())
}

// Build builds a primitive with the given shape parameters. Zero parameters
// fall back to their defaults.
func Build(k Kind, p Params) Mesh {
	p = p.WithDefaults()
	switch k {
	case Cube:
		return NewCube()
	case Cylinder:
		c := p.Cylinder
		return NewCylinder(c.Radius, c.Height, c.Segments)
	case Sphere:
		s := p.Sphere
		return NewSphere(s.Radius, s.SegmentsU, s.SegmentsV)
	case Torus:
		t := p.Torus
		return NewTorus(t.MajorRadius, t.MinorRadius, t.SegmentsU, t.SegmentsV)
	default:
		return NewTriangle()
	}
}

// NewTriangle returns a single non-indexed triangle in the z=0 plane facing +Z.
func NewTriangle() Mesh {
	positions := []float32{
		-0.5, -0.5, 0,
		0.5, -0.5, 0,
		0, 0.5, 0,
	}
	return newMesh(positions, nil)
}

// NewCube returns a unit cube centered at the origin: 8 shared corners,
// 12 outward-facing triangles.
func NewCube() Mesh {
	positions := []float32{
		-0.5, -0.5, -0.5, // 0
		0.5, -0.5, -0.5, // 1
		0.5, 0.5, -0.5, // 2
		-0.5, 0.5, -0.5, // 3
		-0.5, -0.5, 0.5, // 4
		0.5, -0.5, 0.5, // 5
		0.5, 0.5, 0.5, // 6
		-0.5, 0.5, 0.5, // 7
	}
	indices := []uint16{
		0, 2, 1, 0, 3, 2, // -z
		4, 5, 6, 4, 6, 7, // +z
		0, 7, 3, 0, 4, 7, // -x
		1, 6, 5, 1, 2, 6, // +x
		0, 5, 4, 0, 1, 5, // -y
		3, 6, 2, 3, 7, 6, // +y
	}
	return newMesh(positions, indices)
}

// NewCylinder returns a capped cylinder along Y centered at the origin.
// Vertices alternate bottom/top per ring step, followed by the bottom and top
// cap centers.
func NewCylinder(radius, height float32, segments int) Mesh {
	n := clampSegments(segments, MinCylinderSegments)
	halfH := height * 0.5

	positions := make([]float32, 0, (2*n+2)*3)
	for i := 0; i < n; i++ {
		t := float32(i) * 2 * math32.Pi / float32(n)
		s, c := math32.Sincos(t)
		x, z := c*radius, s*radius
		positions = append(positions, x, -halfH, z, x, halfH, z)
	}
	bottom := uint16(2 * n)
	top := uint16(2*n + 1)
	positions = append(positions, 0, -halfH, 0, 0, halfH, 0)

	indices := make([]uint16, 0, 12*n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		b0, t0 := uint16(2*i), uint16(2*i+1)
		b1, t1 := uint16(2*j), uint16(2*j+1)
		indices = append(indices, b0, t1, b1, b0, t0, t1)
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		indices = append(indices, bottom, uint16(2*i), uint16(2*j))
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		indices = append(indices, top, uint16(2*j+1), uint16(2*i+1))
	}
	return newMesh(positions, indices)
}

// NewSphere returns a latitude/longitude sphere. The seam column is
// duplicated so the grid has (u+1)*(v+1) vertices.
func NewSphere(radius float32, segmentsU, segmentsV int) Mesh {
	u := clampSegments(segmentsU, MinSphereSegmentsU)
	v := clampSegments(segmentsV, MinSphereSegmentsV)

	positions := make([]float32, 0, (u+1)*(v+1)*3)
	for iy := 0; iy <= v; iy++ {
		theta := float32(iy) / float32(v) * math32.Pi
		st, ct := math32.Sincos(theta)
		for ix := 0; ix <= u; ix++ {
			phi := float32(ix) / float32(u) * 2 * math32.Pi
			sp, cp := math32.Sincos(phi)
			positions = append(positions, cp*st*radius, ct*radius, sp*st*radius)
		}
	}
	return newMesh(positions, gridIndices(v, u))
}

// NewTorus returns a torus around the Y axis. The outer loop walks the hole
// (u), the inner loop the tube (v).
func NewTorus(majorRadius, minorRadius float32, segmentsU, segmentsV int) Mesh {
	u := clampSegments(segmentsU, MinTorusSegments)
	v := clampSegments(segmentsV, MinTorusSegments)

	positions := make([]float32, 0, (u+1)*(v+1)*3)
	for iu := 0; iu <= u; iu++ {
		theta := float32(iu) / float32(u) * 2 * math32.Pi
		st, ct := math32.Sincos(theta)
		for iv := 0; iv <= v; iv++ {
			phi := float32(iv) / float32(v) * 2 * math32.Pi
			sp, cp := math32.Sincos(phi)
			r := majorRadius + minorRadius*cp
			positions = append(positions, ct*r, minorRadius*sp, st*r)
		}
	}
	return newMesh(positions, gridIndices(u, v))
}

// gridIndices triangulates a rows×cols quad grid whose rows hold cols+1
// vertices, two outward triangles per quad.
func gridIndices(rows, cols int) []uint16 {
	stride := cols + 1
	indices := make([]uint16, 0, rows*cols*6)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			a := uint16(r*stride + c)
			b := a + 1
			cc := a + uint16(stride)
			d := cc + 1
			indices = append(indices, a, d, cc, a, b, d)
		}
	}
	return indices
}
