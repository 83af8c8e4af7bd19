package mathutil

import "github.com/chewxy/math32"

// Mat4 is a 4×4 matrix stored column-major: column c, row r at index c*4+r.
// This is the layout GL uniforms expect.
type Mat4 [16]float32

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c*4+r] = a[0*4+r]*b[c*4+0] + a[1*4+r]*b[c*4+1] +
				a[2*4+r]*b[c*4+2] + a[3*4+r]*b[c*4+3]
		}
	}
	return m
}

// Mul returns m × b.
func (m Mat4) Mul(b Mat4) Mat4 {
	return Mat4Mul(m, b)
}

// MulVec4 returns m × v.
func (m Mat4) MulVec4(v [4]float32) [4]float32 {
	var out [4]float32
	for r := 0; r < 4; r++ {
		out[r] = m[0*4+r]*v[0] + m[1*4+r]*v[1] + m[2*4+r]*v[2] + m[3*4+r]*v[3]
	}
	return out
}

// MulPoint transforms a point (w=1) and returns the homogeneous result.
func (m Mat4) MulPoint(p Vec3) [4]float32 {
	return m.MulVec4([4]float32{p[0], p[1], p[2], 1})
}

// MulDir transforms a direction by the upper-left 3×3 block.
func (m Mat4) MulDir(d Vec3) Vec3 {
	return Vec3{
		m[0]*d[0] + m[4]*d[1] + m[8]*d[2],
		m[1]*d[0] + m[5]*d[1] + m[9]*d[2],
		m[2]*d[0] + m[6]*d[1] + m[10]*d[2],
	}
}

// Translation returns a pure translation by v (indices 12, 13, 14).
func Translation(v Vec3) Mat4 {
	m := Mat4Identity()
	m[12] = v[0]
	m[13] = v[1]
	m[14] = v[2]
	return m
}

// Perspective builds a right-handed perspective projection mapping view-space
// z into clip space with w = -z. znear != zfar is the caller's responsibility.
func Perspective(fovy, aspect, znear, zfar float32) Mat4 {
	f := 1 / math32.Tan(fovy*0.5)
	nf := 1 / (znear - zfar)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (zfar + znear) * nf, -1,
		0, 0, 2 * zfar * znear * nf, 0,
	}
}

// LookAt builds a view matrix from eye towards target. Rows 0..2 of the
// rotation block hold right, up and back; the eye translation sits in the last
// column. The basis degenerates when target-eye is parallel to up.
func LookAt(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return Mat4{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	id := Mat4Identity()
	for i := 0; i < 16; i++ {
		d := m[i] - id[i]
		if d > 1e-6 || d < -1e-6 {
			return false
		}
	}
	return true
}
