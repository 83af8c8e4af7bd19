package raster

import (
	"math"

	"solidview/internal/mathutil"
	"solidview/internal/shading"
)

// Vertex is a projected vertex: screen position, depth (larger is closer) and
// view-space normal.
type Vertex struct {
	X, Y, Z float64
	N       mathutil.Vec3
}

// RasterizeTriangle fills one triangle with a z-buffer test and per-pixel
// directional shading from the interpolated normal. Both windings are drawn.
// Fragments with depth outside [-1, 1] lie beyond the clip planes and are
// discarded.
//
// This is the hot path; the pixel loop does not allocate.
func RasterizeTriangle(fb *FrameBuffer, v [3]Vertex, light *shading.Light) {
	x0, y0, z0 := v[0].X, v[0].Y, v[0].Z
	x1, y1, z1 := v[1].X, v[1].Y, v[1].Z
	x2, y2, z2 := v[2].X, v[2].Y, v[2].Z

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-12 && det < 1e-12 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	n0, n1, n2 := v[0].N, v[1].N, v[2].N
	stride := fb.Width

	for sy := minY; sy <= maxY; sy++ {
		py := float64(sy) + 0.5
		dsy := py - y2
		rowOff := sy * stride
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			if z < -1 || z > 1 {
				continue // outside the near/far planes
			}
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			n := n0.Scale(float32(w0)).Add(n1.Scale(float32(w1))).Add(n2.Scale(float32(w2))).Normalize()
			c := light.Color(n)

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = c.R
			fb.Color[pxIdx+1] = c.G
			fb.Color[pxIdx+2] = c.B
			fb.Color[pxIdx+3] = c.A
		}
	}
}
