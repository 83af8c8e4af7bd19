// Package raster is a software implementation of viewer.Renderer that draws
// the mesh into an image.
package raster

import (
	"errors"
	"image"

	"solidview/internal/geometry"
	"solidview/internal/mathutil"
	"solidview/internal/postprocess"
	"solidview/internal/shading"
	"solidview/internal/viewer"
)

// Compile-time interface check.
var _ viewer.Renderer = (*Renderer)(nil)

// minClipW drops triangles touching or behind the eye plane.
const minClipW = 1e-6

// ErrNoMesh is returned by Draw before any mesh was set.
var ErrNoMesh = errors.New("raster: no mesh")

// Renderer rasterizes the current mesh at Supersample times the viewport size
// and downsamples the result.
type Renderer struct {
	Light       shading.Light
	Supersample int

	mesh *geometry.Mesh
	img  *image.NRGBA
}

// New returns a renderer with the default light.
func New(supersample int) *Renderer {
	return &Renderer{
		Light:       shading.DefaultLight(),
		Supersample: max(supersample, 1),
	}
}

// SetMesh records the mesh to draw. The mesh is only read.
func (r *Renderer) SetMesh(m *geometry.Mesh) error {
	r.mesh = m
	return nil
}

// Draw renders one frame. The result is available from Image.
func (r *Renderer) Draw(f viewer.Frame) error {
	if r.mesh == nil {
		return ErrNoMesh
	}
	ss := max(r.Supersample, 1)
	w, h := max(f.Width, 1), max(f.Height, 1)
	fb := NewFrameBuffer(w*ss, h*ss, r.Light.Background)

	modelView := f.View.Mul(f.Model)
	mvp := f.Projection.Mul(modelView)
	verts, visible := project(r.mesh, mvp, modelView, fb.Width, fb.Height)

	drawTri := func(a, b, c int) {
		nv := len(verts)
		if a >= nv || b >= nv || c >= nv {
			return
		}
		if !visible[a] || !visible[b] || !visible[c] {
			return
		}
		RasterizeTriangle(fb, [3]Vertex{verts[a], verts[b], verts[c]}, &r.Light)
	}

	if r.mesh.IsIndexed() {
		idx := r.mesh.Indices
		for i := 0; i+2 < len(idx); i += 3 {
			drawTri(int(idx[i]), int(idx[i+1]), int(idx[i+2]))
		}
	} else {
		for i := 0; i+2 < len(verts); i += 3 {
			drawTri(i, i+1, i+2)
		}
	}

	img := fb.Image()
	if ss > 1 {
		img = postprocess.Downsample(img, w, h)
	}
	r.img = img
	return nil
}

// Image returns the last rendered frame, or nil before the first Draw.
func (r *Renderer) Image() *image.NRGBA {
	return r.img
}

// project maps every vertex to screen space. visible is false for vertices
// whose clip w is at or behind the eye.
func project(m *geometry.Mesh, mvp, modelView mathutil.Mat4, w, h int) ([]Vertex, []bool) {
	n := m.VertexCount()
	verts := make([]Vertex, n)
	visible := make([]bool, n)
	hasNormals := len(m.Normals) >= n*3

	for i := 0; i < n; i++ {
		p := mathutil.Vec3{m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2]}
		clip := mvp.MulPoint(p)
		if clip[3] <= minClipW {
			continue
		}
		inv := 1 / clip[3]
		ndcX, ndcY, ndcZ := clip[0]*inv, clip[1]*inv, clip[2]*inv

		var nrm mathutil.Vec3
		if hasNormals {
			nrm = modelView.MulDir(mathutil.Vec3{m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2]}).Normalize()
		}
		verts[i] = Vertex{
			X: float64((ndcX + 1) * 0.5 * float32(w)),
			Y: float64((1 - ndcY) * 0.5 * float32(h)),
			Z: -float64(ndcZ),
			N: nrm,
		}
		visible[i] = true
	}
	return verts, visible
}
