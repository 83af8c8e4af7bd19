// Package glrender draws the viewer session with OpenGL 4.1 core.
//
// Every method must be called on the thread that owns the current GL context,
// after gl.Init.
package glrender

import (
	"solidview/internal/geometry"
	"solidview/internal/mathutil"
	"solidview/internal/shading"
	"solidview/internal/viewer"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Compile-time interface check.
var _ viewer.Renderer = (*Renderer)(nil)

// Attribute locations shared with the vertex shader.
const (
	positionAttrib = 0
	normalAttrib   = 1
)

// Renderer owns one VAO with position, normal and index buffers.
type Renderer struct {
	Light shading.Light

	program uint32
	vao     uint32
	vbo     uint32 // positions
	nbo     uint32 // normals
	ibo     uint32 // indices

	count   int32
	indexed bool

	uModel, uView, uProjection int32
	uLight, uBase              int32
	uAmbient, uDiffuse         int32
}

// New compiles the shader program and allocates the buffers.
func New() (*Renderer, error) {
	program, err := buildShader(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}
	r := &Renderer{Light: shading.DefaultLight(), program: program}

	r.uModel = uniform(program, "u_model")
	r.uView = uniform(program, "u_view")
	r.uProjection = uniform(program, "u_projection")
	r.uLight = uniform(program, "u_light")
	r.uBase = uniform(program, "u_base")
	r.uAmbient = uniform(program, "u_ambient")
	r.uDiffuse = uniform(program, "u_diffuse")

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.nbo)
	gl.GenBuffers(1, &r.ibo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.VertexAttribPointer(positionAttrib, 3, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(positionAttrib)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.nbo)
	gl.VertexAttribPointer(normalAttrib, 3, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(normalAttrib)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ibo)
	gl.BindVertexArray(0)

	return r, nil
}

func uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// SetMesh replaces the buffer contents with m.
func (r *Renderer) SetMesh(m *geometry.Mesh) error {
	d := prepare(m)

	gl.BindVertexArray(r.vao)
	upload(gl.ARRAY_BUFFER, r.vbo, d.positions)
	upload(gl.ARRAY_BUFFER, r.nbo, d.normals)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ibo)
	if len(d.indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.indices)*2, gl.Ptr(d.indices), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}
	gl.BindVertexArray(0)

	r.count = d.count
	r.indexed = d.indexed
	return nil
}

func upload(target, buf uint32, data []float32) {
	gl.BindBuffer(target, buf)
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

// Draw clears to the background color and draws the mesh into the current
// framebuffer.
func (r *Renderer) Draw(f viewer.Frame) error {
	gl.Viewport(0, 0, int32(f.Width), int32(f.Height))
	gl.ClearColor(r.Light.BackgroundRGBA())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	if r.count == 0 {
		return nil
	}

	gl.UseProgram(r.program)
	setMatrix(r.uModel, f.Model)
	setMatrix(r.uView, f.View)
	setMatrix(r.uProjection, f.Projection)
	gl.Uniform3f(r.uLight, r.Light.Dir[0], r.Light.Dir[1], r.Light.Dir[2])
	gl.Uniform3f(r.uBase, r.Light.Base[0], r.Light.Base[1], r.Light.Base[2])
	gl.Uniform1f(r.uAmbient, r.Light.Ambient)
	gl.Uniform1f(r.uDiffuse, r.Light.Diffuse)

	gl.BindVertexArray(r.vao)
	if r.indexed {
		gl.DrawElements(gl.TRIANGLES, r.count, gl.UNSIGNED_SHORT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, r.count)
	}
	gl.BindVertexArray(0)
	return nil
}

// Matrices are column-major already.
func setMatrix(loc int32, m mathutil.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// Delete releases the GL objects.
func (r *Renderer) Delete() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.nbo)
	gl.DeleteBuffers(1, &r.ibo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}
