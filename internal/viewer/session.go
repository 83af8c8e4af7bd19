// Package viewer ties one mesh, one orbit camera and a renderer together.
//
// A Session is not safe for concurrent use. Navigation calls mutate camera
// state that later calls read, so they must be applied in order.
package viewer

import (
	"fmt"
	"log/slog"

	"solidview/internal/bounds"
	"solidview/internal/camera"
	"solidview/internal/geometry"
	"solidview/internal/mathutil"
)

// Renderer is the rendering backend. SetMesh is called once per mesh change
// and must not retain the right to mutate the buffers; Draw is called per frame.
type Renderer interface {
	SetMesh(m *geometry.Mesh) error
	Draw(f Frame) error
}

// Frame is everything the renderer needs for one draw.
type Frame struct {
	Width      int
	Height     int
	Model      mathutil.Mat4
	View       mathutil.Mat4
	Projection mathutil.Mat4
	Eye        mathutil.Vec3
}

// Session owns the current mesh, its bounds and the camera.
type Session struct {
	renderer Renderer
	camera   *camera.Orbit
	params   geometry.Params
	kind     geometry.Kind
	mesh     geometry.Mesh
	bounds   bounds.Box
	width    int
	height   int
	source   geometry.Source
	log      *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session debug logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithMeshSource builds meshes through src, e.g. a shared geometry.Cache.
func WithMeshSource(src geometry.Source) Option {
	return func(s *Session) { s.source = src }
}

// New starts a session on the triangle primitive, uploads it and fits the
// camera to it.
func New(r Renderer, width, height int, params geometry.Params, opts ...Option) (*Session, error) {
	s := &Session{
		renderer: r,
		camera:   camera.New(),
		params:   params.WithDefaults(),
		source:   geometry.SourceFunc(geometry.Build),
		log:      slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	s.Resize(width, height)
	if err := s.load(geometry.Triangle, s.params); err != nil {
		return nil, err
	}
	return s, nil
}

// load builds and uploads k with params p. Session state only changes once
// the upload succeeds.
func (s *Session) load(k geometry.Kind, p geometry.Params) error {
	mesh := s.source.Build(k, p)
	if err := s.renderer.SetMesh(&mesh); err != nil {
		return fmt.Errorf("viewer: upload %s: %w", k, err)
	}
	s.kind = k
	s.params = p
	s.mesh = mesh
	s.bounds = mesh.Bounds
	s.FitToView()
	s.log.Debug("mesh loaded",
		"primitive", k.String(),
		"vertices", mesh.VertexCount(),
		"triangles", mesh.TriangleCount(),
		"radius", s.bounds.Radius())
	return nil
}

// Resize sets the viewport size. Dimensions are clamped to at least 1.
func (s *Session) Resize(width, height int) {
	s.width = max(width, 1)
	s.height = max(height, 1)
}

// Aspect returns width / height.
func (s *Session) Aspect() float32 {
	return float32(s.width) / float32(s.height)
}

// SetBounds overrides the bounds used by FitToView. It does not re-fit.
func (s *Session) SetBounds(min, max mathutil.Vec3) {
	s.bounds = bounds.New(min, max)
}

// SetPrimitive switches to the named primitive and re-fits the camera.
// Unrecognized names leave the session untouched and report false.
func (s *Session) SetPrimitive(name string) (bool, error) {
	k, ok := geometry.ParseKind(name)
	if !ok {
		s.log.Debug("unknown primitive ignored", "name", name)
		return false, nil
	}
	return true, s.SetKind(k)
}

// SetKind switches to primitive k and re-fits the camera.
func (s *Session) SetKind(k geometry.Kind) error {
	return s.load(k, s.params)
}

// SetParams rebuilds the current primitive with new shape parameters.
func (s *Session) SetParams(p geometry.Params) error {
	return s.load(s.kind, p.WithDefaults())
}

// FitToView frames the current bounds for the current aspect ratio.
func (s *Session) FitToView() {
	s.camera.FitToBounds(s.bounds, s.Aspect())
}

// Reset restores the default camera pose and re-fits.
func (s *Session) Reset() {
	s.camera = camera.New()
	s.FitToView()
}

// Rotate orbits the camera by radians.
func (s *Session) Rotate(dYaw, dPitch float32) {
	s.camera.Orbit(dYaw, dPitch)
}

// Pan moves the target in world units relative to the current view.
func (s *Session) Pan(right, up float32) {
	s.camera.Pan(right, up)
}

// Zoom scales the orbit distance (>1 out, <1 in).
func (s *Session) Zoom(factor float32) {
	s.camera.Zoom(factor)
}

// Frame derives the matrices for the current state without drawing.
func (s *Session) Frame() Frame {
	aspect := s.Aspect()
	return Frame{
		Width:      s.width,
		Height:     s.height,
		Model:      mathutil.Mat4Identity(),
		View:       s.camera.ViewMatrix(),
		Projection: s.camera.ProjectionMatrix(aspect),
		Eye:        s.camera.Eye(),
	}
}

// Draw hands the current frame to the renderer.
func (s *Session) Draw() error {
	if err := s.renderer.Draw(s.Frame()); err != nil {
		return fmt.Errorf("viewer: draw: %w", err)
	}
	return nil
}

// Camera returns a copy of the camera state.
func (s *Session) Camera() camera.Orbit {
	return *s.camera
}

func (s *Session) Kind() geometry.Kind {
	return s.kind
}

// Mesh returns the current mesh. Callers must treat it as read-only.
func (s *Session) Mesh() *geometry.Mesh {
	return &s.mesh
}

func (s *Session) Bounds() bounds.Box {
	return s.bounds
}

func (s *Session) Params() geometry.Params {
	return s.params
}

func (s *Session) Size() (width, height int) {
	return s.width, s.height
}
