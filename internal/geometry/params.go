package geometry

// Segment clamps. The upper bound keeps (segments+1)^2 vertices addressable
// by 16-bit indices.
const (
	MinCylinderSegments = 3
	MinSphereSegmentsU  = 3
	MinSphereSegmentsV  = 2
	MinTorusSegments    = 3
	MaxSegments         = 255
)

// CylinderParams shapes Cylinder.
type CylinderParams struct {
	Radius   float32 `json:"radius" toml:"radius" yaml:"radius"`
	Height   float32 `json:"height" toml:"height" yaml:"height"`
	Segments int     `json:"segments" toml:"segments" yaml:"segments"`
}

// SphereParams shapes Sphere. U runs around the equator, V pole to pole.
type SphereParams struct {
	Radius    float32 `json:"radius" toml:"radius" yaml:"radius"`
	SegmentsU int     `json:"segments_u" toml:"segments_u" yaml:"segments_u"`
	SegmentsV int     `json:"segments_v" toml:"segments_v" yaml:"segments_v"`
}

// TorusParams shapes Torus. U runs around the hole, V around the tube.
type TorusParams struct {
	MajorRadius float32 `json:"major_radius" toml:"major_radius" yaml:"major_radius"`
	MinorRadius float32 `json:"minor_radius" toml:"minor_radius" yaml:"minor_radius"`
	SegmentsU   int     `json:"segments_u" toml:"segments_u" yaml:"segments_u"`
	SegmentsV   int     `json:"segments_v" toml:"segments_v" yaml:"segments_v"`
}

// Params holds the numeric parameters of the parameterized primitives.
type Params struct {
	Cylinder CylinderParams `json:"cylinder" toml:"cylinder" yaml:"cylinder"`
	Sphere   SphereParams   `json:"sphere" toml:"sphere" yaml:"sphere"`
	Torus    TorusParams    `json:"torus" toml:"torus" yaml:"torus"`
}

// DefaultParams returns the shapes used when nothing is configured.
func DefaultParams() Params {
	return Params{
		Cylinder: CylinderParams{Radius: 0.5, Height: 1.0, Segments: 32},
		Sphere:   SphereParams{Radius: 0.5, SegmentsU: 32, SegmentsV: 16},
		Torus:    TorusParams{MajorRadius: 0.6, MinorRadius: 0.2, SegmentsU: 32, SegmentsV: 16},
	}
}

// WithDefaults fills zero fields from DefaultParams.
func (p Params) WithDefaults() Params {
	d := DefaultParams()
	fillF(&p.Cylinder.Radius, d.Cylinder.Radius)
	fillF(&p.Cylinder.Height, d.Cylinder.Height)
	fillI(&p.Cylinder.Segments, d.Cylinder.Segments)
	fillF(&p.Sphere.Radius, d.Sphere.Radius)
	fillI(&p.Sphere.SegmentsU, d.Sphere.SegmentsU)
	fillI(&p.Sphere.SegmentsV, d.Sphere.SegmentsV)
	fillF(&p.Torus.MajorRadius, d.Torus.MajorRadius)
	fillF(&p.Torus.MinorRadius, d.Torus.MinorRadius)
	fillI(&p.Torus.SegmentsU, d.Torus.SegmentsU)
	fillI(&p.Torus.SegmentsV, d.Torus.SegmentsV)
	return p
}

func fillF(v *float32, def float32) {
	if *v == 0 {
		*v = def
	}
}

func fillI(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func clampSegments(n, min int) int {
	if n < min {
		return min
	}
	if n > MaxSegments {
		return MaxSegments
	}
	return n
}
