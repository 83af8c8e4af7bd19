// Package shading holds the single directional light shared by the renderers.
package shading

import (
	"image/color"

	"solidview/internal/mathutil"
)

// Light holds the lighting parameters. Directions are in view space.
type Light struct {
	Dir        mathutil.Vec3 // direction the light travels
	Base       [3]float32    // surface albedo, linear 0..1
	Ambient    float32
	Diffuse    float32
	Background color.NRGBA
}

// DefaultLight shines from behind the camera, slightly from the upper right.
func DefaultLight() Light {
	return Light{
		Dir:        mathutil.Vec3{-0.3, -0.5, -1.0},
		Base:       [3]float32{0.8, 0.85, 0.95},
		Ambient:    0.15,
		Diffuse:    0.85,
		Background: color.NRGBA{R: 211, G: 211, B: 211, A: 255},
	}
}

// Shade returns the lighting scalar for a view-space unit normal.
func (l *Light) Shade(normal mathutil.Vec3) float32 {
	ndl := normal.Dot(l.Dir.Normalize().Scale(-1))
	if ndl < 0 {
		ndl = 0
	}
	return l.Ambient + l.Diffuse*ndl
}

// Color returns the shaded surface color for a view-space unit normal.
func (l *Light) Color(normal mathutil.Vec3) color.NRGBA {
	s := l.Shade(normal)
	return color.NRGBA{
		R: clamp255(l.Base[0] * s * 255),
		G: clamp255(l.Base[1] * s * 255),
		B: clamp255(l.Base[2] * s * 255),
		A: 255,
	}
}

// BackgroundRGBA returns the clear color as normalized floats.
func (l *Light) BackgroundRGBA() (r, g, b, a float32) {
	c := l.Background
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

func clamp255(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
