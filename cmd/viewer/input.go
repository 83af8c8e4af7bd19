package main

import (
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"

	"solidview/internal/geometry"
	"solidview/internal/viewer"
)

const (
	rotateSensitivity = 0.01 // radians per pixel
	zoomStep          = 0.9  // distance factor per scroll notch
)

// controller maps window input to session navigation.
type controller struct {
	session *viewer.Session
	log     *slog.Logger

	dragging   glfw.MouseButton
	isDragging bool
	lastX      float64
	lastY      float64
}

func newController(s *viewer.Session, log *slog.Logger) *controller {
	return &controller{session: s, log: log}
}

func (c *controller) bind(w *glfw.Window) {
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		c.session.Resize(width, height)
	})
	w.SetMouseButtonCallback(func(w *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			c.dragging, c.isDragging = b, true
			c.lastX, c.lastY = w.GetCursorPos()
		case glfw.Release:
			if b == c.dragging {
				c.isDragging = false
			}
		}
	})
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if !c.isDragging {
			return
		}
		dx, dy := float32(x-c.lastX), float32(y-c.lastY)
		c.lastX, c.lastY = x, y
		c.drag(c.dragging, dx, dy)
	})
	w.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		c.session.Zoom(math32.Pow(zoomStep, float32(yoff)))
	})
	w.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		if err := c.key(key); err != nil {
			c.log.Error("key action failed", "err", err)
		}
	})
}

// drag rotates with the left button and pans with the others. Pan speed is
// scaled so the target follows the cursor at the target's depth.
func (c *controller) drag(b glfw.MouseButton, dx, dy float32) {
	if b == glfw.MouseButtonLeft {
		c.session.Rotate(-dx*rotateSensitivity, dy*rotateSensitivity)
		return
	}
	cam := c.session.Camera()
	_, h := c.session.Size()
	perPixel := 2 * cam.Distance * math32.Tan(cam.FovY*0.5) / float32(h)
	c.session.Pan(-dx*perPixel, dy*perPixel)
}

func (c *controller) key(key glfw.Key) error {
	switch key {
	case glfw.KeyF:
		c.session.FitToView()
	case glfw.KeyR:
		c.session.Reset()
	default:
		if key >= glfw.Key1 && key <= glfw.Key5 {
			kinds := geometry.Kinds()
			idx := int(key - glfw.Key1)
			if idx < len(kinds) {
				return c.session.SetKind(kinds[idx])
			}
		}
	}
	return nil
}
