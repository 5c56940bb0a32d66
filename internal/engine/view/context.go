package view

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/stillscene/internal/engine/shader"
	"github.com/Faultbox/stillscene/pkg/math"
)

// Projection clipping planes, shared by both modes.
const (
	nearPlane = 0.1
	farPlane  = 100.0
)

// orthoExtent is the fixed half-size of the orthographic view volume.
const orthoExtent = 10.0

// Context is the per-frame view state. It is passed explicitly to input
// handling and to the render pass instead of living in package globals.
type Context struct {
	Camera       *Camera
	Orthographic bool

	width  int
	height int

	lastFrame float64
	delta     float32
}

// NewContext creates a view context for a window of the given pixel size.
func NewContext(cam *Camera, width, height int) *Context {
	return &Context{Camera: cam, width: width, height: height}
}

// Resize updates the aspect ratio after a window size change.
func (c *Context) Resize(width, height int) {
	c.width = width
	c.height = height
}

// Tick advances frame timing. now is in seconds; the first call reports a
// zero delta.
func (c *Context) Tick(now float64) {
	if c.lastFrame != 0 {
		c.delta = float32(now - c.lastFrame)
	}
	c.lastFrame = now
}

// Delta returns the seconds elapsed between the last two Tick calls.
func (c *Context) Delta() float32 {
	return c.delta
}

// HandleMouse applies a mouse-look delta. Ignored in orthographic mode,
// where a fixed axis-aligned framing is the point.
func (c *Context) HandleMouse(dx, dy float32) {
	if c.Orthographic {
		return
	}
	c.Camera.Look(dx, dy)
}

// Projection returns the active projection matrix. Perspective follows
// the camera FOV and window aspect; orthographic is a fixed cube around
// the origin so the whole counter fits regardless of FOV.
func (c *Context) Projection() math.Mat4 {
	if c.Orthographic {
		return math.Ortho(-orthoExtent, orthoExtent, -orthoExtent, orthoExtent, nearPlane, farPlane)
	}
	aspect := float32(c.width) / float32(c.height)
	return math.Perspective(c.Camera.FOV*math32.Pi/180, aspect, nearPlane, farPlane)
}

// Apply pushes the view contract for this frame: view matrix, projection
// matrix and the camera world position the shader lights from.
func (c *Context) Apply(sink shader.Sink) {
	sink.SetMat4("view", c.Camera.ViewMatrix())
	sink.SetMat4("projection", c.Projection())
	p := c.Camera.Position
	sink.SetVec3("viewPosition", p.X, p.Y, p.Z)
}
