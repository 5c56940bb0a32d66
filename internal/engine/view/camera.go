// Package view provides the per-frame view contract: a fly camera and the
// context object that pushes view, projection and camera position into the
// shader.
package view

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/stillscene/pkg/math"
)

const (
	pitchLimit  = 89.0
	minSpeed    = 1.0
	maxSpeed    = 40.0
	sensitivity = 0.1
)

// Camera is a free-flying first person camera. Yaw and Pitch are in
// degrees; yaw -90 looks down negative Z.
type Camera struct {
	Position math.Vec3
	Yaw      float32
	Pitch    float32
	FOV      float32
	Speed    float32
}

// NewCamera creates a camera at pos looking along front.
func NewCamera(pos, front math.Vec3, fov, speed float32) *Camera {
	c := &Camera{Position: pos, FOV: fov, Speed: speed}
	c.lookAlong(front)
	return c
}

// lookAlong sets yaw and pitch from a direction vector.
func (c *Camera) lookAlong(dir math.Vec3) {
	d := dir.Normalize()
	c.Pitch = math32.Asin(d.Y) * 180 / math32.Pi
	c.Yaw = math32.Atan2(d.Z, d.X) * 180 / math32.Pi
}

// Front returns the unit view direction.
func (c *Camera) Front() math.Vec3 {
	yaw := c.Yaw * math32.Pi / 180
	pitch := c.Pitch * math32.Pi / 180
	return math.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

// Right returns the unit right vector.
func (c *Camera) Right() math.Vec3 {
	return c.Front().Cross(math.Vec3{Y: 1}).Normalize()
}

// Move translates the camera. forward/right/up are -1, 0 or 1 per axis;
// dt is the frame time in seconds.
func (c *Camera) Move(forward, right, up float32, dt float32) {
	step := c.Speed * dt
	c.Position = c.Position.
		Add(c.Front().Scale(forward * step)).
		Add(c.Right().Scale(right * step)).
		Add(math.Vec3{Y: up * step})
}

// Look turns the camera by a mouse delta in pixels. Pitch is clamped so
// the view cannot flip over the poles.
func (c *Camera) Look(dx, dy float32) {
	c.Yaw += dx * sensitivity
	c.Pitch += dy * sensitivity
	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}
}

// AdjustSpeed scales movement speed with the scroll wheel, clamped to a
// usable range.
func (c *Camera) AdjustSpeed(delta float32) {
	c.Speed += delta
	if c.Speed < minSpeed {
		c.Speed = minSpeed
	}
	if c.Speed > maxSpeed {
		c.Speed = maxSpeed
	}
}

// ViewMatrix returns the look-at matrix for the current pose.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front()), math.Vec3{Y: 1})
}
