package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds the view and projection state read by uniform update rules.
// It is mutated by the manipulator and window callbacks between frames only.
type Camera struct {
	FOV       float32
	NearPlane float32
	FarPlane  float32

	width, height int

	eye, center, up mgl32.Vec3
}

// New creates a camera for a viewport of the given pixel size, looking down -Z
// from (0, 0, 1).
func New(width, height int) *Camera {
	return &Camera{
		FOV:       30.0,
		NearPlane: 0.1,
		FarPlane:  1000.0,
		width:     width,
		height:    height,
		eye:       mgl32.Vec3{0, 0, 1},
		center:    mgl32.Vec3{0, 0, 0},
		up:        mgl32.Vec3{0, 1, 0},
	}
}

// SetViewport records a new framebuffer size.
func (c *Camera) SetViewport(width, height int) {
	c.width = width
	c.height = height
}

// Viewport returns the current framebuffer size in pixels.
func (c *Camera) Viewport() (width, height int) {
	return c.width, c.height
}

// SetLookAt places the camera.
func (c *Camera) SetLookAt(eye, center, up mgl32.Vec3) {
	c.eye = eye
	c.center = center
	c.up = up
}

// LookAt returns the look-at parameters recovered from the current view matrix.
// The center is one unit in front of the eye.
func (c *Camera) LookAt() (eye, center, up mgl32.Vec3) {
	return DecomposeLookAt(c.ViewMatrix(), 1)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.eye, c.center, c.up)
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	aspect := float32(1)
	if c.height > 0 {
		aspect = float32(c.width) / float32(c.height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.NearPlane, c.FarPlane)
}
