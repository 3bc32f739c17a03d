package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit is a trackball-style manipulator circling a center point.
type Orbit struct {
	Center   mgl32.Vec3
	Distance float32
	Yaw      float64 // degrees around +Y
	Pitch    float64 // degrees above the XZ plane

	home struct {
		center   mgl32.Vec3
		distance float32
	}

	Sensitivity float64
	FirstMouse  bool
	lastX       float64
	lastY       float64
}

// NewOrbit creates a manipulator looking at the origin.
func NewOrbit() *Orbit {
	o := &Orbit{
		Distance:    5,
		Pitch:       20,
		Sensitivity: 0.3,
		FirstMouse:  true,
	}
	o.home.distance = o.Distance
	return o
}

// SetHome frames a bounding sphere and moves the manipulator there. The
// distance fits the sphere inside a vertical field of view of fovDeg degrees.
func (o *Orbit) SetHome(center mgl32.Vec3, radius, fovDeg float32) {
	if radius <= 0 {
		radius = 1
	}
	half := float64(mgl32.DegToRad(fovDeg)) / 2
	o.home.center = center
	o.home.distance = radius / float32(math.Sin(half))
	o.Home()
}

// Home returns to the last home position.
func (o *Orbit) Home() {
	o.Center = o.home.center
	o.Distance = o.home.distance
	o.Yaw = 0
	o.Pitch = 20
}

// HandleMouseMovement rotates by the cursor delta since the last call.
func (o *Orbit) HandleMouseMovement(xpos, ypos float64) {
	if o.FirstMouse {
		o.lastX = xpos
		o.lastY = ypos
		o.FirstMouse = false
		return
	}

	xoffset := xpos - o.lastX
	yoffset := o.lastY - ypos
	o.lastX = xpos
	o.lastY = ypos

	o.Rotate(xoffset*o.Sensitivity, yoffset*o.Sensitivity)
}

// Rotate turns the eye around the center by the given degrees.
func (o *Orbit) Rotate(dYaw, dPitch float64) {
	o.Yaw += dYaw
	o.Pitch += dPitch

	// Constrain pitch
	if o.Pitch > 89.0 {
		o.Pitch = 89.0
	}
	if o.Pitch < -89.0 {
		o.Pitch = -89.0
	}
}

// Zoom scales the distance; positive steps move closer.
func (o *Orbit) Zoom(steps float64) {
	o.Distance *= float32(math.Pow(0.9, steps))
	if o.Distance < 0.01 {
		o.Distance = 0.01
	}
}

// Eye returns the eye position for the current orbit.
func (o *Orbit) Eye() mgl32.Vec3 {
	y := float64(mgl32.DegToRad(float32(o.Yaw)))
	p := float64(mgl32.DegToRad(float32(o.Pitch)))
	dir := mgl32.Vec3{
		float32(math.Sin(y) * math.Cos(p)),
		float32(math.Sin(p)),
		float32(math.Cos(y) * math.Cos(p)),
	}
	return o.Center.Add(dir.Mul(o.Distance))
}

// Apply writes the orbit into the camera.
func (o *Orbit) Apply(c *Camera) {
	c.SetLookAt(o.Eye(), o.Center, mgl32.Vec3{0, 1, 0})
}
