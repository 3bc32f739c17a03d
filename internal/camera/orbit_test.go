package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestOrbitPitchClamp(t *testing.T) {
	o := NewOrbit()
	o.Rotate(0, 500)
	assert.Equal(t, 89.0, o.Pitch)
	o.Rotate(0, -1000)
	assert.Equal(t, -89.0, o.Pitch)
}

func TestOrbitEyeKeepsDistance(t *testing.T) {
	o := NewOrbit()
	o.Center = mgl32.Vec3{1, 2, 3}
	o.Distance = 4
	for _, yaw := range []float64{0, 45, 190, -75} {
		o.Yaw = yaw
		assert.InDelta(t, 4, o.Eye().Sub(o.Center).Len(), 1e-5)
	}
}

func TestOrbitMouseMovement(t *testing.T) {
	o := NewOrbit()
	o.Sensitivity = 1
	pitch := o.Pitch

	o.HandleMouseMovement(100, 100)
	assert.Equal(t, 0.0, o.Yaw, "first sample only records the cursor")

	o.HandleMouseMovement(110, 95)
	assert.Equal(t, 10.0, o.Yaw)
	assert.Equal(t, pitch+5, o.Pitch)
}

func TestOrbitHomeFramesSphere(t *testing.T) {
	o := NewOrbit()
	o.SetHome(mgl32.Vec3{1, 0, 0}, 2, 60)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, o.Center)
	assert.InDelta(t, 2/math.Sin(math.Pi/6), o.Distance, 1e-4)

	o.Zoom(3)
	o.Rotate(30, 10)
	o.Home()
	assert.InDelta(t, 4, o.Distance, 1e-4)
	assert.Equal(t, 0.0, o.Yaw)
}

func TestOrbitApply(t *testing.T) {
	o := NewOrbit()
	c := New(100, 100)
	o.Apply(c)

	eye, _, _ := c.LookAt()
	assertVecNear(t, o.Eye(), eye, 1e-4)
}
