package scene

import (
	"math"
	"testing"

	"curve-viewer/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCamera struct {
	view, proj    mgl32.Mat4
	width, height int
}

func (c *fakeCamera) ViewMatrix() mgl32.Mat4        { return c.view }
func (c *fakeCamera) ProjectionMatrix() mgl32.Mat4  { return c.proj }
func (c *fakeCamera) Viewport() (width, height int) { return c.width, c.height }

func newFakeCamera() *fakeCamera {
	return &fakeCamera{
		view:   mgl32.LookAtV(mgl32.Vec3{3, 4, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}),
		proj:   mgl32.Perspective(mgl32.DegToRad(30), 1280.0/960.0, 0.1, 1000),
		width:  1280,
		height: 960,
	}
}

func assertMatNear(t *testing.T, want, got mgl32.Mat4, tol float64) {
	t.Helper()
	for i := range want {
		scale := math.Max(1, math.Abs(float64(want[i])))
		assert.InDelta(t, want[i], got[i], tol*scale, "element %d\nwant %v\ngot  %v", i, want, got)
	}
}

func TestModelViewProjectionComposition(t *testing.T) {
	cam := newFakeCamera()
	sync := NewSynchronizer(cam)

	worlds := []mgl32.Mat4{
		mgl32.Ident4(),
		mgl32.Translate3D(1, 2, 3),
		mgl32.Translate3D(-1, 0.5, 2).Mul4(mgl32.HomogRotate3DY(0.3)).Mul4(mgl32.Scale3D(2, 2, 2)),
	}
	for _, w := range worlds {
		got := sync.ModelViewProjection(w)

		// column-vector form
		assertMatNear(t, cam.proj.Mul4(cam.view).Mul4(w), got, 1e-6)

		// row-vector form: W × V × P over transposed matrices
		row := w.Transpose().Mul4(cam.view.Transpose()).Mul4(cam.proj.Transpose())
		assertMatNear(t, row, got.Transpose(), 1e-5)
	}
}

func TestModelViewProjectionOrderMatters(t *testing.T) {
	cam := newFakeCamera()
	sync := NewSynchronizer(cam)
	w := mgl32.Translate3D(1, 2, 3)

	wrong := w.Mul4(cam.view).Mul4(cam.proj)
	assert.False(t, sync.ModelViewProjection(w).ApproxEqualThreshold(wrong, 1e-3))
}

func TestViewportIsReadLive(t *testing.T) {
	cam := newFakeCamera()
	sync := NewSynchronizer(cam)
	u := NewDynamic(NameViewport, RuleViewport)

	sync.Update(u, mgl32.Ident4())
	assert.Equal(t, mgl32.Vec2{1280, 960}, u.Vec2())

	cam.width, cam.height = 800, 600
	sync.Update(u, mgl32.Ident4())
	assert.Equal(t, mgl32.Vec2{800, 600}, u.Vec2())
}

func TestCameraEyeRoundTrip(t *testing.T) {
	tests := []struct {
		eye, center, up mgl32.Vec3
	}{
		{mgl32.Vec3{3, 4, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-10, 2, 0.5}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -7}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}},
	}
	for _, tt := range tests {
		cam := newFakeCamera()
		cam.view = mgl32.LookAtV(tt.eye, tt.center, tt.up)
		sync := NewSynchronizer(cam)

		u := NewDynamic(NameCameraEye, RuleCameraEye)
		sync.Update(u, mgl32.Ident4())

		got := u.Vec4()
		assert.Equal(t, float32(1), got.W())
		for i := range 3 {
			assert.InDelta(t, tt.eye[i], got[i], 1e-4)
		}
	}
}

func TestCameraEyeUsesCameraPackageCamera(t *testing.T) {
	c := camera.New(640, 480)
	c.SetLookAt(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	sync := NewSynchronizer(c)

	eye := sync.CameraEye()
	assert.InDelta(t, 1, eye.X(), 1e-4)
	assert.InDelta(t, 2, eye.Y(), 1e-4)
	assert.InDelta(t, 3, eye.Z(), 1e-4)
	assert.Equal(t, mgl32.Vec2{640, 480}, sync.Viewport())
}

func TestConstantIsNotRecomputed(t *testing.T) {
	sync := NewSynchronizer(newFakeCamera())
	fog := NewVec4(NameFogColor, mgl32.Vec4{0.6, 0.6, 0.7, 1})

	sync.Update(fog, mgl32.Translate3D(9, 9, 9))
	assert.Equal(t, mgl32.Vec4{0.6, 0.6, 0.7, 1}, fog.Vec4())

	odd := &Uniform{Name: "odd", Rule: UpdateRule(42)}
	assert.NotPanics(t, func() { sync.Update(odd, mgl32.Ident4()) })
}

func TestNewSynchronizerNilCameraPanics(t *testing.T) {
	require.Panics(t, func() { NewSynchronizer(nil) })
}

func TestNewDynamicTypes(t *testing.T) {
	assert.Equal(t, UniformMat4, NewDynamic("m", RuleModelViewProjection).Type)
	assert.Equal(t, UniformVec2, NewDynamic("v", RuleViewport).Type)
	assert.Equal(t, UniformVec4, NewDynamic("e", RuleCameraEye).Type)
	assert.Panics(t, func() { NewDynamic("c", RuleConstant) })
}
