package scene

import (
	"curve-viewer/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraState is the camera data read by the update rules. Implementations
// must not change while a traversal is in progress.
type CameraState interface {
	ViewMatrix() mgl32.Mat4
	ProjectionMatrix() mgl32.Mat4
	Viewport() (width, height int)
}

// Synchronizer recomputes dynamic uniforms from the camera and the
// accumulated world transform of the node being visited. Nothing is cached
// between traversals.
type Synchronizer struct {
	camera CameraState
}

// NewSynchronizer binds the update rules to a camera. A nil camera is a
// programming error and panics.
func NewSynchronizer(c CameraState) *Synchronizer {
	if c == nil {
		panic("scene: NewSynchronizer called with nil camera")
	}
	return &Synchronizer{camera: c}
}

// updateRules is indexed by UpdateRule. RuleConstant has no entry.
var updateRules = [ruleCount]func(s *Synchronizer, u *Uniform, world mgl32.Mat4){
	RuleModelViewProjection: func(s *Synchronizer, u *Uniform, world mgl32.Mat4) {
		u.m4 = s.ModelViewProjection(world)
	},
	RuleViewport: func(s *Synchronizer, u *Uniform, _ mgl32.Mat4) {
		u.v2 = s.Viewport()
	},
	RuleCameraEye: func(s *Synchronizer, u *Uniform, _ mgl32.Mat4) {
		u.v4 = s.CameraEye()
	},
}

// Update writes the current value of u for a node with the given world
// transform. Constant uniforms are left untouched.
func (s *Synchronizer) Update(u *Uniform, world mgl32.Mat4) {
	if u.Rule < 0 || u.Rule >= ruleCount {
		return
	}
	if fn := updateRules[u.Rule]; fn != nil {
		fn(s, u, world)
	}
}

// ModelViewProjection returns the clip transform for a node. In row-vector
// terms this is world × view × projection; mgl32 uses column vectors, so the
// same chain is written projection · view · world.
func (s *Synchronizer) ModelViewProjection(world mgl32.Mat4) mgl32.Mat4 {
	return s.camera.ProjectionMatrix().Mul4(s.camera.ViewMatrix()).Mul4(world)
}

// Viewport returns the live framebuffer size.
func (s *Synchronizer) Viewport() mgl32.Vec2 {
	w, h := s.camera.Viewport()
	return mgl32.Vec2{float32(w), float32(h)}
}

// CameraEye returns the eye position decomposed from the view matrix, w = 1.
func (s *Synchronizer) CameraEye() mgl32.Vec4 {
	eye, _, _ := camera.DecomposeLookAt(s.camera.ViewMatrix(), 1)
	return eye.Vec4(1)
}
