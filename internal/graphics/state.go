package graphics

import (
	"curve-viewer/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var blendFactors = map[scene.BlendFactor]uint32{
	scene.BlendZero:             gl.ZERO,
	scene.BlendOne:              gl.ONE,
	scene.BlendSrcAlpha:         gl.SRC_ALPHA,
	scene.BlendOneMinusSrcAlpha: gl.ONE_MINUS_SRC_ALPHA,
}

// Topology maps a scene topology to the GL primitive. Core profile has no
// GL_POLYGON; a convex outline drawn as a fan covers the same pixels.
func Topology(t scene.Topology) uint32 {
	if t == scene.TopologyLinesAdjacency {
		return gl.LINES_ADJACENCY
	}
	return gl.TRIANGLE_FAN
}

// ApplyState sets the GL modes a state set names. Modes it leaves unset are
// not touched. Lighting has no core-profile switch and is ignored.
func ApplyState(s *scene.StateSet) {
	if on, set := s.Mode(scene.ModeBlend); set {
		enable(gl.BLEND, on)
		if on {
			gl.BlendFunc(blendFactors[s.Blend.Src], blendFactors[s.Blend.Dst])
		}
	}
	if on, set := s.Mode(scene.ModeLineSmooth); set {
		enable(gl.LINE_SMOOTH, on)
	}
	if on, set := s.Mode(scene.ModeDepthTest); set {
		enable(gl.DEPTH_TEST, on)
	}
	if s.LineWidth > 0 {
		gl.LineWidth(s.LineWidth)
	}
}

// ApplyUniforms uploads every bound uniform to the active program.
func ApplyUniforms(sh *Shader, s *scene.StateSet) {
	for _, u := range s.Uniforms() {
		switch u.Type {
		case scene.UniformFloat:
			sh.SetFloat(u.Name, u.Float())
		case scene.UniformInt:
			sh.SetInt(u.Name, u.Int())
		case scene.UniformBool:
			sh.SetBool(u.Name, u.Bool())
		case scene.UniformVec2:
			sh.SetVector2(u.Name, u.Vec2())
		case scene.UniformVec4:
			sh.SetVector4(u.Name, u.Vec4())
		case scene.UniformMat4:
			m := u.Mat4()
			sh.SetMatrix4(u.Name, &m[0])
		}
	}
}

func enable(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// ClearBits maps a scene clear mask to GL buffer bits.
func ClearBits(m scene.ClearMask) uint32 {
	var bits uint32
	if m&scene.ClearColor != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if m&scene.ClearDepth != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	return bits
}
