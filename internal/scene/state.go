package scene

import "curve-viewer/internal/shader"

// Mode is a fixed-function render state toggle
type Mode int

const (
	ModeLighting Mode = iota
	ModeBlend
	ModeLineSmooth
	ModeDepthTest
)

// BlendFactor mirrors the GL blend factors the viewer uses
type BlendFactor int

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
)

// BlendFunc is a source/destination blend factor pair
type BlendFunc struct {
	Src, Dst BlendFactor
}

// DefaultBlendFunc is standard alpha blending.
var DefaultBlendFunc = BlendFunc{Src: BlendSrcAlpha, Dst: BlendOneMinusSrcAlpha}

// StateSet gathers the render modes, shader program and uniforms applied
// when drawing a node.
type StateSet struct {
	modes map[Mode]bool

	Blend BlendFunc
	// LineWidth is a rasterization hint; 0 leaves the GL default.
	LineWidth float32
	Program   *shader.Program

	uniforms []*Uniform
}

func NewStateSet() *StateSet {
	return &StateSet{modes: make(map[Mode]bool)}
}

// SetMode switches a mode on or off explicitly.
func (s *StateSet) SetMode(m Mode, on bool) {
	s.modes[m] = on
}

// Mode reports the mode value and whether it was set at all.
func (s *StateSet) Mode(m Mode) (on, set bool) {
	on, set = s.modes[m]
	return on, set
}

// Enabled reports whether a mode is explicitly on.
func (s *StateSet) Enabled(m Mode) bool {
	return s.modes[m]
}

// AddUniform binds u, replacing any uniform of the same name.
func (s *StateSet) AddUniform(u *Uniform) {
	for i, existing := range s.uniforms {
		if existing.Name == u.Name {
			s.uniforms[i] = u
			return
		}
	}
	s.uniforms = append(s.uniforms, u)
}

// Uniform returns the uniform with the given name, or nil.
func (s *StateSet) Uniform(name string) *Uniform {
	for _, u := range s.uniforms {
		if u.Name == name {
			return u
		}
	}
	return nil
}

// Uniforms returns the bound uniforms in insertion order.
func (s *StateSet) Uniforms() []*Uniform {
	return s.uniforms
}
