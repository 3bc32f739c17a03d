package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformType is the shader-visible type of a uniform
type UniformType int

const (
	UniformFloat UniformType = iota
	UniformInt
	UniformBool
	UniformVec2
	UniformVec4
	UniformMat4
)

func (t UniformType) String() string {
	switch t {
	case UniformFloat:
		return "float"
	case UniformInt:
		return "int"
	case UniformBool:
		return "bool"
	case UniformVec2:
		return "vec2"
	case UniformVec4:
		return "vec4"
	case UniformMat4:
		return "mat4"
	}
	return fmt.Sprintf("UniformType(%d)", int(t))
}

// UpdateRule selects how a uniform's value is produced each traversal
type UpdateRule int

const (
	// RuleConstant values are set at construction and never recomputed.
	RuleConstant UpdateRule = iota
	RuleModelViewProjection
	RuleViewport
	RuleCameraEye
	ruleCount
)

func (r UpdateRule) String() string {
	switch r {
	case RuleConstant:
		return "Constant"
	case RuleModelViewProjection:
		return "ModelViewProjection"
	case RuleViewport:
		return "Viewport"
	case RuleCameraEye:
		return "CameraEye"
	}
	return fmt.Sprintf("UpdateRule(%d)", int(r))
}

// Uniform names shared with the shader sources.
const (
	NameModelViewProjection = "ModelViewProjectionMatrix"
	NameViewport            = "Viewport"
	NameCameraEye           = "CameraEye"
	NameFogColor            = "FogColor"
	NameThickness           = "Thickness"
	NameMiterLimit          = "MiterLimit"
	NameSegments            = "Segments"
	NameIsFogged            = "IsFogged"
)

// Uniform is a named shader-visible value bound to exactly one update rule.
// Only the field matching Type is meaningful.
type Uniform struct {
	Name string
	Type UniformType
	Rule UpdateRule

	f  float32
	i  int32
	v2 mgl32.Vec2
	v4 mgl32.Vec4
	m4 mgl32.Mat4
}

func NewFloat(name string, v float32) *Uniform {
	return &Uniform{Name: name, Type: UniformFloat, f: v}
}

func NewInt(name string, v int32) *Uniform {
	return &Uniform{Name: name, Type: UniformInt, i: v}
}

func NewBool(name string, v bool) *Uniform {
	u := &Uniform{Name: name, Type: UniformBool}
	if v {
		u.i = 1
	}
	return u
}

func NewVec4(name string, v mgl32.Vec4) *Uniform {
	return &Uniform{Name: name, Type: UniformVec4, v4: v}
}

// NewDynamic creates a uniform recomputed every traversal by rule. The type
// follows from the rule.
func NewDynamic(name string, rule UpdateRule) *Uniform {
	u := &Uniform{Name: name, Rule: rule}
	switch rule {
	case RuleModelViewProjection:
		u.Type = UniformMat4
		u.m4 = mgl32.Ident4()
	case RuleViewport:
		u.Type = UniformVec2
	case RuleCameraEye:
		u.Type = UniformVec4
	default:
		panic(fmt.Sprintf("scene: %v is not a dynamic update rule", rule))
	}
	return u
}

func (u *Uniform) Float() float32   { return u.f }
func (u *Uniform) Int() int32       { return u.i }
func (u *Uniform) Bool() bool       { return u.i != 0 }
func (u *Uniform) Vec2() mgl32.Vec2 { return u.v2 }
func (u *Uniform) Vec4() mgl32.Vec4 { return u.v4 }
func (u *Uniform) Mat4() mgl32.Mat4 { return u.m4 }
func (u *Uniform) IsDynamic() bool  { return u.Rule != RuleConstant }
func (u *Uniform) String() string   { return u.Name + " " + u.Type.String() + " " + u.Rule.String() }
