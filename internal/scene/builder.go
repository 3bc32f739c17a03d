package scene

import (
	"errors"
	"fmt"

	"curve-viewer/internal/config"
	"curve-viewer/internal/logging"
	"curve-viewer/internal/shader"

	"github.com/go-gl/mathgl/mgl32"
)

// Variant selects how a curve is drawn
type Variant int

const (
	VariantFilled Variant = iota
	VariantBezier
	VariantPolyline
)

var (
	ErrUnknownVariant = errors.New("unknown curve variant")
	ErrColorCount     = errors.New("position and color counts differ")
	ErrSegmentSize    = errors.New("adjacency vertex count is not a multiple of 4")
	ErrTooFewVertices = errors.New("too few vertices")
)

type variantInfo struct {
	name     string
	topology Topology
	stages   []shader.Stage
	// viewport is bound only where the shader works in screen space.
	viewport  bool
	constants func(t Tuning) []*Uniform
}

var variants = map[Variant]variantInfo{
	VariantFilled: {
		name:     "polygon",
		topology: TopologyPolygon,
		stages:   []shader.Stage{shader.StageVertex, shader.StageFragment},
		constants: func(t Tuning) []*Uniform {
			return []*Uniform{NewVec4(NameFogColor, t.FogColor)}
		},
	},
	VariantBezier: {
		name:     "bezier",
		topology: TopologyLinesAdjacency,
		stages:   []shader.Stage{shader.StageVertex, shader.StageGeometry, shader.StageFragment},
		viewport: true,
		constants: func(t Tuning) []*Uniform {
			return []*Uniform{
				NewFloat(NameThickness, t.Thickness),
				NewFloat(NameMiterLimit, t.MiterLimit),
				NewInt(NameSegments, t.Segments),
				NewVec4(NameFogColor, t.FogColor),
				NewBool(NameIsFogged, t.Fogged),
			}
		},
	},
	VariantPolyline: {
		name:     "polyline",
		topology: TopologyLinesAdjacency,
		stages:   []shader.Stage{shader.StageVertex, shader.StageGeometry, shader.StageFragment},
		viewport: true,
		constants: func(t Tuning) []*Uniform {
			return []*Uniform{
				NewFloat(NameThickness, t.Thickness),
				NewFloat(NameMiterLimit, t.MiterLimit),
			}
		},
	},
}

func (v Variant) String() string {
	if info, ok := variants[v]; ok {
		return info.name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ShaderName is the default shader triple name, e.g. "bezier".
func (v Variant) ShaderName() string {
	return variants[v].name
}

// Topology returns the primitive topology the variant draws with.
func (v Variant) Topology() Topology {
	return variants[v].topology
}

// Tuning holds the constant shader inputs of one unit. Fields a variant does
// not use are ignored.
type Tuning struct {
	Thickness  float32
	MiterLimit float32
	Segments   int32
	Fogged     bool
	FogColor   mgl32.Vec4
	LineWidth  float32
}

// TuningFor reads a variant's tuning from the settings.
func TuningFor(v Variant, s *config.Settings) Tuning {
	var t config.Tuning
	switch v {
	case VariantFilled:
		t = s.Tuning.Polygon
	case VariantBezier:
		t = s.Tuning.Bezier
	case VariantPolyline:
		t = s.Tuning.Polyline
	}
	return Tuning{
		Thickness:  t.Thickness,
		MiterLimit: t.MiterLimit,
		Segments:   t.Segments,
		Fogged:     t.Fogged,
		FogColor:   s.FogColor(),
		LineWidth:  t.LineWidth,
	}
}

// Builder assembles renderable units, requesting shader text from Loader.
type Builder struct {
	Loader shader.Loader
}

func NewBuilder(l shader.Loader) *Builder {
	return &Builder{Loader: l}
}

// Validate checks the vertex data against the variant's topology.
func Validate(v Variant, positions []mgl32.Vec3, colors []mgl32.Vec4) error {
	info, ok := variants[v]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	if len(positions) != len(colors) {
		return fmt.Errorf("%s: %w (%d positions, %d colors)", info.name, ErrColorCount, len(positions), len(colors))
	}
	switch info.topology {
	case TopologyPolygon:
		if len(positions) < 3 {
			return fmt.Errorf("%s: %w: polygon needs 3, got %d", info.name, ErrTooFewVertices, len(positions))
		}
	case TopologyLinesAdjacency:
		if len(positions) == 0 {
			return fmt.Errorf("%s: %w: need at least one segment", info.name, ErrTooFewVertices)
		}
		if len(positions)%4 != 0 {
			return fmt.Errorf("%s: %w: got %d", info.name, ErrSegmentSize, len(positions))
		}
	}
	return nil
}

// Build creates one unit for a curve variant. name selects the shader
// triple under shader.Dir; an empty name uses the variant's default. Invalid
// vertex data is rejected. A shader stage that fails to load is logged and
// left out, and the unit is still returned.
func (b *Builder) Build(v Variant, positions []mgl32.Vec3, colors []mgl32.Vec4, name string, t Tuning) (*Unit, error) {
	if err := Validate(v, positions, colors); err != nil {
		return nil, err
	}
	info := variants[v]
	if name == "" {
		name = info.name
	}

	geom := &Geometry{
		Topology:  info.topology,
		Positions: append([]mgl32.Vec3(nil), positions...),
		Colors:    append([]mgl32.Vec4(nil), colors...),
	}

	state := NewStateSet()
	state.Program = shader.LoadProgram(b.Loader, name, info.stages...)

	state.AddUniform(NewDynamic(NameModelViewProjection, RuleModelViewProjection))
	if info.viewport {
		state.AddUniform(NewDynamic(NameViewport, RuleViewport))
	}
	state.AddUniform(NewDynamic(NameCameraEye, RuleCameraEye))
	for _, u := range info.constants(t) {
		state.AddUniform(u)
	}

	state.SetMode(ModeLighting, false)
	state.SetMode(ModeBlend, true)
	state.Blend = DefaultBlendFunc
	state.SetMode(ModeLineSmooth, true)
	state.LineWidth = t.LineWidth

	unit := &Unit{
		Variant:   v,
		Geometry:  geom,
		State:     state,
		Transform: mgl32.Ident4(),
	}

	logging.Logger().Debug("built curve unit",
		"variant", v.String(),
		"program", name,
		"vertices", geom.Count(),
		"uniforms", len(state.Uniforms()),
		"degraded", state.Program.Degraded())

	return unit, nil
}
