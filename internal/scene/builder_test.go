package scene

import (
	"bytes"
	"log/slog"
	"testing"
	"testing/fstest"

	"curve-viewer/internal/config"
	"curve-viewer/internal/data"
	"curve-viewer/internal/logging"
	"curve-viewer/internal/shader"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shaderFS() fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, name := range []string{"polygon", "bezier", "polyline"} {
		for s := shader.StageVertex; s < shader.StageCount; s++ {
			fsys[shader.Path(name, s)] = &fstest.MapFile{Data: []byte("// " + name + s.Ext())}
		}
	}
	return fsys
}

func newTestBuilder() *Builder {
	return NewBuilder(shader.FSLoader{FS: shaderFS()})
}

func defaultSettings(t *testing.T) *config.Settings {
	t.Helper()
	s, err := config.Default()
	require.NoError(t, err)
	return s
}

func uniformNames(s *StateSet) []string {
	var names []string
	for _, u := range s.Uniforms() {
		names = append(names, u.Name)
	}
	return names
}

func TestBuildFilled(t *testing.T) {
	s := defaultSettings(t)
	unit, err := newTestBuilder().Build(VariantFilled, data.PolygonPositions, data.PolygonColors, "", TuningFor(VariantFilled, s))
	require.NoError(t, err)

	assert.Equal(t, TopologyPolygon, unit.Geometry.Topology)
	assert.Equal(t, 6, unit.Geometry.Count())
	assert.Equal(t, []string{NameModelViewProjection, NameCameraEye, NameFogColor}, uniformNames(unit.State))
	assert.Equal(t, RuleConstant, unit.State.Uniform(NameFogColor).Rule)
	assert.Equal(t, s.FogColor(), unit.State.Uniform(NameFogColor).Vec4())
	assert.Nil(t, unit.State.Uniform(NameViewport))

	assert.False(t, unit.Program().Has(shader.StageGeometry))
	assert.True(t, unit.Program().Has(shader.StageVertex))
	assert.True(t, unit.Program().Has(shader.StageFragment))
	assert.False(t, unit.Program().Degraded())
}

func TestBuildBezier(t *testing.T) {
	s := defaultSettings(t)
	unit, err := newTestBuilder().Build(VariantBezier, data.BezierPositions, data.BezierColors, "", TuningFor(VariantBezier, s))
	require.NoError(t, err)

	assert.Equal(t, TopologyLinesAdjacency, unit.Geometry.Topology)
	assert.Equal(t, 12, unit.Geometry.Count())
	assert.Equal(t, float32(27.0), unit.State.Uniform(NameThickness).Float())
	assert.Equal(t, float32(0.75), unit.State.Uniform(NameMiterLimit).Float())
	assert.Equal(t, int32(30), unit.State.Uniform(NameSegments).Int())
	assert.Equal(t, UniformInt, unit.State.Uniform(NameSegments).Type)
	assert.True(t, unit.State.Uniform(NameIsFogged).Bool())
	assert.Equal(t, s.FogColor(), unit.State.Uniform(NameFogColor).Vec4())
	assert.Equal(t, RuleViewport, unit.State.Uniform(NameViewport).Rule)
	assert.True(t, unit.Program().Has(shader.StageGeometry))
}

func TestBuildPolyline(t *testing.T) {
	s := defaultSettings(t)
	unit, err := newTestBuilder().Build(VariantPolyline, data.PolylinePositions, data.PolylineColors, "", TuningFor(VariantPolyline, s))
	require.NoError(t, err)

	assert.Equal(t, []string{
		NameModelViewProjection, NameViewport, NameCameraEye, NameThickness, NameMiterLimit,
	}, uniformNames(unit.State))
	assert.Equal(t, float32(12.0), unit.State.Uniform(NameThickness).Float())
	assert.Equal(t, float32(0.1), unit.State.Uniform(NameMiterLimit).Float())
	assert.Nil(t, unit.State.Uniform(NameFogColor))
}

func TestBuildRenderState(t *testing.T) {
	tuning := Tuning{Thickness: 1, LineWidth: 2.5}
	unit, err := newTestBuilder().Build(VariantPolyline, data.PolylinePositions, data.PolylineColors, "", tuning)
	require.NoError(t, err)

	on, set := unit.State.Mode(ModeLighting)
	assert.True(t, set)
	assert.False(t, on)
	assert.True(t, unit.State.Enabled(ModeBlend))
	assert.True(t, unit.State.Enabled(ModeLineSmooth))
	assert.Equal(t, DefaultBlendFunc, unit.State.Blend)
	assert.Equal(t, float32(2.5), unit.State.LineWidth)
	assert.Equal(t, mgl32.Ident4(), unit.Transform)
}

func TestBuildPreconditions(t *testing.T) {
	b := newTestBuilder()
	tests := []struct {
		name      string
		variant   Variant
		positions []mgl32.Vec3
		colors    []mgl32.Vec4
		want      error
	}{
		{"polyline not multiple of 4", VariantPolyline, data.PolylinePositions[:6], data.PolylineColors[:6], ErrSegmentSize},
		{"bezier not multiple of 4", VariantBezier, data.BezierPositions[:11], data.BezierColors[:11], ErrSegmentSize},
		{"empty adjacency", VariantBezier, nil, nil, ErrTooFewVertices},
		{"color count", VariantBezier, data.BezierPositions, data.BezierColors[:8], ErrColorCount},
		{"polygon too small", VariantFilled, data.PolygonPositions[:2], data.PolygonColors[:2], ErrTooFewVertices},
		{"unknown variant", Variant(9), data.PolygonPositions, data.PolygonColors, ErrUnknownVariant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, err := b.Build(tt.variant, tt.positions, tt.colors, "", Tuning{})
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, unit)
		})
	}
}

func TestBuildMissingShaderIsDegradedNotFatal(t *testing.T) {
	var buf bytes.Buffer
	logging.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { logging.SetLogger(nil) })

	fsys := shaderFS()
	delete(fsys, shader.Path("bezier", shader.StageGeometry))

	unit, err := NewBuilder(shader.FSLoader{FS: fsys}).Build(VariantBezier, data.BezierPositions, data.BezierColors, "", Tuning{})
	require.NoError(t, err)
	assert.True(t, unit.Program().Degraded())
	assert.Equal(t, []shader.Stage{shader.StageGeometry}, unit.Program().Missing)
	assert.Contains(t, buf.String(), "shader load failure")
}

func TestBuildCustomShaderName(t *testing.T) {
	fsys := fstest.MapFS{
		"Shaders/ribbon.vert": {Data: []byte("v")},
		"Shaders/ribbon.geom": {Data: []byte("g")},
		"Shaders/ribbon.frag": {Data: []byte("f")},
	}
	unit, err := NewBuilder(shader.FSLoader{FS: fsys}).Build(VariantPolyline, data.PolylinePositions, data.PolylineColors, "ribbon", Tuning{})
	require.NoError(t, err)
	assert.Equal(t, "ribbon", unit.Program().Name)
	assert.Equal(t, "g", unit.Program().Sources[shader.StageGeometry])
}

func TestBuildCopiesVertexData(t *testing.T) {
	positions := append([]mgl32.Vec3(nil), data.PolygonPositions...)
	unit, err := newTestBuilder().Build(VariantFilled, positions, data.PolygonColors, "", Tuning{})
	require.NoError(t, err)

	positions[0] = mgl32.Vec3{42, 42, 42}
	assert.Equal(t, data.PolygonPositions[0], unit.Geometry.Positions[0])
}

func TestVariantNames(t *testing.T) {
	assert.Equal(t, "polygon", VariantFilled.ShaderName())
	assert.Equal(t, "bezier", VariantBezier.String())
	assert.Equal(t, TopologyLinesAdjacency, VariantPolyline.Topology())
	assert.Equal(t, "Variant(7)", Variant(7).String())
}
