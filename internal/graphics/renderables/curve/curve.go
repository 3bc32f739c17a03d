package curve

import (
	"curve-viewer/internal/graphics"
	renderer "curve-viewer/internal/graphics/renderer"
	"curve-viewer/internal/logging"
	"curve-viewer/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertex attribute locations shared with the shader sources.
const (
	PositionLocation = 0
	ColorLocation    = 1
)

// Curve draws one scene unit
type Curve struct {
	unit   *scene.Unit
	shader *graphics.Shader
	mode   uint32
	vao    uint32
	vbo    [2]uint32
}

// New creates a renderable for a built unit
func New(u *scene.Unit) *Curve {
	return &Curve{unit: u}
}

// Init compiles the unit's program and uploads its vertex data
func (c *Curve) Init() error {
	var err error
	c.shader, err = graphics.NewShader(c.unit.Program())
	if err != nil {
		return err
	}
	c.mode = graphics.Topology(c.unit.Geometry.Topology)
	c.setupVAO()

	logging.Logger().Debug("curve uploaded",
		"variant", c.unit.Variant.String(), "program", c.shader.ID, "vao", c.vao)
	return nil
}

func (c *Curve) setupVAO() {
	g := c.unit.Geometry

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	gl.GenBuffers(2, &c.vbo[0])

	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo[0])
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Positions)*3*4, gl.Ptr(g.Positions), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(PositionLocation)
	gl.VertexAttribPointerWithOffset(PositionLocation, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo[1])
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Colors)*4*4, gl.Ptr(g.Colors), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(ColorLocation)
	gl.VertexAttribPointerWithOffset(ColorLocation, 4, gl.FLOAT, false, 4*4, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Render applies the unit's state and uniforms and draws it
func (c *Curve) Render(ctx renderer.RenderContext) {
	c.shader.Use()
	graphics.ApplyState(c.unit.State)
	graphics.ApplyUniforms(c.shader, c.unit.State)

	gl.BindVertexArray(c.vao)
	gl.DrawArrays(c.mode, 0, int32(c.unit.Geometry.Count()))
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (c *Curve) Dispose() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
	if c.vbo[0] != 0 {
		gl.DeleteBuffers(2, &c.vbo[0])
		c.vbo = [2]uint32{}
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}

// SetViewport is a no-op; the viewport reaches the shaders as a uniform.
func (c *Curve) SetViewport(width, height int) {}
