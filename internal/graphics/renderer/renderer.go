package renderer

import (
	"curve-viewer/internal/graphics"
	"curve-viewer/internal/logging"
	"curve-viewer/internal/profiling"
	"curve-viewer/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer draws a composed scene through its renderables
type Renderer struct {
	renderables []Renderable
	scene       *scene.Scene
}

// NewRenderer initializes every renderable against the scene. A renderable
// that fails to initialize is logged and skipped so the rest still draw.
func NewRenderer(sc *scene.Scene, rs ...Renderable) *Renderer {
	r := &Renderer{scene: sc}
	for _, rd := range rs {
		if err := rd.Init(); err != nil {
			logging.Logger().Warn("renderable init failed, skipping", "err", err)
			rd.Dispose()
			continue
		}
		r.renderables = append(r.renderables, rd)
	}
	return r
}

// Render clears the frame with the root state and draws every renderable.
// Uniform values must already be synchronized for this frame.
func (r *Renderer) Render() {
	defer profiling.Track("renderer.Render")()

	sc := r.scene
	graphics.ApplyState(sc.State)
	gl.ClearColor(sc.ClearColor[0], sc.ClearColor[1], sc.ClearColor[2], sc.ClearColor[3])
	gl.Clear(graphics.ClearBits(sc.ClearMask))

	ctx := RenderContext{Scene: sc}
	for _, rd := range r.renderables {
		rd.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// SetViewport resizes the GL viewport and informs every renderable
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, rd := range r.renderables {
		rd.SetViewport(width, height)
	}
}
