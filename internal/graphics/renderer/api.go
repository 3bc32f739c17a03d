package renderer

import (
	"curve-viewer/internal/scene"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Scene *scene.Scene
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
