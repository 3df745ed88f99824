package renderer

import (
	"desk-scene/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame state for all renderables
type RenderContext struct {
	Camera *camera.Camera
	DT     float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
