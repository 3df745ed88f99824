package renderer

import (
	"fmt"

	"desk-scene/internal/camera"
	"desk-scene/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *camera.Camera
	clearColor  mgl32.Vec4
	wireframe   bool
}

// NewRenderer configures global GL state and initialises each renderable in order.
// If one fails, the ones already initialised are disposed.
func NewRenderer(cam *camera.Camera, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{
		camera:     cam,
		clearColor: mgl32.Vec4{0, 0, 0, 1},
	}

	for _, rr := range rs {
		if err := rr.Init(); err != nil {
			r.Dispose()
			return nil, fmt.Errorf("init renderable: %w", err)
		}
		r.renderables = append(r.renderables, rr)
	}

	return r, nil
}

// SetClearColor sets the background colour
func (r *Renderer) SetClearColor(c mgl32.Vec4) {
	r.clearColor = c
}

// ToggleWireframe switches between filled and line polygon modes
func (r *Renderer) ToggleWireframe() bool {
	r.wireframe = !r.wireframe
	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	return r.wireframe
}

// Render clears the frame and draws every renderable
func (r *Renderer) Render(dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		DT:     dt,
		View:   r.camera.ViewMatrix(),
		Proj:   r.camera.ProjectionMatrix(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// Camera returns the camera instance
func (r *Renderer) Camera() *camera.Camera {
	return r.camera
}

// UpdateViewport resizes the GL viewport and forwards the size to the camera and renderables
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
	for _, rr := range r.renderables {
		rr.SetViewport(width, height)
	}
}
