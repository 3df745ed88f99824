package main

import (
	"log"
	"time"

	"desk-scene/internal/camera"
	"desk-scene/internal/graphics/renderables/desk"
	"desk-scene/internal/graphics/renderer"
	"desk-scene/internal/input"
	"desk-scene/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// movement maps held actions to camera directions
var movement = []struct {
	action input.Action
	dir    camera.Movement
}{
	{input.ActionMoveForward, camera.Forward},
	{input.ActionMoveBackward, camera.Backward},
	{input.ActionMoveLeft, camera.Left},
	{input.ActionMoveRight, camera.Right},
	{input.ActionMoveUp, camera.Up},
	{input.ActionMoveDown, camera.Down},
}

// Viewer owns the window and drives the frame loop
type Viewer struct {
	window       *glfw.Window
	renderer     *renderer.Renderer
	desk         *desk.Desk
	inputManager *input.InputManager
	frames       *profiling.FrameCounter
	limiter      *FPSLimiter

	lastTime time.Time
}

// NewViewer creates a viewer for an initialised window and renderer
func NewViewer(window *glfw.Window, r *renderer.Renderer, d *desk.Desk, im *input.InputManager, report time.Duration, maxFPS int) *Viewer {
	now := time.Now()
	return &Viewer{
		window:       window,
		renderer:     r,
		desk:         d,
		inputManager: im,
		frames:       profiling.NewFrameCounter(report, now),
		limiter:      NewFPSLimiter(maxFPS),
		lastTime:     now,
	}
}

// Run renders frames until the window is closed
func (v *Viewer) Run() {
	for !v.window.ShouldClose() {
		v.tick()
	}
}

func (v *Viewer) tick() {
	now := time.Now()
	dt := now.Sub(v.lastTime).Seconds()
	v.lastTime = now

	v.handleInput(dt)
	v.renderer.Render(dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); v.window.SwapBuffers() }()
	v.inputManager.PostUpdate()
	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()
	v.limiter.Wait()

	if fps, ok := v.frames.Tick(time.Now()); ok {
		log.Printf("FPS: %.0f, objects: %d, slowest: %s", fps, v.desk.DrawnCount(), profiling.TopN(3))
		profiling.Reset()
	}
}

func (v *Viewer) handleInput(dt float64) {
	im := v.inputManager
	cam := v.renderer.Camera()

	if im.JustPressed(input.ActionQuit) {
		v.window.SetShouldClose(true)
		return
	}

	for _, m := range movement {
		if im.IsActive(m.action) {
			cam.Move(m.dir, dt)
		}
	}

	if im.JustPressed(input.ActionPerspective) && cam.Projection != camera.Perspective {
		cam.Projection = camera.Perspective
		log.Printf("Projection: %s", cam.Projection)
	}
	if im.JustPressed(input.ActionOrthographic) && cam.Projection != camera.Orthographic {
		cam.Projection = camera.Orthographic
		log.Printf("Projection: %s", cam.Projection)
	}

	if im.JustPressed(input.ActionToggleWireframe) {
		v.renderer.ToggleWireframe()
	}

	if im.JustPressed(input.ActionToggleCursor) {
		if v.window.GetInputMode(glfw.CursorMode) == glfw.CursorDisabled {
			v.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		} else {
			v.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
			cam.ResetMouse()
		}
	}
}

// Dispose releases GPU resources and the window
func (v *Viewer) Dispose() {
	v.renderer.Dispose()
	v.window.Destroy()
}
