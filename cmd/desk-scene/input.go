package main

import (
	"desk-scene/internal/graphics/renderer"
	"desk-scene/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupInputHandlers(window *glfw.Window, r *renderer.Renderer, im *input.InputManager) {
	cam := r.Camera()

	// Mouse look only while the cursor is captured
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if w.GetInputMode(glfw.CursorMode) == glfw.CursorDisabled {
			cam.Look(xpos, ypos)
		}
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		cam.AdjustSpeed(yoff)
	})

	im.SetKeyCallback(window)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		r.UpdateViewport(fbWidth, fbHeight)
	})
}
