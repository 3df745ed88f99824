package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"desk-scene/internal/camera"
	"desk-scene/internal/config"
	"desk-scene/internal/graphics/renderables/desk"
	"desk-scene/internal/graphics/renderer"
	"desk-scene/internal/input"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
)

// setupLogging mirrors log output into path when it is set.
func setupLogging(path string) error {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
	closer.Bind(func() {
		log.SetOutput(os.Stderr)
		f.Close()
	})
	return nil
}

func setupWindow(cfg *config.Config) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(cfg.WindowWidth, cfg.WindowHeight, cfg.WindowTitle, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}
	log.Printf("OpenGL %s, %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

func setupViewer(cfg *config.Config) (*Viewer, error) {
	window, err := setupWindow(cfg)
	if err != nil {
		return nil, err
	}

	cam := camera.New(cfg.WindowWidth, cfg.WindowHeight, mgl32.Vec3(cfg.CameraPosition))
	cam.FOV = cfg.FOV
	cam.Speed = cfg.CameraSpeed
	cam.Sensitivity = cfg.CameraSensitivity
	cam.Pitch = cfg.CameraPitch

	deskRenderer := desk.NewDesk(desk.Options{
		ShaderDir: cfg.ShaderDir,
		Textures:  cfg.TextureSpecs(),
		Strict:    cfg.StrictAsset,
	})

	r, err := renderer.NewRenderer(cam, deskRenderer)
	if err != nil {
		window.Destroy()
		return nil, err
	}
	r.SetClearColor(mgl32.Vec4(cfg.ClearColor))

	// Framebuffer size can differ from window size on high-DPI displays
	fbW, fbH := window.GetFramebufferSize()
	r.UpdateViewport(fbW, fbH)

	im := input.NewInputManager()
	if err := im.ApplyBindings(cfg.KeyBindings); err != nil {
		log.Printf("Warning: key bindings: %v", err)
	}
	log.Printf("Controls:\n%s", im.Help())
	maxFPS := cfg.MaxFPS
	if cfg.VSync {
		maxFPS = 0
	}
	v := NewViewer(window, r, deskRenderer, im, cfg.ReportInterval(), maxFPS)
	setupInputHandlers(window, r, im)
	return v, nil
}
