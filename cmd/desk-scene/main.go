package main

import (
	"os"
	"runtime"

	"desk-scene/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		closer.Fatalln("config:", err)
	}

	if err := setupLogging(cfg.LogFile); err != nil {
		closer.Fatalln("log:", err)
	}

	if err := glfw.Init(); err != nil {
		closer.Fatalln("glfw:", err)
	}

	app, err := setupViewer(cfg)
	if err != nil {
		glfw.Terminate()
		closer.Fatalln(err)
	}

	app.Run()

	// GL objects must be released on the thread that owns the context
	app.Dispose()
	glfw.Terminate()
}
