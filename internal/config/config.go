package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"desk-scene/internal/registry"
)

// Config holds the viewer settings.
type Config struct {
	// Window
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	VSync        bool   `json:"vsync"`
	MaxFPS       int    `json:"max_fps"` // ignored with vsync, 0 = unlimited

	// Rendering
	ClearColor [4]float32 `json:"clear_color"`

	// Camera
	FOV               float32    `json:"fov"`
	CameraSpeed       float32    `json:"camera_speed"`
	CameraSensitivity float64    `json:"camera_sensitivity"`
	CameraPosition    [3]float32 `json:"camera_position"`
	CameraPitch       float64    `json:"camera_pitch"`

	// Assets
	ShaderDir   string                 `json:"shader_dir"`
	TextureDir  string                 `json:"texture_dir"`
	Textures    []registry.TextureSpec `json:"textures"`
	StrictAsset bool                   `json:"strict_assets"`

	// Input, action name to key names, e.g. {"forward": ["w", "up"]}
	KeyBindings map[string][]string `json:"key_bindings"`

	// Diagnostics
	LogFile string `json:"log_file"`
	// ReportSeconds is the FPS log interval in seconds, 0 disables it.
	ReportSeconds float64 `json:"report_interval_seconds"`
}

// Default returns the configuration used when no file or flags override it.
func Default() *Config {
	return &Config{
		WindowWidth:  1000,
		WindowHeight: 800,
		WindowTitle:  "Desk Scene",
		VSync:        true,

		ClearColor: [4]float32{0, 0, 0, 1},

		FOV:               45.0,
		CameraSpeed:       10.0,
		CameraSensitivity: 0.1,
		CameraPosition:    [3]float32{0, 6, 14},
		CameraPitch:       -20,

		ShaderDir:  filepath.Join("assets", "shaders", "scene"),
		TextureDir: filepath.Join("assets", "textures"),
		Textures: []registry.TextureSpec{
			{Path: "Desk texture.jpg", Tag: "DeskTexture"},
			{Path: "BlackBezzle.jpg", Tag: "BlackBezzle"},
			{Path: "Steel.jpg", Tag: "Steel"},
			{Path: "coffeecuptexture.jpg", Tag: "CupTexture"},
		},
		StrictAsset: true,

		ReportSeconds: 1,
	}
}

// Load overlays the JSON file at path onto the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as indented JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Parse reads command line args. The file named by -config is loaded
// first and any flags given explicitly take precedence over it.
func Parse(name string, args []string) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	def := Default()

	path := fs.String("config", "config.json", "path to JSON config file")
	width := fs.Int("width", def.WindowWidth, "window width")
	height := fs.Int("height", def.WindowHeight, "window height")
	textures := fs.String("textures", def.TextureDir, "texture directory")
	shaders := fs.String("shaders", def.ShaderDir, "shader directory")
	vsync := fs.Bool("vsync", def.VSync, "wait for vertical sync")
	maxFPS := fs.Int("fps", def.MaxFPS, "frame rate cap when vsync is off (0 = unlimited)")
	logFile := fs.String("log", def.LogFile, "append log output to this file")
	lenient := fs.Bool("lenient", !def.StrictAsset, "keep running when textures fail to load")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := Load(*path)
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.WindowWidth = *width
		case "height":
			cfg.WindowHeight = *height
		case "textures":
			cfg.TextureDir = *textures
		case "shaders":
			cfg.ShaderDir = *shaders
		case "vsync":
			cfg.VSync = *vsync
		case "fps":
			cfg.MaxFPS = *maxFPS
		case "log":
			cfg.LogFile = *logFile
		case "lenient":
			cfg.StrictAsset = !*lenient
		}
	})

	return cfg, cfg.Validate()
}

// Validate reports every problem with the configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight))
	}
	if c.MaxFPS < 0 {
		errs = append(errs, fmt.Errorf("max fps %d must not be negative", c.MaxFPS))
	}
	if c.ReportSeconds < 0 {
		errs = append(errs, fmt.Errorf("report interval %vs must not be negative", c.ReportSeconds))
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("clear colour component %d = %v outside [0, 1]", i, v))
		}
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		errs = append(errs, fmt.Errorf("fov %v out of range (0, 180)", c.FOV))
	}
	if len(c.Textures) > registry.MaxTextureSlots {
		errs = append(errs, fmt.Errorf("%d textures configured, only %d slots", len(c.Textures), registry.MaxTextureSlots))
	}
	for i, t := range c.Textures {
		if t.Tag == "" {
			errs = append(errs, fmt.Errorf("texture %d (%q) has no tag", i, t.Path))
		}
		if t.Path == "" {
			errs = append(errs, fmt.Errorf("texture %d (%q) has no path", i, t.Tag))
		}
	}
	return errors.Join(errs...)
}

// ReportInterval is ReportSeconds as a duration.
func (c *Config) ReportInterval() time.Duration {
	return time.Duration(c.ReportSeconds * float64(time.Second))
}

// TextureSpecs returns the texture list with paths resolved against TextureDir.
func (c *Config) TextureSpecs() []registry.TextureSpec {
	out := make([]registry.TextureSpec, len(c.Textures))
	for i, t := range c.Textures {
		out[i] = t
		if !filepath.IsAbs(t.Path) {
			out[i].Path = filepath.Join(c.TextureDir, t.Path)
		}
	}
	return out
}
