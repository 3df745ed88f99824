package desk

import (
	"fmt"
	"log"
	"path/filepath"

	"desk-scene/internal/graphics"
	"desk-scene/internal/graphics/renderables/shapes"
	"desk-scene/internal/graphics/renderer"
	"desk-scene/internal/imageio"
	"desk-scene/internal/profiling"
	"desk-scene/internal/registry"
	"desk-scene/internal/scene"
)

// Options selects the assets the desk scene loads.
type Options struct {
	ShaderDir string
	Textures  []registry.TextureSpec
	// Strict aborts Init when any texture fails to load.
	Strict bool
}

// Desk renders the fixed desk scene
type Desk struct {
	opts Options

	shader    *graphics.Shader
	textures  *registry.TextureRegistry
	materials *registry.MaterialRegistry
	meshes    *shapes.Library
	assembler *scene.Assembler
	ctx       *scene.RenderContext
	lights    scene.Lights
}

// NewDesk creates a new desk renderable
func NewDesk(opts Options) *Desk {
	return &Desk{
		opts:      opts,
		assembler: scene.NewAssembler(scene.DeskObjects()),
		lights:    scene.DefaultLights(),
	}
}

// Init loads the shader, textures, materials and meshes the scene needs
func (d *Desk) Init() error {
	shader, err := graphics.NewShader(
		filepath.Join(d.opts.ShaderDir, "scene.vert"),
		filepath.Join(d.opts.ShaderDir, "scene.frag"),
	)
	if err != nil {
		return fmt.Errorf("desk shader: %w", err)
	}
	d.shader = shader

	decoder := imageio.NewFileDecoder()
	decoder.MaxDimension = graphics.MaxTextureSize()
	d.textures = registry.NewTextureRegistry(decoder, graphics.GLTextures{}, registry.MaxTextureSlots)
	if err := d.textures.LoadAll(d.opts.Textures, d.opts.Strict); err != nil {
		if d.opts.Strict {
			d.Dispose()
			return fmt.Errorf("desk textures: %w", err)
		}
		log.Printf("Warning: continuing without some textures: %v", err)
	}
	d.textures.Bind()
	d.checkTextures()

	d.materials = registry.NewMaterialRegistry()
	if err := d.materials.DefineDefaults(); err != nil {
		d.Dispose()
		return fmt.Errorf("desk materials: %w", err)
	}

	d.shader.Use()
	d.lights.Apply(d.shader)

	d.meshes = shapes.NewLibrary()
	d.meshes.LoadAll(d.assembler.Meshes())

	d.ctx = scene.NewRenderContext(d.shader, d.textures, d.materials, d.meshes)

	log.Printf("Desk scene ready: %d objects, %d textures, %d materials",
		len(d.assembler.Objects()), d.textures.Len(), d.materials.Len())
	return nil
}

// checkTextures logs scene textures that were never registered.
func (d *Desk) checkTextures() {
	for _, tag := range d.assembler.Textures() {
		if _, ok := d.textures.SlotOf(tag); !ok {
			log.Printf("Warning: texture %q is not loaded, objects using it fall back to flat colour", tag)
		}
	}
}

// Render draws every object in the scene
func (d *Desk) Render(ctx renderer.RenderContext) {
	defer profiling.Track("desk.Render")()

	d.shader.Use()
	d.shader.SetMat4(scene.UniformView, ctx.View)
	d.shader.SetMat4(scene.UniformProjection, ctx.Proj)
	if ctx.Camera != nil {
		d.shader.SetVec3(scene.UniformViewPosition, ctx.Camera.Position)
	}

	d.ctx.DrawnCount = 0
	d.assembler.Render(d.ctx)
}

// DrawnCount reports how many objects the last frame drew
func (d *Desk) DrawnCount() int {
	if d.ctx == nil {
		return 0
	}
	return d.ctx.DrawnCount
}

// Dispose cleans up OpenGL resources
func (d *Desk) Dispose() {
	if d.meshes != nil {
		d.meshes.Dispose()
		d.meshes = nil
	}
	if d.textures != nil {
		d.textures.Destroy()
		d.textures = nil
	}
	if d.shader != nil {
		d.shader.Delete()
		d.shader = nil
	}
}

// SetViewport is a no-op; projection comes from the camera each frame
func (d *Desk) SetViewport(width, height int) {}
