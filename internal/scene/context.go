package scene

import (
	"log"

	"desk-scene/internal/meshing"
	"desk-scene/internal/registry"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names understood by the scene shader.
const (
	UniformModel        = "model"
	UniformView         = "view"
	UniformProjection   = "projection"
	UniformViewPosition = "viewPosition"
	UniformColor        = "objectColor"
	UniformTexture      = "objectTexture"
	UniformUseTexture   = "bUseTexture"
	UniformUseLighting  = "bUseLighting"
	UniformUVScale      = "UVscale"
	UniformMatDiffuse   = "material.diffuseColor"
	UniformMatSpecular  = "material.specularColor"
	UniformMatShininess = "material.shininess"
)

// Uniforms is the shader-side state a draw call reads from.
type Uniforms interface {
	SetMat4(name string, value mgl32.Mat4)
	SetVec2(name string, value mgl32.Vec2)
	SetVec3(name string, value mgl32.Vec3)
	SetVec4(name string, value mgl32.Vec4)
	SetBool(name string, value bool)
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetSampler(name string, slot int)
}

// TextureLookup resolves texture tags to texture units.
type TextureLookup interface {
	SlotOf(tag string) (int, bool)
}

// MaterialLookup resolves material tags.
type MaterialLookup interface {
	Find(tag string) (registry.Material, bool)
}

// MeshDrawer issues the draw call for a loaded primitive.
type MeshDrawer interface {
	Draw(kind meshing.Kind)
}

// RenderContext carries the current transform, texture and material
// selection to each draw call. It writes through to Uniforms as it changes.
type RenderContext struct {
	Uniforms  Uniforms
	Textures  TextureLookup
	Materials MaterialLookup
	Meshes    MeshDrawer

	Model      mgl32.Mat4
	Texture    string // empty when drawing with a flat colour
	Color      mgl32.Vec4
	Material   string
	UVScale    mgl32.Vec2
	DrawnCount int

	warned map[string]bool
}

func NewRenderContext(u Uniforms, textures TextureLookup, materials MaterialLookup, meshes MeshDrawer) *RenderContext {
	return &RenderContext{
		Uniforms:  u,
		Textures:  textures,
		Materials: materials,
		Meshes:    meshes,
		Model:     mgl32.Ident4(),
		UVScale:   mgl32.Vec2{1, 1},
		warned:    make(map[string]bool),
	}
}

// SetTransform uploads t as the model matrix for the next draw.
func (c *RenderContext) SetTransform(t Transform) {
	c.Model = t.Matrix()
	c.Uniforms.SetMat4(UniformModel, c.Model)
}

// SetColor switches to flat colour shading.
func (c *RenderContext) SetColor(color mgl32.Vec4) {
	c.Texture = ""
	c.Color = color
	c.Uniforms.SetBool(UniformUseTexture, false)
	c.Uniforms.SetVec4(UniformColor, color)
}

// SetTexture switches to texturing with the texture registered under tag.
// It reports false, and leaves the shader state untouched, on a lookup miss.
func (c *RenderContext) SetTexture(tag string) bool {
	slot, ok := c.Textures.SlotOf(tag)
	if !ok {
		c.warnOnce("texture", tag)
		return false
	}
	c.Texture = tag
	c.Uniforms.SetBool(UniformUseTexture, true)
	c.Uniforms.SetSampler(UniformTexture, slot)
	return true
}

// SetMaterial uploads the material registered under tag. A miss keeps the
// previous material bound.
func (c *RenderContext) SetMaterial(tag string) bool {
	m, ok := c.Materials.Find(tag)
	if !ok {
		c.warnOnce("material", tag)
		return false
	}
	c.Material = tag
	c.Uniforms.SetVec3(UniformMatDiffuse, m.DiffuseColor)
	c.Uniforms.SetVec3(UniformMatSpecular, m.SpecularColor)
	c.Uniforms.SetFloat(UniformMatShininess, m.Shininess)
	return true
}

// SetUVScale sets texture coordinate tiling.
func (c *RenderContext) SetUVScale(u, v float32) {
	c.UVScale = mgl32.Vec2{u, v}
	c.Uniforms.SetVec2(UniformUVScale, c.UVScale)
}

// Apply selects either a texture or a flat colour, then the optional material and UV scale.
func (c *RenderContext) Apply(a Appearance) {
	if a.Texture == "" || !c.SetTexture(a.Texture) {
		c.SetColor(a.fallbackColor())
	}
	if a.Material != "" {
		c.SetMaterial(a.Material)
	}
	uv := a.UVScale
	if uv == (mgl32.Vec2{}) && !a.KeepUVScale {
		uv = mgl32.Vec2{1, 1}
	}
	c.SetUVScale(uv[0], uv[1])
}

// Draw issues the draw call for kind with the current state.
func (c *RenderContext) Draw(kind meshing.Kind) {
	c.Meshes.Draw(kind)
	c.DrawnCount++
}

func (c *RenderContext) warnOnce(kind, tag string) {
	key := kind + ":" + tag
	if c.warned[key] {
		return
	}
	c.warned[key] = true
	log.Printf("Warning: %s %q not registered, drawing without it", kind, tag)
}
