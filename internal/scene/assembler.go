package scene

import (
	"desk-scene/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

// Appearance is either a texture or a flat colour, plus an optional material.
type Appearance struct {
	Texture string
	Color   mgl32.Vec4
	// HasColor marks Color as set; without it the fallback colour is white.
	HasColor bool
	Material string
	UVScale  mgl32.Vec2
	// KeepUVScale uploads a zero UVScale as-is instead of defaulting to (1,1).
	KeepUVScale bool
}

// Colored is a flat-colour appearance.
func Colored(r, g, b, a float32) Appearance {
	return Appearance{Color: mgl32.Vec4{r, g, b, a}, HasColor: true}
}

// Textured is a texture appearance with a material and 1:1 tiling.
func Textured(texture, material string) Appearance {
	return Appearance{Texture: texture, Material: material, UVScale: mgl32.Vec2{1, 1}}
}

// fallbackColor is used when no texture is selected or the texture is missing.
func (a Appearance) fallbackColor() mgl32.Vec4 {
	if !a.HasColor {
		return mgl32.Vec4{1, 1, 1, 1}
	}
	return a.Color
}

// Object is one draw call in the scene: where, how it looks, and which mesh.
type Object struct {
	Name       string
	Mesh       meshing.Kind
	Transform  Transform
	Appearance Appearance
}

// Assembler draws a fixed, ordered list of objects.
type Assembler struct {
	objects []Object
}

func NewAssembler(objects []Object) *Assembler {
	return &Assembler{objects: objects}
}

// Render draws every object in order. Each object sets its transform,
// then its appearance, then issues the draw.
func (a *Assembler) Render(ctx *RenderContext) {
	for _, o := range a.objects {
		ctx.SetTransform(o.Transform)
		ctx.Apply(o.Appearance)
		ctx.Draw(o.Mesh)
	}
}

// Meshes lists the distinct mesh kinds the objects use, in first-use order.
func (a *Assembler) Meshes() []meshing.Kind {
	var seen [meshing.KindCount]bool
	var kinds []meshing.Kind
	for _, o := range a.objects {
		if o.Mesh < 0 || o.Mesh >= meshing.KindCount || seen[o.Mesh] {
			continue
		}
		seen[o.Mesh] = true
		kinds = append(kinds, o.Mesh)
	}
	return kinds
}

// Textures lists the distinct texture tags the objects reference.
func (a *Assembler) Textures() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, o := range a.objects {
		t := o.Appearance.Texture
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}

func (a *Assembler) Objects() []Object {
	return a.objects
}
