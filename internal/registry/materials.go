package registry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Material is a named bundle of Phong shading parameters.
type Material struct {
	Tag           string
	DiffuseColor  mgl32.Vec3
	SpecularColor mgl32.Vec3
	Shininess     float32
}

// MaterialRegistry is a small ordered list of materials searched by tag.
type MaterialRegistry struct {
	materials []Material
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

// Define adds a material. Tags must be non-empty and unique.
func (r *MaterialRegistry) Define(tag string, diffuse, specular mgl32.Vec3, shininess float32) error {
	if tag == "" {
		return fmt.Errorf("define material: %w", ErrEmptyTag)
	}
	if _, ok := r.Find(tag); ok {
		return fmt.Errorf("define material %q: %w", tag, ErrDuplicateTag)
	}
	r.materials = append(r.materials, Material{
		Tag:           tag,
		DiffuseColor:  diffuse,
		SpecularColor: specular,
		Shininess:     shininess,
	})
	return nil
}

// Find returns a copy of the material registered under tag.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// DefineDefaults installs the desk scene's materials.
func (r *MaterialRegistry) DefineDefaults() error {
	defaults := []Material{
		{Tag: "metal", DiffuseColor: mgl32.Vec3{0.4, 0.4, 0.4}, SpecularColor: mgl32.Vec3{0.7, 0.7, 0.6}, Shininess: 60},
		{Tag: "wood", DiffuseColor: mgl32.Vec3{0.2, 0.2, 0.3}, SpecularColor: mgl32.Vec3{0, 0, 0}, Shininess: 0.1},
		{Tag: "glass", DiffuseColor: mgl32.Vec3{0.7, 0.7, 0.7}, SpecularColor: mgl32.Vec3{1, 1, 1}, Shininess: 90},
	}
	for _, m := range defaults {
		if err := r.Define(m.Tag, m.DiffuseColor, m.SpecularColor, m.Shininess); err != nil {
			return err
		}
	}
	return nil
}

// Tags lists material tags in definition order.
func (r *MaterialRegistry) Tags() []string {
	tags := make([]string, len(r.materials))
	for i, m := range r.materials {
		tags[i] = m.Tag
	}
	return tags
}

func (r *MaterialRegistry) Len() int { return len(r.materials) }
