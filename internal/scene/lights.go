package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// PointLightCount is the size of the shader's point light array.
const PointLightCount = 3

type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Active    bool
}

type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	// Attenuation holds the constant, linear and quadratic terms.
	Attenuation mgl32.Vec3
	Active      bool
}

// Lights is the full lighting setup pushed to the shader once at startup.
type Lights struct {
	Directional DirectionalLight
	Points      [PointLightCount]PointLight
}

// DefaultLights returns an overhead key light plus three ceiling lamps.
func DefaultLights() Lights {
	lamp := func(pos mgl32.Vec3) PointLight {
		return PointLight{
			Position:    pos,
			Ambient:     mgl32.Vec3{0.1, 0.1, 0.1},
			Diffuse:     mgl32.Vec3{1, 1, 1},
			Specular:    mgl32.Vec3{1, 1, 1},
			Attenuation: mgl32.Vec3{1, 0.1, 0.05},
			Active:      true,
		}
	}
	return Lights{
		Directional: DirectionalLight{
			Direction: mgl32.Vec3{0, -1, 0},
			Ambient:   mgl32.Vec3{0.1, 0.1, 0.1},
			Diffuse:   mgl32.Vec3{0.4, 0.4, 0.4},
			Specular:  mgl32.Vec3{1, 1, 1},
			Active:    true,
		},
		Points: [PointLightCount]PointLight{
			lamp(mgl32.Vec3{0, 55, 0}),
			lamp(mgl32.Vec3{-15, 55, 0}),
			lamp(mgl32.Vec3{0, 55, -5}),
		},
	}
}

// Apply enables lighting and writes every light parameter to u.
func (l Lights) Apply(u Uniforms) {
	u.SetBool(UniformUseLighting, true)

	d := l.Directional
	u.SetVec3("directionalLight.direction", d.Direction)
	u.SetVec3("directionalLight.ambient", d.Ambient)
	u.SetVec3("directionalLight.diffuse", d.Diffuse)
	u.SetVec3("directionalLight.specular", d.Specular)
	u.SetBool("directionalLight.bActive", d.Active)

	for i, p := range l.Points {
		prefix := fmt.Sprintf("pointLights[%d].", i)
		u.SetVec3(prefix+"position", p.Position)
		u.SetVec3(prefix+"ambient", p.Ambient)
		u.SetVec3(prefix+"diffuse", p.Diffuse)
		u.SetVec3(prefix+"specular", p.Specular)
		u.SetVec3(prefix+"attenuation", p.Attenuation)
		u.SetBool(prefix+"bActive", p.Active)
	}
}
