package shapes

import (
	"log"

	"desk-scene/internal/meshing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type gpuMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Library holds one VAO per primitive kind. Each kind is uploaded once no
// matter how many times it is drawn.
type Library struct {
	meshes [meshing.KindCount]*gpuMesh
	warned [meshing.KindCount]bool
}

// NewLibrary creates an empty shape library
func NewLibrary() *Library {
	return &Library{}
}

// Load generates and uploads the mesh for kind. Loading twice is a no-op.
func (l *Library) Load(kind meshing.Kind) {
	if kind < 0 || kind >= meshing.KindCount || l.meshes[kind] != nil {
		return
	}
	l.meshes[kind] = upload(meshing.Build(kind))
}

// LoadAll loads every kind in kinds
func (l *Library) LoadAll(kinds []meshing.Kind) {
	for _, k := range kinds {
		l.Load(k)
	}
}

// Draw issues an indexed draw for kind using whatever program and uniforms are bound.
func (l *Library) Draw(kind meshing.Kind) {
	if kind < 0 || kind >= meshing.KindCount {
		return
	}
	m := l.meshes[kind]
	if m == nil {
		if !l.warned[kind] {
			l.warned[kind] = true
			log.Printf("Warning: %s mesh drawn before it was loaded", kind)
		}
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (l *Library) Dispose() {
	for i, m := range l.meshes {
		if m == nil {
			continue
		}
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		l.meshes[i] = nil
	}
}

func upload(mesh meshing.Mesh) *gpuMesh {
	m := &gpuMesh{indexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	stride := int32(meshing.VertexStride * 4)
	// Position
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	// Normal
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	// UV
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
	return m
}
