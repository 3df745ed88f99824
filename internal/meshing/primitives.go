package meshing

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind identifies one of the primitive meshes in the shape library.
type Kind int

const (
	KindPlane Kind = iota
	KindBox
	KindCylinder
	KindTaperedCylinder
	KindTorus
	KindSphere
	KindCount // Sentinel value for array sizing
)

var kindNames = [KindCount]string{
	KindPlane:           "plane",
	KindBox:             "box",
	KindCylinder:        "cylinder",
	KindTaperedCylinder: "tapered cylinder",
	KindTorus:           "torus",
	KindSphere:          "sphere",
}

func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// VertexStride is the number of floats per vertex: position, normal, uv.
const VertexStride = 8

// Mesh is an indexed triangle list with interleaved [x y z nx ny nz u v] vertices.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / VertexStride
}

func (m *Mesh) add(pos, normal mgl32.Vec3, u, v float32) uint32 {
	idx := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, pos[0], pos[1], pos[2], normal[0], normal[1], normal[2], u, v)
	return idx
}

func (m *Mesh) tri(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

const (
	defaultSegments   = 36
	defaultStacks     = 24
	torusTubeRadius   = 0.2
	taperedTopRadius  = 0.5
	defaultTubeRings  = 18
	defaultTorusRings = 36
)

// Build generates the default-resolution mesh for kind.
func Build(kind Kind) Mesh {
	switch kind {
	case KindPlane:
		return Plane()
	case KindBox:
		return Box()
	case KindCylinder:
		return Cylinder(defaultSegments)
	case KindTaperedCylinder:
		return TaperedCylinder(defaultSegments)
	case KindTorus:
		return Torus(1, torusTubeRadius, defaultTorusRings, defaultTubeRings)
	case KindSphere:
		return Sphere(defaultStacks, defaultSegments)
	}
	return Mesh{}
}

// Plane is a 2x2 quad in the XZ plane facing +Y.
func Plane() Mesh {
	var m Mesh
	quad(&m, mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, 1)
	return m
}

// Box is a unit cube centred on the origin with four vertices per face.
func Box() Mesh {
	faces := []struct{ n, u, v mgl32.Vec3 }{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	}
	var m Mesh
	for _, f := range faces {
		quad(&m, f.n.Mul(0.5), f.u, f.v, f.n, 0.5)
	}
	return m
}

// quad appends a square centred at c spanning ±half along u and v. u×v must equal n.
func quad(m *Mesh, c, u, v, n mgl32.Vec3, half float32) {
	corner := func(su, sv float32) mgl32.Vec3 {
		return c.Add(u.Mul(su * half)).Add(v.Mul(sv * half))
	}
	a := m.add(corner(-1, -1), n, 0, 0)
	b := m.add(corner(1, -1), n, 1, 0)
	d := m.add(corner(1, 1), n, 1, 1)
	e := m.add(corner(-1, 1), n, 0, 1)
	m.tri(a, b, d)
	m.tri(a, d, e)
}

// Cylinder has radius 1, its base at y=0 and its top at y=1, with both caps.
func Cylinder(segments int) Mesh {
	return frustum(1, 1, segments)
}

// TaperedCylinder narrows from radius 1 at the base to radius 0.5 at the top.
func TaperedCylinder(segments int) Mesh {
	return frustum(1, taperedTopRadius, segments)
}

func frustum(bottom, top float32, segments int) Mesh {
	if segments < 3 {
		segments = 3
	}
	var m Mesh

	// Side normals lean outward by the slope of the wall.
	slope := bottom - top
	first := uint32(m.VertexCount())
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		c, s := float32(math.Cos(theta)), float32(math.Sin(theta))
		n := mgl32.Vec3{c, slope, s}.Normalize()
		u := float32(i) / float32(segments)
		m.add(mgl32.Vec3{bottom * c, 0, bottom * s}, n, u, 0)
		m.add(mgl32.Vec3{top * c, 1, top * s}, n, u, 1)
	}
	for i := 0; i < segments; i++ {
		b0 := first + uint32(2*i)
		t0 := b0 + 1
		b1 := b0 + 2
		t1 := b0 + 3
		m.tri(b0, t1, b1)
		m.tri(b0, t0, t1)
	}

	addCap := func(y, radius float32, up bool) {
		n := mgl32.Vec3{0, -1, 0}
		if up {
			n = mgl32.Vec3{0, 1, 0}
		}
		center := m.add(mgl32.Vec3{0, y, 0}, n, 0.5, 0.5)
		ring := uint32(m.VertexCount())
		for i := 0; i <= segments; i++ {
			theta := 2 * math.Pi * float64(i) / float64(segments)
			c, s := float32(math.Cos(theta)), float32(math.Sin(theta))
			m.add(mgl32.Vec3{radius * c, y, radius * s}, n, 0.5+0.5*c, 0.5+0.5*s)
		}
		for i := uint32(0); i < uint32(segments); i++ {
			if up {
				m.tri(center, ring+i+1, ring+i)
			} else {
				m.tri(center, ring+i, ring+i+1)
			}
		}
	}
	addCap(0, bottom, false)
	addCap(1, top, true)

	return m
}

// Sphere is a UV sphere of radius 1 centred on the origin.
func Sphere(stacks, slices int) Mesh {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}
	var m Mesh
	for st := 0; st <= stacks; st++ {
		phi := math.Pi * float64(st) / float64(stacks)
		for sl := 0; sl <= slices; sl++ {
			theta := 2 * math.Pi * float64(sl) / float64(slices)
			p := mgl32.Vec3{
				float32(math.Sin(phi) * math.Cos(theta)),
				float32(math.Cos(phi)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
			m.add(p, p, float32(sl)/float32(slices), 1-float32(st)/float32(stacks))
		}
	}
	grid(&m, stacks, slices)
	return m
}

// Torus lies in the XY plane around the Z axis.
func Torus(major, minor float32, rings, tube int) Mesh {
	if rings < 3 {
		rings = 3
	}
	if tube < 3 {
		tube = 3
	}
	var m Mesh
	for i := 0; i <= rings; i++ {
		theta := 2 * math.Pi * float64(i) / float64(rings)
		ct, stt := float32(math.Cos(theta)), float32(math.Sin(theta))
		for j := 0; j <= tube; j++ {
			phi := 2 * math.Pi * float64(j) / float64(tube)
			cp, sp := float32(math.Cos(phi)), float32(math.Sin(phi))
			r := major + minor*cp
			p := mgl32.Vec3{r * ct, r * stt, -minor * sp}
			n := mgl32.Vec3{cp * ct, cp * stt, -sp}
			m.add(p, n, float32(i)/float32(rings), float32(j)/float32(tube))
		}
	}
	grid(&m, rings, tube)
	return m
}

func grid(m *Mesh, rows, cols int) {
	stride := uint32(cols + 1)
	for r := uint32(0); r < uint32(rows); r++ {
		for c := uint32(0); c < uint32(cols); c++ {
			a := r*stride + c
			b := (r+1)*stride + c
			cc := b + 1
			d := a + 1
			m.tri(a, cc, b)
			m.tri(a, d, cc)
		}
	}
}
