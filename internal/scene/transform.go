package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform places one object: scale, then rotations about X, Y and Z in
// degrees, then translation.
type Transform struct {
	Scale    mgl32.Vec3
	Rotation mgl32.Vec3 // degrees about X, Y, Z
	Position mgl32.Vec3
}

// Matrix returns the model matrix for t.
func (t Transform) Matrix() mgl32.Mat4 {
	return ModelMatrix(t.Scale, t.Rotation[0], t.Rotation[1], t.Rotation[2], t.Position)
}

// ModelMatrix composes translate * rotZ * rotY * rotX * scale.
func ModelMatrix(scale mgl32.Vec3, xDeg, yDeg, zDeg float32, position mgl32.Vec3) mgl32.Mat4 {
	s := mgl32.Scale3D(scale[0], scale[1], scale[2])
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(xDeg))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(yDeg))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(zDeg))
	t := mgl32.Translate3D(position[0], position[1], position[2])

	return t.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
}
