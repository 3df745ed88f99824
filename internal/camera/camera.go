package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection selects how the scene is projected onto the viewport.
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

func (p Projection) String() string {
	if p == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// Movement is a camera-relative direction.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

const (
	minSpeed = 1.0
	maxSpeed = 100.0
	maxPitch = 89.0
)

// Camera is a free-flying camera with a switchable projection.
type Camera struct {
	Position    mgl32.Vec3
	Yaw         float64 // degrees, -90 looks down -Z
	Pitch       float64 // degrees
	Speed       float32 // units per second
	Sensitivity float64

	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
	// OrthoHeight is the vertical extent of the orthographic view volume.
	OrthoHeight float32
	Projection  Projection

	firstMouse bool
	lastX      float64
	lastY      float64
}

// New returns a camera looking down -Z from position.
func New(width, height int, position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:    position,
		Yaw:         -90,
		Speed:       10,
		Sensitivity: 0.1,
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
		OrthoHeight: 30,
		firstMouse:  true,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio. Zero-sized (minimised) viewports are ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) Front() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(c.Yaw))
	p := mgl32.DegToRad(float32(c.Pitch))
	fx := float32(math.Cos(float64(y)) * math.Cos(float64(p)))
	fy := float32(math.Sin(float64(p)))
	fz := float32(math.Sin(float64(y)) * math.Cos(float64(p)))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

func (c *Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(mgl32.Vec3{0, 1, 0}).Normalize()
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), mgl32.Vec3{0, 1, 0})
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	if c.Projection == Orthographic {
		h := c.OrthoHeight / 2
		w := h * c.AspectRatio
		return mgl32.Ortho(-w, w, -h, h, c.NearPlane, c.FarPlane)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// Move translates the camera along dir for dt seconds. Up and Down move along world Y.
func (c *Camera) Move(dir Movement, dt float64) {
	step := c.Speed * float32(dt)
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front().Mul(step))
	case Backward:
		c.Position = c.Position.Sub(c.Front().Mul(step))
	case Left:
		c.Position = c.Position.Sub(c.Right().Mul(step))
	case Right:
		c.Position = c.Position.Add(c.Right().Mul(step))
	case Up:
		c.Position[1] += step
	case Down:
		c.Position[1] -= step
	}
}

// Look turns the camera from a cursor position event.
func (c *Camera) Look(xpos, ypos float64) {
	if c.firstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.firstMouse = false
		return
	}

	xoffset := (xpos - c.lastX) * c.Sensitivity
	yoffset := (c.lastY - ypos) * c.Sensitivity
	c.lastX = xpos
	c.lastY = ypos

	c.Yaw += xoffset
	c.Pitch += yoffset

	// Constrain pitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// ResetMouse makes the next Look call re-anchor instead of jumping.
func (c *Camera) ResetMouse() {
	c.firstMouse = true
}

// AdjustSpeed scales movement speed from a scroll event.
func (c *Camera) AdjustSpeed(delta float64) {
	c.Speed += float32(delta)
	if c.Speed < minSpeed {
		c.Speed = minSpeed
	}
	if c.Speed > maxSpeed {
		c.Speed = maxSpeed
	}
}
