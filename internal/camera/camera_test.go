package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-5
}

func TestFrontDefaultsToNegativeZ(t *testing.T) {
	c := New(900, 600, mgl32.Vec3{})
	if got := c.Front(); !near(got, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Front = %v, want (0,0,-1)", got)
	}
	if got := c.Right(); !near(got, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Right = %v, want (1,0,0)", got)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		dir  Movement
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, -2}},
		{Backward, mgl32.Vec3{0, 0, 2}},
		{Left, mgl32.Vec3{-2, 0, 0}},
		{Right, mgl32.Vec3{2, 0, 0}},
		{Up, mgl32.Vec3{0, 2, 0}},
		{Down, mgl32.Vec3{0, -2, 0}},
	}
	for _, tt := range tests {
		c := New(900, 600, mgl32.Vec3{})
		c.Speed = 4
		c.Move(tt.dir, 0.5)
		if !near(c.Position, tt.want) {
			t.Errorf("Move(%d) -> %v, want %v", tt.dir, c.Position, tt.want)
		}
	}
}

func TestLookClampsPitch(t *testing.T) {
	c := New(900, 600, mgl32.Vec3{})
	c.Look(100, 100) // anchors
	if c.Yaw != -90 || c.Pitch != 0 {
		t.Fatalf("first Look moved camera: yaw %v pitch %v", c.Yaw, c.Pitch)
	}

	c.Look(110, 100)
	if c.Yaw != -89 {
		t.Errorf("yaw = %v, want -89", c.Yaw)
	}

	c.Look(110, -5000)
	if c.Pitch != maxPitch {
		t.Errorf("pitch = %v, want clamp %v", c.Pitch, maxPitch)
	}

	c.ResetMouse()
	c.Look(0, 0)
	if c.Pitch != maxPitch {
		t.Errorf("Look after ResetMouse changed pitch to %v", c.Pitch)
	}
}

func TestProjectionToggle(t *testing.T) {
	c := New(800, 400, mgl32.Vec3{})
	if c.AspectRatio != 2 {
		t.Fatalf("aspect = %v, want 2", c.AspectRatio)
	}

	persp := c.ProjectionMatrix()
	if persp[11] != -1 || persp[15] != 0 {
		t.Errorf("perspective matrix w row = %v %v", persp[11], persp[15])
	}

	c.Projection = Orthographic
	ortho := c.ProjectionMatrix()
	if ortho[11] != 0 || ortho[15] != 1 {
		t.Errorf("orthographic matrix w row = %v %v", ortho[11], ortho[15])
	}
	// x extent is aspect * OrthoHeight
	if want := 2 / (c.OrthoHeight * 2); ortho[0] < want-1e-6 || ortho[0] > want+1e-6 {
		t.Errorf("ortho[0] = %v, want %v", ortho[0], want)
	}
}

func TestSetViewportIgnoresZero(t *testing.T) {
	c := New(900, 600, mgl32.Vec3{})
	c.SetViewport(0, 0)
	if c.AspectRatio != 1.5 {
		t.Errorf("aspect = %v after zero viewport", c.AspectRatio)
	}
}

func TestAdjustSpeedClamps(t *testing.T) {
	c := New(900, 600, mgl32.Vec3{})
	c.AdjustSpeed(-100)
	if c.Speed != minSpeed {
		t.Errorf("speed = %v, want %v", c.Speed, minSpeed)
	}
	c.AdjustSpeed(1000)
	if c.Speed != maxSpeed {
		t.Errorf("speed = %v, want %v", c.Speed, maxSpeed)
	}
}
