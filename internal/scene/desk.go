package scene

import (
	"desk-scene/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

func place(sx, sy, sz, rx, ry, rz, px, py, pz float32) Transform {
	return Transform{
		Scale:    mgl32.Vec3{sx, sy, sz},
		Rotation: mgl32.Vec3{rx, ry, rz},
		Position: mgl32.Vec3{px, py, pz},
	}
}

// DeskObjects is the desk scene in draw order.
func DeskObjects() []Object {
	var (
		white = Colored(1, 1, 1, 1)
		black = Colored(0, 0, 0, 1)
	)

	// Objects without a material keep whichever material was set last.
	standBase := Appearance{Texture: "Steel", UVScale: mgl32.Vec2{1, 1}}
	cupHandle := Appearance{Texture: "CupTexture", Material: "glass", KeepUVScale: true}

	return []Object{
		{"desk", meshing.KindPlane, place(30, 2, 15, 0, 0, 0, 0, 0, 0), Textured("DeskTexture", "wood")},
		{"backdrop", meshing.KindPlane, place(30, 2, 15, 90, 0, 0, 0, 15, -15), Colored(0.9, 0.9, 0.9, 1)},

		// Monitor
		{"monitor bezel", meshing.KindBox, place(18, 0.5, 11, 90, 0, 0, 0, 8, -7), Textured("BlackBezzle", "metal")},
		{"monitor screen", meshing.KindBox, place(16, 0.7, 9, 90, 0, 0, 0, 8, -7), white},
		{"monitor chin", meshing.KindBox, place(18, 0.7, 1, 90, 0, 0, 0, 2.4, -7), Textured("Steel", "metal")},
		{"monitor back", meshing.KindBox, place(18, 0.5, 11, 90, 0, 0, 0, 8, -7.5), black},
		{"stand base", meshing.KindBox, place(5, 0.5, 6, 90, 0, 0, 0, 0, -7), standBase},
		{"stand neck", meshing.KindBox, place(8, 4.5, 1.5, 90, 0, 0, 0, 0, -6), Textured("Steel", "metal")},

		// Coffee cup
		{"cup body", meshing.KindTaperedCylinder, place(1.8, 2.8, 1.8, 180, 0, 0, -8.7, 3, -4.6), Textured("CupTexture", "glass")},
		{"cup handle", meshing.KindTorus, place(0.8, 0.8, 0.3, 0, 0, 0, -6.9, 1.3, -4.6), cupHandle},

		{"keyboard", meshing.KindBox, place(11.8, 0.8, 3.8, 0, 0, 0, -2.2, 0, 0), white},
		{"mouse", meshing.KindSphere, place(1.6, 1, 0.2, 0, 90, 90, 6.2, 0.3, 0), white},

		// Pencil cup
		{"pencil cup", meshing.KindTaperedCylinder, place(1.8, 2.8, 1.8, 180, 0, 0, 11.2, 2.8, -5.3), white},
		{"pencil 1", meshing.KindCylinder, place(0.2, 3.5, 0.2, 5, 15, 0, 11.2, 1, -5.3), black},
		{"pencil 2", meshing.KindCylinder, place(0.2, 3.8, 0.2, -13, -10, 0, 10.8, 1.3, -5.2), black},
		{"pencil 3", meshing.KindCylinder, place(0.2, 3.2, 0.2, 7, -5, 0, 10.1, 1.9, -5.4), black},

		// Book stack
		{"book 1", meshing.KindBox, place(3.5, 0.5, 2.5, 0, -5, 0, -13, 0.25, -5), black},
		{"book 2", meshing.KindBox, place(3.3, 0.4, 2.4, 0, 3, 0, -12.9, 0.75, -5.2), white},
		{"book 3", meshing.KindBox, place(3.2, 0.3, 2.3, 0, -7, 0, -13.2, 1.1, -4.8), black},
	}
}
