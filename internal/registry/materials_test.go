package registry

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMaterialDefaults(t *testing.T) {
	r := NewMaterialRegistry()
	if err := r.DefineDefaults(); err != nil {
		t.Fatalf("DefineDefaults: %v", err)
	}

	tests := []struct {
		tag       string
		diffuse   mgl32.Vec3
		specular  mgl32.Vec3
		shininess float32
	}{
		{"metal", mgl32.Vec3{0.4, 0.4, 0.4}, mgl32.Vec3{0.7, 0.7, 0.6}, 60},
		{"wood", mgl32.Vec3{0.2, 0.2, 0.3}, mgl32.Vec3{0, 0, 0}, 0.1},
		{"glass", mgl32.Vec3{0.7, 0.7, 0.7}, mgl32.Vec3{1, 1, 1}, 90},
	}
	for _, tt := range tests {
		m, ok := r.Find(tt.tag)
		if !ok {
			t.Errorf("Find(%s) missing", tt.tag)
			continue
		}
		if m.DiffuseColor != tt.diffuse || m.SpecularColor != tt.specular || m.Shininess != tt.shininess {
			t.Errorf("Find(%s) = %+v", tt.tag, m)
		}
	}

	if got := r.Tags(); len(got) != 3 || got[0] != "metal" || got[2] != "glass" {
		t.Errorf("Tags = %v", got)
	}
}

func TestMaterialFindMiss(t *testing.T) {
	r := NewMaterialRegistry()
	if _, ok := r.Find("metal"); ok {
		t.Errorf("Find on empty registry reported found")
	}
	if err := r.DefineDefaults(); err != nil {
		t.Fatal(err)
	}
	m, ok := r.Find("plastic")
	if ok {
		t.Errorf("Find(plastic) reported found: %+v", m)
	}
	if m != (Material{}) {
		t.Errorf("miss returned non-zero material %+v", m)
	}
}

func TestMaterialDefineRejects(t *testing.T) {
	r := NewMaterialRegistry()
	if err := r.Define("", mgl32.Vec3{}, mgl32.Vec3{}, 1); !errors.Is(err, ErrEmptyTag) {
		t.Errorf("empty tag err = %v", err)
	}
	if err := r.Define("chrome", mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}, 100); err != nil {
		t.Fatal(err)
	}
	if err := r.Define("chrome", mgl32.Vec3{}, mgl32.Vec3{}, 1); !errors.Is(err, ErrDuplicateTag) {
		t.Errorf("duplicate err = %v", err)
	}

	m, _ := r.Find("chrome")
	if m.Shininess != 100 {
		t.Errorf("duplicate overwrote first definition: %+v", m)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}
