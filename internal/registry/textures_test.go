package registry

import (
	"errors"
	"fmt"
	"testing"

	"desk-scene/internal/imageio"
)

type fakeDecoder struct {
	channels map[string]int
	fail     map[string]error
	calls    int
}

func (d *fakeDecoder) Decode(path string) (imageio.Bitmap, error) {
	d.calls++
	if err, ok := d.fail[path]; ok {
		return imageio.Bitmap{}, err
	}
	ch := 4
	if c, ok := d.channels[path]; ok {
		ch = c
	}
	return imageio.Bitmap{Pix: make([]byte, 2*2*ch), Width: 2, Height: 2, Channels: ch}, nil
}

type fakeGPU struct {
	next    uint32
	bound   map[int]uint32
	deleted []uint32
}

func (g *fakeGPU) Upload(bmp imageio.Bitmap) (uint32, error) {
	g.next++
	return g.next + 100, nil
}

func (g *fakeGPU) Bind(slot int, id uint32) {
	if g.bound == nil {
		g.bound = make(map[int]uint32)
	}
	g.bound[slot] = id
}

func (g *fakeGPU) Delete(id uint32) { g.deleted = append(g.deleted, id) }

func newTestRegistry() (*TextureRegistry, *fakeDecoder, *fakeGPU) {
	dec := &fakeDecoder{channels: map[string]int{}, fail: map[string]error{}}
	gpu := &fakeGPU{}
	return NewTextureRegistry(dec, gpu, MaxTextureSlots), dec, gpu
}

func TestRegisterAssignsSlotsInOrder(t *testing.T) {
	r, _, _ := newTestRegistry()

	for i := 0; i < MaxTextureSlots; i++ {
		tag := fmt.Sprintf("tex%d", i)
		if err := r.Register(tag+".png", tag); err != nil {
			t.Fatalf("Register(%s): %v", tag, err)
		}
	}

	for i := 0; i < MaxTextureSlots; i++ {
		tag := fmt.Sprintf("tex%d", i)
		slot, ok := r.SlotOf(tag)
		if !ok || slot != i {
			t.Errorf("SlotOf(%s) = %d, %v; want %d, true", tag, slot, ok, i)
		}
	}
}

func TestRegisterBeyondCapacityFails(t *testing.T) {
	r, dec, _ := newTestRegistry()
	for i := 0; i < MaxTextureSlots; i++ {
		tag := fmt.Sprintf("tex%d", i)
		if err := r.Register(tag+".png", tag); err != nil {
			t.Fatalf("Register(%s): %v", tag, err)
		}
	}
	decodes := dec.calls

	err := r.Register("extra.png", "extra")
	if !errors.Is(err, ErrRegistryFull) {
		t.Fatalf("err = %v, want ErrRegistryFull", err)
	}
	if dec.calls != decodes {
		t.Errorf("decoder called for rejected registration")
	}
	if _, ok := r.SlotOf("extra"); ok {
		t.Errorf("extra tag should not be registered")
	}
	if r.Len() != MaxTextureSlots {
		t.Errorf("Len = %d, want %d", r.Len(), MaxTextureSlots)
	}
}

func TestSlotOfUnknownTag(t *testing.T) {
	r, _, _ := newTestRegistry()
	if err := r.Register("desk.jpg", "DeskTexture"); err != nil {
		t.Fatal(err)
	}

	slot, ok := r.SlotOf("Missing")
	if ok || slot != NotFound {
		t.Errorf("SlotOf(Missing) = %d, %v; want %d, false", slot, ok, NotFound)
	}
	if _, ok := r.IDOf("Missing"); ok {
		t.Errorf("IDOf(Missing) reported found")
	}
}

func TestDuplicateTagKeepsFirst(t *testing.T) {
	r, _, _ := newTestRegistry()
	if err := r.Register("first.jpg", "Steel"); err != nil {
		t.Fatal(err)
	}
	firstID, _ := r.IDOf("Steel")

	err := r.Register("second.jpg", "Steel")
	if !errors.Is(err, ErrDuplicateTag) {
		t.Fatalf("err = %v, want ErrDuplicateTag", err)
	}

	slot, _ := r.SlotOf("Steel")
	id, _ := r.IDOf("Steel")
	if slot != 0 || id != firstID {
		t.Errorf("lookup = slot %d id %d, want slot 0 id %d", slot, id, firstID)
	}
	if got := r.Entries()[0].Path; got != "first.jpg" {
		t.Errorf("entry path = %s, want first.jpg", got)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestRegisterRejectsUnsupportedChannels(t *testing.T) {
	tests := []struct {
		channels int
		wantErr  bool
	}{
		{1, true},
		{2, true},
		{3, false},
		{4, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d channels", tt.channels), func(t *testing.T) {
			r, dec, _ := newTestRegistry()
			dec.channels["img.png"] = tt.channels

			err := r.Register("img.png", "img")
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedChannels) {
					t.Fatalf("err = %v, want ErrUnsupportedChannels", err)
				}
				if r.Len() != 0 {
					t.Errorf("Len = %d, want 0", r.Len())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRegisterDecodeFailure(t *testing.T) {
	r, dec, _ := newTestRegistry()
	decodeErr := errors.New("corrupt")
	dec.fail["bad.jpg"] = decodeErr

	if err := r.Register("bad.jpg", "Bad"); !errors.Is(err, decodeErr) {
		t.Fatalf("err = %v, want wrapped decode error", err)
	}
	if _, ok := r.SlotOf("Bad"); ok {
		t.Errorf("failed texture should not be registered")
	}

	// The failed registration does not consume a slot.
	if err := r.Register("good.jpg", "Good"); err != nil {
		t.Fatal(err)
	}
	if slot, _ := r.SlotOf("Good"); slot != 0 {
		t.Errorf("slot = %d, want 0", slot)
	}
}

func TestRegisterEmptyTag(t *testing.T) {
	r, _, _ := newTestRegistry()
	if err := r.Register("a.png", ""); !errors.Is(err, ErrEmptyTag) {
		t.Errorf("err = %v, want ErrEmptyTag", err)
	}
}

func TestLoadAll(t *testing.T) {
	specs := []TextureSpec{
		{Path: "a.jpg", Tag: "A"},
		{Path: "gray.png", Tag: "Gray"},
		{Path: "b.jpg", Tag: "B"},
	}

	t.Run("strict stops at first failure", func(t *testing.T) {
		r, dec, _ := newTestRegistry()
		dec.channels["gray.png"] = 1
		err := r.LoadAll(specs, true)
		if !errors.Is(err, ErrUnsupportedChannels) {
			t.Fatalf("err = %v, want ErrUnsupportedChannels", err)
		}
		if _, ok := r.SlotOf("B"); ok {
			t.Errorf("B registered after strict failure")
		}
	})

	t.Run("lenient continues", func(t *testing.T) {
		r, dec, _ := newTestRegistry()
		dec.channels["gray.png"] = 1
		err := r.LoadAll(specs, false)
		if !errors.Is(err, ErrUnsupportedChannels) {
			t.Fatalf("err = %v, want ErrUnsupportedChannels", err)
		}
		if slot, ok := r.SlotOf("B"); !ok || slot != 1 {
			t.Errorf("SlotOf(B) = %d, %v; want 1, true", slot, ok)
		}
	})
}

func TestBindAndDestroy(t *testing.T) {
	r, _, gpu := newTestRegistry()
	for _, tag := range []string{"DeskTexture", "BlackBezzle", "Steel"} {
		if err := r.Register(tag+".jpg", tag); err != nil {
			t.Fatal(err)
		}
	}

	r.Bind()
	for _, e := range r.Entries() {
		if gpu.bound[e.Slot] != e.ID {
			t.Errorf("slot %d bound to %d, want %d", e.Slot, gpu.bound[e.Slot], e.ID)
		}
	}

	ids := make(map[uint32]bool)
	for _, e := range r.Entries() {
		ids[e.ID] = true
	}
	r.Destroy()

	if len(gpu.deleted) != len(ids) {
		t.Fatalf("deleted %d textures, want %d", len(gpu.deleted), len(ids))
	}
	for _, id := range gpu.deleted {
		if !ids[id] {
			t.Errorf("deleted unknown texture %d", id)
		}
	}
	if r.Len() != 0 {
		t.Errorf("Len after Destroy = %d", r.Len())
	}
	if _, ok := r.SlotOf("Steel"); ok {
		t.Errorf("lookup succeeded after Destroy")
	}
}
