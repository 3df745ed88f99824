package registry

import (
	"errors"
	"fmt"
	"log"

	"desk-scene/internal/imageio"
)

// MaxTextureSlots is the number of texture units the scene shader samples from.
const MaxTextureSlots = 16

// NotFound is the slot reported for tags that were never registered.
const NotFound = -1

var (
	ErrEmptyTag            = errors.New("empty tag")
	ErrDuplicateTag        = errors.New("tag already registered")
	ErrRegistryFull        = errors.New("texture registry is full")
	ErrUnsupportedChannels = errors.New("unsupported channel count")
)

// Decoder turns an image file into a packed bitmap.
type Decoder interface {
	Decode(path string) (imageio.Bitmap, error)
}

// TextureUploader owns GPU texture objects.
type TextureUploader interface {
	Upload(bmp imageio.Bitmap) (uint32, error)
	Bind(slot int, id uint32)
	Delete(id uint32)
}

// TextureEntry ties a tag to the texture unit and GPU handle it was assigned.
type TextureEntry struct {
	Tag      string
	Slot     int
	ID       uint32
	Path     string
	Width    int
	Height   int
	Channels int
}

// TextureSpec names an image file and the tag it is registered under.
type TextureSpec struct {
	Path string `json:"path"`
	Tag  string `json:"tag"`
}

// TextureRegistry maps tags to texture slots. Slots are handed out in
// registration order. It is not safe for concurrent use.
type TextureRegistry struct {
	decoder  Decoder
	gpu      TextureUploader
	capacity int

	entries []TextureEntry
	byTag   map[string]int
}

// NewTextureRegistry creates a registry holding at most capacity textures.
// A non-positive capacity falls back to MaxTextureSlots.
func NewTextureRegistry(dec Decoder, gpu TextureUploader, capacity int) *TextureRegistry {
	if capacity <= 0 {
		capacity = MaxTextureSlots
	}
	return &TextureRegistry{
		decoder:  dec,
		gpu:      gpu,
		capacity: capacity,
		byTag:    make(map[string]int),
	}
}

// Register decodes the image at path, uploads it and binds it to the next free slot.
// A tag that is already registered is rejected and the first registration stays in place.
func (r *TextureRegistry) Register(path, tag string) error {
	if tag == "" {
		return fmt.Errorf("register %s: %w", path, ErrEmptyTag)
	}
	if _, exists := r.byTag[tag]; exists {
		log.Printf("Texture tag %q already registered, ignoring %s", tag, path)
		return fmt.Errorf("register %s as %q: %w", path, tag, ErrDuplicateTag)
	}
	if len(r.entries) >= r.capacity {
		return fmt.Errorf("register %s as %q: %w (capacity %d)", path, tag, ErrRegistryFull, r.capacity)
	}

	bmp, err := r.decoder.Decode(path)
	if err != nil {
		log.Printf("Could not load image: %s: %v", path, err)
		return fmt.Errorf("register %q: %w", tag, err)
	}

	if bmp.Channels != 3 && bmp.Channels != 4 {
		log.Printf("Not implemented to handle image with %d channels: %s", bmp.Channels, path)
		return fmt.Errorf("register %s as %q: %w: %d", path, tag, ErrUnsupportedChannels, bmp.Channels)
	}

	id, err := r.gpu.Upload(bmp)
	if err != nil {
		return fmt.Errorf("upload %s as %q: %w", path, tag, err)
	}

	slot := len(r.entries)
	r.entries = append(r.entries, TextureEntry{
		Tag:      tag,
		Slot:     slot,
		ID:       id,
		Path:     path,
		Width:    bmp.Width,
		Height:   bmp.Height,
		Channels: bmp.Channels,
	})
	r.byTag[tag] = slot

	log.Printf("Loaded texture %q from %s (%dx%d, %d channels) into slot %d", tag, path, bmp.Width, bmp.Height, bmp.Channels, slot)
	return nil
}

// LoadAll registers every spec in order. In strict mode it stops at the first
// failure; otherwise it keeps going and returns all failures joined.
func (r *TextureRegistry) LoadAll(specs []TextureSpec, strict bool) error {
	var errs []error
	for _, s := range specs {
		if err := r.Register(s.Path, s.Tag); err != nil {
			if strict {
				return err
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SlotOf returns the texture unit assigned to tag, or NotFound.
func (r *TextureRegistry) SlotOf(tag string) (int, bool) {
	slot, ok := r.byTag[tag]
	if !ok {
		return NotFound, false
	}
	return slot, true
}

// IDOf returns the GPU handle registered under tag.
func (r *TextureRegistry) IDOf(tag string) (uint32, bool) {
	slot, ok := r.byTag[tag]
	if !ok {
		return 0, false
	}
	return r.entries[slot].ID, true
}

// Bind attaches every registered texture to its texture unit.
func (r *TextureRegistry) Bind() {
	for _, e := range r.entries {
		r.gpu.Bind(e.Slot, e.ID)
	}
}

// Destroy deletes every GPU texture and empties the registry.
func (r *TextureRegistry) Destroy() {
	for _, e := range r.entries {
		r.gpu.Delete(e.ID)
	}
	r.entries = nil
	clear(r.byTag)
}

// Entries returns a copy of the registered textures in slot order.
func (r *TextureRegistry) Entries() []TextureEntry {
	out := make([]TextureEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *TextureRegistry) Len() int      { return len(r.entries) }
func (r *TextureRegistry) Capacity() int { return r.capacity }
