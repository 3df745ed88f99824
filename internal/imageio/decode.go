package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyImage is returned for images with a zero-sized bounds rectangle.
var ErrEmptyImage = errors.New("image has no pixels")

// Bitmap holds tightly packed 8-bit pixels with Channels bytes per pixel.
type Bitmap struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// FileDecoder reads image files from disk and packs them for texture upload.
type FileDecoder struct {
	// FlipVertically stores the bottom row first, matching GL texture origin.
	FlipVertically bool
	// MaxDimension downscales images whose width or height exceeds it. Zero disables scaling.
	MaxDimension int
}

// NewFileDecoder returns a decoder that flips rows for GL and never rescales.
func NewFileDecoder() *FileDecoder {
	return &FileDecoder{FlipVertically: true}
}

// Decode loads the image at path. Supported formats are JPEG, PNG, GIF, BMP, TIFF and WebP.
func (d *FileDecoder) Decode(path string) (Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bitmap{}, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Bitmap{}, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	bmp, err := d.FromImage(img)
	if err != nil {
		return Bitmap{}, fmt.Errorf("image %s: %w", path, err)
	}
	return bmp, nil
}

// FromImage packs an already decoded image.
func (d *FileDecoder) FromImage(img image.Image) (Bitmap, error) {
	b := img.Bounds()
	if b.Empty() {
		return Bitmap{}, ErrEmptyImage
	}

	channels := Channels(img)
	if d.MaxDimension > 0 && (b.Dx() > d.MaxDimension || b.Dy() > d.MaxDimension) {
		img = downscale(img, d.MaxDimension)
		b = img.Bounds()
	}

	return Bitmap{
		Pix:      pack(img, channels, d.FlipVertically),
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels,
	}, nil
}

// Channels reports the channel count the source image carries:
// 1 for grayscale, 3 for opaque colour and 4 for colour with alpha.
func Channels(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case interface{ Opaque() bool }:
		if m.Opaque() {
			return 3
		}
		return 4
	}
	return 4
}

func downscale(img image.Image, limit int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	longest := max(w, h)
	nw := max(1, w*limit/longest)
	nh := max(1, h*limit/longest)

	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func pack(img image.Image, channels int, flip bool) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, w*h*channels)

	row := func(y int) int {
		if flip {
			return h - 1 - y
		}
		return y
	}

	if channels == 1 {
		g := image.NewGray(image.Rect(0, 0, w, h))
		draw.Draw(g, g.Bounds(), img, b.Min, draw.Src)
		for y := 0; y < h; y++ {
			copy(pix[row(y)*w:(row(y)+1)*w], g.Pix[y*g.Stride:y*g.Stride+w])
		}
		return pix
	}

	n := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	for y := 0; y < h; y++ {
		src := n.Pix[y*n.Stride:]
		dst := pix[row(y)*w*channels:]
		for x := 0; x < w; x++ {
			copy(dst[x*channels:x*channels+channels], src[x*4:x*4+channels])
		}
	}
	return pix
}
