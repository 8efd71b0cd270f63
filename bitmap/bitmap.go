// Package bitmap defines the read-only raster type the sampler walks, and a
// thin adapter from the stdlib image.Image the teacher's own public
// Decode entry points expose (mrjoshuak/go-jpeg2000, deepteams/webp both
// return image.Image at their package boundary while using custom pixel
// buffers internally — this package is that boundary type for JABCode, not
// a file-format decoder: PNG/TIFF I/O is out of scope, §1).
package bitmap

import (
	"fmt"
	"image"
)

// Bitmap is a rectangular, row-major, tightly packed 8-bit raster with 3
// (RGB) or 4 (RGBA) channels per pixel. It is immutable once built and owns
// its backing slice exclusively (§3, §5).
type Bitmap struct {
	width, height int
	channels      int
	pix           []uint8
}

// New builds a Bitmap from tightly packed row-major pixel bytes. channels
// must be 3 or 4. Returns an error if pix is not exactly width*height*
// channels bytes long.
func New(width, height, channels int, pix []uint8) (*Bitmap, error) {
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("bitmap: unsupported channel count %d", channels)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bitmap: invalid dimensions %dx%d", width, height)
	}
	want := width * height * channels
	if len(pix) != want {
		return nil, fmt.Errorf("bitmap: pixel buffer length %d, want %d", len(pix), want)
	}
	return &Bitmap{width: width, height: height, channels: channels, pix: pix}, nil
}

// FromImage adapts a stdlib image.Image into a Bitmap, always producing 4
// channels (RGBA) since image.Image's color model has no cheaper lossless
// path to 3 channels in general.
func FromImage(img image.Image) *Bitmap {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint8, w*h*4)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			pix[i] = uint8(r >> 8)
			pix[i+1] = uint8(g >> 8)
			pix[i+2] = uint8(bl >> 8)
			pix[i+3] = uint8(a >> 8)
			i += 4
		}
	}
	return &Bitmap{width: w, height: h, channels: 4, pix: pix}
}

// Width, Height, Channels report the raster's dimensions.
func (b *Bitmap) Width() int    { return b.width }
func (b *Bitmap) Height() int   { return b.height }
func (b *Bitmap) Channels() int { return b.channels }

// At returns the channel values of the pixel at (x, y). The alpha value is
// zero and unused when the bitmap has 3 channels. Callers must only pass
// in-bounds coordinates; use Clamp to produce them.
func (b *Bitmap) At(x, y int) (r, g, bl, a uint8) {
	i := (y*b.width + x) * b.channels
	r = b.pix[i]
	g = b.pix[i+1]
	bl = b.pix[i+2]
	if b.channels == 4 {
		a = b.pix[i+3]
	}
	return
}

// InBounds reports whether (x, y) addresses a real pixel.
func (b *Bitmap) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Clamp replicates the nearest edge pixel for a coordinate that lies
// exactly one step past the raster boundary, matching the sampler's "snap"
// clamp policy (§4.2 step 3). ok is false if (x, y) is more than one pixel
// out of bounds, in which case the caller must fail with OffImage.
func (b *Bitmap) Clamp(x, y int) (cx, cy int, ok bool) {
	switch {
	case x == -1:
		x = 0
	case x == b.width:
		x = b.width - 1
	case x < -1 || x > b.width:
		return 0, 0, false
	}
	switch {
	case y == -1:
		y = 0
	case y == b.height:
		y = b.height - 1
	case y < -1 || y > b.height:
		return 0, 0, false
	}
	return x, y, true
}
