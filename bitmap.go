package img2geom

import "image"

// Bitmap is a fixed-size RGBA pixel store backed by a flat byte slice in
// row-major RGBA order. It is the working surface for the whole engine:
// the target image, the evolving canvas, and every search worker's private
// scratch buffer are all Bitmaps.
type Bitmap struct {
	width  int
	height int
	pix    []uint8
}

// NewBitmap creates a bitmap of the given dimensions filled with color.
func NewBitmap(width, height int, color RGBA) *Bitmap {
	b := &Bitmap{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
	b.Fill(color)
	return b
}

// BitmapFromImage converts any image.Image into a Bitmap, normalizing the
// source to 8-bit RGBA.
func BitmapFromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	b := NewBitmap(bounds.Dx(), bounds.Dy(), RGBA{})
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			b.Set(x-bounds.Min.X, y-bounds.Min.Y, RGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(bl >> 8),
				A: uint8(a >> 8),
			})
		}
	}
	return b
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int {
	return b.height
}

// Get returns the color at (x, y). Coordinates must be in bounds.
func (b *Bitmap) Get(x, y int) RGBA {
	i := (y*b.width + x) * 4
	return RGBA{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}
}

// Set writes the color at (x, y). Coordinates must be in bounds.
func (b *Bitmap) Set(x, y int, c RGBA) {
	i := (y*b.width + x) * 4
	b.pix[i] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
	b.pix[i+3] = c.A
}

// Fill overwrites every pixel with color.
func (b *Bitmap) Fill(c RGBA) {
	for i := 0; i < len(b.pix); i += 4 {
		b.pix[i] = c.R
		b.pix[i+1] = c.G
		b.pix[i+2] = c.B
		b.pix[i+3] = c.A
	}
}

// Clone creates a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	clone := &Bitmap{
		width:  b.width,
		height: b.height,
		pix:    make([]uint8, len(b.pix)),
	}
	copy(clone.pix, b.pix)
	return clone
}

// ToImage copies the bitmap into a standard library image for encoding.
func (b *Bitmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.pix)
	return img
}
