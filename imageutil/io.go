// Package imageutil handles getting raster images in and out of the
// engine: decoding files into bitmaps, resizing targets to a workable
// size, and small analysis helpers like the average color used to pick a
// starting background.
package imageutil

import (
	"fmt"
	"image/png"
	"os"

	"gocv.io/x/gocv"

	"img2geom"
)

// LoadBitmap reads an image file into a Bitmap. Decoding goes through
// OpenCV, so every format gocv's IMRead understands is accepted. The
// returned bitmap is fully opaque.
func LoadBitmap(path string) (*img2geom.Bitmap, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		return nil, fmt.Errorf("could not read image from %s", path)
	}
	defer mat.Close()

	height, width := mat.Rows(), mat.Cols()
	bitmap := img2geom.NewBitmap(width, height, img2geom.RGBA{})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// gocv stores pixels in BGR order.
			v := mat.GetVecbAt(y, x)
			bitmap.Set(x, y, img2geom.RGBA{R: v[2], G: v[1], B: v[0], A: 255})
		}
	}
	return bitmap, nil
}

// SaveBitmapPNG writes a bitmap to the given path as PNG.
func SaveBitmapPNG(bitmap *img2geom.Bitmap, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return png.Encode(f, bitmap.ToImage())
}
