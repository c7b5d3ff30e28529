package imageutil

import "img2geom"

// CreateSolidBitmap creates a bitmap filled with a single color.
func CreateSolidBitmap(width, height int, c img2geom.RGBA) *img2geom.Bitmap {
	return img2geom.NewBitmap(width, height, c)
}

// CreateGradientBitmap creates a horizontal grayscale gradient test image.
func CreateGradientBitmap(width, height int) *img2geom.Bitmap {
	bitmap := img2geom.NewBitmap(width, height, img2geom.RGBA{})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / (width - 1))
			bitmap.Set(x, y, img2geom.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return bitmap
}

// CreateCheckerboardBitmap creates a black and white checkerboard pattern.
func CreateCheckerboardBitmap(width, height, squareSize int) *img2geom.Bitmap {
	bitmap := img2geom.NewBitmap(width, height, img2geom.RGBA{})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				bitmap.Set(x, y, img2geom.RGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				bitmap.Set(x, y, img2geom.RGBA{R: 0, G: 0, B: 0, A: 255})
			}
		}
	}
	return bitmap
}
