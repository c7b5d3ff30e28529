package imageutil

import (
	"gonum.org/v1/gonum/stat"

	"img2geom"
)

// AverageColor computes the mean color of a bitmap, channel by channel.
// Starting the approximation from the target's average color rather than an
// arbitrary background typically saves the first few shapes.
func AverageColor(bitmap *img2geom.Bitmap) img2geom.RGBA {
	width, height := bitmap.Width(), bitmap.Height()
	n := width * height
	reds := make([]float64, 0, n)
	greens := make([]float64, 0, n)
	blues := make([]float64, 0, n)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := bitmap.Get(x, y)
			reds = append(reds, float64(c.R))
			greens = append(greens, float64(c.G))
			blues = append(blues, float64(c.B))
		}
	}

	return img2geom.RGBA{
		R: uint8(stat.Mean(reds, nil) + 0.5),
		G: uint8(stat.Mean(greens, nil) + 0.5),
		B: uint8(stat.Mean(blues, nil) + 0.5),
		A: 255,
	}
}
