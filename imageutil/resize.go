package imageutil

import (
	"image"

	"golang.org/x/image/draw"

	"img2geom"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func (i Interpolation) scaler() draw.Scaler {
	switch i {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize scales a bitmap to the specified dimensions using the given
// interpolation method.
func Resize(bitmap *img2geom.Bitmap, width, height int, interp Interpolation) *img2geom.Bitmap {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	src := bitmap.ToImage()
	interp.scaler().Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return img2geom.BitmapFromImage(dst)
}

// ResizeToWidth scales a bitmap to the specified width while maintaining
// aspect ratio.
func ResizeToWidth(bitmap *img2geom.Bitmap, width int, interp Interpolation) *img2geom.Bitmap {
	aspectRatio := float64(bitmap.Width()) / float64(bitmap.Height())
	height := int(float64(width) / aspectRatio)
	if height < 1 {
		height = 1
	}
	return Resize(bitmap, width, height, interp)
}
