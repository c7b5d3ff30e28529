package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"

	"img2geom"
)

// annotator burns a step counter and the running score into exported
// frames so a frame sequence is self-describing when assembled into an
// animation.
type annotator struct {
	font *truetype.Font
}

// newAnnotator loads a TTF font from disk.
func newAnnotator(fontPath string) (*annotator, error) {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	font, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &annotator{font: font}, nil
}

// Annotate draws the label onto a copy of the frame and returns it.
func (a *annotator) Annotate(frame *img2geom.Bitmap, step int, score float64) (*image.RGBA, error) {
	img := frame.ToImage()

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(a.font)
	ctx.SetFontSize(12)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}))

	label := fmt.Sprintf("step %d  score %.5f", step, score)
	pt := freetype.Pt(4, 14)
	if _, err := ctx.DrawString(label, pt); err != nil {
		return nil, fmt.Errorf("failed to draw label: %w", err)
	}
	return img, nil
}
