package img2geom

import "math"

// DifferenceFull computes the dissimilarity between two same-sized bitmaps
// as the root mean squared per-channel difference, normalized into [0, 1].
// It is the ground-truth metric, O(width*height), used at construction and
// reset; every other score in the engine is maintained incrementally from
// it by DifferencePartial.
func DifferenceFull(target, current *Bitmap) float64 {
	width := target.Width()
	height := target.Height()

	var total uint64
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := target.Get(x, y)
			c := current.Get(x, y)
			dr := int(t.R) - int(c.R)
			dg := int(t.G) - int(c.G)
			db := int(t.B) - int(c.B)
			da := int(t.A) - int(c.A)
			total += uint64(dr*dr + dg*dg + db*db + da*da)
		}
	}

	return math.Sqrt(float64(total)/float64(width*height*4)) / 255
}

// DifferencePartial updates a known score after a change confined to the
// given scanlines. The squared-error sum is reconstructed from score, the
// contribution of before's covered pixels is removed, and after's is added.
// Cost is proportional to the covered pixels only, yet the result matches
// DifferenceFull(target, after) within floating tolerance.
func DifferencePartial(target, before, after *Bitmap, score float64, lines []Scanline) float64 {
	width := target.Width()
	height := target.Height()
	rmse := score * 255
	total := rmse * rmse * float64(width*height*4)

	for _, line := range lines {
		for x := line.X1; x <= line.X2; x++ {
			t := target.Get(x, line.Y)
			b := before.Get(x, line.Y)
			a := after.Get(x, line.Y)

			dr := int(t.R) - int(b.R)
			dg := int(t.G) - int(b.G)
			db := int(t.B) - int(b.B)
			da := int(t.A) - int(b.A)
			total -= float64(dr*dr + dg*dg + db*db + da*da)

			dr = int(t.R) - int(a.R)
			dg = int(t.G) - int(a.G)
			db = int(t.B) - int(a.B)
			da = int(t.A) - int(a.A)
			total += float64(dr*dr + dg*dg + db*db + da*da)
		}
	}

	if total < 0 {
		total = 0
	}
	return math.Sqrt(total/float64(width*height*4)) / 255
}

// ComputeColor finds the color that, blended at the given alpha over the
// covered pixels of current, best matches target there. The per-channel
// optimum is a closed-form alpha-weighted mean, so no search is needed.
// An empty scanline set yields transparent black at the requested alpha.
func ComputeColor(target, current *Bitmap, lines []Scanline, alpha uint8) RGBA {
	if alpha == 0 {
		return RGBA{A: 0}
	}

	var totalRed, totalGreen, totalBlue int64
	var count int64
	// Scale factor undoing the alpha attenuation a blended channel receives.
	f := int64(257.0 * 255.0 / float64(alpha))

	for _, line := range lines {
		for x := line.X1; x <= line.X2; x++ {
			t := target.Get(x, line.Y)
			c := current.Get(x, line.Y)
			totalRed += (int64(t.R)-int64(c.R))*f + int64(c.R)*257
			totalGreen += (int64(t.G)-int64(c.G))*f + int64(c.G)*257
			totalBlue += (int64(t.B)-int64(c.B))*f + int64(c.B)*257
			count++
		}
	}

	if count == 0 {
		return RGBA{A: alpha}
	}

	return RGBA{
		R: uint8(clampInt(int(totalRed/count)>>8, 0, 255)),
		G: uint8(clampInt(int(totalGreen/count)>>8, 0, 255)),
		B: uint8(clampInt(int(totalBlue/count)>>8, 0, 255)),
		A: alpha,
	}
}

// DrawLines alpha-blends color into the bitmap over exactly the pixels the
// scanlines cover, in place. Pixels outside the scanlines are untouched.
func DrawLines(im *Bitmap, color RGBA, lines []Scanline) {
	for _, line := range lines {
		for x := line.X1; x <= line.X2; x++ {
			im.Set(x, line.Y, blend(im.Get(x, line.Y), color))
		}
	}
}

// CopyLines copies the pixels covered by the scanlines from src into dst.
// Search workers use it to roll a scratch buffer back to the canvas state
// between candidates without re-cloning the whole bitmap.
func CopyLines(dst, src *Bitmap, lines []Scanline) {
	for _, line := range lines {
		for x := line.X1; x <= line.X2; x++ {
			dst.Set(x, line.Y, src.Get(x, line.Y))
		}
	}
}

// energy scores one candidate shape: rasterize, fit the best color, trial
// blend on the scratch buffer, and incrementally rescore against the target.
// The buffer is left carrying the trial pixels; the next call restores them
// via CopyLines before drawing, so buffer must track current outside the
// covered area at all times.
func energy(shape Shape, alpha uint8, target, current, buffer *Bitmap, score float64) float64 {
	lines := shape.Rasterize()
	if len(lines) == 0 {
		return score
	}
	color := ComputeColor(target, current, lines, alpha)
	CopyLines(buffer, current, lines)
	DrawLines(buffer, color, lines)
	return DifferencePartial(target, current, buffer, score, lines)
}
