package img2geom

import "math/rand"

// Rectangle is an axis-aligned filled rectangle held as two opposite
// corners. The corners may be stored in any order; rasterization sorts.
type Rectangle struct {
	x1, y1 int
	x2, y2 int
	xBound int
	yBound int
}

func newRandomRectangle(width, height int, rng *rand.Rand) *Rectangle {
	x := randomRange(rng, 0, width-1)
	y := randomRange(rng, 0, height-1)
	return &Rectangle{
		x1:     x,
		y1:     y,
		x2:     clampInt(x+randomRange(rng, -32, 32), 0, width-1),
		y2:     clampInt(y+randomRange(rng, -32, 32), 0, height-1),
		xBound: width,
		yBound: height,
	}
}

// Rasterize emits one full-width scanline per covered row.
func (r *Rectangle) Rasterize() []Scanline {
	x1, x2 := r.x1, r.x2
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 := r.y1, r.y2
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	lines := make([]Scanline, 0, y2-y1+1)
	for y := y1; y <= y2; y++ {
		lines = append(lines, Scanline{Y: y, X1: x1, X2: x2, Alpha: 0xFFFF})
	}
	return TrimScanlines(lines, r.xBound, r.yBound)
}

// Mutate moves one of the two corners.
func (r *Rectangle) Mutate(rng *rand.Rand) {
	switch rng.Intn(2) {
	case 0:
		r.x1 = clampInt(r.x1+randomRange(rng, -16, 16), 0, r.xBound-1)
		r.y1 = clampInt(r.y1+randomRange(rng, -16, 16), 0, r.yBound-1)
	default:
		r.x2 = clampInt(r.x2+randomRange(rng, -16, 16), 0, r.xBound-1)
		r.y2 = clampInt(r.y2+randomRange(rng, -16, 16), 0, r.yBound-1)
	}
}

func (r *Rectangle) Clone() Shape {
	clone := *r
	return &clone
}

func (r *Rectangle) Type() ShapeType {
	return ShapeRectangle
}

// RawData returns the corners normalized so (x1, y1) is top-left.
func (r *Rectangle) RawData() []int32 {
	x1, x2 := r.x1, r.x2
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 := r.y1, r.y2
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return []int32{int32(x1), int32(y1), int32(x2), int32(y2)}
}
