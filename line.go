package img2geom

import "math/rand"

// Line is a unit-width line segment between two endpoints.
type Line struct {
	x1, y1 int
	x2, y2 int
	xBound int
	yBound int
}

func newRandomLine(width, height int, rng *rand.Rand) *Line {
	x := randomRange(rng, 0, width-1)
	y := randomRange(rng, 0, height-1)
	return &Line{
		x1:     x,
		y1:     y,
		x2:     clampInt(x+randomRange(rng, -32, 32), 0, width-1),
		y2:     clampInt(y+randomRange(rng, -32, 32), 0, height-1),
		xBound: width,
		yBound: height,
	}
}

// Rasterize emits one single-pixel scanline per point on the segment.
func (l *Line) Rasterize() []Scanline {
	points := bresenham(l.x1, l.y1, l.x2, l.y2)
	lines := make([]Scanline, 0, len(points))
	for _, p := range points {
		lines = append(lines, Scanline{Y: p.y, X1: p.x, X2: p.x, Alpha: 0xFFFF})
	}
	return TrimScanlines(lines, l.xBound, l.yBound)
}

// Mutate moves one of the two endpoints.
func (l *Line) Mutate(rng *rand.Rand) {
	switch rng.Intn(2) {
	case 0:
		l.x1 = clampInt(l.x1+randomRange(rng, -16, 16), 0, l.xBound-1)
		l.y1 = clampInt(l.y1+randomRange(rng, -16, 16), 0, l.yBound-1)
	default:
		l.x2 = clampInt(l.x2+randomRange(rng, -16, 16), 0, l.xBound-1)
		l.y2 = clampInt(l.y2+randomRange(rng, -16, 16), 0, l.yBound-1)
	}
}

func (l *Line) Clone() Shape {
	clone := *l
	return &clone
}

func (l *Line) Type() ShapeType {
	return ShapeLine
}

func (l *Line) RawData() []int32 {
	return []int32{int32(l.x1), int32(l.y1), int32(l.x2), int32(l.y2)}
}
