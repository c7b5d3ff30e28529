package img2geom

import "math/rand"

// quadraticBezierControlPoints is the number of control points in the curve.
const quadraticBezierControlPoints = 4

// QuadraticBezier is a curve defined by a short chain of control points,
// rasterized as piecewise line segments between consecutive points.
type QuadraticBezier struct {
	points [quadraticBezierControlPoints]point
	xBound int
	yBound int
}

// newRandomQuadraticBezier seeds the curve near a random anchor point,
// deriving every control point by a bounded jitter around the anchor.
func newRandomQuadraticBezier(width, height int, rng *rand.Rand) *QuadraticBezier {
	b := &QuadraticBezier{xBound: width, yBound: height}
	anchorX := randomRange(rng, 0, width-1)
	anchorY := randomRange(rng, 0, height-1)
	for i := range b.points {
		b.points[i] = point{
			x: clampInt(anchorX+randomRange(rng, -32, 32), 0, width-1),
			y: clampInt(anchorY+randomRange(rng, -32, 32), 0, height-1),
		}
	}
	return b
}

// Rasterize draws the segment chain with bresenham and emits one unit-width
// scanline per touched pixel. Consecutive segments share their joint pixel
// and a wiggly chain can cross itself, so pixels are deduplicated: the
// scanline set covers each pixel exactly once, which partial scoring and
// blending both rely on.
func (b *QuadraticBezier) Rasterize() []Scanline {
	lines := make([]Scanline, 0, 64)
	seen := make(map[point]struct{}, 64)
	for i := 0; i < len(b.points)-1; i++ {
		p1 := b.points[i]
		p2 := b.points[i+1]
		for _, p := range bresenham(p1.x, p1.y, p2.x, p2.y) {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			lines = append(lines, Scanline{Y: p.y, X1: p.x, X2: p.x, Alpha: 0xFFFF})
		}
	}
	return TrimScanlines(lines, b.xBound, b.yBound)
}

// Mutate jitters one randomly chosen control point.
func (b *QuadraticBezier) Mutate(rng *rand.Rand) {
	i := rng.Intn(len(b.points))
	b.points[i] = point{
		x: clampInt(b.points[i].x+randomRange(rng, -64, 64), 0, b.xBound-1),
		y: clampInt(b.points[i].y+randomRange(rng, -64, 64), 0, b.yBound-1),
	}
}

// Clone deep-copies the curve.
func (b *QuadraticBezier) Clone() Shape {
	clone := *b
	return &clone
}

// Type reports the quadratic bezier tag.
func (b *QuadraticBezier) Type() ShapeType {
	return ShapeQuadraticBezier
}

// RawData returns the control points as interleaved x, y pairs.
func (b *QuadraticBezier) RawData() []int32 {
	data := make([]int32, 0, len(b.points)*2)
	for _, p := range b.points {
		data = append(data, int32(p.x), int32(p.y))
	}
	return data
}
