package img2geom

import (
	"math"
	"math/rand"
)

// Ellipse is an axis-aligned filled ellipse held as a center and two radii.
type Ellipse struct {
	x, y   int
	rx, ry int
	xBound int
	yBound int
}

func newRandomEllipse(width, height int, rng *rand.Rand) *Ellipse {
	return &Ellipse{
		x:      randomRange(rng, 0, width-1),
		y:      randomRange(rng, 0, height-1),
		rx:     clampInt(randomRange(rng, 1, 32), 1, maxInt(1, width-1)),
		ry:     clampInt(randomRange(rng, 1, 32), 1, maxInt(1, height-1)),
		xBound: width,
		yBound: height,
	}
}

// Rasterize emits one chord per covered row, solving the ellipse equation
// for the horizontal extent at each vertical offset from the center.
func (e *Ellipse) Rasterize() []Scanline {
	lines := make([]Scanline, 0, 2*e.ry+1)
	for dy := -e.ry; dy <= e.ry; dy++ {
		y := e.y + dy
		v := 1 - float64(dy*dy)/float64(e.ry*e.ry)
		if v < 0 {
			continue
		}
		dx := int(math.Sqrt(v) * float64(e.rx))
		lines = append(lines, Scanline{Y: y, X1: e.x - dx, X2: e.x + dx, Alpha: 0xFFFF})
	}
	return TrimScanlines(lines, e.xBound, e.yBound)
}

// Mutate moves the center or resizes one radius.
func (e *Ellipse) Mutate(rng *rand.Rand) {
	switch rng.Intn(3) {
	case 0:
		e.x = clampInt(e.x+randomRange(rng, -16, 16), 0, e.xBound-1)
		e.y = clampInt(e.y+randomRange(rng, -16, 16), 0, e.yBound-1)
	case 1:
		e.rx = clampInt(e.rx+randomRange(rng, -16, 16), 1, maxInt(1, e.xBound-1))
	default:
		e.ry = clampInt(e.ry+randomRange(rng, -16, 16), 1, maxInt(1, e.yBound-1))
	}
}

func (e *Ellipse) Clone() Shape {
	clone := *e
	return &clone
}

func (e *Ellipse) Type() ShapeType {
	return ShapeEllipse
}

func (e *Ellipse) RawData() []int32 {
	return []int32{int32(e.x), int32(e.y), int32(e.rx), int32(e.ry)}
}

// Circle is an ellipse constrained to a single radius. It keeps its own
// type tag and a three-value parameter dump.
type Circle struct {
	x, y   int
	r      int
	xBound int
	yBound int
}

func newRandomCircle(width, height int, rng *rand.Rand) *Circle {
	return &Circle{
		x:      randomRange(rng, 0, width-1),
		y:      randomRange(rng, 0, height-1),
		r:      clampInt(randomRange(rng, 1, 32), 1, maxInt(1, width-1)),
		xBound: width,
		yBound: height,
	}
}

func (c *Circle) Rasterize() []Scanline {
	lines := make([]Scanline, 0, 2*c.r+1)
	for dy := -c.r; dy <= c.r; dy++ {
		v := c.r*c.r - dy*dy
		if v < 0 {
			continue
		}
		dx := int(math.Sqrt(float64(v)))
		lines = append(lines, Scanline{Y: c.y + dy, X1: c.x - dx, X2: c.x + dx, Alpha: 0xFFFF})
	}
	return TrimScanlines(lines, c.xBound, c.yBound)
}

// Mutate moves the center or resizes the radius.
func (c *Circle) Mutate(rng *rand.Rand) {
	switch rng.Intn(2) {
	case 0:
		c.x = clampInt(c.x+randomRange(rng, -16, 16), 0, c.xBound-1)
		c.y = clampInt(c.y+randomRange(rng, -16, 16), 0, c.yBound-1)
	default:
		c.r = clampInt(c.r+randomRange(rng, -16, 16), 1, maxInt(1, c.xBound-1))
	}
}

func (c *Circle) Clone() Shape {
	clone := *c
	return &clone
}

func (c *Circle) Type() ShapeType {
	return ShapeCircle
}

func (c *Circle) RawData() []int32 {
	return []int32{int32(c.x), int32(c.y), int32(c.r)}
}
