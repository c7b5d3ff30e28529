package img2geom

import "math/rand"

// Triangle is a filled triangle held as three vertices.
type Triangle struct {
	vertices [3]point
	xBound   int
	yBound   int
}

func newRandomTriangle(width, height int, rng *rand.Rand) *Triangle {
	t := &Triangle{xBound: width, yBound: height}
	anchorX := randomRange(rng, 0, width-1)
	anchorY := randomRange(rng, 0, height-1)
	for i := range t.vertices {
		t.vertices[i] = point{
			x: clampInt(anchorX+randomRange(rng, -32, 32), 0, width-1),
			y: clampInt(anchorY+randomRange(rng, -32, 32), 0, height-1),
		}
	}
	return t
}

// Rasterize fills the triangle row by row. The edges are walked with
// bresenham and each row keeps the leftmost and rightmost touched column;
// the span between them is the row's chord.
func (t *Triangle) Rasterize() []Scanline {
	minY, maxY := t.vertices[0].y, t.vertices[0].y
	for _, v := range t.vertices[1:] {
		if v.y < minY {
			minY = v.y
		}
		if v.y > maxY {
			maxY = v.y
		}
	}

	rows := maxY - minY + 1
	minX := make([]int, rows)
	maxX := make([]int, rows)
	for i := range minX {
		minX[i] = -1
	}
	mark := func(p point) {
		row := p.y - minY
		if minX[row] < 0 || p.x < minX[row] {
			if minX[row] < 0 {
				maxX[row] = p.x
			}
			minX[row] = p.x
		}
		if p.x > maxX[row] {
			maxX[row] = p.x
		}
	}
	for i := 0; i < 3; i++ {
		a := t.vertices[i]
		b := t.vertices[(i+1)%3]
		for _, p := range bresenham(a.x, a.y, b.x, b.y) {
			mark(p)
		}
	}

	lines := make([]Scanline, 0, rows)
	for row := 0; row < rows; row++ {
		if minX[row] < 0 {
			continue
		}
		lines = append(lines, Scanline{Y: minY + row, X1: minX[row], X2: maxX[row], Alpha: 0xFFFF})
	}
	return TrimScanlines(lines, t.xBound, t.yBound)
}

// Mutate jitters one randomly chosen vertex.
func (t *Triangle) Mutate(rng *rand.Rand) {
	i := rng.Intn(len(t.vertices))
	t.vertices[i] = point{
		x: clampInt(t.vertices[i].x+randomRange(rng, -32, 32), 0, t.xBound-1),
		y: clampInt(t.vertices[i].y+randomRange(rng, -32, 32), 0, t.yBound-1),
	}
}

func (t *Triangle) Clone() Shape {
	clone := *t
	return &clone
}

func (t *Triangle) Type() ShapeType {
	return ShapeTriangle
}

func (t *Triangle) RawData() []int32 {
	data := make([]int32, 0, 6)
	for _, v := range t.vertices {
		data = append(data, int32(v.x), int32(v.y))
	}
	return data
}
