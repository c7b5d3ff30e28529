package img2geom

// point is an integer pixel coordinate produced by line rasterization.
type point struct {
	x int
	y int
}

// bresenham rasterizes the line segment from (x1, y1) to (x2, y2) into the
// discrete pixel grid, returning every touched pixel in traversal order.
func bresenham(x1, y1, x2, y2 int) []point {
	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	dy := y2 - y1
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	points := make([]point, 0, dx+dy+1)
	err := dx - dy
	x, y := x1, y1
	for {
		points = append(points, point{x: x, y: y})
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return points
}
