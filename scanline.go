package img2geom

// Scanline describes one horizontal run of pixels on row Y, spanning X1
// through X2 inclusive. Scanlines are the universal rasterization unit:
// every shape reduces to a set of them, and compositing and scoring only
// ever see pixels through them.
type Scanline struct {
	Y     int
	X1    int
	X2    int
	Alpha uint16
}

// TrimScanlines intersects a set of candidate scanlines with the rectangle
// [0, width) x [0, height), truncating runs that cross an edge and dropping
// runs that fall entirely outside.
func TrimScanlines(lines []Scanline, width, height int) []Scanline {
	trimmed := make([]Scanline, 0, len(lines))
	for _, line := range lines {
		if line.Y < 0 || line.Y >= height {
			continue
		}
		if line.X1 > line.X2 {
			continue
		}
		x1 := clampInt(line.X1, 0, width-1)
		x2 := clampInt(line.X2, 0, width-1)
		if line.X2 < 0 || line.X1 >= width {
			continue
		}
		trimmed = append(trimmed, Scanline{Y: line.Y, X1: x1, X2: x2, Alpha: line.Alpha})
	}
	return trimmed
}
