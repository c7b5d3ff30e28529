package img2geom

// RGBA represents a color with 8-bit red, green, blue and alpha channels.
// It is the only color representation the engine works with; conversion to
// and from other color models happens at the image I/O boundary.
type RGBA struct {
	R, G, B, A uint8
}

// blend composites src over dst using the source alpha channel. The result
// keeps dst's alpha so a fully opaque canvas stays opaque as shapes are
// layered onto it.
func blend(dst, src RGBA) RGBA {
	sa := uint32(src.A)
	da := 255 - sa
	return RGBA{
		R: uint8((uint32(src.R)*sa + uint32(dst.R)*da) / 255),
		G: uint8((uint32(src.G)*sa + uint32(dst.G)*da) / 255),
		B: uint8((uint32(src.B)*sa + uint32(dst.B)*da) / 255),
		A: dst.A,
	}
}

func clampInt(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
