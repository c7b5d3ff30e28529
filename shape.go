package img2geom

import "math/rand"

// ShapeType identifies a concrete shape kind. The values form a bitmask so
// callers can pass an OR of several kinds to a search and let each candidate
// pick one at random.
type ShapeType uint32

const (
	ShapeRectangle ShapeType = 1 << iota
	ShapeEllipse
	ShapeCircle
	ShapeTriangle
	ShapeLine
	ShapeQuadraticBezier

	// ShapeAny enables every shape kind in the catalog.
	ShapeAny = ShapeRectangle | ShapeEllipse | ShapeCircle |
		ShapeTriangle | ShapeLine | ShapeQuadraticBezier
)

// allShapeTypes lists every concrete kind, in tag order, for mask expansion.
var allShapeTypes = []ShapeType{
	ShapeRectangle,
	ShapeEllipse,
	ShapeCircle,
	ShapeTriangle,
	ShapeLine,
	ShapeQuadraticBezier,
}

// String returns the shape kind name used in logs and SVG output.
func (t ShapeType) String() string {
	switch t {
	case ShapeRectangle:
		return "rectangle"
	case ShapeEllipse:
		return "ellipse"
	case ShapeCircle:
		return "circle"
	case ShapeTriangle:
		return "triangle"
	case ShapeLine:
		return "line"
	case ShapeQuadraticBezier:
		return "quadratic_bezier"
	}
	return "unknown"
}

// Shape is the capability contract every primitive must satisfy. A shape is
// pure geometry plus a rasterizer: it never touches canvas pixels, so scoring
// and compositing semantics live entirely outside the catalog and new kinds
// can be added without changing the optimizer.
type Shape interface {
	// Rasterize converts the current geometry into scanlines, already
	// trimmed to the shape's image bounds.
	Rasterize() []Scanline

	// Mutate perturbs one randomly chosen geometry parameter by a bounded
	// random offset, clamped to the image bounds. It has no other side
	// effects; callers wanting rollback keep a pre-mutation Clone.
	Mutate(rng *rand.Rand)

	// Clone deep-copies the geometry into an independent instance.
	Clone() Shape

	// Type reports the stable kind tag.
	Type() ShapeType

	// RawData returns the flat ordered numeric parameters of the geometry,
	// the stable contract exporters depend on.
	RawData() []int32
}

// NewRandomShape constructs a random in-bounds shape. When mask enables more
// than one kind, the kind is picked uniformly among the enabled ones. A mask
// that enables no known kind yields nil; Model.Step rejects such masks as a
// configuration error before any search starts.
func NewRandomShape(mask ShapeType, width, height int, rng *rand.Rand) Shape {
	enabled := make([]ShapeType, 0, len(allShapeTypes))
	for _, t := range allShapeTypes {
		if mask&t != 0 {
			enabled = append(enabled, t)
		}
	}
	if len(enabled) == 0 {
		return nil
	}
	switch enabled[rng.Intn(len(enabled))] {
	case ShapeRectangle:
		return newRandomRectangle(width, height, rng)
	case ShapeEllipse:
		return newRandomEllipse(width, height, rng)
	case ShapeCircle:
		return newRandomCircle(width, height, rng)
	case ShapeTriangle:
		return newRandomTriangle(width, height, rng)
	case ShapeLine:
		return newRandomLine(width, height, rng)
	default:
		return newRandomQuadraticBezier(width, height, rng)
	}
}

// randomRange returns a uniform integer in [lo, hi].
func randomRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
