// Package img2geom approximates raster images with layered geometric
// primitives. A Model repeatedly searches for the one shape, color and
// placement that most reduces the difference between its working canvas
// and a target image, commits it, and hands the caller an auditable
// record of every committed shape.
package img2geom

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
)

// ShapeResult is the immutable record of one committed shape: the running
// score immediately after the commit, the resolved blend color, and the
// shape itself. An ordered sequence of results reconstructs the whole
// approximation; the shape's type tag and raw data are the stable contract
// exporters rely on.
type ShapeResult struct {
	Score float64
	Color RGBA
	Shape Shape
}

// Model owns the target image, the evolving canvas, and the running score,
// and orchestrates the add-one-shape step: parallel hill-climb searches over
// private canvas copies, a minimum-score reduction, and a single-threaded
// commit. Only Step, DrawShape and Reset mutate the model, and callers are
// expected to serialize those calls.
type Model struct {
	target  *Bitmap
	current *Bitmap
	score   float64
	workers int
	rng     *rand.Rand
}

// NewModel creates a model whose canvas starts as a flat background color.
func NewModel(target *Bitmap, background RGBA) *Model {
	current := NewBitmap(target.Width(), target.Height(), background)
	return &Model{
		target:  target,
		current: current,
		score:   DifferenceFull(target, current),
		workers: maxInt(1, runtime.NumCPU()),
		rng:     rand.New(rand.NewSource(1)),
	}
}

// NewModelFromBitmaps creates a model whose canvas starts as a copy of an
// existing image, e.g. to resume a previous run. The initial image must
// match the target's dimensions.
func NewModelFromBitmaps(target, initial *Bitmap) (*Model, error) {
	if target.Width() != initial.Width() || target.Height() != initial.Height() {
		return nil, fmt.Errorf(
			"initial image is %dx%d but target is %dx%d",
			initial.Width(), initial.Height(), target.Width(), target.Height())
	}
	current := initial.Clone()
	return &Model{
		target:  target,
		current: current,
		score:   DifferenceFull(target, current),
		workers: maxInt(1, runtime.NumCPU()),
		rng:     rand.New(rand.NewSource(1)),
	}, nil
}

// SetSeed reseeds the model's random source. With a fixed seed and a single
// worker, runs are fully reproducible.
func (m *Model) SetSeed(seed int64) {
	m.rng = rand.New(rand.NewSource(seed))
}

// SetWorkers overrides the number of parallel search workers. Values below
// one fall back to one.
func (m *Model) SetWorkers(n int) {
	m.workers = maxInt(1, n)
}

// Width returns the target width in pixels.
func (m *Model) Width() int {
	return m.target.Width()
}

// Height returns the target height in pixels.
func (m *Model) Height() int {
	return m.target.Height()
}

// AspectRatio returns width over height, or zero for an empty image.
func (m *Model) AspectRatio() float64 {
	if m.target.Width() == 0 || m.target.Height() == 0 {
		return 0
	}
	return float64(m.target.Width()) / float64(m.target.Height())
}

// Target returns the reference image being approximated.
func (m *Model) Target() *Bitmap {
	return m.target
}

// Current returns the canvas holding the approximation so far.
func (m *Model) Current() *Bitmap {
	return m.current
}

// Score returns the running dissimilarity between canvas and target.
func (m *Model) Score() float64 {
	return m.score
}

// Reset refills the canvas with a flat color and recomputes the score from
// scratch. This is the only path that bypasses incremental scoring.
func (m *Model) Reset(background RGBA) {
	m.current.Fill(background)
	m.score = DifferenceFull(m.target, m.current)
}

// hillClimbStates fans one independent search per worker, each against its
// own clone of the canvas and its own random source, and blocks until all
// have returned. Workers share the target and canvas read-only and never
// communicate; the join here is the step's only synchronization point.
func (m *Model) hillClimbStates(types ShapeType, alpha uint8, shapeCount, maxMutations, passes int) []State {
	seeds := make([]int64, m.workers)
	for i := range seeds {
		seeds[i] = m.rng.Int63()
	}

	states := make([]State, m.workers)
	var wg sync.WaitGroup
	for i := 0; i < m.workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			buffer := m.current.Clone()
			rng := rand.New(rand.NewSource(seeds[i]))
			states[i] = bestHillClimbState(
				types, alpha, shapeCount, maxMutations, passes,
				m.target, m.current, buffer, m.score, rng)
		}(i)
	}
	wg.Wait()
	return states
}

// Step runs one round of search and commits the winner, adding exactly one
// shape to the canvas. Ties between workers go to the lowest worker index;
// the reduction is a stable first-minimum scan and that ordering is part of
// the contract. The returned slice holds the single result of this step.
func (m *Model) Step(types ShapeType, alpha uint8, shapeCount, maxMutations, passes int) ([]ShapeResult, error) {
	if shapeCount < 1 {
		return nil, fmt.Errorf("shape count must be at least 1, got %d", shapeCount)
	}
	if passes < 1 {
		return nil, fmt.Errorf("passes must be at least 1, got %d", passes)
	}
	if maxMutations < 0 {
		return nil, fmt.Errorf("max mutations must not be negative, got %d", maxMutations)
	}
	if types&ShapeAny == 0 {
		return nil, fmt.Errorf("shape type mask %#x enables no known shape kind", uint32(types))
	}

	states := m.hillClimbStates(types, alpha, shapeCount, maxMutations, passes)
	best := states[0]
	for _, s := range states[1:] {
		if s.Score < best.Score {
			best = s
		}
	}

	return []ShapeResult{m.DrawShape(best.Shape, alpha)}, nil
}

// DrawShape commits a specific shape at the given alpha, resolving its
// best-fit color first. It bypasses search entirely, serving both Step's
// commit phase and deterministic replay of recorded shapes.
func (m *Model) DrawShape(shape Shape, alpha uint8) ShapeResult {
	lines := shape.Rasterize()
	color := ComputeColor(m.target, m.current, lines, alpha)
	return m.commit(shape, color, lines)
}

// DrawShapeWithColor commits a specific shape with an explicit color,
// skipping color resolution.
func (m *Model) DrawShapeWithColor(shape Shape, color RGBA) ShapeResult {
	return m.commit(shape, color, shape.Rasterize())
}

func (m *Model) commit(shape Shape, color RGBA, lines []Scanline) ShapeResult {
	before := m.current.Clone()
	DrawLines(m.current, color, lines)
	m.score = DifferencePartial(m.target, before, m.current, m.score, lines)
	return ShapeResult{Score: m.score, Color: color, Shape: shape}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
