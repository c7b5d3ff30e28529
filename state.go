package img2geom

import "math/rand"

// State is one search worker's transient candidate: a shape, the alpha it
// will be blended with, and the canvas score it would produce. States never
// outlive the step that produced them; the winning state's shape is handed
// to the model for the actual commit.
type State struct {
	Shape Shape
	Alpha uint8
	Score float64
}

// bestRandomState generates count independent random shapes of the enabled
// kinds, scores each, and returns the lowest-scoring one.
func bestRandomState(
	types ShapeType,
	alpha uint8,
	count int,
	target, current, buffer *Bitmap,
	lastScore float64,
	rng *rand.Rand,
) State {
	var best State
	for i := 0; i < count; i++ {
		shape := NewRandomShape(types, current.Width(), current.Height(), rng)
		score := energy(shape, alpha, target, current, buffer, lastScore)
		if i == 0 || score < best.Score {
			best = State{Shape: shape, Alpha: alpha, Score: score}
		}
	}
	return best
}

// hillClimb runs a fixed budget of greedy mutations on the state's shape.
// Each trial mutates a clone; the clone replaces the incumbent only when it
// scores strictly better, otherwise it is discarded. The pre-mutation clone
// is the rollback, so the incumbent is never left half-mutated.
func hillClimb(
	state State,
	maxMutations int,
	target, current, buffer *Bitmap,
	lastScore float64,
	rng *rand.Rand,
) State {
	best := state
	for i := 0; i < maxMutations; i++ {
		candidate := best.Shape.Clone()
		candidate.Mutate(rng)
		score := energy(candidate, best.Alpha, target, current, buffer, lastScore)
		if score < best.Score {
			best = State{Shape: candidate, Alpha: best.Alpha, Score: score}
		}
	}
	return best
}

// bestHillClimbState is one full search: passes rounds of random restart
// followed by hill climbing, retaining the best state seen across all
// rounds. It runs entirely against the caller's private buffer, reading
// target and current but mutating neither.
func bestHillClimbState(
	types ShapeType,
	alpha uint8,
	shapeCount, maxMutations, passes int,
	target, current, buffer *Bitmap,
	lastScore float64,
	rng *rand.Rand,
) State {
	var best State
	for pass := 0; pass < passes; pass++ {
		state := bestRandomState(types, alpha, shapeCount, target, current, buffer, lastScore, rng)
		state = hillClimb(state, maxMutations, target, current, buffer, lastScore, rng)
		if pass == 0 || state.Score < best.Score {
			best = state
		}
	}
	return best
}
