package coral

import "math"

// randFactor spreads consecutive indices over many sine periods,
// so successive draws look unrelated.
const randFactor = 9999

// Random returns a deterministic pseudo-uniform value in [0, 1),
// keyed by a seed and a decision index. Same inputs always yield the
// same value, on every platform with IEEE-754 float64 semantics.
// It is a stateless convenience, not a statistically serious generator:
// it only drives cosmetic branching choices.
//
// Callers maintaining a decision counter should start it at 1,
// since index 0 collapses every seed to the same value.
func Random(seed, index int) float64 {
	v := math.Abs(math.Sin(float64(seed) * float64(index) * randFactor))
	// sin can land exactly on 1; fold back into [0, 1)
	return v - math.Floor(v)
}
