// Provides generation and rendering of procedural coral shapes,
// using a parametric, stochastic L-system.
// Growth patterns are expanded into an abstract representation,
// which can then be consumed by painting drivers.
// See for example okcoral/coralraster or okcoral/coralpdf .
package coral

// A grammar is plain data: a weighted choice of starting patterns
// (axioms) and a weighted choice of production rules applied to
// every Forward token during expansion.

// Axiom is one possible starting pattern for an expansion.
// Thickness values in the pattern are absolute (usually 1 for the trunk).
type Axiom struct {
	Pattern Pattern
	Weight  float64 // relative weight, normalized over the axiom set
}

// Rule is one possible replacement for a Forward token.
// Thickness values of Forward tokens in the replacement are
// multiplicative factors of the parent thickness, and must lie in (0, 1]
// so that branches only ever get thinner.
type Rule struct {
	Replacement Pattern
	Weight      float64 // relative weight, normalized over the rule set
}

// Grammar groups the axioms and production rules of a coral species.
// The zero value is not usable; see DefaultGrammar or ReadGrammar.
type Grammar struct {
	Axioms []Axiom
	Rules  []Rule
}

// Validate checks that the grammar can safely be expanded:
// both choice sets are non-empty with positive weights, every
// pattern is bracket-balanced, and no rule increases thickness.
func (g *Grammar) Validate() error {
	if len(g.Axioms) == 0 || len(g.Rules) == 0 {
		return ErrEmptyGrammar
	}
	for _, ax := range g.Axioms {
		if ax.Weight <= 0 {
			return ErrBadWeight
		}
		if !ax.Pattern.isBalanced() {
			return ErrUnbalanced
		}
	}
	for _, ru := range g.Rules {
		if ru.Weight <= 0 {
			return ErrBadWeight
		}
		if !ru.Replacement.isBalanced() {
			return ErrUnbalanced
		}
		for _, tk := range ru.Replacement {
			if f, ok := tk.(Forward); ok && (f.Thickness <= 0 || f.Thickness > 1) {
				return ErrThicknessGrowth
			}
		}
	}
	return nil
}

// cumulative returns the cumulative probability boundaries of the
// weights, normalized so the last entry is 1.
func cumulative(weights []float64) []float64 {
	var total float64
	for _, w := range weights {
		total += w
	}
	out := make([]float64, len(weights))
	var acc float64
	for i, w := range weights {
		acc += w / total
		out[i] = acc
	}
	out[len(out)-1] = 1 // guard against rounding drift
	return out
}

// pick maps a random value in [0,1) into a choice index
// via cumulative probability ranges.
func pick(boundaries []float64, r float64) int {
	for i, b := range boundaries {
		if r < b {
			return i
		}
	}
	return len(boundaries) - 1
}

func (g *Grammar) axiomBoundaries() []float64 {
	ws := make([]float64, len(g.Axioms))
	for i, ax := range g.Axioms {
		ws[i] = ax.Weight
	}
	return cumulative(ws)
}

func (g *Grammar) ruleBoundaries() []float64 {
	ws := make([]float64, len(g.Rules))
	for i, ru := range g.Rules {
		ws[i] = ru.Weight
	}
	return cumulative(ws)
}

// DefaultGrammar returns the grammar used by the reference coral
// animation. The weights and angles are cosmetic constants with no
// deeper invariant than summing to 1.
func DefaultGrammar() *Grammar {
	return &Grammar{
		Axioms: []Axiom{
			{Weight: 0.25, Pattern: Pattern{Forward{1}}},
			{Weight: 0.25, Pattern: Pattern{Forward{1}, Push{}, TurnRight{20}, Forward{0.85}, Pop{}}},
			{Weight: 0.25, Pattern: Pattern{Forward{1}, Push{}, TurnLeft{20}, Forward{0.85}, Pop{}}},
			{Weight: 0.25, Pattern: Pattern{
				Forward{0.95},
				Push{}, TurnRight{15}, Forward{0.8}, Pop{},
				Push{}, TurnLeft{15}, Forward{0.8}, Pop{},
			}},
		},
		Rules: []Rule{
			{Weight: 0.25, Replacement: Pattern{ // symmetric fork
				Forward{0.92},
				Push{}, TurnRight{25}, Forward{0.78}, Pop{},
				Push{}, TurnLeft{25}, Forward{0.78}, Pop{},
			}},
			{Weight: 0.35, Replacement: Pattern{ // right branch, keep growing
				Forward{0.9},
				Push{}, TurnRight{35}, Forward{0.72}, Pop{},
				Forward{0.8},
			}},
			{Weight: 0.25, Replacement: Pattern{ // left branch, keep growing
				Forward{0.9},
				Push{}, TurnLeft{35}, Forward{0.72}, Pop{},
				Forward{0.8},
			}},
			{Weight: 0.1, Replacement: Pattern{ // asymmetric triple
				Forward{0.85},
				Push{}, TurnRight{20}, Forward{0.7}, Pop{},
				Push{}, TurnLeft{45}, Forward{0.65}, Pop{},
				Forward{0.75},
			}},
			{Weight: 0.05, Replacement: Pattern{ // near-straight elongation
				Forward{0.88},
				Push{}, TurnRight{15}, Forward{0.7}, Pop{},
			}},
		},
	}
}
