package coral

// MaxIterations bounds the expansion depth. Each pass replaces every
// Forward token by two or more, so the pattern grows exponentially;
// beyond single digit depths the pattern no longer fits a surface
// (or memory).
const MaxIterations = 8

// Expand selects an axiom and applies `iterations` rewriting passes
// to it, returning the fully expanded pattern.
//
// All stochastic choices are drawn from Random(seed, i) with a single
// decision counter running across the whole expansion (the axiom
// choice consumes index 1), so the result is fully reproducible:
// Expand(g, s, n) returns the same pattern on every call.
//
// A negative iteration count behaves as 0, returning the chosen axiom
// unchanged; counts above MaxIterations are clamped.
func Expand(g *Grammar, seed, iterations int) (Pattern, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if iterations < 0 {
		iterations = 0
	} else if iterations > MaxIterations {
		iterations = MaxIterations
	}

	axBounds, ruleBounds := g.axiomBoundaries(), g.ruleBoundaries()

	counter := 1
	ax := g.Axioms[pick(axBounds, Random(seed, counter))]
	counter++

	cur := append(Pattern(nil), ax.Pattern...)
	for i := 0; i < iterations; i++ {
		next := make(Pattern, 0, 2*len(cur))
		for _, tk := range cur {
			parent, ok := tk.(Forward)
			if !ok {
				next = append(next, tk)
				continue
			}
			// rule choice is per occurrence of F, so one pass can
			// treat different branches differently
			rule := g.Rules[pick(ruleBounds, Random(seed, counter))]
			counter++
			for _, rt := range rule.Replacement {
				if f, ok := rt.(Forward); ok {
					next = append(next, Forward{Thickness: parent.Thickness * f.Thickness})
				} else {
					next = append(next, rt)
				}
			}
		}
		cur = next
	}
	return cur, nil
}
