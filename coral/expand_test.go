package coral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Pattern {
	p, err := ParsePattern(s)
	require.NoError(t, err)
	return p
}

func countForwards(p Pattern) int {
	n := 0
	for _, tk := range p {
		if _, ok := tk.(Forward); ok {
			n++
		}
	}
	return n
}

func maxThickness(p Pattern) float64 {
	max := 0.0
	for _, tk := range p {
		if f, ok := tk.(Forward); ok && f.Thickness > max {
			max = f.Thickness
		}
	}
	return max
}

// TestExpand_Deterministic verifies repeated expansions of the same
// (seed, iterations) pair are identical.
func TestExpand_Deterministic(t *testing.T) {
	g := DefaultGrammar()
	for _, seed := range []int{1, 42, 12345} {
		p1, err := Expand(g, seed, 3)
		require.NoError(t, err)
		p2, err := Expand(g, seed, 3)
		require.NoError(t, err)
		assert.Equal(t, p1, p2)
		assert.Equal(t, p1.String(), p2.String())
	}
}

// TestExpand_ZeroIterations verifies the chosen axiom comes back unchanged.
func TestExpand_ZeroIterations(t *testing.T) {
	axiom := mustParse(t, "F(1.0)[+(20)F(0.85)]")
	g := &Grammar{
		Axioms: []Axiom{{Weight: 1, Pattern: axiom}},
		Rules:  DefaultGrammar().Rules,
	}
	p, err := Expand(g, 99, 0)
	require.NoError(t, err)
	assert.Equal(t, axiom, p)
}

// TestExpand_BracketBalance verifies expanded output is well nested:
// the running bracket depth never goes negative and ends at zero.
func TestExpand_BracketBalance(t *testing.T) {
	g := DefaultGrammar()
	for _, seed := range []int{3, 1984, 555555} {
		p, err := Expand(g, seed, 4)
		require.NoError(t, err)
		depth := 0
		for _, tk := range p {
			switch tk.(type) {
			case Push:
				depth++
			case Pop:
				depth--
			}
			assert.GreaterOrEqual(t, depth, 0)
		}
		assert.Equal(t, 0, depth)
	}
}

// TestExpand_MonotonicDecay verifies thickness only thins with depth.
func TestExpand_MonotonicDecay(t *testing.T) {
	g := DefaultGrammar()
	prev := 2.0
	for n := 0; n <= 5; n++ {
		p, err := Expand(g, 12345, n)
		require.NoError(t, err)
		max := maxThickness(p)
		assert.Less(t, max, prev, "iteration %d should be thinner than %d", n, n-1)
		prev = max
	}
}

// TestExpand_GrowthIsMonotone verifies deeper expansions contain
// strictly more segments.
func TestExpand_GrowthIsMonotone(t *testing.T) {
	g := DefaultGrammar()
	p2, err := Expand(g, 12345, 2)
	require.NoError(t, err)
	p3, err := Expand(g, 12345, 3)
	require.NoError(t, err)
	assert.Greater(t, countForwards(p3), countForwards(p2))
}

// TestExpand_ClampsIterations verifies out-of-range depths are clamped
// rather than rejected.
func TestExpand_ClampsIterations(t *testing.T) {
	g := DefaultGrammar()
	pNeg, err := Expand(g, 7, -3)
	require.NoError(t, err)
	p0, err := Expand(g, 7, 0)
	require.NoError(t, err)
	assert.Equal(t, p0, pNeg)

	pHuge, err := Expand(g, 7, 1000)
	require.NoError(t, err)
	pMax, err := Expand(g, 7, MaxIterations)
	require.NoError(t, err)
	assert.Equal(t, pMax, pHuge)
}

// TestExpand_InvalidGrammars verifies the sentinel validation errors.
func TestExpand_InvalidGrammars(t *testing.T) {
	stem := Pattern{Forward{1}}

	_, err := Expand(&Grammar{}, 1, 1)
	assert.ErrorIs(t, err, ErrEmptyGrammar)

	g := &Grammar{
		Axioms: []Axiom{{Weight: -1, Pattern: stem}},
		Rules:  []Rule{{Weight: 1, Replacement: stem}},
	}
	_, err = Expand(g, 1, 1)
	assert.ErrorIs(t, err, ErrBadWeight)

	g = &Grammar{
		Axioms: []Axiom{{Weight: 1, Pattern: Pattern{Forward{1}, Push{}}}},
		Rules:  []Rule{{Weight: 1, Replacement: stem}},
	}
	_, err = Expand(g, 1, 1)
	assert.ErrorIs(t, err, ErrUnbalanced)

	g = &Grammar{
		Axioms: []Axiom{{Weight: 1, Pattern: stem}},
		Rules:  []Rule{{Weight: 1, Replacement: Pattern{Forward{1.2}}}},
	}
	_, err = Expand(g, 1, 1)
	assert.ErrorIs(t, err, ErrThicknessGrowth)
}

// TestDefaultGrammar_RulesOnlyThin double-checks the shipped constants:
// every replacement Forward is a strict thinning factor.
func TestDefaultGrammar_RulesOnlyThin(t *testing.T) {
	g := DefaultGrammar()
	require.NoError(t, g.Validate())
	for i, ru := range g.Rules {
		for _, tk := range ru.Replacement {
			if f, ok := tk.(Forward); ok {
				assert.LessOrEqual(t, f.Thickness, 1.0, "rule %d", i)
				assert.Greater(t, f.Thickness, 0.0, "rule %d", i)
			}
		}
	}
}
