package coral

import "errors"

var (
	// ErrEmptyGrammar indicates a grammar with no axiom or no rule.
	ErrEmptyGrammar = errors.New("coral: grammar needs at least one axiom and one rule")
	// ErrBadWeight indicates a non-positive axiom or rule weight.
	ErrBadWeight = errors.New("coral: choice weights must be positive")
	// ErrThicknessGrowth indicates a rule whose replacement would thicken a branch.
	ErrThicknessGrowth = errors.New("coral: rule thickness factors must be in (0, 1]")
	// ErrUnbalanced indicates a pattern with mismatched brackets.
	ErrUnbalanced = errors.New("coral: unbalanced brackets in pattern")
	// ErrMalformedToken indicates a textual pattern which could not be tokenized.
	ErrMalformedToken = errors.New("coral: malformed token in pattern")
)
