package coral

import (
	"fmt"
	"strings"
)

// This file defines the basic pattern structure

// Token is one symbol of a growth pattern.
// The concrete types are Forward, TurnRight, TurnLeft, Push and Pop.
type Token interface {
	// walk itself on the turtle `t` (see draw.go)
	walk(t *turtle)
}

// Forward draws a segment. In an axiom or an expanded pattern
// Thickness is absolute; inside a rule replacement it is a
// multiplicative factor of the parent thickness.
type Forward struct {
	Thickness float64
}

// TurnRight rotates the heading clockwise by Angle degrees.
type TurnRight struct {
	Angle float64
}

// TurnLeft rotates the heading counterclockwise by Angle degrees.
type TurnLeft struct {
	Angle float64
}

// Push saves the cursor state, starting a branch.
type Push struct{}

// Pop restores the cursor state saved by the matching Push,
// ending a branch.
type Pop struct{}

// Pattern describes a sequence of growth tokens, which should not be nil.
type Pattern []Token

// String returns the classic bracketed notation of the pattern,
// such as "F(0.90)[+(35)F(0.72)]F(0.80)".
// It can be parsed back with ParsePattern.
func (p Pattern) String() string {
	var b strings.Builder
	for _, tk := range p {
		switch tk := tk.(type) {
		case Forward:
			fmt.Fprintf(&b, "F(%.2f)", tk.Thickness)
		case TurnRight:
			fmt.Fprintf(&b, "+(%g)", tk.Angle)
		case TurnLeft:
			fmt.Fprintf(&b, "-(%g)", tk.Angle)
		case Push:
			b.WriteByte('[')
		case Pop:
			b.WriteByte(']')
		}
	}
	return b.String()
}

// isBalanced reports whether every Push has a matching Pop and
// no Pop closes a branch that was never opened.
func (p Pattern) isBalanced() bool {
	depth := 0
	for _, tk := range p {
		switch tk.(type) {
		case Push:
			depth++
		case Pop:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
