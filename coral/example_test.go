package coral_test

import (
	"fmt"

	"github.com/benoitkugler/okcoral/coral"
)

// A grammar with a single axiom and a single rule expands
// deterministically whatever the seed.
func ExampleExpand() {
	g := &coral.Grammar{
		Axioms: []coral.Axiom{
			{Weight: 1, Pattern: coral.Pattern{coral.Forward{Thickness: 1}}},
		},
		Rules: []coral.Rule{
			{Weight: 1, Replacement: coral.Pattern{
				coral.Forward{Thickness: 0.9},
				coral.Push{}, coral.TurnRight{Angle: 30}, coral.Forward{Thickness: 0.6}, coral.Pop{},
			}},
		},
	}

	p, err := coral.Expand(g, 1, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p)
	// Output: F(0.90)[+(30)F(0.60)]
}

func ExampleParsePattern() {
	p, err := coral.ParsePattern("F(1.0)[+(25)F(0.8)]")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(p), "tokens")
	// Output: 5 tokens
}
