package coral

// Animation sequences a growth cycle: frame 0 draws the bare axiom,
// each following frame one more expansion pass, up to Depth, then the
// cycle restarts. The caller owns the timer (or event loop) and calls
// Frame once per tick; Frame itself is pure and keeps no state, so an
// unmount is just "stop calling it".
type Animation struct {
	Grammar *Grammar
	Seed    int
	Depth   int // deepest expansion of the cycle, clamped to [1, MaxIterations]

	// Opts configures the draw passes; Iteration and Seed are
	// overwritten per frame.
	Opts RenderOptions
}

// Frame expands the grammar to the depth of `step` (cycling through
// 0..Depth) and draws it into the driver. The expanded pattern is
// returned for inspection.
func (a *Animation) Frame(step int, d Driver) (Pattern, error) {
	depth := a.Depth
	if depth < 1 {
		depth = 1
	} else if depth > MaxIterations {
		depth = MaxIterations
	}
	step %= depth + 1
	if step < 0 {
		step += depth + 1
	}

	p, err := Expand(a.Grammar, a.Seed, step)
	if err != nil {
		return nil, err
	}
	opts := a.Opts
	opts.Iteration = step
	opts.Seed = a.Seed
	p.Draw(d, opts)
	return p, nil
}
