package coral

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/math/fixed"
)

// Given an expanded growth pattern, implements how to draw it
// on a surface, by walking the tokens with a stack-based cursor.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.

// Stroker knows how to stroke one path, but doesn't need any
// L-system knowledge. Coordinates are given in the fixed-point
// format used by rasterizers.
type Stroker interface {
	// Clear must reset the internal state (used before starting a new path)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line adds a line from the current point to `b`
	Line(b fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor sets the stroking color for the current path
	SetColor(c color.Color)

	// SetStroke sets the line width for the current path
	SetStroke(width fixed.Int26_6)

	// Draw strokes the accumulated path using the current settings
	Draw()
}

// Driver is the painting backend consumed by Pattern.Draw.
// SetupStroker is called once per draw pass.
type Driver interface {
	SetupStroker() Stroker
}

// RenderOptions parametrizes one draw pass.
// The zero value of every field but Width and Height is replaced
// by the reference defaults.
type RenderOptions struct {
	Width, Height float64 // surface size, in pixels

	// Iteration is the expansion depth of the pattern being drawn.
	// Deeper patterns are drawn with shorter segments, so the whole
	// structure stays roughly surface-sized.
	Iteration int

	// Seed drives branch dropout; unused when Dropout is false.
	Seed int

	// Dropout enables probabilistic skipping of whole [...] branches.
	Dropout bool
	// DropoutProbability is the chance to skip a branch (default 0.3).
	DropoutProbability float64

	BaseLength     float64 // trunk segment length at iteration 0 (default 36)
	LengthScale    float64 // per-iteration shrink base (default 1.36)
	LengthExponent float64 // per-iteration shrink exponent (default 0.9)

	StrokeScale float64 // stroke width in pixels for thickness 1 (default 4.5)

	Hue        float64 // base hue in degrees (default 16, coral pink)
	Saturation float64 // base saturation (default 0.65)
}

func (o *RenderOptions) fillDefaults() {
	if o.DropoutProbability == 0 {
		o.DropoutProbability = 0.3
	}
	if o.BaseLength == 0 {
		o.BaseLength = 36
	}
	if o.LengthScale == 0 {
		o.LengthScale = 1.36
	}
	if o.LengthExponent == 0 {
		o.LengthExponent = 0.9
	}
	if o.StrokeScale == 0 {
		o.StrokeScale = 4.5
	}
	if o.Hue == 0 {
		o.Hue = 16
	}
	if o.Saturation == 0 {
		o.Saturation = 0.65
	}
}

// cursor is the turtle state; pushed and popped as a unit.
// Each pushed state is an independent copy.
type cursor struct {
	x, y      float64
	angle     float64 // degrees; -90 points up in screen coordinates
	thickness float64
}

type turtle struct {
	s    Stroker
	opts *RenderOptions

	cur   cursor
	stack []cursor
	step  float64 // segment length for this pass

	// branch dropout bookkeeping
	branchIndex int
	skip        int // > 0 while inside a dropped branch (bracket depth)
}

func fToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// segmentColor lightens thin outer segments, keeping the base hue.
func (t *turtle) segmentColor(thickness float64) color.Color {
	l := 0.35 + 0.45*(1-thickness)
	if l > 0.92 {
		l = 0.92
	}
	return colorful.Hsl(t.opts.Hue, t.opts.Saturation, l)
}

func (op Forward) walk(t *turtle) {
	if t.skip > 0 {
		return
	}
	rad := t.cur.angle * math.Pi / 180
	nx := t.cur.x + math.Cos(rad)*t.step
	ny := t.cur.y + math.Sin(rad)*t.step

	// degenerate thickness: advance the cursor but draw nothing
	if op.Thickness > 0 && !math.IsInf(op.Thickness, 0) && !math.IsNaN(op.Thickness) &&
		!math.IsNaN(nx) && !math.IsNaN(ny) {
		t.s.Clear()
		t.s.SetStroke(fixed.Int26_6(op.Thickness * t.opts.StrokeScale * 64))
		t.s.Start(fToFixed(t.cur.x, t.cur.y))
		t.s.Line(fToFixed(nx, ny))
		t.s.Stop(false)
		t.s.SetColor(t.segmentColor(op.Thickness))
		t.s.Draw()
	}

	t.cur.x, t.cur.y = nx, ny
	t.cur.thickness = op.Thickness
}

func (op TurnRight) walk(t *turtle) {
	if t.skip > 0 {
		return
	}
	t.cur.angle += op.Angle
}

func (op TurnLeft) walk(t *turtle) {
	if t.skip > 0 {
		return
	}
	t.cur.angle -= op.Angle
}

func (op Push) walk(t *turtle) {
	if t.skip > 0 {
		t.skip++ // nested bracket inside a dropped branch
		return
	}
	if t.opts.Dropout {
		t.branchIndex++
		if Random(t.opts.Seed, t.branchIndex) < t.opts.DropoutProbability {
			t.skip = 1 // consume tokens up to the matching Pop
			return
		}
	}
	t.stack = append(t.stack, t.cur)
}

func (op Pop) walk(t *turtle) {
	if t.skip > 0 {
		t.skip--
		return
	}
	// an extra Pop on an empty stack is a caller error; ignore it
	if n := len(t.stack); n > 0 {
		t.cur = t.stack[n-1]
		t.stack = t.stack[:n-1]
	}
}

// Draw strokes the pattern into the driver `d`.
// The cursor starts at the bottom center of the surface, pointing up.
// For fixed inputs the emitted draw calls are identical on every run;
// the pass keeps no state between calls, so concurrent passes with
// separate drivers are safe.
func (p Pattern) Draw(d Driver, opts RenderOptions) {
	opts.fillDefaults()
	t := turtle{
		s:    d.SetupStroker(),
		opts: &opts,
		cur: cursor{
			x:         opts.Width / 2,
			y:         opts.Height * 0.85,
			angle:     -90,
			thickness: 1,
		},
		step: opts.BaseLength / math.Pow(opts.LengthScale, float64(opts.Iteration)*opts.LengthExponent),
	}
	for _, tk := range p {
		tk.walk(&t)
	}
}
