// Implements an SVG text backend to render coral growth patterns,
// writing one stroked <path> element per segment.
package coralsvg

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/benoitkugler/okcoral/coral"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ coral.Driver  = (*Renderer)(nil)
	_ coral.Stroker = (*Renderer)(nil)
)

// Renderer accumulates path data and flushes one <path> element
// to the underlying writer on each Draw call.
// The <svg> document element is the caller's concern; see
// WriteGrowthSVG for the common case.
type Renderer struct {
	out io.Writer
	err error // first write error, sticky

	path  strings.Builder
	width float64
	color string
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Err returns the first error encountered while writing.
func (rd *Renderer) Err() error { return rd.err }

// WriteGrowthSVG expands the grammar and writes a standalone SVG
// document of the given pixel size.
func WriteGrowthSVG(out io.Writer, g *coral.Grammar, seed, iterations, width, height int) error {
	pattern, err := coral.Expand(g, seed, iterations)
	if err != nil {
		return err
	}
	rd := NewRenderer(out)
	rd.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		width, height, width, height)
	pattern.Draw(rd, coral.RenderOptions{
		Width:     float64(width),
		Height:    float64(height),
		Iteration: iterations,
		Seed:      seed,
	})
	rd.printf("</svg>\n")
	return rd.err
}

func (rd *Renderer) printf(format string, args ...interface{}) {
	if rd.err != nil {
		return
	}
	_, rd.err = fmt.Fprintf(rd.out, format, args...)
}

func (rd *Renderer) SetupStroker() coral.Stroker { return rd }

func (rd *Renderer) Clear() {
	rd.path.Reset()
	rd.width = 1
	rd.color = "#000000"
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (rd *Renderer) Start(a fixed.Point26_6) {
	x, y := fixedTof(a)
	fmt.Fprintf(&rd.path, "M%.2f,%.2f", x, y)
}

func (rd *Renderer) Line(b fixed.Point26_6) {
	x, y := fixedTof(b)
	fmt.Fprintf(&rd.path, " L%.2f,%.2f", x, y)
}

func (rd *Renderer) Stop(closeLoop bool) {
	if closeLoop {
		rd.path.WriteString(" Z")
	}
}

func (rd *Renderer) SetColor(c color.Color) {
	r, g, b, _ := c.RGBA()
	rd.color = fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func (rd *Renderer) SetStroke(width fixed.Int26_6) {
	rd.width = float64(width) / 64
}

func (rd *Renderer) Draw() {
	rd.printf("<path d=%q fill=\"none\" stroke=%q stroke-width=\"%.2f\" stroke-linecap=\"round\"/>\n",
		rd.path.String(), rd.color, rd.width)
}
