// Implements a PDF backend to render coral growth patterns,
// by wrapping github.com/jung-kurt/gofpdf.
package coralpdf

import (
	"image/color"

	"github.com/benoitkugler/okcoral/coral"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ coral.Driver  = Renderer{}
	_ coral.Stroker = Renderer{}
)

// Renderer strokes growth segments into a pdf document.
// The pdf coordinate unit is expected to be the point, with one
// point mapping to one pixel of the render options surface.
type Renderer struct {
	pdf *gofpdf.Fpdf
}

// NewRenderer returns a renderer which will write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")
	return Renderer{pdf: pdf}
}

// RenderGrowthPDF expands the grammar and renders it on a single
// page of the given size (in points).
func RenderGrowthPDF(g *coral.Grammar, seed, iterations int, width, height float64) (*gofpdf.Fpdf, error) {
	pattern, err := coral.Expand(g, seed, iterations)
	if err != nil {
		return nil, err
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.AddPage()
	pattern.Draw(NewRenderer(pdf), coral.RenderOptions{
		Width:     width,
		Height:    height,
		Iteration: iterations,
		Seed:      seed,
	})
	return pdf, pdf.Error()
}

func (rd Renderer) SetupStroker() coral.Stroker { return rd }

// Clear is a no-op: gofpdf paths restart at the next MoveTo.
func (rd Renderer) Clear() {}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (rd Renderer) Start(a fixed.Point26_6) {
	rd.pdf.MoveTo(fixedTof(a))
}

func (rd Renderer) Line(b fixed.Point26_6) {
	rd.pdf.LineTo(fixedTof(b))
}

func (rd Renderer) Stop(closeLoop bool) {
	if closeLoop {
		rd.pdf.ClosePath()
	}
}

func (rd Renderer) SetColor(c color.Color) {
	r, g, b, _ := c.RGBA()
	rd.pdf.SetDrawColor(int(r>>8), int(g>>8), int(b>>8))
}

func (rd Renderer) SetStroke(width fixed.Int26_6) {
	rd.pdf.SetLineWidth(float64(width) / 64)
}

// Draw strokes the current path ("D" mode: draw only, no fill).
func (rd Renderer) Draw() {
	rd.pdf.DrawPath("D")
}
