// Implements a raster backend to render coral growth patterns,
// by wrapping rasterx.
package coralraster

import (
	"image"
	"image/color"

	"github.com/benoitkugler/okcoral/coral"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ coral.Driver  = (*Renderer)(nil)
	_ coral.Stroker = (*Renderer)(nil)
)

// Renderer strokes growth segments onto the image wrapped by its scanner.
type Renderer struct {
	dasher *rasterx.Dasher
}

// NewRenderer returns a renderer stroking through the given scanner,
// which must not be nil. See RasterGrowthToImage for the common case
// of a rasterx.ScannerGV over an RGBA image.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner)}
}

// RasterGrowthToImage expands the grammar and renders it into a
// transparent RGBA image using a ScannerGV instance.
func RasterGrowthToImage(g *coral.Grammar, seed, iterations, width, height int) (*image.RGBA, error) {
	pattern, err := coral.Expand(g, seed, iterations)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	renderer := NewRenderer(width, height, scanner)
	pattern.Draw(renderer, coral.RenderOptions{
		Width:     float64(width),
		Height:    float64(height),
		Iteration: iterations,
		Seed:      seed,
	})
	return img, nil
}

func (rd *Renderer) SetupStroker() coral.Stroker { return rd }

func (rd *Renderer) Clear() { rd.dasher.Clear() }

func (rd *Renderer) Start(a fixed.Point26_6) { rd.dasher.Start(a) }

func (rd *Renderer) Line(b fixed.Point26_6) { rd.dasher.Line(b) }

func (rd *Renderer) Stop(closeLoop bool) { rd.dasher.Stop(closeLoop) }

func (rd *Renderer) SetColor(c color.Color) {
	rd.dasher.Scanner.SetColor(rasterx.ApplyOpacity(c, 1))
}

// SetStroke uses round caps and joins, matching the organic look
// of the reference renderer.
func (rd *Renderer) SetStroke(width fixed.Int26_6) {
	rd.dasher.SetStroke(width, fixed.Int26_6(4*64), rasterx.RoundCap, rasterx.RoundCap,
		rasterx.RoundGap, rasterx.Round, nil, 0)
}

func (rd *Renderer) Draw() { rd.dasher.Draw() }
