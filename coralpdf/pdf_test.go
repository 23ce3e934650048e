package coralpdf

import (
	"bytes"
	"testing"

	"github.com/benoitkugler/okcoral/coral"
)

func TestRenderGrowthPDF(t *testing.T) {
	pdf, err := RenderGrowthPDF(coral.DefaultGrammar(), 12345, 4, 400, 400)
	if err != nil {
		t.Fatalf("can't render pdf: %s", err)
	}

	var b bytes.Buffer
	if err = pdf.Output(&b); err != nil {
		t.Fatalf("can't write pdf: %s", err)
	}
	if !bytes.HasPrefix(b.Bytes(), []byte("%PDF")) {
		t.Error("output is not a pdf document")
	}
}

func TestRenderGrowthPDFInvalidGrammar(t *testing.T) {
	_, err := RenderGrowthPDF(&coral.Grammar{}, 1, 1, 100, 100)
	if err == nil {
		t.Error("expected an error for an empty grammar")
	}
}
