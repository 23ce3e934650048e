package coral

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// Reads grammars from their textual form: patterns use the classic
// bracketed L-system notation ("F(1.0)[+(25)F(0.8)]"), grammar files
// are small XML documents.

// ParsePattern tokenizes the bracketed notation produced by
// Pattern.String. Whitespace between tokens is ignored.
// A token with a missing or unparsable parameter yields an error
// wrapping ErrMalformedToken.
func ParsePattern(s string) (Pattern, error) {
	var out Pattern
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '[':
			out = append(out, Push{})
			i++
		case c == ']':
			out = append(out, Pop{})
			i++
		case c == 'F' || c == '+' || c == '-':
			v, next, err := parseParameter(s, i+1)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at offset %d: %s", ErrMalformedToken, c, i, err)
			}
			switch c {
			case 'F':
				out = append(out, Forward{Thickness: v})
			case '+':
				out = append(out, TurnRight{Angle: v})
			case '-':
				out = append(out, TurnLeft{Angle: v})
			}
			i = next
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrMalformedToken, c, i)
		}
	}
	return out, nil
}

// parseParameter reads "(number)" starting at s[i], returning the
// value and the offset just past the closing parenthesis.
func parseParameter(s string, i int) (float64, int, error) {
	if i >= len(s) || s[i] != '(' {
		return 0, 0, fmt.Errorf("expected (")
	}
	end := strings.IndexByte(s[i:], ')')
	if end == -1 {
		return 0, 0, fmt.Errorf("missing )")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s[i+1:i+end]), 64)
	if err != nil {
		return 0, 0, err
	}
	return v, i + end + 1, nil
}

// xml shapes of a grammar file:
//
//	<grammar>
//	  <axiom weight="0.25">F(1.0)[+(20)F(0.85)]</axiom>
//	  <rule weight="0.35">F(0.90)[+(35)F(0.72)]F(0.80)</rule>
//	</grammar>
type xmlGrammar struct {
	Axioms []xmlChoice `xml:"axiom"`
	Rules  []xmlChoice `xml:"rule"`
}

type xmlChoice struct {
	Weight  float64 `xml:"weight,attr"`
	Pattern string  `xml:",chardata"`
}

// ReadGrammarStream decodes a grammar from the given XML document
// and validates it.
func ReadGrammarStream(stream io.Reader) (*Grammar, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	var doc xmlGrammar
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("coral: invalid grammar xml: %w", err)
	}

	g := &Grammar{}
	for _, c := range doc.Axioms {
		p, err := ParsePattern(c.Pattern)
		if err != nil {
			return nil, err
		}
		g.Axioms = append(g.Axioms, Axiom{Weight: c.Weight, Pattern: p})
	}
	for _, c := range doc.Rules {
		p, err := ParsePattern(c.Pattern)
		if err != nil {
			return nil, err
		}
		g.Rules = append(g.Rules, Rule{Weight: c.Weight, Replacement: p})
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadGrammar reads a grammar from the named XML file.
func ReadGrammar(file string) (*Grammar, error) {
	fin, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadGrammarStream(fin)
}
