package main

import (
	"strings"
	"testing"

	"github.com/fernlang/fern/fern"
)

func TestHighlightSourceKeepsEveryByte(t *testing.T) {
	source := "let x = +1 -- bound\nin x ++ \"tail\""
	out, err := highlightSource(source)
	if err != nil {
		t.Fatalf("highlight failed: %v", err)
	}

	// Styling may wrap lexemes in escape codes but never reorders or drops
	// source text.
	for _, lexeme := range []string{"let", "x", "=", "+1", "-- bound", "in", "++", `"tail"`} {
		if !strings.Contains(out, lexeme) {
			t.Fatalf("output lost %q:\n%q", lexeme, out)
		}
	}
	if stripped := stripANSI(out); stripped != source {
		t.Fatalf("highlighting changed the source:\n%q\nvs\n%q", stripped, source)
	}
}

func TestHighlightSourcePropagatesLexicalErrors(t *testing.T) {
	if _, err := highlightSource("let ` in x"); err == nil {
		t.Fatalf("expected lexical error")
	}
}

func TestHighlightCommandMissingPath(t *testing.T) {
	if err := highlightCommand(nil); err == nil {
		t.Fatalf("expected path error")
	}
}

func TestStyleForClasses(t *testing.T) {
	if styleFor(fern.TokenLet).GetBold() != true {
		t.Fatalf("keywords should render bold")
	}
	if styleFor(fern.TokenURL).GetUnderline() != true {
		t.Fatalf("imports should render underlined")
	}
	if styleFor(fern.TokenLabel).GetBold() {
		t.Fatalf("labels should render unstyled")
	}
}

func TestTokenClassNames(t *testing.T) {
	tests := []struct {
		tt   fern.TokenType
		want string
	}{
		{fern.TokenLet, "Keyword"},
		{fern.TokenNaturalFold, "Keyword"},
		{fern.TokenLabel, "Label"},
		{fern.TokenTextLit, "TextLit"},
		{fern.TokenArrow, "Symbol"},
		{fern.TokenLBrace, "Symbol"},
	}
	for _, tt := range tests {
		if got := tokenClass(tt.tt); got != tt.want {
			t.Fatalf("tokenClass(%v): expected %q, got %q", tt.tt, tt.want, got)
		}
	}
}

// stripANSI removes CSI escape sequences so tests can compare plain text.
func stripANSI(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && !isANSIFinal(s[j]) {
				j++
			}
			i = j + 1
			continue
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String()
}

func isANSIFinal(c byte) bool {
	return c >= 0x40 && c <= 0x7e
}
