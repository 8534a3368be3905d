package fern

import (
	"errors"
	"math"
	"testing"
)

func TestParseNumberRejectsGarbage(t *testing.T) {
	// Unreachable through the rule table; the decoder still refuses to
	// assume well-formed input.
	_, err := parseNumber("12x4", Position{Line: 1, Column: 1})
	var lexErr *Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected lexical error, got %v", err)
	}
	if lexErr.Kind != InvalidNumericLiteral {
		t.Fatalf("expected InvalidNumericLiteral, got %v", lexErr.Kind)
	}
}

func TestParseDoubleOverflowCollapsesToInf(t *testing.T) {
	f, err := parseDouble("1e999999", Position{Line: 1, Column: 1})
	if err != nil {
		t.Fatalf("overflow should not error: %v", err)
	}
	if !math.IsInf(f, 1) {
		t.Fatalf("expected +Inf, got %v", f)
	}
}

func TestParseDoubleRejectsGarbage(t *testing.T) {
	_, err := parseDouble("1.2.3", Position{Line: 1, Column: 1})
	var lexErr *Error
	if !errors.As(err, &lexErr) || lexErr.Kind != InvalidNumericLiteral {
		t.Fatalf("expected InvalidNumericLiteral, got %v", err)
	}
}

func TestUnescapeTextTable(t *testing.T) {
	tests := []struct {
		lexeme string
		want   string
	}{
		{`"plain"`, "plain"},
		{`"\""`, `"`},
		{`"\\"`, `\`},
		{`"\/"`, "/"},
		{`"\b\f\n\r\t"`, "\b\f\n\r\t"},
		{"\"café\"", "café"},
		{`""`, ""},
	}
	for _, tt := range tests {
		got, err := unescapeText(tt.lexeme, Position{Line: 1, Column: 1})
		if err != nil {
			t.Fatalf("unescape %q failed: %v", tt.lexeme, err)
		}
		if got != tt.want {
			t.Fatalf("unescape %q: expected %q, got %q", tt.lexeme, tt.want, got)
		}
	}
}

func TestUnescapeTextInvalidUTF8(t *testing.T) {
	_, err := unescapeText("\"a\xffb\"", Position{Line: 1, Column: 1})
	var lexErr *Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected lexical error, got %v", err)
	}
	if lexErr.Kind != InvalidUTF8 {
		t.Fatalf("expected InvalidUTF8, got %v", lexErr.Kind)
	}
	if lexErr.Pos.Column != 3 {
		t.Fatalf("expected column 3, got %d", lexErr.Pos.Column)
	}
}

func TestEscapeTextInvertsUnescape(t *testing.T) {
	inputs := []string{
		"plain",
		`quote " and backslash \`,
		"control \b\f\n\r\t mix",
		"",
	}
	for _, in := range inputs {
		quoted := escapeText(in)
		back, err := unescapeText(quoted, Position{Line: 1, Column: 1})
		if err != nil {
			t.Fatalf("unescape(escape(%q)) failed: %v", in, err)
		}
		if back != in {
			t.Fatalf("escape round trip of %q produced %q", in, back)
		}
	}
}

func TestDecodePath(t *testing.T) {
	tests := []struct {
		lexeme string
		want   string
	}{
		{"./foo/bar", "foo/bar"},
		{"/foo/bar", "/foo/bar"},
		{"../up/one", "../up/one"},
		{"./x", "x"},
	}
	for _, tt := range tests {
		if got := decodePath(tt.lexeme); got != tt.want {
			t.Fatalf("decodePath(%q): expected %q, got %q", tt.lexeme, tt.want, got)
		}
	}
}
