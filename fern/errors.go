package fern

import "fmt"

// ErrorKind classifies lexical errors.
type ErrorKind int

const (
	// UnmatchedCharacter means no rule matched any prefix at the cursor.
	UnmatchedCharacter ErrorKind = iota
	// InvalidEscape means a string literal contained a backslash escape
	// outside the fixed escape table.
	InvalidEscape
	// InvalidNumericLiteral means a numeric decoder rejected its span. The
	// rule table only selects numeric actions on parseable spans, so this is
	// a defensive classification.
	InvalidNumericLiteral
	// InvalidUTF8 means a region requiring decoding (text, path, URL)
	// contained bytes that are not valid UTF-8.
	InvalidUTF8
)

func (k ErrorKind) String() string {
	switch k {
	case UnmatchedCharacter:
		return "unmatched character"
	case InvalidEscape:
		return "invalid escape sequence"
	case InvalidNumericLiteral:
		return "invalid numeric literal"
	case InvalidUTF8:
		return "invalid UTF-8"
	default:
		return "lexical error"
	}
}

// Error is a structured lexical error: what went wrong, where, and the
// offending source fragment. Scanning does not resynchronize after one;
// the caller decides whether to abort or recover.
type Error struct {
	Kind     ErrorKind
	Pos      Position
	Fragment string
}

func (e *Error) Error() string {
	if e.Fragment == "" {
		return fmt.Sprintf("%s at line %d, column %d", e.Kind, e.Pos.Line, e.Pos.Column)
	}
	return fmt.Sprintf("%s %q at line %d, column %d", e.Kind, e.Fragment, e.Pos.Line, e.Pos.Column)
}
