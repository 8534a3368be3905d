package fern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FormatError renders a lexical error with a code frame pointing at the
// offending source position. Non-lexical errors render as their message.
func FormatError(source string, err error) string {
	var lexErr *Error
	if !errors.As(err, &lexErr) {
		return err.Error()
	}
	frame := formatCodeFrame(source, lexErr.Pos, caretWidth(lexErr.Fragment))
	if frame == "" {
		return lexErr.Error()
	}
	return lexErr.Error() + "\n" + frame
}

// caretWidth is how many carets to draw under the offending fragment,
// at least one even when the fragment is empty or spans lines.
func caretWidth(fragment string) int {
	if i := strings.IndexByte(fragment, '\n'); i >= 0 {
		fragment = fragment[:i]
	}
	if n := utf8.RuneCountInString(fragment); n > 1 {
		return n
	}
	return 1
}

func formatCodeFrame(source string, pos Position, width int) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}

	lineText := lines[pos.Line-1]
	lineLen := utf8.RuneCountInString(lineText)

	column := pos.Column
	if column <= 0 {
		column = 1
	}
	if column > lineLen+1 {
		column = lineLen + 1
	}
	if width > lineLen-column+2 {
		width = lineLen - column + 2
	}
	if width < 1 {
		width = 1
	}

	lineLabel := strconv.Itoa(pos.Line)
	gutterPad := strings.Repeat(" ", len(lineLabel))
	caretPad := strings.Repeat(" ", column-1)
	carets := strings.Repeat("^", width)

	return fmt.Sprintf(
		"  --> line %d, column %d\n %s | %s\n %s | %s%s",
		pos.Line,
		column,
		lineLabel,
		lineText,
		gutterPad,
		caretPad,
		carets,
	)
}
