package fern

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

// parseNumber decodes a run of decimal digits into an unbounded non-negative
// integer. Arbitrarily long digit runs never overflow.
func parseNumber(digits string, pos Position) (*big.Int, error) {
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok || n.Sign() < 0 {
		return nil, &Error{Kind: InvalidNumericLiteral, Pos: pos, Fragment: digits}
	}
	return n, nil
}

// parseDouble decodes a span matched by the decimal/exponent grammar into the
// nearest representable 64-bit float. Out-of-range exponents collapse to
// ±Inf rather than failing.
func parseDouble(span string, pos Position) (float64, error) {
	f, err := strconv.ParseFloat(span, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &Error{Kind: InvalidNumericLiteral, Pos: pos, Fragment: span}
	}
	return f, nil
}

// escapes is the fixed escape table shared by string decoding and rendering.
var escapes = map[byte]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// unescapeText strips the surrounding quotes from a matched string literal
// and rewrites backslash-escape pairs through the escape table. pos is the
// position of the opening quote; escape errors point at the backslash.
func unescapeText(lexeme string, pos Position) (string, error) {
	body := lexeme[1 : len(lexeme)-1]
	var sb strings.Builder
	sb.Grow(len(body))

	line, column := pos.Line, pos.Column+1
	for i := 0; i < len(body); {
		if body[i] == '\\' {
			// The matcher guarantees a byte follows every backslash.
			esc := body[i+1]
			decoded, ok := escapes[esc]
			if !ok {
				return "", &Error{
					Kind:     InvalidEscape,
					Pos:      Position{Line: line, Column: column},
					Fragment: body[i : i+2],
				}
			}
			sb.WriteByte(decoded)
			i += 2
			column += 2
			continue
		}
		r, w := utf8.DecodeRuneInString(body[i:])
		if r == utf8.RuneError && w == 1 {
			return "", &Error{
				Kind:     InvalidUTF8,
				Pos:      Position{Line: line, Column: column},
				Fragment: lexeme,
			}
		}
		sb.WriteRune(r)
		if r == '\n' {
			line, column = line+1, 1
		} else {
			column++
		}
		i += w
	}
	return sb.String(), nil
}

// escapeText is the inverse of unescapeText: it re-quotes decoded text
// through the escape table. Total; used for token rendering.
func escapeText(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// decodePath produces a File payload from a matched path lexeme. A "./"
// prefix is stripped before decoding; "/" and "../" prefixes decode
// verbatim. No canonicalization or existence check happens here.
func decodePath(lexeme string) string {
	return strings.Clone(strings.TrimPrefix(lexeme, "./"))
}
