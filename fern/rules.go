package fern

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// rule pairs a longest-prefix matcher with the action that turns the matched
// lexeme into a token. match reports the length in bytes of the longest
// prefix of its input the rule accepts, or 0 for no match. Rules flagged
// skip consume input without emitting a token.
type rule struct {
	match  func(s string) int
	action func(lexeme string, pos Position, span Span) (Token, error)
	skip   bool
}

// lexRules is the tokenizer's rule table. The engine picks the rule with the
// longest match and breaks ties by declaration order, so the order below is
// load-bearing:
//  1. Whitespace and line comments come first but win only by consuming
//     input no other rule wants.
//  2. Keywords are declared before the label rule: "let" matches both at
//     equal length, and the earlier declaration resolves it to the keyword.
//  3. The number rule is declared before the double rule: a bare digit run
//     matches both at equal length and resolves to Number, while a fraction
//     or exponent makes the double match strictly longer so it wins outright.
//  4. Multi-byte fixed text ("{{", "++", "->", ...) beats its one-byte
//     prefixes by length alone, and "+42" resolves to a natural literal over
//     the "+" operator the same way.
var lexRules = buildRules()

func buildRules() []rule {
	rules := []rule{
		{match: matchWhitespace, skip: true},
		{match: matchLineComment, skip: true},
	}

	for _, kw := range keywords {
		rules = append(rules, fixed(string(kw), kw))
	}

	rules = append(rules,
		fixed("{{", TokenDoubleLBrace),
		fixed("}}", TokenDoubleRBrace),
		fixed("++", TokenDoublePlus),
		fixed("->", TokenArrow),
		fixed("&&", TokenAnd),
		fixed("||", TokenOr),
		fixed("(", TokenLParen),
		fixed(")", TokenRParen),
		fixed("{", TokenLBrace),
		fixed("}", TokenRBrace),
		fixed("[", TokenLBracket),
		fixed("]", TokenRBracket),
		fixed(":", TokenColon),
		fixed(",", TokenComma),
		fixed(".", TokenDot),
		fixed("=", TokenEquals),
		fixed("+", TokenPlus),
		fixed("-", TokenMinus),
		fixed("*", TokenStar),
		fixed("\\", TokenLambda),
		fixed("@", TokenAt),

		// Unicode spellings normalize to the ASCII token types.
		spelledAs("→", TokenArrow),
		spelledAs("λ", TokenLambda),
		spelledAs("∀", TokenForall),

		rule{match: matchURL, action: urlAction},
		rule{match: matchFile, action: fileAction},
		rule{match: matchNumber, action: numberAction},
		rule{match: matchDouble, action: doubleAction},
		rule{match: matchNatural, action: naturalAction},
		rule{match: matchTextLit, action: textAction},

		// Catch-all identifier and operator-symbol rule, declared last so
		// every fixed-text rule outranks it on equal-length matches.
		rule{match: matchLabel, action: labelAction},
	)
	return rules
}

// fixed builds an exact-text rule whose token type doubles as its spelling.
func fixed(text string, tt TokenType) rule {
	return spelledAs(text, tt)
}

// spelledAs builds an exact-text rule emitting tt regardless of the matched
// spelling. Used directly for the Unicode alternates.
func spelledAs(text string, tt TokenType) rule {
	return rule{
		match: func(s string) int {
			if strings.HasPrefix(s, text) {
				return len(text)
			}
			return 0
		},
		action: func(_ string, pos Position, span Span) (Token, error) {
			return Token{Type: tt, Pos: pos, Span: span}, nil
		},
	}
}

func matchWhitespace(s string) int {
	n := 0
	for n < len(s) {
		switch s[n] {
		case ' ', '\t', '\r', '\n':
			n++
		default:
			return n
		}
	}
	return n
}

// matchLineComment accepts "--" through end of line, exclusive of the
// newline so the whitespace rule keeps line accounting in one place.
func matchLineComment(s string) int {
	if !strings.HasPrefix(s, "--") {
		return 0
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return i
	}
	return len(s)
}

func matchDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func matchNumber(s string) int {
	return matchDigits(s)
}

// matchNatural accepts '+' followed by at least one digit. The surface form
// of a natural literal carries the sign; the decoder strips it.
func matchNatural(s string) int {
	if len(s) < 2 || s[0] != '+' {
		return 0
	}
	if d := matchDigits(s[1:]); d > 0 {
		return 1 + d
	}
	return 0
}

// matchDouble accepts digits with an optional fraction and optional
// exponent. With both absent the match ties with matchNumber and loses on
// declaration order, so only spans with a fraction or exponent become
// doubles.
func matchDouble(s string) int {
	n := matchDigits(s)
	if n == 0 {
		return 0
	}
	if n < len(s) && s[n] == '.' {
		if d := matchDigits(s[n+1:]); d > 0 {
			n += 1 + d
		}
	}
	if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
		m := n + 1
		if m < len(s) && (s[m] == '+' || s[m] == '-') {
			m++
		}
		if d := matchDigits(s[m:]); d > 0 {
			n = m + d
		}
	}
	return n
}

// matchTextLit accepts a full double-quoted literal where backslash escapes
// any single byte. An unterminated literal is no match at all; the opening
// quote then surfaces as an unmatched character.
func matchTextLit(s string) int {
	if len(s) == 0 || s[0] != '"' {
		return 0
	}
	i := 1
	for i < len(s) {
		switch s[i] {
		case '"':
			return i + 1
		case '\\':
			if i+1 >= len(s) {
				return 0
			}
			i += 2
		default:
			i++
		}
	}
	return 0
}

func matchURL(s string) int {
	n := 0
	switch {
	case strings.HasPrefix(s, "https://"):
		n = len("https://")
	case strings.HasPrefix(s, "http://"):
		n = len("http://")
	default:
		return 0
	}
	if r := matchPathRun(s[n:]); r > 0 {
		return n + r
	}
	return 0
}

func matchFile(s string) int {
	prefix := 0
	switch {
	case strings.HasPrefix(s, "../"):
		prefix = 3
	case strings.HasPrefix(s, "./"):
		prefix = 2
	case strings.HasPrefix(s, "/"):
		prefix = 1
	default:
		return 0
	}
	if r := matchPathRun(s[prefix:]); r > 0 {
		return prefix + r
	}
	return 0
}

// matchPathRun accepts the longest run of path-class runes. Delimiters that
// close surrounding syntax stay outside the run.
func matchPathRun(s string) int {
	n := 0
	for n < len(s) {
		r, w := utf8.DecodeRuneInString(s[n:])
		if !isPathRune(r) || (r == utf8.RuneError && w == 1) {
			return n
		}
		n += w
	}
	return n
}

func isPathRune(r rune) bool {
	if r <= ' ' {
		return false
	}
	switch r {
	case '(', ')', '[', ']', '{', '}', '"', ',':
		return false
	}
	return true
}

func matchLabel(s string) int {
	if n := matchOperatorLabel(s); n > 0 {
		return n
	}
	r, w := utf8.DecodeRuneInString(s)
	if !isLabelStart(r) {
		return 0
	}
	n := w
	for n < len(s) {
		r, w = utf8.DecodeRuneInString(s[n:])
		if !isLabelRune(r) {
			return n
		}
		n += w
	}
	return n
}

// matchOperatorLabel accepts a parenthesized run of operator-class
// characters, e.g. "(&&)". The closing parenthesis is required; otherwise
// the plain parenthesis rule applies.
func matchOperatorLabel(s string) int {
	if len(s) < 3 || s[0] != '(' {
		return 0
	}
	i := 1
	for i < len(s) && isOperatorRune(rune(s[i])) {
		i++
	}
	if i > 1 && i < len(s) && s[i] == ')' {
		return i + 1
	}
	return 0
}

// 'λ' is a letter to unicode but spells the lambda token, so it never
// starts or continues a label; otherwise "λx" would out-munch the lambda
// rule.
func isLabelStart(r rune) bool {
	return (unicode.IsLetter(r) && r != 'λ') || r == '_'
}

func isLabelRune(r rune) bool {
	return (unicode.IsLetter(r) && r != 'λ') || unicode.IsDigit(r) || r == '_' || r == '/'
}

func isOperatorRune(r rune) bool {
	switch r {
	case '!', '#', '$', '%', '&', '*', '+', '-', '.', '/', '<', '=', '>', '?', '@', '^', '|', '~', ':':
		return true
	}
	return false
}

func textAction(lexeme string, pos Position, span Span) (Token, error) {
	decoded, err := unescapeText(lexeme, pos)
	if err != nil {
		return Token{}, err
	}
	return Token{Type: TokenTextLit, Text: decoded, Pos: pos, Span: span}, nil
}

func naturalAction(lexeme string, pos Position, span Span) (Token, error) {
	n, err := parseNumber(lexeme[1:], pos)
	if err != nil {
		return Token{}, err
	}
	return Token{Type: TokenNaturalLit, Num: n, Pos: pos, Span: span}, nil
}

func numberAction(lexeme string, pos Position, span Span) (Token, error) {
	n, err := parseNumber(lexeme, pos)
	if err != nil {
		return Token{}, err
	}
	return Token{Type: TokenNumber, Num: n, Pos: pos, Span: span}, nil
}

func doubleAction(lexeme string, pos Position, span Span) (Token, error) {
	f, err := parseDouble(lexeme, pos)
	if err != nil {
		return Token{}, err
	}
	return Token{Type: TokenDoubleLit, Float: f, Pos: pos, Span: span}, nil
}

func fileAction(lexeme string, pos Position, span Span) (Token, error) {
	return Token{Type: TokenFile, Text: decodePath(lexeme), Pos: pos, Span: span}, nil
}

func urlAction(lexeme string, pos Position, span Span) (Token, error) {
	return Token{Type: TokenURL, Text: strings.Clone(lexeme), Pos: pos, Span: span}, nil
}

func labelAction(lexeme string, pos Position, span Span) (Token, error) {
	return Token{Type: TokenLabel, Text: strings.Clone(lexeme), Pos: pos, Span: span}, nil
}
