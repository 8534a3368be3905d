package fern

import "unicode/utf8"

// Lexer is a pull-based tokenizer over one immutable source buffer. It owns
// the only mutable cursor for that scan; independent scans of the same
// source need independent Lexer instances. A Lexer is not safe for
// concurrent use.
type Lexer struct {
	input string

	offset int
	line   int
	column int
}

// New returns a Lexer positioned at the start of input. The input is assumed
// to be UTF-8-encoded and is never mutated.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

// Next returns the next token and its position. Whitespace and line
// comments are consumed by their own rules without emitting a token. At end
// of input Next returns the EndOfInput token, and keeps returning it on
// every further call. A lexical error leaves the cursor where it failed;
// scanning does not resynchronize.
func (l *Lexer) Next() (Token, error) {
	for {
		if l.offset >= len(l.input) {
			return Token{
				Type: TokenEOF,
				Pos:  l.pos(),
				Span: Span{Start: len(l.input), End: len(l.input)},
			}, nil
		}

		rest := l.input[l.offset:]
		best, bestLen := -1, 0
		for i := range lexRules {
			// Strict > keeps the earliest-declared rule on equal-length
			// matches.
			if n := lexRules[i].match(rest); n > bestLen {
				best, bestLen = i, n
			}
		}
		if best < 0 {
			r, _ := utf8.DecodeRuneInString(rest)
			return Token{}, &Error{
				Kind:     UnmatchedCharacter,
				Pos:      l.pos(),
				Fragment: string(r),
			}
		}

		pos := l.pos()
		span := Span{Start: l.offset, End: l.offset + bestLen}
		lexeme := rest[:bestLen]
		l.advance(lexeme)

		if lexRules[best].skip {
			continue
		}
		return lexRules[best].action(lexeme, pos, span)
	}
}

// Tokens drains the lexer, returning every token through and including
// EndOfInput, or the tokens scanned so far plus the error that stopped the
// scan.
func (l *Lexer) Tokens() ([]Token, error) {
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Type == TokenEOF {
			return toks, nil
		}
	}
}

func (l *Lexer) pos() Position {
	return Position{Line: l.line, Column: l.column}
}

// advance moves the cursor past lexeme, updating line and column per
// character: a newline bumps the line and resets the column, anything else
// bumps the column.
func (l *Lexer) advance(lexeme string) {
	l.offset += len(lexeme)
	for _, r := range lexeme {
		if r == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}
}
