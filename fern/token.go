package fern

import (
	"math/big"
	"strconv"
)

// TokenType identifies the lexical category of a token. Fixed-text tokens use
// their canonical spelling as the type value, so rendering them is a cast.
type TokenType string

const (
	TokenEOF TokenType = "EOF"

	// Punctuation and operators.
	TokenLParen       TokenType = "("
	TokenRParen       TokenType = ")"
	TokenLBrace       TokenType = "{"
	TokenRBrace       TokenType = "}"
	TokenDoubleLBrace TokenType = "{{"
	TokenDoubleRBrace TokenType = "}}"
	TokenLBracket     TokenType = "["
	TokenRBracket     TokenType = "]"
	TokenColon        TokenType = ":"
	TokenComma        TokenType = ","
	TokenDot          TokenType = "."
	TokenEquals       TokenType = "="
	TokenAnd          TokenType = "&&"
	TokenOr           TokenType = "||"
	TokenPlus         TokenType = "+"
	TokenDoublePlus   TokenType = "++"
	TokenMinus        TokenType = "-"
	TokenStar         TokenType = "*"
	TokenArrow        TokenType = "->"
	TokenLambda       TokenType = "\\"
	TokenAt           TokenType = "@"

	// Keywords.
	TokenLet         TokenType = "let"
	TokenIn          TokenType = "in"
	TokenTypeConst   TokenType = "Type"
	TokenKindConst   TokenType = "Kind"
	TokenForall      TokenType = "forall"
	TokenBool        TokenType = "Bool"
	TokenTrue        TokenType = "True"
	TokenFalse       TokenType = "False"
	TokenIf          TokenType = "if"
	TokenThen        TokenType = "then"
	TokenElse        TokenType = "else"
	TokenNatural     TokenType = "Natural"
	TokenNaturalFold TokenType = "Natural/fold"
	TokenInteger     TokenType = "Integer"
	TokenText        TokenType = "Text"
	TokenDouble      TokenType = "Double"
	TokenMaybe       TokenType = "Maybe"
	TokenNothing     TokenType = "Nothing"
	TokenJust        TokenType = "Just"
	TokenListBuild   TokenType = "List/build"
	TokenListFold    TokenType = "List/fold"

	// Tokens carrying a decoded payload.
	TokenTextLit    TokenType = "TextLit"
	TokenNaturalLit TokenType = "NaturalLit"
	TokenDoubleLit  TokenType = "DoubleLit"
	TokenNumber     TokenType = "Number"
	TokenLabel      TokenType = "Label"
	TokenFile       TokenType = "File"
	TokenURL        TokenType = "URL"
)

// keywords maps fixed keyword spellings to their token types. Keyword rules
// are declared ahead of the label rule so that an equal-length match resolves
// to the keyword.
var keywords = [...]TokenType{
	TokenLet,
	TokenIn,
	TokenTypeConst,
	TokenKindConst,
	TokenForall,
	TokenBool,
	TokenTrue,
	TokenFalse,
	TokenIf,
	TokenThen,
	TokenElse,
	TokenNaturalFold,
	TokenNatural,
	TokenInteger,
	TokenText,
	TokenDouble,
	TokenMaybe,
	TokenNothing,
	TokenJust,
	TokenListBuild,
	TokenListFold,
}

var keywordSet = func() map[TokenType]bool {
	set := make(map[TokenType]bool, len(keywords))
	for _, kw := range keywords {
		set[kw] = true
	}
	return set
}()

// IsKeyword reports whether t is one of the fixed keyword token types.
func (t TokenType) IsKeyword() bool {
	return keywordSet[t]
}

// Token captures one lexical unit for the parser. Payload fields are only
// meaningful for the matching type: Text for TextLit, Label, File, and URL;
// Num for NaturalLit and Number; Float for DoubleLit. Decoded payloads are
// independent copies and never alias the source buffer.
type Token struct {
	Type  TokenType
	Text  string
	Num   *big.Int
	Float float64
	Pos   Position
	Span  Span
}

// Position identifies a 1-based line and column in the source text.
type Position struct {
	Line   int
	Column int
}

// Span is the half-open byte range [Start, End) a token occupies in the
// source buffer.
type Span struct {
	Start int
	End   int
}

// String renders the token back to canonical surface text. It is total:
// every token renders, and fixed-text tokens render their exact spelling.
// Unicode input spellings normalize to the ASCII forms.
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "<end of input>"
	case TokenTextLit:
		return escapeText(t.Text)
	case TokenNaturalLit:
		return "+" + t.Num.String()
	case TokenNumber:
		return t.Num.String()
	case TokenDoubleLit:
		return strconv.FormatFloat(t.Float, 'g', -1, 64)
	case TokenLabel, TokenFile, TokenURL:
		return t.Text
	default:
		return string(t.Type)
	}
}
