package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fernlang/fern/fern"
)

func tokensCommand(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	asJSON := fs.Bool("json", false, "emit the token stream as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("fern tokens: source path required")
	}

	input, err := os.ReadFile(remaining[0])
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	source := string(input)

	toks, err := fern.New(source).Tokens()
	if err != nil {
		return errors.New(fern.FormatError(source, err))
	}

	if *asJSON {
		return printTokensJSON(toks)
	}
	printTokens(toks)
	return nil
}

func printTokens(toks []fern.Token) {
	for _, tok := range toks {
		if tok.Type == fern.TokenEOF {
			fmt.Printf("%d:%d\tEOF\n", tok.Pos.Line, tok.Pos.Column)
			continue
		}
		fmt.Printf("%d:%d\t%s\t%s\n", tok.Pos.Line, tok.Pos.Column, tokenClass(tok.Type), tok)
	}
}

type tokenJSON struct {
	Type   string `json:"type"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Value  string `json:"value,omitempty"`
}

func printTokensJSON(toks []fern.Token) error {
	out := make([]tokenJSON, 0, len(toks))
	for _, tok := range toks {
		entry := tokenJSON{
			Type:   string(tok.Type),
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
			Start:  tok.Span.Start,
			End:    tok.Span.End,
		}
		if tok.Type != fern.TokenEOF {
			entry.Value = tok.String()
		}
		out = append(out, entry)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// tokenClass names the broad category of a token type for display.
func tokenClass(tt fern.TokenType) string {
	switch {
	case tt.IsKeyword():
		return "Keyword"
	case tt == fern.TokenTextLit, tt == fern.TokenNaturalLit,
		tt == fern.TokenDoubleLit, tt == fern.TokenNumber,
		tt == fern.TokenLabel, tt == fern.TokenFile, tt == fern.TokenURL:
		return string(tt)
	default:
		return "Symbol"
	}
}
