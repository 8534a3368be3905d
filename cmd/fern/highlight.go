package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fernlang/fern/fern"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")
	textLitColor   = lipgloss.Color("#8B5CF6")

	keywordStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	numberStyle = lipgloss.NewStyle().
			Foreground(successColor)

	textLitStyle = lipgloss.NewStyle().
			Foreground(textLitColor)

	importStyle = lipgloss.NewStyle().
			Foreground(highlightColor).
			Underline(true)

	operatorStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	commentStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

func highlightCommand(args []string) error {
	fs := flag.NewFlagSet("highlight", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("fern highlight: source path required")
	}

	input, err := os.ReadFile(remaining[0])
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	source := string(input)

	out, err := highlightSource(source)
	if err != nil {
		return errors.New(fern.FormatError(source, err))
	}
	fmt.Print(out)
	return nil
}

// highlightSource recolors the source byte for byte: token spans render in
// their class style, and the gaps between spans (whitespace and comments)
// pass through, comments picking up the comment style.
func highlightSource(source string) (string, error) {
	toks, err := fern.New(source).Tokens()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	last := 0
	for _, tok := range toks {
		if tok.Span.Start > last {
			sb.WriteString(renderGap(source[last:tok.Span.Start]))
		}
		if tok.Type == fern.TokenEOF {
			break
		}
		lexeme := source[tok.Span.Start:tok.Span.End]
		sb.WriteString(styleFor(tok.Type).Render(lexeme))
		last = tok.Span.End
	}
	return sb.String(), nil
}

// renderGap styles inter-token source. Gaps are whitespace except when a
// line comment is present.
func renderGap(gap string) string {
	if strings.Contains(gap, "--") {
		return commentStyle.Render(gap)
	}
	return gap
}

func styleFor(tt fern.TokenType) lipgloss.Style {
	switch {
	case tt.IsKeyword():
		return keywordStyle
	case tt == fern.TokenTextLit:
		return textLitStyle
	case tt == fern.TokenNaturalLit, tt == fern.TokenNumber, tt == fern.TokenDoubleLit:
		return numberStyle
	case tt == fern.TokenFile, tt == fern.TokenURL:
		return importStyle
	case tt == fern.TokenLabel:
		return lipgloss.NewStyle()
	default:
		return operatorStyle
	}
}
