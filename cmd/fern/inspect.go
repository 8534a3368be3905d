package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fernlang/fern/fern"
)

type inspectEntry struct {
	input  string
	output string
	isErr  bool
}

type inspectModel struct {
	textInput   textinput.Model
	history     []inspectEntry
	cmdHistory  []string
	historyIdx  int
	width       int
	height      int
	quitting    bool
	initialized bool
}

type inspectKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
}

var inspectKeys = inspectKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous expression"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next expression"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "tokenize"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
}

func newInspectModel() inspectModel {
	ti := textinput.New()
	ti.Placeholder = "type a Fern expression..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.Prompt = "fern> "

	return inspectModel{
		textInput:  ti,
		history:    make([]inspectEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
	}
}

func (m inspectModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, inspectKeys.CtrlC), key.Matches(msg, inspectKeys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, inspectKeys.CtrlL):
			m.history = make([]inspectEntry, 0)
			return m, nil

		case key.Matches(msg, inspectKeys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, inspectKeys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, inspectKeys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}
			output, isErr := tokenizeForDisplay(input)
			m.history = append(m.history, inspectEntry{
				input:  input,
				output: output,
				isErr:  isErr,
			})
			m.cmdHistory = append(m.cmdHistory, input)
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// tokenizeForDisplay lexes one expression and renders either its token
// stream, one token per line, or the formatted lexical error.
func tokenizeForDisplay(input string) (string, bool) {
	toks, err := fern.New(input).Tokens()
	if err != nil {
		return fern.FormatError(input, err), true
	}

	var lines []string
	for _, tok := range toks {
		if tok.Type == fern.TokenEOF {
			break
		}
		lines = append(lines, fmt.Sprintf("%d:%-3d %-12s %s",
			tok.Pos.Line, tok.Pos.Column, tokenClass(tok.Type), tok))
	}
	if len(lines) == 0 {
		return "no tokens", false
	}
	return strings.Join(lines, "\n"), false
}

func (m inspectModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := headerStyle.Render("Fern Token Inspector")
	b.WriteString(header + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(m.width-2, 60))) + "\n\n")

	reservedLines := 8
	availableLines := m.height - reservedLines

	entries := m.history
	rendered := make([]string, 0, len(entries))
	used := 0
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		block := mutedStyle.Render("  › ") + entry.input + "\n"
		if entry.isErr {
			block += indentLines(errorStyle.Render(entry.output)) + "\n"
		} else {
			block += indentLines(entry.output) + "\n"
		}
		lineCount := strings.Count(block, "\n") + 1
		if used+lineCount > availableLines && len(rendered) > 0 {
			break
		}
		used += lineCount
		rendered = append([]string{block}, rendered...)
	}
	for _, block := range rendered {
		b.WriteString(block + "\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("enter") + helpDescStyle.Render(" tokenize  ") +
		helpKeyStyle.Render("↑/↓") + helpDescStyle.Render(" history  ") +
		helpKeyStyle.Render("ctrl+l") + helpDescStyle.Render(" clear  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func indentLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}

func runInspect() error {
	p := tea.NewProgram(newInspectModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
