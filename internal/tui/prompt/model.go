// ============================================================================
// imstr - Immutable Strings
// ============================================================================
//
// Package:     prompt
// Description: Single-line input prompt with a bounded buffer
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package prompt

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// ErrCancelled is returned when the user aborts the prompt
var ErrCancelled = errors.New("prompt cancelled")

// Config holds the prompt configuration
type Config struct {
	// Prompt is printed in front of the input, e.g. "> "
	Prompt string

	// BufferSize mirrors a fixed input buffer: at most BufferSize-1
	// characters are accepted
	BufferSize int

	Placeholder string
	ShowHelp    bool
}

// CharLimit returns the number of characters the buffer accepts
func (c Config) CharLimit() int {
	if c.BufferSize <= 1 {
		return 0
	}
	return c.BufferSize - 1
}

// Clamp cuts text to CharLimit bytes. The terminal widget counts runes, so
// every input path goes through Clamp to apply the same byte limit.
func (c Config) Clamp(text string) string {
	return truncate(text, c.CharLimit())
}

func truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(text) > limit {
		return text[:limit]
	}
	return text
}

// Model is the bubbletea model of the prompt
type Model struct {
	input     textinput.Model
	showHelp  bool
	submitted bool
	cancelled bool
}

// New creates a focused prompt model
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Prompt = PromptStyle.Render(cfg.Prompt)
	ti.Placeholder = cfg.Placeholder
	ti.CharLimit = cfg.CharLimit()
	ti.Focus()

	return Model{
		input:    ti,
		showHelp: cfg.ShowHelp,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("Enter to submit, Esc to cancel"))
	}
	b.WriteString("\n")
	return b.String()
}

// Value returns the text entered so far
func (m Model) Value() string {
	return m.input.Value()
}

// Submitted reports whether the user confirmed the input
func (m Model) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the user aborted the prompt
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Run asks for one line of input. On a terminal it runs the interactive
// prompt; otherwise it reads a line from in.
func Run(cfg Config, in io.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		if _, err := io.WriteString(out, cfg.Prompt); err != nil {
			return "", err
		}
		return ReadLine(in, cfg.CharLimit())
	}

	final, err := tea.NewProgram(New(cfg), tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return "", err
	}

	m := final.(Model)
	if m.Cancelled() {
		return "", ErrCancelled
	}
	return cfg.Clamp(m.Value()), nil
}

// ReadLine reads up to the next newline and keeps at most limit bytes.
// A limit of 0 or less keeps nothing. A trailing "\r\n" or "\n" is removed.
func ReadLine(in io.Reader, limit int) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return truncate(line, limit), nil
}
