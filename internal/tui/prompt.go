package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/simopts/internal/editor"
)

// Prompt asks for a listener identifier on a terminal. It implements
// editor.Prompter.
type Prompt struct {
	In   io.Reader
	Out  io.Writer
	Hint string
}

var _ editor.Prompter = (*Prompt)(nil)

type promptModel struct {
	input     textinput.Model
	hint      string
	value     string
	done      bool
	cancelled bool
}

func newPromptModel(previous, hint string) promptModel {
	in := textinput.New()
	in.Placeholder = "package/path.TypeName"
	in.CharLimit = 256
	in.Width = 60
	in.SetValue(previous)
	in.CursorEnd()
	in.Focus()
	return promptModel{input: in, hint: hint}
}

func (m promptModel) Init() tea.Cmd { return textinput.Blink }

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	s := title.Render("Add listener") + "\n\n"
	s += "  " + m.input.View() + "\n\n"
	if m.hint != "" {
		s += dim.Render("  e.g. "+m.hint) + "\n"
	}
	s += dim.Render("  enter accept • esc cancel") + "\n"
	return s
}

func (p *Prompt) Prompt(ctx context.Context, previous string) (string, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.In != nil {
		opts = append(opts, tea.WithInput(p.In))
	}
	if p.Out != nil {
		opts = append(opts, tea.WithOutput(p.Out))
	}

	final, err := tea.NewProgram(newPromptModel(previous, p.Hint), opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("prompt: %w", err)
	}

	m := final.(promptModel)
	if m.cancelled {
		return "", editor.ErrPromptCancelled
	}
	return m.value, nil
}
