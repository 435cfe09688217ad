package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
	theme     Theme
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(key.String()) {
	case "y":
		m.confirmed, m.done = true, true
		return m, tea.Quit
	case "n", "enter", "esc", "ctrl+c", "q":
		m.confirmed, m.done = false, true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s ", m.theme.HeaderStyle().Render(m.prompt), m.theme.DangerStyle().Render("[y/N]"))
}

// Confirm asks a yes/no question on the terminal. Anything but "y" is a no.
func Confirm(prompt string, theme Theme) (bool, error) {
	return confirm(prompt, theme)
}

// ConfirmIO runs the prompt against explicit streams, for non-terminal use.
func ConfirmIO(prompt string, theme Theme, in io.Reader, out io.Writer) (bool, error) {
	return confirm(prompt, theme, tea.WithInput(in), tea.WithOutput(out))
}

func confirm(prompt string, theme Theme, opts ...tea.ProgramOption) (bool, error) {
	result, err := tea.NewProgram(confirmModel{prompt: prompt, theme: theme}, opts...).Run()
	if err != nil {
		return false, err
	}
	return result.(confirmModel).confirmed, nil
}
