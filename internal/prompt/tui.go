package prompt

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87d7af"))

type nameModel struct {
	input textinput.Model
	done  bool
}

func newNameModel(placeholder string) nameModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()
	return nameModel{input: ti}
}

func (m nameModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m nameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			// Treat abort like a blank answer: the default name applies.
			m.input.SetValue("")
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m nameModel) View() string {
	if m.done {
		return ""
	}
	return promptStyle.Render(reportNamePrompt) + m.input.View() + "\n"
}

func reportNameTUI(in *os.File, out io.Writer, placeholder string) (string, error) {
	program := tea.NewProgram(newNameModel(placeholder), tea.WithInput(in), tea.WithOutput(out))
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("report name prompt failed: %w", err)
	}
	m, ok := final.(nameModel)
	if !ok {
		return "", nil
	}
	return m.input.Value(), nil
}
