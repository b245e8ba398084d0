package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputModel handles the single chat input line.
type InputModel struct {
	textInput textinput.Model
}

// NewInputModel creates the chat input, focused and ready.
func NewInputModel() InputModel {
	ti := textinput.New()
	ti.Placeholder = "Type a command (/help) or message…"
	ti.Prompt = inputPromptStyle.Render("▸ ")
	ti.CharLimit = 1000
	ti.Width = 60
	ti.Focus()

	return InputModel{textInput: ti}
}

// SetWidth resizes the input line.
func (m *InputModel) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	m.textInput.Width = width
}

// Value returns the current input text.
func (m InputModel) Value() string {
	return m.textInput.Value()
}

// Reset clears the input.
func (m *InputModel) Reset() {
	m.textInput.Reset()
}

// Focus returns the command that starts the cursor blink.
func (m InputModel) Focus() tea.Cmd {
	return textinput.Blink
}

// Update forwards messages to the text input.
func (m InputModel) Update(msg tea.Msg) (InputModel, tea.Cmd) {
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// View renders the input line.
func (m InputModel) View() string {
	return m.textInput.View()
}
