package form

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/enroll/internal/core/styles"
)

// TextField is a single-line text input form field.
type TextField struct {
	base
	input textinput.Model
}

// NewTextField creates a new single-line text input field. Password fields
// mask their input.
func NewTextField(label, placeholder, value string, password bool) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = 40
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.CurrentPalette.Muted)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.CurrentPalette.Primary)

	if password {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}

	if value != "" {
		ti.SetValue(value)
	}

	return &TextField{
		base:  base{label: label},
		input: ti,
	}
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextField) View() string {
	return f.render(f.input.View())
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextField) Value() string     { return f.input.Value() }
func (f *TextField) SetValue(v string) { f.input.SetValue(v) }
