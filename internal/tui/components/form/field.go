package form

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/enroll/internal/core/styles"
)

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	SetValue(v string)
	Label() string
	// SetError sets the inline message shown under the field; empty clears it.
	SetError(msg string)
	ErrorMessage() string
}

// Option is a choice of a SelectField.
type Option struct {
	Value string
	Label string
}

// base holds the state shared by every field type.
type base struct {
	label   string
	errMsg  string
	focused bool
}

func (b *base) Label() string        { return b.label }
func (b *base) Focused() bool        { return b.focused }
func (b *base) SetError(msg string)  { b.errMsg = msg }
func (b *base) ErrorMessage() string { return b.errMsg }

// render lays out the title, body and inline error of a field.
func (b *base) render(body string) string {
	titleStyle := styles.FormTitleBlurredStyle
	if b.focused {
		titleStyle = styles.FormTitleStyle
	}

	parts := []string{titleStyle.Render(b.label), body}
	if b.errMsg != "" {
		parts = append(parts, styles.FormErrorStyle.Render(b.errMsg))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	borderStyle := styles.FormFieldStyle
	if b.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(content)
}
