package form

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/enroll/internal/core/styles"
)

// SelectField cycles through a fixed option list with left/right. It starts
// unset unless value matches an option; once a choice is made it cannot be
// cleared again.
type SelectField struct {
	base
	options     []Option
	placeholder string
	index       int // -1 when unset
}

// NewSelectField creates a single-choice field.
func NewSelectField(label, placeholder string, options []Option, value string) *SelectField {
	f := &SelectField{
		base:        base{label: label},
		options:     options,
		placeholder: placeholder,
		index:       -1,
	}
	f.SetValue(value)
	return f
}

func (f *SelectField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused || len(f.options) == 0 {
		return f, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch keyMsg.String() {
	case "right", "l", " ":
		f.index = (f.index + 1) % len(f.options)
	case "left", "h":
		if f.index <= 0 {
			f.index = len(f.options) - 1
		} else {
			f.index--
		}
	}
	return f, nil
}

func (f *SelectField) View() string {
	var body string
	if f.index < 0 {
		body = styles.FormHelpStyle.Render(f.placeholder)
	} else {
		body = f.options[f.index].Label
	}
	if f.focused {
		body = "‹ " + body + " ›"
	}
	return f.render(body)
}

func (f *SelectField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectField) Blur() { f.focused = false }

func (f *SelectField) Value() string {
	if f.index < 0 {
		return ""
	}
	return f.options[f.index].Value
}

// SetValue selects the option with value v, or unsets the field when no
// option matches.
func (f *SelectField) SetValue(v string) {
	f.index = -1
	for i, o := range f.options {
		if o.Value == v {
			f.index = i
			return
		}
	}
}

// Options returns the choices of the field.
func (f *SelectField) Options() []Option { return f.options }
