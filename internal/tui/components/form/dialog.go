package form

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of named form fields.
type Dialog struct {
	fields       []Field
	names        []string // parallel slice: key for each field
	focusedField int
	submitted    bool
	cancelled    bool
}

// NewDialog creates a form dialog with the given fields and names.
// The first field is focused automatically.
func NewDialog(fields []Field, names []string) *Dialog {
	d := &Dialog{
		fields: fields,
		names:  names,
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Update handles key input for the dialog, managing focus cycling and
// submit/cancel. Enter on the last field submits.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab", "down":
		return d.moveFocus(1, false)
	case "shift+tab", "up":
		return d.moveFocus(-1, false)
	case "enter":
		return d.moveFocus(1, true)
	case "esc":
		d.cancelled = true
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// View renders all fields vertically with spacing.
func (d *Dialog) View() string {
	parts := make([]string, 0, len(d.fields)*2)
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Values returns a map of field names to field values.
func (d *Dialog) Values() map[string]string {
	result := make(map[string]string, len(d.fields))
	for i, field := range d.fields {
		result[d.names[i]] = field.Value()
	}
	return result
}

// Field returns the field registered under name.
func (d *Dialog) Field(name string) (Field, bool) {
	for i, n := range d.names {
		if n == name {
			return d.fields[i], true
		}
	}
	return nil, false
}

// FocusedName returns the name of the focused field.
func (d *Dialog) FocusedName() string {
	if len(d.names) == 0 {
		return ""
	}
	return d.names[d.focusedField]
}

// FocusName moves focus to the named field.
func (d *Dialog) FocusName(name string) tea.Cmd {
	for i, n := range d.names {
		if n == name {
			return d.focusAt(i)
		}
	}
	return nil
}

// SetErrors sets the inline message of every field from errs; fields
// without an entry are cleared.
func (d *Dialog) SetErrors(errs map[string]string) {
	for i, f := range d.fields {
		f.SetError(errs[d.names[i]])
	}
}

// Submitted returns whether the form was submitted since the last call and
// resets the flag.
func (d *Dialog) Submitted() bool {
	s := d.submitted
	d.submitted = false
	return s
}

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

func (d *Dialog) moveFocus(delta int, submitPastEnd bool) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	next := d.focusedField + delta
	switch {
	case next >= len(d.fields):
		if submitPastEnd {
			d.submitted = true
			return d, nil
		}
		next = 0
	case next < 0:
		next = len(d.fields) - 1
	}

	return d, d.focusAt(next)
}

func (d *Dialog) focusAt(i int) tea.Cmd {
	d.fields[d.focusedField].Blur()
	d.focusedField = i
	return d.fields[d.focusedField].Focus()
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}
