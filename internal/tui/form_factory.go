package tui

import (
	"github.com/colonyops/enroll/internal/core/signup"
	"github.com/colonyops/enroll/internal/tui/components/form"
)

// roleFieldName is the dialog key of the role picker.
const roleFieldName = "role"

// newSignupDialog builds the dialog for role r: the role picker followed by
// every field relevant to r, pre-filled from values.
func newSignupDialog(r signup.Role, values signup.Values) *form.Dialog {
	fields := signup.FieldsFor(r)
	components := make([]form.Field, 0, len(fields)+1)
	names := make([]string, 0, len(fields)+1)

	roleOpts := make([]form.Option, 0, len(signup.Roles()))
	for _, role := range signup.Roles() {
		roleOpts = append(roleOpts, form.Option{Value: string(role), Label: role.Label()})
	}
	components = append(components, form.NewSelectField("I am a", "", roleOpts, string(r)))
	names = append(names, roleFieldName)

	for _, f := range fields {
		components = append(components, newField(r, f, values[f]))
		names = append(names, string(f))
	}

	return form.NewDialog(components, names)
}

func newField(r signup.Role, f signup.Field, value string) form.Field {
	switch f.Kind() {
	case signup.KindSelect:
		opts := f.Options(r)
		formOpts := make([]form.Option, len(opts))
		for i, o := range opts {
			formOpts[i] = form.Option{Value: o.Value, Label: o.Label}
		}
		return form.NewSelectField(f.Label(), f.Placeholder(), formOpts, value)
	case signup.KindPassword:
		return form.NewTextField(f.Label(), f.Placeholder(), value, true)
	default:
		return form.NewTextField(f.Label(), f.Placeholder(), value, false)
	}
}
