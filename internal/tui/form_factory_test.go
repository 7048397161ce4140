package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/enroll/internal/core/signup"
	"github.com/colonyops/enroll/internal/tui/components/form"
)

func TestNewSignupDialog_Fields(t *testing.T) {
	for _, r := range signup.Roles() {
		t.Run(string(r), func(t *testing.T) {
			d := newSignupDialog(r, signup.NewValues())

			values := d.Values()
			assert.Equal(t, string(r), values[roleFieldName])
			assert.Len(t, values, len(signup.FieldsFor(r))+1)
			for _, f := range signup.FieldsFor(r) {
				_, ok := d.Field(string(f))
				assert.True(t, ok, "missing %s", f)
			}
		})
	}
}

func TestNewSignupDialog_Prefills(t *testing.T) {
	values := signup.NewValues()
	values[signup.FieldEmail] = "asha@example.com"
	values[signup.FieldRelation] = "mother"

	d := newSignupDialog(signup.RoleParent, values)

	got := d.Values()
	assert.Equal(t, "asha@example.com", got[string(signup.FieldEmail)])
	assert.Equal(t, "mother", got[string(signup.FieldRelation)])
}

func TestNewSignupDialog_DepartmentOptionsFollowRole(t *testing.T) {
	student := newSignupDialog(signup.RoleStudent, signup.NewValues())
	teacher := newSignupDialog(signup.RoleTeacher, signup.NewValues())

	sf, ok := student.Field(string(signup.FieldDepartment))
	require.True(t, ok)
	tf, ok := teacher.Field(string(signup.FieldDepartment))
	require.True(t, ok)

	assert.Len(t, sf.(*form.SelectField).Options(), len(signup.FieldDepartment.Options(signup.RoleStudent)))
	assert.Len(t, tf.(*form.SelectField).Options(), len(signup.FieldDepartment.Options(signup.RoleTeacher)))
}

func TestNewField_Kinds(t *testing.T) {
	assert.IsType(t, &form.SelectField{}, newField(signup.RoleStudent, signup.FieldGender, ""))
	assert.IsType(t, &form.TextField{}, newField(signup.RoleStudent, signup.FieldPassword, ""))
	assert.IsType(t, &form.TextField{}, newField(signup.RoleStudent, signup.FieldEmail, ""))
}
