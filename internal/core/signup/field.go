package signup

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned by ParseField for names outside the field set.
var ErrUnknownField = errors.New("unknown field")

// Field identifies one input of the sign-up form. The set is closed; see Fields.
type Field string

const (
	FieldFirstName       Field = "firstName"
	FieldLastName        Field = "lastName"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldGender          Field = "gender"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"

	FieldAdmissionNumber Field = "admissionNumber"
	FieldAdmissionYear   Field = "admissionYear"
	FieldCandidateCode   Field = "candidateCode"
	FieldDepartment      Field = "department"
	FieldDateOfBirth     Field = "dateOfBirth"

	FieldRelation Field = "relation"

	FieldDesignation   Field = "designation"
	FieldDateOfJoining Field = "dateOfJoining"
)

// Kind describes how a renderer should collect a field value.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindTel      Kind = "tel"
	KindNumber   Kind = "number"
	KindDate     Kind = "date"
	KindPassword Kind = "password"
	KindSelect   Kind = "select"
)

// Option is one choice of a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type fieldMeta struct {
	label       string
	placeholder string
	kind        Kind
}

// fieldOrder is the render order of the form; it doubles as the closed set.
var fieldOrder = []Field{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhone,
	FieldGender,
	FieldAdmissionNumber,
	FieldAdmissionYear,
	FieldCandidateCode,
	FieldDepartment,
	FieldDateOfBirth,
	FieldRelation,
	FieldDesignation,
	FieldDateOfJoining,
	FieldPassword,
	FieldConfirmPassword,
}

var fieldMetas = map[Field]fieldMeta{
	FieldFirstName:       {"First Name", "John", KindText},
	FieldLastName:        {"Last Name", "Doe", KindText},
	FieldEmail:           {"Email", "mail@example.com", KindEmail},
	FieldPhone:           {"Phone Number", "+91 98765 43210", KindTel},
	FieldGender:          {"Gender", "Select gender", KindSelect},
	FieldPassword:        {"Password", "••••••••", KindPassword},
	FieldConfirmPassword: {"Confirm Password", "••••••••", KindPassword},
	FieldAdmissionNumber: {"Admission No.", "29CSE555", KindText},
	FieldAdmissionYear:   {"Admission Year", "2026", KindNumber},
	FieldCandidateCode:   {"Candidate Code", "41529505078", KindText},
	FieldDepartment:      {"Department", "Select department", KindSelect},
	FieldDateOfBirth:     {"Date of Birth", "YYYY-MM-DD", KindDate},
	FieldRelation:        {"Relation", "Select relation", KindSelect},
	FieldDesignation:     {"Designation", "Assistant Professor", KindText},
	FieldDateOfJoining:   {"Date of Joining", "YYYY-MM-DD", KindDate},
}

var commonFields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhone,
	FieldGender,
	FieldPassword,
	FieldConfirmPassword,
}

var roleFields = map[Role][]Field{
	RoleStudent: {FieldAdmissionNumber, FieldAdmissionYear, FieldCandidateCode, FieldDepartment, FieldDateOfBirth},
	RoleParent:  {FieldRelation},
	RoleTeacher: {FieldDesignation, FieldDepartment, FieldDateOfJoining},
}

var (
	genderOptions = []Option{
		{Value: "male", Label: "Male"},
		{Value: "female", Label: "Female"},
		{Value: "other", Label: "Other"},
	}

	relationOptions = []Option{
		{Value: "father", Label: "Father"},
		{Value: "mother", Label: "Mother"},
		{Value: "guardian", Label: "Guardian"},
	}

	// Student and teacher department lists differ in values and labels.
	studentDepartments = []Option{
		{Value: "cs", Label: "CSE"},
		{Value: "ec", Label: "ECE"},
		{Value: "it", Label: "IT"},
	}

	teacherDepartments = []Option{
		{Value: "cs", Label: "Computer Science"},
		{Value: "ec", Label: "Electronics"},
		{Value: "me", Label: "Mechanical"},
		{Value: "ce", Label: "Civil"},
	}
)

// Fields returns the closed field set in render order.
func Fields() []Field {
	return append([]Field(nil), fieldOrder...)
}

// CommonFields returns the fields required for every role.
func CommonFields() []Field {
	return append([]Field(nil), commonFields...)
}

// RoleFields returns the fields that only the given role requires.
func RoleFields(r Role) []Field {
	return append([]Field(nil), roleFields[r]...)
}

// FieldsFor returns every field relevant to r, in render order.
func FieldsFor(r Role) []Field {
	out := make([]Field, 0, len(commonFields)+len(roleFields[r]))
	for _, f := range fieldOrder {
		if f.RelevantTo(r) {
			out = append(out, f)
		}
	}
	return out
}

// ParseField converts an external string into a Field.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
	return f, nil
}

// Valid reports whether f is a member of the closed field set.
func (f Field) Valid() bool {
	_, ok := fieldMetas[f]
	return ok
}

// RelevantTo reports whether f is validated and submitted for role r.
func (f Field) RelevantTo(r Role) bool {
	for _, c := range commonFields {
		if c == f {
			return true
		}
	}
	for _, c := range roleFields[r] {
		if c == f {
			return true
		}
	}
	return false
}

func (f Field) Label() string       { return fieldMetas[f].label }
func (f Field) Placeholder() string { return fieldMetas[f].placeholder }
func (f Field) Kind() Kind          { return fieldMetas[f].kind }
func (f Field) String() string      { return string(f) }

// Options returns the choices of a select field for role r, or nil when f is
// free text. Department choices depend on the role.
func (f Field) Options(r Role) []Option {
	var opts []Option
	switch f {
	case FieldGender:
		opts = genderOptions
	case FieldRelation:
		opts = relationOptions
	case FieldDepartment:
		if r == RoleTeacher {
			opts = teacherDepartments
		} else {
			opts = studentDepartments
		}
	default:
		return nil
	}
	return append([]Option(nil), opts...)
}

func hasOption(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}
