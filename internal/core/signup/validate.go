package signup

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hay-kot/criterio"
)

// Messages recorded in Errors.
const (
	MsgFirstName       = "First name must be at least 2 characters"
	MsgLastName        = "Last name must be at least 2 characters"
	MsgEmail           = "Invalid email address"
	MsgPhone           = "Phone number must be at least 10 digits"
	MsgGender          = "Please select a gender"
	MsgPassword        = "Password must be at least 8 characters"
	MsgConfirmPassword = "Passwords don't match"
	MsgRequired        = "Required"
	MsgInvalidDate     = "Invalid date"
)

// DateLayout is the layout accepted for date fields.
const DateLayout = "2006-01-02"

// emailPattern only checks the local@domain.tld shape.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// rule checks a single field. values carries the whole form for rules that
// compare fields.
type rule func(value string, values Values) error

type check struct {
	field Field
	rules []rule
}

// run returns the error of the first failing rule.
func (c check) run(values Values) error {
	v := values[c.field]
	for _, r := range c.rules {
		if err := r(v, values); err != nil {
			return err
		}
	}
	return nil
}

func minTrimmed(n int, msg string) rule {
	return func(v string, _ Values) error {
		if utf8.RuneCountInString(strings.TrimSpace(v)) < n {
			return errors.New(msg)
		}
		return nil
	}
}

func minLength(n int, msg string) rule {
	return func(v string, _ Values) error {
		if utf8.RuneCountInString(v) < n {
			return errors.New(msg)
		}
		return nil
	}
}

func matches(re *regexp.Regexp, msg string) rule {
	return func(v string, _ Values) error {
		if !re.MatchString(v) {
			return errors.New(msg)
		}
		return nil
	}
}

func present(msg string) rule {
	return func(v string, _ Values) error {
		if v == "" {
			return errors.New(msg)
		}
		return nil
	}
}

func oneOf(opts []Option, msg string) rule {
	return func(v string, _ Values) error {
		if !hasOption(opts, v) {
			return errors.New(msg)
		}
		return nil
	}
}

func sameAs(other Field, msg string) rule {
	return func(v string, values Values) error {
		if v == "" || v != values[other] {
			return errors.New(msg)
		}
		return nil
	}
}

func date(msg string) rule {
	return func(v string, _ Values) error {
		if _, err := time.Parse(DateLayout, v); err != nil {
			return errors.New(msg)
		}
		return nil
	}
}

func checksFor(r Role) []check {
	checks := []check{
		{FieldFirstName, []rule{minTrimmed(2, MsgFirstName)}},
		{FieldLastName, []rule{minTrimmed(2, MsgLastName)}},
		{FieldEmail, []rule{matches(emailPattern, MsgEmail)}},
		// length only; digits are not enforced
		{FieldPhone, []rule{minTrimmed(10, MsgPhone)}},
		{FieldGender, []rule{oneOf(genderOptions, MsgGender)}},
		{FieldPassword, []rule{minLength(8, MsgPassword)}},
		{FieldConfirmPassword, []rule{sameAs(FieldPassword, MsgConfirmPassword)}},
	}

	switch r {
	case RoleStudent:
		checks = append(checks,
			check{FieldAdmissionNumber, []rule{minTrimmed(1, MsgRequired)}},
			check{FieldAdmissionYear, []rule{minTrimmed(1, MsgRequired)}},
			check{FieldCandidateCode, []rule{minTrimmed(1, MsgRequired)}},
			check{FieldDepartment, []rule{oneOf(FieldDepartment.Options(r), MsgRequired)}},
			check{FieldDateOfBirth, []rule{present(MsgRequired), date(MsgInvalidDate)}},
		)
	case RoleParent:
		checks = append(checks,
			check{FieldRelation, []rule{oneOf(relationOptions, MsgRequired)}},
		)
	case RoleTeacher:
		checks = append(checks,
			check{FieldDesignation, []rule{minTrimmed(1, MsgRequired)}},
			check{FieldDepartment, []rule{oneOf(FieldDepartment.Options(r), MsgRequired)}},
			check{FieldDateOfJoining, []rule{present(MsgRequired), date(MsgInvalidDate)}},
		)
	}

	return checks
}

// Validate checks values against the rules of role r. Every relevant field is
// checked; irrelevant fields are ignored. The result is never nil and is empty
// when the form may be submitted.
func Validate(r Role, values Values) Errors {
	var errs criterio.FieldErrorsBuilder
	for _, c := range checksFor(r) {
		if err := c.run(values); err != nil {
			errs = errs.Append(string(c.field), err)
		}
	}
	return fromFieldErrors(errs.ToError())
}

// IsValid reports whether Validate(r, values) is empty.
func IsValid(r Role, values Values) bool {
	return len(Validate(r, values)) == 0
}

// ValidateField returns the message for a single field under role r, or the
// empty string when the field is valid or irrelevant to r.
func ValidateField(r Role, values Values, f Field) string {
	for _, c := range checksFor(r) {
		if c.field != f {
			continue
		}
		if err := c.run(values); err != nil {
			return err.Error()
		}
	}
	return ""
}

func fromFieldErrors(err error) Errors {
	out := Errors{}
	if err == nil {
		return out
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return out
	}
	for _, fe := range fieldErrs {
		f := Field(fe.Field)
		if _, seen := out[f]; seen {
			continue
		}
		out[f] = fe.Err.Error()
	}
	return out
}
