package signup

import (
	"errors"
	"fmt"
)

// ErrUnknownRole is returned by ParseRole for values outside the role set.
var ErrUnknownRole = errors.New("unknown role")

// Role selects which role-specific fields are required.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleParent  Role = "parent"
)

var roleLabels = map[Role]string{
	RoleStudent: "Student",
	RoleTeacher: "Teacher",
	RoleParent:  "Parent",
}

// Roles returns every role in display order.
func Roles() []Role {
	return []Role{RoleStudent, RoleTeacher, RoleParent}
}

// ParseRole converts an external string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

// Valid reports whether r is a member of the role set.
func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Label returns the display name of the role.
func (r Role) Label() string { return roleLabels[r] }

func (r Role) String() string { return string(r) }
