package commands

import (
	"maps"
	"slices"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/enroll/internal/core/signup"
)

// FormInput is the JSON document read by the validate and submit commands.
//
//	{"role": "teacher", "values": {"firstName": "Asha", "designation": "Lecturer"}}
type FormInput struct {
	Role   string            `json:"role"`
	Values map[string]string `json:"values"`
}

// Parse converts the input into a role and a full set of values. An empty
// role selects the student form. Every unknown name is reported.
func (in FormInput) Parse() (signup.Role, signup.Values, error) {
	var errs criterio.FieldErrorsBuilder

	role := signup.RoleStudent
	if in.Role != "" {
		r, err := signup.ParseRole(in.Role)
		if err != nil {
			errs = errs.Append("role", err)
		}
		role = r
	}

	values := signup.NewValues()
	for _, name := range slices.Sorted(maps.Keys(in.Values)) {
		f, err := signup.ParseField(name)
		if err != nil {
			errs = errs.Append("values."+name, err)
			continue
		}
		values[f] = in.Values[name]
	}

	if err := errs.ToError(); err != nil {
		return "", nil, err
	}
	return role, values, nil
}
