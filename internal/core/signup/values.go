package signup

// Values maps every field of the closed set to its raw input.
type Values map[Field]string

// NewValues returns a Values with every field set to the empty string.
func NewValues() Values {
	v := make(Values, len(fieldOrder))
	for _, f := range fieldOrder {
		v[f] = ""
	}
	return v
}

// Clone returns a copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// For returns only the fields relevant to role r.
func (v Values) For(r Role) Values {
	out := make(Values, len(commonFields)+len(roleFields[r]))
	for _, f := range FieldsFor(r) {
		out[f] = v[f]
	}
	return out
}

// Errors maps a field to its validation message. A missing key means the
// field is valid or has not been checked.
type Errors map[Field]string

// Clone returns a copy of e.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, msg := range e {
		out[k] = msg
	}
	return out
}

// Has reports whether f has a recorded error.
func (e Errors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// Fields returns the fields with errors in render order.
func (e Errors) Fields() []Field {
	out := make([]Field, 0, len(e))
	for _, f := range fieldOrder {
		if _, ok := e[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
