package signup

// Event is an input from a rendering collaborator. See Store.Dispatch.
type Event interface {
	isEvent()
}

// FieldChanged reports a raw edit of one field.
type FieldChanged struct {
	Field Field
	Value string
}

// RoleSelected reports a role switch.
type RoleSelected struct {
	Role Role
}

// SubmitPressed asks for the primary submission.
type SubmitPressed struct{}

// OAuthPressed asks for the federated sign-up.
type OAuthPressed struct{}

func (FieldChanged) isEvent()  {}
func (RoleSelected) isEvent()  {}
func (SubmitPressed) isEvent() {}
func (OAuthPressed) isEvent()  {}
