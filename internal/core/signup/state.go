package signup

// Outcome is the result of a submit or federated sign-up attempt.
type Outcome string

const (
	// Accepted means validation passed and the collaborator was invoked.
	Accepted Outcome = "accepted"
	// Rejected means the attempt was refused: the form is invalid or another
	// submission is still in flight.
	Rejected Outcome = "rejected"
)

// Phase is the position of the store in the current submission cycle.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseSubmitting Phase = "submitting"
)

// Result records how the last finished cycle ended.
type Result string

const (
	ResultNone      Result = ""
	ResultRejected  Result = "rejected"
	ResultSucceeded Result = "succeeded"
	ResultFailed    Result = "failed"
)

// MsgFixErrors is the top-level message set when a submit is blocked by field
// errors.
const MsgFixErrors = "Please fix the errors in the form"

// Fallback messages for collaborators that fail without a message.
const (
	MsgSubmitFailed = "An unexpected error occurred"
	MsgOAuthFailed  = "An error occurred during Google sign up"
)

// FormState is the complete state of one sign-up form.
type FormState struct {
	ID     string `json:"id"`
	Role   Role   `json:"role"`
	Values Values `json:"values"`
	Errors Errors `json:"errors"`

	SubmissionInFlight bool `json:"submission_in_flight"`
	OAuthInFlight      bool `json:"oauth_in_flight"`

	// SubmissionError is the top-level error banner; empty means none.
	SubmissionError string `json:"submission_error,omitempty"`

	Phase      Phase  `json:"phase"`
	LastResult Result `json:"last_result,omitempty"`
	// Cycle counts submit and federated attempts that passed the in-flight
	// guard.
	Cycle int `json:"cycle"`
}

// NewFormState returns the initial state: empty values, student role.
func NewFormState(id string) FormState {
	return FormState{
		ID:     id,
		Role:   RoleStudent,
		Values: NewValues(),
		Errors: Errors{},
		Phase:  PhaseIdle,
	}
}

// Busy reports whether any collaborator call is outstanding.
func (s FormState) Busy() bool {
	return s.SubmissionInFlight || s.OAuthInFlight
}

// HasSubmissionError reports whether the top-level banner is set.
func (s FormState) HasSubmissionError() bool {
	return s.SubmissionError != ""
}

// Clone returns a deep copy of s.
func (s FormState) Clone() FormState {
	s.Values = s.Values.Clone()
	s.Errors = s.Errors.Clone()
	return s
}

// WithField returns s with f set to value and any error on f cleared.
// It panics when f is outside the closed field set.
func (s FormState) WithField(f Field, value string) FormState {
	if !f.Valid() {
		panic("signup: unknown field " + string(f))
	}
	next := s.Clone()
	next.Values[f] = value
	delete(next.Errors, f)
	return next
}

// WithRole returns s with role r and no recorded errors. Values are kept.
// It panics when r is not a known role.
func (s FormState) WithRole(r Role) FormState {
	if !r.Valid() {
		panic("signup: unknown role " + string(r))
	}
	next := s.Clone()
	next.Role = r
	next.Errors = Errors{}
	return next
}

// withRejection records a failed validation.
func (s FormState) withRejection(errs Errors) FormState {
	next := s.Clone()
	next.Errors = errs.Clone()
	next.SubmissionError = MsgFixErrors
	next.Phase = PhaseIdle
	next.LastResult = ResultRejected
	return next
}

// withSubmitting marks the primary submission as started.
func (s FormState) withSubmitting() FormState {
	next := s.Clone()
	next.Errors = Errors{}
	next.SubmissionError = ""
	next.SubmissionInFlight = true
	next.Phase = PhaseSubmitting
	return next
}

// withOAuth marks the federated sign-up as started.
func (s FormState) withOAuth() FormState {
	next := s.Clone()
	next.SubmissionError = ""
	next.OAuthInFlight = true
	next.Phase = PhaseSubmitting
	return next
}

// withFinished ends the current cycle. An empty msg means success.
func (s FormState) withFinished(msg string) FormState {
	next := s.Clone()
	next.SubmissionInFlight = false
	next.OAuthInFlight = false
	next.Phase = PhaseIdle
	next.SubmissionError = msg
	if msg == "" {
		next.LastResult = ResultSucceeded
	} else {
		next.LastResult = ResultFailed
	}
	return next
}
