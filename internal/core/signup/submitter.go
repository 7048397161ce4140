package signup

import "context"

// Payload is what the submission collaborator receives: the role and the
// values of the fields relevant to it.
type Payload struct {
	Role   Role   `json:"role"`
	Values Values `json:"values"`
}

// Submitter sends a validated form somewhere. A non-nil error is shown to the
// user verbatim, so it should carry a human-readable message.
type Submitter interface {
	Submit(ctx context.Context, p Payload) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, p Payload) error

func (fn SubmitterFunc) Submit(ctx context.Context, p Payload) error { return fn(ctx, p) }

// OAuthSigner runs a federated sign-up that does not depend on form values.
type OAuthSigner interface {
	SignUp(ctx context.Context) error
}

// OAuthSignerFunc adapts a function to OAuthSigner.
type OAuthSignerFunc func(ctx context.Context) error

func (fn OAuthSignerFunc) SignUp(ctx context.Context) error { return fn(ctx) }
