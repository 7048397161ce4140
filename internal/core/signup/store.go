package signup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/enroll/internal/core/logging"
)

var (
	errNoSubmitter = errors.New("submission is not configured")
	errNoOAuth     = errors.New("federated sign-up is not configured")
	errPanicked    = errors.New("collaborator panicked")
)

// Store owns a FormState and applies events to it. All mutation goes through
// its methods; observers registered with OnStateChange receive a copy of the
// state after every change.
//
// Collaborators are called without holding the store lock, so renderers may
// keep editing fields while a submission is outstanding.
type Store struct {
	mu        sync.Mutex
	state     FormState
	observers []func(FormState)

	submitter Submitter
	oauth     OAuthSigner
	logger    zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithSubmitter sets the primary submission collaborator.
func WithSubmitter(sub Submitter) Option {
	return func(s *Store) { s.submitter = sub }
}

// WithOAuthSigner sets the federated sign-up collaborator.
func WithOAuthSigner(o OAuthSigner) Option {
	return func(s *Store) { s.oauth = o }
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithID overrides the generated form ID.
func WithID(id string) Option {
	return func(s *Store) { s.state.ID = id }
}

// NewStore returns a store holding the initial form state.
func NewStore(opts ...Option) *Store {
	s := &Store{
		state:  NewFormState(uuid.NewString()),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnStateChange registers fn to be called after every state change.
// Callbacks run synchronously on the goroutine that caused the change.
func (s *Store) OnStateChange(fn func(FormState)) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// State returns a copy of the current state.
func (s *Store) State() FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// IsValid reports whether the current values pass validation for the
// current role. It does not record errors.
func (s *Store) IsValid() bool {
	st := s.State()
	return IsValid(st.Role, st.Values)
}

// SetField overwrites the value of f and clears its recorded error.
// It panics when f is outside the closed field set.
func (s *Store) SetField(f Field, value string) {
	s.apply(func(st FormState) FormState { return st.WithField(f, value) })
}

// SetRole switches the role and clears every recorded error. Values are kept.
// It panics when r is not a known role.
func (s *Store) SetRole(r Role) {
	s.apply(func(st FormState) FormState { return st.WithRole(r) })
	s.logger.Debug().Str("form_id", s.id()).Str("role", string(r)).Msg("role selected")
}

// AttemptSubmit validates the form and, when it is valid, hands it to the
// submitter and waits for the result. It returns Rejected when the form is
// invalid or when a submission or federated sign-up is already in flight; in
// the latter case the state is left untouched.
func (s *Store) AttemptSubmit(ctx context.Context) Outcome {
	s.mu.Lock()
	if s.state.Busy() {
		s.mu.Unlock()
		s.logger.Debug().Str("form_id", s.id()).Msg("submit ignored: already in flight")
		return Rejected
	}

	s.state.Cycle++
	s.state.Phase = PhaseValidating
	validating := s.state.Clone()

	errs := Validate(s.state.Role, s.state.Values)
	if len(errs) > 0 {
		s.state = s.state.withRejection(errs)
		rejected := s.state.Clone()
		s.mu.Unlock()

		s.notify(validating, rejected)
		s.logger.Info().
			Str("form_id", rejected.ID).
			Str("role", string(rejected.Role)).
			Int("errors", len(errs)).
			Msg("submit rejected")
		return Rejected
	}

	s.state = s.state.withSubmitting()
	submitting := s.state.Clone()
	sub := s.submitter
	s.mu.Unlock()

	s.notify(validating, submitting)

	ctx = logging.WithFormID(ctx, submitting.ID)
	ctx = logging.WithRole(ctx, string(submitting.Role))
	payload := Payload{Role: submitting.Role, Values: submitting.Values.For(submitting.Role)}

	s.logger.Debug().Ctx(ctx).Msg("submission started")
	err := s.invoke(ctx, "submitter", func(ctx context.Context) error {
		if sub == nil {
			return errNoSubmitter
		}
		return sub.Submit(ctx, payload)
	})
	s.finish(ctx, err, MsgSubmitFailed)

	return Accepted
}

// AttemptOAuth runs the federated sign-up collaborator. It shares the
// in-flight guard with AttemptSubmit: only one of the two may run at a time.
func (s *Store) AttemptOAuth(ctx context.Context) Outcome {
	s.mu.Lock()
	if s.state.Busy() {
		s.mu.Unlock()
		s.logger.Debug().Str("form_id", s.id()).Msg("federated sign-up ignored: already in flight")
		return Rejected
	}

	s.state.Cycle++
	s.state = s.state.withOAuth()
	started := s.state.Clone()
	signer := s.oauth
	s.mu.Unlock()

	s.notify(started)

	ctx = logging.WithFormID(ctx, started.ID)
	s.logger.Debug().Ctx(ctx).Msg("federated sign-up started")
	err := s.invoke(ctx, "oauth", func(ctx context.Context) error {
		if signer == nil {
			return errNoOAuth
		}
		return signer.SignUp(ctx)
	})
	s.finish(ctx, err, MsgOAuthFailed)

	return Accepted
}

// Dispatch applies a rendering event. Field and role events always return
// Accepted; submit events return the outcome of the attempt.
func (s *Store) Dispatch(ctx context.Context, ev Event) Outcome {
	switch e := ev.(type) {
	case FieldChanged:
		s.SetField(e.Field, e.Value)
		return Accepted
	case RoleSelected:
		s.SetRole(e.Role)
		return Accepted
	case SubmitPressed:
		return s.AttemptSubmit(ctx)
	case OAuthPressed:
		return s.AttemptOAuth(ctx)
	default:
		panic(fmt.Sprintf("signup: unknown event %T", ev))
	}
}

func (s *Store) apply(fn func(FormState) FormState) {
	s.mu.Lock()
	s.state = fn(s.state)
	next := s.state.Clone()
	s.mu.Unlock()

	s.notify(next)
}

func (s *Store) finish(ctx context.Context, err error, fallback string) {
	msg := failureMessage(err, fallback)

	s.mu.Lock()
	s.state = s.state.withFinished(msg)
	done := s.state.Clone()
	s.mu.Unlock()

	if msg != "" {
		s.logger.Warn().Ctx(ctx).Err(err).Msg("submission failed")
	} else {
		s.logger.Info().Ctx(ctx).Msg("submission succeeded")
	}

	s.notify(done)
}

// invoke calls a collaborator and converts a panic into an error.
func (s *Store) invoke(ctx context.Context, name string, fn func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Ctx(ctx).
				Str("collaborator", name).
				Str("panic", fmt.Sprint(r)).
				Msg("collaborator panicked")
			err = errPanicked
		}
	}()
	return fn(ctx)
}

func (s *Store) notify(states ...FormState) {
	s.mu.Lock()
	observers := make([]func(FormState), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, st := range states {
		for _, fn := range observers {
			fn(st.Clone())
		}
	}
}

func (s *Store) id() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ID
}

// failureMessage turns a collaborator error into the banner text. Messages are
// kept verbatim; panics and blank messages use fallback.
func failureMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, errPanicked) {
		return fallback
	}
	if strings.TrimSpace(err.Error()) == "" {
		return fallback
	}
	return err.Error()
}
