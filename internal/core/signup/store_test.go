package signup

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(s *Store, values Values) {
	for f, v := range values {
		s.SetField(f, v)
	}
}

func newValidStore(t *testing.T, r Role, opts ...Option) *Store {
	t.Helper()
	s := NewStore(opts...)
	s.SetRole(r)
	fill(s, validValues(r))
	require.True(t, s.IsValid())
	return s
}

// recorder collects every state the store publishes.
type recorder struct {
	mu     sync.Mutex
	states []FormState
}

func (r *recorder) observe(st FormState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, st)
}

func (r *recorder) phases() []Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Phase, len(r.states))
	for i, st := range r.states {
		out[i] = st.Phase
	}
	return out
}

func TestNewStore_InitialState(t *testing.T) {
	s := NewStore()
	st := s.State()

	assert.NotEmpty(t, st.ID)
	assert.Equal(t, RoleStudent, st.Role)
	assert.Len(t, st.Values, len(Fields()))
	for _, f := range Fields() {
		assert.Equal(t, "", st.Values[f])
	}
	assert.Empty(t, st.Errors)
	assert.False(t, st.Busy())
	assert.Empty(t, st.SubmissionError)
	assert.Equal(t, PhaseIdle, st.Phase)
}

func TestNewStore_WithID(t *testing.T) {
	s := NewStore(WithID("form-1"))
	assert.Equal(t, "form-1", s.State().ID)
}

func TestStore_SetField_ClearsFieldError(t *testing.T) {
	s := NewStore()
	require.Equal(t, Rejected, s.AttemptSubmit(context.Background()))
	require.True(t, s.State().Errors.Has(FieldFirstName))

	s.SetField(FieldFirstName, "A")

	st := s.State()
	assert.Equal(t, "A", st.Values[FieldFirstName])
	assert.False(t, st.Errors.Has(FieldFirstName), "edit clears the error optimistically")
	assert.True(t, st.Errors.Has(FieldLastName), "other errors are kept")
}

func TestStore_SetField_UnknownFieldPanics(t *testing.T) {
	s := NewStore()
	assert.Panics(t, func() { s.SetField(Field("nickname"), "x") })
	_, present := s.State().Values[Field("nickname")]
	assert.False(t, present, "closed schema must not grow")
}

func TestStore_SetRole_ClearsErrorsKeepsValues(t *testing.T) {
	for _, r := range Roles() {
		t.Run(string(r), func(t *testing.T) {
			s := NewStore()
			s.SetField(FieldEmail, "asha@example.com")
			s.SetField(FieldDesignation, "Lecturer")
			require.Equal(t, Rejected, s.AttemptSubmit(context.Background()))
			require.NotEmpty(t, s.State().Errors)

			s.SetRole(r)

			st := s.State()
			assert.Equal(t, r, st.Role)
			assert.Empty(t, st.Errors)
			assert.Equal(t, "asha@example.com", st.Values[FieldEmail])
			assert.Equal(t, "Lecturer", st.Values[FieldDesignation])
		})
	}
}

func TestStore_SetRole_UnknownRolePanics(t *testing.T) {
	s := NewStore()
	assert.Panics(t, func() { s.SetRole(Role("admin")) })
}

func TestStore_AttemptSubmit_Rejected(t *testing.T) {
	called := false
	s := NewStore(WithSubmitter(SubmitterFunc(func(context.Context, Payload) error {
		called = true
		return nil
	})))

	outcome := s.AttemptSubmit(context.Background())

	st := s.State()
	assert.Equal(t, Rejected, outcome)
	assert.False(t, called)
	assert.Equal(t, Validate(RoleStudent, NewValues()), st.Errors)
	assert.Equal(t, MsgFixErrors, st.SubmissionError)
	assert.Equal(t, ResultRejected, st.LastResult)
	assert.Equal(t, PhaseIdle, st.Phase)
	assert.False(t, st.SubmissionInFlight)
}

func TestStore_AttemptSubmit_StudentScenario(t *testing.T) {
	var got Payload
	s := NewStore(WithSubmitter(SubmitterFunc(func(_ context.Context, p Payload) error {
		got = p
		return nil
	})))
	fill(s, validValues(RoleStudent))
	s.SetField(FieldDesignation, "stale teacher value")

	outcome := s.AttemptSubmit(context.Background())

	st := s.State()
	assert.Equal(t, Accepted, outcome)
	assert.Empty(t, st.Errors)
	assert.Empty(t, st.SubmissionError)
	assert.Equal(t, ResultSucceeded, st.LastResult)
	assert.False(t, st.SubmissionInFlight)

	assert.Equal(t, RoleStudent, got.Role)
	assert.Equal(t, "29CSE555", got.Values[FieldAdmissionNumber])
	assert.Equal(t, "2008-01-01", got.Values[FieldDateOfBirth])
	assert.NotContains(t, got.Values, FieldDesignation)
	assert.Len(t, got.Values, len(FieldsFor(RoleStudent)))
}

func TestStore_AttemptSubmit_CollaboratorFailure(t *testing.T) {
	tests := []struct {
		name string
		sub  Submitter
		want string
	}{
		{
			name: "message surfaced verbatim",
			sub: SubmitterFunc(func(context.Context, Payload) error {
				return errors.New("Email is already registered.")
			}),
			want: "Email is already registered.",
		},
		{
			name: "blank message falls back",
			sub: SubmitterFunc(func(context.Context, Payload) error {
				return errors.New("  ")
			}),
			want: MsgSubmitFailed,
		},
		{
			name: "panic is recovered",
			sub: SubmitterFunc(func(context.Context, Payload) error {
				panic("boom")
			}),
			want: MsgSubmitFailed,
		},
		{
			name: "no submitter configured",
			sub:  nil,
			want: "submission is not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := []Option{}
			if tt.sub != nil {
				opts = append(opts, WithSubmitter(tt.sub))
			}
			s := newValidStore(t, RoleParent, opts...)

			outcome := s.AttemptSubmit(context.Background())

			st := s.State()
			assert.Equal(t, Accepted, outcome)
			assert.Equal(t, tt.want, st.SubmissionError)
			assert.Equal(t, ResultFailed, st.LastResult)
			assert.False(t, st.SubmissionInFlight)
			assert.Empty(t, st.Errors)
		})
	}
}

func TestStore_AttemptSubmit_RetryAfterFailure(t *testing.T) {
	attempts := 0
	s := newValidStore(t, RoleTeacher, WithSubmitter(SubmitterFunc(func(context.Context, Payload) error {
		attempts++
		if attempts == 1 {
			return errors.New("service unavailable")
		}
		return nil
	})))

	require.Equal(t, Accepted, s.AttemptSubmit(context.Background()))
	require.Equal(t, "service unavailable", s.State().SubmissionError)

	require.Equal(t, Accepted, s.AttemptSubmit(context.Background()))
	st := s.State()
	assert.Empty(t, st.SubmissionError)
	assert.Equal(t, ResultSucceeded, st.LastResult)
	assert.Equal(t, 2, st.Cycle)
}

func TestStore_AttemptSubmit_InFlightGuard(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	s := newValidStore(t, RoleStudent, WithSubmitter(SubmitterFunc(func(context.Context, Payload) error {
		close(started)
		<-release
		return nil
	})))

	done := make(chan Outcome, 1)
	go func() { done <- s.AttemptSubmit(context.Background()) }()
	<-started

	before := s.State()
	require.True(t, before.SubmissionInFlight)

	assert.Equal(t, Rejected, s.AttemptSubmit(context.Background()))
	assert.Equal(t, Rejected, s.AttemptOAuth(context.Background()))
	assert.Equal(t, Rejected, s.Dispatch(context.Background(), SubmitPressed{}))

	after := s.State()
	assert.Equal(t, before.Errors, after.Errors)
	assert.Equal(t, before.SubmissionError, after.SubmissionError)
	assert.Equal(t, before.Cycle, after.Cycle)

	// edits stay possible while the collaborator runs
	s.SetField(FieldPhone, "0123456789")

	close(release)
	assert.Equal(t, Accepted, <-done)

	st := s.State()
	assert.False(t, st.SubmissionInFlight)
	assert.Equal(t, "0123456789", st.Values[FieldPhone])
	assert.Equal(t, ResultSucceeded, st.LastResult)
}

func TestStore_OnStateChange(t *testing.T) {
	rec := &recorder{}
	s := newValidStore(t, RoleParent, WithSubmitter(SubmitterFunc(func(context.Context, Payload) error {
		return nil
	})))
	s.OnStateChange(rec.observe)

	s.AttemptSubmit(context.Background())

	assert.Equal(t, []Phase{PhaseValidating, PhaseSubmitting, PhaseIdle}, rec.phases())

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.True(t, rec.states[1].SubmissionInFlight)
	assert.Equal(t, ResultSucceeded, rec.states[2].LastResult)
}

func TestStore_OnStateChange_ReceivesCopies(t *testing.T) {
	s := NewStore()
	var seen FormState
	s.OnStateChange(func(st FormState) {
		seen = st
		st.Values[FieldEmail] = "mutated@example.com"
	})

	s.SetField(FieldEmail, "asha@example.com")

	assert.Equal(t, "mutated@example.com", seen.Values[FieldEmail])
	assert.Equal(t, "asha@example.com", s.State().Values[FieldEmail])
}

func TestStore_AttemptOAuth(t *testing.T) {
	t.Run("success ignores form values", func(t *testing.T) {
		s := NewStore(WithOAuthSigner(OAuthSignerFunc(func(context.Context) error { return nil })))

		outcome := s.AttemptOAuth(context.Background())

		st := s.State()
		assert.Equal(t, Accepted, outcome)
		assert.False(t, st.OAuthInFlight)
		assert.Empty(t, st.SubmissionError)
		assert.Equal(t, ResultSucceeded, st.LastResult)
	})

	t.Run("failure message", func(t *testing.T) {
		s := NewStore(WithOAuthSigner(OAuthSignerFunc(func(context.Context) error {
			return errors.New("consent denied")
		})))

		assert.Equal(t, Accepted, s.AttemptOAuth(context.Background()))
		assert.Equal(t, "consent denied", s.State().SubmissionError)
	})

	t.Run("blank failure falls back", func(t *testing.T) {
		s := NewStore(WithOAuthSigner(OAuthSignerFunc(func(context.Context) error {
			return errors.New("")
		})))

		s.AttemptOAuth(context.Background())
		assert.Equal(t, MsgOAuthFailed, s.State().SubmissionError)
	})

	t.Run("blocks primary submission while running", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		s := newValidStore(t, RoleParent, WithOAuthSigner(OAuthSignerFunc(func(context.Context) error {
			close(started)
			<-release
			return nil
		})))

		done := make(chan Outcome, 1)
		go func() { done <- s.AttemptOAuth(context.Background()) }()
		<-started

		assert.True(t, s.State().OAuthInFlight)
		assert.Equal(t, Rejected, s.AttemptSubmit(context.Background()))

		close(release)
		assert.Equal(t, Accepted, <-done)
		assert.False(t, s.State().Busy())
	})
}

func TestStore_Dispatch(t *testing.T) {
	var submitted bool
	s := NewStore(WithSubmitter(SubmitterFunc(func(context.Context, Payload) error {
		submitted = true
		return nil
	})))
	ctx := context.Background()

	assert.Equal(t, Accepted, s.Dispatch(ctx, RoleSelected{Role: RoleTeacher}))
	for f, v := range validValues(RoleTeacher) {
		assert.Equal(t, Accepted, s.Dispatch(ctx, FieldChanged{Field: f, Value: v}))
	}
	assert.Equal(t, Accepted, s.Dispatch(ctx, SubmitPressed{}))

	assert.True(t, submitted)
	assert.Equal(t, RoleTeacher, s.State().Role)
}

func TestStore_Dispatch_NilEventPanics(t *testing.T) {
	s := NewStore()
	assert.Panics(t, func() { s.Dispatch(context.Background(), nil) })
}
