package eventbus

import (
	"sync"

	"github.com/colonyops/enroll/internal/core/signup"
)

// Attach republishes store activity on the bus: every snapshot as
// form.state-changed, plus start/finish events derived from the transitions
// of the submission cycle.
func Attach(bus *EventBus, store *signup.Store) {
	b := &bridge{bus: bus, prev: store.State()}
	store.OnStateChange(b.observe)
}

type bridge struct {
	bus *EventBus

	mu       sync.Mutex
	prev     signup.FormState
	reported int  // last cycle whose outcome was published
	oauth    bool // the running cycle is a federated sign-up
}

func (b *bridge) observe(st signup.FormState) {
	b.bus.PublishFormStateChanged(FormStateChangedPayload{State: st})

	b.mu.Lock()
	defer b.mu.Unlock()
	prev := b.prev
	b.prev = st

	switch {
	case st.SubmissionInFlight && !prev.SubmissionInFlight:
		b.oauth = false
		b.bus.PublishSubmissionStarted(SubmissionStartedPayload{FormID: st.ID, Role: st.Role})
		return
	case st.OAuthInFlight && !prev.OAuthInFlight:
		b.oauth = true
		b.bus.PublishOAuthStarted(OAuthStartedPayload{FormID: st.ID})
		return
	}

	if st.Phase != signup.PhaseIdle || st.Cycle == b.reported || st.LastResult == signup.ResultNone {
		return
	}
	b.reported = st.Cycle

	switch {
	case st.LastResult == signup.ResultRejected:
		b.bus.PublishSubmissionRejected(SubmissionRejectedPayload{FormID: st.ID, Role: st.Role, Errors: st.Errors})
	case b.oauth:
		b.bus.PublishOAuthFinished(OAuthFinishedPayload{FormID: st.ID, Message: st.SubmissionError})
	case st.LastResult == signup.ResultSucceeded:
		b.bus.PublishSubmissionSucceeded(SubmissionSucceededPayload{
			FormID: st.ID,
			Role:   st.Role,
			Email:  st.Values[signup.FieldEmail],
		})
	default:
		b.bus.PublishSubmissionFailed(SubmissionFailedPayload{FormID: st.ID, Role: st.Role, Message: st.SubmissionError})
	}
}
