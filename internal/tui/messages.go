package tui

import "github.com/colonyops/enroll/internal/core/signup"

// stateChangedMsg signals that the store has a newer state than the one the
// model last rendered. Changes are coalesced; the model always re-reads the
// store.
type stateChangedMsg struct{}

// drainNotificationsMsg signals that the notification buffer has entries.
type drainNotificationsMsg struct{}

// submitDoneMsg is returned once AttemptSubmit returns.
type submitDoneMsg struct {
	outcome signup.Outcome
}

// oauthDoneMsg is returned once the federated sign-up returns. err is set
// when the terminal could not be handed over.
type oauthDoneMsg struct {
	outcome signup.Outcome
	err     error
}
