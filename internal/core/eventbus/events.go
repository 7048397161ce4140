// Package eventbus provides a typed publish/subscribe event bus that fans
// sign-up form activity out to loggers and renderers.
package eventbus

import (
	"github.com/colonyops/enroll/internal/core/notify"
	"github.com/colonyops/enroll/internal/core/signup"
)

// Event names. Keep sorted A-Z.
const (
	EventFormStateChanged      Event = "form.state-changed"
	EventNotificationPublished Event = "notification.published"
	EventOAuthFinished         Event = "oauth.finished"
	EventOAuthStarted          Event = "oauth.started"
	EventSubmissionFailed      Event = "submission.failed"
	EventSubmissionRejected    Event = "submission.rejected"
	EventSubmissionStarted     Event = "submission.started"
	EventSubmissionSucceeded   Event = "submission.succeeded"
)

// FormStateChangedPayload is emitted after every store mutation.
type FormStateChangedPayload struct {
	State signup.FormState
}

// SubmissionStartedPayload is emitted when a valid form is handed to the submitter.
type SubmissionStartedPayload struct {
	FormID string
	Role   signup.Role
}

// SubmissionRejectedPayload is emitted when validation blocks a submit.
type SubmissionRejectedPayload struct {
	FormID string
	Role   signup.Role
	Errors signup.Errors
}

// SubmissionSucceededPayload is emitted when the submitter reports success.
type SubmissionSucceededPayload struct {
	FormID string
	Role   signup.Role
	Email  string
}

// SubmissionFailedPayload is emitted when the submitter reports a failure.
type SubmissionFailedPayload struct {
	FormID  string
	Role    signup.Role
	Message string
}

// OAuthStartedPayload is emitted when a federated sign-up starts.
type OAuthStartedPayload struct {
	FormID string
}

// OAuthFinishedPayload is emitted when a federated sign-up ends. Message is
// empty on success.
type OAuthFinishedPayload struct {
	FormID  string
	Message string
}

// Succeeded reports whether the federated sign-up completed without error.
func (p OAuthFinishedPayload) Succeeded() bool { return p.Message == "" }

// NotificationPublishedPayload carries a user-facing notice.
type NotificationPublishedPayload struct {
	Level   notify.Level
	Message string
}
