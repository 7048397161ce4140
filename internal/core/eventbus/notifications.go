package eventbus

import (
	"fmt"

	"github.com/colonyops/enroll/internal/core/notify"
	"github.com/colonyops/enroll/internal/core/signup"
)

// Notification messages shown after a submission cycle.
const (
	MsgAccountCreated = "Account created successfully!"
	MsgOAuthInitiated = "Google sign-up initiated!"
)

// NotificationRouter maps form events to user-facing notifications.
type NotificationRouter struct {
	bus *EventBus
}

// NewNotificationRouter constructs a router for event-to-notification mappings.
func NewNotificationRouter(bus *EventBus) *NotificationRouter {
	return &NotificationRouter{bus: bus}
}

// Register subscribes all supported event mappings.
func (r *NotificationRouter) Register() {
	if r == nil || r.bus == nil {
		return
	}

	r.bus.SubscribeSubmissionSucceeded(func(p SubmissionSucceededPayload) {
		r.notifyf(notify.LevelInfo, "%s", MsgAccountCreated)
	})

	r.bus.SubscribeSubmissionFailed(func(p SubmissionFailedPayload) {
		r.notifyf(notify.LevelError, "%s sign-up failed: %s", p.Role.Label(), p.Message)
	})

	r.bus.SubscribeSubmissionRejected(func(p SubmissionRejectedPayload) {
		r.notifyf(notify.LevelWarning, "%s (%d %s)", signup.MsgFixErrors, len(p.Errors), plural(len(p.Errors), "field", "fields"))
	})

	r.bus.SubscribeOAuthFinished(func(p OAuthFinishedPayload) {
		if p.Succeeded() {
			r.notifyf(notify.LevelInfo, "%s", MsgOAuthInitiated)
			return
		}
		r.notifyf(notify.LevelError, "%s", p.Message)
	})
}

func (r *NotificationRouter) notifyf(level notify.Level, format string, args ...any) {
	r.bus.PublishNotificationPublished(NotificationPublishedPayload{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
