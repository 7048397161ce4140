package eventbus

// subscribeAs registers fn for event, dropping payloads of any other type.
func subscribeAs[T any](bus *EventBus, event Event, fn func(T)) {
	bus.subscribe(event, func(v any) {
		if p, ok := v.(T); ok {
			fn(p)
		}
	})
}

// PublishFormStateChanged enqueues a FormStateChanged event.
func (bus *EventBus) PublishFormStateChanged(p FormStateChangedPayload) { bus.send(EventFormStateChanged, p) }

// SubscribeFormStateChanged registers fn for FormStateChanged events.
func (bus *EventBus) SubscribeFormStateChanged(fn func(FormStateChangedPayload)) {
	subscribeAs(bus, EventFormStateChanged, fn)
}

// PublishNotificationPublished enqueues a NotificationPublished event.
func (bus *EventBus) PublishNotificationPublished(p NotificationPublishedPayload) { bus.send(EventNotificationPublished, p) }

// SubscribeNotificationPublished registers fn for NotificationPublished events.
func (bus *EventBus) SubscribeNotificationPublished(fn func(NotificationPublishedPayload)) {
	subscribeAs(bus, EventNotificationPublished, fn)
}

// PublishOAuthFinished enqueues an OAuthFinished event.
func (bus *EventBus) PublishOAuthFinished(p OAuthFinishedPayload) { bus.send(EventOAuthFinished, p) }

// SubscribeOAuthFinished registers fn for OAuthFinished events.
func (bus *EventBus) SubscribeOAuthFinished(fn func(OAuthFinishedPayload)) {
	subscribeAs(bus, EventOAuthFinished, fn)
}

// PublishOAuthStarted enqueues an OAuthStarted event.
func (bus *EventBus) PublishOAuthStarted(p OAuthStartedPayload) { bus.send(EventOAuthStarted, p) }

// SubscribeOAuthStarted registers fn for OAuthStarted events.
func (bus *EventBus) SubscribeOAuthStarted(fn func(OAuthStartedPayload)) {
	subscribeAs(bus, EventOAuthStarted, fn)
}

// PublishSubmissionFailed enqueues a SubmissionFailed event.
func (bus *EventBus) PublishSubmissionFailed(p SubmissionFailedPayload) { bus.send(EventSubmissionFailed, p) }

// SubscribeSubmissionFailed registers fn for SubmissionFailed events.
func (bus *EventBus) SubscribeSubmissionFailed(fn func(SubmissionFailedPayload)) {
	subscribeAs(bus, EventSubmissionFailed, fn)
}

// PublishSubmissionRejected enqueues a SubmissionRejected event.
func (bus *EventBus) PublishSubmissionRejected(p SubmissionRejectedPayload) { bus.send(EventSubmissionRejected, p) }

// SubscribeSubmissionRejected registers fn for SubmissionRejected events.
func (bus *EventBus) SubscribeSubmissionRejected(fn func(SubmissionRejectedPayload)) {
	subscribeAs(bus, EventSubmissionRejected, fn)
}

// PublishSubmissionStarted enqueues a SubmissionStarted event.
func (bus *EventBus) PublishSubmissionStarted(p SubmissionStartedPayload) { bus.send(EventSubmissionStarted, p) }

// SubscribeSubmissionStarted registers fn for SubmissionStarted events.
func (bus *EventBus) SubscribeSubmissionStarted(fn func(SubmissionStartedPayload)) {
	subscribeAs(bus, EventSubmissionStarted, fn)
}

// PublishSubmissionSucceeded enqueues a SubmissionSucceeded event.
func (bus *EventBus) PublishSubmissionSucceeded(p SubmissionSucceededPayload) { bus.send(EventSubmissionSucceeded, p) }

// SubscribeSubmissionSucceeded registers fn for SubmissionSucceeded events.
func (bus *EventBus) SubscribeSubmissionSucceeded(fn func(SubmissionSucceededPayload)) {
	subscribeAs(bus, EventSubmissionSucceeded, fn)
}
