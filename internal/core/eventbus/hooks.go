package eventbus

import "sync"

// hooks holds observer callbacks for bus activity. They run on the
// publishing (or dispatching, for OnPanic) goroutine.
type hooks struct {
	mu          sync.RWMutex
	onPublish   []func(Event, any)
	onDrop      []func(Event, any)
	onSubscribe []func(Event)
	onPanic     []func(Event, any, any)
}

// OnPublish registers a hook that fires after an event is successfully enqueued.
func (bus *EventBus) OnPublish(fn func(Event, any)) {
	bus.hooks.mu.Lock()
	bus.hooks.onPublish = append(bus.hooks.onPublish, fn)
	bus.hooks.mu.Unlock()
}

// OnDrop registers a hook that fires when an event is dropped due to a full buffer.
func (bus *EventBus) OnDrop(fn func(Event, any)) {
	bus.hooks.mu.Lock()
	bus.hooks.onDrop = append(bus.hooks.onDrop, fn)
	bus.hooks.mu.Unlock()
}

// OnSubscribe registers a hook that fires after a subscriber is registered.
func (bus *EventBus) OnSubscribe(fn func(Event)) {
	bus.hooks.mu.Lock()
	bus.hooks.onSubscribe = append(bus.hooks.onSubscribe, fn)
	bus.hooks.mu.Unlock()
}

// OnPanic registers a hook that fires when a subscriber panics.
func (bus *EventBus) OnPanic(fn func(Event, any, any)) {
	bus.hooks.mu.Lock()
	bus.hooks.onPanic = append(bus.hooks.onPanic, fn)
	bus.hooks.mu.Unlock()
}

// send enqueues an event and fires hooks. Used by the typed Publish* methods.
func (bus *EventBus) send(event Event, payload any) {
	select {
	case bus.ch <- envelope{event: event, payload: payload}:
		bus.runOnPublish(event, payload)
	default:
		bus.runOnDrop(event, payload)
	}
}

// snapshot copies a hook slice under the read lock so hooks may register
// further hooks without deadlocking.
func snapshot[T any](mu *sync.RWMutex, fns *[]T) []T {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]T, len(*fns))
	copy(out, *fns)
	return out
}

func (bus *EventBus) runOnPublish(event Event, payload any) {
	for _, fn := range snapshot(&bus.hooks.mu, &bus.hooks.onPublish) {
		fn(event, payload)
	}
}

func (bus *EventBus) runOnDrop(event Event, payload any) {
	for _, fn := range snapshot(&bus.hooks.mu, &bus.hooks.onDrop) {
		fn(event, payload)
	}
}

func (bus *EventBus) runOnSubscribe(event Event) {
	for _, fn := range snapshot(&bus.hooks.mu, &bus.hooks.onSubscribe) {
		fn(event)
	}
}

// runOnPanic isolates hook panics so a faulty hook cannot kill the dispatcher.
func (bus *EventBus) runOnPanic(event Event, payload any, recovered any) {
	for _, fn := range snapshot(&bus.hooks.mu, &bus.hooks.onPanic) {
		func() {
			defer func() { recover() }() //nolint:errcheck
			fn(event, payload, recovered)
		}()
	}
}
