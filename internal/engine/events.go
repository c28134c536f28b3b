package engine

// ListenerID identifies a subscription returned by Subscribe.
type ListenerID uint64

type listener struct {
	id ListenerID
	fn func()
}

// Subscribe registers fn to be called after every committed change.
// Listeners run synchronously in registration order. A listener must not
// call mutating engine methods; such calls are rejected.
func (e *Engine) Subscribe(fn func()) ListenerID {
	e.nextListener++
	id := e.nextListener
	e.listeners = append(e.listeners, listener{id: id, fn: fn})
	return id
}

// Unsubscribe removes the listener with the given id.
func (e *Engine) Unsubscribe(id ListenerID) bool {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// notify calls every listener registered when notification starts.
func (e *Engine) notify() {
	if len(e.listeners) == 0 {
		return
	}
	snapshot := make([]listener, len(e.listeners))
	copy(snapshot, e.listeners)

	e.notifying = true
	defer func() { e.notifying = false }()
	for _, l := range snapshot {
		l.fn()
	}
}

// guard rejects a mutating call made while listeners are running.
func (e *Engine) guard(op string) bool {
	if e.notifying {
		e.logger.Warn("rejected re-entrant mutation", "op", op)
		return false
	}
	return true
}
