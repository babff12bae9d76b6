package libstream

import (
	"reflect"
	"sync"
	"sync/atomic"
)

type callback[V any] func(V)

type listener[V any] struct {
	fn  callback[V]
	ptr uintptr
}

// Emitter is a simple synchronous event emitter. It maps events (of type K)
// to ordered lists of listeners, which are invoked in registration order.
// Duplicate registrations of the same listener are allowed.
type Emitter[K comparable, V any] struct {
	listeners map[K][]listener[V]
	lock      sync.RWMutex
}

// NewEmitter creates a new Emitter and returns a pointer to it.
func NewEmitter[K comparable, V any]() *Emitter[K, V] {
	return &Emitter[K, V]{
		listeners: make(map[K][]listener[V]),
	}
}

// On registers a new listener for the given event. Listeners are appended,
// never reordered: dispatch order equals registration order.
func (e *Emitter[K, V]) On(event K, fn callback[V]) {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.listeners[event] = append(e.listeners[event], listener[V]{
		fn:  fn,
		ptr: reflect.ValueOf(fn).Pointer(),
	})
}

// Once registers a listener that is removed right before its first
// invocation. Subsequent emits of the same event will not reach it.
func (e *Emitter[K, V]) Once(event K, fn callback[V]) {
	var fired int32

	var wrapped callback[V]
	wrapped = func(data V) {
		if atomic.CompareAndSwapInt32(&fired, 0, 1) {
			e.off(event, reflect.ValueOf(wrapped).Pointer())
			fn(data)
		}
	}

	e.On(event, wrapped)
}

// Off removes the first occurrence of the given listener from the event,
// matched by function pointer. The relative order of the remaining listeners
// is preserved. It reports whether a listener was removed.
func (e *Emitter[K, V]) Off(event K, fn callback[V]) bool {
	if fn == nil {
		return false
	}
	return e.off(event, reflect.ValueOf(fn).Pointer())
}

func (e *Emitter[K, V]) off(event K, ptr uintptr) bool {
	e.lock.Lock()
	defer e.lock.Unlock()

	listeners := e.listeners[event]
	for i, l := range listeners {
		if l.ptr == ptr {
			e.listeners[event] = append(listeners[:i:i], listeners[i+1:]...)
			return true
		}
	}
	return false
}

// Emit triggers all listeners registered for the given event synchronously,
// in registration order, passing the event's data. It does not return until
// every listener has run. The listener list is snapshotted before dispatch,
// so listeners may register or remove listeners without affecting the
// current emit. It reports whether at least one listener ran; emitting an
// event nobody listens to is a no-op.
func (e *Emitter[K, V]) Emit(event K, data V) bool {
	e.lock.RLock()
	listeners := append([]listener[V]{}, e.listeners[event]...)
	e.lock.RUnlock()

	if len(listeners) == 0 {
		return false
	}

	for _, l := range listeners {
		l.fn(data)
	}

	return true
}

// ListenerCount returns the number of listeners currently registered for the
// given event.
func (e *Emitter[K, V]) ListenerCount(event K) int {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return len(e.listeners[event])
}

// Close removes all listeners for all events to prevent memory leaks.
func (e *Emitter[K, V]) Close() {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.listeners = make(map[K][]listener[V])
}
