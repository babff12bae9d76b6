package libstream

import (
	"sync"

	"github.com/pkg/errors"
)

type (
	// emitter is the narrow surface streams need from the event registry.
	emitter[K comparable, V any] interface {
		On(K, callback[V])
		Emit(K, V) bool
		ListenerCount(K) int
	}

	// Readable is a stream-like source. It is driven externally: the I/O
	// layer producing the data calls Push once per chunk and End after the
	// last one, and the Readable announces them to its listeners as data
	// and end events, dispatched synchronously in registration order.
	Readable[T any] struct {
		events emitter[EventType, Event[T]]

		lock  sync.Mutex
		ended bool
	}
)

// NewReadable creates a new Readable and returns a pointer to it.
func NewReadable[T any]() *Readable[T] {
	return &Readable[T]{
		events: NewEmitter[EventType, Event[T]](),
	}
}

// OnData registers a listener invoked once per pushed chunk.
func (r *Readable[T]) OnData(fn func(chunk T)) {
	r.events.On(EventData, func(ev Event[T]) {
		fn(ev.Chunk)
	})
}

// OnEnd registers a listener invoked when the stream ends.
func (r *Readable[T]) OnEnd(fn func()) {
	r.events.On(EventEnd, func(Event[T]) {
		fn()
	})
}

// OnError registers a listener for the stream's error events. Registering at
// least one error listener is what keeps Fail from panicking.
func (r *Readable[T]) OnError(fn func(err error)) {
	r.events.On(EventError, func(ev Event[T]) {
		fn(ev.Err)
	})
}

// Push delivers one chunk to the stream, synchronously dispatching a data
// event. It does not return until every data listener has run. Pushing into
// an ended stream fails with ErrStreamEnded: data is never emitted after end.
func (r *Readable[T]) Push(chunk T) error {
	r.lock.Lock()
	if r.ended {
		r.lock.Unlock()
		return errors.Wrap(ErrStreamEnded, "push")
	}
	r.lock.Unlock()

	r.events.Emit(EventData, newDataEvent(chunk))
	return nil
}

// End marks the stream as finished and dispatches the terminal end event.
// The end event is emitted exactly once; ending twice fails with
// ErrStreamEnded.
func (r *Readable[T]) End() error {
	r.lock.Lock()
	if r.ended {
		r.lock.Unlock()
		return errors.Wrap(ErrStreamEnded, "end")
	}
	r.ended = true
	r.lock.Unlock()

	r.events.Emit(EventEnd, newEndEvent[T]())
	return nil
}

// Fail dispatches an error event to the stream's error listeners. An error
// delivered to a stream with no error listener is fatal: Fail panics with
// the wrapped error instead of silently dropping it, so the failure
// propagates out of the call that triggered it.
func (r *Readable[T]) Fail(err error) {
	if err == nil {
		return
	}

	if r.events.ListenerCount(EventError) == 0 {
		panic(WrapErrorUnhandledStream(err))
	}

	r.events.Emit(EventError, newErrorEvent[T](err))
}

// Ended reports whether End has been called.
func (r *Readable[T]) Ended() bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.ended
}
