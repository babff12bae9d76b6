package libstream

import (
	"io"
	"sync"

	"github.com/pkg/errors"
)

type (
	// Writable is a stream-like sink. It accepts chunks through explicit
	// Write calls until End closes it. The state machine is Open -> Ended,
	// terminal: once ended, both Write and End fail with ErrWriteAfterEnd.
	Writable[T any] interface {
		// Write accepts a chunk for output. It fails if the stream has
		// already been ended.
		Write(chunk T) error
		// End optionally writes final chunks, then marks the stream closed.
		End(final ...T) error
	}

	// Sink is the function a SinkWritable forwards every accepted chunk to.
	Sink[T any] func(chunk T) error

	// SinkWritable is a Writable backed by a sink function. Writes are
	// synchronous: a chunk has been consumed by the sink when Write returns.
	// Once End completes it emits a finish event.
	SinkWritable[T any] struct {
		events emitter[EventType, Event[T]]
		sink   Sink[T]

		lock  sync.Mutex
		ended bool
	}
)

// NewWritable creates a SinkWritable forwarding chunks to the given sink.
func NewWritable[T any](sink Sink[T]) *SinkWritable[T] {
	return &SinkWritable[T]{
		events: NewEmitter[EventType, Event[T]](),
		sink:   sink,
	}
}

func (w *SinkWritable[T]) Write(chunk T) error {
	w.lock.Lock()
	defer w.lock.Unlock()

	if w.ended {
		return errors.Wrap(ErrWriteAfterEnd, "write")
	}

	return w.sink(chunk)
}

func (w *SinkWritable[T]) End(final ...T) error {
	w.lock.Lock()

	if w.ended {
		w.lock.Unlock()
		return errors.Wrap(ErrWriteAfterEnd, "end")
	}

	for _, chunk := range final {
		if err := w.sink(chunk); err != nil {
			w.lock.Unlock()
			return err
		}
	}

	w.ended = true
	w.lock.Unlock()

	w.events.Emit(EventFinish, newFinishEvent[T]())
	return nil
}

// OnFinish registers a listener invoked once End has completed.
func (w *SinkWritable[T]) OnFinish(fn func()) {
	w.events.On(EventFinish, func(Event[T]) {
		fn()
	})
}

// Ended reports whether End has been called.
func (w *SinkWritable[T]) Ended() bool {
	w.lock.Lock()
	defer w.lock.Unlock()

	return w.ended
}

// BufferWritable is a Writable collecting every accepted chunk in memory.
type BufferWritable[T any] struct {
	*SinkWritable[T]

	lock   sync.Mutex
	chunks []T
}

// NewBufferWritable creates a BufferWritable and returns a pointer to it.
func NewBufferWritable[T any]() *BufferWritable[T] {
	b := &BufferWritable[T]{}
	b.SinkWritable = NewWritable(func(chunk T) error {
		b.lock.Lock()
		b.chunks = append(b.chunks, chunk)
		b.lock.Unlock()
		return nil
	})
	return b
}

// Chunks returns a copy of the chunks written so far, in write order.
func (b *BufferWritable[T]) Chunks() []T {
	b.lock.Lock()
	defer b.lock.Unlock()

	return append([]T{}, b.chunks...)
}

// NewWriterSink adapts a standard library io.Writer into a Writable. Short
// writes are reported as errors through io.ErrShortWrite.
func NewWriterSink(w io.Writer) *SinkWritable[[]byte] {
	return NewWritable(func(chunk []byte) error {
		n, err := w.Write(chunk)
		if err != nil {
			return errors.Wrap(err, "writer sink")
		}
		if n < len(chunk) {
			return io.ErrShortWrite
		}
		return nil
	})
}
