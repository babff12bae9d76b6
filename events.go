package libstream

import "fmt"

type EventType string

const (
	// EventData is emitted by a Readable once per chunk, in arrival order.
	EventData EventType = "data"
	// EventEnd is emitted by a Readable exactly once, after the last chunk.
	EventEnd EventType = "end"
	// EventError is the reserved error signal. Delivering it to a stream
	// with no error listener is fatal.
	EventError EventType = "error"
	// EventFinish is emitted by a writable once End has completed.
	EventFinish EventType = "finish"
)

func (t EventType) Is(other EventType) bool {
	return t == other
}

func (t EventType) IsData() bool {
	return t.Is(EventData)
}

func (t EventType) IsEnd() bool {
	return t.Is(EventEnd)
}

func (t EventType) IsError() bool {
	return t.Is(EventError)
}

func (t EventType) IsFinish() bool {
	return t.Is(EventFinish)
}

// Event is the payload carried by stream events. Data events fill Chunk,
// error events fill Err, end and finish events carry neither.
type Event[T any] struct {
	Type  EventType
	Chunk T
	Err   error
}

func (e Event[T]) String() string {
	if e.Err != nil {
		return fmt.Sprintf("Event{type=%s,err=%s}", e.Type, e.Err)
	}
	return fmt.Sprintf("Event{type=%s,chunk=%v}", e.Type, e.Chunk)
}

func newDataEvent[T any](chunk T) Event[T] {
	return Event[T]{Type: EventData, Chunk: chunk}
}

func newEndEvent[T any]() Event[T] {
	return Event[T]{Type: EventEnd}
}

func newErrorEvent[T any](err error) Event[T] {
	return Event[T]{Type: EventError, Err: err}
}

func newFinishEvent[T any]() Event[T] {
	return Event[T]{Type: EventFinish}
}
