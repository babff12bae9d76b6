package libstream

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrWriteAfterEnd  = errors.New("stream has already been ended")
	ErrStreamEnded    = errors.New("stream emitted its terminal end")
	ErrUnhandledError = errors.New("error event emitted with no listener")
)

// ErrUnhandledStreamError wraps the error delivered to a stream that had no
// error listener registered. It is the panic value raised by Fail in that
// case.
type ErrUnhandledStreamError struct {
	err   error
	event EventType
}

func (e ErrUnhandledStreamError) Error() string {
	return fmt.Sprintf("unhandled %s event: %s", e.event, e.err)
}

func (e ErrUnhandledStreamError) Unwrap() error { return e.err }

func (e ErrUnhandledStreamError) Is(target error) bool {
	return target == ErrUnhandledError
}

func WrapErrorUnhandledStream(err error) *ErrUnhandledStreamError {
	if err == nil {
		return nil
	}
	return &ErrUnhandledStreamError{
		err:   err,
		event: EventError,
	}
}
