package libstream

import "github.com/pkg/errors"

// PassThrough is a Writable whose accepted chunks re-emit as Readable data
// events, and whose End re-emits as the Readable's end. It is the connector
// for multi-stage pipes: Pipe(src, pt) followed by Pipe(pt.Readable, dst)
// forwards src's chunks through pt into dst.
type PassThrough[T any] struct {
	*Readable[T]
}

// NewPassThrough creates a PassThrough and returns a pointer to it.
func NewPassThrough[T any]() *PassThrough[T] {
	return &PassThrough[T]{
		Readable: NewReadable[T](),
	}
}

func (p *PassThrough[T]) Write(chunk T) error {
	return asWriteAfterEnd(p.Push(chunk))
}

func (p *PassThrough[T]) End(final ...T) error {
	for _, chunk := range final {
		if err := p.Write(chunk); err != nil {
			return err
		}
	}

	return asWriteAfterEnd(p.Readable.End())
}

// asWriteAfterEnd translates the Readable's ErrStreamEnded into the Writable
// contract's ErrWriteAfterEnd. Both sides of a PassThrough share one state.
func asWriteAfterEnd(err error) error {
	if errors.Is(err, ErrStreamEnded) {
		return errors.Wrap(ErrWriteAfterEnd, "passthrough")
	}
	return err
}
