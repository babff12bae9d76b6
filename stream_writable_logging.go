package libstream

// loggingWritable decorates a Writable, logging every write and end before
// delegating. Failures are logged at error level and returned untouched.
type loggingWritable[T any] struct {
	logger Logger
	inner  Writable[T]
}

func (w *loggingWritable[T]) Write(chunk T) error {
	w.logger.Debugf("write chunk %v", chunk)

	if err := w.inner.Write(chunk); err != nil {
		w.logger.Errorf("write failed: %s", err)
		return err
	}
	return nil
}

func (w *loggingWritable[T]) End(final ...T) error {
	w.logger.Debugf("end with %d final chunks", len(final))

	if err := w.inner.End(final...); err != nil {
		w.logger.Errorf("end failed: %s", err)
		return err
	}
	return nil
}

// NewLoggingWritable wraps a Writable so that every Write and End is logged
// through the given logger.
func NewLoggingWritable[T any](logger Logger, inner Writable[T]) Writable[T] {
	return &loggingWritable[T]{
		logger: logger.WithField("stream", "writable"),
		inner:  inner,
	}
}
