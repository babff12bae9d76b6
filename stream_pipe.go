package libstream

// Pipe connects a Readable to a Writable: every chunk the Readable announces
// is forwarded to the Writable through Write, and the Readable's end is
// forwarded as End. The Writable is returned to allow chaining.
//
// A failed Write is not retried. The error is handed to the Readable's Fail,
// so it surfaces synchronously within the dispatch of the triggering data
// event: to the Readable's error listeners if any are registered, otherwise
// as a panic unwinding out of the Push call that delivered the chunk.
func Pipe[T any](r *Readable[T], w Writable[T]) Writable[T] {
	r.OnData(func(chunk T) {
		if err := w.Write(chunk); err != nil {
			r.Fail(err)
		}
	})

	r.OnEnd(func() {
		if err := w.End(); err != nil {
			r.Fail(err)
		}
	})

	return w
}
