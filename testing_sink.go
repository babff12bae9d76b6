package libstream

type stubWritable[T any] struct {
	WriteFunc func(chunk T) error
	EndFunc   func(final ...T) error
}

func (s *stubWritable[T]) Write(chunk T) error {
	return s.WriteFunc(chunk)
}

func (s *stubWritable[T]) End(final ...T) error {
	return s.EndFunc(final...)
}
