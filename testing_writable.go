package libstream

import (
	"github.com/stretchr/testify/mock"
)

type mockWritable[T any] struct {
	mock.Mock

	tapWrite func(T)
}

func (m *mockWritable[T]) Write(chunk T) error {
	if m.tapWrite != nil {
		m.tapWrite(chunk)
	}
	args := m.Called(chunk)
	return args.Error(0)
}

func (m *mockWritable[T]) End(final ...T) error {
	args := m.Called(final)
	return args.Error(0)
}
