package libstream

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeForwardsChunksAndEnd(t *testing.T) {
	r := NewReadable[string]()
	w := NewBufferWritable[string]()

	returned := Pipe[string](r, w)
	assert.Equal(t, Writable[string](w), returned)

	require.NoError(t, r.Push("a"))
	require.NoError(t, r.Push("b"))
	require.NoError(t, r.End())

	assert.Equal(t, []string{"a", "b"}, w.Chunks())
	assert.True(t, w.Ended())
}

func TestPipeCallOrder(t *testing.T) {
	r := NewReadable[string]()
	var calls []string

	w := &stubWritable[string]{
		WriteFunc: func(chunk string) error {
			calls = append(calls, "write:"+chunk)
			return nil
		},
		EndFunc: func(final ...string) error {
			calls = append(calls, "end")
			return nil
		},
	}

	Pipe[string](r, w)

	require.NoError(t, r.Push("a"))
	require.NoError(t, r.Push("b"))
	require.NoError(t, r.End())

	assert.Equal(t, []string{"write:a", "write:b", "end"}, calls)
}

func TestPipeWriteFailureReachesErrorListener(t *testing.T) {
	r := NewReadable[string]()
	boom := errors.New("boom")

	w := new(mockWritable[string])
	w.On("Write", "a").Return(nil)
	w.On("Write", "b").Return(boom)

	var got error
	r.OnError(func(err error) {
		got = err
	})

	Pipe[string](r, Writable[string](w))

	require.NoError(t, r.Push("a"))
	// The write failure surfaces within the dispatch of this push, to the
	// registered error listener. Push itself returns normally.
	require.NoError(t, r.Push("b"))

	assert.Equal(t, boom, got)
	w.AssertExpectations(t)
}

func TestPipeWriteFailureWithoutListenerPanicsOutOfPush(t *testing.T) {
	r := NewReadable[string]()
	boom := errors.New("boom")

	w := &stubWritable[string]{
		WriteFunc: func(string) error { return boom },
		EndFunc:   func(...string) error { return nil },
	}

	Pipe[string](r, w)

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)

		err, ok := recovered.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrUnhandledError))
		assert.True(t, errors.Is(err, boom))
	}()

	_ = r.Push("a")
	t.Fatal("expected the failed write to panic out of Push")
}

func TestPipeChainThroughPassThrough(t *testing.T) {
	src := NewReadable[string]()
	pt := NewPassThrough[string]()
	dst := NewBufferWritable[string]()

	Pipe[string](src, pt)
	Pipe[string](pt.Readable, dst)

	require.NoError(t, src.Push("a"))
	require.NoError(t, src.Push("b"))
	require.NoError(t, src.End())

	assert.Equal(t, []string{"a", "b"}, dst.Chunks())
	assert.True(t, dst.Ended())
	assert.True(t, pt.Ended())
}

func TestPassThroughWriteAfterEnd(t *testing.T) {
	pt := NewPassThrough[string]()

	require.NoError(t, pt.End("last"))

	err := pt.Write("x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWriteAfterEnd))

	err = pt.End()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWriteAfterEnd))
}

func TestPassThroughEndWritesFinalChunks(t *testing.T) {
	pt := NewPassThrough[string]()
	dst := NewBufferWritable[string]()

	Pipe[string](pt.Readable, dst)

	require.NoError(t, pt.Write("a"))
	require.NoError(t, pt.End("b"))

	assert.Equal(t, []string{"a", "b"}, dst.Chunks())
	assert.True(t, dst.Ended())
}
