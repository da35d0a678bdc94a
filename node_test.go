package vfs

import (
	"context"
	"errors"
	"io/fs"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDescriptor struct{}

func (stubDescriptor) Kind() Kind { return KindFile }

func newTestNode() *node {
	n := &node{}
	n.init("/f.txt", KindFile, stubDescriptor{}, nil, zerolog.Nop())
	return n
}

func TestNode_ReleaseAfterClose(t *testing.T) {
	ctx := context.Background()
	calls := 0
	fn := func(context.Context, Descriptor) error {
		calls++
		return nil
	}

	n := newTestNode()
	require.NoError(t, n.release(ctx, "close", fn))
	assert.Equal(t, 1, calls)

	assert.NoError(t, n.release(ctx, "close", fn), "a second close is a no-op")

	err := n.release(ctx, "remove", fn)
	require.ErrorIs(t, err, fs.ErrClosed)
	var pe *fs.PathError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "remove", pe.Op)
	assert.Equal(t, "/f.txt", pe.Path)
	assert.Equal(t, 1, calls, "the driver is released exactly once")
}

func TestNode_ReleaseFailureKeepsOpen(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	n := newTestNode()
	err := n.release(ctx, "remove", func(context.Context, Descriptor) error { return boom })
	require.ErrorIs(t, err, boom)
	require.NoError(t, n.ensureOpen("read"))

	require.NoError(t, n.release(ctx, "remove", func(context.Context, Descriptor) error { return nil }))
	assert.ErrorIs(t, n.ensureOpen("read"), fs.ErrClosed)
}

func TestNode_ConcurrentCloseAndRemove(t *testing.T) {
	ctx := context.Background()

	for range 50 {
		var mu sync.Mutex
		calls := 0
		fn := func(context.Context, Descriptor) error {
			mu.Lock()
			defer mu.Unlock()
			calls++
			return nil
		}

		n := newTestNode()
		var wg sync.WaitGroup
		var closeErr, removeErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			closeErr = n.release(ctx, "close", fn)
		}()
		go func() {
			defer wg.Done()
			removeErr = n.release(ctx, "remove", fn)
		}()
		wg.Wait()

		assert.NoError(t, closeErr)
		if removeErr != nil {
			assert.ErrorIs(t, removeErr, fs.ErrClosed)
		}
		assert.Equal(t, 1, calls)
	}
}
