package handles

import (
	"io/fs"
	"sync"
	"testing"

	"github.com/jmgilman/go/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type foreign struct{}

func (foreign) Kind() vfs.Kind { return vfs.KindFile }

func TestTable_Lifecycle(t *testing.T) {
	table := New[string]()

	h := table.Open(vfs.KindFile, "/a.txt", "state")
	assert.Equal(t, vfs.KindFile, h.Kind())
	assert.Equal(t, "/a.txt", h.Path())
	assert.Equal(t, 1, table.Len())

	state, got, err := table.Get("read", h)
	require.NoError(t, err)
	assert.Equal(t, "state", state)
	assert.Same(t, h, got)

	state, _, err = table.Release("close", h)
	require.NoError(t, err)
	assert.Equal(t, "state", state)
	assert.Zero(t, table.Len())

	_, _, err = table.Get("read", h)
	assert.ErrorIs(t, err, fs.ErrClosed)

	_, _, err = table.Release("close", h)
	assert.ErrorIs(t, err, fs.ErrClosed)

	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "close", pathErr.Op)
	assert.Equal(t, "/a.txt", pathErr.Path)
}

func TestTable_ForeignDescriptor(t *testing.T) {
	table := New[int]()

	_, _, err := table.Get("read", foreign{})
	assert.ErrorIs(t, err, fs.ErrInvalid)

	_, _, err = table.Release("close", nil)
	assert.ErrorIs(t, err, fs.ErrInvalid)

	other := New[int]()
	h := other.Open(vfs.KindDirectory, "/", 1)
	_, _, err = table.Get("list", h)
	assert.ErrorIs(t, err, fs.ErrClosed, "a handle from another table is not live here")
}

func TestTable_UniqueHandles(t *testing.T) {
	table := New[int]()
	a := table.Open(vfs.KindFile, "/same", 1)
	b := table.Open(vfs.KindFile, "/same", 2)

	assert.NotEqual(t, a.ID(), b.ID())

	got, _, err := table.Get("read", b)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	seen := 0
	table.Range(func(_ *Handle, _ int) bool {
		seen++
		return true
	})
	assert.Equal(t, 2, seen)
}

func TestTable_ConcurrentRelease(t *testing.T) {
	table := New[int]()
	h := table.Open(vfs.KindFile, "/a", 1)

	var wg sync.WaitGroup
	var mu sync.Mutex
	released := 0
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := table.Release("close", h); err == nil {
				mu.Lock()
				released++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, released)
	assert.Zero(t, table.Len())
}
