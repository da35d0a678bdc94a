package billy

import (
	"bytes"
	"context"
	"io/fs"
	"syscall"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/jmgilman/go/vfs"
	"github.com/jmgilman/go/vfs/vfstest"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemoryDriver_Conformance runs the driver conformance suite against memfs.
func TestMemoryDriver_Conformance(t *testing.T) {
	vfstest.TestSuite(t, func() vfs.Driver {
		return NewMemory()
	})
}

// TestLocalDriver_Conformance runs the driver conformance suite against a
// temporary directory on disk.
func TestLocalDriver_Conformance(t *testing.T) {
	vfstest.TestSuiteWithConfig(t, func() vfs.Driver {
		return NewLocal(t.TempDir())
	}, vfstest.LocalConfig())
}

func TestDriver_Unwrap(t *testing.T) {
	bfs := memfs.New()
	d := New(bfs)
	assert.Same(t, bfs, d.Unwrap())
}

func TestDriver_OpenHandles(t *testing.T) {
	ctx := context.Background()
	d := NewMemory()

	fd, err := d.OpenFile(ctx, "/a.txt", vfs.ModeWrite)
	require.NoError(t, err)
	dd, err := d.OpenDir(ctx, "/")
	require.NoError(t, err)
	assert.Equal(t, 2, d.OpenHandles())

	require.NoError(t, d.Close(ctx, fd))
	require.NoError(t, d.Close(ctx, dd))
	assert.Zero(t, d.OpenHandles())
}

func TestDriver_ForeignDescriptor(t *testing.T) {
	ctx := context.Background()
	a := NewMemory()
	b := NewMemory()

	fd, err := a.OpenFile(ctx, "/a.txt", vfs.ModeWrite)
	require.NoError(t, err)

	err = b.Write(ctx, fd, []byte("x"))
	assert.ErrorIs(t, err, fs.ErrClosed)
	assert.Equal(t, 1, a.OpenHandles())
}

func TestDriver_KindMismatch(t *testing.T) {
	ctx := context.Background()
	d := NewMemory()

	dd, err := d.OpenDir(ctx, "/")
	require.NoError(t, err)
	_, err = d.Read(ctx, dd, vfs.ReadAll)
	assert.ErrorIs(t, err, syscall.EISDIR)

	fd, err := d.OpenFile(ctx, "/f.txt", vfs.ModeWrite)
	require.NoError(t, err)
	for _, err := range d.List(ctx, fd) {
		assert.ErrorIs(t, err, syscall.ENOTDIR)
	}
}

func TestDriver_OpenFileErrors(t *testing.T) {
	ctx := context.Background()
	d := NewMemory()
	require.NoError(t, d.Mkdir(ctx, "/dir"))

	_, err := d.OpenFile(ctx, "/dir", vfs.ModeRead)
	assert.ErrorIs(t, err, syscall.EISDIR)

	_, err = d.OpenFile(ctx, "/x", vfs.Mode("bogus"))
	assert.ErrorIs(t, err, vfs.ErrInvalid)

	_, err = d.OpenDir(ctx, "/dir/../missing")
	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "/missing", pathErr.Path)
}

func TestDriver_MkdirParentIsFile(t *testing.T) {
	ctx := context.Background()
	d := NewMemory()

	fd, err := d.OpenFile(ctx, "/file", vfs.ModeWrite)
	require.NoError(t, err)
	require.NoError(t, d.Close(ctx, fd))

	err = d.Mkdir(ctx, "/file/child")
	assert.ErrorIs(t, err, syscall.ENOTDIR)
}

func TestDriver_RealpathLoop(t *testing.T) {
	ctx := context.Background()
	d := NewMemory()

	require.NoError(t, d.Symlink(ctx, "/b", "/a"))
	require.NoError(t, d.Symlink(ctx, "/a", "/b"))

	_, err := d.Realpath(ctx, "/a")
	assert.ErrorIs(t, err, syscall.ELOOP)
}

func TestDriver_RealpathRelative(t *testing.T) {
	ctx := context.Background()
	d := NewMemory()

	require.NoError(t, d.Mkdir(ctx, "/dir"))
	fd, err := d.OpenFile(ctx, "/dir/real.txt", vfs.ModeWrite)
	require.NoError(t, err)
	require.NoError(t, d.Close(ctx, fd))
	require.NoError(t, d.Symlink(ctx, "real.txt", "/dir/rel.txt"))

	got, err := d.Realpath(ctx, "/dir/rel.txt")
	require.NoError(t, err)
	assert.Equal(t, "/dir/real.txt", got)
}

func TestDriver_RemoveFailureKeepsDescriptor(t *testing.T) {
	ctx := context.Background()
	d := NewMemory()

	require.NoError(t, d.Mkdir(ctx, "/full"))
	fd, err := d.OpenFile(ctx, "/full/a.txt", vfs.ModeWrite)
	require.NoError(t, err)
	require.NoError(t, d.Close(ctx, fd))

	dd, err := d.OpenDir(ctx, "/full")
	require.NoError(t, err)

	require.Error(t, d.Remove(ctx, dd), "memfs refuses to remove a non-empty directory")
	assert.Equal(t, 1, d.OpenHandles())
	require.NoError(t, d.Close(ctx, dd))
}

func TestDriver_Logging(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	d := NewMemory(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	fd, err := d.OpenFile(ctx, "/log.txt", vfs.ModeWrite)
	require.NoError(t, err)
	require.NoError(t, d.Close(ctx, fd))

	out := buf.String()
	assert.Contains(t, out, `"component":"driver.billy"`)
	assert.Contains(t, out, `"message":"opened file"`)
	assert.Contains(t, out, `"message":"closed"`)
}

func TestDriver_FilePerm(t *testing.T) {
	ctx := context.Background()
	d := NewLocal(t.TempDir(), WithFilePerm(0o600), WithDirPerm(0o700))

	require.NoError(t, d.Mkdir(ctx, "/private"))
	fd, err := d.OpenFile(ctx, "/private/key", vfs.ModeWrite)
	require.NoError(t, err)
	require.NoError(t, d.Close(ctx, fd))

	st, err := d.Stat(ctx, "/private/key")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o600), st.Mode.Perm())

	st, err = d.Stat(ctx, "/private")
	require.NoError(t, err)
	assert.True(t, st.IsDir())
}

func TestLocalDriver_MetadataErrorPath(t *testing.T) {
	ctx := context.Background()
	d := NewLocal(t.TempDir())

	tests := []struct {
		name string
		op   string
		call func() error
	}{
		{name: "chmod", op: "chmod", call: func() error { return d.Chmod(ctx, "/missing", 0o600) }},
		{name: "chown", op: "chown", call: func() error { return d.Chown(ctx, "/missing", 0, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.ErrorIs(t, err, fs.ErrNotExist)

			var pe *fs.PathError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.op, pe.Op)
			assert.Equal(t, "/missing", pe.Path, "the host directory is not exposed")
		})
	}
}
