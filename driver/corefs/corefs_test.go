package corefs

import (
	"bytes"
	"context"
	"io/fs"
	"syscall"
	"testing"

	fsbilly "github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/vfs"
	"github.com/jmgilman/go/vfs/vfstest"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linkingFS adds core.SymlinkFS and Lstat to the memory provider by reaching
// through to its billy filesystem.
type linkingFS struct {
	*fsbilly.MemoryFS
}

func (l linkingFS) Symlink(oldname, newname string) error {
	return l.Unwrap().Symlink(oldname, newname)
}

func (l linkingFS) Readlink(name string) (string, error) {
	return l.Unwrap().Readlink(name)
}

func (l linkingFS) Lstat(name string) (fs.FileInfo, error) {
	return l.Unwrap().Lstat(name)
}

// TestMemoryProvider_Conformance runs the conformance suite against the
// plain memory provider, which has no links or metadata support.
func TestMemoryProvider_Conformance(t *testing.T) {
	vfstest.TestSuiteWithConfig(t, func() vfs.Driver {
		return New(fsbilly.NewMemory())
	}, vfstest.Config{})
}

// TestSymlinkProvider_Conformance runs the suite against a provider that
// implements core.SymlinkFS.
func TestSymlinkProvider_Conformance(t *testing.T) {
	vfstest.TestSuite(t, func() vfs.Driver {
		return New(linkingFS{fsbilly.NewMemory()})
	})
}

func TestDriver_Unwrap(t *testing.T) {
	mem := fsbilly.NewMemory()
	d := New(mem)
	assert.Same(t, mem, d.Unwrap())
}

func TestNewChroot(t *testing.T) {
	ctx := context.Background()
	mem := fsbilly.NewMemory()
	require.NoError(t, mem.MkdirAll("/tenant/docs", 0o755))
	require.NoError(t, mem.WriteFile("/tenant/docs/a.txt", []byte("alpha"), 0o644))

	d, err := NewChroot(mem, "/tenant")
	require.NoError(t, err)

	fd, err := d.OpenFile(ctx, "/docs/a.txt", vfs.ModeRead)
	require.NoError(t, err)
	data, err := d.Read(ctx, fd, vfs.ReadAll)
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(data))
	require.NoError(t, d.Close(ctx, fd))
}

func TestDriver_KindMismatch(t *testing.T) {
	ctx := context.Background()
	d := New(fsbilly.NewMemory())

	dd, err := d.OpenDir(ctx, "/")
	require.NoError(t, err)
	_, err = d.Read(ctx, dd, vfs.ReadAll)
	assert.ErrorIs(t, err, syscall.EISDIR)
	assert.ErrorIs(t, d.Write(ctx, dd, []byte("x")), syscall.EISDIR)

	fd, err := d.OpenFile(ctx, "/f.txt", vfs.ModeWrite)
	require.NoError(t, err)
	for _, err := range d.List(ctx, fd) {
		assert.ErrorIs(t, err, syscall.ENOTDIR)
	}

	_, err = d.OpenDir(ctx, "/f.txt")
	assert.ErrorIs(t, err, syscall.ENOTDIR)
	_, err = d.OpenFile(ctx, "/", vfs.ModeRead)
	assert.ErrorIs(t, err, syscall.EISDIR)
	_, err = d.OpenFile(ctx, "/g.txt", vfs.Mode("rw"))
	assert.ErrorIs(t, err, vfs.ErrInvalid)

	assert.Equal(t, 2, d.OpenHandles())
}

func TestDriver_UnsupportedMetadata(t *testing.T) {
	ctx := context.Background()
	d := New(fsbilly.NewMemory())

	assert.ErrorIs(t, d.Chown(ctx, "/x", 0, 0), vfs.ErrUnsupported)
	assert.ErrorIs(t, d.Chmod(ctx, "/x", 0o600), vfs.ErrUnsupported)
}

func TestDriver_RealpathWithoutLinks(t *testing.T) {
	ctx := context.Background()
	d := New(fsbilly.NewMemory())

	_, err := d.Realpath(ctx, "/missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDriver_Logging(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	d := New(fsbilly.NewMemory(), WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	dd, err := d.OpenDir(ctx, "/")
	require.NoError(t, err)
	require.NoError(t, d.Close(ctx, dd))

	out := buf.String()
	assert.Contains(t, out, `"component":"driver.corefs"`)
	assert.Contains(t, out, `"fs_type":"memory"`)
	assert.Contains(t, out, `"message":"opened directory"`)
	assert.Contains(t, out, `"message":"closed"`)
}
