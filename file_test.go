package vfs_test

import (
	"context"
	"errors"
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_ReadOnlyMode(t *testing.T) {
	ctx := context.Background()
	m := newMockDriver([]byte("hello"), nil)
	f := openFile(t, m, "a.txt", vfs.ModeRead)

	assert.True(t, f.Readable())
	assert.False(t, f.Writable())
	assert.Equal(t, "/a.txt", f.Path())
	assert.Equal(t, vfs.KindFile, f.Kind())
	assert.Equal(t, vfs.ModeRead, f.Mode())

	data, err := f.Read(ctx, vfs.ReadAll)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	err = f.Write(ctx, []byte("x"))
	require.Error(t, err)
	assert.True(t, vfs.IsPermissionDenied(err))

	err = f.WriteString(ctx, "x")
	assert.True(t, vfs.IsPermissionDenied(err))

	err = f.Remove(ctx)
	assert.True(t, vfs.IsPermissionDenied(err))

	assert.Empty(t, m.WriteCalls(), "denied write must not reach the driver")
	assert.Empty(t, m.RemoveCalls(), "denied remove must not reach the driver")
}

func TestFile_WritableModes(t *testing.T) {
	writable := []vfs.Mode{
		vfs.ModeWrite,
		vfs.ModeReadWrite,
		vfs.ModeReadWriteCreate,
		vfs.ModeAppend,
		vfs.ModeAppendCreate,
	}

	for _, mode := range writable {
		t.Run(mode.String(), func(t *testing.T) {
			ctx := context.Background()
			m := newMockDriver([]byte("data"), nil)
			f := openFile(t, m, "a.txt", mode)

			require.NoError(t, f.Write(ctx, []byte("bytes")))
			require.NoError(t, f.WriteString(ctx, "text"))

			calls := m.WriteCalls()
			require.Len(t, calls, 2)
			assert.Equal(t, []byte("bytes"), calls[0].Data)
			assert.Equal(t, []byte("text"), calls[1].Data)

			_, err := f.Read(ctx, 2)
			if mode == vfs.ModeWrite {
				require.Error(t, err)
				assert.True(t, vfs.IsPermissionDenied(err))
				assert.Empty(t, m.ReadCalls())
			} else {
				require.NoError(t, err)
				require.Len(t, m.ReadCalls(), 1)
				assert.Equal(t, 2, m.ReadCalls()[0].Length)
			}

			require.NoError(t, f.Remove(ctx))
			assert.Len(t, m.RemoveCalls(), 1)
		})
	}
}

func TestFile_CloseAlwaysAllowed(t *testing.T) {
	for _, mode := range vfs.Modes() {
		t.Run(mode.String(), func(t *testing.T) {
			m := newMockDriver(nil, nil)
			f := openFile(t, m, "a.txt", mode)

			require.NoError(t, f.Close(context.Background()))
			assert.Len(t, m.CloseCalls(), 1)
		})
	}
}

func TestFile_ReleasesDescriptorOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("double close", func(t *testing.T) {
		m := newMockDriver(nil, nil)
		f := openFile(t, m, "a.txt", vfs.ModeRead)

		require.NoError(t, f.Close(ctx))
		require.NoError(t, f.Close(ctx))
		assert.Len(t, m.CloseCalls(), 1)
	})

	t.Run("close after remove", func(t *testing.T) {
		m := newMockDriver(nil, nil)
		f := openFile(t, m, "a.txt", vfs.ModeWrite)

		require.NoError(t, f.Remove(ctx))
		require.NoError(t, f.Close(ctx))
		assert.Len(t, m.RemoveCalls(), 1)
		assert.Empty(t, m.CloseCalls())
	})

	t.Run("use after close", func(t *testing.T) {
		m := newMockDriver([]byte("x"), nil)
		f := openFile(t, m, "a.txt", vfs.ModeReadWrite)
		require.NoError(t, f.Close(ctx))

		_, err := f.Read(ctx, vfs.ReadAll)
		assert.ErrorIs(t, err, vfs.ErrClosed)
		assert.ErrorIs(t, f.Write(ctx, []byte("x")), vfs.ErrClosed)
		assert.ErrorIs(t, f.Remove(ctx), vfs.ErrClosed)
		assert.Empty(t, m.ReadCalls())
		assert.Empty(t, m.WriteCalls())
	})
}

func TestFile_FailedReleaseKeepsNodeOpen(t *testing.T) {
	ctx := context.Background()
	m := newMockDriver([]byte("x"), nil)
	boom := errors.New("device busy")
	failures := 1
	m.CloseFunc = func(_ context.Context, _ vfs.Descriptor) error {
		if failures > 0 {
			failures--
			return boom
		}
		return nil
	}
	f := openFile(t, m, "a.txt", vfs.ModeRead)

	err := f.Close(ctx)
	require.ErrorIs(t, err, boom)

	_, err = f.Read(ctx, vfs.ReadAll)
	require.NoError(t, err, "node must stay open after a failed close")

	require.NoError(t, f.Close(ctx))
	assert.Len(t, m.CloseCalls(), 2)
}

func TestFile_DriverFailurePassesThrough(t *testing.T) {
	ctx := context.Background()
	m := newMockDriver(nil, nil)
	boom := errors.New("disk on fire")
	m.WriteFunc = func(_ context.Context, _ vfs.Descriptor, _ []byte) error {
		return boom
	}
	f := openFile(t, m, "a.txt", vfs.ModeWrite)

	err := f.Write(ctx, []byte("x"))
	assert.Same(t, boom, err)
	assert.False(t, vfs.IsPermissionDenied(err))

	// The node is unchanged by a failed call.
	assert.True(t, f.Writable())
	require.NoError(t, f.Close(ctx))
}

func TestFile_PermissionErrorShape(t *testing.T) {
	m := newMockDriver(nil, nil)
	f := openFile(t, m, "dir/a.txt", vfs.ModeRead)

	err := f.Write(context.Background(), []byte("x"))
	require.Error(t, err)

	assert.ErrorIs(t, err, vfs.ErrPermission)
	assert.Equal(t, platformerrors.CodeForbidden, platformerrors.GetCode(err))
	assert.False(t, platformerrors.IsRetryable(err))

	var platformErr platformerrors.PlatformError
	require.True(t, platformerrors.As(err, &platformErr))
	assert.Equal(t, "write", platformErr.Context()["op"])
	assert.Equal(t, "/dir/a.txt", platformErr.Context()["path"])
	assert.Equal(t, "writable", platformErr.Context()["capability"])
}

func TestFile_Narrowing(t *testing.T) {
	m := newMockDriver(nil, nil)

	r := openFile(t, m, "r.txt", vfs.ModeRead)
	_, ok := vfs.AsReadableFile(r)
	assert.True(t, ok)
	_, ok = vfs.AsWritableFile(r)
	assert.False(t, ok)
	_, ok = vfs.AsReadWriteFile(r)
	assert.False(t, ok)

	w := openFile(t, m, "w.txt", vfs.ModeWrite)
	_, ok = vfs.AsReadableFile(w)
	assert.False(t, ok)
	wf, ok := vfs.AsWritableFile(w)
	require.True(t, ok)
	require.NoError(t, wf.WriteString(context.Background(), "x"))

	rw := openFile(t, m, "rw.txt", vfs.ModeAppend)
	_, ok = vfs.AsReadWriteFile(rw)
	assert.True(t, ok)

	_, ok = vfs.AsReadableFile(nil)
	assert.False(t, ok)
}
