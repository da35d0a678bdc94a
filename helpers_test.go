package vfs_test

import (
	"context"
	"io"
	"iter"
	"testing"

	"github.com/jmgilman/go/vfs"
	"github.com/jmgilman/go/vfs/mocks"
	"github.com/stretchr/testify/require"
)

// testDescriptor is the opaque handle handed out by newMockDriver.
type testDescriptor struct {
	kind vfs.Kind
	path string
	mode vfs.Mode
}

func (d *testDescriptor) Kind() vfs.Kind { return d.kind }

// newMockDriver returns a DriverMock whose core methods succeed. Reads return
// content, listings return entries, and every call is recorded.
func newMockDriver(content []byte, entries []vfs.DirEntry) *mocks.DriverMock {
	return &mocks.DriverMock{
		OpenFileFunc: func(_ context.Context, path string, mode vfs.Mode) (vfs.Descriptor, error) {
			return &testDescriptor{kind: vfs.KindFile, path: path, mode: mode}, nil
		},
		OpenDirFunc: func(_ context.Context, path string) (vfs.Descriptor, error) {
			return &testDescriptor{kind: vfs.KindDirectory, path: path}, nil
		},
		ReadFunc: func(_ context.Context, _ vfs.Descriptor, length int) ([]byte, error) {
			if length >= 0 && length < len(content) {
				return content[:length], nil
			}
			if len(content) == 0 && length > 0 {
				return nil, io.EOF
			}
			return content, nil
		},
		WriteFunc: func(_ context.Context, _ vfs.Descriptor, _ []byte) error {
			return nil
		},
		ListFunc: func(_ context.Context, _ vfs.Descriptor) iter.Seq2[vfs.DirEntry, error] {
			return func(yield func(vfs.DirEntry, error) bool) {
				for _, e := range entries {
					if !yield(e, nil) {
						return
					}
				}
			}
		},
		MkdirFunc: func(_ context.Context, _ string) error {
			return nil
		},
		RemoveFunc: func(_ context.Context, _ vfs.Descriptor) error {
			return nil
		},
		CloseFunc: func(_ context.Context, _ vfs.Descriptor) error {
			return nil
		},
	}
}

// driverCalls counts every recorded call on the mock.
func driverCalls(m *mocks.DriverMock) int {
	return len(m.OpenFileCalls()) + len(m.OpenDirCalls()) + len(m.ReadCalls()) +
		len(m.WriteCalls()) + len(m.ListCalls()) + len(m.MkdirCalls()) +
		len(m.RemoveCalls()) + len(m.CloseCalls())
}

// openFile opens name on a full-access filesystem backed by m.
func openFile(t *testing.T, m *mocks.DriverMock, name string, mode vfs.Mode) *vfs.File {
	t.Helper()
	fsys := vfs.New(m, "/", vfs.FullAccess())
	f, err := fsys.File(context.Background(), name, mode)
	require.NoError(t, err)
	return f
}

// collect drains seq into a slice, failing the test on the first error.
func collect[T any](t *testing.T, seq iter.Seq2[T, error]) []T {
	t.Helper()
	var out []T
	for v, err := range seq {
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}
