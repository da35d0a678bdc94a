package vfs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmgilman/go/vfs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFileSystem_ReadOnlyScenario walks the read-only root scenario: reads and
// listings succeed while every write-class call is denied.
func TestFileSystem_ReadOnlyScenario(t *testing.T) {
	ctx := context.Background()
	raw := []vfs.DirEntry{
		{Name: "x", Kind: vfs.KindDirectory},
		{Name: "notes.md", Kind: vfs.KindFile},
	}
	m := newMockDriver([]byte("content"), raw)
	fsys := vfs.New(m, "/", vfs.Policy{Readable: true, Writable: false, Listable: true})

	f, err := fsys.File(ctx, "a.txt", vfs.ModeRead)
	require.NoError(t, err)
	assert.True(t, f.Readable())

	_, err = fsys.File(ctx, "a.txt", vfs.ModeWrite)
	require.Error(t, err)
	assert.True(t, vfs.IsPermissionDenied(err))

	sub, err := fsys.Directory(ctx, "sub")
	require.NoError(t, err)
	err = sub.Mkdir(ctx, "x")
	assert.True(t, vfs.IsPermissionDenied(err))

	sub, err = fsys.Directory(ctx, "sub")
	require.NoError(t, err)
	list, err := sub.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, raw, collect(t, list))
}

func TestFileSystem_New(t *testing.T) {
	m := newMockDriver(nil, nil)

	tests := []struct {
		root string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"/srv/data/", "/srv/data"},
		{"data", "data"},
	}

	for _, tt := range tests {
		t.Run(tt.root, func(t *testing.T) {
			fsys := vfs.New(m, tt.root, vfs.ReadOnly())
			assert.Equal(t, tt.want, fsys.Root())
			assert.Equal(t, vfs.ReadOnly(), fsys.Policy())
			assert.Same(t, m, fsys.Driver())
		})
	}

	// Constructing a filesystem opens nothing.
	assert.Zero(t, driverCalls(m))
}

func TestFileSystem_RootPolicyIsCeiling(t *testing.T) {
	ctx := context.Background()
	m := newMockDriver(nil, nil)
	fsys := vfs.New(m, "/", vfs.Policy{Readable: true})

	dir, err := fsys.Directory(ctx, "a/b")
	require.NoError(t, err)
	assert.False(t, dir.Writable())
	assert.False(t, dir.Listable())

	nested, err := dir.Directory(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, fsys.Policy(), nested.Policy())
}

func TestFileSystem_AuditLog(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.WarnLevel)

	m := newMockDriver(nil, nil)
	fsys := vfs.New(m, "/", vfs.ReadOnly(), vfs.WithLogger(logger))

	_, err := fsys.File(ctx, "secret.txt", vfs.ModeAppend)
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "warn", record["level"])
	assert.Equal(t, "capability denied", record["message"])
	assert.Equal(t, "open", record["op"])
	assert.Equal(t, "writable", record["capability"])
	assert.Equal(t, "/", record["path"])
	assert.Equal(t, "vfs", record["component"])
}

func TestFileSystem_DebugLog(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	m := newMockDriver(nil, nil)
	fsys := vfs.New(m, "/", vfs.FullAccess(), vfs.WithLogger(logger))

	f, err := fsys.File(ctx, "a.txt", vfs.ModeWrite)
	require.NoError(t, err)
	require.NoError(t, f.Close(ctx))

	out := buf.String()
	assert.Contains(t, out, `"message":"filesystem created"`)
	assert.Contains(t, out, `"message":"file opened"`)
	assert.Contains(t, out, `"message":"descriptor released"`)
	assert.Contains(t, out, `"path":"/a.txt"`)
	assert.Contains(t, out, `"mode":"w"`)
}
