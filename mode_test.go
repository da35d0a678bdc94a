package vfs_test

import (
	"os"
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode_Capabilities(t *testing.T) {
	tests := []struct {
		mode     vfs.Mode
		readable bool
		writable bool
	}{
		{vfs.ModeRead, true, false},
		{vfs.ModeWrite, false, true},
		{vfs.ModeReadWrite, true, true},
		{vfs.ModeReadWriteCreate, true, true},
		{vfs.ModeAppend, true, true},
		{vfs.ModeAppendCreate, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.True(t, tt.mode.Valid())
			assert.Equal(t, tt.readable, tt.mode.Readable())
			assert.Equal(t, tt.writable, tt.mode.Writable())
		})
	}
}

func TestMode_EveryModeGrantsSomething(t *testing.T) {
	require.Len(t, vfs.Modes(), 6)
	for _, m := range vfs.Modes() {
		assert.True(t, m.Readable() || m.Writable(), "mode %q grants nothing", m)
	}
}

func TestMode_Flag(t *testing.T) {
	tests := []struct {
		mode vfs.Mode
		want int
	}{
		{vfs.ModeRead, os.O_RDONLY},
		{vfs.ModeWrite, os.O_WRONLY | os.O_CREATE | os.O_TRUNC},
		{vfs.ModeReadWrite, os.O_RDWR},
		{vfs.ModeReadWriteCreate, os.O_RDWR | os.O_CREATE | os.O_TRUNC},
		{vfs.ModeAppend, os.O_RDWR | os.O_APPEND},
		{vfs.ModeAppendCreate, os.O_RDWR | os.O_APPEND | os.O_CREATE},
		{vfs.Mode("x"), -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.Flag())
		})
	}
}

func TestMode_Predicates(t *testing.T) {
	assert.True(t, vfs.ModeWrite.Truncates())
	assert.True(t, vfs.ModeReadWriteCreate.Truncates())
	assert.False(t, vfs.ModeAppendCreate.Truncates())

	assert.True(t, vfs.ModeAppendCreate.Creates())
	assert.False(t, vfs.ModeAppend.Creates())
	assert.False(t, vfs.ModeReadWrite.Creates())

	assert.True(t, vfs.ModeAppend.Appends())
	assert.False(t, vfs.ModeWrite.Appends())

	invalid := vfs.Mode("bogus")
	assert.False(t, invalid.Truncates())
	assert.False(t, invalid.Creates())
	assert.False(t, invalid.Appends())
	assert.False(t, invalid.Readable())
	assert.False(t, invalid.Writable())
}

func TestParseMode(t *testing.T) {
	for _, m := range vfs.Modes() {
		got, err := vfs.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := vfs.ParseMode(" a+ ")
	require.NoError(t, err)
	assert.Equal(t, vfs.ModeAppendCreate, got)

	_, err = vfs.ParseMode("rw")
	require.Error(t, err)
	assert.ErrorIs(t, err, vfs.ErrInvalid)
	assert.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))
	assert.False(t, platformerrors.IsRetryable(err))
}
