package errs

import (
	"errors"
	"io/fs"
	"net/http"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no such key", minio.ErrorResponse{Code: "NoSuchKey"}, fs.ErrNotExist},
		{"no such bucket", minio.ErrorResponse{Code: "NoSuchBucket"}, fs.ErrNotExist},
		{"not found status", minio.ErrorResponse{StatusCode: http.StatusNotFound}, fs.ErrNotExist},
		{"access denied", minio.ErrorResponse{Code: "AccessDenied"}, fs.ErrPermission},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Translate(tt.err), tt.want)
		})
	}

	assert.NoError(t, Translate(nil))

	boom := errors.New("connection reset")
	err := Translate(boom)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "minio:")
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap("stat", "/a", nil))

	err := Wrap("stat", "/a", minio.ErrorResponse{Code: "NoSuchKey"})
	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "stat", pathErr.Op)
	assert.Equal(t, "/a", pathErr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
