// Package errs translates MinIO responses into io/fs errors.
package errs

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/minio/minio-go/v7"
)

// Translate converts MinIO errors to io/fs sentinels where one applies.
// Other errors are wrapped with a "minio:" prefix.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NoSuchBucket", "NoSuchUpload":
		return fs.ErrNotExist
	case "AccessDenied":
		return fs.ErrPermission
	}
	if resp.StatusCode == http.StatusNotFound {
		return fs.ErrNotExist
	}

	return fmt.Errorf("minio: %w", err)
}

// PathError wraps err in an *fs.PathError. A nil err yields nil.
func PathError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &fs.PathError{Op: op, Path: path, Err: err}
}

// Wrap translates err and wraps the result in an *fs.PathError.
func Wrap(op, path string, err error) error {
	return PathError(op, path, Translate(err))
}
