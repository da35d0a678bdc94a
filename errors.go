package vfs

import (
	"fmt"
	"io/fs"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/core"
)

var (
	// ErrPermission is matched by every capability violation.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrInvalid is matched by invalid modes and other malformed arguments.
	// Re-exported from io/fs for convenience.
	ErrInvalid = fs.ErrInvalid

	// ErrClosed is returned when a node is used after Close or Remove.
	// Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed

	// ErrNotExist is returned by drivers when a node does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned by drivers when a node already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrUnsupported is returned by drivers for operations their backend
	// cannot perform (hard links on S3, for example).
	ErrUnsupported = core.ErrUnsupported
)

// Capability names a node flag that gates a class of operations.
type Capability string

const (
	// CapabilityRead gates reads and opening children.
	CapabilityRead Capability = "readable"
	// CapabilityWrite gates writes, creation and removal.
	CapabilityWrite Capability = "writable"
	// CapabilityList gates directory enumeration.
	CapabilityList Capability = "listable"
)

// permissionDenied builds the error returned when a capability check fails.
// The result carries CodeForbidden and wraps a *fs.PathError around
// fs.ErrPermission.
func permissionDenied(op, path string, capability Capability, message string) error {
	return platformerrors.WrapWithContext(
		&fs.PathError{Op: op, Path: path, Err: fs.ErrPermission},
		platformerrors.CodeForbidden,
		message,
		map[string]interface{}{
			"op":         op,
			"path":       path,
			"capability": string(capability),
		},
	)
}

// invalidModeError builds the error returned for a value outside the Mode
// enumeration.
func invalidModeError(token string) error {
	return platformerrors.Wrap(
		fmt.Errorf("mode %q: %w", token, fs.ErrInvalid),
		platformerrors.CodeInvalidInput,
		"invalid open mode",
	)
}

// closedError reports use of a node after it was closed or removed.
func closedError(op, path string) error {
	return &fs.PathError{Op: op, Path: path, Err: fs.ErrClosed}
}

// IsPermissionDenied reports whether err is a capability violation raised by
// this package.
func IsPermissionDenied(err error) bool {
	return platformerrors.GetCode(err) == platformerrors.CodeForbidden &&
		platformerrors.Is(err, fs.ErrPermission)
}
