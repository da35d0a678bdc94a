package vfs

import (
	"context"
	"path"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// node holds the state shared by File and Directory.
//
// The descriptor is owned exclusively by the node. closed guards the release
// so that Close and Remove hand the descriptor back to the driver exactly once.
type node struct {
	path       string
	kind       Kind
	descriptor Descriptor
	driver     Driver
	base       zerolog.Logger
	log        zerolog.Logger
	closed     atomic.Bool
}

func (n *node) init(p string, kind Kind, d Descriptor, driver Driver, log zerolog.Logger) {
	n.path = p
	n.kind = kind
	n.descriptor = d
	n.driver = driver
	n.base = log
	n.log = log.With().Str("path", p).Str("kind", kind.String()).Logger()
}

// Path returns the path the node was opened with.
func (n *node) Path() string {
	return n.path
}

// Kind reports whether the node is a file or a directory.
func (n *node) Kind() Kind {
	return n.kind
}

// ensureOpen fails with fs.ErrClosed once the descriptor has been released.
func (n *node) ensureOpen(op string) error {
	if n.closed.Load() {
		return closedError(op, n.path)
	}
	return nil
}

// require fails with a permission error when allowed is false. The denial is
// logged before the error is returned; the driver is never consulted.
func (n *node) require(allowed bool, op string, capability Capability, message string) error {
	if allowed {
		return nil
	}
	n.log.Warn().
		Str("op", op).
		Str("capability", string(capability)).
		Msg("capability denied")
	return permissionDenied(op, n.path, capability, message)
}

// release hands the descriptor back to the driver through fn. A second close
// is a no-op, but a remove that finds the node already released fails with
// fs.ErrClosed since nothing was removed. If fn fails the node stays open.
func (n *node) release(ctx context.Context, op string, fn func(context.Context, Descriptor) error) error {
	if !n.closed.CompareAndSwap(false, true) {
		if op == "remove" {
			return closedError(op, n.path)
		}
		return nil
	}
	if n.descriptor == nil {
		return nil
	}
	if err := fn(ctx, n.descriptor); err != nil {
		n.closed.Store(false)
		return err
	}
	n.log.Debug().Str("op", op).Msg("descriptor released")
	return nil
}

// joinPath resolves name beneath dir. The name is cleaned as if it were
// absolute, so ".." segments cannot climb above dir.
func joinPath(dir, name string) string {
	return path.Join(dir, path.Clean("/"+name))
}
