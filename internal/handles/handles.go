// Package handles provides the descriptor table shared by the bundled drivers.
//
// Drivers hand out *Handle values as vfs.Descriptor and keep their per-handle
// state (an open billy.File, a listing cursor, a spooled S3 object) in a Table
// keyed by the handle's UUID. The table is safe for concurrent use.
package handles

import (
	"fmt"
	"io/fs"

	"github.com/google/uuid"
	"github.com/jmgilman/go/vfs"
	"github.com/puzpuzpuz/xsync/v4"
)

// Handle is the descriptor type returned by the bundled drivers.
type Handle struct {
	id   uuid.UUID
	kind vfs.Kind
	path string
}

// Kind implements vfs.Descriptor.
func (h *Handle) Kind() vfs.Kind { return h.kind }

// ID returns the handle's identity in its table.
func (h *Handle) ID() uuid.UUID { return h.id }

// Path returns the path the handle was opened for.
func (h *Handle) Path() string { return h.path }

// String implements fmt.Stringer.
func (h *Handle) String() string {
	return fmt.Sprintf("%s(%s)#%s", h.kind, h.path, h.id)
}

// Table maps live handles to driver state of type T.
type Table[T any] struct {
	entries *xsync.Map[uuid.UUID, entry[T]]
}

type entry[T any] struct {
	handle *Handle
	state  T
}

// New creates an empty table.
func New[T any]() *Table[T] {
	return &Table[T]{
		entries: xsync.NewMap[uuid.UUID, entry[T]](),
	}
}

// Open registers state under a fresh handle.
func (t *Table[T]) Open(kind vfs.Kind, path string, state T) *Handle {
	h := &Handle{id: uuid.New(), kind: kind, path: path}
	t.entries.Store(h.id, entry[T]{handle: h, state: state})
	return h
}

// Get returns the state registered for d. It fails with fs.ErrInvalid when d
// was not issued by this table and with fs.ErrClosed once d was released.
func (t *Table[T]) Get(op string, d vfs.Descriptor) (T, *Handle, error) {
	var zero T
	h, ok := d.(*Handle)
	if !ok || h == nil {
		return zero, nil, &fs.PathError{Op: op, Path: describe(d), Err: fs.ErrInvalid}
	}
	e, ok := t.entries.Load(h.id)
	if !ok || e.handle != h {
		return zero, h, &fs.PathError{Op: op, Path: h.path, Err: fs.ErrClosed}
	}
	return e.state, h, nil
}

// Release removes d from the table and returns its state. Releasing a handle
// twice fails with fs.ErrClosed.
func (t *Table[T]) Release(op string, d vfs.Descriptor) (T, *Handle, error) {
	var zero T
	h, ok := d.(*Handle)
	if !ok || h == nil {
		return zero, nil, &fs.PathError{Op: op, Path: describe(d), Err: fs.ErrInvalid}
	}
	e, ok := t.entries.LoadAndDelete(h.id)
	if !ok {
		return zero, h, &fs.PathError{Op: op, Path: h.path, Err: fs.ErrClosed}
	}
	return e.state, h, nil
}

// Len returns the number of live handles.
func (t *Table[T]) Len() int {
	return t.entries.Size()
}

// Range calls fn for each live handle until fn returns false.
func (t *Table[T]) Range(fn func(h *Handle, state T) bool) {
	t.entries.Range(func(_ uuid.UUID, e entry[T]) bool {
		return fn(e.handle, e.state)
	})
}

func describe(d vfs.Descriptor) string {
	if d == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", d)
}
