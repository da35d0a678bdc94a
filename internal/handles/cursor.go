package handles

import (
	"context"
	"io"
	"iter"
	"sync"

	"github.com/jmgilman/go/vfs"
)

// Cursor is a directory listing position shared by every sequence produced
// for one directory handle. The snapshot is taken on the first pull; entries
// consumed by one sequence are not produced by the next.
type Cursor struct {
	mu      sync.Mutex
	load    func(ctx context.Context) ([]vfs.DirEntry, error)
	entries []vfs.DirEntry
	loaded  bool
	pos     int
}

// NewCursor creates a cursor that calls load once to snapshot the listing.
func NewCursor(load func(ctx context.Context) ([]vfs.DirEntry, error)) *Cursor {
	return &Cursor{load: load}
}

// Next returns the next entry. ok is false once the listing is exhausted.
func (c *Cursor) Next(ctx context.Context) (entry vfs.DirEntry, ok bool, err error) {
	if err := ctx.Err(); err != nil {
		return vfs.DirEntry{}, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		entries, err := c.load(ctx)
		if err != nil {
			return vfs.DirEntry{}, false, err
		}
		c.entries = entries
		c.loaded = true
	}

	if c.pos >= len(c.entries) {
		return vfs.DirEntry{}, false, nil
	}
	entry = c.entries[c.pos]
	c.pos++
	return entry, true, nil
}

// Seq adapts the cursor to a sequence. A failure is yielded once and ends the
// sequence.
func (c *Cursor) Seq(ctx context.Context) iter.Seq2[vfs.DirEntry, error] {
	return func(yield func(vfs.DirEntry, error) bool) {
		for {
			entry, ok, err := c.Next(ctx)
			if err != nil {
				yield(vfs.DirEntry{}, err)
				return
			}
			if !ok {
				return
			}
			if !yield(entry, nil) {
				return
			}
		}
	}
}

// ErrorSeq returns a sequence that yields err and ends.
func ErrorSeq(err error) iter.Seq2[vfs.DirEntry, error] {
	return func(yield func(vfs.DirEntry, error) bool) {
		yield(vfs.DirEntry{}, err)
	}
}

// ReadN reads from r with driver Read semantics: a negative length reads to
// the end, zero reads nothing, and a positive length returns at most length
// bytes or io.EOF when nothing is left.
func ReadN(r io.Reader, length int) ([]byte, error) {
	switch {
	case length < 0:
		return io.ReadAll(r)
	case length == 0:
		return []byte{}, nil
	}

	buf := make([]byte, length)
	n, err := io.ReadFull(r, buf)
	switch err {
	case nil:
		return buf, nil
	case io.ErrUnexpectedEOF:
		return buf[:n], nil
	case io.EOF:
		return nil, io.EOF
	default:
		return buf[:n], err
	}
}
