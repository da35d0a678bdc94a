package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"
	"syscall"

	"github.com/jmgilman/go/vfs"
	"github.com/jmgilman/go/vfs/driver/minio/internal/errs"
	"github.com/jmgilman/go/vfs/driver/minio/internal/pathutil"
	"github.com/jmgilman/go/vfs/internal/handles"
	"github.com/minio/minio-go/v7"
)

// object is the state of an open file.
//
// Files opened with vfs.ModeRead stream from GetObject. Every other mode
// spools the content in memory and uploads it on Close when it changed.
type object struct {
	mu     sync.Mutex
	d      *Driver
	path   string
	key    string
	mode   vfs.Mode
	stream *minio.Object
	buf    []byte
	pos    int
	dirty  bool
}

// OpenFile opens the object at p. Modes that create or truncate write the
// object immediately so that it is visible to Stat before Close.
func (d *Driver) OpenFile(ctx context.Context, p string, mode vfs.Mode) (vfs.Descriptor, error) {
	p = pathutil.Normalize(p)
	if !mode.Valid() {
		return nil, errs.PathError("open", p, fmt.Errorf("mode %q: %w", mode, vfs.ErrInvalid))
	}

	exists := true
	st, err := d.Stat(ctx, p)
	switch {
	case err == nil && st.IsDir():
		return nil, errs.PathError("open", p, syscall.EISDIR)
	case errors.Is(err, fs.ErrNotExist) && mode.Creates():
		exists = false
	case err != nil:
		return nil, err
	}

	obj := &object{d: d, path: p, key: d.key(p), mode: mode}
	switch {
	case mode == vfs.ModeRead:
		stream, err := d.client.GetObject(ctx, d.bucket, obj.key, minio.GetObjectOptions{})
		if err != nil {
			return nil, errs.Wrap("open", p, err)
		}
		obj.stream = stream
	case !exists || mode.Truncates():
		obj.dirty = true
		if err := obj.flush(ctx); err != nil {
			return nil, err
		}
	default:
		if err := obj.load(ctx); err != nil {
			return nil, err
		}
	}

	h := d.handles.Open(vfs.KindFile, p, obj)
	d.log.Debug().Str("path", p).Str("mode", mode.String()).Str("handle", h.ID().String()).Msg("opened file")
	return h, nil
}

// Read reads up to length bytes from the file behind fd. A negative length
// reads to the end of the file.
func (d *Driver) Read(_ context.Context, fd vfs.Descriptor, length int) ([]byte, error) {
	obj, h, err := d.file("read", fd)
	if err != nil {
		return nil, err
	}
	if !obj.mode.Readable() {
		return nil, errs.PathError("read", h.Path(), syscall.EBADF)
	}
	return obj.read(length)
}

// Write writes data at the current offset, or at the end of the spooled
// content in an append mode.
func (d *Driver) Write(_ context.Context, fd vfs.Descriptor, data []byte) error {
	obj, h, err := d.file("write", fd)
	if err != nil {
		return err
	}
	if obj.stream != nil || !obj.mode.Writable() {
		return errs.PathError("write", h.Path(), syscall.EBADF)
	}
	obj.write(data)
	return nil
}

func (d *Driver) file(op string, fd vfs.Descriptor) (*object, *handles.Handle, error) {
	st, h, err := d.handles.Get(op, fd)
	if err != nil {
		return nil, nil, err
	}
	obj, ok := st.(*object)
	if !ok {
		return nil, nil, errs.PathError(op, h.Path(), syscall.EISDIR)
	}
	return obj, h, nil
}

func (o *object) load(ctx context.Context) error {
	stream, err := o.d.client.GetObject(ctx, o.d.bucket, o.key, minio.GetObjectOptions{})
	if err != nil {
		return errs.Wrap("open", o.path, err)
	}
	defer func() { _ = stream.Close() }()

	data, err := io.ReadAll(stream)
	if err != nil {
		return errs.Wrap("open", o.path, err)
	}
	o.buf = data
	return nil
}

func (o *object) read(length int) ([]byte, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.stream != nil {
		data, err := handles.ReadN(o.stream, length)
		if err != nil && err != io.EOF {
			return data, errs.Wrap("read", o.path, err)
		}
		return data, err
	}

	remaining := len(o.buf) - o.pos
	switch {
	case length == 0:
		return []byte{}, nil
	case length < 0 || length > remaining:
		if length > 0 && remaining == 0 {
			return nil, io.EOF
		}
		length = remaining
	}

	data := make([]byte, length)
	copy(data, o.buf[o.pos:])
	o.pos += length
	return data, nil
}

func (o *object) write(data []byte) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.mode.Appends() {
		o.pos = len(o.buf)
	}
	if end := o.pos + len(data); end > len(o.buf) {
		o.buf = append(o.buf[:o.pos], make([]byte, end-o.pos)...)
	}
	copy(o.buf[o.pos:], data)
	o.pos += len(data)
	o.dirty = true
}

// flush uploads the spooled content if it changed since the last upload.
func (o *object) flush(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.dirty {
		return nil
	}
	_, err := o.d.client.PutObject(ctx, o.d.bucket, o.key, bytes.NewReader(o.buf), int64(len(o.buf)), minio.PutObjectOptions{})
	if err != nil {
		return errs.Wrap("write", o.path, err)
	}
	o.dirty = false
	return nil
}

func (o *object) release() error {
	if o.stream != nil {
		return o.stream.Close()
	}
	return nil
}
