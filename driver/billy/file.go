package billy

import (
	"context"
	"fmt"
	"io"
	"iter"
	"syscall"

	"github.com/jmgilman/go/vfs"
	"github.com/jmgilman/go/vfs/internal/handles"
)

// OpenFile opens the file at p with the os flags that correspond to mode.
func (d *Driver) OpenFile(_ context.Context, p string, mode vfs.Mode) (vfs.Descriptor, error) {
	p = normalize(p)
	if !mode.Valid() {
		return nil, pathError("open", p, fmt.Errorf("mode %q: %w", mode, vfs.ErrInvalid))
	}

	if info, err := d.bfs.Stat(p); err == nil && info.IsDir() {
		return nil, pathError("open", p, syscall.EISDIR)
	}

	f, err := d.bfs.OpenFile(p, mode.Flag(), d.cfg.filePerm)
	if err != nil {
		return nil, pathError("open", p, err)
	}

	h := d.handles.Open(vfs.KindFile, p, &state{file: f})
	d.log.Debug().Str("path", p).Str("mode", mode.String()).Str("handle", h.ID().String()).Msg("opened file")
	return h, nil
}

// Read reads up to length bytes from the file behind fd. A negative length
// reads to the end of the file.
func (d *Driver) Read(_ context.Context, fd vfs.Descriptor, length int) ([]byte, error) {
	st, h, err := d.file("read", fd)
	if err != nil {
		return nil, err
	}
	data, err := handles.ReadN(st.file, length)
	if err != nil && err != io.EOF {
		return data, pathError("read", h.Path(), err)
	}
	return data, err
}

// Write writes data to the file behind fd at its current offset, or at the
// end of the file when it was opened in an append mode.
func (d *Driver) Write(_ context.Context, fd vfs.Descriptor, data []byte) error {
	st, h, err := d.file("write", fd)
	if err != nil {
		return err
	}
	if _, err := st.file.Write(data); err != nil {
		return pathError("write", h.Path(), err)
	}
	return nil
}

// OpenDir opens the directory at p. The listing is read lazily on the first
// List pull.
func (d *Driver) OpenDir(_ context.Context, p string) (vfs.Descriptor, error) {
	p = normalize(p)
	info, err := d.bfs.Stat(p)
	if err != nil {
		return nil, pathError("opendir", p, err)
	}
	if !info.IsDir() {
		return nil, pathError("opendir", p, syscall.ENOTDIR)
	}

	cursor := handles.NewCursor(func(context.Context) ([]vfs.DirEntry, error) {
		infos, err := d.bfs.ReadDir(p)
		if err != nil {
			return nil, pathError("readdir", p, err)
		}
		entries := make([]vfs.DirEntry, 0, len(infos))
		for _, info := range infos {
			kind := vfs.KindFile
			if info.IsDir() {
				kind = vfs.KindDirectory
			}
			entries = append(entries, vfs.DirEntry{Name: info.Name(), Kind: kind})
		}
		return entries, nil
	})

	h := d.handles.Open(vfs.KindDirectory, p, &state{cursor: cursor})
	d.log.Debug().Str("path", p).Str("handle", h.ID().String()).Msg("opened directory")
	return h, nil
}

// List returns the entries of the directory behind dd. All sequences for one
// descriptor share a cursor.
func (d *Driver) List(ctx context.Context, dd vfs.Descriptor) iter.Seq2[vfs.DirEntry, error] {
	st, h, err := d.handles.Get("list", dd)
	if err != nil {
		return handles.ErrorSeq(err)
	}
	if st.cursor == nil {
		return handles.ErrorSeq(pathError("list", h.Path(), syscall.ENOTDIR))
	}
	return st.cursor.Seq(ctx)
}

func (d *Driver) file(op string, fd vfs.Descriptor) (*state, *handles.Handle, error) {
	st, h, err := d.handles.Get(op, fd)
	if err != nil {
		return nil, nil, err
	}
	if st.file == nil {
		return nil, nil, pathError(op, h.Path(), syscall.EISDIR)
	}
	return st, h, nil
}
