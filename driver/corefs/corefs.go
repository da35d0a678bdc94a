// Package corefs adapts any core.FS provider to vfs.Driver.
//
// Optional operations are discovered with the core capability interfaces:
// Chmod needs core.MetadataFS, Symlink needs core.SymlinkFS and symlink
// resolution in Realpath needs both Lstat and Readlink. Anything the provider
// lacks fails with vfs.ErrUnsupported.
//
//	mem := billy.NewMemory()
//	d := corefs.New(mem, corefs.WithLogger(log))
//	fsys := vfs.New(d, "/", vfs.ReadOnly())
package corefs

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"syscall"

	"github.com/jmgilman/go/fs/core"
	"github.com/jmgilman/go/vfs"
	"github.com/jmgilman/go/vfs/internal/handles"
	"github.com/jmgilman/go/vfs/internal/resolve"
	"github.com/rs/zerolog"
)

// Driver implements vfs.Driver over a core.FS.
type Driver struct {
	fsys    core.FS
	handles *handles.Table[*state]
	opts    *options
	log     zerolog.Logger
}

type state struct {
	file   core.File
	cursor *handles.Cursor
}

// Option configures driver creation.
type Option func(*options)

type options struct {
	logger   zerolog.Logger
	filePerm fs.FileMode
	dirPerm  fs.FileMode
}

// WithLogger sets the logger used for descriptor lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFilePerm sets the permission bits for newly created files.
func WithFilePerm(perm fs.FileMode) Option {
	return func(o *options) {
		o.filePerm = perm
	}
}

// WithDirPerm sets the permission bits for directories created by Mkdir.
func WithDirPerm(perm fs.FileMode) Option {
	return func(o *options) {
		o.dirPerm = perm
	}
}

// New creates a driver over fsys.
func New(fsys core.FS, opts ...Option) *Driver {
	o := &options{
		logger:   zerolog.Nop(),
		filePerm: 0o644,
		dirPerm:  0o755,
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Driver{
		fsys:    fsys,
		handles: handles.New[*state](),
		opts:    o,
		log: o.logger.With().
			Str("component", "driver.corefs").
			Str("fs_type", fsys.Type().String()).
			Logger(),
	}
}

// NewChroot creates a driver over the subtree of fsys rooted at dir.
func NewChroot(fsys core.FS, dir string, opts ...Option) (*Driver, error) {
	sub, err := fsys.Chroot(dir)
	if err != nil {
		return nil, err
	}
	return New(sub, opts...), nil
}

// Unwrap returns the underlying provider.
func (d *Driver) Unwrap() core.FS {
	return d.fsys
}

// OpenHandles returns the number of descriptors that have not been closed or
// removed.
func (d *Driver) OpenHandles() int {
	return d.handles.Len()
}

// Stat returns metadata for the node at p.
func (d *Driver) Stat(_ context.Context, p string) (vfs.Stats, error) {
	p = normalize(p)
	info, err := d.fsys.Stat(p)
	if err != nil {
		return vfs.Stats{}, pathError("stat", p, err)
	}
	return vfs.Stats{
		Name:    info.Name(),
		Size:    info.Size(),
		Mode:    info.Mode(),
		ModTime: info.ModTime(),
	}, nil
}

// Chmod changes the mode of the node at p. The provider must implement
// core.MetadataFS.
func (d *Driver) Chmod(_ context.Context, p string, mode fs.FileMode) error {
	p = normalize(p)
	mfs, ok := d.fsys.(core.MetadataFS)
	if !ok {
		return pathError("chmod", p, vfs.ErrUnsupported)
	}
	return pathError("chmod", p, mfs.Chmod(p, mode))
}

// Chown is not part of the core interfaces.
func (d *Driver) Chown(_ context.Context, p string, _, _ int) error {
	return pathError("chown", normalize(p), vfs.ErrUnsupported)
}

// OpenFile opens the file at p with the os flags that correspond to mode.
func (d *Driver) OpenFile(_ context.Context, p string, mode vfs.Mode) (vfs.Descriptor, error) {
	p = normalize(p)
	if !mode.Valid() {
		return nil, pathError("open", p, vfs.ErrInvalid)
	}
	if info, err := d.fsys.Stat(p); err == nil && info.IsDir() {
		return nil, pathError("open", p, syscall.EISDIR)
	}

	f, err := d.fsys.OpenFile(p, mode.Flag(), d.opts.filePerm)
	if err != nil {
		return nil, pathError("open", p, err)
	}

	h := d.handles.Open(vfs.KindFile, p, &state{file: f})
	d.log.Debug().Str("path", p).Str("mode", mode.String()).Str("handle", h.ID().String()).Msg("opened file")
	return h, nil
}

// OpenDir opens the directory at p. The listing is read on the first List
// pull.
func (d *Driver) OpenDir(_ context.Context, p string) (vfs.Descriptor, error) {
	p = normalize(p)
	info, err := d.fsys.Stat(p)
	if err != nil {
		return nil, pathError("opendir", p, err)
	}
	if !info.IsDir() {
		return nil, pathError("opendir", p, syscall.ENOTDIR)
	}

	cursor := handles.NewCursor(func(context.Context) ([]vfs.DirEntry, error) {
		dirEntries, err := d.fsys.ReadDir(p)
		if err != nil {
			return nil, pathError("readdir", p, err)
		}
		entries := make([]vfs.DirEntry, 0, len(dirEntries))
		for _, de := range dirEntries {
			kind := vfs.KindFile
			if de.IsDir() {
				kind = vfs.KindDirectory
			}
			entries = append(entries, vfs.DirEntry{Name: de.Name(), Kind: kind})
		}
		return entries, nil
	})

	h := d.handles.Open(vfs.KindDirectory, p, &state{cursor: cursor})
	d.log.Debug().Str("path", p).Str("handle", h.ID().String()).Msg("opened directory")
	return h, nil
}

// Read reads up to length bytes from the file behind fd.
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

// Write writes data to the file behind fd.
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

// List returns the entries of the directory behind dd.
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

// Mkdir creates the directory p. The parent must exist.
func (d *Driver) Mkdir(_ context.Context, p string) error {
	p = normalize(p)
	return pathError("mkdir", p, d.fsys.Mkdir(p, d.opts.dirPerm))
}

// Remove deletes the node behind desc and releases the descriptor. The
// descriptor stays valid if the node cannot be removed.
func (d *Driver) Remove(_ context.Context, desc vfs.Descriptor) error {
	_, h, err := d.handles.Get("remove", desc)
	if err != nil {
		return err
	}
	if err := d.fsys.Remove(h.Path()); err != nil {
		return pathError("remove", h.Path(), err)
	}
	st, _, err := d.handles.Release("remove", desc)
	if err != nil {
		return err
	}
	d.log.Debug().Str("path", h.Path()).Str("handle", h.ID().String()).Msg("removed")
	if st.file != nil {
		_ = st.file.Close()
	}
	return nil
}

// Close releases desc.
func (d *Driver) Close(_ context.Context, desc vfs.Descriptor) error {
	st, h, err := d.handles.Release("close", desc)
	if err != nil {
		return err
	}
	d.log.Debug().Str("path", h.Path()).Str("handle", h.ID().String()).Msg("closed")
	if st.file != nil {
		if err := st.file.Close(); err != nil {
			return pathError("close", h.Path(), err)
		}
	}
	return nil
}

// Rename moves oldPath to newPath. Moving a node onto itself or into its
// own subtree fails with EINVAL.
func (d *Driver) Rename(_ context.Context, oldPath, newPath string) error {
	oldPath, newPath = normalize(oldPath), normalize(newPath)
	if resolve.Within(oldPath, newPath) {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: syscall.EINVAL}
	}
	if err := d.fsys.Rename(oldPath, newPath); err != nil {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: unwrapPath(err)}
	}
	return nil
}

// Link is not part of the core interfaces.
func (d *Driver) Link(_ context.Context, target, p string) error {
	return &os.LinkError{Op: "link", Old: normalize(target), New: normalize(p), Err: vfs.ErrUnsupported}
}

// Symlink creates p as a symbolic link to target. The provider must
// implement core.SymlinkFS.
func (d *Driver) Symlink(_ context.Context, target, p string) error {
	p = normalize(p)
	sfs, ok := d.fsys.(core.SymlinkFS)
	if !ok {
		return &os.LinkError{Op: "symlink", Old: target, New: p, Err: vfs.ErrUnsupported}
	}
	if err := sfs.Symlink(target, p); err != nil {
		return &os.LinkError{Op: "symlink", Old: target, New: p, Err: unwrapPath(err)}
	}
	return nil
}

// Unlink removes the file or empty directory at p.
func (d *Driver) Unlink(_ context.Context, p string) error {
	p = normalize(p)
	return pathError("unlink", p, d.fsys.Remove(p))
}

// Realpath returns the cleaned absolute form of p with symbolic links
// resolved when the provider can read them. p must exist.
func (d *Driver) Realpath(_ context.Context, p string) (string, error) {
	if b, ok := d.fsys.(resolve.Backend); ok {
		return resolve.Realpath(b, p)
	}
	p = normalize(p)
	if _, err := d.fsys.Stat(p); err != nil {
		return "", pathError("realpath", p, err)
	}
	return p, nil
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

func normalize(p string) string {
	return path.Clean("/" + filepath.ToSlash(p))
}

// pathError wraps err in an *fs.PathError unless it already is one.
func pathError(op, p string, err error) error {
	if err == nil {
		return nil
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return err
	}
	return &fs.PathError{Op: op, Path: p, Err: err}
}

func unwrapPath(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

// Compile-time interface check.
var _ vfs.Driver = (*Driver)(nil)
