package billy

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/go/vfs"
	"github.com/jmgilman/go/vfs/internal/handles"
	"github.com/jmgilman/go/vfs/internal/resolve"
	"github.com/rs/zerolog"
)

// Driver implements vfs.Driver over a billy.Filesystem.
type Driver struct {
	bfs     billy.Filesystem
	local   string
	handles *handles.Table[*state]
	cfg     *config
	log     zerolog.Logger
}

// state is the per-descriptor data kept in the handle table. Exactly one of
// file and cursor is set.
type state struct {
	file   billy.File
	cursor *handles.Cursor
}

// Option configures driver creation.
type Option func(*config)

type config struct {
	logger   zerolog.Logger
	filePerm fs.FileMode
	dirPerm  fs.FileMode
}

// WithLogger sets the logger used for descriptor lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithFilePerm sets the permission bits for newly created files.
// The default is 0o666 before umask.
func WithFilePerm(perm fs.FileMode) Option {
	return func(c *config) {
		c.filePerm = perm
	}
}

// WithDirPerm sets the permission bits for directories created by Mkdir.
// The default is 0o755.
func WithDirPerm(perm fs.FileMode) Option {
	return func(c *config) {
		c.dirPerm = perm
	}
}

// New creates a driver over an existing billy filesystem.
func New(bfs billy.Filesystem, opts ...Option) *Driver {
	cfg := &config{
		logger:   zerolog.Nop(),
		filePerm: 0o666,
		dirPerm:  0o755,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Driver{
		bfs:     bfs,
		handles: handles.New[*state](),
		cfg:     cfg,
		log:     cfg.logger.With().Str("component", "driver.billy").Logger(),
	}
}

// NewMemory creates a driver over an empty in-memory filesystem.
func NewMemory(opts ...Option) *Driver {
	return New(memfs.New(), opts...)
}

// NewLocal creates a driver over the local disk rooted at dir. Paths handed
// to the driver are resolved beneath dir and cannot escape it.
func NewLocal(dir string, opts ...Option) *Driver {
	d := New(osfs.New(dir), opts...)
	d.local = dir
	return d
}

// Unwrap returns the underlying billy.Filesystem.
func (d *Driver) Unwrap() billy.Filesystem {
	return d.bfs
}

// OpenHandles returns the number of descriptors that have not been closed or
// removed.
func (d *Driver) OpenHandles() int {
	return d.handles.Len()
}

// Stat returns metadata for the node at p, following symbolic links.
func (d *Driver) Stat(_ context.Context, p string) (vfs.Stats, error) {
	p = normalize(p)
	info, err := d.bfs.Stat(p)
	if err != nil {
		return vfs.Stats{}, pathError("stat", p, err)
	}
	return statsOf(info), nil
}

// Chmod changes the mode of the node at p. It is supported when the billy
// filesystem implements billy.Change or the driver was created by NewLocal.
func (d *Driver) Chmod(_ context.Context, p string, mode fs.FileMode) error {
	p = normalize(p)
	if ch, ok := d.bfs.(billy.Change); ok {
		return pathError("chmod", p, ch.Chmod(p, mode))
	}
	if d.local != "" {
		return pathError("chmod", p, unwrapPath(os.Chmod(d.hostPath(p), mode)))
	}
	return pathError("chmod", p, vfs.ErrUnsupported)
}

// Chown changes the owner of the node at p. Support follows Chmod.
func (d *Driver) Chown(_ context.Context, p string, uid, gid int) error {
	p = normalize(p)
	if ch, ok := d.bfs.(billy.Change); ok {
		return pathError("chown", p, ch.Chown(p, uid, gid))
	}
	if d.local != "" {
		return pathError("chown", p, unwrapPath(os.Chown(d.hostPath(p), uid, gid)))
	}
	return pathError("chown", p, vfs.ErrUnsupported)
}

// Mkdir creates the directory p. Unlike billy's MkdirAll it fails when p
// exists or when its parent does not.
func (d *Driver) Mkdir(_ context.Context, p string) error {
	p = normalize(p)
	if _, err := d.bfs.Lstat(p); err == nil {
		return pathError("mkdir", p, fs.ErrExist)
	}
	parent := path.Dir(p)
	if parent != "." && parent != "/" {
		info, err := d.bfs.Stat(parent)
		if err != nil {
			return pathError("mkdir", p, err)
		}
		if !info.IsDir() {
			return pathError("mkdir", p, syscall.ENOTDIR)
		}
	}
	if err := d.bfs.MkdirAll(p, d.cfg.dirPerm); err != nil {
		return pathError("mkdir", p, err)
	}
	return nil
}

// Remove deletes the node behind desc and releases the descriptor. The
// descriptor stays valid if the node cannot be removed.
func (d *Driver) Remove(_ context.Context, desc vfs.Descriptor) error {
	_, h, err := d.handles.Get("remove", desc)
	if err != nil {
		return err
	}
	if err := d.bfs.Remove(h.Path()); err != nil {
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
	if err := d.bfs.Rename(oldPath, newPath); err != nil {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: unwrapPath(err)}
	}
	return nil
}

// Link is not supported: billy has no hard links.
func (d *Driver) Link(_ context.Context, target, p string) error {
	return &os.LinkError{Op: "link", Old: normalize(target), New: normalize(p), Err: vfs.ErrUnsupported}
}

// Symlink creates p as a symbolic link to target.
func (d *Driver) Symlink(_ context.Context, target, p string) error {
	p = normalize(p)
	if err := d.bfs.Symlink(target, p); err != nil {
		return &os.LinkError{Op: "symlink", Old: target, New: p, Err: unwrapPath(err)}
	}
	return nil
}

// Unlink removes the file or empty directory at p without a descriptor.
func (d *Driver) Unlink(_ context.Context, p string) error {
	p = normalize(p)
	return pathError("unlink", p, d.bfs.Remove(p))
}

// Realpath resolves every symbolic link in p and returns the cleaned
// absolute path. Each component must exist.
func (d *Driver) Realpath(_ context.Context, p string) (string, error) {
	return resolve.Realpath(d.bfs, p)
}

func (d *Driver) hostPath(p string) string {
	return filepath.Join(d.local, filepath.FromSlash(path.Clean("/"+p)))
}

// normalize converts paths to a clean, slash separated, absolute form.
func normalize(p string) string {
	return path.Clean("/" + filepath.ToSlash(p))
}

// pathError wraps err in an *fs.PathError unless it already is one. billy
// backends are inconsistent here: memfs returns bare sentinels.
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

func statsOf(info fs.FileInfo) vfs.Stats {
	return vfs.Stats{
		Name:    info.Name(),
		Size:    info.Size(),
		Mode:    info.Mode(),
		ModTime: info.ModTime(),
	}
}

// Compile-time interface check.
var _ vfs.Driver = (*Driver)(nil)
