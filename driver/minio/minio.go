package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
	"syscall"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/vfs"
	"github.com/jmgilman/go/vfs/driver/minio/internal/errs"
	"github.com/jmgilman/go/vfs/driver/minio/internal/pathutil"
	"github.com/jmgilman/go/vfs/internal/handles"
	"github.com/jmgilman/go/vfs/internal/resolve"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	defaultRenameConcurrency = 10
	fileMode                 = fs.FileMode(0o644)
	dirMode                  = fs.ModeDir | 0o755
)

// Driver implements vfs.Driver for MinIO/S3-compatible storage.
//
// Directories are key prefixes. Mkdir writes an empty "key/" marker object
// so that empty directories can be opened and listed.
type Driver struct {
	client            *minio.Client
	bucket            string
	prefix            string
	renameConcurrency int
	handles           *handles.Table[handle]
	log               zerolog.Logger
}

// handle is the per-descriptor state: *object for files, *listing for
// directories.
type handle interface {
	release() error
}

// Option configures driver creation.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger sets the logger used for descriptor lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates a MinIO-backed driver.
// Returns an error if the configuration is invalid or the client cannot be
// created. New does not contact the server.
func New(cfg Config, opts ...Option) (*Driver, error) {
	if err := cfg.validate(); err != nil {
		return nil, platformerrors.Wrap(err, platformerrors.CodeInvalidConfig, "invalid minio config")
	}

	o := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(o)
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, platformerrors.Wrap(err, platformerrors.CodeInvalidConfig, "failed to create minio client")
		}
	}

	concurrency := cfg.MaxRenameConcurrency
	if concurrency == 0 {
		concurrency = defaultRenameConcurrency
	}

	return &Driver{
		client:            client,
		bucket:            cfg.Bucket,
		prefix:            pathutil.NormalizePrefix(cfg.Prefix),
		renameConcurrency: concurrency,
		handles:           handles.New[handle](),
		log: o.logger.With().
			Str("component", "driver.minio").
			Str("bucket", cfg.Bucket).
			Logger(),
	}, nil
}

// Client returns the underlying MinIO client.
func (d *Driver) Client() *minio.Client {
	return d.client
}

// OpenHandles returns the number of descriptors that have not been closed or
// removed.
func (d *Driver) OpenHandles() int {
	return d.handles.Len()
}

func (d *Driver) key(p string) string {
	return pathutil.Key(d.prefix, p)
}

// Stat returns metadata for the object at p. A path with no object but with
// objects beneath it is reported as a directory.
func (d *Driver) Stat(ctx context.Context, p string) (vfs.Stats, error) {
	p = pathutil.Normalize(p)
	key := d.key(p)

	if p != "/" {
		info, err := d.client.StatObject(ctx, d.bucket, key, minio.StatObjectOptions{})
		if err == nil {
			return vfs.Stats{
				Name:    path.Base(p),
				Size:    info.Size,
				Mode:    fileMode,
				ModTime: info.LastModified,
			}, nil
		}
		if tr := errs.Translate(err); !errors.Is(tr, fs.ErrNotExist) {
			return vfs.Stats{}, errs.PathError("stat", p, tr)
		}
	}

	first, ok, err := d.first(ctx, pathutil.DirPrefix(key))
	if err != nil {
		return vfs.Stats{}, errs.Wrap("stat", p, err)
	}
	if !ok && p != "/" {
		return vfs.Stats{}, errs.PathError("stat", p, fs.ErrNotExist)
	}
	return vfs.Stats{
		Name:    path.Base(p),
		Mode:    dirMode,
		ModTime: first.LastModified,
	}, nil
}

// first returns the first object stored under dirPrefix.
func (d *Driver) first(ctx context.Context, dirPrefix string) (minio.ObjectInfo, bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for object := range d.client.ListObjects(ctx, d.bucket, minio.ListObjectsOptions{
		Prefix:    dirPrefix,
		Recursive: true,
		MaxKeys:   1,
	}) {
		if object.Err != nil {
			return minio.ObjectInfo{}, false, object.Err
		}
		return object, true, nil
	}
	return minio.ObjectInfo{}, false, nil
}

// isEmptyDir reports whether nothing but the directory marker exists under
// dirPrefix.
func (d *Driver) isEmptyDir(ctx context.Context, dirPrefix string) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for object := range d.client.ListObjects(ctx, d.bucket, minio.ListObjectsOptions{
		Prefix:    dirPrefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return false, object.Err
		}
		if object.Key != dirPrefix {
			return false, nil
		}
	}
	return true, nil
}

// Chmod is not supported by object storage.
func (d *Driver) Chmod(_ context.Context, p string, _ fs.FileMode) error {
	return errs.PathError("chmod", pathutil.Normalize(p), vfs.ErrUnsupported)
}

// Chown is not supported by object storage.
func (d *Driver) Chown(_ context.Context, p string, _, _ int) error {
	return errs.PathError("chown", pathutil.Normalize(p), vfs.ErrUnsupported)
}

// Mkdir writes the directory marker for p. Parent directories are implicit.
func (d *Driver) Mkdir(ctx context.Context, p string) error {
	p = pathutil.Normalize(p)
	if p == "/" {
		return errs.PathError("mkdir", p, fs.ErrExist)
	}
	if _, err := d.Stat(ctx, p); err == nil {
		return errs.PathError("mkdir", p, fs.ErrExist)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	marker := pathutil.DirPrefix(d.key(p))
	_, err := d.client.PutObject(ctx, d.bucket, marker, bytes.NewReader(nil), 0, minio.PutObjectOptions{
		ContentType: "application/x-directory",
	})
	return errs.Wrap("mkdir", p, err)
}

// Remove deletes the node behind desc and releases the descriptor. Files are
// deleted without uploading pending writes. Directories must be empty.
func (d *Driver) Remove(ctx context.Context, desc vfs.Descriptor) error {
	_, h, err := d.handles.Get("remove", desc)
	if err != nil {
		return err
	}
	if h.Kind() == vfs.KindDirectory {
		err = d.removeDir(ctx, "remove", h.Path())
	} else {
		err = d.removeObject(ctx, "remove", h.Path())
	}
	if err != nil {
		return err
	}

	st, _, err := d.handles.Release("remove", desc)
	if err != nil {
		return err
	}
	d.log.Debug().Str("path", h.Path()).Str("handle", h.ID().String()).Msg("removed")
	_ = st.release()
	return nil
}

func (d *Driver) removeObject(ctx context.Context, op, p string) error {
	err := d.client.RemoveObject(ctx, d.bucket, d.key(p), minio.RemoveObjectOptions{})
	return errs.Wrap(op, p, err)
}

func (d *Driver) removeDir(ctx context.Context, op, p string) error {
	if p == "/" {
		return errs.PathError(op, p, fs.ErrPermission)
	}
	marker := pathutil.DirPrefix(d.key(p))
	empty, err := d.isEmptyDir(ctx, marker)
	if err != nil {
		return errs.Wrap(op, p, err)
	}
	if !empty {
		return errs.PathError(op, p, syscall.ENOTEMPTY)
	}
	return errs.Wrap(op, p, d.client.RemoveObject(ctx, d.bucket, marker, minio.RemoveObjectOptions{}))
}

// Close releases desc. Files opened in a writable mode upload their content
// when it changed; if the upload fails the descriptor stays open.
func (d *Driver) Close(ctx context.Context, desc vfs.Descriptor) error {
	st, h, err := d.handles.Get("close", desc)
	if err != nil {
		return err
	}
	if obj, ok := st.(*object); ok {
		if err := obj.flush(ctx); err != nil {
			return err
		}
	}

	st, _, err = d.handles.Release("close", desc)
	if err != nil {
		return err
	}
	d.log.Debug().Str("path", h.Path()).Str("handle", h.ID().String()).Msg("closed")
	return st.release()
}

// Rename moves oldPath to newPath. Directories are moved by copying every
// object beneath them in parallel, then deleting the originals in a batch.
//
// Moving a node onto itself or into its own subtree fails with EINVAL. The
// operation is not atomic. A failure during the delete phase leaves
// objects at both locations.
func (d *Driver) Rename(ctx context.Context, oldPath, newPath string) error {
	oldPath, newPath = pathutil.Normalize(oldPath), pathutil.Normalize(newPath)
	if resolve.Within(oldPath, newPath) {
		return linkError("rename", oldPath, newPath, syscall.EINVAL)
	}
	oldKey, newKey := d.key(oldPath), d.key(newPath)

	st, err := d.Stat(ctx, oldPath)
	if err != nil {
		return linkError("rename", oldPath, newPath, err)
	}
	if st.IsFile() {
		src := minio.CopySrcOptions{Bucket: d.bucket, Object: oldKey}
		dst := minio.CopyDestOptions{Bucket: d.bucket, Object: newKey}
		if _, err := d.client.CopyObject(ctx, dst, src); err != nil {
			return linkError("rename", oldPath, newPath, errs.Translate(err))
		}
		if err := d.client.RemoveObject(ctx, d.bucket, oldKey, minio.RemoveObjectOptions{}); err != nil {
			return linkError("rename", oldPath, newPath, errs.Translate(err))
		}
		return nil
	}

	copied, err := d.parallelCopy(ctx, pathutil.DirPrefix(oldKey), pathutil.DirPrefix(newKey))
	if err != nil {
		return linkError("rename", oldPath, newPath, errs.Translate(err))
	}

	toDelete := make(chan minio.ObjectInfo, len(copied))
	for _, key := range copied {
		toDelete <- minio.ObjectInfo{Key: key}
	}
	close(toDelete)

	for rerr := range d.client.RemoveObjects(ctx, d.bucket, toDelete, minio.RemoveObjectsOptions{}) {
		if rerr.Err != nil {
			return linkError("rename", oldPath, newPath, errs.Translate(rerr.Err))
		}
	}
	return nil
}

// parallelCopy copies every object under oldPrefix to newPrefix using a
// bounded worker pool. It returns the keys that were copied.
func (d *Driver) parallelCopy(ctx context.Context, oldPrefix, newPrefix string) ([]string, error) {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(d.renameConcurrency)

	var mu sync.Mutex
	var copied []string

	for object := range d.client.ListObjects(egCtx, d.bucket, minio.ListObjectsOptions{
		Prefix:    oldPrefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			_ = eg.Wait()
			return copied, object.Err
		}

		objectKey := object.Key
		eg.Go(func() error {
			newKey := newPrefix + strings.TrimPrefix(objectKey, oldPrefix)
			src := minio.CopySrcOptions{Bucket: d.bucket, Object: objectKey}
			dst := minio.CopyDestOptions{Bucket: d.bucket, Object: newKey}
			if _, err := d.client.CopyObject(egCtx, dst, src); err != nil {
				return fmt.Errorf("copy object %s to %s: %w", objectKey, newKey, err)
			}

			mu.Lock()
			copied = append(copied, objectKey)
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return copied, err
	}
	return copied, nil
}

// Link is not supported by object storage.
func (d *Driver) Link(_ context.Context, target, p string) error {
	return linkError("link", pathutil.Normalize(target), pathutil.Normalize(p), vfs.ErrUnsupported)
}

// Symlink is not supported by object storage.
func (d *Driver) Symlink(_ context.Context, target, p string) error {
	return linkError("symlink", target, pathutil.Normalize(p), vfs.ErrUnsupported)
}

// Unlink removes the object at p, or the marker of the empty directory p.
func (d *Driver) Unlink(ctx context.Context, p string) error {
	p = pathutil.Normalize(p)
	st, err := d.Stat(ctx, p)
	if err != nil {
		return err
	}
	if st.IsDir() {
		return d.removeDir(ctx, "unlink", p)
	}
	return d.removeObject(ctx, "unlink", p)
}

// Realpath returns the normalized form of p. Object storage has no links, so
// this only checks that p exists.
func (d *Driver) Realpath(ctx context.Context, p string) (string, error) {
	p = pathutil.Normalize(p)
	if _, err := d.Stat(ctx, p); err != nil {
		return "", err
	}
	return p, nil
}

func linkError(op, oldPath, newPath string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &os.LinkError{Op: op, Old: oldPath, New: newPath, Err: err}
}

// Compile-time interface check.
var _ vfs.Driver = (*Driver)(nil)
