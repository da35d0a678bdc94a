package minio

import (
	"context"
	"iter"
	"syscall"

	"github.com/jmgilman/go/vfs"
	"github.com/jmgilman/go/vfs/driver/minio/internal/errs"
	"github.com/jmgilman/go/vfs/driver/minio/internal/pathutil"
	"github.com/jmgilman/go/vfs/internal/handles"
	"github.com/minio/minio-go/v7"
)

// listing is the state of an open directory.
type listing struct {
	cursor *handles.Cursor
}

func (l *listing) release() error { return nil }

// OpenDir opens the directory at p. The prefix is listed on the first List
// pull, with a delimiter so only direct children are returned.
func (d *Driver) OpenDir(ctx context.Context, p string) (vfs.Descriptor, error) {
	p = pathutil.Normalize(p)
	st, err := d.Stat(ctx, p)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return nil, errs.PathError("opendir", p, syscall.ENOTDIR)
	}

	dirPrefix := pathutil.DirPrefix(d.key(p))
	cursor := handles.NewCursor(func(ctx context.Context) ([]vfs.DirEntry, error) {
		return d.readDir(ctx, p, dirPrefix)
	})

	h := d.handles.Open(vfs.KindDirectory, p, &listing{cursor: cursor})
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
	l, ok := st.(*listing)
	if !ok {
		return handles.ErrorSeq(errs.PathError("list", h.Path(), syscall.ENOTDIR))
	}
	return l.cursor.Seq(ctx)
}

func (d *Driver) readDir(ctx context.Context, p, dirPrefix string) ([]vfs.DirEntry, error) {
	var entries []vfs.DirEntry
	for object := range d.client.ListObjects(ctx, d.bucket, minio.ListObjectsOptions{
		Prefix: dirPrefix,
	}) {
		if object.Err != nil {
			return nil, errs.Wrap("readdir", p, object.Err)
		}

		name, isDir, ok := pathutil.Child(dirPrefix, object.Key)
		if !ok {
			continue
		}
		kind := vfs.KindFile
		if isDir {
			kind = vfs.KindDirectory
		}
		entries = append(entries, vfs.DirEntry{Name: name, Kind: kind})
	}
	return entries, nil
}
