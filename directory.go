package vfs

import (
	"context"
	"iter"
)

// Directory is an open directory. Its readable, writable and listable flags
// are independent, fixed at construction, and inherited unchanged by every
// directory opened beneath it.
type Directory struct {
	node
	readable bool
	writable bool
	listable bool
}

func newDirectory(p string, d Descriptor, driver Driver, policy Policy, n *node) *Directory {
	dir := &Directory{
		readable: policy.Readable,
		writable: policy.Writable,
		listable: policy.Listable,
	}
	dir.init(p, KindDirectory, d, driver, n.base)
	return dir
}

// Readable reports whether Directory and File(name, ModeRead) are permitted.
func (d *Directory) Readable() bool {
	return d.readable
}

// Writable reports whether Mkdir, Remove and File with a writable mode are
// permitted.
func (d *Directory) Writable() bool {
	return d.writable
}

// Listable reports whether List, Files and Directories are permitted.
func (d *Directory) Listable() bool {
	return d.listable
}

// Policy returns the directory's capability flags.
func (d *Directory) Policy() Policy {
	return Policy{Readable: d.readable, Writable: d.writable, Listable: d.listable}
}

// Directory opens the child directory name. The child inherits this
// directory's readable, writable and listable flags.
func (d *Directory) Directory(ctx context.Context, name string) (*Directory, error) {
	if err := d.ensureOpen("opendir"); err != nil {
		return nil, err
	}
	if err := d.require(d.readable, "opendir", CapabilityRead, "directory is not readable"); err != nil {
		return nil, err
	}

	p := joinPath(d.path, name)
	desc, err := d.driver.OpenDir(ctx, p)
	if err != nil {
		return nil, err
	}

	child := newDirectory(p, desc, d.driver, d.Policy(), &d.node)
	child.log.Debug().Msg("directory opened")
	return child, nil
}

// File opens the child file name with mode. ModeRead requires the directory
// to be readable; every other mode requires it to be writable. The returned
// file's own flags come from mode, independent of the directory's flags.
func (d *Directory) File(ctx context.Context, name string, mode Mode) (*File, error) {
	if err := d.ensureOpen("open"); err != nil {
		return nil, err
	}
	if !mode.Valid() {
		return nil, invalidModeError(string(mode))
	}
	if mode == ModeRead {
		if err := d.require(d.readable, "open", CapabilityRead, "file is not available for reading"); err != nil {
			return nil, err
		}
	}
	if mode.Writable() {
		if err := d.require(d.writable, "open", CapabilityWrite, "file is not available for writing"); err != nil {
			return nil, err
		}
	}

	p := joinPath(d.path, name)
	desc, err := d.driver.OpenFile(ctx, p, mode)
	if err != nil {
		return nil, err
	}

	f := newFile(p, desc, d.driver, mode, d.base)
	f.log.Debug().Str("mode", mode.String()).Msg("file opened")
	return f, nil
}

// Mkdir creates the child directory name.
func (d *Directory) Mkdir(ctx context.Context, name string) error {
	if err := d.ensureOpen("mkdir"); err != nil {
		return err
	}
	if err := d.require(d.writable, "mkdir", CapabilityWrite, "directory is not writable"); err != nil {
		return err
	}
	return d.driver.Mkdir(ctx, joinPath(d.path, name))
}

// Remove deletes the directory and releases its descriptor.
func (d *Directory) Remove(ctx context.Context) error {
	if err := d.ensureOpen("remove"); err != nil {
		return err
	}
	if err := d.require(d.writable, "remove", CapabilityWrite, "directory is not writable"); err != nil {
		return err
	}
	return d.release(ctx, "remove", d.driver.Remove)
}

// Close releases the directory descriptor. Close is always permitted.
func (d *Directory) Close(ctx context.Context) error {
	return d.release(ctx, "close", d.driver.Close)
}

// List returns a sequence of the directory's entries. The listable check
// happens here, before any entry is produced. The sequence pulls from the
// driver's cursor; entries consumed by it are not produced again.
func (d *Directory) List(ctx context.Context) (iter.Seq2[DirEntry, error], error) {
	entries, err := d.entries(ctx, "list")
	if err != nil {
		return nil, err
	}
	return func(yield func(DirEntry, error) bool) {
		for entry, err := range entries {
			if err != nil {
				yield(DirEntry{}, err)
				return
			}
			kind := KindFile
			if entry.IsDir() {
				kind = KindDirectory
			}
			if !yield(DirEntry{Name: entry.Name, Kind: kind}, nil) {
				return
			}
		}
	}, nil
}

// Files returns a sequence of the names of the directory's files.
func (d *Directory) Files(ctx context.Context) (iter.Seq2[string, error], error) {
	return d.names(ctx, "files", DirEntry.IsFile)
}

// Directories returns a sequence of the names of the directory's
// subdirectories.
func (d *Directory) Directories(ctx context.Context) (iter.Seq2[string, error], error) {
	return d.names(ctx, "directories", DirEntry.IsDir)
}

func (d *Directory) names(ctx context.Context, op string, keep func(DirEntry) bool) (iter.Seq2[string, error], error) {
	entries, err := d.entries(ctx, op)
	if err != nil {
		return nil, err
	}
	return func(yield func(string, error) bool) {
		for entry, err := range entries {
			if err != nil {
				yield("", err)
				return
			}
			if !keep(entry) {
				continue
			}
			if !yield(entry.Name, nil) {
				return
			}
		}
	}, nil
}

// entries performs the listable check and asks the driver for its cursor.
func (d *Directory) entries(ctx context.Context, op string) (iter.Seq2[DirEntry, error], error) {
	if err := d.ensureOpen(op); err != nil {
		return nil, err
	}
	if err := d.require(d.listable, op, CapabilityList, "directory is not listable"); err != nil {
		return nil, err
	}
	return d.driver.List(ctx, d.descriptor), nil
}
