package vfs

import (
	"context"
	"io/fs"
	"iter"
	"time"
)

//go:generate go run github.com/matryer/moq@v0.5.3 -out mocks/driver.go -pkg mocks . Driver

// Kind distinguishes files from directories.
type Kind int

const (
	// KindFile identifies a regular file.
	KindFile Kind = iota
	// KindDirectory identifies a directory.
	KindDirectory
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Descriptor is an opaque handle identifying an open file or directory at the
// driver level. Each descriptor is owned by exactly one node and is released
// exactly once, by Close or Remove.
//
// Drivers define the concrete type; callers never inspect it.
type Descriptor interface {
	// Kind reports whether the descriptor refers to a file or a directory.
	Kind() Kind
}

// DirEntry is a single item produced while listing a directory.
type DirEntry struct {
	Name string
	Kind Kind
}

// IsFile reports whether the entry is a file.
func (e DirEntry) IsFile() bool { return e.Kind == KindFile }

// IsDir reports whether the entry is a directory.
func (e DirEntry) IsDir() bool { return e.Kind == KindDirectory }

// Stats describes a node as reported by Driver.Stat.
type Stats struct {
	Name    string
	Size    int64
	Mode    fs.FileMode
	ModTime time.Time
}

// IsFile reports whether the node is a regular file.
func (s Stats) IsFile() bool { return s.Mode.IsRegular() }

// IsDir reports whether the node is a directory.
func (s Stats) IsDir() bool { return s.Mode.IsDir() }

// ReadAll may be passed to Read to consume the remainder of a file.
const ReadAll = -1

// Driver performs the actual storage operations behind a FileSystem.
//
// Drivers are capability-agnostic: they never decide whether an operation is
// permitted. Implementations include the go-billy driver (memory and local
// disk), the MinIO driver (S3-compatible storage) and the corefs adapter for
// any core.FS provider.
//
// All methods accept a context.Context for cancellation. A cancelled call
// simply fails; the failure is passed to the caller unchanged. Operations a
// backend cannot perform return an error matching ErrUnsupported.
type Driver interface {
	// Stat returns metadata for the node at path.
	Stat(ctx context.Context, path string) (Stats, error)

	// Chmod changes the permission bits of the node at path.
	Chmod(ctx context.Context, path string, mode fs.FileMode) error

	// Chown changes the owner and group of the node at path.
	Chown(ctx context.Context, path string, uid, gid int) error

	// OpenFile opens the file at path with the given mode and returns a new
	// descriptor for it.
	OpenFile(ctx context.Context, path string, mode Mode) (Descriptor, error)

	// OpenDir opens the directory at path and returns a new descriptor for it.
	OpenDir(ctx context.Context, path string) (Descriptor, error)

	// Read reads up to length bytes from fd. A negative length reads the
	// remainder of the file. At end of file, Read returns (nil, io.EOF)
	// when length is positive.
	Read(ctx context.Context, fd Descriptor, length int) ([]byte, error)

	// Write writes data to fd.
	Write(ctx context.Context, fd Descriptor, data []byte) error

	// List returns a lazy sequence over the entries of dd. The sequence is
	// driven by a cursor owned by the descriptor: entries consumed by one
	// sequence are not produced again by later calls.
	List(ctx context.Context, dd Descriptor) iter.Seq2[DirEntry, error]

	// Mkdir creates the directory at path. The parent must exist.
	Mkdir(ctx context.Context, path string) error

	// Remove deletes the node d refers to and releases d.
	Remove(ctx context.Context, d Descriptor) error

	// Close releases d.
	Close(ctx context.Context, d Descriptor) error

	// Rename moves the node at oldPath to newPath.
	Rename(ctx context.Context, oldPath, newPath string) error

	// Link creates a hard link at path pointing to target.
	Link(ctx context.Context, target, path string) error

	// Symlink creates a symbolic link at path pointing to target.
	Symlink(ctx context.Context, target, path string) error

	// Unlink removes the directory entry at path.
	Unlink(ctx context.Context, path string) error

	// Realpath resolves path to its canonical form, following symbolic links.
	Realpath(ctx context.Context, path string) (string, error)
}
