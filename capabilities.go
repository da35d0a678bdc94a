package vfs

import (
	"context"
	"iter"
)

// Node is the surface shared by every file and directory.
type Node interface {
	// Path returns the path the node was opened with.
	Path() string

	// Kind reports whether the node is a file or a directory.
	Kind() Kind

	// Close releases the node's descriptor. It is always permitted.
	Close(ctx context.Context) error
}

// ReadableFile is a file that may be read.
type ReadableFile interface {
	Node
	Read(ctx context.Context, length int) ([]byte, error)
}

// WritableFile is a file that may be written and removed.
type WritableFile interface {
	Node
	Write(ctx context.Context, data []byte) error
	WriteString(ctx context.Context, s string) error
	Remove(ctx context.Context) error
}

// ReadWriteFile is a file that may be both read and written.
type ReadWriteFile interface {
	ReadableFile
	WritableFile
}

// ReadableDirectory is a directory whose children may be opened for reading.
type ReadableDirectory interface {
	Node
	Directory(ctx context.Context, name string) (*Directory, error)
	File(ctx context.Context, name string, mode Mode) (*File, error)
}

// WritableDirectory is a directory that may be modified.
type WritableDirectory interface {
	Node
	Mkdir(ctx context.Context, name string) error
	Remove(ctx context.Context) error
}

// ListableDirectory is a directory whose entries may be enumerated.
type ListableDirectory interface {
	Node
	List(ctx context.Context) (iter.Seq2[DirEntry, error], error)
	Files(ctx context.Context) (iter.Seq2[string, error], error)
	Directories(ctx context.Context) (iter.Seq2[string, error], error)
}

// FullDirectory is a directory with every capability.
type FullDirectory interface {
	ReadableDirectory
	WritableDirectory
	ListableDirectory
}

// AsReadableFile narrows f to a ReadableFile if its mode permits reading.
func AsReadableFile(f *File) (ReadableFile, bool) {
	if f == nil || !f.readable {
		return nil, false
	}
	return f, true
}

// AsWritableFile narrows f to a WritableFile if its mode permits writing.
func AsWritableFile(f *File) (WritableFile, bool) {
	if f == nil || !f.writable {
		return nil, false
	}
	return f, true
}

// AsReadWriteFile narrows f to a ReadWriteFile if its mode permits both
// reading and writing.
func AsReadWriteFile(f *File) (ReadWriteFile, bool) {
	if f == nil || !f.readable || !f.writable {
		return nil, false
	}
	return f, true
}

// AsReadableDirectory narrows d to a ReadableDirectory if it is readable.
func AsReadableDirectory(d *Directory) (ReadableDirectory, bool) {
	if d == nil || !d.readable {
		return nil, false
	}
	return d, true
}

// AsWritableDirectory narrows d to a WritableDirectory if it is writable.
func AsWritableDirectory(d *Directory) (WritableDirectory, bool) {
	if d == nil || !d.writable {
		return nil, false
	}
	return d, true
}

// AsListableDirectory narrows d to a ListableDirectory if it is listable.
func AsListableDirectory(d *Directory) (ListableDirectory, bool) {
	if d == nil || !d.listable {
		return nil, false
	}
	return d, true
}

// Compile-time interface checks.
var (
	_ ReadWriteFile = (*File)(nil)
	_ FullDirectory = (*Directory)(nil)
)
