package vfs

import (
	"context"

	"github.com/rs/zerolog"
)

// File is an open file. Its readable and writable flags come from the Mode it
// was opened with and never change.
//
// File implements every file capability interface. Operations the mode does
// not permit fail with a permission error before the driver is called, so a
// rejected call performs no I/O.
type File struct {
	node
	mode     Mode
	readable bool
	writable bool
}

func newFile(p string, d Descriptor, driver Driver, mode Mode, log zerolog.Logger) *File {
	f := &File{
		mode:     mode,
		readable: mode.Readable(),
		writable: mode.Writable(),
	}
	f.init(p, KindFile, d, driver, log)
	return f
}

// Mode returns the mode the file was opened with.
func (f *File) Mode() Mode {
	return f.mode
}

// Readable reports whether Read is permitted.
func (f *File) Readable() bool {
	return f.readable
}

// Writable reports whether Write, WriteString and Remove are permitted.
func (f *File) Writable() bool {
	return f.writable
}

// Read reads up to length bytes from the file. Pass ReadAll to read the
// remainder of the file. At end of file Read returns io.EOF for a positive
// length.
func (f *File) Read(ctx context.Context, length int) ([]byte, error) {
	if err := f.ensureOpen("read"); err != nil {
		return nil, err
	}
	if err := f.require(f.readable, "read", CapabilityRead, "file is not readable"); err != nil {
		return nil, err
	}
	return f.driver.Read(ctx, f.descriptor, length)
}

// Write writes data to the file.
func (f *File) Write(ctx context.Context, data []byte) error {
	if err := f.ensureOpen("write"); err != nil {
		return err
	}
	if err := f.require(f.writable, "write", CapabilityWrite, "file is not writable"); err != nil {
		return err
	}
	return f.driver.Write(ctx, f.descriptor, data)
}

// WriteString writes s to the file as UTF-8 bytes.
func (f *File) WriteString(ctx context.Context, s string) error {
	return f.Write(ctx, []byte(s))
}

// Remove deletes the file and releases its descriptor. Removal is a
// write-class operation regardless of whether the file was opened for append.
func (f *File) Remove(ctx context.Context) error {
	if err := f.ensureOpen("remove"); err != nil {
		return err
	}
	if err := f.require(f.writable, "remove", CapabilityWrite, "file is not writable"); err != nil {
		return err
	}
	return f.release(ctx, "remove", f.driver.Remove)
}

// Close releases the file descriptor. Close is always permitted; calling it
// again after a successful Close or Remove is a no-op.
func (f *File) Close(ctx context.Context) error {
	return f.release(ctx, "close", f.driver.Close)
}
