// Package billy provides a go-billy-backed implementation of vfs.Driver.
//
// The driver wraps go-billy's memfs (in-memory) and osfs (local disk)
// filesystems, or any billy.Filesystem supplied by the caller. File
// descriptors hold an open billy.File; directory descriptors hold a cursor
// over a ReadDir snapshot taken on the first List pull.
//
// Usage:
//
//	driver := billy.NewLocal("/srv/data")
//	fsys := vfs.New(driver, "/", vfs.ReadOnly())
//
//	f, err := fsys.File(ctx, "config.json", vfs.ModeRead)
//
// # Memory Filesystem
//
// For tests or scratch storage use the in-memory filesystem:
//
//	driver := billy.NewMemory()
//
// # Unsupported Operations
//
// Hard links are never supported. Chmod and Chown are supported on local
// disk and on billy filesystems that implement billy.Change; elsewhere they
// return vfs.ErrUnsupported.
//
// # Thread Safety
//
// A Driver is safe for concurrent use. Concurrent calls on the same
// descriptor race at the underlying billy.File.
package billy
