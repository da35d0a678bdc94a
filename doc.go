// Package vfs provides a capability-gated virtual filesystem.
//
// The package exposes a uniform File and Directory API on top of a pluggable
// Driver. Every node carries immutable capability flags (readable, writable,
// listable) that are derived once, when the node is opened, and checked before
// any call is forwarded to the driver. Drivers stay capability-agnostic: they
// perform the actual I/O and never decide whether an operation is allowed.
//
// # Capability Model
//
// Files derive their flags from the Mode they were opened with:
//
//   - ModeRead ("r"): readable
//   - ModeWrite ("w"): writable
//   - ModeReadWrite ("r+"), ModeReadWriteCreate ("w+"): readable and writable
//   - ModeAppend ("a"), ModeAppendCreate ("a+"): readable and writable
//
// Directories carry three independent flags that are fixed by the FileSystem
// root and inherited unchanged by every directory opened beneath it. The root
// policy is therefore a ceiling: no descendant can regain a capability the root
// lacks.
//
// # Usage Example
//
//	import (
//	    "github.com/jmgilman/go/vfs"
//	    "github.com/jmgilman/go/vfs/driver/billy"
//	)
//
//	filesystem := vfs.New(billy.NewMemory(), "/", vfs.Policy{
//	    Readable: true,
//	    Listable: true,
//	})
//
//	f, err := filesystem.File(ctx, "config.json", vfs.ModeRead)
//	if err != nil {
//	    return err
//	}
//	defer func() { _ = f.Close(ctx) }()
//
//	data, err := f.Read(ctx, vfs.ReadAll)
//
// # Narrowed Views
//
// *File and *Directory implement the full API surface and enforce narrowing at
// runtime. Callers that want the compiler to track capabilities can narrow a
// node into one of the capability interfaces:
//
//	if w, ok := vfs.AsWritableFile(f); ok {
//	    err = w.WriteString(ctx, "hello")
//	}
//
// # Errors
//
// Capability violations are reported as PlatformErrors with code FORBIDDEN
// that wrap fs.ErrPermission, so both of the following hold:
//
//	errors.Is(err, vfs.ErrPermission)
//	vfs.IsPermissionDenied(err)
//
// Driver failures are returned unchanged.
//
// # Thread Safety
//
// The package performs no locking. Concurrent calls on the same node race at
// the driver; callers that need ordering must serialize themselves.
package vfs
