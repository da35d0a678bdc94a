package vfs

import (
	"context"
	"path"

	"github.com/rs/zerolog"
)

// Policy is the set of capabilities granted by a FileSystem root. Every
// directory opened through the FileSystem carries exactly these flags.
type Policy struct {
	Readable bool `yaml:"readable" json:"readable"`
	Writable bool `yaml:"writable" json:"writable"`
	Listable bool `yaml:"listable" json:"listable"`
}

// ReadOnly grants reading and listing.
func ReadOnly() Policy {
	return Policy{Readable: true, Listable: true}
}

// FullAccess grants every capability.
func FullAccess() Policy {
	return Policy{Readable: true, Writable: true, Listable: true}
}

// FileSystem is the entry point of the package. It holds an implicit root
// directory configured with the caller's Policy and resolves every path
// relative to it, so the root policy is the ceiling for every descendant.
type FileSystem struct {
	driver Driver
	root   *Directory
	log    zerolog.Logger
}

// New creates a FileSystem over driver rooted at root. The root directory has
// no descriptor of its own; nothing is opened until Directory or File is
// called.
func New(driver Driver, root string, policy Policy, opts ...Option) *FileSystem {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if root == "" {
		root = "/"
	}
	root = path.Clean(root)

	log := cfg.logger.With().Str("component", "vfs").Logger()
	rootDir := &Directory{
		readable: policy.Readable,
		writable: policy.Writable,
		listable: policy.Listable,
	}
	rootDir.init(root, KindDirectory, nil, driver, log)

	log.Debug().
		Str("root", root).
		Bool("readable", policy.Readable).
		Bool("writable", policy.Writable).
		Bool("listable", policy.Listable).
		Msg("filesystem created")

	return &FileSystem{
		driver: driver,
		root:   rootDir,
		log:    log,
	}
}

// Directory opens the directory at p relative to the root.
func (fsys *FileSystem) Directory(ctx context.Context, p string) (*Directory, error) {
	return fsys.root.Directory(ctx, p)
}

// File opens the file at p relative to the root with mode.
func (fsys *FileSystem) File(ctx context.Context, p string, mode Mode) (*File, error) {
	return fsys.root.File(ctx, p, mode)
}

// Root returns the root path.
func (fsys *FileSystem) Root() string {
	return fsys.root.path
}

// Policy returns the root policy.
func (fsys *FileSystem) Policy() Policy {
	return fsys.root.Policy()
}

// Driver returns the underlying Driver.
// This is an escape hatch for operations outside the capability-gated API,
// such as Stat or Rename. Calls made through it are not policy checked.
func (fsys *FileSystem) Driver() Driver {
	return fsys.driver
}
