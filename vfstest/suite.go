// Package vfstest provides a conformance test suite for vfs.Driver
// implementations.
//
// The suite drives a fresh Driver through the contract the vfs package relies
// on: descriptor lifecycle, reads and writes in every Mode, lazy directory
// listing, path management and the optional link and metadata operations. It
// finishes by mounting the driver under a vfs.FileSystem and checking that
// capability enforcement holds end to end.
//
// Example usage:
//
//	func TestMyDriver(t *testing.T) {
//	    vfstest.TestSuite(t, func() vfs.Driver {
//	        return mydriver.New()
//	    })
//	}
package vfstest

import (
	"slices"
	"testing"

	"github.com/jmgilman/go/vfs"
)

// Config describes the behavior a driver is expected to exhibit.
type Config struct {
	// VirtualDirectories indicates directories are key prefixes (object
	// stores). Stat on a directory may report a zero modification time.
	VirtualDirectories bool

	// ImplicitParentDirs indicates files can be created without their parent
	// directories existing.
	ImplicitParentDirs bool

	// SupportsSymlinks indicates Symlink and symlink resolution in Realpath.
	// When false, Symlink must fail with vfs.ErrUnsupported.
	SupportsSymlinks bool

	// SupportsChmod indicates Chmod changes the permission bits reported by
	// Stat. When false, Chmod must fail with vfs.ErrUnsupported.
	SupportsChmod bool

	// SkipTests lists test names to skip, e.g. "Files/AppendMode".
	SkipTests []string
}

// POSIXConfig returns the configuration for in-memory filesystems.
func POSIXConfig() Config {
	return Config{
		SupportsSymlinks: true,
	}
}

// LocalConfig returns the configuration for local disk drivers.
func LocalConfig() Config {
	return Config{
		SupportsSymlinks: true,
		SupportsChmod:    true,
	}
}

// S3Config returns the configuration for object store drivers.
func S3Config() Config {
	return Config{
		VirtualDirectories: true,
		ImplicitParentDirs: true,
	}
}

// TestSuite runs every conformance test with POSIXConfig. newDriver must
// return a fresh, empty driver on each call.
func TestSuite(t *testing.T, newDriver func() vfs.Driver) {
	TestSuiteWithConfig(t, newDriver, POSIXConfig())
}

// TestSuiteWithConfig runs every conformance test with cfg.
func TestSuiteWithConfig(t *testing.T, newDriver func() vfs.Driver, cfg Config) {
	groups := []struct {
		name string
		run  func(*testing.T, vfs.Driver, Config)
	}{
		{"Files", TestFilesWithConfig},
		{"Directories", TestDirectoriesWithConfig},
		{"Descriptors", TestDescriptorsWithConfig},
		{"Manage", TestManageWithConfig},
		{"Links", TestLinksWithConfig},
		{"Metadata", TestMetadataWithConfig},
		{"Capabilities", TestCapabilitiesWithConfig},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if cfg.skip(g.name) {
				t.Skip("Skipped by driver configuration")
			}
			g.run(t, newDriver(), cfg)
		})
	}
}

func (c Config) skip(name string) bool {
	return slices.Contains(c.SkipTests, name)
}

// run executes a named subtest unless the configuration skips it.
func run(t *testing.T, group string, cfg Config, name string, fn func(t *testing.T)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if cfg.skip(group + "/" + name) {
			t.Skip("Skipped by driver configuration")
		}
		fn(t)
	})
}
