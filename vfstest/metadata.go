package vfstest

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jmgilman/go/vfs"
)

// TestMetadata tests Chmod and Chown.
func TestMetadata(t *testing.T, d vfs.Driver) {
	TestMetadataWithConfig(t, d, POSIXConfig())
}

// TestMetadataWithConfig tests metadata operations with behavior
// configuration.
func TestMetadataWithConfig(t *testing.T, d vfs.Driver, cfg Config) {
	run(t, "Metadata", cfg, "Chmod", func(t *testing.T) { testMetadataChmod(t, d, cfg) })
	run(t, "Metadata", cfg, "Chown", func(t *testing.T) { testMetadataChown(t, d, cfg) })
}

func testMetadataChmod(t *testing.T, d vfs.Driver, cfg Config) {
	ctx := context.Background()
	writeFile(t, d, "/mode.txt", "x")

	err := d.Chmod(ctx, "/mode.txt", 0o600)
	if !cfg.SupportsChmod {
		if !errors.Is(err, vfs.ErrUnsupported) {
			t.Errorf("Chmod(): got error %v, want vfs.ErrUnsupported", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("Chmod(/mode.txt, 0600): got error %v, want nil", err)
	}

	st, err := d.Stat(ctx, "/mode.txt")
	if err != nil {
		t.Fatalf("Stat(/mode.txt): got error %v, want nil", err)
	}
	if perm := st.Mode.Perm(); perm != 0o600 {
		t.Errorf("Stat(/mode.txt).Mode.Perm(): got %o, want 600", perm)
	}
}

func testMetadataChown(t *testing.T, d vfs.Driver, cfg Config) {
	ctx := context.Background()
	writeFile(t, d, "/owner.txt", "x")

	// Chown to the current owner needs no privileges.
	err := d.Chown(ctx, "/owner.txt", os.Getuid(), os.Getgid())
	if !cfg.SupportsChmod {
		if !errors.Is(err, vfs.ErrUnsupported) {
			t.Errorf("Chown(): got error %v, want vfs.ErrUnsupported", err)
		}
		return
	}
	if err != nil {
		t.Errorf("Chown(/owner.txt, self): got error %v, want nil", err)
	}
}
