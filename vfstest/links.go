package vfstest

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jmgilman/go/vfs"
)

// TestLinks tests Symlink, Link and Realpath.
func TestLinks(t *testing.T, d vfs.Driver) {
	TestLinksWithConfig(t, d, POSIXConfig())
}

// TestLinksWithConfig tests link operations with behavior configuration.
func TestLinksWithConfig(t *testing.T, d vfs.Driver, cfg Config) {
	run(t, "Links", cfg, "Symlink", func(t *testing.T) { testLinksSymlink(t, d, cfg) })
	run(t, "Links", cfg, "HardLink", func(t *testing.T) { testLinksHardLink(t, d) })
	run(t, "Links", cfg, "RealpathCleans", func(t *testing.T) { testLinksRealpathCleans(t, d) })
}

func testLinksSymlink(t *testing.T, d vfs.Driver, cfg Config) {
	ctx := context.Background()
	writeFile(t, d, "/target.txt", "pointed at")

	err := d.Symlink(ctx, "/target.txt", "/link.txt")
	if !cfg.SupportsSymlinks {
		if !errors.Is(err, vfs.ErrUnsupported) {
			t.Errorf("Symlink(): got error %v, want vfs.ErrUnsupported", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("Symlink(/target.txt, /link.txt): got error %v, want nil", err)
	}

	if got := readFile(t, d, "/link.txt"); got != "pointed at" {
		t.Errorf("readFile(/link.txt): got %q, want %q", got, "pointed at")
	}

	real, err := d.Realpath(ctx, "/link.txt")
	if err != nil {
		t.Fatalf("Realpath(/link.txt): got error %v, want nil", err)
	}
	if real != "/target.txt" {
		t.Errorf("Realpath(/link.txt): got %q, want %q", real, "/target.txt")
	}
}

func testLinksHardLink(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	writeFile(t, d, "/hard.txt", "x")

	err := d.Link(ctx, "/hard.txt", "/hard2.txt")
	if err == nil {
		if got := readFile(t, d, "/hard2.txt"); got != "x" {
			t.Errorf("readFile(/hard2.txt): got %q, want %q", got, "x")
		}
		return
	}
	if !errors.Is(err, vfs.ErrUnsupported) {
		t.Errorf("Link(): got error %v, want nil or vfs.ErrUnsupported", err)
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		t.Errorf("Link(): got %T, want *os.LinkError", err)
	}
}

func testLinksRealpathCleans(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	mkdir(t, d, "/rp")
	writeFile(t, d, "/rp/file.txt", "x")

	got, err := d.Realpath(ctx, "/rp/./sub/../file.txt")
	if err != nil {
		t.Fatalf("Realpath(): got error %v, want nil", err)
	}
	if got != "/rp/file.txt" {
		t.Errorf("Realpath(): got %q, want %q", got, "/rp/file.txt")
	}
}
