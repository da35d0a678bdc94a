package vfstest

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/vfs"
)

// TestDescriptors tests the descriptor lifecycle: Close, Remove and
// independence of descriptors opened for the same path.
func TestDescriptors(t *testing.T, d vfs.Driver) {
	TestDescriptorsWithConfig(t, d, POSIXConfig())
}

// TestDescriptorsWithConfig tests the descriptor lifecycle with behavior
// configuration.
func TestDescriptorsWithConfig(t *testing.T, d vfs.Driver, cfg Config) {
	run(t, "Descriptors", cfg, "CloseTwice", func(t *testing.T) { testDescCloseTwice(t, d) })
	run(t, "Descriptors", cfg, "UseAfterClose", func(t *testing.T) { testDescUseAfterClose(t, d) })
	run(t, "Descriptors", cfg, "RemoveFile", func(t *testing.T) { testDescRemoveFile(t, d) })
	run(t, "Descriptors", cfg, "RemoveDirectory", func(t *testing.T) { testDescRemoveDir(t, d) })
	run(t, "Descriptors", cfg, "Independent", func(t *testing.T) { testDescIndependent(t, d) })
}

func testDescCloseTwice(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	writeFile(t, d, "/close.txt", "x")

	fd, err := d.OpenFile(ctx, "/close.txt", vfs.ModeRead)
	if err != nil {
		t.Fatalf("OpenFile(/close.txt, r): got error %v, want nil", err)
	}
	if err := d.Close(ctx, fd); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}
	if err := d.Close(ctx, fd); !errors.Is(err, fs.ErrClosed) {
		t.Errorf("Close() twice: got error %v, want fs.ErrClosed", err)
	}
}

func testDescUseAfterClose(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	writeFile(t, d, "/used.txt", "x")

	fd, err := d.OpenFile(ctx, "/used.txt", vfs.ModeReadWrite)
	if err != nil {
		t.Fatalf("OpenFile(/used.txt, r+): got error %v, want nil", err)
	}
	if err := d.Close(ctx, fd); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	if _, err := d.Read(ctx, fd, vfs.ReadAll); !errors.Is(err, fs.ErrClosed) {
		t.Errorf("Read() after Close: got error %v, want fs.ErrClosed", err)
	}
	if err := d.Write(ctx, fd, []byte("y")); !errors.Is(err, fs.ErrClosed) {
		t.Errorf("Write() after Close: got error %v, want fs.ErrClosed", err)
	}
}

func testDescRemoveFile(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	writeFile(t, d, "/doomed.txt", "bye")

	fd, err := d.OpenFile(ctx, "/doomed.txt", vfs.ModeRead)
	if err != nil {
		t.Fatalf("OpenFile(/doomed.txt, r): got error %v, want nil", err)
	}
	if err := d.Remove(ctx, fd); err != nil {
		t.Fatalf("Remove(): got error %v, want nil", err)
	}

	if _, err := d.Stat(ctx, "/doomed.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(/doomed.txt) after Remove: got error %v, want fs.ErrNotExist", err)
	}
	if err := d.Close(ctx, fd); !errors.Is(err, fs.ErrClosed) {
		t.Errorf("Close() after Remove: got error %v, want fs.ErrClosed", err)
	}
}

func testDescRemoveDir(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	mkdir(t, d, "/gone")

	dd, err := d.OpenDir(ctx, "/gone")
	if err != nil {
		t.Fatalf("OpenDir(/gone): got error %v, want nil", err)
	}
	if err := d.Remove(ctx, dd); err != nil {
		t.Fatalf("Remove(): got error %v, want nil", err)
	}
	if _, err := d.Stat(ctx, "/gone"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(/gone) after Remove: got error %v, want fs.ErrNotExist", err)
	}
}

func testDescIndependent(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	writeFile(t, d, "/shared.txt", "abcdef")

	a, err := d.OpenFile(ctx, "/shared.txt", vfs.ModeRead)
	if err != nil {
		t.Fatalf("OpenFile(/shared.txt, r): got error %v, want nil", err)
	}
	defer func() { _ = d.Close(ctx, a) }()
	b, err := d.OpenFile(ctx, "/shared.txt", vfs.ModeRead)
	if err != nil {
		t.Fatalf("OpenFile(/shared.txt, r) second: got error %v, want nil", err)
	}

	if _, err := d.Read(ctx, a, 3); err != nil {
		t.Fatalf("Read(a, 3): got error %v, want nil", err)
	}
	got, err := d.Read(ctx, b, vfs.ReadAll)
	if err != nil {
		t.Fatalf("Read(b): got error %v, want nil", err)
	}
	if string(got) != "abcdef" {
		t.Errorf("Read(b): got %q, want %q (offsets must not be shared)", got, "abcdef")
	}

	if err := d.Close(ctx, b); err != nil {
		t.Fatalf("Close(b): got error %v, want nil", err)
	}
	if _, err := d.Read(ctx, a, vfs.ReadAll); err != nil {
		t.Errorf("Read(a) after Close(b): got error %v, want nil", err)
	}
}
