package vfstest

import (
	"context"
	"errors"
	"io/fs"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jmgilman/go/vfs"
)

// TestManage tests the path based operations: Stat, Rename and Unlink.
func TestManage(t *testing.T, d vfs.Driver) {
	TestManageWithConfig(t, d, POSIXConfig())
}

// TestManageWithConfig tests path based operations with behavior
// configuration.
func TestManageWithConfig(t *testing.T, d vfs.Driver, cfg Config) {
	run(t, "Manage", cfg, "StatFile", func(t *testing.T) { testManageStatFile(t, d) })
	run(t, "Manage", cfg, "StatNotExist", func(t *testing.T) { testManageStatNotExist(t, d) })
	run(t, "Manage", cfg, "RenameFile", func(t *testing.T) { testManageRenameFile(t, d) })
	run(t, "Manage", cfg, "RenameDirectory", func(t *testing.T) { testManageRenameDir(t, d) })
	run(t, "Manage", cfg, "RenameIntoSelf", func(t *testing.T) { testManageRenameIntoSelf(t, d) })
	run(t, "Manage", cfg, "Unlink", func(t *testing.T) { testManageUnlink(t, d) })
	run(t, "Manage", cfg, "UnlinkNotExist", func(t *testing.T) { testManageUnlinkNotExist(t, d) })
}

func testManageStatFile(t *testing.T, d vfs.Driver) {
	writeFile(t, d, "/stat.txt", "twelve bytes")

	st, err := d.Stat(context.Background(), "/stat.txt")
	if err != nil {
		t.Fatalf("Stat(/stat.txt): got error %v, want nil", err)
	}
	if st.Name != "stat.txt" {
		t.Errorf("Stat(/stat.txt).Name: got %q, want %q", st.Name, "stat.txt")
	}
	if st.Size != 12 {
		t.Errorf("Stat(/stat.txt).Size: got %d, want 12", st.Size)
	}
	if !st.IsFile() || st.IsDir() {
		t.Errorf("Stat(/stat.txt): got file=%v dir=%v, want file=true dir=false", st.IsFile(), st.IsDir())
	}
}

func testManageStatNotExist(t *testing.T, d vfs.Driver) {
	_, err := d.Stat(context.Background(), "/nope.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(/nope.txt): got error %v, want fs.ErrNotExist", err)
	}
}

func testManageRenameFile(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	writeFile(t, d, "/old.txt", "moving")

	if err := d.Rename(ctx, "/old.txt", "/new.txt"); err != nil {
		t.Fatalf("Rename(/old.txt, /new.txt): got error %v, want nil", err)
	}
	if _, err := d.Stat(ctx, "/old.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(/old.txt) after Rename: got error %v, want fs.ErrNotExist", err)
	}
	if got := readFile(t, d, "/new.txt"); got != "moving" {
		t.Errorf("readFile(/new.txt): got %q, want %q", got, "moving")
	}
}

func testManageRenameDir(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	mkdir(t, d, "/src")
	writeFile(t, d, "/src/a.txt", "a")
	writeFile(t, d, "/src/b.txt", "b")

	if err := d.Rename(ctx, "/src", "/dst"); err != nil {
		t.Fatalf("Rename(/src, /dst): got error %v, want nil", err)
	}

	want := []vfs.DirEntry{
		{Name: "a.txt", Kind: vfs.KindFile},
		{Name: "b.txt", Kind: vfs.KindFile},
	}
	if diff := cmp.Diff(want, list(t, d, "/dst")); diff != "" {
		t.Errorf("List(/dst) after Rename mismatch (-want +got):\n%s", diff)
	}
	if got := readFile(t, d, "/dst/b.txt"); got != "b" {
		t.Errorf("readFile(/dst/b.txt): got %q, want %q", got, "b")
	}
	if _, err := d.Stat(ctx, "/src/a.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(/src/a.txt) after Rename: got error %v, want fs.ErrNotExist", err)
	}
}

func testManageRenameIntoSelf(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	mkdir(t, d, "/nest")
	writeFile(t, d, "/nest/f.txt", "stay")

	if err := d.Rename(ctx, "/nest", "/nest/inner"); !errors.Is(err, syscall.EINVAL) {
		t.Errorf("Rename(/nest, /nest/inner): got error %v, want syscall.EINVAL", err)
	}
	if _, err := d.Stat(ctx, "/nest/inner"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(/nest/inner) after Rename: got error %v, want fs.ErrNotExist", err)
	}
	if got := readFile(t, d, "/nest/f.txt"); got != "stay" {
		t.Errorf("readFile(/nest/f.txt): got %q, want %q", got, "stay")
	}
}

func testManageUnlink(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	writeFile(t, d, "/unlink.txt", "x")

	if err := d.Unlink(ctx, "/unlink.txt"); err != nil {
		t.Fatalf("Unlink(/unlink.txt): got error %v, want nil", err)
	}
	if _, err := d.Stat(ctx, "/unlink.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(/unlink.txt) after Unlink: got error %v, want fs.ErrNotExist", err)
	}
}

func testManageUnlinkNotExist(t *testing.T, d vfs.Driver) {
	err := d.Unlink(context.Background(), "/never.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Unlink(/never.txt): got error %v, want fs.ErrNotExist", err)
	}
}
