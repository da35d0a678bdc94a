package vfstest

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jmgilman/go/vfs"
)

// TestDirectories tests Mkdir, OpenDir and List.
func TestDirectories(t *testing.T, d vfs.Driver) {
	TestDirectoriesWithConfig(t, d, POSIXConfig())
}

// TestDirectoriesWithConfig tests directory operations with behavior
// configuration.
func TestDirectoriesWithConfig(t *testing.T, d vfs.Driver, cfg Config) {
	run(t, "Directories", cfg, "MkdirAndList", func(t *testing.T) { testDirsMkdirAndList(t, d) })
	run(t, "Directories", cfg, "MkdirExists", func(t *testing.T) { testDirsMkdirExists(t, d) })
	run(t, "Directories", cfg, "MkdirMissingParent", func(t *testing.T) { testDirsMkdirMissingParent(t, d, cfg) })
	run(t, "Directories", cfg, "ListEmpty", func(t *testing.T) { testDirsListEmpty(t, d) })
	run(t, "Directories", cfg, "ListSharesCursor", func(t *testing.T) { testDirsListSharesCursor(t, d) })
	run(t, "Directories", cfg, "OpenDirNotExist", func(t *testing.T) { testDirsOpenDirNotExist(t, d) })
	run(t, "Directories", cfg, "StatDir", func(t *testing.T) { testDirsStatDir(t, d) })
}

func testDirsMkdirAndList(t *testing.T, d vfs.Driver) {
	mkdir(t, d, "/tree")
	writeFile(t, d, "/tree/b.txt", "b")
	writeFile(t, d, "/tree/a.txt", "a")
	mkdir(t, d, "/tree/sub")
	writeFile(t, d, "/tree/sub/inner.txt", "inner")

	want := []vfs.DirEntry{
		{Name: "a.txt", Kind: vfs.KindFile},
		{Name: "b.txt", Kind: vfs.KindFile},
		{Name: "sub", Kind: vfs.KindDirectory},
	}
	if diff := cmp.Diff(want, list(t, d, "/tree")); diff != "" {
		t.Errorf("List(/tree) mismatch (-want +got):\n%s", diff)
	}

	want = []vfs.DirEntry{{Name: "inner.txt", Kind: vfs.KindFile}}
	if diff := cmp.Diff(want, list(t, d, "/tree/sub")); diff != "" {
		t.Errorf("List(/tree/sub) mismatch (-want +got):\n%s", diff)
	}
}

func testDirsMkdirExists(t *testing.T, d vfs.Driver) {
	mkdir(t, d, "/twice")
	err := d.Mkdir(context.Background(), "/twice")
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("Mkdir(/twice) second call: got error %v, want fs.ErrExist", err)
	}
}

func testDirsMkdirMissingParent(t *testing.T, d vfs.Driver, cfg Config) {
	err := d.Mkdir(context.Background(), "/no/such/parent")
	if cfg.ImplicitParentDirs {
		if err != nil {
			t.Errorf("Mkdir(/no/such/parent): got error %v, want nil", err)
		}
		return
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Mkdir(/no/such/parent): got error %v, want fs.ErrNotExist", err)
	}
}

func testDirsListEmpty(t *testing.T, d vfs.Driver) {
	mkdir(t, d, "/empty")
	if got := list(t, d, "/empty"); len(got) != 0 {
		t.Errorf("List(/empty): got %v, want no entries", got)
	}
}

func testDirsListSharesCursor(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	mkdir(t, d, "/cursor")
	for _, name := range []string{"1", "2", "3"} {
		writeFile(t, d, "/cursor/"+name, name)
	}

	dd, err := d.OpenDir(ctx, "/cursor")
	if err != nil {
		t.Fatalf("OpenDir(/cursor): got error %v, want nil", err)
	}
	defer func() { _ = d.Close(ctx, dd) }()

	var seen []string
	for entry, err := range d.List(ctx, dd) {
		if err != nil {
			t.Fatalf("List(): got error %v, want nil", err)
		}
		seen = append(seen, entry.Name)
		break
	}
	for entry, err := range d.List(ctx, dd) {
		if err != nil {
			t.Fatalf("List() resumed: got error %v, want nil", err)
		}
		seen = append(seen, entry.Name)
	}

	if diff := cmp.Diff([]string{"1", "2", "3"}, seen); diff != "" {
		t.Errorf("List() across two sequences mismatch (-want +got):\n%s", diff)
	}
}

func testDirsOpenDirNotExist(t *testing.T, d vfs.Driver) {
	_, err := d.OpenDir(context.Background(), "/missing-dir")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("OpenDir(/missing-dir): got error %v, want fs.ErrNotExist", err)
	}
}

func testDirsStatDir(t *testing.T, d vfs.Driver) {
	mkdir(t, d, "/statdir")
	st, err := d.Stat(context.Background(), "/statdir")
	if err != nil {
		t.Fatalf("Stat(/statdir): got error %v, want nil", err)
	}
	if !st.IsDir() || st.IsFile() {
		t.Errorf("Stat(/statdir): got dir=%v file=%v, want dir=true file=false", st.IsDir(), st.IsFile())
	}
	if st.Name != "statdir" {
		t.Errorf("Stat(/statdir).Name: got %q, want %q", st.Name, "statdir")
	}
}
