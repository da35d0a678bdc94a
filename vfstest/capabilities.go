package vfstest

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jmgilman/go/vfs"
)

// TestCapabilities mounts d under a vfs.FileSystem and checks that the
// capability policy holds against a real backend.
func TestCapabilities(t *testing.T, d vfs.Driver) {
	TestCapabilitiesWithConfig(t, d, POSIXConfig())
}

// TestCapabilitiesWithConfig runs the capability tests with behavior
// configuration.
func TestCapabilitiesWithConfig(t *testing.T, d vfs.Driver, cfg Config) {
	mkdir(t, d, "/data")
	writeFile(t, d, "/data/a.txt", "alpha")
	mkdir(t, d, "/data/sub")

	run(t, "Capabilities", cfg, "ReadOnly", func(t *testing.T) { testCapsReadOnly(t, d) })
	run(t, "Capabilities", cfg, "FullAccess", func(t *testing.T) { testCapsFullAccess(t, d) })
	run(t, "Capabilities", cfg, "NotListable", func(t *testing.T) { testCapsNotListable(t, d) })
}

func testCapsReadOnly(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	fsys := vfs.New(d, "/data", vfs.ReadOnly())

	f, err := fsys.File(ctx, "a.txt", vfs.ModeRead)
	if err != nil {
		t.Fatalf("File(a.txt, r): got error %v, want nil", err)
	}
	data, err := f.Read(ctx, vfs.ReadAll)
	if err != nil {
		t.Fatalf("Read(): got error %v, want nil", err)
	}
	if string(data) != "alpha" {
		t.Errorf("Read(): got %q, want %q", data, "alpha")
	}
	if err := f.Write(ctx, []byte("x")); !vfs.IsPermissionDenied(err) {
		t.Errorf("Write() on read-only file: got error %v, want permission denied", err)
	}
	if err := f.Close(ctx); err != nil {
		t.Errorf("Close(): got error %v, want nil", err)
	}

	for _, mode := range []vfs.Mode{vfs.ModeWrite, vfs.ModeAppend, vfs.ModeReadWriteCreate} {
		if _, err := fsys.File(ctx, "a.txt", mode); !vfs.IsPermissionDenied(err) {
			t.Errorf("File(a.txt, %s): got error %v, want permission denied", mode, err)
		}
	}
	if got := readFile(t, d, "/data/a.txt"); got != "alpha" {
		t.Errorf("denied opens changed the file: got %q, want %q", got, "alpha")
	}

	sub, err := fsys.Directory(ctx, "sub")
	if err != nil {
		t.Fatalf("Directory(sub): got error %v, want nil", err)
	}
	defer func() { _ = sub.Close(ctx) }()
	if err := sub.Mkdir(ctx, "x"); !vfs.IsPermissionDenied(err) {
		t.Errorf("Mkdir(x) in read-only directory: got error %v, want permission denied", err)
	}

	root, err := fsys.Directory(ctx, ".")
	if err != nil {
		t.Fatalf("Directory(.): got error %v, want nil", err)
	}
	defer func() { _ = root.Close(ctx) }()
	entries, err := root.List(ctx)
	if err != nil {
		t.Fatalf("List(): got error %v, want nil", err)
	}
	var got []vfs.DirEntry
	for entry, err := range entries {
		if err != nil {
			t.Fatalf("List(): got error %v, want nil", err)
		}
		got = append(got, entry)
	}
	sortEntries(got)
	want := []vfs.DirEntry{
		{Name: "a.txt", Kind: vfs.KindFile},
		{Name: "sub", Kind: vfs.KindDirectory},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func testCapsFullAccess(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	fsys := vfs.New(d, "/data", vfs.FullAccess())

	f, err := fsys.File(ctx, "b.txt", vfs.ModeWrite)
	if err != nil {
		t.Fatalf("File(b.txt, w): got error %v, want nil", err)
	}
	if err := f.WriteString(ctx, "bravo"); err != nil {
		t.Fatalf("WriteString(): got error %v, want nil", err)
	}
	if err := f.Close(ctx); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}
	if got := readFile(t, d, "/data/b.txt"); got != "bravo" {
		t.Errorf("readFile(/data/b.txt): got %q, want %q", got, "bravo")
	}

	root, err := fsys.Directory(ctx, "/")
	if err != nil {
		t.Fatalf("Directory(/): got error %v, want nil", err)
	}
	defer func() { _ = root.Close(ctx) }()
	if err := root.Mkdir(ctx, "made"); err != nil {
		t.Fatalf("Mkdir(made): got error %v, want nil", err)
	}
	if st, err := d.Stat(ctx, "/data/made"); err != nil || !st.IsDir() {
		t.Errorf("Stat(/data/made): got dir=%v err=%v, want dir=true err=nil", st.IsDir(), err)
	}

	// Escaping the root with .. stays beneath it.
	esc, err := fsys.File(ctx, "../../escape.txt", vfs.ModeWrite)
	if err != nil {
		t.Fatalf("File(../../escape.txt, w): got error %v, want nil", err)
	}
	if esc.Path() != "/data/escape.txt" {
		t.Errorf("File(../../escape.txt).Path(): got %q, want %q", esc.Path(), "/data/escape.txt")
	}
	if err := esc.Remove(ctx); err != nil {
		t.Errorf("Remove(): got error %v, want nil", err)
	}
}

func testCapsNotListable(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	fsys := vfs.New(d, "/data", vfs.Policy{Readable: true})

	dir, err := fsys.Directory(ctx, "sub")
	if err != nil {
		t.Fatalf("Directory(sub): got error %v, want nil", err)
	}
	defer func() { _ = dir.Close(ctx) }()

	if _, err := dir.Files(ctx); !vfs.IsPermissionDenied(err) {
		t.Errorf("Files() on unlistable directory: got error %v, want permission denied", err)
	}
	if _, err := dir.Directories(ctx); !vfs.IsPermissionDenied(err) {
		t.Errorf("Directories() on unlistable directory: got error %v, want permission denied", err)
	}
}
