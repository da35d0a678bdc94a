package vfstest

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/jmgilman/go/vfs"
)

// writeFile creates p with data through a ModeWrite descriptor.
func writeFile(t *testing.T, d vfs.Driver, p string, data string) {
	t.Helper()
	ctx := context.Background()
	fd, err := d.OpenFile(ctx, p, vfs.ModeWrite)
	if err != nil {
		t.Fatalf("OpenFile(%q, w): setup failed: %v", p, err)
	}
	if err := d.Write(ctx, fd, []byte(data)); err != nil {
		t.Fatalf("Write(%q): setup failed: %v", p, err)
	}
	if err := d.Close(ctx, fd); err != nil {
		t.Fatalf("Close(%q): setup failed: %v", p, err)
	}
}

// readFile returns the full contents of p.
func readFile(t *testing.T, d vfs.Driver, p string) string {
	t.Helper()
	ctx := context.Background()
	fd, err := d.OpenFile(ctx, p, vfs.ModeRead)
	if err != nil {
		t.Fatalf("OpenFile(%q, r): got error %v, want nil", p, err)
	}
	defer func() { _ = d.Close(ctx, fd) }()

	data, err := d.Read(ctx, fd, vfs.ReadAll)
	if err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("Read(%q): got error %v, want nil", p, err)
	}
	return string(data)
}

// mkdir creates p, failing the test on error.
func mkdir(t *testing.T, d vfs.Driver, p string) {
	t.Helper()
	if err := d.Mkdir(context.Background(), p); err != nil {
		t.Fatalf("Mkdir(%q): setup failed: %v", p, err)
	}
}

// list returns every entry of the directory p sorted by name.
func list(t *testing.T, d vfs.Driver, p string) []vfs.DirEntry {
	t.Helper()
	ctx := context.Background()
	dd, err := d.OpenDir(ctx, p)
	if err != nil {
		t.Fatalf("OpenDir(%q): got error %v, want nil", p, err)
	}
	defer func() { _ = d.Close(ctx, dd) }()

	var entries []vfs.DirEntry
	for entry, err := range d.List(ctx, dd) {
		if err != nil {
			t.Fatalf("List(%q): got error %v, want nil", p, err)
		}
		entries = append(entries, entry)
	}
	sortEntries(entries)
	return entries
}

func sortEntries(entries []vfs.DirEntry) {
	slices.SortFunc(entries, func(a, b vfs.DirEntry) int {
		return strings.Compare(a.Name, b.Name)
	})
}
