package vfstest

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/vfs"
)

// TestFiles tests OpenFile, Read and Write in every mode.
func TestFiles(t *testing.T, d vfs.Driver) {
	TestFilesWithConfig(t, d, POSIXConfig())
}

// TestFilesWithConfig tests file I/O with behavior configuration.
func TestFilesWithConfig(t *testing.T, d vfs.Driver, cfg Config) {
	run(t, "Files", cfg, "WriteThenRead", func(t *testing.T) { testFilesWriteThenRead(t, d) })
	run(t, "Files", cfg, "PartialReads", func(t *testing.T) { testFilesPartialReads(t, d) })
	run(t, "Files", cfg, "WriteTruncates", func(t *testing.T) { testFilesWriteTruncates(t, d) })
	run(t, "Files", cfg, "ReadWriteCreate", func(t *testing.T) { testFilesReadWriteCreate(t, d) })
	run(t, "Files", cfg, "ReadWriteOverwrites", func(t *testing.T) { testFilesReadWriteOverwrites(t, d) })
	run(t, "Files", cfg, "AppendMode", func(t *testing.T) { testFilesAppend(t, d) })
	run(t, "Files", cfg, "AppendCreate", func(t *testing.T) { testFilesAppendCreate(t, d) })
	run(t, "Files", cfg, "OpenNotExist", func(t *testing.T) { testFilesOpenNotExist(t, d) })
	run(t, "Files", cfg, "CreateNested", func(t *testing.T) { testFilesCreateNested(t, d, cfg) })
}

func testFilesWriteThenRead(t *testing.T, d vfs.Driver) {
	writeFile(t, d, "/hello.txt", "hello world")
	if got := readFile(t, d, "/hello.txt"); got != "hello world" {
		t.Errorf("readFile(/hello.txt): got %q, want %q", got, "hello world")
	}
}

func testFilesPartialReads(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	writeFile(t, d, "/partial.txt", "hello world")

	fd, err := d.OpenFile(ctx, "/partial.txt", vfs.ModeRead)
	if err != nil {
		t.Fatalf("OpenFile(/partial.txt, r): got error %v, want nil", err)
	}
	defer func() { _ = d.Close(ctx, fd) }()

	first, err := d.Read(ctx, fd, 5)
	if err != nil {
		t.Fatalf("Read(5): got error %v, want nil", err)
	}
	if string(first) != "hello" {
		t.Errorf("Read(5): got %q, want %q", first, "hello")
	}

	rest, err := d.Read(ctx, fd, 100)
	if err != nil {
		t.Fatalf("Read(100): got error %v, want nil", err)
	}
	if string(rest) != " world" {
		t.Errorf("Read(100): got %q, want %q", rest, " world")
	}

	_, err = d.Read(ctx, fd, 1)
	if !errors.Is(err, io.EOF) {
		t.Errorf("Read(1) at end of file: got error %v, want io.EOF", err)
	}
}

func testFilesWriteTruncates(t *testing.T, d vfs.Driver) {
	writeFile(t, d, "/trunc.txt", "a much longer original body")
	writeFile(t, d, "/trunc.txt", "short")
	if got := readFile(t, d, "/trunc.txt"); got != "short" {
		t.Errorf("readFile(/trunc.txt): got %q, want %q", got, "short")
	}
}

func testFilesReadWriteCreate(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	writeFile(t, d, "/wplus.txt", "previous")

	fd, err := d.OpenFile(ctx, "/wplus.txt", vfs.ModeReadWriteCreate)
	if err != nil {
		t.Fatalf("OpenFile(/wplus.txt, w+): got error %v, want nil", err)
	}
	if err := d.Write(ctx, fd, []byte("next")); err != nil {
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if err := d.Close(ctx, fd); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	if got := readFile(t, d, "/wplus.txt"); got != "next" {
		t.Errorf("readFile(/wplus.txt): got %q, want %q", got, "next")
	}
}

func testFilesReadWriteOverwrites(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	writeFile(t, d, "/rplus.txt", "hello")

	fd, err := d.OpenFile(ctx, "/rplus.txt", vfs.ModeReadWrite)
	if err != nil {
		t.Fatalf("OpenFile(/rplus.txt, r+): got error %v, want nil", err)
	}
	if err := d.Write(ctx, fd, []byte("J")); err != nil {
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	rest, err := d.Read(ctx, fd, vfs.ReadAll)
	if err != nil {
		t.Fatalf("Read(): got error %v, want nil", err)
	}
	if string(rest) != "ello" {
		t.Errorf("Read() after Write(J): got %q, want %q", rest, "ello")
	}
	if err := d.Close(ctx, fd); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	if got := readFile(t, d, "/rplus.txt"); got != "Jello" {
		t.Errorf("readFile(/rplus.txt): got %q, want %q", got, "Jello")
	}
}

func testFilesAppend(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	writeFile(t, d, "/append.txt", "abc")

	fd, err := d.OpenFile(ctx, "/append.txt", vfs.ModeAppend)
	if err != nil {
		t.Fatalf("OpenFile(/append.txt, a): got error %v, want nil", err)
	}
	for _, chunk := range []string{"def", "ghi"} {
		if err := d.Write(ctx, fd, []byte(chunk)); err != nil {
			t.Fatalf("Write(%q): got error %v, want nil", chunk, err)
		}
	}
	if err := d.Close(ctx, fd); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	if got := readFile(t, d, "/append.txt"); got != "abcdefghi" {
		t.Errorf("readFile(/append.txt): got %q, want %q", got, "abcdefghi")
	}
}

func testFilesAppendCreate(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	fd, err := d.OpenFile(ctx, "/fresh.log", vfs.ModeAppendCreate)
	if err != nil {
		t.Fatalf("OpenFile(/fresh.log, a+): got error %v, want nil", err)
	}
	if err := d.Write(ctx, fd, []byte("line\n")); err != nil {
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if err := d.Close(ctx, fd); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	if got := readFile(t, d, "/fresh.log"); got != "line\n" {
		t.Errorf("readFile(/fresh.log): got %q, want %q", got, "line\n")
	}
}

func testFilesOpenNotExist(t *testing.T, d vfs.Driver) {
	ctx := context.Background()
	for _, mode := range []vfs.Mode{vfs.ModeRead, vfs.ModeReadWrite, vfs.ModeAppend} {
		_, err := d.OpenFile(ctx, "/missing.txt", mode)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("OpenFile(/missing.txt, %s): got error %v, want fs.ErrNotExist", mode, err)
		}
	}
}

func testFilesCreateNested(t *testing.T, d vfs.Driver, cfg Config) {
	ctx := context.Background()
	if !cfg.ImplicitParentDirs {
		mkdir(t, d, "/nested")
	}
	writeFile(t, d, "/nested/deep.txt", "deep")
	if got := readFile(t, d, "/nested/deep.txt"); got != "deep" {
		t.Errorf("readFile(/nested/deep.txt): got %q, want %q", got, "deep")
	}

	st, err := d.Stat(ctx, "/nested/deep.txt")
	if err != nil {
		t.Fatalf("Stat(/nested/deep.txt): got error %v, want nil", err)
	}
	if !st.IsFile() || st.Size != 4 {
		t.Errorf("Stat(/nested/deep.txt): got file=%v size=%d, want file=true size=4", st.IsFile(), st.Size)
	}
}
