// Package resolve expands symbolic links in slash separated paths for drivers
// whose backends expose Lstat and Readlink but no realpath primitive.
package resolve

import (
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"syscall"
)

// MaxHops bounds the number of links followed while resolving one path.
const MaxHops = 40

// Backend is the subset of a filesystem needed to resolve links.
type Backend interface {
	Lstat(name string) (fs.FileInfo, error)
	Readlink(name string) (string, error)
}

// Realpath resolves every symbolic link in p and returns the cleaned absolute
// path. Each component must exist. Relative targets are resolved against the
// directory holding the link; absolute targets restart at the root.
func Realpath(b Backend, p string) (string, error) {
	orig := path.Clean("/" + filepath.ToSlash(p))
	resolved := "/"
	pending := Split(orig)

	for hops := 0; len(pending) > 0; {
		next := path.Join(resolved, pending[0])
		pending = pending[1:]

		info, err := b.Lstat(next)
		if err != nil {
			return "", wrap(orig, err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			resolved = next
			continue
		}

		hops++
		if hops > MaxHops {
			return "", wrap(orig, syscall.ELOOP)
		}
		target, err := b.Readlink(next)
		if err != nil {
			return "", wrap(orig, err)
		}
		target = filepath.ToSlash(target)
		if path.IsAbs(target) {
			resolved = "/"
		}
		pending = append(Split(target), pending...)
	}
	return resolved, nil
}

// Split returns the non-empty components of p, dropping "." elements.
func Split(p string) []string {
	var parts []string
	for _, part := range strings.Split(filepath.ToSlash(p), "/") {
		if part != "" && part != "." {
			parts = append(parts, part)
		}
	}
	return parts
}

func wrap(p string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return err
	}
	return &fs.PathError{Op: "realpath", Path: p, Err: err}
}

// Within reports whether p is dir or lies beneath it. Both paths must be
// clean and absolute.
func Within(dir, p string) bool {
	if dir == "/" || p == dir {
		return true
	}
	return strings.HasPrefix(p, dir+"/")
}
