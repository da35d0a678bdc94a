// Package pathutil maps vfs paths onto MinIO object keys.
package pathutil

import (
	"path"
	"strings"
)

// Normalize cleans a path, converts backslashes and returns it in absolute
// form. The empty path is the root.
func Normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	return path.Clean("/" + p)
}

// NormalizePrefix returns the key prefix without leading or trailing
// slashes. It returns "" for an empty or root prefix.
func NormalizePrefix(prefix string) string {
	prefix = strings.Trim(Normalize(prefix), "/")
	return prefix
}

// Key maps the vfs path p to an object key beneath prefix. The root maps to
// the prefix itself.
func Key(prefix, p string) string {
	rel := strings.TrimPrefix(Normalize(p), "/")
	switch {
	case rel == "":
		return prefix
	case prefix == "":
		return rel
	default:
		return prefix + "/" + rel
	}
}

// DirPrefix returns the listing prefix for the directory key. The bucket
// root lists with the empty prefix.
func DirPrefix(key string) string {
	if key == "" {
		return ""
	}
	return key + "/"
}

// Child returns the entry name of key relative to the listing prefix and
// reports whether it is a directory. ok is false for the directory marker
// itself.
func Child(dirPrefix, key string) (name string, isDir, ok bool) {
	name = strings.TrimPrefix(key, dirPrefix)
	isDir = strings.HasSuffix(name, "/")
	name = strings.TrimSuffix(name, "/")
	return name, isDir, name != ""
}
