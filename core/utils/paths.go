package utils

import (
	"path"
	"path/filepath"
	"strings"
)

// KeySeparator is the path separator used in object keys.
const KeySeparator = "/"

// NormalizeKey converts a relative filesystem path into an object key.
// It uses forward slashes and strips any leading "./" and "/" segments.
func NormalizeKey(p string) string {
	key := filepath.ToSlash(p)
	for {
		switch {
		case strings.HasPrefix(key, "./"):
			key = key[2:]
		case strings.HasPrefix(key, "/"):
			key = key[1:]
		default:
			if key == "." {
				return ""
			}
			return key
		}
	}
}

// IsDirMarker reports whether an object key denotes a directory placeholder.
func IsDirMarker(key string) bool {
	return strings.HasSuffix(key, KeySeparator)
}

// DirOf returns the directory part of a key by stripping its final segment.
// A key without a separator has an empty directory.
func DirOf(key string) string {
	dir := path.Dir(key)
	if dir == "." {
		return ""
	}
	return dir
}

// LocalPath maps an object key to a path below root.
func LocalPath(root, key string) string {
	return filepath.Join(root, filepath.FromSlash(key))
}
