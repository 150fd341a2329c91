// Package utils provides common utility functions for the bucket-sync application.
//
// It holds the key and path conventions shared by the inventory builders, the
// reconciler and the executor, so local files and remote objects always meet
// under the same key.
//
// # Object Keys
//
// Keys are relative, slash-separated paths:
//   - NormalizeKey converts a relative filesystem path into a key, stripping
//     leading "./" and "/" segments and converting OS separators.
//   - IsDirMarker reports keys ending in KeySeparator. Such zero-byte placeholders
//     are created by some consoles and are never synced.
//   - DirOf returns the directory part of a key.
//
// # Local Paths
//
// LocalPath maps a key back to a file below the local root, using the OS separator.
//
// # Usage
//
//	key := utils.NormalizeKey("./docs/readme.md") // "docs/readme.md"
//	path := utils.LocalPath("/srv/data", key)     // "/srv/data/docs/readme.md"
package utils
