// Package inventory builds the two comparable snapshots a sync run works from.
//
// A Local inventory maps object keys to the content digest of every non-ignored
// regular file below a root directory. A Remote inventory is built from a full,
// paginated listing of a bucket prefix and exposes three views over that one pass:
// key to etag, etag to key, and key to object metadata.
//
// Both inventories are built fresh for every run and never persisted. They share no
// mutable state, so the caller may build them in either order.
//
// # Ignore rules
//
// Local files are filtered with gitignore syntax. The defaults skip dotfiles,
// dot-directories and compiled Python artifacts:
//
//	.*
//	*.pyc
//
// # Remote filters
//
// A Filter narrows the remote listing by inclusive size bounds, a regular
// expression on the key, and a doublestar glob. Filtering happens while the listing
// is read, so filtered objects take part in neither duplicate detection nor
// list/delete scope.
package inventory
