// Package mirror runs the sync flows of bucket-sync.
//
// Every flow validates its configuration, checks the bucket, builds the remote
// inventory to completion, builds the local inventory where needed, classifies
// and finally hands the plan to the executor.
//
// # Flows
//
//   - Upload: pushes new files, gates overwrites of changed keys, skips content already stored.
//   - Download: fetches objects whose local copy is missing or differs.
//   - List: prints the count, total size and the first and last keys under the prefix.
//   - Delete: removes the listed objects once the operator types YES.
//
// The size, name and glob filters narrow Download, List and Delete. Upload always
// compares against the whole prefix so deduplication sees every stored object.
package mirror
