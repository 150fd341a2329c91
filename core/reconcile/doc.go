// Package reconcile classifies objects into the actions needed to make one side of
// a sync match the other.
//
// The reconciler is pure: it takes fully built inventories and returns a Plan. It
// performs no I/O, so the remote listing is always complete before any object is
// classified.
//
// # Classification
//
// Content-digest equality is the only signal for "unchanged":
//
//   - same key, same digest: nothing to do
//   - same digest under another key: skip as a duplicate
//   - new key: upload
//   - existing key, different digest: update
//
// Duplicate detection takes priority over update detection, and it also covers
// files planned earlier in the same pass, so identical local files are transferred
// at most once. Download plans compare key and digest together and never skip on
// duplicate content. Delete plans list every remote object.
//
// # Ordering
//
// Every list in a Plan is sorted by key so prompts and logs are reproducible
// across runs.
//
// # Usage Example
//
//	plan := reconcile.PlanUpload(localInv, remoteInv)
//	for _, a := range plan.Upload {
//	    fmt.Println(a.Key)
//	}
package reconcile
