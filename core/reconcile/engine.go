package reconcile

import (
	"sort"

	"bucket-sync/core/inventory"
	"bucket-sync/core/utils"
)

// PlanUpload classifies every local file against the complete remote inventory.
//
// Local keys are visited in sorted order. A file whose key already holds the same
// digest needs nothing. Otherwise, content already stored under any key, or already
// planned for upload by an earlier file in this pass, is skipped as a duplicate;
// duplicate detection wins over path-based update detection. Remaining files are
// uploads when the key is new and updates when it exists with other content.
//
// Only uploads count as planned content. Updates may still be declined by the
// overwrite policy, and a file skipped against a declined update would never
// reach the bucket.
func PlanUpload(local *inventory.Local, remote *inventory.Remote) *Plan {
	plan := &Plan{}
	// digest -> first key planned for upload in this pass
	planned := make(map[string]string)

	for _, key := range sortedKeys(local.Objects) {
		obj := local.Objects[key]
		action := Action{Key: key, LocalPath: obj.Path, Digest: obj.Digest, Size: obj.Size}

		remoteETag, exists := remote.KeyToETag[key]
		if exists && remoteETag == obj.Digest {
			continue
		}

		if dup, ok := remote.ETagToKey[obj.Digest]; ok {
			action.Type = ActionSkip
			action.DuplicateOf = dup
			plan.Skip = append(plan.Skip, action)
			continue
		}
		if first, ok := planned[obj.Digest]; ok {
			action.Type = ActionSkip
			action.DuplicateOf = first
			plan.Skip = append(plan.Skip, action)
			continue
		}
		if !exists {
			planned[obj.Digest] = key
			action.Type = ActionUpload
			plan.Upload = append(plan.Upload, action)
		} else {
			action.Type = ActionUpdate
			plan.Update = append(plan.Update, action)
		}
	}

	plan.sort()
	return plan
}

// PlanDownload classifies every remote object against the local inventory.
// Only an identical key with an identical digest counts as already present.
func PlanDownload(remote *inventory.Remote, local *inventory.Local) *Plan {
	plan := &Plan{}

	for _, key := range sortedKeys(remote.Objects) {
		obj := remote.Objects[key]
		action := Action{
			Key:       key,
			LocalPath: utils.LocalPath(local.Root, key),
			Digest:    obj.ETag,
			Size:      obj.Size,
		}

		if sum, ok := local.Digest(key); ok && sum == obj.ETag {
			action.Type = ActionSkip
			plan.Skip = append(plan.Skip, action)
			continue
		}

		action.Type = ActionDownload
		plan.Download = append(plan.Download, action)
	}

	plan.sort()
	return plan
}

// PlanDelete makes every remote object a delete candidate. No content is compared.
func PlanDelete(remote *inventory.Remote) *Plan {
	plan := &Plan{Delete: make([]Action, 0, remote.Len())}

	for _, key := range sortedKeys(remote.Objects) {
		obj := remote.Objects[key]
		plan.Delete = append(plan.Delete, Action{
			Type:   ActionDelete,
			Key:    key,
			Digest: obj.ETag,
			Size:   obj.Size,
		})
	}

	return plan
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
