package reconcile

import (
	"fmt"
	"path/filepath"
	"testing"

	"bucket-sync/core/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localInv(entries map[string]string) *inventory.Local {
	inv := inventory.NewLocal("/root")
	for key, sum := range entries {
		inv.Objects[key] = inventory.LocalObject{Key: key, Path: "/root/" + key, Digest: sum, Size: int64(len(key))}
	}
	return inv
}

func remoteInv(entries map[string]string) *inventory.Remote {
	inv := inventory.NewRemote("")
	for key, etag := range entries {
		inv.Add(inventory.RemoteObject{Key: key, ETag: etag, Size: 10})
	}
	return inv
}

// TestPlanUpload_ExampleScenario covers a duplicate, a new file and an unchanged file.
func TestPlanUpload_ExampleScenario(t *testing.T) {
	local := localInv(map[string]string{"a.txt": "d1", "b.txt": "d1", "c.txt": "d2"})
	remote := remoteInv(map[string]string{"a.txt": "d1"})

	plan := PlanUpload(local, remote)

	require.Len(t, plan.Skip, 1)
	assert.Equal(t, "b.txt", plan.Skip[0].Key)
	assert.Equal(t, "a.txt", plan.Skip[0].DuplicateOf)
	assert.Equal(t, ActionSkip, plan.Skip[0].Type)

	require.Len(t, plan.Upload, 1)
	assert.Equal(t, "c.txt", plan.Upload[0].Key)
	assert.Equal(t, "/root/c.txt", plan.Upload[0].LocalPath)

	assert.Empty(t, plan.Update)
	for _, a := range append(append(plan.Upload, plan.Update...), plan.Skip...) {
		assert.NotEqual(t, "a.txt", a.Key, "unchanged file must not be planned")
	}
}

func TestPlanUpload_Classification(t *testing.T) {
	tests := []struct {
		name       string
		local      map[string]string
		remote     map[string]string
		wantUpload []string
		wantUpdate []string
		wantSkip   []string
	}{
		{
			name:       "NewKeyIsUploadNeverUpdate",
			local:      map[string]string{"new.txt": "d9"},
			remote:     map[string]string{"old.txt": "d1"},
			wantUpload: []string{"new.txt"},
		},
		{
			name:       "ChangedContentIsUpdate",
			local:      map[string]string{"a.txt": "d2"},
			remote:     map[string]string{"a.txt": "d1"},
			wantUpdate: []string{"a.txt"},
		},
		{
			name:     "DuplicateWinsOverUpdate",
			local:    map[string]string{"a.txt": "d2"},
			remote:   map[string]string{"a.txt": "d1", "b.txt": "d2"},
			wantSkip: []string{"a.txt"},
		},
		{
			name:       "IdenticalLocalFilesTransferOnce",
			local:      map[string]string{"x/1.txt": "dd", "x/2.txt": "dd", "x/3.txt": "dd"},
			remote:     map[string]string{},
			wantUpload: []string{"x/1.txt"},
			wantSkip:   []string{"x/2.txt", "x/3.txt"},
		},
		{
			name:       "IdenticalLocalFilesAcrossUploadAndUpdate",
			local:      map[string]string{"a.txt": "dd", "b.txt": "dd"},
			remote:     map[string]string{"b.txt": "old"},
			wantUpload: []string{"a.txt"},
			wantSkip:   []string{"b.txt"},
		},
		{
			name:       "LocalDuplicateOfUpdateStillUploads",
			local:      map[string]string{"a.txt": "dd", "b.txt": "dd"},
			remote:     map[string]string{"a.txt": "old"},
			wantUpload: []string{"b.txt"},
			wantUpdate: []string{"a.txt"},
		},
		{
			name:       "LocalDuplicatesOfUpdateShareOneUpload",
			local:      map[string]string{"a.txt": "dd", "b.txt": "dd", "c.txt": "dd"},
			remote:     map[string]string{"a.txt": "old"},
			wantUpload: []string{"b.txt"},
			wantUpdate: []string{"a.txt"},
			wantSkip:   []string{"c.txt"},
		},
		{
			name:   "EmptyLocal",
			local:  map[string]string{},
			remote: map[string]string{"a.txt": "d1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanUpload(localInv(tt.local), remoteInv(tt.remote))
			assert.Equal(t, orEmpty(tt.wantUpload), Keys(plan.Upload))
			assert.Equal(t, orEmpty(tt.wantUpdate), Keys(plan.Update))
			assert.Equal(t, orEmpty(tt.wantSkip), Keys(plan.Skip))
		})
	}
}

// TestPlanUpload_Idempotent simulates applying a plan and planning again.
func TestPlanUpload_Idempotent(t *testing.T) {
	local := localInv(map[string]string{"a.txt": "d1", "b.txt": "d2", "c.txt": "d2", "docs/d.txt": "d3"})
	remote := remoteInv(map[string]string{"b.txt": "old"})

	first := PlanUpload(local, remote)
	require.False(t, first.IsEmpty())

	for _, a := range append(first.Upload, first.Update...) {
		remote.Add(inventory.RemoteObject{Key: a.Key, ETag: a.Digest, Size: a.Size})
	}

	second := PlanUpload(local, remote)
	assert.Empty(t, second.Upload)
	assert.Empty(t, second.Update)
}

func TestPlanUpload_SortedOutput(t *testing.T) {
	entries := make(map[string]string)
	for i := 20; i > 0; i-- {
		entries[fmt.Sprintf("k%02d", i)] = fmt.Sprintf("d%02d", i)
	}

	plan := PlanUpload(localInv(entries), remoteInv(nil))
	keys := Keys(plan.Upload)
	require.Len(t, keys, 20)
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}

func TestPlanDownload(t *testing.T) {
	local := localInv(map[string]string{"a.txt": "d1", "b.txt": "stale"})
	local.Root = "/dest"
	remote := remoteInv(map[string]string{"a.txt": "d1", "b.txt": "d2", "c/c.txt": "d1"})

	plan := PlanDownload(remote, local)

	assert.Equal(t, []string{"a.txt"}, Keys(plan.Skip))
	assert.Equal(t, []string{"b.txt", "c/c.txt"}, Keys(plan.Download))
	assert.Equal(t, filepath.Join("/dest", "c", "c.txt"), plan.Download[1].LocalPath)
	assert.Empty(t, plan.Upload)
	assert.Empty(t, plan.Update)
}

func TestPlanDelete(t *testing.T) {
	remote := remoteInv(map[string]string{"z.txt": "d1", "a.txt": "d1", "m/n.txt": "d2"})

	plan := PlanDelete(remote)

	assert.Equal(t, []string{"a.txt", "m/n.txt", "z.txt"}, Keys(plan.Delete))
	for _, a := range plan.Delete {
		assert.Equal(t, ActionDelete, a.Type)
	}
	assert.Equal(t, int64(30), plan.Summary().DownloadBytes)
}

func TestPlan_Summary(t *testing.T) {
	plan := PlanUpload(
		localInv(map[string]string{"a": "1", "bb": "2", "ccc": "2"}),
		remoteInv(map[string]string{"a": "old"}),
	)

	s := plan.Summary()
	assert.Equal(t, 1, s.Uploads)
	assert.Equal(t, 1, s.Updates)
	assert.Equal(t, 1, s.Skips)
	assert.Equal(t, int64(2), s.UploadBytes)
	assert.Equal(t, int64(1), s.UpdateBytes)
}

func orEmpty(keys []string) []string {
	if keys == nil {
		return []string{}
	}
	return keys
}
