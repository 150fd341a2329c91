package reconcile

import "sort"

// Summary counts the actions in the plan.
func (p *Plan) Summary() PlanSummary {
	return PlanSummary{
		Uploads:       len(p.Upload),
		Updates:       len(p.Update),
		Skips:         len(p.Skip),
		Downloads:     len(p.Download),
		Deletes:       len(p.Delete),
		UploadBytes:   totalSize(p.Upload),
		UpdateBytes:   totalSize(p.Update),
		DownloadBytes: totalSize(p.Download) + totalSize(p.Delete),
	}
}

// IsEmpty reports whether the plan requires no transfer or delete.
func (p *Plan) IsEmpty() bool {
	return len(p.Upload) == 0 && len(p.Update) == 0 && len(p.Download) == 0 && len(p.Delete) == 0
}

// Keys returns the keys of actions in order.
func Keys(actions []Action) []string {
	keys := make([]string, len(actions))
	for i, a := range actions {
		keys[i] = a.Key
	}
	return keys
}

func (p *Plan) sort() {
	for _, list := range [][]Action{p.Upload, p.Update, p.Skip, p.Download, p.Delete} {
		sortByKey(list)
	}
}

func sortByKey(actions []Action) {
	sort.Slice(actions, func(i, j int) bool {
		return actions[i].Key < actions[j].Key
	})
}

func totalSize(actions []Action) int64 {
	var total int64
	for _, a := range actions {
		total += a.Size
	}
	return total
}
