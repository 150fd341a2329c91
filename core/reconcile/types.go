package reconcile

// ActionType represents the classification of one object.
type ActionType string

const (
	// ActionSkip leaves the object alone because its content is already stored elsewhere.
	ActionSkip ActionType = "skip"
	// ActionUpload puts a new object at a key that does not exist remotely.
	ActionUpload ActionType = "upload"
	// ActionUpdate overwrites an existing key whose content changed.
	ActionUpdate ActionType = "update"
	// ActionDownload fetches a remote object into the local tree.
	ActionDownload ActionType = "download"
	// ActionDelete removes a remote object.
	ActionDelete ActionType = "delete"
)

// Action represents a planned operation on one object.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the object key.
	Key string `json:"key"`

	// LocalPath is the file read for uploads or written for downloads.
	LocalPath string `json:"local_path,omitempty"`

	// Digest is the canonical content digest of the source side.
	Digest string `json:"digest,omitempty"`

	// Size is the source size in bytes.
	Size int64 `json:"size"`

	// DuplicateOf names the key already holding identical content.
	// Only populated for ActionSkip in upload plans.
	DuplicateOf string `json:"duplicate_of,omitempty"`
}

// Plan holds the classified actions of one reconciliation pass.
// Every list is sorted by key.
type Plan struct {
	Upload   []Action `json:"upload"`
	Update   []Action `json:"update"`
	Skip     []Action `json:"skip"`
	Download []Action `json:"download"`
	Delete   []Action `json:"delete"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	Uploads     int   `json:"uploads"`
	Updates     int   `json:"updates"`
	Skips       int   `json:"skips"`
	Downloads   int   `json:"downloads"`
	Deletes     int   `json:"deletes"`
	UploadBytes int64 `json:"upload_bytes"`
	UpdateBytes int64 `json:"update_bytes"`
	// DownloadBytes also covers delete candidates, which are sized from the listing.
	DownloadBytes int64 `json:"download_bytes"`
}
