package inventory

// LocalObject is a regular file found under the local root.
type LocalObject struct {
	// Key is the normalised path relative to the root, used as the object key.
	Key string
	// Path is the filesystem path of the file.
	Path string
	// Digest is the canonical content digest.
	Digest string
	// Size is the file size in bytes.
	Size int64
}

// Local is the local inventory, keyed by object key.
type Local struct {
	// Root is the directory keys are relative to.
	Root string
	// Objects maps key to file.
	Objects map[string]LocalObject
}

// NewLocal returns an empty local inventory rooted at root.
func NewLocal(root string) *Local {
	return &Local{Root: root, Objects: make(map[string]LocalObject)}
}

// Len returns the number of files in the inventory.
func (l *Local) Len() int {
	return len(l.Objects)
}

// Digest returns the digest recorded for key.
func (l *Local) Digest(key string) (string, bool) {
	obj, ok := l.Objects[key]
	return obj.Digest, ok
}

// RemoteObject is an object listed from the bucket.
type RemoteObject struct {
	// Key is the bucket-relative object key.
	Key string
	// ETag is the canonical content identity (quotes stripped, lower-case).
	ETag string
	// Size is the object size in bytes.
	Size int64
}

// Remote is the remote inventory built from one listing pass.
type Remote struct {
	// Prefix is the key prefix the listing was scoped to.
	Prefix string
	// KeyToETag maps key to etag.
	KeyToETag map[string]string
	// ETagToKey maps etag to the last key seen with it.
	ETagToKey map[string]string
	// Objects maps key to object metadata.
	Objects map[string]RemoteObject
}

// NewRemote returns an empty remote inventory for prefix.
func NewRemote(prefix string) *Remote {
	return &Remote{
		Prefix:    prefix,
		KeyToETag: make(map[string]string),
		ETagToKey: make(map[string]string),
		Objects:   make(map[string]RemoteObject),
	}
}

// Add records obj in all three views. Etag collisions keep the last key seen.
func (r *Remote) Add(obj RemoteObject) {
	r.KeyToETag[obj.Key] = obj.ETag
	r.ETagToKey[obj.ETag] = obj.Key
	r.Objects[obj.Key] = obj
}

// Len returns the number of objects in the inventory.
func (r *Remote) Len() int {
	return len(r.Objects)
}

// TotalSize returns the summed size of all objects.
func (r *Remote) TotalSize() int64 {
	var total int64
	for _, obj := range r.Objects {
		total += obj.Size
	}
	return total
}
