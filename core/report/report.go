package report

import (
	"fmt"
	"io"
	"sort"

	"bucket-sync/core/inventory"

	"github.com/dustin/go-humanize"
)

// PreviewSize is the number of keys shown at each end of a preview.
const PreviewSize = 3

// FormatSize renders a byte count with binary units, e.g. "1.5 KiB".
func FormatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}

// Preview returns up to n keys from each end of keys. The two slices never
// overlap; tail is empty when head already covers everything.
func Preview(keys []string, n int) (head, tail []string) {
	if n <= 0 {
		return nil, nil
	}
	if len(keys) <= n {
		return keys, nil
	}
	head = keys[:n]
	start := len(keys) - n
	if start < n {
		start = n
	}
	return head, keys[start:]
}

// Listing summarises a remote inventory.
type Listing struct {
	Prefix    string
	Count     int
	TotalSize int64
	First     []string
	Last      []string
	Objects   []inventory.RemoteObject
}

// Summarize builds a listing with n keys previewed at each end.
func Summarize(remote *inventory.Remote, n int) Listing {
	objects := make([]inventory.RemoteObject, 0, remote.Len())
	for _, obj := range remote.Objects {
		objects = append(objects, obj)
	}
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].Key < objects[j].Key
	})

	keys := make([]string, len(objects))
	for i, obj := range objects {
		keys[i] = obj.Key
	}
	first, last := Preview(keys, n)

	return Listing{
		Prefix:    remote.Prefix,
		Count:     len(objects),
		TotalSize: remote.TotalSize(),
		First:     first,
		Last:      last,
		Objects:   objects,
	}
}

// WriteListing prints every object followed by the preview and totals.
func WriteListing(w io.Writer, l Listing, verbose bool) error {
	if verbose {
		for _, obj := range l.Objects {
			if _, err := fmt.Fprintf(w, "%12s  %s\n", FormatSize(obj.Size), obj.Key); err != nil {
				return err
			}
		}
	}
	if err := WritePreview(w, l.First, l.Last, l.Count); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total size: %s\n", FormatSize(l.TotalSize))
	return err
}

// WritePreview prints the first and last keys and the total count.
func WritePreview(w io.Writer, first, last []string, count int) error {
	for _, k := range first {
		if _, err := fmt.Fprintf(w, "  %s\n", k); err != nil {
			return err
		}
	}
	if len(last) > 0 {
		if count > len(first)+len(last) {
			if _, err := fmt.Fprintln(w, "  ..."); err != nil {
				return err
			}
		}
		for _, k := range last {
			if _, err := fmt.Fprintf(w, "  %s\n", k); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "Total objects: %s\n", humanize.Comma(int64(count)))
	return err
}
