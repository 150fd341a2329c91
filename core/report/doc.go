// Package report formats sizes and summarises object listings for operators.
//
// It turns inventories and plans into the short, stable text a person reads at a
// terminal before confirming a transfer or a delete.
//
// # Sizes
//
// FormatSize renders byte counts with IEC units (KiB, MiB, GiB) through
// github.com/dustin/go-humanize. Object counts use thousands separators.
//
// # Previews
//
// Long key lists are never printed in full by default. Preview returns the first
// and last PreviewSize keys without overlap, and WritePreview prints them with an
// ellipsis line between the two ends when keys were left out:
//
//	  a.txt
//	  b.txt
//	  c.txt
//	  ...
//	  x.txt
//	  y.txt
//	  z.txt
//	Total objects: 1,204
//
// # Listings
//
//   - Summarize: builds a Listing (count, total size, preview, sorted objects) from a remote inventory.
//   - WriteListing: prints the preview and totals, or every object with its size when verbose.
//
// # Usage
//
//	listing := report.Summarize(remote, report.PreviewSize)
//	if err := report.WriteListing(os.Stdout, listing, false); err != nil {
//	    return err
//	}
package report
