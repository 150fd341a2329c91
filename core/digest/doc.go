// Package digest computes content digests for local files and normalises the
// etags reported by the object store so both sides compare in one canonical form.
//
// The canonical form is lower-case hexadecimal with any surrounding double quotes
// removed. Local digests are produced in that form directly; remote etags must be
// passed through Normalize before they are compared or indexed.
//
// # Usage
//
//	sum, err := digest.File("docs/a.txt")
//	same := sum == digest.Normalize(`"D41D8CD98F00B204E9800998ECF8427E"`)
package digest
