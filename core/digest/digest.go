package digest

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// chunkSize is the read buffer used when streaming a file through the hash.
const chunkSize = 64 * 1024

// File streams the file at path through MD5 and returns the canonical digest.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for hashing: %w", path, err)
	}
	defer f.Close()

	return Reader(f)
}

// Reader hashes everything read from r.
func Reader(r io.Reader) (string, error) {
	h := md5.New()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", fmt.Errorf("failed to hash content: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Normalize converts a store etag (or any digest) into canonical form.
func Normalize(etag string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(etag), `"`))
}
