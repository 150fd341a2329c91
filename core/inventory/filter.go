package inventory

import (
	"fmt"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter narrows a remote listing. Zero values disable each criterion.
type Filter struct {
	// MinSize excludes objects smaller than this many bytes.
	MinSize int64
	// MaxSize excludes objects larger than this many bytes.
	MaxSize int64
	// Name keeps only keys matching the expression.
	Name *regexp.Regexp
	// Glob keeps only keys matching the doublestar pattern.
	Glob string
}

// NewFilter validates and builds a Filter from raw option values.
func NewFilter(minSize, maxSize int64, namePattern, glob string) (Filter, error) {
	f := Filter{MinSize: minSize, MaxSize: maxSize, Glob: glob}

	if minSize < 0 || maxSize < 0 {
		return Filter{}, fmt.Errorf("size bounds must not be negative")
	}
	if maxSize > 0 && minSize > maxSize {
		return Filter{}, fmt.Errorf("min size %d exceeds max size %d", minSize, maxSize)
	}
	if namePattern != "" {
		re, err := regexp.Compile(namePattern)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid name pattern %q: %w", namePattern, err)
		}
		f.Name = re
	}
	if glob != "" && !doublestar.ValidatePattern(glob) {
		return Filter{}, fmt.Errorf("invalid glob pattern %q", glob)
	}

	return f, nil
}

// Match reports whether obj passes every configured criterion.
func (f Filter) Match(obj RemoteObject) bool {
	if f.MinSize > 0 && obj.Size < f.MinSize {
		return false
	}
	if f.MaxSize > 0 && obj.Size > f.MaxSize {
		return false
	}
	if f.Name != nil && !f.Name.MatchString(obj.Key) {
		return false
	}
	if f.Glob != "" {
		ok, err := doublestar.Match(f.Glob, obj.Key)
		if err != nil || !ok {
			return false
		}
	}
	return true
}
