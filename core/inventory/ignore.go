package inventory

import (
	gitignore "github.com/sabhiram/go-gitignore"
)

// DefaultIgnorePatterns skip dotfiles, dot-directories and compiled artifacts.
var DefaultIgnorePatterns = []string{
	".*",
	"*.pyc",
}

// IgnoreList matches relative paths against gitignore-style patterns.
type IgnoreList struct {
	patterns []string
	ignore   *gitignore.GitIgnore
}

// NewIgnoreList compiles the default patterns plus any extra ones.
func NewIgnoreList(extra ...string) *IgnoreList {
	patterns := make([]string, 0, len(DefaultIgnorePatterns)+len(extra))
	patterns = append(patterns, DefaultIgnorePatterns...)
	for _, p := range extra {
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	return &IgnoreList{
		patterns: patterns,
		ignore:   gitignore.CompileIgnoreLines(patterns...),
	}
}

// ShouldIgnore reports whether the slash-separated relative path is ignored.
func (l *IgnoreList) ShouldIgnore(relPath string) bool {
	if l == nil || relPath == "" {
		return false
	}
	return l.ignore.MatchesPath(relPath)
}

// Patterns returns the compiled pattern lines.
func (l *IgnoreList) Patterns() []string {
	return append([]string(nil), l.patterns...)
}
