package site

import (
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/navmark/internal/navmark"
)

// MatchesInclude returns true if the given relative path matches any of the
// include patterns. If patterns is empty, everything is included.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// MatchesExclude returns true if the given relative path matches any of the
// exclude patterns. If patterns is empty, nothing is excluded.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny checks if relPath matches any of the given glob patterns,
// either as a whole or by its base name.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := path.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// PagePath returns the request path a browser would report for the page
// stored at relPath inside the site directory. With pretty URLs an
// index.html is addressed by its directory: about/index.html is /about/.
// The result is escaped the way location.pathname is, which is also how
// navmark resolves hrefs.
func PagePath(relPath string, pretty bool) string {
	p := "/" + filepath.ToSlash(relPath)
	if pretty {
		switch path.Base(p) {
		case "index.html", "index.htm":
			p = path.Dir(p)
			if p != "/" {
				p += "/"
			}
		}
	}
	return navmark.EscapePath(p)
}
