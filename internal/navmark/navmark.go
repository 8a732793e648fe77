// Package navmark decides which menu entries of a page are "active".
//
// An entry is active when its link, resolved against the site origin,
// has exactly the same path as the page being rendered. The package is
// pure: it knows nothing about HTML. Callers discover entries, call Match
// and apply the marker themselves (see package htmlnav).
package navmark

import (
	"fmt"
	"net/url"
	"strings"
)

// Entry is one menu item as found in a document.
type Entry struct {
	// Index is the position of the entry among all menu items, in document order.
	Index int
	// Href is the raw value of the link's href attribute.
	Href string
	// HasLink is false when the menu item contains no link element.
	HasLink bool
	// HasHref is false when the link has no href attribute at all.
	// An empty attribute (href="") is present and resolves to "/".
	HasHref bool
}

// Result is the resolution outcome for a single entry. Exactly one of
// Path and Err is meaningful.
type Result struct {
	Entry Entry
	Path  string
	Err   error
}

// OK reports whether the entry resolved to a path.
func (r Result) OK() bool { return r.Err == nil }

// Origin is a parsed site origin used as the base for href resolution.
type Origin struct {
	base *url.URL
}

// ParseOrigin parses an origin such as "https://example.com". Any path,
// query or fragment on the input is discarded; hrefs always resolve
// against the origin root.
func ParseOrigin(raw string) (Origin, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Origin{}, fmt.Errorf("%w %q: %v", ErrInvalidOrigin, raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return Origin{}, fmt.Errorf("%w %q: scheme and host are required", ErrInvalidOrigin, raw)
	}
	return Origin{base: &url.URL{Scheme: u.Scheme, User: u.User, Host: u.Host, Path: "/"}}, nil
}

// IsZero reports whether o was never parsed.
func (o Origin) IsZero() bool { return o.base == nil }

// String returns the origin as scheme://host.
func (o Origin) String() string {
	if o.base == nil {
		return ""
	}
	return o.base.Scheme + "://" + o.base.Host
}

// Resolve returns the escaped path component of href resolved against the
// origin. Query and fragment are dropped. Relative references resolve from
// the origin root, so "about" and "/about" give the same path.
func (o Origin) Resolve(href string) (string, error) {
	if o.base == nil {
		return "", ErrInvalidOrigin
	}
	ref, err := url.Parse(normalizeHref(strings.TrimFunc(href, isC0OrSpace), o.base.Scheme))
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrMalformedHref, href, err)
	}
	u := o.base.ResolveReference(ref)
	if u.Opaque != "" {
		// mailto:, tel:, javascript: and friends.
		return u.Opaque, nil
	}
	p := u.EscapedPath()
	if p == "" && u.Host != "" {
		p = "/"
	}
	return p, nil
}

// ResolvePath is shorthand for ParseOrigin followed by Origin.Resolve.
func ResolvePath(href, origin string) (string, error) {
	o, err := ParseOrigin(origin)
	if err != nil {
		return "", err
	}
	return o.Resolve(href)
}

// ResolveAll resolves every entry independently. A failure on one entry is
// recorded in its Result and never affects the others.
func (o Origin) ResolveAll(entries []Entry) []Result {
	results := make([]Result, len(entries))
	for i, e := range entries {
		results[i] = Result{Entry: e}
		switch {
		case !e.HasLink:
			results[i].Err = ErrMissingLink
		case !e.HasHref:
			results[i].Err = ErrMissingHref
		default:
			results[i].Path, results[i].Err = o.Resolve(e.Href)
		}
	}
	return results
}

// Active returns the indices of the results whose path equals currentPath.
// Comparison is exact: no trailing-slash or case normalisation and no
// prefix matching. Every matching entry is returned, duplicates included.
func Active(results []Result, currentPath string) []int {
	var active []int
	for _, r := range results {
		if r.OK() && r.Path == currentPath {
			active = append(active, r.Entry.Index)
		}
	}
	return active
}

// Match resolves entries against origin and returns the indices of the
// active ones.
func Match(entries []Entry, origin Origin, currentPath string) []int {
	return Active(origin.ResolveAll(entries), currentPath)
}

func isC0OrSpace(r rune) bool { return r <= ' ' }
