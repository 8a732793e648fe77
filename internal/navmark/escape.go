package navmark

import "strings"

// EscapePath percent-encodes p the way a browser reports location.pathname:
// controls, space, non-ASCII bytes and " # % < > ? ` { } are encoded and
// everything else, sub-delims included, is left literal.
func EscapePath(p string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(p); i++ {
		c := p[i]
		if escapeInPath(c) {
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0xf])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func escapeInPath(c byte) bool {
	if c <= ' ' || c >= 0x7f {
		return true
	}
	switch c {
	case '"', '#', '%', '<', '>', '?', '`', '{', '}':
		return true
	}
	return false
}

// specialSchemes are the schemes a browser parses with authority and
// backslash handling.
var specialSchemes = map[string]bool{
	"ftp":   true,
	"file":  true,
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
}

// splitScheme returns the lower-cased scheme of ref and the text after the
// colon. ok is false when ref has no scheme.
func splitScheme(ref string) (scheme, rest string, ok bool) {
	for i := 0; i < len(ref); i++ {
		c := ref[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		case i > 0 && c == ':':
			return strings.ToLower(ref[:i]), ref[i+1:], true
		default:
			return "", "", false
		}
	}
	return "", "", false
}

// normalizeHref rewrites the forms a browser reads differently from RFC
// 3986 when the URL is special: backslashes before the query count as
// slashes, "http:about" on an http base is relative, and "https:about" on
// an http base names the host "about".
func normalizeHref(ref, baseScheme string) string {
	scheme, hasScheme := specialRef(ref, baseScheme)
	if scheme == "" {
		return ref
	}

	if end := strings.IndexAny(ref, "?#"); end >= 0 {
		ref = strings.ReplaceAll(ref[:end], `\`, "/") + ref[end:]
	} else {
		ref = strings.ReplaceAll(ref, `\`, "/")
	}
	if !hasScheme {
		return ref
	}

	_, rest, _ := splitScheme(ref)
	if strings.HasPrefix(rest, "//") {
		return ref
	}
	if scheme == baseScheme {
		return rest
	}
	return scheme + "://" + strings.TrimLeft(rest, "/")
}

// specialRef reports the special scheme governing ref: its own when it has
// one, otherwise the base's. hasScheme is true when ref names the scheme.
func specialRef(ref, baseScheme string) (scheme string, hasScheme bool) {
	if s, _, ok := splitScheme(ref); ok {
		if specialSchemes[s] {
			return s, true
		}
		return "", false
	}
	if specialSchemes[baseScheme] {
		return baseScheme, false
	}
	return "", false
}
