package navmark

import "errors"

var (
	// ErrMissingLink is returned for a menu entry that has no link descendant.
	ErrMissingLink = errors.New("menu entry has no link")

	// ErrMissingHref is returned for a link without an href attribute.
	ErrMissingHref = errors.New("menu link has no href attribute")

	// ErrMalformedHref is returned when an href cannot be parsed as a URL reference.
	ErrMalformedHref = errors.New("malformed href")

	// ErrInvalidOrigin is returned when the base origin is not an absolute URL.
	ErrInvalidOrigin = errors.New("invalid origin")
)
