package htmlnav

import "log/slog"

// Failure is a menu entry that could not be evaluated.
type Failure struct {
	Index int
	Href  string
	Err   error
}

// Report summarises one marking pass over a document.
type Report struct {
	Path     string
	Entries  int
	Active   []int
	Changed  int
	Failures []Failure
}

// Modified reports whether the pass added a class anywhere.
func (r Report) Modified() bool { return r.Changed > 0 }

// LogValue implements slog.LogValuer.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", r.Path),
		slog.Int("entries", r.Entries),
		slog.Int("active", len(r.Active)),
		slog.Int("changed", r.Changed),
		slog.Int("failures", len(r.Failures)),
	)
}
