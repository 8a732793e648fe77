// Package htmlnav applies navmark decisions to HTML documents: it finds
// menu items, reads their links and adds the active class to the items
// whose link points at the current page.
package htmlnav

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ziadkadry99/navmark/internal/navmark"
)

// Selector describes which elements are menu items and which class marks
// the active one.
type Selector struct {
	Tag         string
	MenuClass   string
	ActiveClass string
}

// DefaultSelector matches li.menu and marks with "active".
func DefaultSelector() Selector {
	return Selector{Tag: "li", MenuClass: "menu", ActiveClass: "active"}
}

// Document is a parsed HTML document.
type Document struct {
	root *html.Node
	sel  Selector
}

// Parse reads an HTML document from r.
func Parse(r io.Reader, sel Selector) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return &Document{root: root, sel: sel}, nil
}

// Render writes the document back out as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// items returns every menu item element in document order.
func (d *Document) items() []*html.Node {
	var out []*html.Node
	for n := range d.root.Descendants() {
		if n.Type == html.ElementNode && n.Data == d.sel.Tag && hasClass(n, d.sel.MenuClass) {
			out = append(out, n)
		}
	}
	return out
}

// Entries returns the menu entries of the document. The link of an entry
// is its first <a> descendant.
func (d *Document) Entries() []navmark.Entry {
	return entriesFor(d.items())
}

func entriesFor(items []*html.Node) []navmark.Entry {
	entries := make([]navmark.Entry, len(items))
	for i, item := range items {
		entries[i] = entryFor(i, item)
	}
	return entries
}

func entryFor(index int, item *html.Node) navmark.Entry {
	e := navmark.Entry{Index: index}
	a := firstLink(item)
	if a == nil {
		return e
	}
	e.HasLink = true
	e.Href, e.HasHref = attr(a, "href")
	return e
}

// Mark adds the active class to every menu item whose link resolves to
// currentPath. Classes are only ever added, and an item that already
// carries the class is left as is, so marking twice gives the same result.
func (d *Document) Mark(origin navmark.Origin, currentPath string) Report {
	items := d.items()
	entries := entriesFor(items)
	results := origin.ResolveAll(entries)
	active := navmark.Active(results, currentPath)

	report := Report{Path: currentPath, Entries: len(entries), Active: active}
	for _, i := range active {
		if addClass(items[i], d.sel.ActiveClass) {
			report.Changed++
		}
	}
	for _, r := range results {
		if !r.OK() {
			report.Failures = append(report.Failures, Failure{Index: r.Entry.Index, Href: r.Entry.Href, Err: r.Err})
		}
	}
	return report
}

// MarkHTML parses src, marks it and writes the result to w.
func MarkHTML(src io.Reader, w io.Writer, origin navmark.Origin, currentPath string, sel Selector) (Report, error) {
	doc, err := Parse(src, sel)
	if err != nil {
		return Report{}, err
	}
	report := doc.Mark(origin, currentPath)
	if err := doc.Render(w); err != nil {
		return report, fmt.Errorf("rendering html: %w", err)
	}
	return report, nil
}

// MarkBytes is MarkHTML over a byte slice.
func MarkBytes(src []byte, origin navmark.Origin, currentPath string, sel Selector) ([]byte, Report, error) {
	var buf bytes.Buffer
	report, err := MarkHTML(bytes.NewReader(src), &buf, origin, currentPath, sel)
	if err != nil {
		return nil, report, err
	}
	return buf.Bytes(), report, nil
}

func firstLink(n *html.Node) *html.Node {
	for c := range n.Descendants() {
		if c.Type == html.ElementNode && c.DataAtom == atom.A {
			return c
		}
	}
	return nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	v, ok := attr(n, "class")
	if !ok {
		return false
	}
	return slices.Contains(classFields(v), class)
}

// classFields splits a class attribute on ASCII whitespace only. Other
// Unicode spaces such as U+00A0 are part of a class name.
func classFields(v string) []string {
	return strings.FieldsFunc(v, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return true
		}
		return false
	})
}

// addClass appends class to n's class attribute. It reports whether the
// node changed.
func addClass(n *html.Node, class string) bool {
	for i, a := range n.Attr {
		if a.Namespace != "" || a.Key != "class" {
			continue
		}
		fields := classFields(a.Val)
		if slices.Contains(fields, class) {
			return false
		}
		n.Attr[i].Val = strings.Join(append(fields, class), " ")
		return true
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	return true
}
