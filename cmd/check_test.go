package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/navmark/internal/htmlnav"
	"github.com/ziadkadry99/navmark/internal/navmark"
)

func TestPrintCheck(t *testing.T) {
	doc, err := htmlnav.Parse(strings.NewReader(`<ul>
<li class="menu"><a href="/">Live</a></li>
<li class="menu"><a href="about">About</a></li>
<li class="menu">No link</li>
</ul>`), htmlnav.DefaultSelector())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	origin, err := navmark.ParseOrigin("http://localhost:5000")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := printCheck(&buf, doc, origin, "/about"); err != nil {
		t.Fatalf("printCheck: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Page path: /about",
		"Origin:    http://localhost:5000",
		"Entries:   3",
		"-> /about  ACTIVE",
		"skipped: menu entry has no link",
		"1 active",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "ACTIVE") != 1 {
		t.Errorf("expected exactly one ACTIVE line:\n%s", out)
	}
}

func TestFilePagePath(t *testing.T) {
	siteDir := filepath.Join("build", "public")
	tests := []struct {
		file string
		want string
	}{
		{filepath.Join(siteDir, "index.html"), "/"},
		{filepath.Join(siteDir, "about", "index.html"), "/about/"},
		{filepath.Join(siteDir, "..draft.html"), "/..draft.html"},
		{filepath.Join(siteDir, "..notes", "index.html"), "/..notes/"},
		{filepath.Join("build", "other.html"), "/other.html"},
		{filepath.Join("elsewhere", "x", "faq(old).html"), "/faq(old).html"},
	}
	for _, tt := range tests {
		if got := filePagePath(siteDir, tt.file, true); got != tt.want {
			t.Errorf("filePagePath(%q) = %q, want %q", tt.file, got, tt.want)
		}
	}
}
