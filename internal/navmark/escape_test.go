package navmark

import "testing"

func TestEscapePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"/faq(old).html", "/faq(old).html"},
		{"/it's.html", "/it's.html"},
		{"/a!b*c.html", "/a!b*c.html"},
		{"/a;b=c,d&e+f$g@h:i.html", "/a;b=c,d&e+f$g@h:i.html"},
		{"/my page.html", "/my%20page.html"},
		{"/100%.html", "/100%25.html"},
		{"/q?.html", "/q%3F.html"},
		{"/h#1.html", "/h%231.html"},
		{`/"x".html`, "/%22x%22.html"},
		{"/café.html", "/caf%C3%A9.html"},
	}
	for _, tt := range tests {
		if got := EscapePath(tt.in); got != tt.want {
			t.Errorf("EscapePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapePathAgreesWithResolve(t *testing.T) {
	o := mustOrigin(t, "http://localhost")
	for _, p := range []string{"/faq(old).html", "/it's.html", "/my page.html", "/café/"} {
		got, err := o.Resolve(EscapePath(p))
		if err != nil {
			t.Fatalf("Resolve(%q): %v", p, err)
		}
		if got != EscapePath(p) {
			t.Errorf("Resolve(EscapePath(%q)) = %q, want %q", p, got, EscapePath(p))
		}
	}
}

func TestResolveBrowserForms(t *testing.T) {
	o := mustOrigin(t, "http://localhost:5000")

	tests := []struct {
		href string
		want string
	}{
		{`\about`, "/about"},
		{`\\other.example\about`, "/about"},
		{`/a\b?x=\y`, "/a/b"},
		{`/a#\b`, "/a"},
		{"http:about", "/about"},
		{"HTTP:about", "/about"},
		{"http:/about", "/about"},
		{`http:\\other.example\about`, "/about"},
		{"https:about", "/"},
		{"https:/other.example/x", "/x"},
		{"mailto:a@b", "a@b"},
	}
	for _, tt := range tests {
		got, err := o.Resolve(tt.href)
		if err != nil {
			t.Errorf("Resolve(%q) unexpected error: %v", tt.href, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.href, got, tt.want)
		}
	}
}

func TestSplitScheme(t *testing.T) {
	tests := []struct {
		in     string
		scheme string
		rest   string
		ok     bool
	}{
		{"http:about", "http", "about", true},
		{"HTTPS://x", "https", "//x", true},
		{"git+ssh:x", "git+ssh", "x", true},
		{"/about", "", "", false},
		{"about", "", "", false},
		{"1http:x", "", "", false},
		{":x", "", "", false},
	}
	for _, tt := range tests {
		scheme, rest, ok := splitScheme(tt.in)
		if scheme != tt.scheme || rest != tt.rest || ok != tt.ok {
			t.Errorf("splitScheme(%q) = %q, %q, %v; want %q, %q, %v", tt.in, scheme, rest, ok, tt.scheme, tt.rest, tt.ok)
		}
	}
}
