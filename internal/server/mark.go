package server

import (
	"bytes"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/ziadkadry99/navmark/internal/htmlnav"
	"github.com/ziadkadry99/navmark/internal/metrics"
	"github.com/ziadkadry99/navmark/internal/navmark"
)

// markActive buffers successful text/html responses and marks the menu
// entry matching the request path before sending them. Other responses
// are streamed through untouched.
//
// HEAD requests are answered from the marked GET body so Content-Length
// matches. Range headers are dropped for pages that may be marked since
// byte offsets into the file do not apply to the rewritten document.
func (s *Server) markActive(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if (r.Method != http.MethodGet && r.Method != http.MethodHead) || !markCandidate(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		headOnly := r.Method == http.MethodHead
		r = r.Clone(r.Context())
		r.Method = http.MethodGet
		r.Header.Del("Range")
		r.Header.Del("If-Range")

		bw := &bufferedWriter{ResponseWriter: w, headOnly: headOnly}
		next.ServeHTTP(bw, r)
		if !bw.buffering {
			return
		}

		log := s.log.With("path", r.URL.EscapedPath())
		origin, err := s.originFor(r)
		if err != nil {
			log.Warn("cannot determine origin, serving page unmarked", "host", r.Host, "error", err)
			s.recorder.Page(metrics.OutcomeError)
			bw.flush(bw.buf.Bytes())
			return
		}

		out, report, err := htmlnav.MarkBytes(bw.buf.Bytes(), origin, r.URL.EscapedPath(), s.cfg.Selector)
		if err != nil {
			log.Warn("marking failed, serving page unmarked", "error", err)
			s.recorder.Page(metrics.OutcomeError)
			bw.flush(bw.buf.Bytes())
			return
		}

		s.recorder.Entries(len(report.Active), len(report.Failures))
		if !report.Modified() {
			s.recorder.Page(metrics.OutcomeUnchanged)
			bw.flush(bw.buf.Bytes())
			return
		}
		s.recorder.Page(metrics.OutcomeMarked)
		log.Debug("page marked", "report", report)
		bw.flush(out)
	})
}

// markCandidate reports whether a request path can resolve to an HTML
// page: a directory index, an .html or .htm file, or an extensionless path.
func markCandidate(p string) bool {
	if strings.HasSuffix(p, "/") {
		return true
	}
	switch strings.ToLower(path.Ext(p)) {
	case "", ".html", ".htm":
		return true
	}
	return false
}

func (s *Server) originFor(r *http.Request) (navmark.Origin, error) {
	if !s.cfg.Origin.IsZero() {
		return s.cfg.Origin, nil
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return navmark.ParseOrigin(scheme + "://" + r.Host)
}

// bufferedWriter decides at WriteHeader time whether the response is a
// candidate for marking. Candidates are held in buf; everything else is
// written straight to the underlying writer.
type bufferedWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	buffering   bool
	headOnly    bool
	buf         bytes.Buffer
}

func (w *bufferedWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = status

	h := w.Header()
	if status == http.StatusOK && isHTML(h.Get("Content-Type")) && h.Get("Content-Encoding") == "" {
		w.buffering = true
		return
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *bufferedWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(p))
		}
		w.WriteHeader(http.StatusOK)
	}
	if w.buffering {
		return w.buf.Write(p)
	}
	if w.headOnly {
		return len(p), nil
	}
	return w.ResponseWriter.Write(p)
}

// flush sends the buffered response with body. For HEAD requests only
// the headers are written.
func (w *bufferedWriter) flush(body []byte) {
	h := w.Header()
	h.Set("Content-Length", strconv.Itoa(len(body)))
	h.Del("Accept-Ranges")
	w.ResponseWriter.WriteHeader(w.status)
	if w.headOnly {
		return
	}
	w.ResponseWriter.Write(body)
}

func isHTML(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "text/html"
}
