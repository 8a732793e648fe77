// Package metrics exposes Prometheus counters for request-time marking.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for PagesTotal.
const (
	OutcomeMarked    = "marked"
	OutcomeUnchanged = "unchanged"
	OutcomeError     = "error"
)

// Recorder counts marking passes.
type Recorder interface {
	Page(outcome string)
	Entries(marked, failed int)
}

// Counters is a Recorder backed by Prometheus counter vectors.
type Counters struct {
	pages   *prometheus.CounterVec
	entries *prometheus.CounterVec
}

// NewCounters registers navmark's counters with reg.
func NewCounters(reg prometheus.Registerer) *Counters {
	c := &Counters{
		pages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "navmark",
			Name:      "pages_total",
			Help:      "HTML pages passed through the active menu marker, by outcome.",
		}, []string{"outcome"}),
		entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "navmark",
			Name:      "entries_total",
			Help:      "Menu entries evaluated, by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(c.pages, c.entries)
	return c
}

func (c *Counters) Page(outcome string) {
	c.pages.WithLabelValues(outcome).Inc()
}

func (c *Counters) Entries(marked, failed int) {
	c.entries.WithLabelValues("active").Add(float64(marked))
	c.entries.WithLabelValues("failed").Add(float64(failed))
}

// Nop discards everything.
type Nop struct{}

func (Nop) Page(string) {}

func (Nop) Entries(int, int) {}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
