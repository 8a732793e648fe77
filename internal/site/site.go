// Package site marks the active menu entry in every page of a static
// site directory.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/navmark/internal/htmlnav"
	"github.com/ziadkadry99/navmark/internal/navmark"
	"github.com/ziadkadry99/navmark/internal/progress"
)

// Options configures a marking run over a site directory.
type Options struct {
	Dir         string
	Include     []string
	Exclude     []string
	PrettyURLs  bool
	Origin      navmark.Origin
	Selector    htmlnav.Selector
	Concurrency int
	DryRun      bool
	Logger      *slog.Logger
	Reporter    progress.Reporter
}

// FileResult is the outcome for one page.
type FileResult struct {
	RelPath  string
	PagePath string
	Report   htmlnav.Report
	Written  bool
	Err      error
}

// Summary describes a finished run.
type Summary struct {
	RunID    string
	Files    int
	Modified int
	Failed   int
	Results  []FileResult
}

// Processor rewrites the pages of a static site.
type Processor struct {
	opts Options
	log  *slog.Logger
}

// NewProcessor creates a Processor. Zero-valued options fall back to
// package defaults.
func NewProcessor(opts Options) *Processor {
	if opts.Selector == (htmlnav.Selector{}) {
		opts.Selector = htmlnav.DefaultSelector()
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.Reporter == nil {
		opts.Reporter = progress.Nop{}
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Processor{opts: opts, log: log}
}

// Collect returns the slash-separated paths, relative to the site
// directory, of every page selected by the include and exclude patterns.
func (p *Processor) Collect() ([]string, error) {
	var pages []string
	err := filepath.WalkDir(p.opts.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(p.opts.Dir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if MatchesExclude(rel, p.opts.Exclude) || MatchesExclude(rel+"/", p.opts.Exclude) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if MatchesInclude(rel, p.opts.Include) && !MatchesExclude(rel, p.opts.Exclude) {
			pages = append(pages, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking site dir: %w", err)
	}
	sort.Strings(pages)
	return pages, nil
}

// Run marks every selected page. Per-page failures are recorded in the
// summary and joined into the returned error; they never stop the other
// pages from being processed.
func (p *Processor) Run(ctx context.Context) (*Summary, error) {
	pages, err := p.Collect()
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		RunID:   uuid.NewString(),
		Files:   len(pages),
		Results: make([]FileResult, len(pages)),
	}
	log := p.log.With("run", sum.RunID)
	log.Info("marking site", "dir", p.opts.Dir, "pages", len(pages), "origin", p.opts.Origin.String(), "dry_run", p.opts.DryRun)

	var (
		mu   sync.Mutex
		done int
	)
	p.opts.Reporter.Start(len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)
	for i, rel := range pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := p.markFile(rel)
			sum.Results[i] = res

			mu.Lock()
			done++
			p.opts.Reporter.Update(done, rel)
			mu.Unlock()

			if res.Err != nil {
				log.Warn("page failed", "file", rel, "error", res.Err)
			} else {
				log.Debug("page marked", "file", rel, "report", res.Report)
				for _, f := range res.Report.Failures {
					log.Debug("menu entry skipped", "file", rel, "entry", f.Index, "href", f.Href, "error", f.Err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sum, err
	}
	p.opts.Reporter.Finish()

	var errs []error
	for _, r := range sum.Results {
		switch {
		case r.Err != nil:
			sum.Failed++
			errs = append(errs, fmt.Errorf("%s: %w", r.RelPath, r.Err))
		case r.Report.Modified():
			sum.Modified++
		}
	}
	log.Info("site marked", "pages", sum.Files, "modified", sum.Modified, "failed", sum.Failed)
	return sum, errors.Join(errs...)
}

func (p *Processor) markFile(rel string) FileResult {
	res := FileResult{RelPath: rel, PagePath: PagePath(rel, p.opts.PrettyURLs)}
	full := filepath.Join(p.opts.Dir, filepath.FromSlash(rel))

	info, err := os.Stat(full)
	if err != nil {
		res.Err = err
		return res
	}
	src, err := os.ReadFile(full)
	if err != nil {
		res.Err = err
		return res
	}

	out, report, err := htmlnav.MarkBytes(src, p.opts.Origin, res.PagePath, p.opts.Selector)
	res.Report = report
	if err != nil {
		res.Err = err
		return res
	}
	if !report.Modified() || p.opts.DryRun || bytes.Equal(src, out) {
		return res
	}

	if err := os.WriteFile(full, out, info.Mode().Perm()); err != nil {
		res.Err = fmt.Errorf("writing page: %w", err)
		return res
	}
	res.Written = true
	return res
}
