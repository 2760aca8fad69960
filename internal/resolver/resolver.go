// Package resolver fetches the page lists of many chapters concurrently.
package resolver

import (
	"context"
	"fmt"
	"sync"

	"github.com/brogergvhs/erosscans/internal/providers"
	"golang.org/x/sync/errgroup"
)

const DefaultWorkers = 4

// Progress receives the number of finished chapters. ui.ProgressHandle
// satisfies it.
type Progress interface {
	Update(done, total int)
	MarkDone()
}

type Result struct {
	Chapter providers.Chapter      `json:"chapter" yaml:"chapter"`
	Pages   providers.ChapterPages `json:"pages" yaml:"pages"`
	Err     error                  `json:"-" yaml:"-"`
	Error   string                 `json:"error,omitempty" yaml:"error,omitempty"`
}

func (r *Result) fail(err error) {
	r.Err = err
	r.Error = err.Error()
}

type Resolver struct {
	scraper    providers.Scraper
	workers    int
	skipBroken bool
}

type Option func(*Resolver)

func WithWorkers(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithSkipBroken keeps going when a chapter fails and reports the error on
// its Result instead.
func WithSkipBroken(v bool) Option {
	return func(r *Resolver) {
		r.skipBroken = v
	}
}

func New(s providers.Scraper, opts ...Option) *Resolver {
	r := &Resolver{
		scraper: s,
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns one Result per chapter in input order. Without
// WithSkipBroken the first failure cancels the remaining work.
func (r *Resolver) Resolve(ctx context.Context, chapters []providers.Chapter, p Progress) ([]Result, error) {
	results := make([]Result, len(chapters))
	total := len(chapters)

	var mu sync.Mutex
	done := 0
	tick := func() {
		if p == nil {
			return
		}
		mu.Lock()
		done++
		p.Update(done, total)
		mu.Unlock()
	}

	if p != nil {
		p.Update(0, total)
		defer p.MarkDone()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, c := range chapters {
		results[i].Chapter = c

		g.Go(func() error {
			defer tick()

			if err := gctx.Err(); err != nil {
				results[i].fail(err)
				return err
			}

			pages, err := r.scraper.ChapterPages(gctx, c.MangaID, c.ID)
			if err != nil {
				err = fmt.Errorf("chapter %s: %w", c.ID, err)
				results[i].fail(err)
				if r.skipBroken {
					return nil
				}
				return err
			}

			results[i].Pages = pages
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, ctx.Err()
}

// Failed counts results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}

	return n
}
