package erosscans

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/erosscans/internal/providers"
)

const (
	DefaultBaseURL = "https://erosscans.xyz"

	sourceID      = "erosscans"
	sourceName    = "ErosScans"
	sourceVersion = "1.1.0"
)

var _ providers.Scraper = (*Scraper)(nil)

type Scraper struct {
	exec      providers.Executor
	parse     providers.ParseFunc
	baseURL   string
	headers   map[string]string
	longStrip bool
}

type Option func(*Scraper)

// WithBaseURL points the adapter at a mirror or a test server.
func WithBaseURL(base string) Option {
	return func(s *Scraper) {
		if base = strings.TrimRight(strings.TrimSpace(base), "/"); base != "" {
			s.baseURL = base
		}
	}
}

func WithParser(fn providers.ParseFunc) Option {
	return func(s *Scraper) {
		if fn != nil {
			s.parse = fn
		}
	}
}

// WithHeaders adds headers to every page request, overriding the defaults.
func WithHeaders(h map[string]string) Option {
	return func(s *Scraper) {
		for k, v := range h {
			s.headers[k] = v
		}
	}
}

func WithLongStrip(v bool) Option {
	return func(s *Scraper) {
		s.longStrip = v
	}
}

func New(exec providers.Executor, opts ...Option) *Scraper {
	s := &Scraper{
		exec:    exec,
		parse:   goquery.NewDocumentFromReader,
		baseURL: DefaultBaseURL,
		headers: map[string]string{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Scraper) Info() providers.SourceInfo {
	return providers.SourceInfo{
		ID:       sourceID,
		Name:     sourceName,
		Version:  sourceVersion,
		Author:   "brogergvhs",
		BaseURL:  s.baseURL,
		Language: "en",
	}
}

// MangaURL is the public page of a manga, suitable for sharing.
func (s *Scraper) MangaURL(mangaID string) string {
	return s.baseURL + "/manga/" + mangaID
}

func (s *Scraper) chapterURL(mangaID, chapterID string) string {
	return s.baseURL + "/" + mangaID + "/" + chapterID
}

func (s *Scraper) searchURL(title string, page int) string {
	return fmt.Sprintf("%s/page/%d/?s=%s", s.baseURL, page, encodeURIComponent(title))
}

func (s *Scraper) listURL(order string, page int) string {
	return fmt.Sprintf("%s/manga/?page=%d&order=%s", s.baseURL, page, url.QueryEscape(order))
}

func (s *Scraper) homeURL() string {
	return s.baseURL + "/"
}

func (s *Scraper) pageHeaders() map[string]string {
	h := map[string]string{
		"Accept":  "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
		"Referer": s.baseURL + "/",
	}
	for k, v := range s.headers {
		h[k] = v
	}

	return h
}

// fetchDOM performs the single outbound request of an operation. Executor
// errors are returned as is.
func (s *Scraper) fetchDOM(ctx context.Context, target string) (*goquery.Document, error) {
	resp, err := s.exec.Execute(ctx, providers.Request{
		URL:     target,
		Method:  http.MethodGet,
		Headers: s.pageHeaders(),
	})
	if err != nil {
		return nil, err
	}

	doc, err := s.parse(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", target, err)
	}

	return doc, nil
}

var uriComponentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent matches the browser function: spaces become %20 and
// !'()* stay literal, unlike url.QueryEscape.
func encodeURIComponent(s string) string {
	return uriComponentFixups.Replace(url.QueryEscape(s))
}

// slugFromHref returns the last non-empty path segment of a link, so both
// ".../manga/slug/" and ".../manga/slug" yield "slug".
func slugFromHref(href string) string {
	href = strings.TrimSpace(href)
	if u, err := url.Parse(href); err == nil {
		href = u.Path
	}

	href = strings.TrimRight(href, "/")
	if i := strings.LastIndex(href, "/"); i >= 0 {
		return href[i+1:]
	}

	return href
}

// imageSource reads src and falls back to the lazy-loading attributes the
// theme uses for covers.
func imageSource(img *goquery.Selection) string {
	for _, k := range []string{"src", "data-src", "data-lazy-src"} {
		if v, ok := img.Attr(k); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}

	return ""
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}

	return page
}
