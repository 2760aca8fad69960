// Package providers holds the data model shared by source adapters and the
// contracts they depend on: the request executor, the HTML parser and the
// adapter capability set itself.
package providers

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
)

type Status int

const (
	StatusUnknown Status = iota
	StatusOngoing
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "Ongoing"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Tag struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Manga is a manga record. Search results and home section items carry
// only ID, Titles and Image.
type Manga struct {
	ID          string   `json:"id" yaml:"id"`
	Titles      []string `json:"titles" yaml:"titles"`
	Image       string   `json:"image" yaml:"image"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Status      Status   `json:"status" yaml:"status"`
	Author      string   `json:"author,omitempty" yaml:"author,omitempty"`
	Artist      string   `json:"artist,omitempty" yaml:"artist,omitempty"`
	Tags        []Tag    `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Title returns the primary title, or "" when there is none.
func (m Manga) Title() string {
	if len(m.Titles) == 0 {
		return ""
	}

	return m.Titles[0]
}

type Chapter struct {
	ID      string `json:"id" yaml:"id"`
	MangaID string `json:"manga_id" yaml:"manga_id"`
	Name    string `json:"name" yaml:"name"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`

	// Number is never negative; 0 when the name carries no number.
	Number float64 `json:"number" yaml:"number"`

	// PublishedAt is the zero time when the site date could not be parsed.
	PublishedAt time.Time `json:"published_at" yaml:"published_at"`
}

// HasDate reports whether the publish date was parsed. A zero PublishedAt
// means unknown.
func (c Chapter) HasDate() bool {
	return !c.PublishedAt.IsZero()
}

// Label is the chapter number without trailing zeros ("12", "12.5").
func (c Chapter) Label() string {
	return strconv.FormatFloat(c.Number, 'f', -1, 64)
}

type ChapterPages struct {
	ChapterID string   `json:"chapter_id" yaml:"chapter_id"`
	MangaID   string   `json:"manga_id" yaml:"manga_id"`
	Pages     []string `json:"pages" yaml:"pages"`
	LongStrip bool     `json:"long_strip" yaml:"long_strip"`
}

type SearchQuery struct {
	Title string `json:"title" yaml:"title"`
}

// SearchResults is one page of results. NextPage is always the requested
// page plus one; callers check HasNextPage before asking for it.
type SearchResults struct {
	Items       []Manga `json:"items" yaml:"items"`
	HasNextPage bool    `json:"has_next_page" yaml:"has_next_page"`
	NextPage    int     `json:"next_page" yaml:"next_page"`
}

type SectionType int

const (
	SectionSimple SectionType = iota
	SectionFeatured
)

func (t SectionType) String() string {
	if t == SectionFeatured {
		return "Featured"
	}

	return "Simple"
}

func (t SectionType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

type HomeSection struct {
	ID       string      `json:"id" yaml:"id"`
	Title    string      `json:"title" yaml:"title"`
	Type     SectionType `json:"type" yaml:"type"`
	Items    []Manga     `json:"items" yaml:"items"`
	ViewMore bool        `json:"view_more" yaml:"view_more"`
}

type SourceInfo struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Version  string `json:"version" yaml:"version"`
	Author   string `json:"author" yaml:"author"`
	BaseURL  string `json:"base_url" yaml:"base_url"`
	Language string `json:"language" yaml:"language"`
}

type Request struct {
	URL     string
	Method  string
	Headers map[string]string
}

type Response struct {
	Status int
	Body   []byte
}

// Executor performs outbound requests on behalf of an adapter. Scheduling,
// rate limiting, retries and timeouts are its business; it reports a
// non-success status as an error.
type Executor interface {
	Execute(ctx context.Context, req Request) (*Response, error)
}

// ParseFunc turns a raw HTML body into a queryable document.
type ParseFunc func(r io.Reader) (*goquery.Document, error)

// Scraper is the capability set of a source adapter.
type Scraper interface {
	Info() SourceInfo
	MangaDetails(ctx context.Context, mangaID string) (Manga, error)
	Chapters(ctx context.Context, mangaID string) ([]Chapter, error)
	ChapterPages(ctx context.Context, mangaID, chapterID string) (ChapterPages, error)
	Search(ctx context.Context, query SearchQuery, page int) (SearchResults, error)
	HomeSections(ctx context.Context, emit func(HomeSection)) error
	ViewMore(ctx context.Context, sectionID string, page int) (SearchResults, error)
}
