package mock

import (
	"context"

	"github.com/brogergvhs/erosscans/internal/providers"
)

var _ providers.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of providers.Scraper.
type Scraper struct {
	InfoFn         func() providers.SourceInfo
	MangaDetailsFn func(ctx context.Context, mangaID string) (providers.Manga, error)
	ChaptersFn     func(ctx context.Context, mangaID string) ([]providers.Chapter, error)
	ChapterPagesFn func(ctx context.Context, mangaID, chapterID string) (providers.ChapterPages, error)
	SearchFn       func(ctx context.Context, query providers.SearchQuery, page int) (providers.SearchResults, error)
	HomeSectionsFn func(ctx context.Context, emit func(providers.HomeSection)) error
	ViewMoreFn     func(ctx context.Context, sectionID string, page int) (providers.SearchResults, error)
}

func (s *Scraper) Info() providers.SourceInfo {
	if s.InfoFn != nil {
		return s.InfoFn()
	}
	return providers.SourceInfo{ID: "mock", Name: "Mock"}
}

func (s *Scraper) MangaDetails(ctx context.Context, mangaID string) (providers.Manga, error) {
	return s.MangaDetailsFn(ctx, mangaID)
}

func (s *Scraper) Chapters(ctx context.Context, mangaID string) ([]providers.Chapter, error) {
	return s.ChaptersFn(ctx, mangaID)
}

func (s *Scraper) ChapterPages(ctx context.Context, mangaID, chapterID string) (providers.ChapterPages, error) {
	return s.ChapterPagesFn(ctx, mangaID, chapterID)
}

func (s *Scraper) Search(ctx context.Context, query providers.SearchQuery, page int) (providers.SearchResults, error) {
	return s.SearchFn(ctx, query, page)
}

func (s *Scraper) HomeSections(ctx context.Context, emit func(providers.HomeSection)) error {
	return s.HomeSectionsFn(ctx, emit)
}

func (s *Scraper) ViewMore(ctx context.Context, sectionID string, page int) (providers.SearchResults, error) {
	return s.ViewMoreFn(ctx, sectionID, page)
}
