package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/brogergvhs/erosscans/internal/providers"
)

// Ensure LoggingScraper implements providers.Scraper.
var _ providers.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper and logs every operation with its duration.
type LoggingScraper struct {
	next   providers.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next providers.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Info delegates to the wrapped scraper.
func (s *LoggingScraper) Info() providers.SourceInfo {
	return s.next.Info()
}

func (s *LoggingScraper) MangaDetails(ctx context.Context, mangaID string) (m providers.Manga, err error) {
	defer func(begin time.Time) {
		s.logger.Info("manga details",
			"manga", mangaID,
			"title", m.Title(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.MangaDetails(ctx, mangaID)
}

func (s *LoggingScraper) Chapters(ctx context.Context, mangaID string) (chapters []providers.Chapter, err error) {
	defer func(begin time.Time) {
		s.logger.Info("chapters",
			"manga", mangaID,
			"count", len(chapters),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Chapters(ctx, mangaID)
}

func (s *LoggingScraper) ChapterPages(ctx context.Context, mangaID, chapterID string) (p providers.ChapterPages, err error) {
	defer func(begin time.Time) {
		s.logger.Info("chapter pages",
			"manga", mangaID,
			"chapter", chapterID,
			"count", len(p.Pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ChapterPages(ctx, mangaID, chapterID)
}

func (s *LoggingScraper) Search(ctx context.Context, query providers.SearchQuery, page int) (res providers.SearchResults, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query.Title,
			"page", page,
			"count", len(res.Items),
			"has_next", res.HasNextPage,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, page)
}

// HomeSections logs each emitted section at debug level and a summary once
// the wrapped scraper returns.
func (s *LoggingScraper) HomeSections(ctx context.Context, emit func(providers.HomeSection)) (err error) {
	sections := 0
	defer func(begin time.Time) {
		s.logger.Info("home sections",
			"sections", sections,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.HomeSections(ctx, func(sec providers.HomeSection) {
		sections++
		s.logger.Debug("home section", "id", sec.ID, "items", len(sec.Items))
		emit(sec)
	})
}

func (s *LoggingScraper) ViewMore(ctx context.Context, sectionID string, page int) (res providers.SearchResults, err error) {
	defer func(begin time.Time) {
		s.logger.Info("view more",
			"section", sectionID,
			"page", page,
			"count", len(res.Items),
			"has_next", res.HasNextPage,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ViewMore(ctx, sectionID, page)
}
