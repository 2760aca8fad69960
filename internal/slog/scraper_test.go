package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/brogergvhs/erosscans/internal/mock"
	"github.com/brogergvhs/erosscans/internal/providers"
	erslog "github.com/brogergvhs/erosscans/internal/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingScraper_MangaDetails(t *testing.T) {
	t.Parallel()

	t.Run("logs manga with title and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Scraper{
			MangaDetailsFn: func(ctx context.Context, mangaID string) (providers.Manga, error) {
				return providers.Manga{ID: mangaID, Titles: []string{"Solo"}}, nil
			},
		}

		s := erslog.NewLoggingScraper(inner, logger)
		m, err := s.MangaDetails(context.Background(), "solo")

		require.NoError(t, err)
		assert.Equal(t, "solo", m.ID)
		output := buf.String()
		assert.Contains(t, output, "manga details")
		assert.Contains(t, output, "manga=solo")
		assert.Contains(t, output, "title=Solo")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Scraper{
			MangaDetailsFn: func(ctx context.Context, mangaID string) (providers.Manga, error) {
				return providers.Manga{}, errors.New("connection failed")
			},
		}

		s := erslog.NewLoggingScraper(inner, logger)
		_, err := s.MangaDetails(context.Background(), "solo")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"connection failed\"")
	})
}

func TestLoggingScraper_Chapters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Scraper{
		ChaptersFn: func(ctx context.Context, mangaID string) ([]providers.Chapter, error) {
			return []providers.Chapter{{ID: "1"}, {ID: "2"}}, nil
		},
	}

	s := erslog.NewLoggingScraper(inner, logger)
	chapters, err := s.Chapters(context.Background(), "solo")

	require.NoError(t, err)
	assert.Len(t, chapters, 2)
	assert.Contains(t, buf.String(), "count=2")
}

func TestLoggingScraper_Search(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Scraper{
		SearchFn: func(ctx context.Context, q providers.SearchQuery, page int) (providers.SearchResults, error) {
			return providers.SearchResults{Items: []providers.Manga{{ID: "a"}}, HasNextPage: true, NextPage: page + 1}, nil
		},
	}

	s := erslog.NewLoggingScraper(inner, logger)
	res, err := s.Search(context.Background(), providers.SearchQuery{Title: "solo"}, 3)

	require.NoError(t, err)
	assert.Equal(t, 4, res.NextPage)
	output := buf.String()
	assert.Contains(t, output, "query=solo")
	assert.Contains(t, output, "page=3")
	assert.Contains(t, output, "has_next=true")
}

func TestLoggingScraper_HomeSections(t *testing.T) {
	t.Parallel()

	t.Run("forwards sections in order and counts them", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Scraper{
			HomeSectionsFn: func(ctx context.Context, emit func(providers.HomeSection)) error {
				emit(providers.HomeSection{ID: "popular"})
				emit(providers.HomeSection{ID: "latest"})
				return nil
			},
		}

		var ids []string
		s := erslog.NewLoggingScraper(inner, logger)
		err := s.HomeSections(context.Background(), func(sec providers.HomeSection) {
			ids = append(ids, sec.ID)
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"popular", "latest"}, ids)
		output := buf.String()
		assert.Contains(t, output, "id=popular")
		assert.Contains(t, output, "sections=2")
	})
}

func TestLoggingScraper_Info(t *testing.T) {
	t.Parallel()

	s := erslog.NewLoggingScraper(&mock.Scraper{}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	assert.Equal(t, "mock", s.Info().ID)
}
