package ui_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/brogergvhs/erosscans/internal/providers"
	"github.com/brogergvhs/erosscans/internal/resolver"
	"github.com/brogergvhs/erosscans/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sample = providers.Manga{
	ID:     "test-manga",
	Titles: []string{"Test Manga"},
	Status: providers.StatusOngoing,
	Author: "Jane Doe",
	Tags:   []providers.Tag{{ID: "Action", Label: "Action"}, {ID: "Drama", Label: "Drama"}},
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("text manga", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, ui.Render(&buf, ui.FormatText, sample))

		out := buf.String()
		assert.Contains(t, out, "Test Manga")
		assert.Contains(t, out, "Ongoing")
		assert.Contains(t, out, "Action, Drama")
	})

	t.Run("json writes status as text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, ui.Render(&buf, ui.FormatJSON, sample))

		var got map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "Ongoing", got["status"])
		assert.Equal(t, "test-manga", got["id"])
	})

	t.Run("yaml writes status as text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, ui.Render(&buf, ui.FormatYAML, sample))

		var got map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "Ongoing", got["status"])
	})

	t.Run("text chapters show unknown dates as dash", func(t *testing.T) {
		t.Parallel()

		chapters := []providers.Chapter{
			{ID: "12", Name: "Chapter 12", Number: 12, PublishedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
			{ID: "special", Name: "Special"},
		}

		var buf bytes.Buffer
		require.NoError(t, ui.Render(&buf, ui.FormatText, chapters))

		out := buf.String()
		assert.Contains(t, out, "2024-01-05")
		assert.Regexp(t, `special\s+Special\s+-`, out)
	})

	t.Run("text search mentions the next page", func(t *testing.T) {
		t.Parallel()

		res := providers.SearchResults{Items: []providers.Manga{sample}, HasNextPage: true, NextPage: 2}

		var buf bytes.Buffer
		require.NoError(t, ui.Render(&buf, ui.FormatText, res))

		assert.Contains(t, buf.String(), "--page 2")
	})

	t.Run("text sections list each shelf", func(t *testing.T) {
		t.Parallel()

		sections := []providers.HomeSection{
			{ID: "popular", Title: "Popular Today"},
			{ID: "latest", Title: "Latest Update", Items: []providers.Manga{sample}},
		}

		var buf bytes.Buffer
		require.NoError(t, ui.Render(&buf, ui.FormatText, sections))

		out := buf.String()
		assert.Contains(t, out, "== Popular Today (popular)")
		assert.Contains(t, out, "(no results)")
		assert.Contains(t, out, "test-manga")
	})

	t.Run("text resolver results mark failures", func(t *testing.T) {
		t.Parallel()

		results := []resolver.Result{
			{Chapter: providers.Chapter{ID: "1"}, Pages: providers.ChapterPages{Pages: []string{"a.jpg"}}},
			{Chapter: providers.Chapter{ID: "2"}, Err: errors.New("HTTP 500")},
		}

		var buf bytes.Buffer
		require.NoError(t, ui.Render(&buf, ui.FormatText, results))

		out := buf.String()
		assert.Contains(t, out, "a.jpg")
		assert.Contains(t, out, "FAILED: HTTP 500")
	})

	t.Run("unknown format is an error", func(t *testing.T) {
		t.Parallel()

		err := ui.Render(&bytes.Buffer{}, "xml", sample)

		assert.ErrorContains(t, err, "unknown format")
		assert.False(t, ui.ValidFormat("xml"))
		assert.True(t, ui.ValidFormat("yaml"))
	})
}
