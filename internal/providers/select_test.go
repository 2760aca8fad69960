package providers_test

import (
	"testing"

	"github.com/brogergvhs/erosscans/internal/providers"
	"github.com/stretchr/testify/assert"
)

func chapterList() []providers.Chapter {
	return []providers.Chapter{
		{ID: "c-10", Number: 10},
		{ID: "c-11", Number: 11},
		{ID: "c-11-5", Number: 11.5},
		{ID: "c-12", Number: 12},
	}
}

func ids(chs []providers.Chapter) []string {
	out := make([]string, 0, len(chs))
	for _, c := range chs {
		out = append(out, c.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("returns everything without selectors", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, providers.Filter(chapterList(), "", "", ""), 4)
	})

	t.Run("matches chapter by label before position", func(t *testing.T) {
		t.Parallel()

		got := providers.Filter(chapterList(), "11.5", "", "")
		assert.Equal(t, []string{"c-11-5"}, ids(got))

		got = providers.Filter(chapterList(), "2", "", "")
		assert.Equal(t, []string{"c-11"}, ids(got))
	})

	t.Run("matches chapter by id", func(t *testing.T) {
		t.Parallel()

		got := providers.Filter(chapterList(), "c-12", "", "")
		assert.Equal(t, []string{"c-12"}, ids(got))
	})

	t.Run("returns nil for unknown chapter", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, providers.Filter(chapterList(), "99", "", ""))
	})

	t.Run("selects inclusive range", func(t *testing.T) {
		t.Parallel()

		got := providers.Filter(chapterList(), "", "2-3", "")
		assert.Equal(t, []string{"c-11", "c-11-5"}, ids(got))
	})

	t.Run("rejects malformed or out of bounds range", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, providers.FilterRange(chapterList(), "3-1"))
		assert.Nil(t, providers.FilterRange(chapterList(), "1-9"))
		assert.Nil(t, providers.FilterRange(chapterList(), "a-b"))
		assert.Nil(t, providers.FilterRange(chapterList(), "1"))
	})

	t.Run("selects list and skips invalid entries", func(t *testing.T) {
		t.Parallel()

		got := providers.Filter(chapterList(), "", "", "4, x,1,,9")
		assert.Equal(t, []string{"c-12", "c-10"}, ids(got))
	})
}

func TestChapter_Label(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12", providers.Chapter{Number: 12}.Label())
	assert.Equal(t, "12.5", providers.Chapter{Number: 12.5}.Label())
	assert.Equal(t, "0", providers.Chapter{}.Label())
}
