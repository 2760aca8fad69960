package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMangaIDArg(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"solo-leveling":                               "solo-leveling",
		" solo-leveling ":                             "solo-leveling",
		"https://erosscans.xyz/manga/solo-leveling/":  "solo-leveling",
		"https://mirror.test/manga/solo-leveling?x=1": "solo-leveling",
	}
	for in, want := range tests {
		got, err := mangaIDArg(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "https://erosscans.xyz/solo/chapter-1", "https://erosscans.xyz/"} {
		_, err := mangaIDArg(bad)
		assert.Error(t, err, bad)
	}
}

func TestCommandsRegistered(t *testing.T) {
	t.Parallel()

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"details", "chapters", "pages", "search", "home", "latest", "info", "config", "version"} {
		assert.True(t, names[want], want)
	}
}
