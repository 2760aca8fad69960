package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	t.Run("overrides typed fields", func(t *testing.T) {
		t.Parallel()

		c := DefaultConfig()
		err := applyEnv(c, lookupMap(map[string]string{
			"EROSSCANS_BASE_URL":            "https://mirror.test",
			"EROSSCANS_WORKERS":             "8",
			"EROSSCANS_DEBUG":               "true",
			"EROSSCANS_REQUESTS_PER_SECOND": "0.5",
			"EROSSCANS_TIMEOUT":             "5s",
			"EROSSCANS_CLOUDFLARE_BYPASS":   "1",
		}))

		require.NoError(t, err)
		assert.Equal(t, "https://mirror.test", c.BaseURL)
		assert.Equal(t, 8, c.Workers)
		assert.True(t, c.Debug)
		assert.Equal(t, 0.5, c.RequestsPerSecond)
		assert.Equal(t, 5*time.Second, c.Timeout)
		assert.True(t, c.CloudflareBypass)
	})

	t.Run("blank values are ignored", func(t *testing.T) {
		t.Parallel()

		c := DefaultConfig()
		err := applyEnv(c, lookupMap(map[string]string{"EROSSCANS_FORMAT": "  "}))

		require.NoError(t, err)
		assert.Equal(t, "text", c.Format)
	})

	t.Run("bad numbers name the variable", func(t *testing.T) {
		t.Parallel()

		err := applyEnv(DefaultConfig(), lookupMap(map[string]string{"EROSSCANS_RETRIES": "many"}))

		assert.ErrorContains(t, err, "EROSSCANS_RETRIES")
	})
}

func TestMergeConfig(t *testing.T) {
	t.Parallel()

	c := DefaultConfig()
	c.UserAgent = "from-profile"
	mergeConfig(c, Options{Format: "json", Workers: 2, SkipBroken: true})

	assert.Equal(t, "json", c.Format)
	assert.Equal(t, 2, c.Workers)
	assert.True(t, c.SkipBroken)
	assert.Equal(t, "from-profile", c.UserAgent)
}
