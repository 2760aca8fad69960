package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/brogergvhs/erosscans/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMerged(t *testing.T) {
	t.Run("defaults when no profile is active", func(t *testing.T) {
		t.Setenv("EROSSCANS_CONFIG_DIR", t.TempDir())

		cfg, source, err := config.LoadMerged(config.Options{})

		require.NoError(t, err)
		assert.Equal(t, config.DefaultBaseURL, cfg.BaseURL)
		assert.Equal(t, 3, cfg.Retries)
		assert.Contains(t, source, "default config")
	})

	t.Run("profile then env then flags", func(t *testing.T) {
		t.Setenv("EROSSCANS_CONFIG_DIR", t.TempDir())

		path, err := config.InitDefaultConfig()
		require.NoError(t, err)

		cfg := config.DefaultConfig()
		cfg.BaseURL = "https://profile.test/"
		cfg.Workers = 6
		cfg.UserAgent = "profile-ua"
		require.NoError(t, config.SaveYAML(cfg, path))

		t.Setenv("EROSSCANS_USER_AGENT", "env-ua")
		t.Setenv("EROSSCANS_WORKERS", "7")

		got, source, err := config.LoadMerged(config.Options{Workers: 9})

		require.NoError(t, err)
		assert.Equal(t, path, source)
		assert.Equal(t, "https://profile.test", got.BaseURL)
		assert.Equal(t, "env-ua", got.UserAgent)
		assert.Equal(t, 9, got.Workers)
	})

	t.Run("env file fills unset variables", func(t *testing.T) {
		t.Setenv("EROSSCANS_CONFIG_DIR", t.TempDir())
		t.Setenv("EROSSCANS_FORMAT", "restored-on-cleanup")
		require.NoError(t, os.Unsetenv("EROSSCANS_FORMAT"))

		envFile := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(envFile, []byte("EROSSCANS_FORMAT=yaml\n"), 0644))

		cfg, _, err := config.LoadMerged(config.Options{EnvFile: envFile})

		require.NoError(t, err)
		assert.Equal(t, "yaml", cfg.Format)
	})

	t.Run("missing explicit env file is an error", func(t *testing.T) {
		t.Setenv("EROSSCANS_CONFIG_DIR", t.TempDir())

		_, _, err := config.LoadMerged(config.Options{EnvFile: filepath.Join(t.TempDir(), "nope.env")})

		assert.ErrorContains(t, err, "nope.env")
	})

	t.Run("invalid format is rejected", func(t *testing.T) {
		t.Setenv("EROSSCANS_CONFIG_DIR", t.TempDir())

		_, _, err := config.LoadMerged(config.Options{Format: "xml"})

		assert.ErrorContains(t, err, "invalid format")
	})
}

func TestProfiles(t *testing.T) {
	t.Setenv("EROSSCANS_CONFIG_DIR", t.TempDir())

	_, err := config.InitDefaultConfig()
	require.NoError(t, err)

	path, err := config.CreateEmptyConfig("work")
	require.NoError(t, err)
	assert.Equal(t, config.ConfigPathByLabel("work"), path)

	require.NoError(t, config.SwitchConfig("work"))
	label, err := config.CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, "work", label)

	require.NoError(t, config.RenameConfig("work", "home"))
	label, _ = config.CurrentLabel()
	assert.Equal(t, "home", label)

	list, err := config.ListConfigs()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Default", list[0].Label)
	assert.Equal(t, "home", list[1].Label)
	assert.True(t, list[1].Active)

	switched, err := config.RemoveConfig("home")
	require.NoError(t, err)
	assert.True(t, switched)
	label, _ = config.CurrentLabel()
	assert.Equal(t, config.DefaultLabel, label)

	_, err = config.RemoveConfig(config.DefaultLabel)
	assert.Error(t, err)
}

func TestConfig_RetryDelays(t *testing.T) {
	t.Parallel()

	c := config.DefaultConfig()
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, c.RetryDelays())

	c.Retries = 0
	assert.Empty(t, c.RetryDelays())
}

func TestConfig_Print(t *testing.T) {
	t.Parallel()

	c := config.DefaultConfig()
	c.Headers = map[string]string{"X-B": "2", "X-A": "1"}

	var sb strings.Builder
	c.Print(&sb)

	assert.Contains(t, sb.String(), " -base_url: https://erosscans.xyz")
	assert.Contains(t, sb.String(), " -headers: X-A, X-B")
}
