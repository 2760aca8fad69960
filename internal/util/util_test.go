package util_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/brogergvhs/erosscans/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOutput(t *testing.T) {
	t.Parallel()

	t.Run("renames into place on success", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "result.json")

		err := util.WriteOutput(path, func(w io.Writer) error {
			_, err := fmt.Fprint(w, `{"ok":true}`)
			return err
		})

		require.NoError(t, err)
		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, string(b))
		assert.NoFileExists(t, path+".part")
	})

	t.Run("leaves nothing behind on failure", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "result.json")
		boom := errors.New("render failed")

		err := util.WriteOutput(path, func(w io.Writer) error {
			_, _ = fmt.Fprint(w, "half")
			return boom
		})

		require.ErrorIs(t, err, boom)
		assert.NoFileExists(t, path)
		assert.NoFileExists(t, path+".part")
	})
}

func TestRemovePartial(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "result.yaml")
	require.NoError(t, os.WriteFile(path+".part", []byte("x"), 0644))

	util.RemovePartial(path)

	assert.NoFileExists(t, path+".part")
}

func TestHuman(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", util.Human(512))
	assert.Equal(t, "1.50 KB", util.Human(1536))
	assert.Equal(t, "2.00 MB", util.Human(2<<20))
	assert.Equal(t, "1.00 GB", util.Human(1<<30))
}

func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	t.Run("sets user agent and cookies", func(t *testing.T) {
		t.Parallel()

		cookieFile := filepath.Join(t.TempDir(), "cookies.txt")
		require.NoError(t, os.WriteFile(cookieFile, []byte("\n cf_clearance=abc \nignored=1\n"), 0644))

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
			assert.Equal(t, "a=1; cf_clearance=abc", r.Header.Get("Cookie"))
		}))
		defer srv.Close()

		client, err := util.NewHTTPClient(util.HTTPClientOptions{
			UserAgent:  "test-agent",
			Cookie:     "a=1",
			CookieFile: cookieFile,
		})
		require.NoError(t, err)

		resp, err := client.Get(srv.URL)
		require.NoError(t, err)
		_ = resp.Body.Close()
	})

	t.Run("default user agent", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, util.PickUserAgent(""), "Mozilla/5.0")
		assert.Equal(t, "custom", util.PickUserAgent("custom"))
	})
}
