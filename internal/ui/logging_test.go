package ui_test

import (
	"bytes"
	"testing"

	"github.com/brogergvhs/erosscans/internal/ui"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	t.Parallel()

	t.Run("debug lines are dropped unless enabled", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := ui.NewLoggerTo(&buf, false)
		log.Debugf("hidden %d\n", 1)
		log.Infof("shown %d\n", 2)

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, `msg="shown 2"`)
	})

	t.Run("debug enabled", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := ui.NewLoggerTo(&buf, true)
		log.Debugf("visible")
		log.Slog().Debug("direct", "k", "v")

		out := buf.String()
		assert.Contains(t, out, "msg=visible")
		assert.Contains(t, out, "k=v")
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		ui.NewLoggerTo(&buf, false).Errorf("boom: %v", "x")

		assert.Contains(t, buf.String(), "level=ERROR")
	})
}
