package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Reads the yml file", func(t *testing.T) {
		// Given: a config file with custom glyphs
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\ndisplay:\n  disable-clear: true\n  cell-separator: \" \"\n  glyphs:\n    empty: \".\"\n    black: \"x\"\n    white: \"o\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf := MustLoad(path)

		// Then: every field is taken from the file
		assert.Equal(t, "debug", conf.LogLevel)
		assert.True(t, conf.Display.DisableClear)
		assert.Equal(t, " ", conf.Display.CellSeparator)
		assert.Equal(t, Glyphs{Empty: ".", Black: "x", White: "o"}, conf.Display.Glyphs)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// When: loading a path that does not exist
		conf := MustLoad(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the defaults are used
		assert.Equal(t, "info", conf.LogLevel)
		assert.False(t, conf.Display.DisableClear)
		assert.Equal(t, Glyphs{Empty: "・", Black: "●", White: "○"}, conf.Display.Glyphs)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: the log level set in the environment
		t.Setenv("OTHELLO_LOG_LEVEL", "warn")

		// When: loading without a file
		conf := MustLoad(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment value wins
		assert.Equal(t, "warn", conf.LogLevel)
	})

	t.Run("Invalid file panics", func(t *testing.T) {
		// Given: a malformed config file
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("display: [\n"), 0o600))

		// Then: loading it panics
		assert.Panics(t, func() {
			MustLoad(path)
		})
	})
}
