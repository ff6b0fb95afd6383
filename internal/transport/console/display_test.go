package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplay(t *testing.T) {
	t.Run("Clear writes the escape sequence when enabled", func(t *testing.T) {
		var buf bytes.Buffer
		display := NewDisplay(&buf, true)

		require.NoError(t, display.Clear())
		_, err := display.Write([]byte("board"))
		require.NoError(t, err)

		assert.Equal(t, "\x1b[H\x1b[2Jboard", buf.String())
	})

	t.Run("Clear is a no-op when disabled", func(t *testing.T) {
		var buf bytes.Buffer
		display := NewDisplay(&buf, false)

		require.NoError(t, display.Clear())

		assert.Empty(t, buf.String())
	})
}
