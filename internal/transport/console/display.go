package console

import (
	"fmt"
	"io"
)

const clearSequence = "\x1b[H\x1b[2J"

// Display is the surface the game is drawn on.
type Display struct {
	out   io.Writer
	clear bool
}

func NewDisplay(out io.Writer, clear bool) *Display {
	return &Display{
		out:   out,
		clear: clear,
	}
}

func (that *Display) Write(p []byte) (int, error) {
	return that.out.Write(p)
}

// Clear - moves the cursor home and erases the screen; a no-op when clearing is disabled.
func (that *Display) Clear() error {
	if !that.clear {
		return nil
	}

	if _, err := io.WriteString(that.out, clearSequence); err != nil {
		return fmt.Errorf("failed to clear display: %w", err)
	}

	return nil
}
