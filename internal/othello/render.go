package othello

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/othello/internal/entity"
)

type Glyphs struct {
	Empty     string
	Black     string
	White     string
	Separator string
}

var DefaultGlyphs = Glyphs{
	Empty: "・",
	Black: "●",
	White: "○",
}

// Render - draws the column header and one line per row, each prefixed by its index.
func Render(board *entity.Board, glyphs Glyphs) string {
	var builder strings.Builder

	builder.WriteString(" ")
	for col := 0; col < entity.BoardSize; col++ {
		builder.WriteByte(' ')
		builder.WriteString(strconv.Itoa(col))
	}
	builder.WriteByte('\n')

	for row := 0; row < entity.BoardSize; row++ {
		builder.WriteString(strconv.Itoa(row))
		builder.WriteByte(' ')
		for col := 0; col < entity.BoardSize; col++ {
			if col > 0 {
				builder.WriteString(glyphs.Separator)
			}
			builder.WriteString(glyphs.glyph(board.Grid[row][col]))
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}

func (that Glyphs) glyph(cell entity.Cell) string {
	switch cell {
	case entity.BlackCell:
		return that.Black
	case entity.WhiteCell:
		return that.White
	default:
		return that.Empty
	}
}
