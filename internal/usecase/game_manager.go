package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/rocketscienceinc/othello/internal/apperror"
	"github.com/rocketscienceinc/othello/internal/entity"
	"github.com/rocketscienceinc/othello/internal/othello"
	"github.com/rocketscienceinc/othello/internal/transport/console"
)

const (
	promptMove    = "Input row and col: "
	promptRetry   = "Invalid position. Please input again: "
	gameOverLabel = "Both players cannot put a stone. Game over."
)

type moveSource interface {
	ReadToken(ctx context.Context) (string, error)
}

type displaySink interface {
	io.Writer
	Clear() error
}

type GameManager struct {
	logger  *slog.Logger
	game    *entity.Game
	input   moveSource
	display displaySink
	glyphs  othello.Glyphs
}

func NewGameManager(logger *slog.Logger, game *entity.Game, input moveSource, display displaySink, glyphs othello.Glyphs) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		game:    game,
		input:   input,
		display: display,
		glyphs:  glyphs,
	}
}

// Run - plays turns until neither player can move.
func (that *GameManager) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		player := that.game.Turn
		positions := othello.ResolveTurn(that.game)
		if that.game.IsFinished() {
			return that.finish()
		}

		if that.game.Turn != player {
			that.logger.Info("player has no legal move, passing", "player", player, "next", that.game.Turn)
		}

		if err := that.showTurn(positions); err != nil {
			return err
		}

		pos, err := that.readMove(ctx, positions)
		if err != nil {
			return err
		}

		if err = othello.MakeTurn(that.game, that.game.Turn, pos); err != nil {
			return fmt.Errorf("failed make turn: %w", err)
		}

		that.logger.Debug("stone placed", "player", that.game.Turn.Opponent(), "position", pos.String())
	}
}

func (that *GameManager) Game() *entity.Game {
	return that.game
}

// readMove - reads tokens until one names a legal position.
func (that *GameManager) readMove(ctx context.Context, positions []entity.Position) (entity.Position, error) {
	if err := that.print(promptMove); err != nil {
		return entity.Position{}, err
	}

	for {
		token, err := that.input.ReadToken(ctx)
		if errors.Is(err, io.EOF) {
			return entity.Position{}, fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
		}

		if err != nil {
			return entity.Position{}, fmt.Errorf("failed to read move: %w", err)
		}

		pos, err := console.ParsePosition(token)
		if err == nil && slices.Contains(positions, pos) {
			return pos, nil
		}

		if err != nil {
			that.logger.Debug("rejected input", "token", token, "error", err)
		} else {
			that.logger.Debug("rejected illegal position", "position", pos.String())
		}

		if err = that.print(promptRetry); err != nil {
			return entity.Position{}, err
		}
	}
}

func (that *GameManager) showTurn(positions []entity.Position) error {
	labels := make([]string, 0, len(positions))
	for _, pos := range positions {
		labels = append(labels, pos.String())
	}

	return that.draw(
		fmt.Sprintf("%s player's turn.\n", that.game.Turn),
		fmt.Sprintf("Puttable positions: %s\n", strings.Join(labels, " ")),
	)
}

func (that *GameManager) finish() error {
	that.logger.Info("game over",
		"black", that.game.Board.Count(entity.BlackCell),
		"white", that.game.Board.Count(entity.WhiteCell),
	)

	return that.draw(gameOverLabel + "\n")
}

// draw - clears the display and shows the board followed by the given lines.
func (that *GameManager) draw(lines ...string) error {
	if err := that.display.Clear(); err != nil {
		return err
	}

	return that.print(othello.Render(that.game.Board, that.glyphs) + strings.Join(lines, ""))
}

func (that *GameManager) print(text string) error {
	if _, err := io.WriteString(that.display, text); err != nil {
		return fmt.Errorf("failed to write to display: %w", err)
	}

	return nil
}
