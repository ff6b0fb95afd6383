package othello

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/othello/internal/apperror"
	"github.com/rocketscienceinc/othello/internal/entity"
)

var (
	ErrInvalidCell  = errors.New("cell is outside the board")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrIllegalMove  = errors.New("placement does not capture any stone")

	directions = [8]entity.Position{
		{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
		{Row: 0, Col: -1}, {Row: 0, Col: 1},
		{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
	}
)

// PuttablePositions - returns the legal moves of the player in row-major order.
func PuttablePositions(board *entity.Board, player entity.Player) []entity.Position {
	var positions []entity.Position

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			pos := entity.Position{Row: row, Col: col}
			if board.At(pos) != entity.EmptyCell {
				continue
			}

			if !hasAdjacentStone(board, pos) {
				continue
			}

			if len(ReversibleStones(board, pos, player)) == 0 {
				continue
			}

			positions = append(positions, pos)
		}
	}

	return positions
}

// ReversibleStones - returns the opponent stones flipped by placing at pos.
// Returns nil when pos is outside the board or already occupied.
func ReversibleStones(board *entity.Board, pos entity.Position, player entity.Player) []entity.Position {
	if !pos.InBounds() || board.At(pos) != entity.EmptyCell {
		return nil
	}

	own, opponent := player.Cell(), player.Opponent().Cell()

	var stones []entity.Position
	for _, dir := range directions {
		var ray []entity.Position

		next := entity.Position{Row: pos.Row + dir.Row, Col: pos.Col + dir.Col}
		for next.InBounds() && board.At(next) == opponent {
			ray = append(ray, next)
			next = entity.Position{Row: next.Row + dir.Row, Col: next.Col + dir.Col}
		}

		if len(ray) > 0 && next.InBounds() && board.At(next) == own {
			stones = append(stones, ray...)
		}
	}

	return stones
}

// PutStone - places the player's stone and flips the captured stones.
// The capture set is derived here, so the board is never changed by an illegal placement.
func PutStone(board *entity.Board, pos entity.Position, player entity.Player) ([]entity.Position, error) {
	if err := validatePlacement(board, pos); err != nil {
		return nil, err
	}

	stones := ReversibleStones(board, pos, player)
	if len(stones) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrIllegalMove, pos)
	}

	board.Set(pos, player.Cell())
	for _, stone := range stones {
		board.Set(stone, player.Cell())
	}

	return stones, nil
}

// IsGameOver - reports whether neither player has a legal move.
func IsGameOver(board *entity.Board) bool {
	return len(PuttablePositions(board, entity.PlayerBlack)) == 0 &&
		len(PuttablePositions(board, entity.PlayerWhite)) == 0
}

// ResolveTurn - hands the turn to the opponent when the current player cannot move and
// finishes the game when neither can. Returns the legal moves of the player to move.
func ResolveTurn(gameInstance *entity.Game) []entity.Position {
	if gameInstance.IsFinished() {
		return nil
	}

	if positions := PuttablePositions(gameInstance.Board, gameInstance.Turn); len(positions) > 0 {
		return positions
	}

	opponent := gameInstance.Turn.Opponent()
	if positions := PuttablePositions(gameInstance.Board, opponent); len(positions) > 0 {
		gameInstance.Turn = opponent
		return positions
	}

	gameInstance.Status = entity.StatusFinished

	return nil
}

func MakeTurn(gameInstance *entity.Game, player entity.Player, pos entity.Position) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if gameInstance.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if _, err := PutStone(gameInstance.Board, pos, player); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Turn = player.Opponent()

	return nil
}

// validatePlacement - checks the target cell before any capture is computed.
func validatePlacement(board *entity.Board, pos entity.Position) error {
	if !pos.InBounds() {
		return fmt.Errorf("%w: %s", ErrInvalidCell, pos)
	}

	if board.At(pos) != entity.EmptyCell {
		return fmt.Errorf("%w: %s", ErrCellOccupied, pos)
	}

	if !hasAdjacentStone(board, pos) {
		return fmt.Errorf("%w: %s has no adjacent stone", ErrIllegalMove, pos)
	}

	return nil
}

func hasAdjacentStone(board *entity.Board, pos entity.Position) bool {
	for _, dir := range directions {
		if board.At(entity.Position{Row: pos.Row + dir.Row, Col: pos.Col + dir.Col}) != entity.EmptyCell {
			return true
		}
	}

	return false
}
