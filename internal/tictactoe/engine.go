package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// Result describes what a PlaceMark call did.
// Rejection is nil when the mark was placed, otherwise
// apperror.ErrGameFinished or apperror.ErrCellOccupied.
type Result struct {
	Status    entity.Status
	Rejection error
}

func (that Result) Accepted() bool {
	return that.Rejection == nil
}

// Engine owns the board, the current player and the game status.
// It does no locking: callers must serialize all calls.
type Engine struct {
	board   entity.Board
	current entity.Player
	status  entity.Status
}

func NewEngine() *Engine {
	engine := &Engine{}
	engine.Reset()

	return engine
}

// PlaceMark puts the current player's mark at (row, col).
//
// Out-of-range coordinates are a caller bug and return an error wrapping
// apperror.ErrInvalidCell. Placing on an occupied cell or after the game
// has ended is a normal rejection: the error is nil, Result.Rejection is set
// and nothing changes.
func (that *Engine) PlaceMark(row, col int) (Result, error) {
	pos := entity.Position{Row: row, Col: col}
	if !pos.Valid() {
		return Result{Status: that.status}, fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
	}

	if err := that.validateMove(pos); err != nil {
		return Result{Status: that.status, Rejection: err}, nil
	}

	that.board[pos.Index()] = that.current.Mark()
	that.updateGameStatus()

	return Result{Status: that.status}, nil
}

// validateMove - checks the rule-driven rejections.
func (that *Engine) validateMove(pos entity.Position) error {
	if that.status.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if that.board.At(pos) != entity.Empty {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - evaluates the board after a move. Win is checked before
// draw, so a full board with a completed line is a win.
func (that *Engine) updateGameStatus() {
	if that.hasWinningLine() {
		that.status = entity.WinStatus(that.current)
		return
	}

	if that.board.IsFull() {
		that.status = entity.DrawStatus()
		return
	}

	that.current = that.current.Other()
}

// hasWinningLine only needs to look for the current player's mark: a single
// placement cannot complete a line for the opponent.
func (that *Engine) hasWinningLine() bool {
	mark := that.current.Mark()

	for _, line := range entity.WinLines {
		if owner, ok := that.board.LineOwner(line); ok && owner == mark {
			return true
		}
	}

	return false
}

// CurrentPlayer returns whose turn it is. Once the game is over it keeps
// the player who made the last move.
func (that *Engine) CurrentPlayer() entity.Player {
	return that.current
}

func (that *Engine) Status() entity.Status {
	return that.status
}

// Board returns a copy of the grid.
func (that *Engine) Board() entity.Board {
	return that.board
}

func (that *Engine) Snapshot() entity.Snapshot {
	return entity.Snapshot{
		Board:   that.board,
		Current: that.current,
		Status:  that.status,
	}
}

// Reset clears the board and gives the first move to X.
func (that *Engine) Reset() {
	that.board = entity.Board{}
	that.current = entity.PlayerX
	that.status = entity.InProgressStatus()
}
