package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type gameEngine interface {
	PlaceMark(row, col int) (tictactoe.Result, error)
	Snapshot() entity.Snapshot
	Reset()
}

// GameSession drives one engine on behalf of a presentation layer and
// records what happens in the log. Like the engine it is not safe for
// concurrent use.
type GameSession struct {
	logger *slog.Logger
	engine gameEngine

	roundID string
	moves   int
}

func NewGameSession(logger *slog.Logger, engine gameEngine) *GameSession {
	session := &GameSession{
		logger: logger.With("component", "session"),
		engine: engine,
	}

	session.startRound()

	return session
}

// Place plays the current player's mark at pos.
func (that *GameSession) Place(pos entity.Position) (tictactoe.Result, error) {
	log := that.logger.With("method", "Place", "round", that.roundID, "row", pos.Row, "col", pos.Col)

	player := that.engine.Snapshot().Current

	result, err := that.engine.PlaceMark(pos.Row, pos.Col)
	if err != nil {
		log.Error("invalid placement", "error", err)
		return result, fmt.Errorf("failed to place mark: %w", err)
	}

	if !result.Accepted() {
		log.Info("placement rejected", "player", player.String(), "reason", result.Rejection)
		return result, nil
	}

	that.moves++
	log.Debug("mark placed", "player", player.String(), "moves", that.moves)

	if result.Status.IsTerminal() {
		log.Info("game over", "result", result.Status.String(), "moves", that.moves)
	}

	return result, nil
}

// Restart abandons the current round, whatever its state.
func (that *GameSession) Restart() {
	that.logger.Info("game restarted", "round", that.roundID, "moves", that.moves)
	that.startRound()
}

// PlayAgain starts a new round after a finished one.
func (that *GameSession) PlayAgain() {
	that.logger.Info("playing again", "round", that.roundID, "result", that.engine.Snapshot().Status.String())
	that.startRound()
}

func (that *GameSession) Snapshot() entity.Snapshot {
	return that.engine.Snapshot()
}

func (that *GameSession) RoundID() string {
	return that.roundID
}

func (that *GameSession) Moves() int {
	return that.moves
}

func (that *GameSession) startRound() {
	that.engine.Reset()
	that.roundID = uuid.NewString()
	that.moves = 0

	that.logger.Info("round started", "round", that.roundID)
}
