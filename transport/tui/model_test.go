package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
	"github.com/rocketscienceinc/tictactoe/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (*Model, *usecase.GameSession) {
	t.Helper()

	_, s := suite.New(t)

	return New(s.Logger, s.Session, Options{}), s.Session
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

// press feeds keys to the model and returns the command of the last one.
func press(m *Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}

	return cmd
}

func requireQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok, "expected tea.QuitMsg")
}

func TestModel_Placement(t *testing.T) {
	t.Run("Number key places a mark in the matching cell", func(t *testing.T) {
		// Given: a new game
		m, session := newTestModel(t)

		// When: pressing 5
		cmd := press(m, runes("5"))

		// Then: X is in the centre and O is to move
		assert.Nil(t, cmd)
		snap := session.Snapshot()
		assert.Equal(t, entity.MarkX, snap.Board.At(entity.Position{Row: 1, Col: 1}))
		assert.Equal(t, entity.PlayerO, snap.Current)
		assert.Contains(t, m.View(), "Player O's turn")
	})

	t.Run("Placing on a filled cell is ignored", func(t *testing.T) {
		// Given: X holds the top-left corner
		m, session := newTestModel(t)
		press(m, runes("1"))
		before := session.Snapshot()

		// When: O presses the same cell
		press(m, runes("1"))

		// Then: nothing changes and a hint is shown
		assert.Equal(t, before, session.Snapshot())
		assert.Contains(t, m.View(), "already taken")
	})

	t.Run("Cursor moves and places with enter", func(t *testing.T) {
		// Given: a new game with the cursor in the centre
		m, session := newTestModel(t)

		// When: moving up and left, then pressing enter
		press(m, runes("k"), tea.KeyMsg{Type: tea.KeyLeft}, enter)

		// Then: X lands in the top-left corner
		assert.Equal(t, entity.MarkX, session.Snapshot().Board.At(entity.Position{Row: 0, Col: 0}))
	})

	t.Run("Cursor stays on the board", func(t *testing.T) {
		// Given: a new game
		m, session := newTestModel(t)

		// When: moving far past the bottom-right edge and placing with space
		press(m, runes("j"), runes("j"), runes("j"), runes("l"), runes("l"), runes("l"), tea.KeyMsg{Type: tea.KeySpace})

		// Then: X lands in the bottom-right corner
		assert.Equal(t, entity.Position{Row: 2, Col: 2}, m.cursor)
		assert.Equal(t, entity.MarkX, session.Snapshot().Board.At(entity.Position{Row: 2, Col: 2}))
	})
}

func TestModel_GameOver(t *testing.T) {
	winForX := []tea.KeyMsg{runes("1"), runes("5"), runes("2"), runes("9"), runes("3")}

	t.Run("Win shows the game-over prompt", func(t *testing.T) {
		// Given: a new game
		m, session := newTestModel(t)

		// When: X completes the top row
		press(m, winForX...)

		// Then: the prompt is shown
		assert.Equal(t, entity.WinStatus(entity.PlayerX), session.Snapshot().Status)
		view := m.View()
		assert.Contains(t, view, "Player X wins!")
		assert.Contains(t, view, "Play Again")
		assert.Contains(t, view, "Quit")
	})

	t.Run("Board input is ignored after the game ends", func(t *testing.T) {
		// Given: X has won
		m, session := newTestModel(t)
		press(m, winForX...)
		before := session.Snapshot()

		// When: pressing an empty cell
		press(m, runes("4"))

		// Then: the board is unchanged
		assert.Equal(t, before, session.Snapshot())
	})

	t.Run("Play Again is the default choice", func(t *testing.T) {
		// Given: X has won
		m, session := newTestModel(t)
		press(m, winForX...)

		// When: confirming the prompt
		cmd := press(m, enter)

		// Then: a new game starts
		assert.Nil(t, cmd)
		assert.Equal(t, entity.Board{}, session.Snapshot().Board)
		assert.Equal(t, entity.InProgressStatus(), session.Snapshot().Status)
		assert.Contains(t, m.View(), "Player X's turn")
	})

	t.Run("Choosing Quit ends the program", func(t *testing.T) {
		// Given: X has won
		m, _ := newTestModel(t)
		press(m, winForX...)

		// When: switching to Quit and confirming
		cmd := press(m, tea.KeyMsg{Type: tea.KeyTab}, enter)

		// Then: the program quits and renders nothing
		requireQuit(t, cmd)
		assert.Empty(t, m.View())
	})

	t.Run("y and n shortcuts", func(t *testing.T) {
		m, session := newTestModel(t)
		press(m, winForX...)

		press(m, runes("y"))
		assert.True(t, session.Snapshot().Status.IsInProgress())

		press(m, winForX...)
		requireQuit(t, press(m, runes("n")))
	})

	t.Run("Draw shows a tie", func(t *testing.T) {
		// Given: a new game
		m, session := newTestModel(t)

		// When: the board fills as X,O,X / X,O,O / O,X,X
		press(m, runes("1"), runes("2"), runes("3"), runes("5"), runes("4"), runes("6"), runes("8"), runes("7"), runes("9"))

		// Then: the game is a draw
		assert.Equal(t, entity.DrawStatus(), session.Snapshot().Status)
		assert.Contains(t, m.View(), "It's a tie!")
	})
}

func TestModel_Restart(t *testing.T) {
	t.Run("Restart mid-game", func(t *testing.T) {
		// Given: a game in progress
		_, s := suite.New(t)
		m := New(s.Logger, s.Session, Options{})
		press(m, runes("1"), runes("5"), runes("9"))

		// When: pressing r
		press(m, runes("r"))

		// Then: the board is cleared, X is to move and the restart is logged
		snap := s.Session.Snapshot()
		assert.Equal(t, entity.Board{}, snap.Board)
		assert.Equal(t, entity.PlayerX, snap.Current)
		assert.Contains(t, m.View(), "Game restarted")
		assert.Contains(t, s.Logs.String(), "game restarted")
	})
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(k.String(), func(t *testing.T) {
			m, _ := newTestModel(t)

			requireQuit(t, press(m, k))
		})
	}
}

func TestModel_Resize(t *testing.T) {
	t.Run("Cells grow with the window", func(t *testing.T) {
		// Given: a new game
		m, _ := newTestModel(t)

		// When: the window gets large
		m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})

		// Then: cells are bigger than the minimum, odd-sized and capped
		assert.Equal(t, maxCellWidth, m.cellWidth)
		assert.Equal(t, 9, m.cellHeight)
	})

	t.Run("Cells never collapse", func(t *testing.T) {
		m, _ := newTestModel(t)

		m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})

		assert.Equal(t, minCellWidth, m.cellWidth)
		assert.Equal(t, minCellHeight, m.cellHeight)
		assert.NotEmpty(t, m.View())
	})
}

func TestModel_Help(t *testing.T) {
	t.Run("Help is shown by default", func(t *testing.T) {
		m, _ := newTestModel(t)

		assert.Contains(t, m.View(), "restart")
	})

	t.Run("Help can be hidden", func(t *testing.T) {
		_, s := suite.New(t)
		m := New(s.Logger, s.Session, Options{HideHelp: true})

		assert.NotContains(t, m.View(), "restart")
	})
}
