package tui

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const (
	windowTitle = "Tic Tac Toe"

	minCellWidth  = 5
	minCellHeight = 1
	maxCellWidth  = 21

	// rows used by the title, status, notice, prompt and help lines
	reservedRows = 12
	// board border plus the two grid separators
	boardChrome = 4
)

const (
	choicePlayAgain = iota
	choiceQuit
)

type gameSession interface {
	Place(pos entity.Position) (tictactoe.Result, error)
	Restart()
	PlayAgain()
	Snapshot() entity.Snapshot
}

type Options struct {
	HideHelp bool
}

// Model is the terminal presentation of one game session. It only reads
// snapshots from the session and forwards user input to it.
type Model struct {
	logger  *slog.Logger
	session gameSession

	keys     keyMap
	help     help.Model
	hideHelp bool

	cursor entity.Position
	notice string
	choice int

	width      int
	height     int
	cellWidth  int
	cellHeight int

	quitting bool
}

func New(logger *slog.Logger, session gameSession, opts Options) *Model {
	return &Model{
		logger:     logger.With("component", "tui"),
		session:    session,
		keys:       defaultKeyMap(),
		help:       help.New(),
		hideHelp:   opts.HideHelp,
		cursor:     entity.Position{Row: 1, Col: 1},
		cellWidth:  minCellWidth,
		cellHeight: minCellHeight,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Restart):
		m.session.Restart()
		m.notice = "Game restarted"
		m.choice = choicePlayAgain
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.session.Snapshot().Status.IsTerminal() {
		return m.handlePromptKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Place):
		m.place(m.cursor)
	case key.Matches(msg, m.keys.Cell):
		m.cursor = entity.PositionFromIndex(int(msg.String()[0] - '1'))
		m.place(m.cursor)
	}

	return m, nil
}

// handlePromptKey - the game-over prompt offering "Play Again" or "Quit".
func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Switch):
		m.choice = (m.choice + 1) % 2
	case key.Matches(msg, m.keys.PlayAgain):
		m.playAgain()
	case key.Matches(msg, m.keys.Decline):
		return m.quit()
	case key.Matches(msg, m.keys.Confirm):
		if m.choice == choiceQuit {
			return m.quit()
		}
		m.playAgain()
	}

	return m, nil
}

func (m *Model) place(pos entity.Position) {
	result, err := m.session.Place(pos)
	if err != nil {
		m.logger.Error("failed to place mark", "error", err)
		m.notice = "Invalid cell"
		return
	}

	switch {
	case errors.Is(result.Rejection, apperror.ErrCellOccupied):
		m.notice = "That cell is already taken"
	case errors.Is(result.Rejection, apperror.ErrGameFinished):
		m.notice = "The game is over"
	default:
		m.notice = ""
	}

	if result.Status.IsTerminal() {
		m.choice = choicePlayAgain
	}
}

func (m *Model) playAgain() {
	m.session.PlayAgain()
	m.notice = ""
	m.choice = choicePlayAgain
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Info("quit requested")

	return m, tea.Quit
}

func (m *Model) moveCursor(dRow, dCol int) {
	next := entity.Position{Row: m.cursor.Row + dRow, Col: m.cursor.Col + dCol}
	if next.Valid() {
		m.cursor = next
	}
}

// resize scales the cells with the window, keeping them roughly square on
// screen (terminal cells are about twice as tall as they are wide).
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	m.cellWidth, m.cellHeight = cellSize(width, height)

	m.logger.Debug("window resized", "width", width, "height", height,
		"cellWidth", m.cellWidth, "cellHeight", m.cellHeight)
}

func cellSize(width, height int) (int, int) {
	w := (width - boardChrome) / entity.BoardSize
	h := (height - reservedRows - boardChrome) / entity.BoardSize

	w = min(w, 2*h+1)
	w = max(min(w, maxCellWidth), minCellWidth)
	if w%2 == 0 {
		w--
	}

	h = max(w/2, minCellHeight)
	if h%2 == 0 {
		h--
	}

	return w, h
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	gameOver := snap.Status.IsTerminal()

	sections := []string{
		TitleStyle.Render(windowTitle),
		StatusStyle.Render(statusLine(snap)),
		BoardStyle.Render(m.renderBoard(snap.Board, !gameOver)),
	}

	if m.notice != "" {
		sections = append(sections, NoticeStyle.Render(m.notice))
	}

	if gameOver {
		sections = append(sections, m.renderPrompt(snap.Status))
	}

	if !m.hideHelp {
		keys := m.keys
		keys.gameOver = gameOver
		sections = append(sections, m.help.View(keys))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func statusLine(snap entity.Snapshot) string {
	switch snap.Status.Kind {
	case entity.StatusWin:
		return "Player " + snap.Status.Winner.String() + " wins!"
	case entity.StatusDraw:
		return "It's a tie!"
	default:
		return "Player " + snap.Current.String() + "'s turn"
	}
}

func (m *Model) renderBoard(board entity.Board, showCursor bool) string {
	vertical := GridStyle.Render(strings.TrimSuffix(strings.Repeat("│\n", m.cellHeight), "\n"))

	segment := strings.Repeat("─", m.cellWidth)
	horizontal := GridStyle.Render(strings.Join([]string{segment, segment, segment}, "┼"))

	rows := make([]string, 0, 2*entity.BoardSize-1)
	for row := 0; row < entity.BoardSize; row++ {
		cells := make([]string, 0, 2*entity.BoardSize-1)
		for col := 0; col < entity.BoardSize; col++ {
			pos := entity.Position{Row: row, Col: col}
			if col > 0 {
				cells = append(cells, vertical)
			}
			cells = append(cells, m.renderCell(board, pos, showCursor && pos == m.cursor))
		}

		if row > 0 {
			rows = append(rows, horizontal)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderCell(board entity.Board, pos entity.Position, selected bool) string {
	var content string

	switch mark := board.At(pos); mark {
	case entity.MarkX:
		content = MarkXStyle.Render(mark.String())
	case entity.MarkO:
		content = MarkOStyle.Render(mark.String())
	default:
		content = HintStyle.Render(string(rune('1' + pos.Index())))
	}

	style := lipgloss.NewStyle().
		Width(m.cellWidth).
		Height(m.cellHeight).
		Align(lipgloss.Center, lipgloss.Center)

	if selected {
		style = style.Inherit(CursorStyle)
	}

	return style.Render(content)
}

func (m *Model) renderPrompt(status entity.Status) string {
	message := "It's a tie!"
	if status.Kind == entity.StatusWin {
		message = "Player " + status.Winner.String() + " wins!"
	}

	playAgain, quit := ButtonStyle, ButtonStyle
	if m.choice == choiceQuit {
		quit = ActiveButtonStyle
	} else {
		playAgain = ActiveButtonStyle
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		playAgain.Render("Play Again"),
		" ",
		quit.Render("Quit"),
	)

	return PromptStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		"Game Over",
		message,
		"What would you like to do?",
		"",
		buttons,
	))
}
