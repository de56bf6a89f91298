package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Place   key.Binding
	Cell    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding

	// game-over prompt
	Switch    key.Binding
	Confirm   key.Binding
	PlayAgain key.Binding
	Decline   key.Binding

	gameOver bool
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Place: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "place mark"),
		),
		Cell: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "place in cell"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Switch: key.NewBinding(
			key.WithKeys("left", "right", "h", "l", "tab", "shift+tab"),
			key.WithHelp("←/→", "choose"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "confirm"),
		),
		PlayAgain: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "play again"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "quit"),
		),
	}
}

func (that keyMap) ShortHelp() []key.Binding {
	if that.gameOver {
		return []key.Binding{that.Switch, that.Confirm, that.PlayAgain, that.Decline}
	}

	return []key.Binding{that.Place, that.Cell, that.Restart, that.Quit, that.Help}
}

func (that keyMap) FullHelp() [][]key.Binding {
	if that.gameOver {
		return [][]key.Binding{
			{that.Switch, that.Confirm},
			{that.PlayAgain, that.Decline, that.Restart, that.Quit},
		}
	}

	return [][]key.Binding{
		{that.Up, that.Down, that.Left, that.Right},
		{that.Place, that.Cell},
		{that.Restart, that.Quit, that.Help},
	}
}
