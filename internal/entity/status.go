package entity

type StatusKind uint8

const (
	StatusInProgress StatusKind = iota
	StatusWin
	StatusDraw
)

// Status is the game outcome so far. Winner is only meaningful for StatusWin.
type Status struct {
	Kind   StatusKind `json:"kind"`
	Winner Player     `json:"winner"`
}

func InProgressStatus() Status {
	return Status{Kind: StatusInProgress}
}

func WinStatus(winner Player) Status {
	return Status{Kind: StatusWin, Winner: winner}
}

func DrawStatus() Status {
	return Status{Kind: StatusDraw}
}

func (that Status) IsInProgress() bool {
	return that.Kind == StatusInProgress
}

func (that Status) IsTerminal() bool {
	return that.Kind == StatusWin || that.Kind == StatusDraw
}

func (that Status) String() string {
	switch that.Kind {
	case StatusWin:
		return that.Winner.String() + " wins"
	case StatusDraw:
		return "draw"
	default:
		return "in progress"
	}
}
