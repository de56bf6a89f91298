package entity

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	MarkX
	MarkO
)

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}

// Player is one of the two sides. X always moves first after a reset.
type Player uint8

const (
	PlayerX Player = iota
	PlayerO
)

// Mark returns the mark the player puts on the board.
func (that Player) Mark() Mark {
	if that == PlayerO {
		return MarkO
	}
	return MarkX
}

// Other returns the opponent.
func (that Player) Other() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) String() string {
	return that.Mark().String()
}

// PlayerOf maps a non-empty mark back to its owner.
func PlayerOf(mark Mark) (Player, bool) {
	switch mark {
	case MarkX:
		return PlayerX, true
	case MarkO:
		return PlayerO, true
	default:
		return PlayerX, false
	}
}
