package entity

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

// WinLines are the eight triples of flat board indices that complete a game.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Position addresses a cell by row and column, both in [0, BoardSize).
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) Valid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Index returns the flat board index. The position must be valid.
func (that Position) Index() int {
	return that.Row*BoardSize + that.Col
}

func PositionFromIndex(index int) Position {
	return Position{Row: index / BoardSize, Col: index % BoardSize}
}

// Board is a row-major 3x3 grid.
type Board [CellCount]Mark

func (that Board) At(pos Position) Mark {
	return that[pos.Index()]
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

// LineOwner returns the mark filling all three cells of line, if any.
func (that Board) LineOwner(line [3]int) (Mark, bool) {
	a, b, c := that[line[0]], that[line[1]], that[line[2]]
	if a != Empty && a == b && b == c {
		return a, true
	}

	return Empty, false
}

// Snapshot is a detached copy of the game state handed to presentation layers.
type Snapshot struct {
	Board   Board  `json:"board"`
	Current Player `json:"current"`
	Status  Status `json:"status"`
}
