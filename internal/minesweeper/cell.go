package minesweeper

// CellState is the player-visible state of a cell.
type CellState int

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

// String returns a human-readable name for the cell state.
func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// cell is one grid position. Mine and adjacent are engine secrets until the
// cell is revealed.
type cell struct {
	mine     bool
	state    CellState
	adjacent uint8 // 0-8, valid once mines are placed
}

// CellView is what a front end may know about a cell.
// Mine and Adjacent are only populated when State is Revealed.
type CellView struct {
	State    CellState
	Mine     bool
	Adjacent int
}

// view projects a cell through the information-hiding rule.
func (c cell) view() CellView {
	if c.state != Revealed {
		return CellView{State: c.state}
	}
	return CellView{
		State:    Revealed,
		Mine:     c.mine,
		Adjacent: int(c.adjacent),
	}
}
