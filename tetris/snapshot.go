package tetris

import "time"

// Snapshot is a deep copy of everything a renderer or display needs for one
// frame.
type Snapshot struct {
	Columns      int           `json:"columns"`
	Rows         int           `json:"rows"`
	Grid         [][]Cell      `json:"grid"`
	Piece        [][]Cell      `json:"piece,omitempty"`
	PieceType    PieceType     `json:"piece_type,omitempty"`
	Position     Position      `json:"position"`
	GhostY       int           `json:"ghost_y"`
	Next         []PieceType   `json:"next"`
	Score        Score         `json:"score"`
	DropInterval time.Duration `json:"drop_interval"`
	State        string        `json:"state"`
}

// Snapshot copies the current game state, including up to next upcoming
// piece types.
func (g *Game) Snapshot(next int) Snapshot {
	s := Snapshot{
		Columns:      g.grid.Columns(),
		Rows:         g.grid.Rows(),
		Grid:         g.grid.Cells(),
		Position:     g.pos,
		GhostY:       g.GhostY(),
		Next:         g.bag.Peek(next),
		Score:        g.session.Display(),
		DropInterval: g.session.DropInterval,
		State:        g.state.String(),
	}
	if g.piece != nil {
		s.Piece = g.piece.Cells()
		s.PieceType = g.piece.Type
	}
	return s
}
