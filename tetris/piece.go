package tetris

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=PieceType -trimprefix=Piece

// Cell is a single grid or piece cell. Zero is empty, 1..7 identify the piece
// color that occupies it.
type Cell int

// PieceType identifies one of the seven canonical tetrominoes.
type PieceType uint8

const (
	PieceI PieceType = iota + 1
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

// bagOrder is the base permutation a fresh bag is shuffled from.
var bagOrder = [...]PieceType{PieceI, PieceL, PieceJ, PieceO, PieceT, PieceS, PieceZ}

// PieceTypes returns all seven piece types in declaration order.
func PieceTypes() []PieceType {
	return []PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ}
}

// Valid reports whether t is one of the seven catalog types.
func (t PieceType) Valid() bool {
	return t >= PieceI && t <= PieceZ
}

// ParsePieceType accepts a single piece letter, case-insensitive.
func ParsePieceType(s string) (PieceType, error) {
	for _, t := range PieceTypes() {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown piece type %q", s)
}

func (t PieceType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid piece type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *PieceType) UnmarshalText(b []byte) error {
	parsed, err := ParsePieceType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Piece is a square cell matrix instantiated from the catalog. Every piece
// owns its cells, so rotating one never affects another.
type Piece struct {
	Type  PieceType
	size  int
	cells []Cell
}

// NewPiece returns a freshly allocated piece in its spawn orientation. Types
// outside the catalog get the fallback shape.
func NewPiece(t PieceType) *Piece {
	var rows [][]Cell
	switch t {
	case PieceT:
		rows = [][]Cell{
			{0, 0, 0},
			{1, 1, 1},
			{0, 1, 0},
		}
	case PieceO:
		rows = [][]Cell{
			{2, 2},
			{2, 2},
		}
	case PieceL:
		rows = [][]Cell{
			{0, 3, 0},
			{0, 3, 0},
			{0, 3, 3},
		}
	case PieceJ:
		rows = [][]Cell{
			{0, 4, 0},
			{0, 4, 0},
			{4, 4, 0},
		}
	case PieceI:
		rows = [][]Cell{
			{0, 5, 0, 0},
			{0, 5, 0, 0},
			{0, 5, 0, 0},
			{0, 5, 0, 0},
		}
	case PieceS:
		rows = [][]Cell{
			{0, 6, 6},
			{6, 6, 0},
			{0, 0, 0},
		}
	case PieceZ:
		rows = [][]Cell{
			{7, 7, 0},
			{0, 7, 7},
			{0, 0, 0},
		}
	default:
		rows = [][]Cell{
			{1, 1, 1},
			{0, 1, 0},
			{0, 0, 0},
		}
	}
	return pieceFromRows(t, rows)
}

func pieceFromRows(t PieceType, rows [][]Cell) *Piece {
	size := len(rows)
	for _, row := range rows {
		size = max(size, len(row))
	}

	p := &Piece{Type: t, size: size, cells: make([]Cell, size*size)}
	for y, row := range rows {
		copy(p.cells[y*size:], row)
	}
	return p
}

// Size is the edge length of the piece's square matrix.
func (p *Piece) Size() int {
	return p.size
}

// Width is the matrix width used for spawn centering and the kick bound.
func (p *Piece) Width() int {
	return p.size
}

// At returns the cell at (x, y) in piece-local coordinates.
func (p *Piece) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= p.size || y >= p.size {
		return 0
	}
	return p.cells[y*p.size+x]
}

// Cells returns a copy of the matrix as rows.
func (p *Piece) Cells() [][]Cell {
	rows := make([][]Cell, p.size)
	for y := range rows {
		rows[y] = append([]Cell(nil), p.cells[y*p.size:(y+1)*p.size]...)
	}
	return rows
}

// Clone returns an independent copy of p.
func (p *Piece) Clone() *Piece {
	return &Piece{
		Type:  p.Type,
		size:  p.size,
		cells: append([]Cell(nil), p.cells...),
	}
}

// each calls fn for every occupied cell with its piece-local coordinates.
func (p *Piece) each(fn func(x, y int, c Cell) bool) {
	for i, c := range p.cells {
		if c == 0 {
			continue
		}
		if !fn(i%p.size, i/p.size, c) {
			return
		}
	}
}
