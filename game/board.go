package game

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	NumRows = 21
	NumCols = 11
	// NumCells is the number of valid cells on the hexagon
	NumCells = 91

	centerCol = NumCols / 2
)

// Coord identifies a cell in the doubled-row layout: neighbouring cells in the
// same column are two rows apart, cells in adjacent columns are one row apart.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func (c Coord) add(d direction) Coord {
	return Coord{Row: c.Row + d.dr, Col: c.Col + d.dc}
}

// InBounds reports whether the coordinate lies within the 21x11 envelope.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < NumRows && c.Col >= 0 && c.Col < NumCols
}

// Cell is a single hexagon of the board.
type Cell struct {
	Coord
	Piece *Piece
}

// Static geometry, computed once
var (
	validCells     []Coord
	validTable     [NumRows][NumCols]bool
	cellIndex      [NumRows][NumCols]int
	promotionTable [NumRows][NumCols]bool
)

func init() {
	for row := 0; row < NumRows; row++ {
		for col := 0; col < NumCols; col++ {
			cellIndex[row][col] = -1
			d := abs(col - centerCol)
			if row < d || row > NumRows-1-d || (row-d)%2 != 0 {
				continue
			}
			validTable[row][col] = true
			cellIndex[row][col] = len(validCells)
			validCells = append(validCells, Coord{Row: row, Col: col})
			// Far edges of every column
			if row == d || row == NumRows-1-d {
				promotionTable[row][col] = true
			}
		}
	}
	if len(validCells) != NumCells {
		panic(fmt.Sprintf("hex layout has %d cells, want %d", len(validCells), NumCells))
	}
}

// ValidCells returns the coordinates of the hexagon in row-major order.
func ValidCells() []Coord {
	cells := make([]Coord, len(validCells))
	copy(cells, validCells)
	return cells
}

// IsValid reports whether c is one of the hexagon's cells.
func IsValid(c Coord) bool {
	return c.InBounds() && validTable[c.Row][c.Col]
}

// CellIndex returns the row-major position of c among the valid cells, or -1.
func CellIndex(c Coord) int {
	if !c.InBounds() {
		return -1
	}
	return cellIndex[c.Row][c.Col]
}

// CellAtIndex is the inverse of CellIndex.
func CellAtIndex(i int) (Coord, bool) {
	if i < 0 || i >= len(validCells) {
		return Coord{}, false
	}
	return validCells[i], true
}

// IsPromotionCell reports whether c is a promotion cell for either side.
func IsPromotionCell(c Coord) bool {
	return c.InBounds() && promotionTable[c.Row][c.Col]
}

// IsPromotionCellFor reports whether a pawn of color arriving on c is promoted:
// white promotes on the top edge of a column, black on the bottom edge.
func IsPromotionCellFor(c Coord, color Color) bool {
	if !IsPromotionCell(c) {
		return false
	}
	d := abs(c.Col - centerCol)
	if color == White {
		return c.Row == d
	}
	return c.Row == NumRows-1-d
}

// PromotionCells returns the far-edge cells of both sides.
func PromotionCells() []Coord {
	var cells []Coord
	for _, c := range validCells {
		if promotionTable[c.Row][c.Col] {
			cells = append(cells, c)
		}
	}
	return cells
}

// Board owns the grid of cells and, through them, every piece in play.
type Board struct {
	cells [NumRows][NumCols]*Cell
}

// NewBoard returns a board with every cell empty.
func NewBoard() *Board {
	b := &Board{}
	for _, c := range validCells {
		b.cells[c.Row][c.Col] = &Cell{Coord: c}
	}
	return b
}

// Clone returns a deep copy of the board. Pieces are copied too, so moves
// generated on the original must be rebound before use on the copy.
func (b *Board) Clone() *Board {
	clone := &Board{}
	for _, c := range validCells {
		cell := b.cells[c.Row][c.Col]
		copied := &Cell{Coord: c}
		if cell.Piece != nil {
			p := *cell.Piece
			copied.Piece = &p
		}
		clone.cells[c.Row][c.Col] = copied
	}
	return clone
}

// Rebind resolves a move's pieces against this board by coordinates.
func (b *Board) Rebind(m Move) Move {
	return Move{
		Piece:    b.at(m.From),
		From:     m.From,
		To:       m.To,
		Captured: b.at(m.To),
	}
}

// CellAt returns the cell at (row, col). A position inside the envelope that is
// not part of the hexagon yields a nil cell and no error.
func (b *Board) CellAt(row, col int) (*Cell, error) {
	c := Coord{Row: row, Col: col}
	if !c.InBounds() {
		return nil, errors.Wrapf(ErrOutOfRange, "cell %s", c)
	}
	return b.cells[row][col], nil
}

// PieceAt returns the piece on c, nil if the cell is empty.
func (b *Board) PieceAt(c Coord) (*Piece, error) {
	cell, err := b.validCell(c)
	if err != nil {
		return nil, err
	}
	return cell.Piece, nil
}

// SetPiece places p on c, replacing any occupant. A nil piece clears the cell.
func (b *Board) SetPiece(c Coord, p *Piece) error {
	cell, err := b.validCell(c)
	if err != nil {
		return err
	}
	cell.Piece = p
	return nil
}

func (b *Board) validCell(c Coord) (*Cell, error) {
	if !c.InBounds() {
		return nil, errors.Wrapf(ErrOutOfRange, "cell %s", c)
	}
	cell := b.cells[c.Row][c.Col]
	if cell == nil {
		return nil, errors.Wrapf(ErrEmptyCellAccess, "cell %s", c)
	}
	return cell, nil
}

// at and put skip validation; callers guarantee c is a valid cell.
func (b *Board) at(c Coord) *Piece {
	return b.cells[c.Row][c.Col].Piece
}

func (b *Board) put(c Coord, p *Piece) {
	b.cells[c.Row][c.Col].Piece = p
}

// occupant returns the piece on c and whether c is a board cell at all.
func (b *Board) occupant(c Coord) (*Piece, bool) {
	if !c.InBounds() {
		return nil, false
	}
	cell := b.cells[c.Row][c.Col]
	if cell == nil {
		return nil, false
	}
	return cell.Piece, true
}

// PiecesOf returns the coordinates of every piece of the given color, row-major.
func (b *Board) PiecesOf(color Color) []Coord {
	var coords []Coord
	for _, c := range validCells {
		if p := b.at(c); p != nil && p.Color == color {
			coords = append(coords, c)
		}
	}
	return coords
}

// KingOf returns the coordinate of color's king.
func (b *Board) KingOf(color Color) (Coord, error) {
	for _, c := range validCells {
		if p := b.at(c); p != nil && p.Color == color && p.Kind == King {
			return c, nil
		}
	}
	return Coord{}, errors.Wrapf(ErrKingNotFound, "%s", color)
}

// AssignIndices numbers every piece on the board in row-major order.
func (b *Board) AssignIndices() {
	i := 0
	for _, c := range validCells {
		if p := b.at(c); p != nil {
			p.Index = i
			i++
		}
	}
}

// SwapColors flips the color of every piece in place.
func (b *Board) SwapColors() {
	for _, c := range validCells {
		if p := b.at(c); p != nil {
			p.Color = p.Color.Opponent()
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
