package game

type placement struct {
	kind Kind
	row  int
	col  int
}

// Black's start, top of the board. White mirrors it vertically (row -> 20-row).
var standardSetup = []placement{
	{Bishop, 0, 5},
	{Queen, 1, 4},
	{King, 1, 6},
	{Knight, 2, 3},
	{Bishop, 2, 5},
	{Knight, 2, 7},
	{Rook, 3, 2},
	{Rook, 3, 8},
	{Pawn, 4, 1},
	{Bishop, 4, 5},
	{Pawn, 4, 9},
	{Pawn, 5, 2},
	{Pawn, 5, 8},
	{Pawn, 6, 3},
	{Pawn, 6, 7},
	{Pawn, 7, 4},
	{Pawn, 7, 6},
	{Pawn, 8, 5},
}

// NewStandardBoard returns the 18-against-18 starting position, white at the
// bottom (high rows) moving up.
func NewStandardBoard() *Board {
	b := NewBoard()
	for _, s := range standardSetup {
		b.put(Coord{Row: s.row, Col: s.col}, NewPiece(s.kind, Black))
		b.put(Coord{Row: NumRows - 1 - s.row, Col: s.col}, NewPiece(s.kind, White))
	}
	return b
}
