package game

import "fmt"

// Move relocates Piece from From to To, capturing Captured if non-nil.
// A move refers to pieces owned by the board it was generated on.
type Move struct {
	Piece    *Piece
	From     Coord
	To       Coord
	Captured *Piece
}

// MoveKey identifies a move by its endpoints.
type MoveKey struct {
	From Coord
	To   Coord
}

func (m Move) Key() MoveKey {
	return MoveKey{From: m.From, To: m.To}
}

// Equal compares endpoints only; capture bookkeeping is ignored.
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To
}

func (m Move) IsCapture() bool {
	return m.Captured != nil
}

func (m Move) String() string {
	if m.Piece == nil {
		return fmt.Sprintf("%s->%s", m.From, m.To)
	}
	if m.Captured != nil {
		return fmt.Sprintf("%s %s->%s x %s", m.Piece, m.From, m.To, m.Captured)
	}
	return fmt.Sprintf("%s %s->%s", m.Piece, m.From, m.To)
}
