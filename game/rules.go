package game

// Outcome of a finished game.
type Outcome int

const (
	NoOutcome Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "white"
	case BlackWins:
		return "black"
	case Draw:
		return "remise"
	}
	return ""
}

// Winner returns the winning color, false for a draw or an unfinished game.
func (o Outcome) Winner() (Color, bool) {
	switch o {
	case WhiteWins:
		return White, true
	case BlackWins:
		return Black, true
	}
	return White, false
}

// WinFor is the outcome in which color wins.
func WinFor(color Color) Outcome {
	if color == White {
		return WhiteWins
	}
	return BlackWins
}

// ApplyMove moves the piece and handles pawn bookkeeping. Only moves that are
// kept (commit) mark a pawn as having moved; search lookahead only bumps its counter.
// A pawn landing on its far edge is replaced by a queen.
func (b *Board) ApplyMove(m Move, commit bool) {
	p := m.Piece
	b.put(m.From, nil)
	b.put(m.To, p)

	if p.Kind != Pawn {
		return
	}
	p.Moves++
	if commit {
		p.HasMoved = true
	}
	if IsPromotionCellFor(m.To, p.Color) {
		queen := NewPiece(Queen, p.Color)
		queen.Index = p.Index
		b.put(m.To, queen)
	}
}

// UndoMove reverses ApplyMove. A pawn move ending on the first or last row
// always leaves a fresh pawn on the source cell, whether or not it promoted.
func (b *Board) UndoMove(m Move) {
	p := m.Piece
	b.put(m.From, p)
	b.put(m.To, nil)
	if m.Captured != nil {
		b.put(m.To, m.Captured)
	}

	if p.Kind != Pawn {
		return
	}
	if m.To.Row == 0 || m.To.Row == NumRows-1 {
		pawn := NewPiece(Pawn, p.Color)
		pawn.Index = p.Index
		b.put(m.From, pawn)
	}
	p.Moves--
	if p.Moves == 0 {
		p.HasMoved = false
	}
}

// PseudoLegalMoves collects the pseudo-legal moves of every piece of color.
func (b *Board) PseudoLegalMoves(color Color) []Move {
	var moves []Move
	for _, c := range validCells {
		if p := b.at(c); p != nil && p.Color == color {
			moves = p.appendMoves(moves, c, b)
		}
	}
	return moves
}

// LegalMoves filters the pseudo-legal moves by trying each one and discarding
// those that leave color in check.
func (b *Board) LegalMoves(color Color) []Move {
	pseudo := b.PseudoLegalMoves(color)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if b.leavesInCheck(m, color) {
			continue
		}
		legal = append(legal, m)
	}
	return legal
}

func (b *Board) leavesInCheck(m Move, color Color) bool {
	b.ApplyMove(m, false)
	defer b.UndoMove(m)
	return b.InCheck(color)
}

// InCheck reports whether any opposing piece can move onto color's king.
// A board without that king is never in check.
func (b *Board) InCheck(color Color) bool {
	king, err := b.KingOf(color)
	if err != nil {
		return false
	}
	opponent := color.Opponent()
	for _, c := range validCells {
		if p := b.at(c); p != nil && p.Color == opponent && p.attacks(c, king, b) {
			return true
		}
	}
	return false
}

// IsGameOver checks both sides for checkmate, then color alone for stalemate.
// Only the side about to move can be stalemated.
func (b *Board) IsGameOver(color Color) (bool, Outcome) {
	if b.InCheck(White) && len(b.LegalMoves(White)) == 0 {
		return true, BlackWins
	}
	if b.InCheck(Black) && len(b.LegalMoves(Black)) == 0 {
		return true, WhiteWins
	}
	if len(b.LegalMoves(color)) == 0 {
		return true, Draw
	}
	return false, NoOutcome
}
