package game

import (
	"strings"

	"github.com/pkg/errors"
)

type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// ParseColor accepts "white" or "black", case-insensitively.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	}
	return White, errors.Wrapf(ErrUnknownColor, "%q", s)
}

type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

func (k Kind) String() string {
	return kindNames[k]
}

// ParseKind maps a piece name as written in puzzle files to its kind.
func ParseKind(s string) (Kind, error) {
	name := strings.TrimSpace(s)
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), nil
		}
	}
	return Pawn, errors.Wrapf(ErrUnknownPieceKind, "%q", s)
}

// Material worth of each kind. The king's value dwarfs everything else so that
// it is never traded materially; both kings are always on the board and cancel.
var kindValues = [...]float64{
	Pawn:   10,
	Knight: 30,
	Bishop: 30,
	Rook:   50,
	Queen:  90,
	King:   1000,
}

type direction struct {
	dr, dc int
}

var (
	// Edge-adjacent neighbours
	orthogonal = []direction{{-1, -1}, {2, 0}, {1, 1}, {-1, 1}, {-2, 0}, {1, -1}}
	// Vertex-adjacent cells
	diagonal = []direction{{-3, -1}, {-3, 1}, {3, -1}, {3, 1}, {0, 2}, {0, -2}}
	both     = append(append([]direction{}, orthogonal...), diagonal...)

	knightJumps = []direction{
		{-5, -1}, {-4, -2}, {-5, 1}, {-4, 2},
		{-1, 3}, {1, 3}, {1, -3}, {-1, -3},
		{5, -1}, {4, -2}, {5, 1}, {4, 2},
	}
)

// NoIndex marks a piece without an action-encoding index.
const NoIndex = -1

// Piece is a single chessman. Its position is implied by the cell holding it.
type Piece struct {
	Kind  Kind
	Color Color
	// Index is an optional stable identifier used by action encodings.
	Index int
	// HasMoved and Moves are only meaningful for pawns.
	HasMoved bool
	Moves    int
}

func NewPiece(kind Kind, color Color) *Piece {
	return &Piece{Kind: kind, Color: color, Index: NoIndex}
}

// Value is the signed material value: positive for white, negative for black.
func (p *Piece) Value() float64 {
	if p.Color == White {
		return kindValues[p.Kind]
	}
	return -kindValues[p.Kind]
}

// Symbol is the one-letter name, upper case for black.
func (p *Piece) Symbol() string {
	s := "pnbrqk"[p.Kind : p.Kind+1]
	if p.Color == Black {
		return strings.ToUpper(s)
	}
	return s
}

func (p *Piece) String() string {
	return p.Color.String() + " " + p.Kind.String()
}

// forward is the pawn's one-step direction.
func (p *Piece) forward() direction {
	if p.Color == White {
		return direction{-2, 0}
	}
	return direction{2, 0}
}

func (p *Piece) captureDirections() [2]direction {
	if p.Color == White {
		return [2]direction{{-1, -1}, {-1, 1}}
	}
	return [2]direction{{1, 1}, {1, -1}}
}

// PseudoLegalMoves lists the moves allowed by the piece's movement pattern from
// the given cell, ignoring whether they expose its own king.
func (p *Piece) PseudoLegalMoves(from Coord, b *Board) []Move {
	return p.appendMoves(nil, from, b)
}

func (p *Piece) appendMoves(moves []Move, from Coord, b *Board) []Move {
	switch p.Kind {
	case Pawn:
		return p.appendPawnMoves(moves, from, b)
	case Knight:
		return p.appendSteps(moves, from, b, knightJumps)
	case Bishop:
		return p.appendSlides(moves, from, b, diagonal)
	case Rook:
		return p.appendSlides(moves, from, b, orthogonal)
	case Queen:
		return p.appendSlides(moves, from, b, both)
	case King:
		return p.appendSteps(moves, from, b, both)
	}
	return moves
}

func (p *Piece) appendPawnMoves(moves []Move, from Coord, b *Board) []Move {
	fwd := p.forward()
	one := from.add(fwd)
	if occupant, ok := b.occupant(one); ok && occupant == nil {
		moves = append(moves, Move{Piece: p, From: from, To: one})
		if !p.HasMoved {
			two := one.add(fwd)
			if occupant, ok := b.occupant(two); ok && occupant == nil {
				moves = append(moves, Move{Piece: p, From: from, To: two})
			}
		}
	}
	for _, d := range p.captureDirections() {
		target := from.add(d)
		if occupant, ok := b.occupant(target); ok && occupant != nil && occupant.Color != p.Color {
			moves = append(moves, Move{Piece: p, From: from, To: target, Captured: occupant})
		}
	}
	return moves
}

func (p *Piece) appendSteps(moves []Move, from Coord, b *Board, dirs []direction) []Move {
	for _, d := range dirs {
		target := from.add(d)
		occupant, ok := b.occupant(target)
		if !ok {
			continue
		}
		if occupant == nil || occupant.Color != p.Color {
			moves = append(moves, Move{Piece: p, From: from, To: target, Captured: occupant})
		}
	}
	return moves
}

func (p *Piece) appendSlides(moves []Move, from Coord, b *Board, dirs []direction) []Move {
	for _, d := range dirs {
		target := from.add(d)
		for {
			occupant, ok := b.occupant(target)
			if !ok {
				break
			}
			if occupant != nil {
				if occupant.Color != p.Color {
					moves = append(moves, Move{Piece: p, From: from, To: target, Captured: occupant})
				}
				break
			}
			moves = append(moves, Move{Piece: p, From: from, To: target})
			target = target.add(d)
		}
	}
	return moves
}

// attacks reports whether one of the piece's pseudo-legal moves from `from`
// lands on target, assuming target holds an opposing piece.
func (p *Piece) attacks(from, target Coord, b *Board) bool {
	switch p.Kind {
	case Pawn:
		for _, d := range p.captureDirections() {
			if from.add(d) == target {
				return true
			}
		}
		return false
	case Knight:
		return steps(from, target, knightJumps)
	case King:
		return steps(from, target, both)
	case Bishop:
		return slides(from, target, b, diagonal)
	case Rook:
		return slides(from, target, b, orthogonal)
	case Queen:
		return slides(from, target, b, both)
	}
	return false
}

func steps(from, target Coord, dirs []direction) bool {
	for _, d := range dirs {
		if from.add(d) == target {
			return true
		}
	}
	return false
}

func slides(from, target Coord, b *Board, dirs []direction) bool {
	for _, d := range dirs {
		c := from.add(d)
		for {
			occupant, ok := b.occupant(c)
			if !ok {
				break
			}
			if c == target {
				return true
			}
			if occupant != nil {
				break
			}
			c = c.add(d)
		}
	}
	return false
}
