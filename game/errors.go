package game

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned for coordinates outside the 21x11 envelope.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrEmptyCellAccess is returned when reading or writing a position that is
	// inside the envelope but not part of the hexagon.
	ErrEmptyCellAccess = errors.New("no cell at coordinate")
	// ErrUnknownPieceKind is returned by the puzzle loader for unknown kinds.
	ErrUnknownPieceKind = errors.New("unknown piece kind")
	ErrUnknownColor     = errors.New("unknown color")
	ErrKingNotFound     = errors.New("king not found")
)
