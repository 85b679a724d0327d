package searcher

import (
	"hexchess/game"
	"hexchess/meta"

	"golang.org/x/exp/slices"
)

// Config selects how FindBestMove searches.
type Config struct {
	Depth      int
	AlphaBeta  bool
	Goroutines int
}

func DefaultConfig() Config {
	return Config{
		Depth:      meta.DEPTH,
		AlphaBeta:  meta.ALPHA_BETA,
		Goroutines: meta.GO_ROUTINES,
	}
}

// FindBestMove returns the best legal move for color, and false when there is none.
func FindBestMove(b *game.Board, color game.Color, config Config) (game.Move, bool) {
	m := NewMinimax(
		WithDepth(config.Depth),
		WithAlphaBeta(config.AlphaBeta),
		WithGoroutines(config.Goroutines),
	)
	decision, _ := m.FindBestMove(b, color)
	if decision == nil {
		return game.Move{}, false
	}
	return decision.Move, true
}

// orderMoves puts captures first and keeps generation order otherwise.
func orderMoves(moves []game.Move) {
	slices.SortStableFunc(moves, func(a, b game.Move) int {
		switch {
		case a.IsCapture() == b.IsCapture():
			return 0
		case a.IsCapture():
			return -1
		default:
			return 1
		}
	})
}
