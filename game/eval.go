package game

import "math"

// Evaluator scores a position from white's perspective: positive favours white.
// toMove is the side whose turn it is.
type Evaluator func(b *Board, toMove Color) float64

// Evaluate returns +Inf if white has won, -Inf if black has won, 0 for a draw and
// the material balance otherwise.
func Evaluate(b *Board, toMove Color) float64 {
	if over, outcome := b.IsGameOver(toMove); over {
		switch outcome {
		case WhiteWins:
			return math.Inf(1)
		case BlackWins:
			return math.Inf(-1)
		default:
			return 0
		}
	}
	return Material(b)
}

// Material sums the signed value of every piece on the board.
func Material(b *Board) float64 {
	score := 0.0
	for _, c := range validCells {
		if p := b.at(c); p != nil {
			score += p.Value()
		}
	}
	return score
}
