package agent

import (
	"hexchess/experiments/metrics"
	"hexchess/game"
	"hexchess/searcher"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent that plays the searcher's best move.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindMove(b *game.Board, color game.Color) (*searcher.Decision, metrics.SearchMetric) {
	return a.minimax.FindBestMove(b, color)
}
