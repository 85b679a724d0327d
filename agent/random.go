package agent

import (
	"time"

	"hexchess/experiments/metrics"
	"hexchess/game"
	"hexchess/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent picking uniformly among legal moves. It is not
// safe for concurrent use.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(b *game.Board, color game.Color) (*searcher.Decision, metrics.SearchMetric) {
	start := time.Now()
	moves := b.LegalMoves(color)
	metric := metrics.SearchMetric{Branches: len(moves)}
	if len(moves) == 0 {
		metric.Duration = time.Since(start)
		return nil, metric
	}

	move := moves[a.rng.Intn(len(moves))]
	metric.Duration = time.Since(start)
	return &searcher.Decision{Move: move, Player: color, Value: game.Material(b)}, metric
}
