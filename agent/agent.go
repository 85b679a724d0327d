package agent

import (
	"hexchess/experiments/metrics"
	"hexchess/game"
	"hexchess/meta"
	"hexchess/searcher"

	"github.com/pkg/errors"
)

type Agent interface {
	// FindMove returns the chosen move and the metrics of the search that found it.
	// A nil decision means color has no legal move.
	FindMove(b *game.Board, color game.Color) (*searcher.Decision, metrics.SearchMetric)
}

// New builds the agent named by kind from a metrics.AgentConfig.
func New(config metrics.AgentConfig) (Agent, error) {
	switch config.Kind {
	case meta.AgentMinimax:
		if config.Depth < 1 {
			return nil, errors.Errorf("minimax agent needs a depth of at least 1, got %d", config.Depth)
		}
		return NewMinimaxAgent(searcher.NewMinimax(
			searcher.WithDepth(config.Depth),
			searcher.WithAlphaBeta(config.AlphaBeta),
			searcher.WithGoroutines(config.Goroutines),
			searcher.WithMetrics(),
		)), nil
	case meta.AgentRandom:
		return NewRandomAgent(config.Seed), nil
	}
	return nil, errors.Errorf("unknown agent kind %q", config.Kind)
}
