package engine

import (
	"hexchess/experiments/metrics"
	"hexchess/game"
)

type Runner interface {
	// Run plays until the game is over or the turn limit is reached
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

var _ Runner = (*Engine)(nil)
