package engine

import (
	"time"

	"hexchess/agent"
	"hexchess/experiments/metrics"
	"hexchess/game"
	"hexchess/meta"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Engine referees a game between two agents on a single board.
type Engine struct {
	Board    *game.Board
	Agents   [2]agent.Agent // Indexed by game.Color
	ToMove   game.Color
	MaxTurns int
}

func WithMaxTurns(maxTurns int) Option {
	return func(e *Engine) {
		if maxTurns > 0 {
			e.MaxTurns = maxTurns
		}
	}
}

func WithStartingPlayer(color game.Color) Option {
	return func(e *Engine) {
		e.ToMove = color
	}
}

func New(b *game.Board, white, black agent.Agent, options ...Option) *Engine {
	if b == nil {
		panic("need a board")
	}
	if white == nil || black == nil {
		panic("need two agents")
	}
	e := &Engine{
		Board:    b,
		Agents:   [2]agent.Agent{white, black},
		ToMove:   game.White,
		MaxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game is over or MaxTurns moves were played.
// An unfinished game reports game.NoOutcome.
func (e *Engine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.ToMove.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.ToMove)

	_, outcome := e.Board.IsGameOver(e.ToMove)
	for turn := 1; outcome == game.NoOutcome && turn <= e.MaxTurns; turn++ {
		player := e.ToMove
		decision, searchMetric := e.Agents[player].FindMove(e.Board, player)
		if decision == nil {
			// IsGameOver already reported every position without legal moves
			log.Warn().Msgf("%s found no move on turn %d", player, turn)
			break
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player.String(),
			Move:         decision.Move.String(),
			Value:        decision.Value,
			SearchMetric: searchMetric,
		})
		log.Debug().
			Int("turn", turn).
			Str("player", player.String()).
			Str("move", decision.Move.String()).
			Float64("value", decision.Value).
			Dur("duration", searchMetric.Duration).
			Msg("move played")

		e.Board.ApplyMove(decision.Move, true)
		e.ToMove = player.Opponent()
		_, outcome = e.Board.IsGameOver(e.ToMove)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Winner = outcome.String()

	if outcome == game.NoOutcome {
		log.Info().Msgf("stopped after %d moves without a result", gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("game over after %d moves: %s", gameMetric.TotalMoves, outcome)
	}
	return outcome, gameMetric, moveMetrics
}
