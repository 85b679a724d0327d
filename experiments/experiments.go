package experiments

import (
	"hexchess/agent"
	"hexchess/engine"
	"hexchess/experiments/metrics"
	"hexchess/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// MatchResult counts the outcomes of a match from white's point of view.
type MatchResult struct {
	WhiteWins  int
	BlackWins  int
	Draws      int
	Unfinished int
	Dir        string // Where the records were written
}

// RunMatch plays games between white and black from setup and writes
// agent_configs.csv, game_records.csv and move_records.csv under outDir/match.
// Random agents are reseeded for every game so that games differ.
func RunMatch(outDir string, white, black metrics.AgentConfig, games, maxTurns int, setup func() *game.Board) (MatchResult, error) {
	var result MatchResult
	if setup == nil {
		setup = game.NewStandardBoard
	}

	writer, err := metrics.NewWriter(outDir, "match")
	if err != nil {
		return result, errors.Wrap(err, "failed to create experiment writer")
	}
	result.Dir = writer.Dir()

	if err := writer.WriteAgentConfigs([]metrics.AgentConfig{white, black}); err != nil {
		return result, errors.Wrap(err, "failed to store agent configs")
	}
	log.Info().Msg("stored agent configs")

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting match between white=%+v and black=%+v...", white, black)

	for i := 0; i < games; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, games)

		outcome, gameMetric, moveMetrics, err := runGame(white, black, uint64(i), maxTurns, setup())
		if err != nil {
			return result, err
		}
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     white.ID,
			Agent2:     black.ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		switch outcome {
		case game.WhiteWins:
			result.WhiteWins++
		case game.BlackWins:
			result.BlackWins++
		case game.Draw:
			result.Draws++
		default:
			result.Unfinished++
		}
		log.Info().Msgf("completed game %d of %d with result: %q", i+1, games, outcome)
	}

	log.Info().Msgf("completed match: %+v", result)

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return result, errors.Wrap(err, "failed to write game records")
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return result, errors.Wrap(err, "failed to write move records")
	}
	log.Info().Msg("stored move records")
	return result, nil
}

// runGame executes a single game between two agents on b.
func runGame(white, black metrics.AgentConfig, round uint64, maxTurns int, b *game.Board) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	white.Seed += round
	black.Seed += round
	whiteAgent, err := agent.New(white)
	if err != nil {
		return game.NoOutcome, metrics.GameMetric{}, nil, errors.Wrap(err, "white agent")
	}
	blackAgent, err := agent.New(black)
	if err != nil {
		return game.NoOutcome, metrics.GameMetric{}, nil, errors.Wrap(err, "black agent")
	}

	e := engine.New(b, whiteAgent, blackAgent, engine.WithMaxTurns(maxTurns))
	outcome, gameMetric, moveMetrics := e.Run()
	return outcome, gameMetric, moveMetrics, nil
}
