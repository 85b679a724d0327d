package engine

import (
	"testing"

	"hexchess/agent"
	"hexchess/game"
	"hexchess/searcher"

	"github.com/stretchr/testify/require"
)

func TestRandomGameStops(t *testing.T) {
	b := game.NewStandardBoard()
	e := New(b, agent.NewRandomAgent(1), agent.NewRandomAgent(2), WithMaxTurns(40))

	outcome, gameMetric, moveMetrics := e.Run()

	require.LessOrEqual(t, len(moveMetrics), 40)
	require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
	require.Equal(t, "white", gameMetric.StartingPlayer)
	require.Equal(t, outcome.String(), gameMetric.Winner)
	if outcome == game.NoOutcome {
		require.Len(t, moveMetrics, 40, "An unfinished game uses every turn")
	}
	for i, mm := range moveMetrics {
		require.Equal(t, i+1, mm.Step)
		expected := "white"
		if i%2 == 1 {
			expected = "black"
		}
		require.Equal(t, expected, mm.Player)
	}
}

func TestMinimaxDeliversMate(t *testing.T) {
	b, err := game.LoadFile("../puzzles/mate_in_one.yaml")
	require.NoError(t, err)

	white := agent.NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(1), searcher.WithMetrics()))
	e := New(b, white, agent.NewRandomAgent(1))

	outcome, gameMetric, moveMetrics := e.Run()
	require.Equal(t, game.WhiteWins, outcome)
	require.Equal(t, "white", gameMetric.Winner)
	require.Len(t, moveMetrics, 1)
	require.Equal(t, 51, moveMetrics[0].Branches)
	require.Equal(t, game.Black, e.ToMove)
}

func TestFinishedPosition(t *testing.T) {
	b, err := game.LoadFile("../puzzles/checkmated.csv")
	require.NoError(t, err)

	e := New(b, agent.NewRandomAgent(1), agent.NewRandomAgent(2), WithStartingPlayer(game.Black))
	outcome, gameMetric, moveMetrics := e.Run()
	require.Equal(t, game.WhiteWins, outcome)
	require.Empty(t, moveMetrics)
	require.Equal(t, "black", gameMetric.StartingPlayer)
}

func TestNewPanics(t *testing.T) {
	require.Panics(t, func() { New(game.NewBoard(), nil, agent.NewRandomAgent(1)) })
	require.Panics(t, func() { New(nil, agent.NewRandomAgent(1), agent.NewRandomAgent(2)) })
}
