package agent

import (
	"testing"

	"hexchess/experiments/metrics"
	"hexchess/game"
	"hexchess/meta"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a, err := New(metrics.AgentConfig{Kind: meta.AgentMinimax, Depth: 1, AlphaBeta: true, Goroutines: 2})
	require.NoError(t, err)
	require.IsType(t, minimaxAgent{}, a)

	a, err = New(metrics.AgentConfig{Kind: meta.AgentRandom, Seed: 7})
	require.NoError(t, err)
	require.IsType(t, &randomAgent{}, a)

	_, err = New(metrics.AgentConfig{Kind: "human"})
	require.Error(t, err)
}

func TestMinimaxAgentFindsMate(t *testing.T) {
	b, err := game.LoadFile("../puzzles/mate_in_one.yaml")
	require.NoError(t, err)

	a, err := New(metrics.AgentConfig{Kind: meta.AgentMinimax, Depth: 2, AlphaBeta: true, Goroutines: 4})
	require.NoError(t, err)

	decision, metric := a.FindMove(b, game.White)
	require.NotNil(t, decision)
	require.Equal(t, game.Coord{Row: 6, Col: 1}, decision.Move.To)
	require.Equal(t, 2, metric.Depth)
	require.Positive(t, metric.Nodes)

	b.ApplyMove(decision.Move, true)
	over, outcome := b.IsGameOver(game.Black)
	require.True(t, over)
	require.Equal(t, game.WhiteWins, outcome)
}

func TestRandomAgent(t *testing.T) {
	t.Run("plays legal moves", func(t *testing.T) {
		b := game.NewStandardBoard()
		a := NewRandomAgent(1)
		legal := b.LegalMoves(game.White)

		for i := 0; i < 20; i++ {
			decision, metric := a.FindMove(b, game.White)
			require.NotNil(t, decision)
			require.Equal(t, len(legal), metric.Branches)
			found := false
			for _, m := range legal {
				if m.Equal(decision.Move) {
					found = true
				}
			}
			require.True(t, found, "%s should be legal", decision.Move)
		}
	})

	t.Run("same seed same game", func(t *testing.T) {
		play := func() []game.MoveKey {
			b := game.NewStandardBoard()
			a := NewRandomAgent(42)
			color := game.White
			var keys []game.MoveKey
			for i := 0; i < 10; i++ {
				decision, _ := a.FindMove(b, color)
				require.NotNil(t, decision)
				keys = append(keys, decision.Move.Key())
				b.ApplyMove(decision.Move, true)
				color = color.Opponent()
			}
			return keys
		}
		require.Equal(t, play(), play())
	})

	t.Run("no legal moves", func(t *testing.T) {
		b, err := game.LoadFile("../puzzles/checkmated.csv")
		require.NoError(t, err)
		decision, metric := NewRandomAgent(3).FindMove(b, game.Black)
		require.Nil(t, decision)
		require.Zero(t, metric.Branches)
	})
}
