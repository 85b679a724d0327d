package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"hexchess/game"
	"hexchess/meta"

	"github.com/stretchr/testify/require"
)

func flagSet() *flag.FlagSet {
	flags := newFlagSet()
	flags.SetOutput(io.Discard)
	return flags
}

func TestApplyFlags(t *testing.T) {
	t.Run("only given flags override", func(t *testing.T) {
		flags := flagSet()
		require.NoError(t, flags.Parse([]string{"-depth", "2", "-alpha-beta=false"}))

		config := meta.Default()
		config.Black = meta.AgentMinimax
		require.NoError(t, applyFlags(&config, flags))
		require.Equal(t, 2, config.Depth)
		require.False(t, config.AlphaBeta)
		require.Equal(t, meta.AgentMinimax, config.Black, "Unset flags keep the config value")
	})

	t.Run("agent configs", func(t *testing.T) {
		flags := flagSet()
		require.NoError(t, flags.Parse([]string{"-seed", "9"}))
		config := meta.Default()
		require.NoError(t, applyFlags(&config, flags))

		white, black := agentConfigs(config)
		require.Equal(t, meta.AgentMinimax, white.Kind)
		require.Equal(t, meta.AgentRandom, black.Kind)
		require.Equal(t, uint64(9), white.Seed)
		require.Equal(t, uint64(10), black.Seed)
		require.NotEqual(t, white.ID, black.ID)
	})
}

func TestSetup(t *testing.T) {
	config := meta.Default()
	newBoard, err := setup(config)
	require.NoError(t, err)
	require.Len(t, newBoard().PiecesOf(game.White), 18)

	config.Puzzle = "puzzles/mate_in_one.yaml"
	newBoard, err = setup(config)
	require.NoError(t, err)
	first := newBoard()
	require.Len(t, first.PiecesOf(game.White), 3)

	// Every game starts from an untouched copy of the puzzle
	moves := first.LegalMoves(game.White)
	require.NotEmpty(t, moves)
	first.ApplyMove(moves[0], true)
	second := newBoard()
	require.NotSame(t, first, second)
	p, err := second.PieceAt(moves[0].From)
	require.NoError(t, err)
	require.NotNil(t, p, "A fresh board still has the piece that moved")

	config.Puzzle = "puzzles/missing.yaml"
	_, err = setup(config)
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	t.Run("pruning experiment", func(t *testing.T) {
		out := t.TempDir()
		err := run([]string{
			"-experiment", "pruning",
			"-puzzles", "puzzles/mate_in_one.yaml,puzzles/checkmated.csv:black",
			"-depth", "1", "-goroutines", "2", "-out", out, "-log-level", "warn",
		})
		require.NoError(t, err)
		runs, err := os.ReadDir(filepath.Join(out, "pruning"))
		require.NoError(t, err)
		require.Len(t, runs, 1)
	})

	t.Run("errors are returned", func(t *testing.T) {
		cases := map[string][]string{
			"unknown experiment": {"-experiment", "tournament", "-log-level", "warn"},
			"unknown profile":    {"-profile", "gpu", "-log-level", "warn"},
			"bad log level":      {"-log-level", "loud"},
			"bad puzzle side":    {"-experiment", "pruning", "-puzzles", "puzzles/mate_in_one.yaml:red", "-out", t.TempDir(), "-log-level", "warn"},
			"invalid config":     {"-depth", "0", "-log-level", "warn"},
			"unknown flag":       {"-fast"},
		}
		for name, args := range cases {
			t.Run(name, func(t *testing.T) {
				require.Error(t, run(args))
			})
		}
	})

	t.Run("help is not an error", func(t *testing.T) {
		require.NoError(t, run([]string{"-h"}))
	})
}
