package meta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	config := Default()
	require.NoError(t, config.Validate())
	require.Equal(t, DEPTH, config.Depth)
	require.True(t, config.AlphaBeta)
	require.Equal(t, GO_ROUTINES, config.Goroutines)
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		config, err := LoadConfig("")
		require.NoError(t, err)
		require.Equal(t, Default(), config)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "depth: 2\nalpha_beta: false\nblack: minimax\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		config, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, 2, config.Depth)
		require.False(t, config.AlphaBeta)
		require.Equal(t, AgentMinimax, config.Black)
		require.Equal(t, MAX_TURNS, config.MaxTurns, "Missing keys keep their default")
	})

	t.Run("invalid values are all reported", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "depth: 0\nwhite: human\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := LoadConfig(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "depth must be at least 1")
		require.Contains(t, err.Error(), `unknown agent "human"`)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}
