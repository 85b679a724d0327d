package gamemaster

import (
	"testing"

	"hexchess/game"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func puzzle(t *testing.T, name string) Setup {
	return func() *game.Board {
		b, err := game.LoadFile("../puzzles/" + name)
		require.NoError(t, err)
		return b
	}
}

func TestEnvironmentReset(t *testing.T) {
	env := NewEnvironment(nil)
	obs := env.Reset()

	require.Equal(t, game.White, env.Player())
	require.False(t, env.GameOver())
	require.Len(t, env.LegalMoves(), 51)

	pieces, sum := 0, 0
	for _, code := range obs {
		if code != 0 {
			pieces++
		}
		sum += code
	}
	require.Equal(t, 36, pieces)
	require.Zero(t, sum, "Both sides have the same pieces")
	require.Equal(t, 6, obs[game.CellIndex(game.Coord{Row: 19, Col: 6})], "White king")
	require.Equal(t, -6, obs[game.CellIndex(game.Coord{Row: 1, Col: 6})], "Black king")
}

func TestEnvironmentPlay(t *testing.T) {
	t.Run("valid move switches player", func(t *testing.T) {
		env := NewEnvironment(nil)
		move := env.LegalMoves()[0]
		// Only the endpoints matter
		require.NoError(t, env.Play(game.Move{From: move.From, To: move.To}))
		require.Equal(t, game.Black, env.Player())

		obs := env.Observe()
		require.Zero(t, obs[game.CellIndex(move.From)])
		require.Equal(t, int(move.Piece.Kind)+1, obs[game.CellIndex(move.To)])
	})

	t.Run("illegal move is rejected", func(t *testing.T) {
		env := NewEnvironment(nil)
		err := env.Play(game.Move{From: game.Coord{Row: 19, Col: 6}, To: game.Coord{Row: 10, Col: 5}})
		require.True(t, errors.Is(err, ErrIllegalMove))
		require.Equal(t, game.White, env.Player(), "A rejected move does not pass the turn")

		// Moving the opponent's piece is illegal too
		black := NewEnvironment(nil).board.LegalMoves(game.Black)[0]
		require.True(t, errors.Is(env.Play(black), ErrIllegalMove))
	})
}

func TestEnvironmentStep(t *testing.T) {
	t.Run("winning move pays the mover", func(t *testing.T) {
		env := NewEnvironment(puzzle(t, "mate_in_one.yaml"))
		mate := game.Move{From: game.Coord{Row: 3, Col: 4}, To: game.Coord{Row: 6, Col: 1}}

		_, reward, done := env.Step(&mate)
		require.Equal(t, WinReward, reward)
		require.True(t, done)
		require.Equal(t, game.WhiteWins, env.Outcome())
		require.Empty(t, env.LegalMoves())
		require.True(t, errors.Is(env.Play(mate), ErrGameOver))
	})

	t.Run("quiet move pays nothing", func(t *testing.T) {
		env := NewEnvironment(puzzle(t, "mate_in_one.yaml"))
		quiet := game.Move{From: game.Coord{Row: 15, Col: 10}, To: game.Coord{Row: 13, Col: 10}}

		_, reward, done := env.Step(&quiet)
		require.Zero(t, reward)
		require.False(t, done)
		require.Equal(t, game.Black, env.Player())
	})

	t.Run("nil move ends the episode", func(t *testing.T) {
		env := NewEnvironment(nil)
		obs, reward, done := env.Step(nil)
		require.True(t, done)
		require.Zero(t, reward)
		require.Equal(t, env.Reset(), obs)
	})

	t.Run("illegal move ends the episode", func(t *testing.T) {
		env := NewEnvironment(nil)
		bad := game.Move{From: game.Coord{Row: 0, Col: 5}, To: game.Coord{Row: 10, Col: 5}}
		_, reward, done := env.Step(&bad)
		require.True(t, done)
		require.Zero(t, reward)
	})

	t.Run("finished position", func(t *testing.T) {
		env := NewEnvironment(puzzle(t, "checkmated.csv"))
		require.True(t, env.GameOver(), "Mate is detected whoever is to move")
		require.Equal(t, game.WhiteWins, env.Outcome())
		require.Empty(t, env.LegalMoves())
	})
}

func TestEncode(t *testing.T) {
	b, err := game.LoadFile("../puzzles/mate_in_one.yaml")
	require.NoError(t, err)

	obs, err := encode(b)
	require.NoError(t, err)
	for i, code := range obs {
		c, ok := game.CellAtIndex(i)
		require.True(t, ok)
		p, err := b.PieceAt(c)
		require.NoError(t, err)
		if p == nil {
			require.Zero(t, code, "Empty cell %s", c)
			continue
		}
		want := int(p.Kind) + 1
		if p.Color == game.Black {
			want = -want
		}
		require.Equal(t, want, code, "Piece on %s", c)
	}
	require.Equal(t, obs, NewEnvironment(puzzle(t, "mate_in_one.yaml")).Observe())
}

func TestActions(t *testing.T) {
	env := NewEnvironment(nil)
	seen := map[int]bool{}
	for _, m := range env.LegalMoves() {
		id := ActionID(m)
		require.GreaterOrEqual(t, id, 0)
		require.Less(t, id, NumActions)
		require.False(t, seen[id])
		seen[id] = true

		back, err := MoveFromAction(id)
		require.NoError(t, err)
		require.True(t, back.Equal(m))
	}

	_, err := MoveFromAction(NumActions)
	require.True(t, errors.Is(err, game.ErrOutOfRange))
	_, err = MoveFromAction(-1)
	require.Error(t, err)
}
