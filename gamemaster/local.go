package gamemaster

import (
	"hexchess/game"
	"hexchess/utils"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// WinReward is paid to the player whose move ends the game in its favour.
const WinReward = 100.0

// NumActions is the size of the action space: one action per (from, to) pair of cells.
const NumActions = game.NumCells * game.NumCells

var (
	ErrGameOver    = errors.New("game is over")
	ErrIllegalMove = errors.New("illegal move")
)

// Observation holds one code per valid cell in row-major order: 0 when empty,
// 1..6 for a white pawn..king and the negated code for black.
type Observation [game.NumCells]int

// Setup builds the board a new episode starts from.
type Setup func() *game.Board

// Environment is a single-board referee for an external learner: it keeps the
// side to move, validates moves and reports rewards.
type Environment struct {
	setup    Setup
	board    *game.Board
	player   game.Color
	outcome  game.Outcome
	gameOver bool
	legal    []game.Move
}

func NewEnvironment(setup Setup) *Environment {
	if setup == nil {
		setup = game.NewStandardBoard
	}
	e := &Environment{setup: setup}
	e.Reset()
	return e
}

// Reset starts a new episode with white to move.
func (e *Environment) Reset() Observation {
	e.board = e.setup()
	e.board.AssignIndices()
	e.player = game.White
	e.gameOver, e.outcome = e.board.IsGameOver(e.player)
	e.legal = nil
	return e.Observe()
}

func (e *Environment) Player() game.Color {
	return e.player
}

func (e *Environment) Outcome() game.Outcome {
	return e.outcome
}

func (e *Environment) GameOver() bool {
	return e.gameOver
}

// LegalMoves lists the moves of the side to move. The result is shared with the
// environment until the next move is played.
func (e *Environment) LegalMoves() []game.Move {
	if e.gameOver {
		return nil
	}
	if e.legal == nil {
		e.legal = e.board.LegalMoves(e.player)
	}
	return e.legal
}

// Play commits move for the side to move. Only the endpoints of move are used.
func (e *Environment) Play(move game.Move) error {
	_, err := e.play(move)
	return err
}

// Step plays move and reports the new observation, the mover's reward and whether
// the episode has ended. A nil move ends the episode. A move that cannot be
// played also ends it, without reward.
func (e *Environment) Step(move *game.Move) (Observation, float64, bool) {
	if move == nil {
		e.gameOver = true
		return e.Observe(), 0, true
	}

	mover := e.player
	outcome, err := e.play(*move)
	if err != nil {
		log.Error().Err(err).Str("move", move.String()).Msg("step rejected")
		e.gameOver = true
		return e.Observe(), 0, true
	}

	reward := 0.0
	if outcome == game.WinFor(mover) {
		reward = WinReward
	}
	return e.Observe(), reward, e.gameOver
}

func (e *Environment) play(move game.Move) (game.Outcome, error) {
	if e.gameOver {
		return e.outcome, ErrGameOver
	}

	legal := e.LegalMoves()
	keys := utils.Map(legal, game.Move.Key)
	i := utils.FindIndex(keys, move.Key())
	if i < 0 {
		return game.NoOutcome, errors.Wrapf(ErrIllegalMove, "%s for %s", move, e.player)
	}

	e.board.ApplyMove(legal[i], true)
	e.legal = nil
	e.player = e.player.Opponent()
	e.gameOver, e.outcome = e.board.IsGameOver(e.player)
	return e.outcome, nil
}

// Observe encodes the current board.
func (e *Environment) Observe() Observation {
	obs, err := encode(e.board)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode board")
	}
	return obs
}

func encode(b *game.Board) (Observation, error) {
	var obs Observation
	for _, color := range []game.Color{game.White, game.Black} {
		for _, c := range b.PiecesOf(color) {
			p, err := b.PieceAt(c)
			if err != nil {
				return obs, errors.Wrap(err, "failed to observe piece")
			}
			code := int(p.Kind) + 1
			if color == game.Black {
				code = -code
			}
			obs[game.CellIndex(c)] = code
		}
	}
	return obs, nil
}

// ActionID maps a move to its index in the action space.
func ActionID(move game.Move) int {
	return game.CellIndex(move.From)*game.NumCells + game.CellIndex(move.To)
}

// MoveFromAction maps an action index back to the endpoints of a move. The
// pieces are left unset; Play resolves them.
func MoveFromAction(id int) (game.Move, error) {
	if id < 0 || id >= NumActions {
		return game.Move{}, errors.Wrapf(game.ErrOutOfRange, "action %d", id)
	}
	from, ok := game.CellAtIndex(id / game.NumCells)
	if !ok {
		return game.Move{}, errors.Wrapf(game.ErrOutOfRange, "action %d origin", id)
	}
	to, ok := game.CellAtIndex(id % game.NumCells)
	if !ok {
		return game.Move{}, errors.Wrapf(game.ErrOutOfRange, "action %d target", id)
	}
	return game.Move{From: from, To: to}, nil
}
