package searcher

import (
	"math"
	"sync"

	"hexchess/experiments/metrics"
	"hexchess/game"
	"hexchess/meta"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

type Minimax struct {
	depth      int
	alphaBeta  bool
	goroutines int
	evaluate   game.Evaluator
	metrics    metrics.Collector
}

// Branch is one root candidate and the value the search gave it.
type Branch struct {
	Move  game.Move
	Value float64
}

// Decision is the outcome of a root search. Move refers to pieces of the board
// that was searched.
type Decision struct {
	Move     game.Move
	Value    float64
	Player   game.Color
	Branches []Branch
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		m.depth = depth
	}
}

func WithAlphaBeta(enabled bool) Option {
	return func(m *Minimax) {
		m.alphaBeta = enabled
	}
}

func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluator) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      meta.DEPTH,
		alphaBeta:  meta.ALPHA_BETA,
		goroutines: 1,
		evaluate:   game.Evaluate,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.depth < 1 {
		panic("Search depth must be at least 1")
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// FindBestMove searches every legal move of color and returns the best one,
// or nil when color has no legal move. Each root candidate is searched with its
// own full window, so ties go to the first candidate in generation order.
// The board is left as it was found.
func (m *Minimax) FindBestMove(b *game.Board, color game.Color) (*Decision, metrics.SearchMetric) {
	m.metrics.Start(m.depth, m.goroutines, m.alphaBeta)
	moves := b.LegalMoves(color)
	m.metrics.SetBranches(len(moves))
	if len(moves) == 0 {
		return nil, m.metrics.Complete()
	}

	values := make([]float64, len(moves))
	if m.goroutines > 1 && len(moves) > 1 {
		m.iterate(b, color, moves, values)
	} else {
		for i, move := range moves {
			values[i] = m.explore(b, move, color.Opponent(), m.depth-1, math.Inf(-1), math.Inf(1))
		}
	}

	decision := &Decision{Player: color, Branches: make([]Branch, len(moves))}
	best := 0
	for i, move := range moves {
		decision.Branches[i] = Branch{Move: move, Value: values[i]}
		if better(color, values[i], values[best]) {
			best = i
		}
		log.Debug().Str("move", move.String()).Float64("value", values[i]).Msg("root branch")
	}
	decision.Move = moves[best]
	decision.Value = values[best]

	metric := m.metrics.Complete()
	log.Debug().
		Str("player", color.String()).
		Str("move", decision.Move.String()).
		Float64("value", decision.Value).
		Int("depth", m.depth).
		Bool("alpha_beta", m.alphaBeta).
		Msg("search complete")
	return decision, metric
}

// iterate evaluates root branches on a pool of goroutines. Every task searches
// its own copy of the board.
func (m *Minimax) iterate(b *game.Board, color game.Color, moves []game.Move, values []float64) {
	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	workers := min(m.goroutines, len(moves))
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				snapshot := b.Clone()
				move := snapshot.Rebind(moves[i])
				values[i] = m.explore(snapshot, move, color.Opponent(), m.depth-1, math.Inf(-1), math.Inf(1))
			}
		}()
	}

	wg.Wait()
}

// explore plays move, searches the resulting position and takes the move back.
func (m *Minimax) explore(b *game.Board, move game.Move, toMove game.Color, depth int, alpha, beta float64) float64 {
	b.ApplyMove(move, false)
	defer b.UndoMove(move)
	return m.search(b, toMove, depth, alpha, beta)
}

func (m *Minimax) search(b *game.Board, toMove game.Color, depth int, alpha, beta float64) float64 {
	m.metrics.AddNode()
	if depth == 0 {
		m.metrics.AddLeaf()
		return m.evaluate(b, toMove)
	}

	moves := b.LegalMoves(toMove)
	if len(moves) == 0 {
		m.metrics.AddLeaf()
		return m.evaluate(b, toMove)
	}
	orderMoves(moves)

	next := toMove.Opponent()
	if toMove == game.White {
		best := math.Inf(-1)
		for _, move := range moves {
			value := m.explore(b, move, next, depth-1, alpha, beta)
			best = math.Max(best, value)
			if m.alphaBeta {
				alpha = math.Max(alpha, value)
				if beta <= alpha {
					m.metrics.AddCutoff()
					break
				}
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, move := range moves {
		value := m.explore(b, move, next, depth-1, alpha, beta)
		best = math.Min(best, value)
		if m.alphaBeta {
			beta = math.Min(beta, value)
			if beta <= alpha {
				m.metrics.AddCutoff()
				break
			}
		}
	}
	return best
}

// better reports whether value beats current for color: white maximises, black
// minimises. Equal values never win.
func better(color game.Color, value, current float64) bool {
	if color == game.White {
		return value > current
	}
	return value < current
}
