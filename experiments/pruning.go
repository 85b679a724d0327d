package experiments

import (
	"path/filepath"
	"strings"

	"hexchess/experiments/metrics"
	"hexchess/game"
	"hexchess/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

// Variant is one searcher setup compared by the pruning experiment.
type Variant struct {
	Name       string
	AlphaBeta  bool
	Goroutines int
}

// VariantSummary aggregates a variant over every puzzle.
type VariantSummary struct {
	Variant
	MeanMillis float64
	StdMillis  float64
	MeanNodes  float64
	Runs       int
}

type PruningSummary struct {
	Variants   []VariantSummary
	Mismatches int // Puzzles where a variant chose a different move than plain minimax
	Dir        string
}

// Puzzle is a position file and the side searched from it.
type Puzzle struct {
	Path   string
	ToMove game.Color
}

// ParsePuzzles reads a comma separated list of paths. A path may end in
// ":white" or ":black" to pick the side to move; white is the default.
func ParsePuzzles(list string) ([]Puzzle, error) {
	var puzzles []Puzzle
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		p := Puzzle{Path: item, ToMove: game.White}
		if path, side, found := strings.Cut(item, ":"); found {
			color, err := game.ParseColor(side)
			if err != nil {
				return nil, errors.Wrapf(err, "puzzle %s", item)
			}
			p.Path, p.ToMove = path, color
		}
		puzzles = append(puzzles, p)
	}
	if len(puzzles) == 0 {
		return nil, errors.New("no puzzles given")
	}
	return puzzles, nil
}

func variants(goroutines int) []Variant {
	return []Variant{
		{Name: "minimax/sequential", AlphaBeta: false, Goroutines: 1},
		{Name: "alphabeta/sequential", AlphaBeta: true, Goroutines: 1},
		{Name: "minimax/parallel", AlphaBeta: false, Goroutines: goroutines},
		{Name: "alphabeta/parallel", AlphaBeta: true, Goroutines: goroutines},
	}
}

// RunPruningExperiment times a search for the side to move of every puzzle with
// and without alpha-beta, sequentially and in parallel, and writes
// search_records.csv under outDir/pruning.
func RunPruningExperiment(outDir string, puzzles []Puzzle, depth, goroutines int) (PruningSummary, error) {
	var summary PruningSummary
	if depth < 1 {
		return summary, errors.Errorf("depth must be at least 1, got %d", depth)
	}
	if goroutines < 1 {
		goroutines = 1
	}

	boards := make([]*game.Board, len(puzzles))
	for i, p := range puzzles {
		b, err := game.LoadFile(p.Path)
		if err != nil {
			return summary, err
		}
		boards[i] = b
	}

	writer, err := metrics.NewWriter(outDir, "pruning")
	if err != nil {
		return summary, errors.Wrap(err, "failed to create experiment writer")
	}
	summary.Dir = writer.Dir()

	log.Info().Msgf("starting pruning experiment on %d puzzles at depth %d...", len(puzzles), depth)

	vs := variants(goroutines)
	millis := make([][]float64, len(vs))
	nodes := make([][]float64, len(vs))
	records := []metrics.SearchRecord{}

	for i, b := range boards {
		name := filepath.Base(puzzles[i].Path)
		var reference *searcher.Decision

		for vi, v := range vs {
			m := searcher.NewMinimax(
				searcher.WithDepth(depth),
				searcher.WithAlphaBeta(v.AlphaBeta),
				searcher.WithGoroutines(v.Goroutines),
				searcher.WithMetrics(),
			)
			decision, metric := m.FindBestMove(b, puzzles[i].ToMove)

			record := metrics.SearchRecord{Puzzle: name, SearchMetric: metric}
			if decision != nil {
				record.Move = decision.Move.String()
				record.Value = decision.Value
			}
			records = append(records, record)
			millis[vi] = append(millis[vi], float64(metric.Duration.Microseconds())/1000)
			nodes[vi] = append(nodes[vi], float64(metric.Nodes))

			if vi == 0 {
				reference = decision
			} else if !sameChoice(reference, decision) {
				summary.Mismatches++
				log.Error().Str("puzzle", name).Str("variant", v.Name).Msg("variant disagrees with plain minimax")
			}

			log.Info().
				Str("puzzle", name).
				Str("to_move", puzzles[i].ToMove.String()).
				Str("variant", v.Name).
				Str("move", record.Move).
				Dur("duration", metric.Duration).
				Int("nodes", metric.Nodes).
				Int("cutoffs", metric.Cutoffs).
				Msg("search complete")
		}
	}

	for vi, v := range vs {
		s := VariantSummary{Variant: v, Runs: len(millis[vi])}
		switch {
		case s.Runs > 1:
			s.MeanMillis, s.StdMillis = stat.MeanStdDev(millis[vi], nil)
			s.MeanNodes = stat.Mean(nodes[vi], nil)
		case s.Runs == 1:
			s.MeanMillis, s.MeanNodes = millis[vi][0], nodes[vi][0]
		}
		summary.Variants = append(summary.Variants, s)
		log.Info().Msgf("%s: mean %.3fms (sd %.3f), %.0f nodes over %d runs", v.Name, s.MeanMillis, s.StdMillis, s.MeanNodes, s.Runs)
	}

	if err := writer.WriteSearchRecords(records); err != nil {
		return summary, errors.Wrap(err, "failed to write search records")
	}
	log.Info().Msg("stored search records")
	return summary, nil
}

func sameChoice(a, b *searcher.Decision) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Move.Equal(b.Move) && a.Value == b.Value
}
