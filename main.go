package main

import (
	"flag"
	"os"
	"strconv"
	"time"

	"hexchess/experiments"
	"hexchess/experiments/metrics"
	"hexchess/game"
	"hexchess/meta"
	"hexchess/searcher"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func newFlagSet() *flag.FlagSet {
	flags := flag.NewFlagSet("hexchess", flag.ContinueOnError)
	flags.String("config", "", "YAML config file")
	flags.String("experiment", "", "Experiment to run instead of a match: pruning")
	flags.String("puzzles", "puzzles/mate_in_one.yaml,puzzles/middlegame.yaml", "Comma separated puzzles for the pruning experiment, each optionally suffixed :white or :black")
	flags.String("dot", "", "Write the root of white's first search as DOT to this file")
	flags.String("log-level", "info", "Log level")
	flags.String("profile", "", "Profile the run: cpu or mem")

	flags.Int("depth", meta.DEPTH, "Search depth in plies")
	flags.Bool("alpha-beta", meta.ALPHA_BETA, "Enable alpha-beta pruning")
	flags.Int("goroutines", meta.GO_ROUTINES, "Goroutines evaluating root branches")
	flags.Int("max-turns", meta.MAX_TURNS, "Maximum number of moves per game")
	flags.String("white", meta.AgentMinimax, "White agent: minimax or random")
	flags.String("black", meta.AgentRandom, "Black agent: minimax or random")
	flags.Uint64("seed", 1, "Seed of the random agents")
	flags.String("puzzle", "", "Start from this puzzle instead of the standard position")
	flags.String("out", "experiments", "Directory for experiment records")
	flags.Int("games", 1, "Number of games to play")
	return flags
}

func run(args []string) error {
	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	value := func(name string) string {
		return flags.Lookup(name).Value.String()
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	level, err := zerolog.ParseLevel(value("log-level"))
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	config, err := meta.LoadConfig(value("config"))
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := applyFlags(&config, flags); err != nil {
		return errors.Wrap(err, "invalid flags")
	}
	if err := config.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	switch mode := value("profile"); mode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(config.OutputDir)).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(config.OutputDir)).Stop()
	default:
		return errors.Errorf("unknown profile mode %q", mode)
	}

	switch experiment := value("experiment"); experiment {
	case "pruning":
		puzzles, err := experiments.ParsePuzzles(value("puzzles"))
		if err != nil {
			return err
		}
		_, err = experiments.RunPruningExperiment(config.OutputDir, puzzles, config.Depth, config.Goroutines)
		return err
	case "":
		return runMatch(config, value("dot"))
	default:
		return errors.Errorf("unknown experiment %q", experiment)
	}
}

// applyFlags copies the flags given on the command line over config.
func applyFlags(config *meta.Config, flags *flag.FlagSet) error {
	var err error
	flags.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		value := f.Value.String()
		switch f.Name {
		case "depth":
			config.Depth, err = strconv.Atoi(value)
		case "alpha-beta":
			config.AlphaBeta, err = strconv.ParseBool(value)
		case "goroutines":
			config.Goroutines, err = strconv.Atoi(value)
		case "max-turns":
			config.MaxTurns, err = strconv.Atoi(value)
		case "white":
			config.White = value
		case "black":
			config.Black = value
		case "seed":
			config.Seed, err = strconv.ParseUint(value, 10, 64)
		case "puzzle":
			config.Puzzle = value
		case "out":
			config.OutputDir = value
		case "games":
			config.Games, err = strconv.Atoi(value)
		}
		err = errors.Wrapf(err, "flag -%s", f.Name)
	})
	return err
}

func agentConfigs(config meta.Config) (white, black metrics.AgentConfig) {
	white = metrics.AgentConfig{
		ID: 1, Kind: config.White, Depth: config.Depth, AlphaBeta: config.AlphaBeta,
		Goroutines: config.Goroutines, Seed: config.Seed,
	}
	black = white
	black.ID = 2
	black.Kind = config.Black
	black.Seed = config.Seed + 1
	return white, black
}

func setup(config meta.Config) (func() *game.Board, error) {
	if config.Puzzle == "" {
		return game.NewStandardBoard, nil
	}
	b, err := game.LoadFile(config.Puzzle)
	if err != nil {
		return nil, err
	}
	return b.Clone, nil
}

func runMatch(config meta.Config, dotPath string) error {
	newBoard, err := setup(config)
	if err != nil {
		return err
	}

	if dotPath != "" {
		m := searcher.NewMinimax(
			searcher.WithDepth(config.Depth),
			searcher.WithAlphaBeta(config.AlphaBeta),
			searcher.WithGoroutines(config.Goroutines),
		)
		decision, _ := m.FindBestMove(newBoard(), game.White)
		if decision == nil {
			return errors.New("white has no legal move to graph")
		}
		graph, err := decision.Graph()
		if err != nil {
			return err
		}
		if err := os.WriteFile(dotPath, []byte(graph), 0644); err != nil {
			return errors.Wrap(err, "failed to write graph")
		}
		log.Info().Msgf("wrote search graph to %s", dotPath)
	}

	white, black := agentConfigs(config)
	result, err := experiments.RunMatch(config.OutputDir, white, black, config.Games, config.MaxTurns, newBoard)
	if err != nil {
		return err
	}
	log.Info().
		Int("white_wins", result.WhiteWins).
		Int("black_wins", result.BlackWins).
		Int("draws", result.Draws).
		Int("unfinished", result.Unfinished).
		Str("records", result.Dir).
		Msg("match complete")
	return nil
}
