package meta

import (
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	AgentMinimax = "minimax"
	AgentRandom  = "random"
)

// Config holds the run settings. Zero values are replaced by the baseline
// constants in Default.
type Config struct {
	Depth      int    `yaml:"depth"`
	AlphaBeta  bool   `yaml:"alpha_beta"`
	Goroutines int    `yaml:"goroutines"`
	MaxTurns   int    `yaml:"max_turns"`
	White      string `yaml:"white"`
	Black      string `yaml:"black"`
	Seed       uint64 `yaml:"seed"`
	Puzzle     string `yaml:"puzzle"`
	OutputDir  string `yaml:"output_dir"`
	Games      int    `yaml:"games"`
}

func Default() Config {
	return Config{
		Depth:      DEPTH,
		AlphaBeta:  ALPHA_BETA,
		Goroutines: GO_ROUTINES,
		MaxTurns:   MAX_TURNS,
		White:      AgentMinimax,
		Black:      AgentRandom,
		Seed:       1,
		OutputDir:  "experiments",
		Games:      1,
	}
}

// LoadConfig reads a YAML file on top of the defaults. Keys missing from the
// file keep their default value.
func LoadConfig(path string) (Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return config, config.Validate()
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var result error
	if c.Depth < 1 {
		result = multierror.Append(result, errors.Errorf("depth must be at least 1, got %d", c.Depth))
	}
	if c.Goroutines < 1 {
		result = multierror.Append(result, errors.Errorf("goroutines must be at least 1, got %d", c.Goroutines))
	}
	if c.MaxTurns < 1 {
		result = multierror.Append(result, errors.Errorf("max_turns must be at least 1, got %d", c.MaxTurns))
	}
	if c.Games < 1 {
		result = multierror.Append(result, errors.Errorf("games must be at least 1, got %d", c.Games))
	}
	for _, agent := range []string{c.White, c.Black} {
		if agent != AgentMinimax && agent != AgentRandom {
			result = multierror.Append(result, errors.Errorf("unknown agent %q", agent))
		}
	}
	return result
}
