package experiments

import (
	"fmt"
	"os"
	"quoridor/game"
	"quoridor/meta"

	"gopkg.in/yaml.v3"
)

// Config describes a tournament. Zero values fall back to the defaults.
type Config struct {
	BoardSize     int      `yaml:"board_size" json:"boardSize"`
	Walls         int      `yaml:"walls" json:"walls"`
	GamesPerMatch int      `yaml:"games_per_match" json:"gamesPerMatch"`
	MaxMoves      int      `yaml:"max_moves" json:"maxMoves"`
	Workers       int      `yaml:"workers" json:"workers"`
	Seed          uint64   `yaml:"seed" json:"seed"` // 0 seeds every game from the clock
	OutDir        string   `yaml:"out_dir" json:"outDir"`
	Strategies    []string `yaml:"strategies" json:"strategies"`
	Openings      []string `yaml:"openings" json:"openings"`
}

func DefaultConfig() Config {
	return Config{
		BoardSize:     meta.BOARD_SIZE,
		Walls:         meta.WALLS,
		GamesPerMatch: meta.GAMES_PER_MATCH,
		MaxMoves:      meta.MAX_MOVES,
		Workers:       meta.WORKERS,
		OutDir:        "results",
		Strategies: []string{
			"Adaptive",
			"Minimax2",
			"Minimax3",
			"SimulatedAnnealing0.5",
			"SimulatedAnnealing1.0",
			"SimulatedAnnealing1.5",
			"SimulatedAnnealing2.0",
			"ProgressiveDeepening2",
			"ProgressiveDeepening3",
		},
		Openings: []string{
			"No Opening",
			"Sidewall Opening",
			"Standard Opening",
		},
	}
}

// LoadConfig reads a YAML tournament file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, config.Validate()
}

// Validate fills unset numbers with defaults and rejects configs that cannot run.
func (c *Config) Validate() error {
	defaults := DefaultConfig()
	if c.BoardSize == 0 {
		c.BoardSize = defaults.BoardSize
	}
	if c.GamesPerMatch == 0 {
		c.GamesPerMatch = defaults.GamesPerMatch
	}
	if c.MaxMoves == 0 {
		c.MaxMoves = defaults.MaxMoves
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	switch {
	case c.BoardSize < 2 || c.BoardSize > game.MaxSize:
		return fmt.Errorf("board size %d is outside 2..%d", c.BoardSize, game.MaxSize)
	case c.Walls < 0:
		return fmt.Errorf("negative wall stock %d", c.Walls)
	case c.GamesPerMatch < 0:
		return fmt.Errorf("negative games per match %d", c.GamesPerMatch)
	case len(c.Strategies) < 2:
		return fmt.Errorf("need at least two strategies, got %d", len(c.Strategies))
	case len(c.Openings) == 0:
		return fmt.Errorf("need at least one opening")
	}
	return nil
}
