package meta

import (
	"errors"
	"fmt"
	"os"

	"punchout/game"
	"punchout/searcher"

	"gopkg.in/yaml.v3"
)

type SearchConfig struct {
	Episodes    int     `yaml:"episodes"`
	Cutoff      int     `yaml:"cutoff"`
	Exploration float64 `yaml:"exploration"`
	Seed        uint64  `yaml:"seed"`
}

type ServerConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Transport string `yaml:"transport"` // tcp or ws
}

// Config holds every tunable of a run. Fields missing from a YAML file keep
// their defaults.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Search SearchConfig `yaml:"search"`
	Game   game.Params  `yaml:"game"`
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{Host: HOST, Port: PORT, Transport: "tcp"},
		Search: SearchConfig{Episodes: EPISODES, Cutoff: WITH_CUTOFF, Exploration: EXPLORATION},
		Game:   game.NewStandardParams(),
	}
}

// LoadConfig reads path over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.validate(); err != nil {
		return config, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

func (c Config) validate() error {
	switch {
	case c.Server.Transport != "tcp" && c.Server.Transport != "ws":
		return fmt.Errorf("unknown transport %q", c.Server.Transport)
	case c.Search.Episodes <= 0:
		return errors.New("episodes must be positive")
	case c.Search.Cutoff <= 0:
		return errors.New("cutoff must be positive")
	case c.Search.Exploration < 0:
		return errors.New("exploration must not be negative")
	case c.Game.FramesPerStep <= 0:
		return errors.New("frames per step must be positive")
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c Config) Params() game.Params {
	return c.Game
}

func (c Config) SearchOptions() []searcher.Option {
	return []searcher.Option{
		searcher.WithEpisodes(c.Search.Episodes),
		searcher.WithCutoff(c.Search.Cutoff),
		searcher.WithExploration(c.Search.Exploration),
		searcher.WithParams(c.Game),
		searcher.WithSeed(c.Search.Seed),
	}
}
