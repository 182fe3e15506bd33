package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string         `mapstructure:"log_level"`
	Game     GameConfig     `mapstructure:"game"`
	Players  []PlayerConfig `mapstructure:"players"`
}

type GameConfig struct {
	Kind  string `mapstructure:"kind"`  // grundy or tictactoe
	Heaps []int  `mapstructure:"heaps"` // grundy opening heaps
	Rows  int    `mapstructure:"rows"`  // tictactoe board size
	Cols  int    `mapstructure:"cols"`
}

type PlayerConfig struct {
	Kind string `mapstructure:"kind"` // human, minimax, or random
	Seed uint64 `mapstructure:"seed"` // random agents only
}

// Default is the classic setup: a human opens Grundy's game with a single
// heap of 11 against a minimax opponent.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Game:     GameConfig{Kind: "grundy", Heaps: []int{11}},
		Players: []PlayerConfig{
			{Kind: "human"},
			{Kind: "minimax"},
		},
	}
}

// Load reads a YAML configuration from the given path. Missing fields keep
// their defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Game.Kind {
	case "grundy", "tictactoe":
	default:
		return fmt.Errorf("unknown game %q", c.Game.Kind)
	}
	if len(c.Players) != 2 {
		return fmt.Errorf("need exactly two players, got %d", len(c.Players))
	}
	for i, p := range c.Players {
		switch p.Kind {
		case "human", "minimax", "random":
		default:
			return fmt.Errorf("player %d: unknown agent %q", i, p.Kind)
		}
	}
	for _, h := range c.Game.Heaps {
		if h < 1 {
			return fmt.Errorf("heap sizes must be positive, got %d", h)
		}
	}
	return nil
}
