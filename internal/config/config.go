// Package config reads process settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable of the cubes command.
// The cube limits are deliberately absent; see game.DefaultLimits.
type Config struct {
	InputFile string `env:"CUBES_INPUT_FILE" envDefault:"input.txt"`
	Example   bool   `env:"CUBES_EXAMPLE" envDefault:"false"`
	LogLevel  string `env:"CUBES_LOG_LEVEL" envDefault:"info"`
	KeepGoing bool   `env:"CUBES_KEEP_GOING" envDefault:"false"`
}

// Load parses the environment into a Config. A non-empty first
// positional argument replaces InputFile.
func Load(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if len(args) > 0 && args[0] != "" {
		cfg.InputFile = args[0]
	}
	return cfg, nil
}
