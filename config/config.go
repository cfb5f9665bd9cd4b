package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
)

// Exit modes for the Game Over "Exit" action.
const (
	ExitReload = "reload"
	ExitQuit   = "quit"
)

// Config holds runtime settings. Environment variables provide defaults and
// command-line flags override them.
type Config struct {
	Debug    bool   `env:"SHOOTER_DEBUG"`
	Seed     uint64 `env:"SHOOTER_SEED"`
	ExitMode string `env:"SHOOTER_EXIT_MODE" envDefault:"reload"`
	Monitor  bool   `env:"SHOOTER_MONITOR"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment, then parses args (without the program name).
func Load(args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("waveshooter", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable physics debug draw and prefab hot reload")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "spawner random seed (0 picks one at start-up)")
	fs.StringVar(&cfg.ExitMode, "exit", cfg.ExitMode, "game over exit action: reload or quit")
	fs.BoolVar(&cfg.Monitor, "m", cfg.Monitor, "use base monitor instead of primary (for multi-monitor setups)")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.ExitMode {
	case ExitReload, ExitQuit:
		return nil
	default:
		return fmt.Errorf("config: unknown exit mode %q", c.ExitMode)
	}
}
