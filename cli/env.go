package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds the settings read from the environment.
type Env struct {
	// LogDir is the default directory for log files.
	LogDir string `env:"DRIZZLE_LOG_DIR"`

	// ProgressFPS limits the updates of the status line per second, zero
	// keeps the terminal default.
	ProgressFPS uint `env:"DRIZZLE_PROGRESS_FPS"`
}

// LoadEnv reads the settings from the environment. Variables from a .env
// file in the current directory are loaded first, a missing file is
// ignored.
func LoadEnv() (Env, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("load .env: %w", err)
	}

	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}

	return e, nil
}
