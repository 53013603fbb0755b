package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the only persisted config file schema.
type Config struct {
	StartTerm string `toml:"start_term"`
	StartYear int    `toml:"start_year"`
	GradYear  int    `toml:"grad_year"`
	NotesPath string `toml:"notes_path"`
	Source    string `toml:"-"`
}

func Default() Config {
	return Config{StartTerm: "fall"}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".timeline", "config.toml")
}

func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if env := strings.TrimSpace(os.Getenv("TIMELINE_START_TERM")); env != "" {
		cfg.StartTerm = env
	}
	if env := strings.TrimSpace(os.Getenv("TIMELINE_START_YEAR")); env != "" {
		if year, err := strconv.Atoi(env); err == nil {
			cfg.StartYear = year
		}
	}
	if env := strings.TrimSpace(os.Getenv("TIMELINE_GRAD_YEAR")); env != "" {
		if year, err := strconv.Atoi(env); err == nil {
			cfg.GradYear = year
		}
	}
	if env := strings.TrimSpace(os.Getenv("TIMELINE_NOTES_PATH")); env != "" {
		cfg.NotesPath = env
	}
	return cfg
}
