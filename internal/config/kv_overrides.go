package config

import (
	"strconv"
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	if len(overrides) == 0 {
		return cfg
	}
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch key {
		case "start_term":
			cfg.StartTerm = val
		case "start_year":
			if year, err := strconv.Atoi(val); err == nil {
				cfg.StartYear = year
			}
		case "grad_year":
			if year, err := strconv.Atoi(val); err == nil {
				cfg.GradYear = year
			}
		case "notes_path":
			cfg.NotesPath = val
		}
	}
	return cfg
}
