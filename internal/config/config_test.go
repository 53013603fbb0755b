package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TIMELINE_START_TERM", "")
	t.Setenv("TIMELINE_START_YEAR", "")
	t.Setenv("TIMELINE_GRAD_YEAR", "")
	t.Setenv("TIMELINE_NOTES_PATH", "")
}

func TestDefault_StartTerm(t *testing.T) {
	cfg := Default()
	if cfg.StartTerm != "fall" {
		t.Fatalf("Default().StartTerm = %q, want %q", cfg.StartTerm, "fall")
	}
}

func TestLoad_MissingFile_UsesDefaults(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != path {
		t.Fatalf("cfg.Source = %q, want %q", cfg.Source, path)
	}
	if cfg.StartTerm != "fall" {
		t.Fatalf("cfg.StartTerm = %q, want %q", cfg.StartTerm, "fall")
	}
	if cfg.StartYear != 0 || cfg.GradYear != 0 {
		t.Fatalf("years should stay unset: %+v", cfg)
	}
}

func TestLoad_FromTOML(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`
start_term = "winter"
start_year = 2026
grad_year = 2029
notes_path = "/tmp/notes.json"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StartTerm != "winter" {
		t.Fatalf("cfg.StartTerm = %q, want %q", cfg.StartTerm, "winter")
	}
	if cfg.StartYear != 2026 || cfg.GradYear != 2029 {
		t.Fatalf("years = %d/%d, want 2026/2029", cfg.StartYear, cfg.GradYear)
	}
	if cfg.NotesPath != "/tmp/notes.json" {
		t.Fatalf("cfg.NotesPath = %q", cfg.NotesPath)
	}
}

func TestLoad_EnvOverridesTOML(t *testing.T) {
	clearEnv(t)
	t.Setenv("TIMELINE_GRAD_YEAR", "2031")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`grad_year = 2029`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GradYear != 2031 {
		t.Fatalf("cfg.GradYear = %d, want 2031", cfg.GradYear)
	}
}

func TestApplyKVOverrides(t *testing.T) {
	cfg := Default()
	got := ApplyKVOverrides(cfg, []string{
		"start_term=summer",
		"grad_year=2030",
		"grad_year=not-a-year",
		"malformed",
	})
	if got.StartTerm != "summer" {
		t.Fatalf("StartTerm = %q, want %q", got.StartTerm, "summer")
	}
	if got.GradYear != 2030 {
		t.Fatalf("GradYear = %d, want 2030", got.GradYear)
	}
}

func TestSaveRoundtrip(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	want := Config{StartTerm: "fall", StartYear: 2026, GradYear: 2030}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.StartTerm != want.StartTerm || got.StartYear != want.StartYear || got.GradYear != want.GradYear {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
}
