package main

import "testing"

func TestParseRootArgs_Overrides(t *testing.T) {
	root, rest, err := parseRootArgs([]string{"-c", "grad_year=2030", "-c", "start_term=summer", "export", "-print"})
	if err != nil {
		t.Fatalf("parseRootArgs: %v", err)
	}
	if len(root.overrides) != 2 || root.overrides[0] != "grad_year=2030" || root.overrides[1] != "start_term=summer" {
		t.Fatalf("overrides = %v", root.overrides)
	}
	if len(rest) != 2 || rest[0] != "export" || rest[1] != "-print" {
		t.Fatalf("rest = %v", rest)
	}
}

func TestParseRootArgs_ConfigPath(t *testing.T) {
	root, rest, err := parseRootArgs([]string{"-config", "/tmp/t.toml"})
	if err != nil {
		t.Fatalf("parseRootArgs: %v", err)
	}
	if root.cfgPath != "/tmp/t.toml" {
		t.Fatalf("cfgPath = %q", root.cfgPath)
	}
	if len(rest) != 0 {
		t.Fatalf("rest = %v", rest)
	}
}

func TestLoadPlan_ResolvesRange(t *testing.T) {
	t.Setenv("TIMELINE_START_TERM", "")
	t.Setenv("TIMELINE_START_YEAR", "")
	t.Setenv("TIMELINE_GRAD_YEAR", "")
	t.Setenv("TIMELINE_NOTES_PATH", "")

	dir := t.TempDir()
	root := rootArgs{
		cfgPath: dir + "/missing.toml",
		overrides: []string{
			"start_term=fall",
			"start_year=2026",
			"grad_year=2028",
			"notes_path=" + dir + "/notes.json",
		},
	}
	p, err := loadPlan(root)
	if err != nil {
		t.Fatalf("loadPlan: %v", err)
	}
	// Fall 2026 through Winter 2028: 3 years of 3 terms minus the skipped Summer.
	if len(p.Slots) != 8 {
		t.Fatalf("len(Slots) = %d, want 8", len(p.Slots))
	}
	if p.Store.Path != dir+"/notes.json" {
		t.Fatalf("Store.Path = %q", p.Store.Path)
	}
}

func TestLoadPlan_RejectsBackwardRange(t *testing.T) {
	t.Setenv("TIMELINE_START_TERM", "")
	t.Setenv("TIMELINE_START_YEAR", "")
	t.Setenv("TIMELINE_GRAD_YEAR", "")
	t.Setenv("TIMELINE_NOTES_PATH", "")

	dir := t.TempDir()
	root := rootArgs{
		cfgPath:   dir + "/missing.toml",
		overrides: []string{"start_year=2028", "grad_year=2026"},
	}
	if _, err := loadPlan(root); err == nil {
		t.Fatalf("expected error for grad year before start year")
	}
}

func TestLoadPlan_RejectsUnknownTerm(t *testing.T) {
	t.Setenv("TIMELINE_START_TERM", "")

	dir := t.TempDir()
	root := rootArgs{
		cfgPath:   dir + "/missing.toml",
		overrides: []string{"start_term=spring"},
	}
	if _, err := loadPlan(root); err == nil {
		t.Fatalf("expected error for unknown term")
	}
}
