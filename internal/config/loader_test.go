package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chatwrapped.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
analysis:
  leaderboard_limit: 5
  extra_system_senders: ["Bot"]
serve:
  addr: "127.0.0.1:9000"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Analysis.LeaderboardLimit != 5 {
		t.Errorf("LeaderboardLimit = %d, want 5", cfg.Analysis.LeaderboardLimit)
	}
	if cfg.Serve.Addr != "127.0.0.1:9000" {
		t.Errorf("Serve.Addr = %q", cfg.Serve.Addr)
	}
}

func TestLoad_DefaultsPreserved(t *testing.T) {
	path := writeConfig(t, "log:\n  level: warn\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Serve.Addr != Default().Serve.Addr {
		t.Errorf("Serve.Addr = %q, want default %q", cfg.Serve.Addr, Default().Serve.Addr)
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("CW_LEVEL", "error")
	path := writeConfig(t, "log:\n  level: ${CW_LEVEL}\nserve:\n  addr: \"${CW_ADDR:-127.0.0.1:8490}\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
	}
	if cfg.Serve.Addr != "127.0.0.1:8490" {
		t.Errorf("Serve.Addr = %q, want the fallback default", cfg.Serve.Addr)
	}
}

func TestLoad_UnresolvedVariable(t *testing.T) {
	path := writeConfig(t, "log:\n  level: ${CW_DOES_NOT_EXIST}\n")

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unresolved variable: CW_DOES_NOT_EXIST") {
		t.Errorf("err = %v, want unresolved variable", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResolvePath_XDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "chatwrapped")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(cfgDir, "chatwrapped.yaml")
	if err := os.WriteFile(want, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)

	if got := ResolvePath(); got != want {
		t.Errorf("ResolvePath() = %q, want %q", got, want)
	}
}

func TestResolvePath_NotFound(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "empty"))
	t.Chdir(t.TempDir())

	if got := ResolvePath(); got != "" {
		t.Errorf("ResolvePath() = %q, want empty", got)
	}
}
