package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want %q", cfg.Addr, DefaultAddr)
	}
	if cfg.GitHubUser != DefaultGitHubUser {
		t.Errorf("GitHubUser = %q, want %q", cfg.GitHubUser, DefaultGitHubUser)
	}
	if cfg.Reveal.Delay != DefaultReveal.Delay {
		t.Errorf("Reveal.Delay = %v, want %v", cfg.Reveal.Delay, DefaultReveal.Delay)
	}
	if cfg.Proof.Chance != DefaultProof.Chance {
		t.Errorf("Proof.Chance = %v, want %v", cfg.Proof.Chance, DefaultProof.Chance)
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("addr: \":7070\"\ngithub_user: someone\nreveal:\n  scroll_depth: 40\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != ":7070" {
		t.Errorf("Addr = %q, want :7070", cfg.Addr)
	}
	if cfg.GitHubUser != "someone" {
		t.Errorf("GitHubUser = %q, want someone", cfg.GitHubUser)
	}
	if cfg.Reveal.ScrollDepth != 40 {
		t.Errorf("Reveal.ScrollDepth = %v, want 40", cfg.Reveal.ScrollDepth)
	}
	// Keys absent from the file keep their defaults.
	if cfg.SessionTTL != DefaultSessionTTL {
		t.Errorf("SessionTTL = %v, want %v", cfg.SessionTTL, DefaultSessionTTL)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PULSE_ADDR", ":9999")
	t.Setenv("PULSE_GITHUB_USER", "env-user")
	t.Setenv("PULSE_SESSION_TTL", "45m")
	t.Setenv("PULSE_REVEAL_SCROLL_DEPTH", "55")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != ":9999" {
		t.Errorf("Addr = %q, want :9999", cfg.Addr)
	}
	if cfg.GitHubUser != "env-user" {
		t.Errorf("GitHubUser = %q, want env-user", cfg.GitHubUser)
	}
	if cfg.SessionTTL != 45*time.Minute {
		t.Errorf("SessionTTL = %v, want 45m", cfg.SessionTTL)
	}
	if cfg.Reveal.ScrollDepth != 55 {
		t.Errorf("Reveal.ScrollDepth = %v, want 55", cfg.Reveal.ScrollDepth)
	}
}

func TestLoadEnvironmentBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":7070\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PULSE_ADDR", ":8888")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8888" {
		t.Errorf("Addr = %q, want the environment value :8888", cfg.Addr)
	}
}
