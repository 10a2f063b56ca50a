package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPPort != 8000 {
		t.Errorf("HTTPPort = %d, want 8000", cfg.HTTPPort)
	}
	if cfg.Algorithm != "HS256" {
		t.Errorf("Algorithm = %q, want HS256", cfg.Algorithm)
	}
	if len(cfg.AllowedDomains) != 1 || cfg.AllowedDomains[0] != "@iitbhilai.ac.in" {
		t.Errorf("AllowedDomains = %v, want [@iitbhilai.ac.in]", cfg.AllowedDomains)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("BcryptCost = %d, want 10", cfg.BcryptCost)
	}
	if got := cfg.AccessTokenTTL(); got != 30*time.Minute {
		t.Errorf("AccessTokenTTL() = %v, want 30m", got)
	}
	if cfg.Addr() != ":8000" {
		t.Errorf("Addr() = %q, want :8000", cfg.Addr())
	}
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for empty SECRET_KEY")
	}
}

func TestLoadRejectsUnsupportedAlgorithm(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("ALGORITHM", "RS256")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for unsupported algorithm")
	}
}

func TestLoadNormalizesDomains(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("ALLOWED_DOMAINS", " IITBhilai.ac.in ,@Example.org")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"@iitbhilai.ac.in", "@example.org"}
	if len(cfg.AllowedDomains) != len(want) {
		t.Fatalf("AllowedDomains = %v, want %v", cfg.AllowedDomains, want)
	}
	for i, domain := range want {
		if cfg.AllowedDomains[i] != domain {
			t.Errorf("AllowedDomains[%d] = %q, want %q", i, cfg.AllowedDomains[i], domain)
		}
	}
}
