package config

import (
	"strings"
	"testing"

	"github.com/caarlos0/env/v11"
)

type envTestConfig struct {
	Port int    `env:"TEST_PORT" envDefault:"123"`
	Name string `env:"TEST_NAME"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvAppliesLandingPrefix(t *testing.T) {
	t.Setenv("LANDING_TEST_NAME", "flaskhub")
	t.Setenv("TEST_NAME", "unprefixed")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Name != "flaskhub" {
		t.Fatalf("Name = %q, want %q", cfg.Name, "flaskhub")
	}
}

func TestParseEnvWithOptionsUsesExplicitEnvironment(t *testing.T) {
	var cfg envTestConfig
	err := ParseEnvWithOptions(&cfg, env.Options{
		Environment: map[string]string{"LANDING_TEST_PORT": "9090"},
	})
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9090 {
		t.Fatalf("Port = %d, want %d", cfg.Port, 9090)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("LANDING_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
