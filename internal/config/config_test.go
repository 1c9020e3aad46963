package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	t.Setenv("DEMO_PASSWORD", "s3cret")
	path := writeConfig(t, `
server:
  port: 8088
  read_timeout: 5s
auth:
  password: ${DEMO_PASSWORD}
  mfa_code: "654321"
logging:
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 8088 {
		t.Errorf("Expected port 8088, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Expected read timeout 5s, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.Auth.Password != "s3cret" {
		t.Errorf("Expected password from environment, got %q", cfg.Auth.Password)
	}
	if cfg.Auth.MFACode != "654321" {
		t.Errorf("Expected mfa code 654321, got %q", cfg.Auth.MFACode)
	}
	// untouched keys keep their defaults
	if cfg.Auth.Username != "admin" {
		t.Errorf("Expected default username admin, got %q", cfg.Auth.Username)
	}
	if cfg.Server.WriteTimeout != 15*time.Second {
		t.Errorf("Expected default write timeout, got %s", cfg.Server.WriteTimeout)
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() failed: %v", err)
	}
	if cfg.GetAddr() != "0.0.0.0:3001" {
		t.Errorf("Expected default address, got %s", cfg.GetAddr())
	}
}

func TestLoadOrDefaultParseError(t *testing.T) {
	path := writeConfig(t, "server: [not, a, map")
	if _, err := LoadOrDefault(path); err == nil {
		t.Fatal("Expected parse error, got nil")
	}
}

func TestPortEnvOverride(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"missing username", func(c *Config) { c.Auth.Username = "" }},
		{"missing password", func(c *Config) { c.Auth.Password = "" }},
		{"short mfa code", func(c *Config) { c.Auth.MFACode = "123" }},
		{"non-numeric mfa code", func(c *Config) { c.Auth.MFACode = "12a456" }},
		{"missing token", func(c *Config) { c.Auth.Token = "" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}

	t.Run("defaults are valid", func(t *testing.T) {
		cfg := Default()
		if err := cfg.Validate(); err != nil {
			t.Errorf("Default config should validate: %v", err)
		}
	})
}
