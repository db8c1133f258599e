package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoader_LoadDefaults(t *testing.T) {
	loader := NewLoader().WithDotEnv(false).WithPath(filepath.Join(t.TempDir(), "missing.yaml"))

	res, err := loader.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if res.Path != "" {
		t.Errorf("expected empty path for defaults, got %s", res.Path)
	}

	cfg := res.Config
	if cfg.Server.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Server.Port)
	}
	if cfg.Auth.AccessSecret != DefaultAccessSecret {
		t.Errorf("expected default access secret, got %s", cfg.Auth.AccessSecret)
	}
	if cfg.Auth.AccessLifetime.Duration() != DefaultAccessLifetime {
		t.Errorf("expected access lifetime %v, got %v", DefaultAccessLifetime, cfg.Auth.AccessLifetime.Duration())
	}
	if cfg.Auth.RefreshLifetime.Duration() != DefaultRefreshLifetime {
		t.Errorf("expected refresh lifetime %v, got %v", DefaultRefreshLifetime, cfg.Auth.RefreshLifetime.Duration())
	}
	if cfg.Auth.Ledger.Type != LedgerTypeMemory {
		t.Errorf("expected memory ledger, got %s", cfg.Auth.Ledger.Type)
	}
}

func TestLoader_LoadFile(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configContent := `
server:
  ip: "127.0.0.1"
  port: 8080
log:
  log_level: "debug"
  log_dir: "/tmp/logs"
auth:
  access_secret: "file-secret"
  access_lifetime: "30m"
  refresh_lifetime: "14d"
  ledger:
    type: "redis"
    redis:
      addr: "127.0.0.1:6379"
`

	if err := os.WriteFile(configFile, []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	loader := NewLoader().WithDotEnv(false).WithPath(configFile)
	res, err := loader.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if res.Path != configFile {
		t.Errorf("expected path %s, got %s", configFile, res.Path)
	}

	cfg := res.Config
	if cfg.Server.IP != "127.0.0.1" {
		t.Errorf("expected server IP 127.0.0.1, got %s", cfg.Server.IP)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected server port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Auth.AccessSecret != "file-secret" {
		t.Errorf("expected access secret from file, got %s", cfg.Auth.AccessSecret)
	}
	if cfg.Auth.AccessLifetime.Duration() != 30*time.Minute {
		t.Errorf("expected 30m access lifetime, got %v", cfg.Auth.AccessLifetime.Duration())
	}
	if cfg.Auth.RefreshLifetime.Duration() != 14*24*time.Hour {
		t.Errorf("expected 14d refresh lifetime, got %v", cfg.Auth.RefreshLifetime.Duration())
	}
	if cfg.Auth.Ledger.Type != LedgerTypeRedis {
		t.Errorf("expected redis ledger, got %s", cfg.Auth.Ledger.Type)
	}
	if cfg.Auth.Ledger.Redis.Addr != "127.0.0.1:6379" {
		t.Errorf("unexpected redis addr %s", cfg.Auth.Ledger.Redis.Addr)
	}
}

func TestLoader_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET_KEY", "env-secret")
	t.Setenv("JWT_EXPIRATION_TIME", "30m")
	t.Setenv("JWT_REFRESH_EXPIRATION_TIME", "14d")

	loader := NewLoader().WithDotEnv(false).WithPath(filepath.Join(t.TempDir(), "missing.yaml"))
	res, err := loader.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	cfg := res.Config
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Auth.AccessSecret != "env-secret" {
		t.Errorf("expected env access secret, got %s", cfg.Auth.AccessSecret)
	}
	if cfg.Auth.AccessLifetime.Duration() != 30*time.Minute {
		t.Errorf("expected 30m access lifetime, got %v", cfg.Auth.AccessLifetime.Duration())
	}
	if cfg.Auth.RefreshLifetime.Duration() != 14*24*time.Hour {
		t.Errorf("expected 14d refresh lifetime, got %v", cfg.Auth.RefreshLifetime.Duration())
	}
}

func TestParseLifetime(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{input: "15m", want: 15 * time.Minute},
		{input: "12h", want: 12 * time.Hour},
		{input: "7d", want: 7 * 24 * time.Hour},
		{input: " 1d ", want: 24 * time.Hour},
		{input: "xd", wantErr: true},
		{input: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLifetime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLifetime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
