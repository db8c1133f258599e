package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"melodia-server-go/internal/platform/errors"
)

// Loader reads configuration from an optional yaml file, then applies
// environment overrides. A .env file is loaded first so that local
// deployments can keep secrets out of the shell environment.
type Loader struct {
	useDotEnv bool
	path      string
}

func NewLoader() *Loader {
	return &Loader{
		useDotEnv: true,
		path:      "config.yaml",
	}
}

// WithDotEnv toggles loading variables from a .env file before reading config.
func (l *Loader) WithDotEnv(enabled bool) *Loader {
	l.useDotEnv = enabled
	return l
}

// WithPath overrides the yaml config path (useful for tests).
func (l *Loader) WithPath(path string) *Loader {
	if path != "" {
		l.path = path
	}
	return l
}

// Result captures the loaded configuration and its origin path. Path is empty
// when the defaults were used without a config file.
type Result struct {
	Config *Config
	Path   string
}

func (l *Loader) Load() (*Result, error) {
	if l.useDotEnv {
		// a missing .env file is fine, the process environment still applies
		_ = godotenv.Load()
	}

	cfg := DefaultConfig()
	path := ""

	if data, err := os.ReadFile(l.path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.KindConfig, "config.load",
				fmt.Sprintf("failed to parse %s", l.path), err)
		}
		path = l.path
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return &Result{Config: cfg, Path: path}, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(errors.KindConfig, "config.env", "invalid PORT", err)
		}
		cfg.Server.Port = port
	}

	if v := os.Getenv("JWT_SECRET_KEY"); v != "" {
		cfg.Auth.AccessSecret = v
	}
	if v := os.Getenv("JWT_SECRET_REFRESH_KEY"); v != "" {
		cfg.Auth.RefreshSecret = v
	}
	if v := os.Getenv("JWT_EXPIRATION_TIME"); v != "" {
		d, err := ParseLifetime(v)
		if err != nil {
			return errors.Wrap(errors.KindConfig, "config.env", "invalid JWT_EXPIRATION_TIME", err)
		}
		cfg.Auth.AccessLifetime = Lifetime(d)
	}
	if v := os.Getenv("JWT_REFRESH_EXPIRATION_TIME"); v != "" {
		d, err := ParseLifetime(v)
		if err != nil {
			return errors.Wrap(errors.KindConfig, "config.env", "invalid JWT_REFRESH_EXPIRATION_TIME", err)
		}
		cfg.Auth.RefreshLifetime = Lifetime(d)
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOGS_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv("MAX_LOG_FILE_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(errors.KindConfig, "config.env", "invalid MAX_LOG_FILE_SIZE", err)
		}
		cfg.Log.MaxSizeKB = size
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Auth.Ledger.Type = LedgerTypeRedis
		cfg.Auth.Ledger.Redis.Addr = v
	}

	return nil
}

// ParseLifetime accepts compact lifetime notation ("15m", "12h", "7d") as
// well as anything time.ParseDuration understands.
func ParseLifetime(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if strings.HasSuffix(value, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(value, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid day lifetime %q", value)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid lifetime %q", value)
	}
	return d, nil
}
