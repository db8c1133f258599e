package config

import "time"

// Fallback values applied when neither the config file nor the
// environment provides a setting. Named constants rather than literals
// buried in the loader.
const (
	DefaultPort = 4000

	DefaultAccessSecret    = "default-secret"
	DefaultRefreshSecret   = "default-refresh-secret"
	DefaultAccessLifetime  = 15 * time.Minute
	DefaultRefreshLifetime = 7 * 24 * time.Hour

	DefaultLogLevel      = "info"
	DefaultLogDir        = "logs"
	DefaultLogFile       = "app.log"
	DefaultErrorLogFile  = "error.log"
	DefaultLogMaxSizeKB  = 1024
	DefaultLogMaxBackups = 5

	LedgerTypeMemory = "memory"
	LedgerTypeRedis  = "redis"

	UserStoreMemory = "memory"
	UserStoreSQLite = "sqlite"
)

// DefaultConfig returns the configuration used when no config file and no
// environment overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			IP:   "0.0.0.0",
			Port: DefaultPort,
		},
		Log: LogConfig{
			Level:      DefaultLogLevel,
			Dir:        DefaultLogDir,
			File:       DefaultLogFile,
			ErrorFile:  DefaultErrorLogFile,
			MaxSizeKB:  DefaultLogMaxSizeKB,
			MaxBackups: DefaultLogMaxBackups,
		},
		Web: WebConfig{
			Enabled:   false,
			StaticDir: "./web",
		},
		Auth: AuthConfig{
			AccessSecret:    DefaultAccessSecret,
			RefreshSecret:   DefaultRefreshSecret,
			AccessLifetime:  Lifetime(DefaultAccessLifetime),
			RefreshLifetime: Lifetime(DefaultRefreshLifetime),
			Ledger: LedgerConfig{
				Type: LedgerTypeMemory,
			},
		},
		Storage: StorageConfig{
			Users: UserStoreConfig{
				Type: UserStoreMemory,
				DSN:  "data/melodia.db",
			},
		},
	}
}
