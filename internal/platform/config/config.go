package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// Lifetime is a duration that unmarshals from compact notation such as
// "15m", "12h" or "7d".
type Lifetime time.Duration

func (l *Lifetime) UnmarshalYAML(value *yaml.Node) error {
	d, err := ParseLifetime(value.Value)
	if err != nil {
		return err
	}
	*l = Lifetime(d)
	return nil
}

func (l Lifetime) Duration() time.Duration {
	return time.Duration(l)
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Web     WebConfig     `yaml:"web"`
	Auth    AuthConfig    `yaml:"auth"`
	Storage StorageConfig `yaml:"storage"`
}

type ServerConfig struct {
	IP   string `yaml:"ip"`
	Port int    `yaml:"port"`
}

type LogConfig struct {
	Level      string `yaml:"log_level"`
	Dir        string `yaml:"log_dir"`
	File       string `yaml:"log_file"`
	ErrorFile  string `yaml:"error_log_file"`
	MaxSizeKB  int    `yaml:"max_file_size_kb"`
	MaxBackups int    `yaml:"max_backups"`
}

type WebConfig struct {
	Enabled   bool   `yaml:"enabled"`
	StaticDir string `yaml:"static_dir"`
}

// AuthConfig carries the two independent (secret, lifetime) pairs for the
// token issuer plus the refresh-ledger backing store selection.
type AuthConfig struct {
	AccessSecret    string       `yaml:"access_secret"`
	RefreshSecret   string       `yaml:"refresh_secret"`
	AccessLifetime  Lifetime     `yaml:"access_lifetime"`
	RefreshLifetime Lifetime     `yaml:"refresh_lifetime"`
	Ledger          LedgerConfig `yaml:"ledger"`
}

type LedgerConfig struct {
	Type  string           `yaml:"type"`
	Redis RedisLedgerStore `yaml:"redis,omitempty"`
}

type RedisLedgerStore struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
}

type StorageConfig struct {
	Users UserStoreConfig `yaml:"users"`
}

type UserStoreConfig struct {
	Type string `yaml:"type"`
	DSN  string `yaml:"dsn,omitempty"`
}
