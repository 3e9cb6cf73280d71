// Package config loads runtime settings from defaults, an optional config
// file and USERSTORE_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// EnvPrefix is prepended to every environment variable, e.g. USERSTORE_DATABASE_DSN.
const EnvPrefix = "USERSTORE"

type Config struct {
	HTTP     HTTP
	Database Database
	Log      Log
}

type HTTP struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	// LoginRate is the per-client refill of login attempts per second and
	// must be positive while LoginBurst > 0. LoginBurst <= 0 disables throttling.
	LoginRate  float64
	LoginBurst int
}

type Database struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type Log struct {
	Level  string
	Format string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_header_timeout", 10*time.Second)
	v.SetDefault("http.shutdown_timeout", 5*time.Second)
	v.SetDefault("http.login_rate", 0.2)
	v.SetDefault("http.login_burst", 5)
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.dsn", "userstore.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", 30*time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads configuration. When path is empty, a userstore.{yaml,toml,json}
// in the working directory is used if present; its absence is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("userstore")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	cfg := &Config{
		HTTP: HTTP{
			Addr:              v.GetString("http.addr"),
			ReadHeaderTimeout: v.GetDuration("http.read_header_timeout"),
			ShutdownTimeout:   v.GetDuration("http.shutdown_timeout"),
			LoginRate:         v.GetFloat64("http.login_rate"),
			LoginBurst:        v.GetInt("http.login_burst"),
		},
		Database: Database{
			Driver:          v.GetString("database.driver"),
			DSN:             v.GetString("database.dsn"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("database.conn_max_lifetime"),
		},
		Log: Log{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.HTTP.LoginRate < 0 {
		return fmt.Errorf("http login rate must not be negative, got %v", c.HTTP.LoginRate)
	}
	if c.HTTP.LoginBurst > 0 && c.HTTP.LoginRate == 0 {
		return errors.New("http login rate must be positive when login throttling is enabled")
	}
	if c.Database.DSN == "" {
		return errors.New("database dsn is required")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.Log.Format)
	}
	return nil
}

// SlogLevel parses Level as a slog level name such as "debug" or "warn".
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}
