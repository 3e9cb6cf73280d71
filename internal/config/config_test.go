package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/userstore/internal/config"
)

// inEmptyDir runs the test from a directory with no userstore.* file.
func inEmptyDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	inEmptyDir(t)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadHeaderTimeout)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.InDelta(t, 0.2, cfg.HTTP.LoginRate, 1e-9)
	assert.Equal(t, 5, cfg.HTTP.LoginBurst)
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "userstore.db", cfg.Database.DSN)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_Env(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("USERSTORE_HTTP_ADDR", "127.0.0.1:9090")
	t.Setenv("USERSTORE_DATABASE_DRIVER", "postgres")
	t.Setenv("USERSTORE_DATABASE_DSN", "postgres://localhost/users")
	t.Setenv("USERSTORE_DATABASE_MAX_OPEN_CONNS", "25")
	t.Setenv("USERSTORE_LOG_LEVEL", "debug")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.Addr)
	assert.Equal(t, config.DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/users", cfg.Database.DSN)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_File(t *testing.T) {
	inEmptyDir(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  addr: ":7070"
database:
  dsn: /var/lib/userstore/users.db
log:
  format: json
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "/var/lib/userstore/users.db", cfg.Database.DSN)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	inEmptyDir(t)
	require.NoError(t, os.WriteFile("userstore.yaml", []byte("http:\n  addr: \":7070\"\n"), 0o600))
	t.Setenv("USERSTORE_HTTP_ADDR", ":6060")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.HTTP.Addr)
}

func TestLoad_ThrottlingDisabledAllowsZeroRate(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("USERSTORE_HTTP_LOGIN_BURST", "0")
	t.Setenv("USERSTORE_HTTP_LOGIN_RATE", "0")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.HTTP.LoginBurst)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	inEmptyDir(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		Database: config.Database{Driver: config.DriverSQLite, DSN: "x.db"},
		Log:      config.Log{Level: "info", Format: "text"},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown driver", func(c *config.Config) { c.Database.Driver = "oracle" }},
		{"negative login rate", func(c *config.Config) { c.HTTP.LoginRate = -1 }},
		{"zero login rate with throttling", func(c *config.Config) { c.HTTP.LoginBurst = 5 }},
		{"empty dsn", func(c *config.Config) { c.Database.DSN = "" }},
		{"bad level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *config.Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
