package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnvViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "data/golgerburguer_database.db", cfg.Store.SQLitePath)
	assert.Equal(t, PrefsBackendFile, cfg.Prefs.Backend)
	assert.Equal(t, PasswordModePlaintext, cfg.Auth.PasswordMode)
	assert.Equal(t, 4, cfg.Worker.Limit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "POSTGRES")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("PREFS_BACKEND", "redis")
	t.Setenv("AUTH_PASSWORD_MODE", "bcrypt")
	t.Setenv("WORKER_LIMIT", "0")

	cfg, err := fromViper(newEnvViper())
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, PrefsBackendRedis, cfg.Prefs.Backend)
	assert.Equal(t, PasswordModeBcrypt, cfg.Auth.PasswordMode)
	assert.Equal(t, 1, cfg.Worker.Limit, "el límite mínimo de workers es 1")
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := fromViper(newEnvViper())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_DRIVER")
}

func TestLoad_LibSQLSinURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "libsql")

	_, err := fromViper(newEnvViper())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LIBSQL_URL")
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "gb", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/gb?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
