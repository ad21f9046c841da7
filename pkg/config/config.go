package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento relacional soportados.
const (
	DriverSQLite   = "sqlite"
	DriverLibSQL   = "libsql"
	DriverPostgres = "postgres"
)

// Backends de preferencias soportados.
const (
	PrefsBackendFile  = "file"
	PrefsBackendRedis = "redis"
)

// Modos de comparación de contraseñas.
const (
	PasswordModePlaintext = "plaintext"
	PasswordModeBcrypt    = "bcrypt"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Store  StoreConfig
	DB     DBConfig
	Prefs  PrefsConfig
	Auth   AuthConfig
	Worker WorkerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// StoreConfig selecciona el almacenamiento relacional de productos y usuarios.
type StoreConfig struct {
	Driver      string // sqlite, libsql, postgres
	SQLitePath  string
	LibSQLURL   string
	LibSQLToken string
}

// DBConfig configuración de PostgreSQL (solo con Driver = postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// PrefsConfig configuración de los almacenes de preferencias (sesión y tema).
type PrefsConfig struct {
	Backend       string // file, redis
	Dir           string
	RedisAddr     string
	RedisPassword string
}

// AuthConfig controla cómo se guardan y comparan las contraseñas.
type AuthConfig struct {
	PasswordMode string // plaintext, bcrypt
	BcryptCost   int
}

// WorkerConfig límites del pool de tareas en segundo plano.
type WorkerConfig struct {
	Limit int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORE_DRIVER, PREFS_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "golden-burgers"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			Driver:      strings.ToLower(getString(v, "STORE_DRIVER", DriverSQLite)),
			SQLitePath:  getString(v, "STORE_SQLITE_PATH", "data/golgerburguer_database.db"),
			LibSQLURL:   getString(v, "LIBSQL_URL", ""),
			LibSQLToken: getString(v, "LIBSQL_TOKEN", ""),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "golden_burgers"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Prefs: PrefsConfig{
			Backend:       strings.ToLower(getString(v, "PREFS_BACKEND", PrefsBackendFile)),
			Dir:           getString(v, "PREFS_DIR", "data/prefs"),
			RedisAddr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			RedisPassword: getString(v, "REDIS_PASSWORD", ""),
		},
		Auth: AuthConfig{
			PasswordMode: strings.ToLower(getString(v, "AUTH_PASSWORD_MODE", PasswordModePlaintext)),
			BcryptCost:   getInt(v, "AUTH_BCRYPT_COST", 10),
		},
		Worker: WorkerConfig{
			Limit: getInt(v, "WORKER_LIMIT", 4),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case DriverSQLite, DriverLibSQL, DriverPostgres:
	default:
		return fmt.Errorf("STORE_DRIVER inválido: %q", c.Store.Driver)
	}
	if c.Store.Driver == DriverLibSQL && c.Store.LibSQLURL == "" {
		return fmt.Errorf("LIBSQL_URL es obligatorio con STORE_DRIVER=libsql")
	}
	switch c.Prefs.Backend {
	case PrefsBackendFile, PrefsBackendRedis:
	default:
		return fmt.Errorf("PREFS_BACKEND inválido: %q", c.Prefs.Backend)
	}
	switch c.Auth.PasswordMode {
	case PasswordModePlaintext, PasswordModeBcrypt:
	default:
		return fmt.Errorf("AUTH_PASSWORD_MODE inválido: %q", c.Auth.PasswordMode)
	}
	if c.Worker.Limit < 1 {
		c.Worker.Limit = 1
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
