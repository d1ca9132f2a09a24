package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr        string        `yaml:"addr"`
	DatabaseDSN string        `yaml:"database_dsn"`
	LogLevel    string        `yaml:"log_level"`
	SeedOnStart bool          `yaml:"seed_on_start"`
	APITimeout  time.Duration `yaml:"timeout"`

	// Operator login. When AdminPasswordHash is empty every route is open;
	// the tool then relies on network-level trust alone.
	AdminPasswordHash string        `yaml:"admin_password_hash"`
	JWTSecret         string        `yaml:"jwt_secret"`
	SessionDuration   time.Duration `yaml:"session_duration"`
}

// LoadConfig builds the configuration from environment defaults, then
// overrides from the YAML file when a path is given.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:              getEnv("CAREADMIN_ADDR", ":8080"),
		DatabaseDSN:       getEnv("CAREADMIN_DATABASE_DSN", "file:careadmin.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),
		LogLevel:          getEnv("CAREADMIN_LOG_LEVEL", "info"),
		SeedOnStart:       getEnv("CAREADMIN_SEED_ON_START", "true") == "true",
		APITimeout:        15 * time.Second,
		AdminPasswordHash: getEnv("CAREADMIN_ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         getEnv("CAREADMIN_JWT_SECRET", "supersecretkey"),
		SessionDuration:   12 * time.Hour,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// SlogLevel maps the configured log level to a slog.Level, defaulting
// to Info for anything it does not recognize.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DatabaseFile extracts the on-disk path from the sqlite DSN. It
// returns "" for in-memory databases.
func (c *Config) DatabaseFile() string {
	dsn := strings.TrimPrefix(c.DatabaseDSN, "file:")
	if i := strings.IndexByte(dsn, '?'); i >= 0 {
		dsn = dsn[:i]
	}
	if strings.HasPrefix(dsn, ":memory:") {
		return ""
	}

	return dsn
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
