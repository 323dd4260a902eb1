package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Database DatabaseConfig
	Redis    RedisConfig
}

type DatabaseConfig struct {
	Driver             string        `env:"DB_DRIVER,               default=sqlite"`
	DSN                string        `env:"DB_DSN,                  default=employee.db"`
	MaxOpenConns       int           `env:"DB_MAX_OPEN_CONNS,       default=10"`
	MaxIdleConns       int           `env:"DB_MAX_IDLE_CONNS,       default=5"`
	ConnMaxLifetime    time.Duration `env:"DB_CONN_MAX_LIFETIME,    default=30m"`
	SlowQueryThreshold time.Duration `env:"DB_SLOW_QUERY_THRESHOLD, default=200ms"`
	AutoMigrate        bool          `env:"DB_AUTO_MIGRATE,         default=true"`
}

// RedisConfig is optional: an empty Addr disables the email reservation
// locker and the service relies on the database unique index alone.
type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR"`
	DB      int           `env:"REDIS_DB,       default=0"`
	LockTTL time.Duration `env:"REDIS_LOCK_TTL, default=5s"`
}

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom resolves the configuration from the given lookuper.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &cfg, nil
}
