package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/testdriven/employee-api/internal/infrastructure/config"
	"github.com/testdriven/employee-api/internal/infrastructure/db/relational"
	"github.com/testdriven/employee-api/pkg/logger"
)

const serviceName = "employee-api"

// runtime bundles what every command needs: config, logger and database.
type runtime struct {
	cfg *config.Config
	log zerolog.Logger
	db  *gorm.DB
}

func bootstrap(ctx context.Context, opts *RootOptions) (*runtime, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	db, err := relational.Open(ctx, relational.Config{
		Driver:             cfg.Database.Driver,
		DSN:                cfg.Database.DSN,
		MaxOpenConns:       cfg.Database.MaxOpenConns,
		MaxIdleConns:       cfg.Database.MaxIdleConns,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	log.Info().Str("driver", cfg.Database.Driver).Msg("database connected")
	return &runtime{cfg: cfg, log: log, db: db}, nil
}

func (r *runtime) close() {
	if err := relational.Close(r.db); err != nil {
		r.log.Warn().Err(err).Msg("close database")
	}
}
