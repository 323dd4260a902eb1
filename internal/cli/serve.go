package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/testdriven/employee-api/internal/api"
	"github.com/testdriven/employee-api/internal/core/ports"
	"github.com/testdriven/employee-api/internal/core/service"
	redisdb "github.com/testdriven/employee-api/internal/infrastructure/db/redis"
	"github.com/testdriven/employee-api/internal/infrastructure/db/relational"
)

const shutdownTimeout = 10 * time.Second

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Port string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

The schema is migrated on start unless DB_AUTO_MIGRATE=false. When REDIS_ADDR
is set, employee writes reserve their email in Redis before touching the
database. The server drains in-flight requests on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Port, "port", "p", "", "listen port (overrides PORT)")

	return cmd
}

func runServe(ctx context.Context, opts *ServeOptions) error {
	rt, err := bootstrap(ctx, opts.RootOptions)
	if err != nil {
		return err
	}
	defer rt.close()

	cfg, log := rt.cfg, rt.log
	if opts.Port != "" {
		cfg.Port = opts.Port
	}

	if cfg.Database.AutoMigrate {
		if err := relational.Migrate(ctx, rt.db); err != nil {
			return err
		}
	}

	// --- Optional Redis email reservations ---
	var locker ports.EmailLocker
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	switch {
	case errors.Is(err, redisdb.ErrDisabled):
		log.Info().Msg("redis not configured, email uniqueness enforced by database only")
	case err != nil:
		return err
	default:
		defer rdb.Close()
		locker = redisdb.NewEmailLocker(rdb, cfg.Redis.LockTTL, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	}

	// --- Dependencies ---
	e := api.NewRouter(api.Dependencies{
		DB:        rt.db,
		Redis:     rdb,
		Employees: service.NewEmployeeService(relational.NewEmployeeRepository(rt.db), locker, log),
		Students:  service.NewStudentService(relational.NewStudentRepository(rt.db), log),
		Logger:    log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-quit:
	case <-ctx.Done():
	}

	log.Info().Msg("server is shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info().Msg("server exited")
	return nil
}
