package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/msomdec/userstore/internal/config"
	"github.com/msomdec/userstore/internal/domain"
	"github.com/msomdec/userstore/internal/handler"
	"github.com/msomdec/userstore/internal/repository/postgres"
	"github.com/msomdec/userstore/internal/repository/sqlite"
	"github.com/msomdec/userstore/internal/service"
	"github.com/msomdec/userstore/internal/validator"
)

type app struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "userstore",
		Short:         "User records over HTTP backed by SQLite or PostgreSQL",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			a.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a config file (yaml, toml or json)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, _ []string) error { return a.serve(cmd.Context()) },
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending schema migrations and exit",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, _ []string) error { return a.migrate(cmd.Context()) },
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the demo users, skipping any that already exist",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, _ []string) error { return a.seed(cmd.Context()) },
		},
	)
	return root
}

func newLogger(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func openDatabase(ctx context.Context, cfg config.Database) (domain.Database, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.New(cfg.DSN)
		if err != nil {
			return nil, err
		}
		return db, nil
	case config.DriverPostgres:
		db, err := postgres.New(ctx, cfg.DSN, postgres.PoolOptions{
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		})
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// openMigrated opens the configured store and brings its schema up to date.
func (a *app) openMigrated(ctx context.Context) (domain.Database, error) {
	db, err := openDatabase(ctx, a.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("database migrations applied", "driver", a.cfg.Database.Driver)
	return db, nil
}

func (a *app) migrate(ctx context.Context) error {
	db, err := a.openMigrated(ctx)
	if err != nil {
		return err
	}
	return db.Close()
}

func (a *app) seed(ctx context.Context) error {
	db, err := a.openMigrated(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := service.NewUserService(db.Users(), validator.NewCreateUserValidator())
	n, err := svc.Seed(ctx, service.DemoUsers)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	slog.Info("demo users seeded", "inserted", n, "total", len(service.DemoUsers))
	return nil
}

func (a *app) serve(ctx context.Context) error {
	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := a.openMigrated(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	users := service.NewUserService(db.Users(), validator.NewCreateUserValidator())

	var limiter *handler.LoginLimiter
	if a.cfg.HTTP.LoginBurst > 0 {
		limiter = handler.NewLoginLimiter(ctx, a.cfg.HTTP.LoginRate, a.cfg.HTTP.LoginBurst)
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, users, limiter)

	srv := &http.Server{
		Addr:              a.cfg.HTTP.Addr,
		Handler:           handler.Chain(mux),
		ReadHeaderTimeout: a.cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}
