package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lanelevesque/IGDB-Data-Upsert/internal/config"
	"github.com/lanelevesque/IGDB-Data-Upsert/internal/core"
	"github.com/lanelevesque/IGDB-Data-Upsert/internal/core/entities"
	"github.com/lanelevesque/IGDB-Data-Upsert/internal/igdb"
	"github.com/lanelevesque/IGDB-Data-Upsert/internal/logging"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// app carries the loaded configuration across subcommands.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "importer",
		Short:         "Validate and merge IGDB catalog dumps into PostgreSQL",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
			slog.Debug("configuration loaded", "config", cfg.String())
			return nil
		},
	}

	root.AddCommand(newFetchCmd(a))
	root.AddCommand(newRunCmd(a))
	root.AddCommand(newScheduleCmd(a))
	return root
}

func newFetchCmd(a *app) *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download dump payloads without importing them",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.RequireAPI(); err != nil {
				return err
			}

			ctx, _ := logging.WithRunID(cmd.Context())
			logger := logging.FromContext(ctx)
			client := igdb.NewClient(a.cfg.API, a.cfg.Paths.DownloadDir, logger)

			names := only
			if len(names) == 0 {
				names = entities.Catalog().Names()
			}

			failed := 0
			for _, name := range names {
				if err := client.Fetch(ctx, name); err != nil {
					logger.Error("fetch failed", "entity", name, "error", err)
					failed++
				}
			}
			if failed == len(names) {
				return fmt.Errorf("all %d fetches failed", len(names))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&only, "entities", nil, "Restrict to a subset of entities (default: all)")
	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	var (
		skipFetch bool
		only      []string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch, validate, and upsert all entities once",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), a.cfg, !skipFetch, only)
		},
	}

	cmd.Flags().BoolVar(&skipFetch, "skip-fetch", false, "Import the dumps already on disk without downloading")
	cmd.Flags().StringSliceVar(&only, "entities", nil, "Restrict to a subset of entities (default: all)")
	return cmd
}

func runImport(ctx context.Context, cfg *config.Config, fetch bool, only []string) error {
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}
	if fetch {
		if err := cfg.RequireAPI(); err != nil {
			return err
		}
	}

	ctx, runID := logging.WithRunID(ctx)
	logger := logging.FromContext(ctx)
	logger.Info("import run starting", "run_id", runID, "fetch", fetch)

	pool, err := openPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	var fetcher core.Fetcher
	if fetch {
		fetcher = igdb.NewClient(cfg.API, cfg.Paths.DownloadDir, logger)
	}

	service := core.NewService(pool, entities.Catalog(), fetcher, cfg, logger)
	summary, err := service.Run(ctx, core.RunOptions{Fetch: fetch, Entities: only})
	if summary != nil {
		for _, e := range summary.Entities {
			logger.Info("entity imported",
				"entity", e.Entity,
				"valid", e.Valid,
				"invalid", e.Invalid,
				"affected", e.Affected,
				"duration", e.Duration,
			)
		}
	}
	return err
}

// openPool parses and configures the connection pool the way the rest of the
// config is handled: fail fast, log which database we landed on.
func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if u, err := url.Parse(cfg.Database.URL); err == nil {
		slog.Info("connected to database", "name", strings.TrimPrefix(u.Path, "/"))
	} else {
		slog.Info("connected to database")
	}

	return pool, nil
}
