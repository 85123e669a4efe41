package main

import (
	"log/slog"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

// newScheduleCmd runs the full import on a cron schedule until interrupted.
// The dump provider publishes fresh extracts periodically, so a daily
// expression is the usual deployment.
func newScheduleCmd(a *app) *cobra.Command {
	var (
		expr      string
		skipFetch bool
		only      []string
		immediate bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run the import periodically on a cron expression",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.RequireDatabase(); err != nil {
				return err
			}
			if !skipFetch {
				if err := a.cfg.RequireAPI(); err != nil {
					return err
				}
			}

			ctx := cmd.Context()

			runOnce := func() {
				if err := runImport(ctx, a.cfg, !skipFetch, only); err != nil {
					slog.Error("scheduled import failed", "error", err)
				}
			}

			if immediate {
				runOnce()
			}

			// Single writer: a tick that fires while a run is still going is
			// skipped rather than run concurrently.
			c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
			if _, err := c.AddFunc(expr, runOnce); err != nil {
				return err
			}
			c.Start()
			slog.Info("import scheduled", "cron", expr)

			<-ctx.Done()
			slog.Info("shutting down...")

			// Let an in-flight run finish before exiting.
			<-c.Stop().Done()
			return nil
		},
	}

	cmd.Flags().StringVar(&expr, "cron", "0 3 * * *", "Cron expression for scheduled runs")
	cmd.Flags().BoolVar(&skipFetch, "skip-fetch", false, "Import the dumps already on disk without downloading")
	cmd.Flags().StringSliceVar(&only, "entities", nil, "Restrict to a subset of entities (default: all)")
	cmd.Flags().BoolVar(&immediate, "immediate", false, "Run once immediately before scheduling")
	return cmd
}
