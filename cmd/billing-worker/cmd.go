package main

import (
	"context"
	"encoding/json"
	"os/signal"
	"syscall"

	"lesson_billing/internal/app"
	"lesson_billing/internal/config"
	"lesson_billing/internal/logger"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "billing-worker",
		Short: "Periodic invoice recomputation for sent contracts",
		Long: `billing-worker re-evaluates every sent contract so invoices for
the current period exist and reflect the latest attendance, and
contracts whose sessions are used up get their next invoice.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newSweepCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var schedule string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sweep on a cron schedule until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, cfg, err := loadApp(ctx)
			if err != nil {
				return err
			}
			if schedule == "" {
				schedule = cfg.SweepCron
			}
			return runScheduled(ctx, a, schedule)
		},
	}
	cmd.Flags().StringVar(&schedule, "schedule", "", "cron expression, defaults to SWEEP_CRON")
	return cmd
}

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run a single sweep and print its report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, _, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			report, err := a.Trigger.Sweep(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			return enc.Encode(report)
		},
	}
}

func loadApp(ctx context.Context) (*app.App, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		return nil, nil, err
	}
	a, err := app.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return a, cfg, nil
}

// runScheduled blocks until ctx is cancelled. Overlapping runs are skipped.
func runScheduled(ctx context.Context, a *app.App, schedule string) error {
	log := logger.WithComponent("worker")
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	if _, err := c.AddFunc(schedule, func() {
		if _, err := a.Trigger.Sweep(ctx); err != nil {
			log.Error().Err(err).Msg("scheduled sweep failed")
		}
	}); err != nil {
		return err
	}

	c.Start()
	log.Info().Str("schedule", schedule).Msg("billing worker started")

	<-ctx.Done()
	<-c.Stop().Done()
	log.Info().Msg("billing worker stopped")
	return nil
}
