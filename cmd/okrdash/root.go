package main

import (
	"fmt"

	"github.com/niklvrr/okr-dashboard/internal/app"
	"github.com/niklvrr/okr-dashboard/internal/config"
	"github.com/niklvrr/okr-dashboard/internal/domain"
	"github.com/niklvrr/okr-dashboard/internal/timeline"
	"github.com/niklvrr/okr-dashboard/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions флаги, общие для всех подкоманд. Непустые значения
// перекрывают переменные окружения
type rootOptions struct {
	envFile      string
	env          string
	dataPath     string
	quarterStart string
	weeks        int
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "okrdash",
		Short:        "OKR dashboard: progress statistics, quarter timeline and PDF reports",
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "path to .env file (missing file is ignored)")
	flags.StringVar(&opts.env, "env", "", "environment: dev or prod (overrides APP_ENV)")
	flags.StringVar(&opts.dataPath, "data", "", "path to OKR snapshot YAML (overrides DATA_PATH, embedded data when empty)")
	flags.StringVar(&opts.quarterStart, "quarter-start", "", "first day of the timeline, YYYY-MM-DD (overrides TIMELINE_QUARTER_START)")
	flags.IntVar(&opts.weeks, "weeks", 0, "number of timeline weeks (overrides TIMELINE_WEEKS)")

	rootCmd.AddCommand(
		newServeCommand(opts),
		newStatsCommand(opts),
		newTimelineCommand(opts),
		newReportCommand(opts),
	)
	return rootCmd
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(o.envFile)
	if err != nil {
		return nil, err
	}

	if o.env != "" {
		cfg.App.Env = o.env
	}
	if o.dataPath != "" {
		cfg.Data.Path = o.dataPath
	}
	if o.quarterStart != "" {
		start, err := domain.ParseDate(o.quarterStart)
		if err != nil {
			return nil, fmt.Errorf("--quarter-start: %w", err)
		}
		cfg.Timeline.QuarterStart = start
	}
	if o.weeks != 0 {
		if o.weeks < 1 || o.weeks > timeline.MaxWeekCount {
			return nil, fmt.Errorf("--weeks must be in [1, %d], got %d", timeline.MaxWeekCount, o.weeks)
		}
		cfg.Timeline.Weeks = o.weeks
	}
	return cfg, nil
}

// bootstrap загружает конфигурацию, логгер и собирает приложение
func (o *rootOptions) bootstrap() (*app.App, *zap.Logger, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.NewLogger(cfg.App.Env)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	a, err := app.New(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}
	return a, log, nil
}
