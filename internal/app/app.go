// Package app собирает слои сервиса из конфигурации: репозиторий снимка,
// сервисы, обработчики и роутер.
package app

import (
	"fmt"
	"net/http"

	"github.com/niklvrr/okr-dashboard/internal/config"
	"github.com/niklvrr/okr-dashboard/internal/infrastructure/repository"
	"github.com/niklvrr/okr-dashboard/internal/report"
	"github.com/niklvrr/okr-dashboard/internal/transport"
	"github.com/niklvrr/okr-dashboard/internal/transport/handler"
	transportMiddleware "github.com/niklvrr/okr-dashboard/internal/transport/middleware"
	"github.com/niklvrr/okr-dashboard/internal/usecase/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type App struct {
	Config     *config.Config
	Registry   *prometheus.Registry
	Objectives *service.ObjectiveService
	Stats      *service.StatsService
	Timeline   *service.TimelineService
	Reports    *service.ReportService
	Router     http.Handler
}

func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	// Инициализация репозитория
	repo, err := repository.NewSnapshotRepository(cfg.Data.Path, log)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	// Метрики держим в собственном реестре, чтобы несколько App не конфликтовали
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	reportObserver, err := report.NewPrometheusObserver("okr_reports", reg)
	if err != nil {
		return nil, err
	}
	httpMetrics, err := transportMiddleware.NewMetrics("okr_http", reg)
	if err != nil {
		return nil, err
	}

	defaults := service.TimelineDefaults{
		QuarterStart: cfg.Timeline.QuarterStart,
		Weeks:        cfg.Timeline.Weeks,
	}

	// Инициализация сервисов
	objectiveService := service.NewObjectiveService(repo, log)
	statsService := service.NewStatsService(repo, log)
	timelineService := service.NewTimelineService(repo, defaults, log)
	reportService := service.NewReportService(repo, report.NewPDFRenderer(log), reportObserver, defaults, log)

	// Инициализация хэндлеров и роутера
	router := transport.NewRouter(
		transport.Handlers{
			Objective: handler.NewObjectiveHandler(objectiveService, log),
			Stats:     handler.NewStatsHandler(statsService, log),
			Timeline:  handler.NewTimelineHandler(timelineService, log),
			Report:    handler.NewReportHandler(reportService, log),
			Health:    handler.NewHealthHandler(log),
		},
		httpMetrics,
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		cfg.App.RequestTimeout,
		log,
	)

	return &App{
		Config:     cfg,
		Registry:   reg,
		Objectives: objectiveService,
		Stats:      statsService,
		Timeline:   timelineService,
		Reports:    reportService,
		Router:     router,
	}, nil
}
