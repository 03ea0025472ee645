package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/niklvrr/okr-dashboard/internal/transport/handler"
	transportMiddleware "github.com/niklvrr/okr-dashboard/internal/transport/middleware"
	"go.uber.org/zap"
)

type Handlers struct {
	Objective *handler.ObjectiveHandler
	Stats     *handler.StatsHandler
	Timeline  *handler.TimelineHandler
	Report    *handler.ReportHandler
	Health    *handler.HealthHandler
}

func NewRouter(
	h Handlers,
	metrics *transportMiddleware.Metrics,
	metricsHandler http.Handler,
	requestTimeout time.Duration,
	log *zap.Logger,
) *chi.Mux {
	router := chi.NewRouter()

	// Recovery должен быть первым для обработки паник во всех middleware
	router.Use(transportMiddleware.Recovery(log))

	// RequestID для трейсинга запросов
	router.Use(middleware.RequestID)

	router.Use(transportMiddleware.Logging(log))
	router.Use(transportMiddleware.Timeout(requestTimeout, log))
	router.Use(metrics.Handler)

	// Эндпоинт для Prometheus метрик
	router.Handle("/metrics", metricsHandler)

	router.Route("/objectives", func(r chi.Router) {
		r.Get("/", h.Objective.ListObjectives)
		r.Get("/{id}", h.Objective.GetObjective)
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", h.Stats.ListTeams)
		r.Get("/{name}", h.Stats.GetTeam)
	})

	router.Get("/stats", h.Stats.GetStats)
	router.Get("/charts", h.Stats.GetCharts)
	router.Get("/timeline", h.Timeline.GetTimeline)

	router.Route("/reports", func(r chi.Router) {
		r.Get("/", h.Report.ListReports)
		r.Get("/{kind}", h.Report.GenerateReport)
	})

	router.Get("/health", h.Health.HealthCheck)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handler.WriteError(w, http.StatusNotFound, handler.ErrorResponse{
			Error: handler.ErrorDetail{Code: "NOT_FOUND", Message: "route not found"},
		})
	})
	return router
}
