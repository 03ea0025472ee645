package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/niklvrr/okr-dashboard/internal/transport/handler"
	"go.uber.org/zap"
)

// Recovery перехватывает панику и отвечает INTERNAL_ERROR в общем формате ошибок
func Recovery(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("panic recovered",
						zap.Any("error", rec),
						zap.String("request_id", middleware.GetReqID(r.Context())),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Stack("stack"),
					)
					handler.WriteError(w, http.StatusInternalServerError, handler.InternalError())
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
