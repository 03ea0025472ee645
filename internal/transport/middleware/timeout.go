package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/niklvrr/okr-dashboard/internal/transport/handler"
	"go.uber.org/zap"
)

// Timeout ограничивает время запроса через контекст. Обработчик выполняется
// в той же горутине, поэтому в ResponseWriter пишет только он. Если дедлайн
// истёк, а ответ ещё не начат, отдаётся 504
func Timeout(timeout time.Duration, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return
			}

			logger.Warn("request timeout",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("timeout", timeout),
			)
			if ww.Status() == 0 {
				handler.WriteError(w, http.StatusGatewayTimeout, handler.ErrorResponse{
					Error: handler.ErrorDetail{
						Code:    "TIMEOUT",
						Message: "request timeout",
					},
				})
			}
		})
	}
}
