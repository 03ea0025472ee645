package handler

import (
	"context"
	"net/http"

	"github.com/niklvrr/okr-dashboard/internal/transport/dto/request"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/response"
	"go.uber.org/zap"
)

type TimelineService interface {
	GetTimeline(ctx context.Context, req *request.TimelineRequest) (*response.TimelineResponse, error)
}

type TimelineHandler struct {
	svc TimelineService
	log *zap.Logger
}

func NewTimelineHandler(svc TimelineService, log *zap.Logger) *TimelineHandler {
	return &TimelineHandler{
		svc: svc,
		log: log,
	}
}

func (h *TimelineHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	h.log.Info("getTimeline request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	query := r.URL.Query()
	req := request.TimelineRequest{
		QuarterStart: query.Get("quarter_start"),
		Weeks:        query.Get("weeks"),
	}

	resp, err := h.svc.GetTimeline(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to build timeline",
			zap.String("quarter_start", req.QuarterStart),
			zap.String("weeks", req.Weeks),
			zap.Error(err),
		)
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	h.log.Info("timeline built successfully",
		zap.String("quarter", resp.Quarter),
		zap.Int("objectives_count", len(resp.Objectives)),
	)

	WriteJSON(w, http.StatusOK, resp)
}
