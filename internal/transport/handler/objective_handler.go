package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/request"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/response"
	"go.uber.org/zap"
)

type ObjectiveService interface {
	List(ctx context.Context, req *request.ListObjectivesRequest) (*response.ListObjectivesResponse, error)
	Get(ctx context.Context, req *request.GetObjectiveRequest) (*response.GetObjectiveResponse, error)
}

type ObjectiveHandler struct {
	svc ObjectiveService
	log *zap.Logger
}

func NewObjectiveHandler(svc ObjectiveService, log *zap.Logger) *ObjectiveHandler {
	return &ObjectiveHandler{
		svc: svc,
		log: log,
	}
}

func (h *ObjectiveHandler) ListObjectives(w http.ResponseWriter, r *http.Request) {
	h.log.Info("listObjectives request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	// Фильтры приходят в query параметрах
	query := r.URL.Query()
	req := request.ListObjectivesRequest{
		Search: query.Get("search"),
		Status: query.Get("status"),
		Team:   query.Get("team"),
		SortBy: query.Get("sort_by"),
	}

	resp, err := h.svc.List(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to list objectives",
			zap.String("status", req.Status),
			zap.String("sort_by", req.SortBy),
			zap.Error(err),
		)
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	h.log.Info("objectives listed successfully",
		zap.Int("count", resp.Count),
		zap.Int("total", resp.Total),
	)

	WriteJSON(w, http.StatusOK, resp)
}

func (h *ObjectiveHandler) GetObjective(w http.ResponseWriter, r *http.Request) {
	h.log.Info("getObjective request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	req := request.GetObjectiveRequest{
		ObjectiveId: chi.URLParam(r, "id"),
	}

	resp, err := h.svc.Get(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to get objective",
			zap.String("objective_id", req.ObjectiveId),
			zap.Error(err),
		)
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	h.log.Info("objective retrieved successfully",
		zap.String("objective_id", resp.Objective.Id),
	)

	WriteJSON(w, http.StatusOK, resp)
}
