package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/request"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/response"
	"go.uber.org/zap"
)

type StatsService interface {
	GetStats(ctx context.Context) (*response.StatsResponse, error)
	GetCharts(ctx context.Context) (*response.ChartsResponse, error)
	ListTeams(ctx context.Context) (*response.ListTeamsResponse, error)
	GetTeam(ctx context.Context, req *request.GetTeamRequest) (*response.GetTeamResponse, error)
}

type StatsHandler struct {
	svc StatsService
	log *zap.Logger
}

func NewStatsHandler(svc StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		svc: svc,
		log: log,
	}
}

func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.log.Info("getStats request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	resp, err := h.svc.GetStats(r.Context())
	if err != nil {
		h.log.Error("failed to get statistics", zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	h.log.Info("statistics retrieved successfully",
		zap.Int("objectives_count", resp.Total),
		zap.Int("teams_count", len(resp.Teams)),
	)

	WriteJSON(w, http.StatusOK, resp)
}

func (h *StatsHandler) GetCharts(w http.ResponseWriter, r *http.Request) {
	h.log.Info("getCharts request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	resp, err := h.svc.GetCharts(r.Context())
	if err != nil {
		h.log.Error("failed to build charts", zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (h *StatsHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	h.log.Info("listTeams request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	resp, err := h.svc.ListTeams(r.Context())
	if err != nil {
		h.log.Error("failed to list teams", zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	h.log.Info("teams listed successfully",
		zap.Int("teams_count", len(resp.Teams)),
	)

	WriteJSON(w, http.StatusOK, resp)
}

func (h *StatsHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	h.log.Info("getTeam request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	req := request.GetTeamRequest{
		TeamName: chi.URLParam(r, "name"),
	}

	resp, err := h.svc.GetTeam(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to get team",
			zap.String("team_name", req.TeamName),
			zap.Error(err),
		)
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	h.log.Info("team retrieved successfully",
		zap.String("team_name", resp.TeamName),
		zap.Int("objectives_count", len(resp.Objectives)),
	)

	WriteJSON(w, http.StatusOK, resp)
}
