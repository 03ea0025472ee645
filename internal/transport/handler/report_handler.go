package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/request"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/response"
	"go.uber.org/zap"
)

const ReportIdHeader = "X-Report-Id"

type ReportService interface {
	ListReports(ctx context.Context) (*response.ListReportsResponse, error)
	Generate(ctx context.Context, req *request.GenerateReportRequest) (*response.ReportResponse, error)
}

type ReportHandler struct {
	svc ReportService
	log *zap.Logger
}

func NewReportHandler(svc ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		svc: svc,
		log: log,
	}
}

func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	h.log.Info("listReports request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	resp, err := h.svc.ListReports(r.Context())
	if err != nil {
		h.log.Error("failed to list reports", zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	h.log.Info("generateReport request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	query := r.URL.Query()
	req := request.GenerateReportRequest{
		Kind:         chi.URLParam(r, "kind"),
		QuarterStart: query.Get("quarter_start"),
		Weeks:        query.Get("weeks"),
	}

	resp, err := h.svc.Generate(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to generate report",
			zap.String("kind", req.Kind),
			zap.Error(err),
		)
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	h.log.Info("report generated successfully",
		zap.String("report_id", resp.ReportId),
		zap.String("filename", resp.Filename),
		zap.Int("size_bytes", len(resp.Content)),
	)

	// Документ отдаётся как вложение
	w.Header().Set("Content-Type", resp.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resp.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(resp.Content)))
	w.Header().Set(ReportIdHeader, resp.ReportId)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(resp.Content); err != nil {
		h.log.Warn("failed to write report body",
			zap.String("report_id", resp.ReportId),
			zap.Error(err),
		)
	}
}
