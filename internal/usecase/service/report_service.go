package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/niklvrr/okr-dashboard/internal/report"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/request"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/response"
	"go.uber.org/zap"
)

const pdfContentType = "application/pdf"

var generateReportError = errors.New("generate report error")

// Интерфейс отрисовщика документов
type Renderer interface {
	RenderSummary(ctx context.Context, doc *report.SummaryDocument, w io.Writer) error
	RenderGantt(ctx context.Context, doc *report.GanttDocument, w io.Writer) error
}

type ReportService struct {
	repo     SnapshotSource
	renderer Renderer
	observer report.Observer
	defaults TimelineDefaults
	now      func() time.Time
	log      *zap.Logger
}

func NewReportService(
	repo SnapshotSource,
	renderer Renderer,
	observer report.Observer,
	defaults TimelineDefaults,
	log *zap.Logger,
) *ReportService {
	if observer == nil {
		observer = report.NopObserver{}
	}
	return &ReportService{
		repo:     repo,
		renderer: renderer,
		observer: observer,
		defaults: defaults,
		now:      time.Now,
		log:      log,
	}
}

func (s *ReportService) ListReports(ctx context.Context) (*response.ListReportsResponse, error) {
	return &response.ListReportsResponse{
		Reports: report.Catalog(),
	}, nil
}

// Generate строит документ в буфере целиком. При любой ошибке отрисовки
// результат отбрасывается и возвращается REPORT_FAILED
func (s *ReportService) Generate(ctx context.Context, req *request.GenerateReportRequest) (*response.ReportResponse, error) {
	s.log.Info("generateReport request accepted",
		zap.String("kind", req.Kind),
	)

	descriptor, ok := report.Lookup(req.Kind)
	if !ok {
		return nil, WrapError(ErrReportKindNotFound, fmt.Errorf("kind %q", req.Kind))
	}

	grid, err := resolveGrid(s.defaults, req.QuarterStart, req.Weeks)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	data, err := s.repo.Snapshot(ctx)
	if err != nil {
		s.log.Error("failed to load snapshot for report",
			zap.String("kind", req.Kind),
			zap.Error(err),
		)
		return nil, fmt.Errorf(`%w: %w`, generateReportError, err)
	}

	reportId := uuid.NewString()
	now := s.now()
	started := time.Now()

	var buf bytes.Buffer
	if descriptor.Kind == report.KindGantt {
		err = s.renderer.RenderGantt(ctx, report.BuildGantt(grid, data, now), &buf)
	} else {
		err = s.renderer.RenderSummary(ctx, report.BuildSummary(descriptor, data, now), &buf)
	}
	s.observer.RecordGeneration(descriptor.Kind, time.Since(started), buf.Len(), err)
	if err != nil {
		s.log.Error("failed to render report",
			zap.String("report_id", reportId),
			zap.String("kind", req.Kind),
			zap.Error(err),
		)
		return nil, WrapError(ErrReportFailed, err)
	}

	s.log.Info("report generated",
		zap.String("report_id", reportId),
		zap.String("kind", req.Kind),
		zap.Int("size_bytes", buf.Len()),
	)

	return &response.ReportResponse{
		ReportId:    reportId,
		Kind:        string(descriptor.Kind),
		Filename:    descriptor.Filename(now),
		ContentType: pdfContentType,
		Content:     buf.Bytes(),
	}, nil
}
