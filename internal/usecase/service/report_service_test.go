package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niklvrr/okr-dashboard/internal/report"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2025, time.February, 3, 9, 30, 0, 0, time.UTC)

func newTestReportService(repo *MockRepository, renderer *MockRenderer, observer report.Observer) *ReportService {
	s := NewReportService(repo, renderer, observer, testDefaults, zap.NewNop())
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestReportService_ListReports(t *testing.T) {
	s := newTestReportService(new(MockRepository), new(MockRenderer), nil)

	resp, err := s.ListReports(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp.Reports, 4)
}

func TestReportService_Generate_Quarterly(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRenderer := new(MockRenderer)
	mockObserver := new(MockObserver)
	s := newTestReportService(mockRepo, mockRenderer, mockObserver)

	mockRepo.On("Snapshot", mock.Anything).Return(testData(), nil)
	mockRenderer.On("RenderSummary", mock.Anything, mock.MatchedBy(func(doc *report.SummaryDocument) bool {
		return doc.Title == "Quarterly OKR Report" && doc.Stats.Total == 2 && doc.GeneratedAt.Equal(fixedNow)
	}), mock.Anything).Return([]byte("%PDF-1.3"), nil)
	mockObserver.On("RecordGeneration", report.KindQuarterly, mock.Anything, 8, nil).Return()

	resp, err := s.Generate(context.Background(), &request.GenerateReportRequest{Kind: "quarterly"})

	require.NoError(t, err)
	assert.Equal(t, "OKR-Report-2025-02-03.pdf", resp.Filename)
	assert.Equal(t, "application/pdf", resp.ContentType)
	assert.Equal(t, []byte("%PDF-1.3"), resp.Content)
	assert.Len(t, resp.ReportId, 36)
	mockRenderer.AssertNotCalled(t, "RenderGantt")
	mockObserver.AssertExpectations(t)
}

func TestReportService_Generate_Gantt(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRenderer := new(MockRenderer)
	s := newTestReportService(mockRepo, mockRenderer, nil)

	mockRepo.On("Snapshot", mock.Anything).Return(testData(), nil)
	mockRenderer.On("RenderGantt", mock.Anything, mock.MatchedBy(func(doc *report.GanttDocument) bool {
		return doc.Title == "OKR Gantt Timeline - Q1 2025" && len(doc.Layout.Weeks) == 6
	}), mock.Anything).Return([]byte("%PDF"), nil)

	resp, err := s.Generate(context.Background(), &request.GenerateReportRequest{Kind: "gantt", Weeks: "6"})

	require.NoError(t, err)
	assert.Equal(t, "OKR-Gantt-Timeline-2025-02-03.pdf", resp.Filename)
	assert.Equal(t, "gantt", resp.Kind)
	mockRenderer.AssertExpectations(t)
}

func TestReportService_Generate_UniqueIds(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRenderer := new(MockRenderer)
	s := newTestReportService(mockRepo, mockRenderer, nil)

	mockRepo.On("Snapshot", mock.Anything).Return(testData(), nil)
	mockRenderer.On("RenderSummary", mock.Anything, mock.Anything, mock.Anything).Return([]byte("%PDF"), nil)

	first, err := s.Generate(context.Background(), &request.GenerateReportRequest{Kind: "team"})
	require.NoError(t, err)
	second, err := s.Generate(context.Background(), &request.GenerateReportRequest{Kind: "executive"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ReportId, second.ReportId)
	assert.Equal(t, "OKR-Executive-Summary-2025-02-03.pdf", second.Filename)
}

func TestReportService_Generate_RenderFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRenderer := new(MockRenderer)
	mockObserver := new(MockObserver)
	s := newTestReportService(mockRepo, mockRenderer, mockObserver)
	renderErr := errors.New("font missing")

	mockRepo.On("Snapshot", mock.Anything).Return(testData(), nil)
	// Частично записанные байты не должны попасть в ответ
	mockRenderer.On("RenderSummary", mock.Anything, mock.Anything, mock.Anything).Return([]byte("%PDF-partial"), renderErr)
	mockObserver.On("RecordGeneration", report.KindQuarterly, mock.Anything, mock.Anything, renderErr).Return()

	resp, err := s.Generate(context.Background(), &request.GenerateReportRequest{Kind: "quarterly"})

	assert.Nil(t, resp)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "REPORT_FAILED", domainErr.Code)
	assert.ErrorIs(t, err, renderErr)
	mockObserver.AssertExpectations(t)
}

func TestReportService_Generate_UnknownKind(t *testing.T) {
	mockRepo := new(MockRepository)
	s := newTestReportService(mockRepo, new(MockRenderer), nil)

	_, err := s.Generate(context.Background(), &request.GenerateReportRequest{Kind: "weekly"})

	assert.ErrorIs(t, err, ErrReportKindNotFound)
	mockRepo.AssertNotCalled(t, "Snapshot")
}

func TestReportService_Generate_SnapshotError(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRenderer := new(MockRenderer)
	s := newTestReportService(mockRepo, mockRenderer, nil)

	mockRepo.On("Snapshot", mock.Anything).Return(nil, context.DeadlineExceeded)

	_, err := s.Generate(context.Background(), &request.GenerateReportRequest{Kind: "gantt"})

	assert.ErrorIs(t, err, generateReportError)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	mockRenderer.AssertNotCalled(t, "RenderGantt")
}
