package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/request"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/response"
	"github.com/stretchr/testify/mock"
)

// MockObjectiveService мок сервиса для тестов
type MockObjectiveService struct {
	mock.Mock
}

func (m *MockObjectiveService) List(ctx context.Context, req *request.ListObjectivesRequest) (*response.ListObjectivesResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ListObjectivesResponse), args.Error(1)
}

func (m *MockObjectiveService) Get(ctx context.Context, req *request.GetObjectiveRequest) (*response.GetObjectiveResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.GetObjectiveResponse), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStats(ctx context.Context) (*response.StatsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.StatsResponse), args.Error(1)
}

func (m *MockStatsService) GetCharts(ctx context.Context) (*response.ChartsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ChartsResponse), args.Error(1)
}

func (m *MockStatsService) ListTeams(ctx context.Context) (*response.ListTeamsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ListTeamsResponse), args.Error(1)
}

func (m *MockStatsService) GetTeam(ctx context.Context, req *request.GetTeamRequest) (*response.GetTeamResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.GetTeamResponse), args.Error(1)
}

type MockTimelineService struct {
	mock.Mock
}

func (m *MockTimelineService) GetTimeline(ctx context.Context, req *request.TimelineRequest) (*response.TimelineResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TimelineResponse), args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) ListReports(ctx context.Context) (*response.ListReportsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ListReportsResponse), args.Error(1)
}

func (m *MockReportService) Generate(ctx context.Context, req *request.GenerateReportRequest) (*response.ReportResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ReportResponse), args.Error(1)
}

// withURLParam кладёт параметр маршрута chi в контекст запроса
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
