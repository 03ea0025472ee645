package service

import (
	"context"
	"io"
	"time"

	"github.com/niklvrr/okr-dashboard/internal/domain"
	"github.com/niklvrr/okr-dashboard/internal/infrastructure/models/dto"
	"github.com/niklvrr/okr-dashboard/internal/infrastructure/models/result"
	"github.com/niklvrr/okr-dashboard/internal/report"
	"github.com/stretchr/testify/mock"
)

// MockRepository мок репозитория снимка для тестов
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Snapshot(ctx context.Context) (*domain.OKRData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OKRData), args.Error(1)
}

func (m *MockRepository) ListObjectives(ctx context.Context, d *dto.ListObjectivesDTO) (*result.ListObjectivesResult, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*result.ListObjectivesResult), args.Error(1)
}

func (m *MockRepository) GetObjective(ctx context.Context, d *dto.GetObjectiveDTO) (*domain.Objective, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Objective), args.Error(1)
}

func (m *MockRepository) GetTeam(ctx context.Context, d *dto.GetTeamDTO) (*result.GetTeamResult, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*result.GetTeamResult), args.Error(1)
}

// MockRenderer пишет заданные байты и возвращает заданную ошибку
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) RenderSummary(ctx context.Context, doc *report.SummaryDocument, w io.Writer) error {
	args := m.Called(ctx, doc, w)
	if b, ok := args.Get(0).([]byte); ok {
		_, _ = w.Write(b)
	}
	return args.Error(1)
}

func (m *MockRenderer) RenderGantt(ctx context.Context, doc *report.GanttDocument, w io.Writer) error {
	args := m.Called(ctx, doc, w)
	if b, ok := args.Get(0).([]byte); ok {
		_, _ = w.Write(b)
	}
	return args.Error(1)
}

type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) RecordGeneration(kind report.Kind, duration time.Duration, sizeBytes int, err error) {
	m.Called(kind, duration, sizeBytes, err)
}

func testData() *domain.OKRData {
	return &domain.OKRData{
		Teams: []domain.Team{
			{Id: "1", Name: "Engineering", Color: "#3B82F6", Members: []string{"Ann", "Bob"}},
			{Id: "2", Name: "Sales", Color: "#F59E0B", Members: []string{"Eve"}},
		},
		Objectives: []domain.Objective{
			{
				Id:       "1",
				Title:    "Improve Product Performance",
				Team:     "Engineering",
				Status:   domain.StatusOnTrack,
				Priority: domain.PriorityHigh,
				Progress: 75,
				KeyActions: []domain.KeyAction{
					{
						Id:        "a1",
						Title:     "Optimize",
						StartDate: domain.NewDate(2025, time.January, 15),
						EndDate:   domain.NewDate(2025, time.February, 15),
						Progress:  80,
						Status:    domain.ActionInProgress,
					},
				},
			},
			{
				Id:       "2",
				Title:    "Increase User Engagement",
				Team:     "Engineering",
				Status:   domain.StatusAtRisk,
				Priority: domain.PriorityMedium,
				Progress: 40,
			},
		},
	}
}

var testDefaults = TimelineDefaults{
	QuarterStart: domain.NewDate(2025, time.January, 1),
	Weeks:        12,
}
