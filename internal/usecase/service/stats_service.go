package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/niklvrr/okr-dashboard/internal/analytics"
	"github.com/niklvrr/okr-dashboard/internal/domain"
	"github.com/niklvrr/okr-dashboard/internal/infrastructure/models/dto"
	"github.com/niklvrr/okr-dashboard/internal/infrastructure/models/result"
	"github.com/niklvrr/okr-dashboard/internal/infrastructure/repository"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/request"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/response"
	"go.uber.org/zap"
)

var (
	getStatsError  = errors.New("get stats error")
	getTeamError   = errors.New("get team error")
	getChartsError = errors.New("get charts error")
)

// SnapshotSource отдаёт копию текущего снимка OKR
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*domain.OKRData, error)
}

type TeamRepository interface {
	SnapshotSource
	GetTeam(ctx context.Context, d *dto.GetTeamDTO) (*result.GetTeamResult, error)
}

type StatsService struct {
	repo TeamRepository
	log  *zap.Logger
}

func NewStatsService(repo TeamRepository, log *zap.Logger) *StatsService {
	return &StatsService{
		repo: repo,
		log:  log,
	}
}

func (s *StatsService) GetStats(ctx context.Context) (*response.StatsResponse, error) {
	data, err := s.repo.Snapshot(ctx)
	if err != nil {
		s.log.Error("failed to load snapshot for stats", zap.Error(err))
		return nil, fmt.Errorf(`%w: %w`, getStatsError, err)
	}

	stats := analytics.Compute(data)
	s.log.Info("stats computed",
		zap.Int("objectives_count", stats.Total),
		zap.Int("average_progress", stats.AverageProgress),
	)

	return &response.StatsResponse{Stats: stats}, nil
}

func (s *StatsService) ListTeams(ctx context.Context) (*response.ListTeamsResponse, error) {
	data, err := s.repo.Snapshot(ctx)
	if err != nil {
		s.log.Error("failed to load snapshot for teams", zap.Error(err))
		return nil, fmt.Errorf(`%w: %w`, getStatsError, err)
	}

	return &response.ListTeamsResponse{
		Teams: analytics.TeamsProgress(data),
	}, nil
}

func (s *StatsService) GetTeam(ctx context.Context, req *request.GetTeamRequest) (*response.GetTeamResponse, error) {
	s.log.Info("getTeam request accepted",
		zap.String("team_name", req.TeamName),
	)

	teamName, err := normalizeID(req.TeamName, "team_name")
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	res, err := s.repo.GetTeam(ctx, &dto.GetTeamDTO{TeamName: teamName})
	if err != nil {
		s.log.Error("failed to get team",
			zap.String("team_name", teamName),
			zap.Error(err),
		)

		// Маппим ошибки
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrTeamNotFound, err)
		}

		// Неизвестная ошибка
		return nil, fmt.Errorf(`%w: %w`, getTeamError, err)
	}

	objectives := res.Objectives
	if objectives == nil {
		objectives = []domain.Objective{}
	}

	return &response.GetTeamResponse{
		TeamId:     res.Team.Id,
		TeamName:   res.Team.Name,
		Color:      res.Team.Color,
		Members:    res.Team.Members,
		Progress:   analytics.AverageProgress(objectives),
		Objectives: objectives,
	}, nil
}

func (s *StatsService) GetCharts(ctx context.Context) (*response.ChartsResponse, error) {
	data, err := s.repo.Snapshot(ctx)
	if err != nil {
		s.log.Error("failed to load snapshot for charts", zap.Error(err))
		return nil, fmt.Errorf(`%w: %w`, getChartsError, err)
	}

	return &response.ChartsResponse{
		Charts: analytics.BuildCharts(data),
	}, nil
}
