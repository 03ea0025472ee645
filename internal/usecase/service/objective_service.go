package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/niklvrr/okr-dashboard/internal/analytics"
	"github.com/niklvrr/okr-dashboard/internal/domain"
	"github.com/niklvrr/okr-dashboard/internal/infrastructure/models/dto"
	"github.com/niklvrr/okr-dashboard/internal/infrastructure/models/result"
	"github.com/niklvrr/okr-dashboard/internal/infrastructure/repository"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/request"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/response"
	"go.uber.org/zap"
)

const filterAll = "all"

var (
	listObjectivesError = errors.New("list objectives error")
	getObjectiveError   = errors.New("get objective error")
	unknownStatusError  = errors.New("unknown objective status")
)

// Интерфейс репозитория
type ObjectiveRepository interface {
	ListObjectives(ctx context.Context, d *dto.ListObjectivesDTO) (*result.ListObjectivesResult, error)
	GetObjective(ctx context.Context, d *dto.GetObjectiveDTO) (*domain.Objective, error)
}

type ObjectiveService struct {
	repo ObjectiveRepository
	log  *zap.Logger
}

func NewObjectiveService(repo ObjectiveRepository, log *zap.Logger) *ObjectiveService {
	return &ObjectiveService{
		repo: repo,
		log:  log,
	}
}

func (s *ObjectiveService) List(ctx context.Context, req *request.ListObjectivesRequest) (*response.ListObjectivesResponse, error) {
	s.log.Info("listObjectives request accepted",
		zap.String("search", req.Search),
		zap.String("status", req.Status),
		zap.String("team", req.Team),
		zap.String("sort_by", req.SortBy),
	)

	// Значение all равносильно отсутствию фильтра
	status := strings.TrimSpace(req.Status)
	if status == filterAll {
		status = ""
	}
	if status != "" && !domain.ObjectiveStatus(status).Valid() {
		return nil, WrapError(ErrInvalidInput, fmt.Errorf("%w: %q", unknownStatusError, status))
	}
	team := strings.TrimSpace(req.Team)
	if team == filterAll {
		team = ""
	}

	// Собираем dto
	dto := &dto.ListObjectivesDTO{
		Search: req.Search,
		Status: domain.ObjectiveStatus(status),
		Team:   team,
		SortBy: strings.TrimSpace(req.SortBy),
	}

	res, err := s.repo.ListObjectives(ctx, dto)
	if err != nil {
		s.log.Error("failed to list objectives",
			zap.String("sort_by", dto.SortBy),
			zap.Error(err),
		)

		// Маппим ошибки
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, WrapError(ErrInvalidInput, err)
		}

		// Неизвестная ошибка
		return nil, fmt.Errorf(`%w: %w`, listObjectivesError, err)
	}

	s.log.Info("objectives listed",
		zap.Int("objectives_count", len(res.Objectives)),
		zap.Int("total", res.Total),
	)

	// Средний прогресс считается по отфильтрованному списку, пустой список даёт 0
	return &response.ListObjectivesResponse{
		Objectives:      res.Objectives,
		Count:           len(res.Objectives),
		Total:           res.Total,
		AverageProgress: analytics.AverageProgress(res.Objectives),
	}, nil
}

func (s *ObjectiveService) Get(ctx context.Context, req *request.GetObjectiveRequest) (*response.GetObjectiveResponse, error) {
	s.log.Info("getObjective request accepted",
		zap.String("objective_id", req.ObjectiveId),
	)

	// Проверяем корректность идентификатора
	objectiveId, err := normalizeID(req.ObjectiveId, "objective_id")
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	obj, err := s.repo.GetObjective(ctx, &dto.GetObjectiveDTO{ObjectiveId: objectiveId})
	if err != nil {
		s.log.Error("failed to get objective",
			zap.String("objective_id", objectiveId),
			zap.Error(err),
		)

		// Маппим ошибки
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrObjectiveNotFound, err)
		}

		// Неизвестная ошибка
		return nil, fmt.Errorf(`%w: %w`, getObjectiveError, err)
	}

	s.log.Info("objective retrieved",
		zap.String("objective_id", obj.Id),
		zap.Int("key_results_count", len(obj.KeyResults)),
	)

	return &response.GetObjectiveResponse{
		Objective: obj,
	}, nil
}
