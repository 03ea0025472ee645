package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/niklvrr/okr-dashboard/internal/domain"
	"github.com/niklvrr/okr-dashboard/internal/timeline"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/request"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/response"
	"go.uber.org/zap"
)

// MaxWeeks верхняя граница сетки, задаваемой из запроса
const MaxWeeks = timeline.MaxWeekCount

var (
	getTimelineError = errors.New("get timeline error")
	weeksRangeError  = errors.New("weeks out of range")
)

// TimelineDefaults сетка, которая используется при пустых параметрах запроса
type TimelineDefaults struct {
	QuarterStart domain.Date
	Weeks        int
}

type TimelineService struct {
	repo     SnapshotSource
	defaults TimelineDefaults
	log      *zap.Logger
}

func NewTimelineService(repo SnapshotSource, defaults TimelineDefaults, log *zap.Logger) *TimelineService {
	return &TimelineService{
		repo:     repo,
		defaults: defaults,
		log:      log,
	}
}

func (s *TimelineService) GetTimeline(ctx context.Context, req *request.TimelineRequest) (*response.TimelineResponse, error) {
	s.log.Info("getTimeline request accepted",
		zap.String("quarter_start", req.QuarterStart),
		zap.String("weeks", req.Weeks),
	)

	grid, err := resolveGrid(s.defaults, req.QuarterStart, req.Weeks)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	data, err := s.repo.Snapshot(ctx)
	if err != nil {
		s.log.Error("failed to load snapshot for timeline", zap.Error(err))
		return nil, fmt.Errorf(`%w: %w`, getTimelineError, err)
	}

	layout := grid.Layout(data)
	s.log.Info("timeline laid out",
		zap.String("quarter", layout.Quarter),
		zap.Int("weeks", len(layout.Weeks)),
		zap.Int("objectives_count", len(layout.Objectives)),
	)

	return &response.TimelineResponse{Layout: layout}, nil
}

// resolveGrid строит сетку из параметров запроса, подставляя значения по умолчанию
func resolveGrid(defaults TimelineDefaults, rawStart, rawWeeks string) (timeline.Grid, error) {
	start := defaults.QuarterStart
	if v := strings.TrimSpace(rawStart); v != "" {
		parsed, err := domain.ParseDate(v)
		if err != nil {
			return timeline.Grid{}, err
		}
		start = parsed
	}

	weeks := defaults.Weeks
	if v := strings.TrimSpace(rawWeeks); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return timeline.Grid{}, fmt.Errorf("weeks: %w", err)
		}
		weeks = n
	}
	if weeks > MaxWeeks {
		return timeline.Grid{}, fmt.Errorf("%w: %d > %d", weeksRangeError, weeks, MaxWeeks)
	}

	return timeline.NewGrid(start, weeks)
}
