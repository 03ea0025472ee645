package repository

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/niklvrr/okr-dashboard/internal/domain"
	"github.com/niklvrr/okr-dashboard/internal/infrastructure/models/dto"
	"github.com/niklvrr/okr-dashboard/internal/infrastructure/models/result"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	SortByProgress = "progress"
	SortByTitle    = "title"
	SortByDueDate  = "due_date"
	SortByPriority = "priority"
	SortByNone     = "none"
)

//go:embed data/okr_snapshot.yaml
var embeddedSnapshot []byte

// SnapshotRepository хранит неизменяемый снимок OKR в памяти.
// Каждый вызов отдаёт собственную копию, поэтому вызывающий код может
// обрабатывать её без синхронизации
type SnapshotRepository struct {
	data *domain.OKRData
	log  *zap.Logger
}

// NewSnapshotRepository читает снимок из файла, а при пустом пути берёт
// встроенные демонстрационные данные
func NewSnapshotRepository(path string, log *zap.Logger) (*SnapshotRepository, error) {
	raw := embeddedSnapshot
	source := "embedded"

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, handleSnapshotError(err)
		}
		raw = b
		source = path
	}

	data, err := ParseSnapshot(raw)
	if err != nil {
		return nil, err
	}

	log.Info("okr snapshot loaded",
		zap.String("source", source),
		zap.Int("objectives_count", len(data.Objectives)),
		zap.Int("teams_count", len(data.Teams)),
	)

	return &SnapshotRepository{
		data: data,
		log:  log,
	}, nil
}

// ParseSnapshot разбирает YAML снимок и проверяет его на границе модели
func ParseSnapshot(raw []byte) (*domain.OKRData, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var data domain.OKRData
	// Пустой файл равносилен пустому снимку
	if err := dec.Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode snapshot: %w", handleSnapshotError(err))
	}

	if err := validateSnapshot(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

func validateSnapshot(data *domain.OKRData) error {
	seen := make(map[string]struct{}, len(data.Objectives))
	for _, obj := range data.Objectives {
		if obj.Id == "" {
			return fmt.Errorf("%w: objective %q has empty id", ErrInvalidInput, obj.Title)
		}
		if _, ok := seen[obj.Id]; ok {
			return fmt.Errorf("%w: duplicate objective id %q", ErrInvalidInput, obj.Id)
		}
		seen[obj.Id] = struct{}{}

		if !obj.Status.Valid() {
			return fmt.Errorf("%w: objective %q has unknown status %q", ErrInvalidInput, obj.Id, obj.Status)
		}
		if !obj.Priority.Valid() {
			return fmt.Errorf("%w: objective %q has unknown priority %q", ErrInvalidInput, obj.Id, obj.Priority)
		}
		if obj.Progress < 0 || obj.Progress > 100 {
			return fmt.Errorf("%w: objective %q progress %d out of range", ErrInvalidInput, obj.Id, obj.Progress)
		}
		for _, kr := range obj.KeyResults {
			if kr.Progress < 0 || kr.Progress > 100 {
				return fmt.Errorf("%w: key result %q progress %d out of range", ErrInvalidInput, kr.Id, kr.Progress)
			}
		}
	}
	return nil
}

func (r *SnapshotRepository) Snapshot(ctx context.Context) (*domain.OKRData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.data.Clone(), nil
}

func (r *SnapshotRepository) GetObjective(ctx context.Context, d *dto.GetObjectiveDTO) (*domain.Objective, error) {
	data, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	for i := range data.Objectives {
		if data.Objectives[i].Id == d.ObjectiveId {
			return &data.Objectives[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *SnapshotRepository) ListObjectives(ctx context.Context, d *dto.ListObjectivesDTO) (*result.ListObjectivesResult, error) {
	data, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	// Фильтруем по строке поиска, статусу и команде
	search := strings.ToLower(strings.TrimSpace(d.Search))
	filtered := make([]domain.Objective, 0, len(data.Objectives))
	for _, obj := range data.Objectives {
		if search != "" &&
			!strings.Contains(strings.ToLower(obj.Title), search) &&
			!strings.Contains(strings.ToLower(obj.Description), search) {
			continue
		}
		if d.Status != "" && obj.Status != d.Status {
			continue
		}
		if d.Team != "" && obj.Team != d.Team {
			continue
		}
		filtered = append(filtered, obj)
	}

	if err := sortObjectives(filtered, d.SortBy); err != nil {
		return nil, err
	}

	return &result.ListObjectivesResult{
		Objectives: filtered,
		Total:      len(data.Objectives),
	}, nil
}

func (r *SnapshotRepository) GetTeam(ctx context.Context, d *dto.GetTeamDTO) (*result.GetTeamResult, error) {
	data, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	for _, team := range data.Teams {
		if team.Name != d.TeamName {
			continue
		}
		var objectives []domain.Objective
		for _, obj := range data.Objectives {
			if obj.Team == team.Name {
				objectives = append(objectives, obj)
			}
		}
		return &result.GetTeamResult{
			Team:       team,
			Objectives: objectives,
		}, nil
	}
	return nil, ErrNotFound
}

// sortObjectives сортирует устойчиво, чтобы равные элементы сохраняли порядок снимка.
// По умолчанию сортировка по прогрессу, порядок снимка только при SortByNone
func sortObjectives(objectives []domain.Objective, sortBy string) error {
	var less func(a, b domain.Objective) bool

	switch sortBy {
	case SortByNone:
		return nil
	case "", SortByProgress:
		less = func(a, b domain.Objective) bool { return a.Progress > b.Progress }
	case SortByTitle:
		less = func(a, b domain.Objective) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
	case SortByDueDate:
		less = func(a, b domain.Objective) bool { return a.DueDate.Before(b.DueDate) }
	case SortByPriority:
		less = func(a, b domain.Objective) bool { return a.Priority.Rank() > b.Priority.Rank() }
	default:
		return fmt.Errorf("%w: unknown sort_by %q", ErrInvalidInput, sortBy)
	}

	sort.SliceStable(objectives, func(i, j int) bool {
		return less(objectives[i], objectives[j])
	})
	return nil
}
