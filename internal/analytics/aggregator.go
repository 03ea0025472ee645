package analytics

import (
	"math"

	"github.com/niklvrr/okr-dashboard/internal/domain"
)

type TeamProgress struct {
	TeamId     string `json:"team_id" yaml:"team_id"`
	Name       string `json:"name" yaml:"name"`
	Color      string `json:"color" yaml:"color"`
	Members    int    `json:"members" yaml:"members"`
	Objectives int    `json:"objectives" yaml:"objectives"`
	Progress   int    `json:"progress" yaml:"progress"`
}

type Stats struct {
	Total           int                            `json:"total" yaml:"total"`
	ByStatus        map[domain.ObjectiveStatus]int `json:"by_status" yaml:"by_status"`
	Completed       int                            `json:"completed" yaml:"completed"`
	AtRisk          int                            `json:"at_risk" yaml:"at_risk"`
	AverageProgress int                            `json:"average_progress" yaml:"average_progress"`
	Teams           []TeamProgress                 `json:"teams" yaml:"teams"`
}

// ActionSummary итоги по ключевым действиям для подвала отчёта
type ActionSummary struct {
	Objectives      int `json:"objectives" yaml:"objectives"`
	Actions         int `json:"actions" yaml:"actions"`
	Completed       int `json:"completed" yaml:"completed"`
	InProgress      int `json:"in_progress" yaml:"in_progress"`
	AverageProgress int `json:"average_progress" yaml:"average_progress"`
}

func Compute(data *domain.OKRData) Stats {
	if data == nil {
		data = &domain.OKRData{}
	}

	byStatus := CountByStatus(data.Objectives)
	return Stats{
		Total:           len(data.Objectives),
		ByStatus:        byStatus,
		Completed:       byStatus[domain.StatusCompleted],
		AtRisk:          byStatus[domain.StatusAtRisk] + byStatus[domain.StatusBehind],
		AverageProgress: AverageProgress(data.Objectives),
		Teams:           TeamsProgress(data),
	}
}

// CountByStatus всегда содержит все четыре статуса, даже с нулём
func CountByStatus(objectives []domain.Objective) map[domain.ObjectiveStatus]int {
	counts := make(map[domain.ObjectiveStatus]int, len(domain.ObjectiveStatuses))
	for _, s := range domain.ObjectiveStatuses {
		counts[s] = 0
	}
	for _, obj := range objectives {
		if obj.Status.Valid() {
			counts[obj.Status]++
		}
	}
	return counts
}

// AverageProgress округлённое среднее. Для пустого списка 0, а не NaN
func AverageProgress(objectives []domain.Objective) int {
	if len(objectives) == 0 {
		return 0
	}

	sum := 0
	for _, obj := range objectives {
		sum += obj.Progress
	}
	return roundMean(sum, len(objectives))
}

func TeamsProgress(data *domain.OKRData) []TeamProgress {
	if data == nil {
		return []TeamProgress{}
	}

	result := make([]TeamProgress, 0, len(data.Teams))
	for _, team := range data.Teams {
		var teamObjectives []domain.Objective
		for _, obj := range data.Objectives {
			if obj.Team == team.Name {
				teamObjectives = append(teamObjectives, obj)
			}
		}

		result = append(result, TeamProgress{
			TeamId:     team.Id,
			Name:       team.Name,
			Color:      team.Color,
			Members:    len(team.Members),
			Objectives: len(teamObjectives),
			Progress:   AverageProgress(teamObjectives),
		})
	}
	return result
}

func SummarizeActions(data *domain.OKRData) ActionSummary {
	if data == nil {
		return ActionSummary{}
	}

	summary := ActionSummary{
		Objectives:      len(data.Objectives),
		AverageProgress: AverageProgress(data.Objectives),
	}
	for _, obj := range data.Objectives {
		summary.Actions += len(obj.KeyActions)
		for _, action := range obj.KeyActions {
			switch domain.ParseActionStatus(string(action.Status)) {
			case domain.ActionCompleted:
				summary.Completed++
			case domain.ActionInProgress:
				summary.InProgress++
			}
		}
	}
	return summary
}

func roundMean(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}
