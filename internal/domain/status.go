package domain

import "strings"

type ObjectiveStatus string

const (
	StatusOnTrack   ObjectiveStatus = "on-track"
	StatusAtRisk    ObjectiveStatus = "at-risk"
	StatusBehind    ObjectiveStatus = "behind"
	StatusCompleted ObjectiveStatus = "completed"
)

// ObjectiveStatuses в порядке отображения на дашборде
var ObjectiveStatuses = []ObjectiveStatus{
	StatusOnTrack,
	StatusAtRisk,
	StatusBehind,
	StatusCompleted,
}

func (s ObjectiveStatus) Valid() bool {
	switch s {
	case StatusOnTrack, StatusAtRisk, StatusBehind, StatusCompleted:
		return true
	default:
		return false
	}
}

// Label возвращает подпись вида "ON TRACK"
func (s ObjectiveStatus) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(s), "-", " "))
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Rank используется для сортировки: high > medium > low > неизвестный
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

type ActionStatus string

const (
	ActionNotStarted ActionStatus = "not-started"
	ActionInProgress ActionStatus = "in-progress"
	ActionCompleted  ActionStatus = "completed"
	ActionBlocked    ActionStatus = "blocked"
)

func (s ActionStatus) Valid() bool {
	switch s {
	case ActionNotStarted, ActionInProgress, ActionCompleted, ActionBlocked:
		return true
	default:
		return false
	}
}

// ParseActionStatus сводит неизвестные и пустые значения к not-started
func ParseActionStatus(s string) ActionStatus {
	status := ActionStatus(strings.ToLower(strings.TrimSpace(s)))
	if status.Valid() {
		return status
	}
	return ActionNotStarted
}
