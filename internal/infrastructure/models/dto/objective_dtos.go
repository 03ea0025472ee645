package dto

import "github.com/niklvrr/okr-dashboard/internal/domain"

type GetObjectiveDTO struct {
	ObjectiveId string `json:"objective_id"`
}

// ListObjectivesDTO пустые поля означают отсутствие фильтра
type ListObjectivesDTO struct {
	Search string                 `json:"search"`
	Status domain.ObjectiveStatus `json:"status"`
	Team   string                 `json:"team"`
	SortBy string                 `json:"sort_by"`
}
