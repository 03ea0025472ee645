package response

import "github.com/niklvrr/okr-dashboard/internal/domain"

type ListObjectivesResponse struct {
	Objectives      []domain.Objective `json:"objectives"`
	Count           int                `json:"count"`
	Total           int                `json:"total"`
	AverageProgress int                `json:"average_progress"`
}

type GetObjectiveResponse struct {
	Objective *domain.Objective `json:"objective"`
}
