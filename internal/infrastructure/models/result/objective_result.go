package result

import "github.com/niklvrr/okr-dashboard/internal/domain"

type ListObjectivesResult struct {
	Objectives []domain.Objective
	// Total количество целей в снимке до фильтрации
	Total int
}
