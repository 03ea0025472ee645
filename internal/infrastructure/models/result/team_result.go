package result

import "github.com/niklvrr/okr-dashboard/internal/domain"

type GetTeamResult struct {
	Team       domain.Team
	Objectives []domain.Objective
}
