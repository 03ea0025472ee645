package response

import (
	"github.com/niklvrr/okr-dashboard/internal/analytics"
	"github.com/niklvrr/okr-dashboard/internal/domain"
)

type ListTeamsResponse struct {
	Teams []analytics.TeamProgress `json:"teams"`
}

type GetTeamResponse struct {
	TeamId     string             `json:"team_id"`
	TeamName   string             `json:"team_name"`
	Color      string             `json:"color"`
	Members    []string           `json:"members"`
	Progress   int                `json:"progress"`
	Objectives []domain.Objective `json:"objectives"`
}
