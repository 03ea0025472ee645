package dto

type GetTeamDTO struct {
	TeamName string `json:"team_name"`
}
