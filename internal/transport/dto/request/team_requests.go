package request

type GetTeamRequest struct {
	TeamName string `json:"team_name"`
}
