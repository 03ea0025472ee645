package request

type ListObjectivesRequest struct {
	Search string `json:"search"`
	Status string `json:"status"`
	Team   string `json:"team"`
	SortBy string `json:"sort_by"`
}

type GetObjectiveRequest struct {
	ObjectiveId string `json:"objective_id"`
}
