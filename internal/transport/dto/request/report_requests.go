package request

type GenerateReportRequest struct {
	Kind         string `json:"kind"`
	QuarterStart string `json:"quarter_start"`
	Weeks        string `json:"weeks"`
}
