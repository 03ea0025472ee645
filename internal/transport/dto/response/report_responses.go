package response

import "github.com/niklvrr/okr-dashboard/internal/report"

type ListReportsResponse struct {
	Reports []report.Descriptor `json:"reports"`
}

// ReportResponse готовый документ. Content отдаётся как есть, без JSON
type ReportResponse struct {
	ReportId    string
	Kind        string
	Filename    string
	ContentType string
	Content     []byte
}
