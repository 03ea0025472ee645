package response

import "github.com/niklvrr/okr-dashboard/internal/analytics"

type StatsResponse struct {
	analytics.Stats `yaml:",inline"`
}

type ChartsResponse struct {
	analytics.Charts `yaml:",inline"`
}
