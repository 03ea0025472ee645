package response

import "github.com/niklvrr/okr-dashboard/internal/timeline"

type TimelineResponse struct {
	timeline.Layout `yaml:",inline"`
}
