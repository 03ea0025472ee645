package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseActionStatus(t *testing.T) {
	tests := []struct {
		in   string
		want ActionStatus
	}{
		{"not-started", ActionNotStarted},
		{"in-progress", ActionInProgress},
		{"Completed", ActionCompleted},
		{" blocked ", ActionBlocked},
		{"", ActionNotStarted},
		{"paused", ActionNotStarted},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseActionStatus(tt.in))
		})
	}
}

func TestObjectiveStatus_Label(t *testing.T) {
	assert.Equal(t, "ON TRACK", StatusOnTrack.Label())
	assert.Equal(t, "COMPLETED", StatusCompleted.Label())
	assert.False(t, ObjectiveStatus("unknown").Valid())
}

func TestPriority_Rank(t *testing.T) {
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Equal(t, 0, Priority("urgent").Rank())
	assert.False(t, Priority("urgent").Valid())
}

func TestOKRData_Clone(t *testing.T) {
	src := &OKRData{
		Objectives: []Objective{{
			Id:         "1",
			KeyResults: []KeyResult{{Id: "1-1", Milestones: []Milestone{{Id: "m1"}}}},
			KeyActions: []KeyAction{{Id: "a1", Dependencies: []string{"a0"}}},
		}},
		Teams: []Team{{Id: "t1", Members: []string{"John Doe"}}},
	}

	cp := src.Clone()
	cp.Objectives[0].KeyResults[0].Milestones[0].Completed = true
	cp.Objectives[0].KeyActions[0].Dependencies[0] = "changed"
	cp.Teams[0].Members[0] = "changed"
	cp.Objectives[0].Title = "changed"

	assert.False(t, src.Objectives[0].KeyResults[0].Milestones[0].Completed)
	assert.Equal(t, "a0", src.Objectives[0].KeyActions[0].Dependencies[0])
	assert.Equal(t, "John Doe", src.Teams[0].Members[0])
	assert.Empty(t, src.Objectives[0].Title)

	var nilData *OKRData
	assert.Nil(t, nilData.Clone())
}
