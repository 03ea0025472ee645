package timeline

import (
	"testing"
	"time"

	"github.com/niklvrr/okr-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() *domain.OKRData {
	return &domain.OKRData{
		Objectives: []domain.Objective{
			{
				Id:       "1",
				Title:    "Improve Product Performance",
				Progress: 75,
				KeyResults: []domain.KeyResult{
					{
						Id: "1-1",
						Milestones: []domain.Milestone{
							{Id: "1-1-m1", Title: "Baseline Measurement", Date: date(time.January, 7), Completed: true},
							{Id: "1-1-m2", Title: "Out of window", Date: date(time.March, 31)},
						},
					},
					{
						Id: "1-2",
						Milestones: []domain.Milestone{
							{Id: "1-2-m1", Title: "Audit Complete", Date: date(time.January, 28)},
						},
					},
				},
				KeyActions: []domain.KeyAction{
					{Id: "1-a1", Title: "Audit", StartDate: date(time.January, 1), EndDate: date(time.January, 14), Status: domain.ActionCompleted, Progress: 100},
					{Id: "1-a2", Title: "Broken", StartDate: date(time.February, 10), EndDate: date(time.February, 1), Status: domain.ActionStatus("weird")},
				},
			},
			{
				Id:    "2",
				Title: "No actions",
			},
		},
	}
}

func TestGrid_Layout(t *testing.T) {
	g := newQ1Grid(t)

	layout := g.Layout(sampleData())

	assert.Equal(t, "Q1 2025", layout.Quarter)
	require.Len(t, layout.Weeks, 12)
	assert.Equal(t, "Jan 01", layout.Weeks[0].Label)
	assert.Equal(t, "Jan 15", layout.Weeks[2].Label)

	require.Len(t, layout.Objectives, 2)
	row := layout.Objectives[0]
	assert.Equal(t, "1", row.ObjectiveId)
	assert.Equal(t, 75, row.Progress)

	require.Len(t, row.Milestones, 2)
	assert.Equal(t, "1-1-m1", row.Milestones[0].MilestoneId)
	assert.Equal(t, 0, row.Milestones[0].WeekIndex)
	assert.InDelta(t, 6.0/7, row.Milestones[0].Offset, 1e-9)
	assert.Equal(t, ColorSuccess, row.Milestones[0].Color)
	assert.Equal(t, "1-2", row.Milestones[1].KeyResultId)
	assert.Equal(t, ColorWarning, row.Milestones[1].Color)

	require.Len(t, row.Actions, 2)
	assert.Len(t, row.Actions[0].Spans, 2)
	assert.Equal(t, ColorSuccess, row.Actions[0].Spans[0].Color)

	// некорректный диапазон и неизвестный статус
	assert.Empty(t, row.Actions[1].Spans)
	assert.NotNil(t, row.Actions[1].Spans)
	assert.Equal(t, domain.ActionNotStarted, row.Actions[1].Status)

	assert.Empty(t, layout.Objectives[1].Actions)
	assert.Empty(t, layout.Objectives[1].Milestones)
}

func TestGrid_Layout_Idempotent(t *testing.T) {
	g := newQ1Grid(t)
	data := sampleData()

	first := g.Layout(data)
	second := g.Layout(data)

	assert.Equal(t, first, second)
	assert.Equal(t, sampleData(), data)
}

func TestGrid_Layout_NilData(t *testing.T) {
	g := newQ1Grid(t)

	layout := g.Layout(nil)

	assert.Len(t, layout.Weeks, 12)
	assert.Empty(t, layout.Objectives)
}

func TestGrid_Layout_MilestoneAtMostOnce(t *testing.T) {
	g := newQ1Grid(t)
	data := sampleData()

	layout := g.Layout(data)

	seen := map[string]int{}
	for _, m := range layout.Objectives[0].Milestones {
		seen[m.MilestoneId]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, id)
	}
}
