package timeline

import "github.com/niklvrr/okr-dashboard/internal/domain"

const weekLabelLayout = "Jan 02"

type WeekHeader struct {
	Index int         `json:"index" yaml:"index"`
	Label string      `json:"label" yaml:"label"`
	Start domain.Date `json:"start" yaml:"start"`
	End   domain.Date `json:"end" yaml:"end"`
}

type MilestonePoint struct {
	MilestoneId string `json:"milestone_id" yaml:"milestone_id"`
	KeyResultId string `json:"key_result_id" yaml:"key_result_id"`
	Title       string `json:"title" yaml:"title"`
	Completed   bool   `json:"completed" yaml:"completed"`
	Point       `yaml:",inline"`
}

type ActionRow struct {
	ActionId string              `json:"action_id" yaml:"action_id"`
	Title    string              `json:"title" yaml:"title"`
	Progress int                 `json:"progress" yaml:"progress"`
	Status   domain.ActionStatus `json:"status" yaml:"status"`
	Spans    []Span              `json:"spans" yaml:"spans"`
}

type ObjectiveRow struct {
	ObjectiveId string           `json:"objective_id" yaml:"objective_id"`
	Title       string           `json:"title" yaml:"title"`
	Progress    int              `json:"progress" yaml:"progress"`
	Milestones  []MilestonePoint `json:"milestones" yaml:"milestones"`
	Actions     []ActionRow      `json:"actions" yaml:"actions"`
}

type Layout struct {
	QuarterStart domain.Date    `json:"quarter_start" yaml:"quarter_start"`
	QuarterEnd   domain.Date    `json:"quarter_end" yaml:"quarter_end"`
	Quarter      string         `json:"quarter" yaml:"quarter"`
	Weeks        []WeekHeader   `json:"weeks" yaml:"weeks"`
	Objectives   []ObjectiveRow `json:"objectives" yaml:"objectives"`
}

func (g Grid) Headers() []WeekHeader {
	headers := make([]WeekHeader, 0, g.weeks)
	for i := 0; i < g.weeks; i++ {
		weekStart, weekEnd := g.Week(i)
		headers = append(headers, WeekHeader{
			Index: i,
			Label: weekStart.Format(weekLabelLayout),
			Start: weekStart,
			End:   weekEnd,
		})
	}
	return headers
}

// Layout строит строки диаграммы для всех целей снимка в исходном порядке
func (g Grid) Layout(data *domain.OKRData) Layout {
	windowStart, windowEnd := g.Window()
	layout := Layout{
		QuarterStart: windowStart,
		QuarterEnd:   windowEnd,
		Quarter:      g.QuarterLabel(),
		Weeks:        g.Headers(),
		Objectives:   []ObjectiveRow{},
	}
	if data == nil {
		return layout
	}

	for _, obj := range data.Objectives {
		layout.Objectives = append(layout.Objectives, g.objectiveRow(obj))
	}
	return layout
}

func (g Grid) objectiveRow(obj domain.Objective) ObjectiveRow {
	row := ObjectiveRow{
		ObjectiveId: obj.Id,
		Title:       obj.Title,
		Progress:    obj.Progress,
		Milestones:  []MilestonePoint{},
		Actions:     make([]ActionRow, 0, len(obj.KeyActions)),
	}

	for _, kr := range obj.KeyResults {
		for _, m := range kr.Milestones {
			point, ok := g.Point(m.Date, MilestoneColor(m.Completed))
			if !ok {
				continue
			}
			row.Milestones = append(row.Milestones, MilestonePoint{
				MilestoneId: m.Id,
				KeyResultId: kr.Id,
				Title:       m.Title,
				Completed:   m.Completed,
				Point:       point,
			})
		}
	}

	for _, action := range obj.KeyActions {
		status := domain.ParseActionStatus(string(action.Status))
		spans := g.Spans(action.StartDate, action.EndDate, ActionColor(status))
		if spans == nil {
			spans = []Span{}
		}
		row.Actions = append(row.Actions, ActionRow{
			ActionId: action.Id,
			Title:    action.Title,
			Progress: action.Progress,
			Status:   status,
			Spans:    spans,
		})
	}

	return row
}
