// Package report собирает модели документов отчётов и отрисовывает их в PDF.
package report

import (
	"fmt"
	"time"

	"github.com/niklvrr/okr-dashboard/internal/analytics"
	"github.com/niklvrr/okr-dashboard/internal/domain"
	"github.com/niklvrr/okr-dashboard/internal/timeline"
)

type Kind string

const (
	KindQuarterly Kind = "quarterly"
	KindGantt     Kind = "gantt"
	KindTeam      Kind = "team"
	KindExecutive Kind = "executive"
)

const filenameDateLayout = "2006-01-02"

type Descriptor struct {
	Kind        Kind   `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
	filePrefix  string
}

// Filename возвращает имя файла для скачивания на указанную дату
func (d Descriptor) Filename(now time.Time) string {
	return d.filePrefix + "-" + now.Format(filenameDateLayout) + ".pdf"
}

var catalog = []Descriptor{
	{
		Kind:        KindQuarterly,
		Title:       "Quarterly OKR Report",
		Description: "Comprehensive overview of all objectives and key results",
		filePrefix:  "OKR-Report",
	},
	{
		Kind:        KindGantt,
		Title:       "Gantt Timeline Report",
		Description: "Week-by-week visual timeline showing OKRs and key actions with milestones",
		filePrefix:  "OKR-Gantt-Timeline",
	},
	{
		Kind:        KindTeam,
		Title:       "Team Performance Report",
		Description: "Detailed analysis of team-specific objectives and progress",
		filePrefix:  "OKR-Team-Report",
	},
	{
		Kind:        KindExecutive,
		Title:       "Executive Summary",
		Description: "High-level overview for leadership and stakeholders",
		filePrefix:  "OKR-Executive-Summary",
	},
}

func Catalog() []Descriptor {
	return append([]Descriptor(nil), catalog...)
}

func Lookup(kind string) (Descriptor, bool) {
	for _, d := range catalog {
		if string(d.Kind) == kind {
			return d, true
		}
	}
	return Descriptor{}, false
}

type KeyResultLine struct {
	Title        string
	CurrentValue float64
	TargetValue  float64
	Unit         string
	Progress     int
}

type ObjectiveCard struct {
	Title       string
	Description string
	Owner       string
	Team        string
	Status      string
	DueDate     domain.Date
	Progress    int
	KeyResults  []KeyResultLine
}

type SummaryDocument struct {
	Title       string
	Subtitle    string
	GeneratedAt time.Time
	Stats       analytics.Stats
	Objectives  []ObjectiveCard
}

type LegendItem struct {
	Label  string
	Color  timeline.ColorKey
	Marker bool
}

var ganttLegend = []LegendItem{
	{Label: "Completed", Color: timeline.ColorSuccess},
	{Label: "In Progress", Color: timeline.ColorPrimary},
	{Label: "Not Started", Color: timeline.ColorNeutral},
	{Label: "Blocked", Color: timeline.ColorDanger},
	{Label: "Milestones", Color: timeline.ColorWarning, Marker: true},
}

type GanttDocument struct {
	Title       string
	Subtitle    string
	GeneratedAt time.Time
	Layout      timeline.Layout
	Legend      []LegendItem
	Summary     analytics.ActionSummary
}

func BuildSummary(d Descriptor, data *domain.OKRData, now time.Time) *SummaryDocument {
	if data == nil {
		data = &domain.OKRData{}
	}

	doc := &SummaryDocument{
		Title:       d.Title,
		Subtitle:    "Company Performance Overview",
		GeneratedAt: now,
		Stats:       analytics.Compute(data),
		Objectives:  make([]ObjectiveCard, 0, len(data.Objectives)),
	}

	for _, obj := range data.Objectives {
		card := ObjectiveCard{
			Title:       obj.Title,
			Description: obj.Description,
			Owner:       obj.Owner,
			Team:        obj.Team,
			Status:      obj.Status.Label(),
			DueDate:     obj.DueDate,
			Progress:    obj.Progress,
			KeyResults:  make([]KeyResultLine, 0, len(obj.KeyResults)),
		}
		for _, kr := range obj.KeyResults {
			card.KeyResults = append(card.KeyResults, KeyResultLine{
				Title:        kr.Title,
				CurrentValue: kr.CurrentValue,
				TargetValue:  kr.TargetValue,
				Unit:         kr.Unit,
				Progress:     kr.Progress,
			})
		}
		doc.Objectives = append(doc.Objectives, card)
	}
	return doc
}

func BuildGantt(grid timeline.Grid, data *domain.OKRData, now time.Time) *GanttDocument {
	layout := grid.Layout(data)
	return &GanttDocument{
		Title:       "OKR Gantt Timeline - " + layout.Quarter,
		Subtitle:    formatWeeks(grid.Weeks()) + " Project Timeline & Key Actions",
		GeneratedAt: now,
		Layout:      layout,
		Legend:      append([]LegendItem(nil), ganttLegend...),
		Summary:     analytics.SummarizeActions(data),
	}
}

func formatWeeks(n int) string {
	return fmt.Sprintf("%d-Week", n)
}
