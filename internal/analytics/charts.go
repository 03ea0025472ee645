package analytics

import (
	"github.com/niklvrr/okr-dashboard/internal/domain"
)

const (
	ChartPie = "pie"
	ChartBar = "bar"

	chartLabelLimit = 20
	progressColor   = "#2563EB"
)

var statusChartStyle = map[domain.ObjectiveStatus]struct {
	label string
	color string
}{
	domain.StatusOnTrack:   {"On Track", "#059669"},
	domain.StatusAtRisk:    {"At Risk", "#F59E0B"},
	domain.StatusBehind:    {"Behind", "#DC2626"},
	domain.StatusCompleted: {"Completed", "#2563EB"},
}

// ChartConfig описывает диаграмму в готовом для отрисовки виде
type ChartConfig struct {
	ChartType  string        `json:"chart_type" yaml:"chart_type"`
	Title      string        `json:"title" yaml:"title"`
	XAxis      string        `json:"x_axis,omitempty" yaml:"x_axis,omitempty"`
	YAxis      string        `json:"y_axis,omitempty" yaml:"y_axis,omitempty"`
	YMax       float64       `json:"y_max,omitempty" yaml:"y_max,omitempty"`
	Series     []ChartSeries `json:"series" yaml:"series"`
	ShowLegend bool          `json:"show_legend" yaml:"show_legend"`
	ShowGrid   bool          `json:"show_grid" yaml:"show_grid"`
}

type ChartSeries struct {
	Name  string       `json:"name" yaml:"name"`
	Data  []ChartPoint `json:"data" yaml:"data"`
	Color string       `json:"color,omitempty" yaml:"color,omitempty"`
}

type ChartPoint struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
	Group string  `json:"group,omitempty" yaml:"group,omitempty"`
}

type Charts struct {
	StatusDistribution  *ChartConfig `json:"status_distribution" yaml:"status_distribution"`
	ProgressByObjective *ChartConfig `json:"progress_by_objective" yaml:"progress_by_objective"`
}

func BuildCharts(data *domain.OKRData) Charts {
	if data == nil {
		data = &domain.OKRData{}
	}
	return Charts{
		StatusDistribution:  BuildStatusChart(data.Objectives),
		ProgressByObjective: BuildProgressChart(data.Objectives),
	}
}

func BuildStatusChart(objectives []domain.Objective) *ChartConfig {
	counts := CountByStatus(objectives)

	points := make([]ChartPoint, 0, len(domain.ObjectiveStatuses))
	for _, status := range domain.ObjectiveStatuses {
		style := statusChartStyle[status]
		points = append(points, ChartPoint{
			Label: style.label,
			Value: float64(counts[status]),
			Color: style.color,
		})
	}

	return &ChartConfig{
		ChartType:  ChartPie,
		Title:      "Status Distribution",
		Series:     []ChartSeries{{Name: "Objectives", Data: points}},
		ShowLegend: true,
	}
}

func BuildProgressChart(objectives []domain.Objective) *ChartConfig {
	points := make([]ChartPoint, 0, len(objectives))
	for _, obj := range objectives {
		points = append(points, ChartPoint{
			Label: truncateLabel(obj.Title),
			Value: float64(obj.Progress),
			Group: obj.Team,
		})
	}

	return &ChartConfig{
		ChartType: ChartBar,
		Title:     "Progress by Objective",
		XAxis:     "Objective",
		YAxis:     "Progress",
		YMax:      100,
		Series: []ChartSeries{{
			Name:  "progress",
			Data:  points,
			Color: progressColor,
		}},
		ShowGrid: true,
	}
}

func truncateLabel(title string) string {
	runes := []rune(title)
	if len(runes) > chartLabelLimit {
		runes = runes[:chartLabelLimit]
	}
	return string(runes) + "..."
}
