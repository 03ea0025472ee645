// Package timeline раскладывает ключевые действия и вехи на фиксированную
// сетку недель. Результат содержит только нормированные координаты внутри
// ячейки недели и ключи цвета, отрисовка остаётся за вызывающей стороной.
package timeline

import (
	"errors"
	"fmt"

	"github.com/niklvrr/okr-dashboard/internal/domain"
)

const (
	DefaultWeekCount = 12
	// MaxWeekCount год недель, больше сетка не строится
	MaxWeekCount = 52
	daysPerWeek  = 7
)

var ErrInvalidWeekCount = errors.New("week count must be at least 1")

type ColorKey string

const (
	ColorNeutral ColorKey = "neutral"
	ColorPrimary ColorKey = "primary"
	ColorSuccess ColorKey = "success"
	ColorDanger  ColorKey = "danger"
	ColorWarning ColorKey = "warning"
)

// Span часть отрезка, попавшая в одну неделю
type Span struct {
	WeekIndex int      `json:"week_index" yaml:"week_index"`
	Offset    float64  `json:"offset" yaml:"offset"`
	Width     float64  `json:"width" yaml:"width"`
	Color     ColorKey `json:"color" yaml:"color"`
}

// Point положение вехи внутри недели
type Point struct {
	WeekIndex int      `json:"week_index" yaml:"week_index"`
	Offset    float64  `json:"offset" yaml:"offset"`
	Color     ColorKey `json:"color" yaml:"color"`
}

type Grid struct {
	start domain.Date
	weeks int
}

func NewGrid(quarterStart domain.Date, weeks int) (Grid, error) {
	if weeks < 1 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrInvalidWeekCount, weeks)
	}
	if quarterStart.IsZero() {
		return Grid{}, fmt.Errorf("%w: empty quarter start", domain.ErrInvalidDate)
	}
	return Grid{start: quarterStart, weeks: weeks}, nil
}

func (g Grid) Start() domain.Date { return g.start }

func (g Grid) Weeks() int { return g.weeks }

// Week возвращает границы недели i включительно
func (g Grid) Week(i int) (domain.Date, domain.Date) {
	weekStart := g.start.AddDays(i * daysPerWeek)
	return weekStart, weekStart.AddDays(daysPerWeek - 1)
}

// Window возвращает первый и последний день всей сетки
func (g Grid) Window() (domain.Date, domain.Date) {
	return g.start, g.start.AddDays(g.weeks*daysPerWeek - 1)
}

// Spans разбивает диапазон [from, to] по неделям. Каждая неделя считается
// независимо в своих локальных координатах. При to < from ничего не выдаётся.
func (g Grid) Spans(from, to domain.Date, color ColorKey) []Span {
	if to.Before(from) {
		return nil
	}

	var spans []Span
	for i := 0; i < g.weeks; i++ {
		weekStart, weekEnd := g.Week(i)
		if to.Before(weekStart) || from.After(weekEnd) {
			continue
		}

		overlapStart := domain.MaxDate(from, weekStart)
		overlapEnd := domain.MinDate(to, weekEnd)

		spans = append(spans, Span{
			WeekIndex: i,
			Offset:    float64(max(0, overlapStart.DaysSince(weekStart))) / daysPerWeek,
			Width:     float64(overlapEnd.DaysSince(overlapStart)+1) / daysPerWeek,
			Color:     color,
		})
	}
	return spans
}

// Point находит неделю, в которую попадает дата. Вне сетки возвращает false
func (g Grid) Point(date domain.Date, color ColorKey) (Point, bool) {
	for i := 0; i < g.weeks; i++ {
		weekStart, weekEnd := g.Week(i)
		if date.Before(weekStart) || date.After(weekEnd) {
			continue
		}
		return Point{
			WeekIndex: i,
			Offset:    float64(date.DaysSince(weekStart)) / daysPerWeek,
			Color:     color,
		}, true
	}
	return Point{}, false
}

func ActionColor(status domain.ActionStatus) ColorKey {
	switch status {
	case domain.ActionInProgress:
		return ColorPrimary
	case domain.ActionCompleted:
		return ColorSuccess
	case domain.ActionBlocked:
		return ColorDanger
	default:
		return ColorNeutral
	}
}

func MilestoneColor(completed bool) ColorKey {
	if completed {
		return ColorSuccess
	}
	return ColorWarning
}

// QuarterLabel возвращает подпись вида "Q1 2025" для начала сетки
func (g Grid) QuarterLabel() string {
	t := g.start.Time()
	return fmt.Sprintf("Q%d %d", (int(t.Month())-1)/3+1, t.Year())
}
