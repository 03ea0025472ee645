package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/niklvrr/okr-dashboard/internal/timeline"
	"go.uber.org/zap"
)

const (
	pageMargin      = 12.0
	generatedLayout = "January 02, 2006"
	dueLayout       = "Jan 02, 2006"

	taskColumnShare = 0.35
	weekHeaderH     = 9.0
	objectiveRowH   = 7.0
	actionRowH      = 5.5
	barH            = 3.6
	milestoneR      = 1.2
)

var ErrRender = errors.New("pdf render error")

type rgb struct{ r, g, b int }

var (
	palette = map[timeline.ColorKey]rgb{
		timeline.ColorNeutral: {156, 163, 175}, // #9ca3af
		timeline.ColorPrimary: {37, 99, 235},   // #2563EB
		timeline.ColorSuccess: {5, 150, 105},   // #059669
		timeline.ColorDanger:  {220, 38, 38},   // #dc2626
		timeline.ColorWarning: {245, 158, 11},  // #f59e0b
	}

	textDark  = rgb{31, 41, 55}
	textMuted = rgb{107, 114, 128}
	gridLine  = rgb{229, 231, 235}
	panelFill = rgb{248, 250, 252}
)

func colorOf(key timeline.ColorKey) rgb {
	if c, ok := palette[key]; ok {
		return c
	}
	return palette[timeline.ColorNeutral]
}

// PDFRenderer отрисовывает документы отчётов через fpdf
type PDFRenderer struct {
	log *zap.Logger
}

func NewPDFRenderer(log *zap.Logger) *PDFRenderer {
	return &PDFRenderer{
		log: log,
	}
}

func (r *PDFRenderer) RenderSummary(ctx context.Context, doc *SummaryDocument, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pdf := newDocument("P", doc.Title)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 2*pageMargin

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		setText(pdf, textMuted)
		pdf.CellFormat(0, 5, "OKR Management System - Confidential Report", "T", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// Заголовок
	pdf.SetFont("Helvetica", "B", 22)
	setText(pdf, textDark)
	pdf.CellFormat(contentW, 10, tr(doc.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	setText(pdf, textMuted)
	pdf.CellFormat(contentW, 6, "Generated on "+doc.GeneratedAt.Format(generatedLayout), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, tr(doc.Subtitle), "", 1, "L", false, 0, "")
	setDraw(pdf, palette[timeline.ColorPrimary])
	pdf.SetLineWidth(0.6)
	pdf.Line(pageMargin, pdf.GetY()+2, pageW-pageMargin, pdf.GetY()+2)
	pdf.Ln(6)

	// Краткая сводка
	sectionTitle(pdf, contentW, "Executive Summary")
	stats := []struct {
		value string
		label string
	}{
		{strconv.Itoa(doc.Stats.Total), "Total Objectives"},
		{strconv.Itoa(doc.Stats.Completed), "Completed"},
		{strconv.Itoa(doc.Stats.AtRisk), "At Risk"},
		{strconv.Itoa(doc.Stats.AverageProgress) + "%", "Avg Progress"},
	}
	cellW := contentW / float64(len(stats))
	setFill(pdf, panelFill)
	y := pdf.GetY()
	for i, s := range stats {
		pdf.SetXY(pageMargin+float64(i)*cellW, y)
		pdf.SetFont("Helvetica", "B", 18)
		setText(pdf, textDark)
		pdf.CellFormat(cellW-2, 10, s.value, "", 2, "C", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		setText(pdf, textMuted)
		pdf.CellFormat(cellW-2, 6, s.label, "", 0, "C", true, 0, "")
	}
	pdf.SetXY(pageMargin, y+20)

	// Цели
	sectionTitle(pdf, contentW, "Objectives Overview")
	for _, card := range doc.Objectives {
		pdf.SetFont("Helvetica", "B", 13)
		setText(pdf, textDark)
		pdf.MultiCell(contentW, 6, tr(card.Title), "", "L", false)
		pdf.SetFont("Helvetica", "", 10)
		setText(pdf, textMuted)
		pdf.MultiCell(contentW, 5, tr(card.Description), "", "L", false)

		meta := fmt.Sprintf("Owner: %s    Team: %s    Status: %s    Due: %s",
			card.Owner, card.Team, card.Status, card.DueDate.Format(dueLayout))
		pdf.CellFormat(contentW, 6, tr(meta), "", 1, "L", false, 0, "")

		progressBar(pdf, pageMargin, pdf.GetY()+1, contentW, 2.5, card.Progress)
		pdf.Ln(5)
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Progress: %d%%", card.Progress), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 10)
		setText(pdf, textDark)
		pdf.CellFormat(contentW, 6, fmt.Sprintf("Key Results (%d):", len(card.KeyResults)), "", 1, "L", false, 0, "")
		for _, kr := range card.KeyResults {
			pdf.SetFont("Helvetica", "", 9)
			setText(pdf, textDark)
			pdf.SetX(pageMargin + 4)
			pdf.CellFormat(contentW-4, 5, tr(kr.Title), "", 1, "L", false, 0, "")
			setText(pdf, textMuted)
			pdf.SetX(pageMargin + 4)
			line := fmt.Sprintf("Progress: %s/%s %s (%d%%)",
				formatValue(kr.CurrentValue), formatValue(kr.TargetValue), kr.Unit, kr.Progress)
			pdf.CellFormat(contentW-4, 5, tr(line), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	return r.output(pdf, w, "summary")
}

func (r *PDFRenderer) RenderGantt(ctx context.Context, doc *GanttDocument, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pdf := newDocument("L", doc.Title)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 2*pageMargin
	taskW := contentW * taskColumnShare
	weeks := len(doc.Layout.Weeks)
	cellW := (contentW - taskW) / float64(max(weeks, 1))
	timelineX := pageMargin + taskW
	bottom := pageH - 20

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 8)
		setText(pdf, textMuted)
		pdf.CellFormat(0, 5, "OKR Management System - Gantt Timeline Report - Confidential", "T", 0, "C", false, 0, "")
	})

	weekHeader := func() {
		y := pdf.GetY()
		pdf.SetFont("Helvetica", "B", 9)
		setText(pdf, textDark)
		pdf.SetXY(pageMargin, y)
		pdf.CellFormat(taskW, weekHeaderH, "Objectives & Key Actions", "B", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 7)
		setText(pdf, textMuted)
		for _, week := range doc.Layout.Weeks {
			x := timelineX + float64(week.Index)*cellW
			pdf.SetXY(x, y)
			pdf.CellFormat(cellW, weekHeaderH/2, "Week "+strconv.Itoa(week.Index+1), "", 2, "C", false, 0, "")
			pdf.CellFormat(cellW, weekHeaderH/2, week.Label, "B", 0, "C", false, 0, "")
		}
		pdf.SetXY(pageMargin, y+weekHeaderH+2)
	}

	ensureRoom := func(h float64) {
		if pdf.GetY()+h > bottom {
			pdf.AddPage()
			weekHeader()
		}
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	setText(pdf, textDark)
	pdf.CellFormat(contentW, 9, tr(doc.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	setText(pdf, textMuted)
	pdf.CellFormat(contentW, 5, tr(doc.Subtitle), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Generated on "+doc.GeneratedAt.Format(generatedLayout), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	weekHeader()

	for _, obj := range doc.Layout.Objectives {
		ensureRoom(objectiveRowH + actionRowH)

		// Строка цели с вехами
		y := pdf.GetY()
		setFill(pdf, panelFill)
		pdf.Rect(pageMargin, y, contentW, objectiveRowH, "F")
		pdf.SetFont("Helvetica", "B", 9)
		setText(pdf, textDark)
		pdf.SetXY(pageMargin+1, y)
		pdf.CellFormat(taskW-1, objectiveRowH, tr(fmt.Sprintf("%s (%d%%)", obj.Title, obj.Progress)), "", 0, "L", false, 0, "")
		weekGrid(pdf, timelineX, y, cellW, objectiveRowH, weeks)
		for _, m := range obj.Milestones {
			setFill(pdf, colorOf(m.Color))
			cx := timelineX + float64(m.WeekIndex)*cellW + m.Offset*cellW + milestoneR
			pdf.Circle(cx, y+objectiveRowH/2, milestoneR, "F")
		}
		pdf.SetXY(pageMargin, y+objectiveRowH+1)

		// Ключевые действия
		for _, action := range obj.Actions {
			ensureRoom(actionRowH)
			y := pdf.GetY()
			pdf.SetFont("Helvetica", "", 8)
			setText(pdf, textDark)
			pdf.SetXY(pageMargin+4, y)
			pdf.CellFormat(taskW-4, actionRowH, tr(fmt.Sprintf("%s (%d%%)", action.Title, action.Progress)), "", 0, "L", false, 0, "")
			weekGrid(pdf, timelineX, y, cellW, actionRowH, weeks)
			for _, span := range action.Spans {
				setFill(pdf, colorOf(span.Color))
				x := timelineX + float64(span.WeekIndex)*cellW + span.Offset*cellW
				pdf.Rect(x, y+(actionRowH-barH)/2, span.Width*cellW, barH, "F")
			}
			pdf.SetXY(pageMargin, y+actionRowH)
		}
		pdf.Ln(3)
	}

	// Легенда
	ensureRoom(40)
	pdf.Ln(2)
	y := pdf.GetY()
	legendW := contentW / float64(max(len(doc.Legend), 1))
	pdf.SetFont("Helvetica", "", 8)
	setText(pdf, textMuted)
	for i, item := range doc.Legend {
		x := pageMargin + float64(i)*legendW
		setFill(pdf, colorOf(item.Color))
		if item.Marker {
			pdf.Circle(x+3, y+2, 1.5, "F")
		} else {
			pdf.Rect(x, y+0.5, 6, 3, "F")
		}
		pdf.SetXY(x+8, y)
		pdf.CellFormat(legendW-8, 4, item.Label, "", 0, "L", false, 0, "")
	}
	pdf.SetXY(pageMargin, y+8)

	// Итоги квартала
	sectionTitle(pdf, contentW, "Quarter Summary")
	summary := []struct {
		value string
		label string
	}{
		{strconv.Itoa(doc.Summary.Objectives), "Total Objectives"},
		{strconv.Itoa(doc.Summary.Actions), "Key Actions"},
		{strconv.Itoa(doc.Summary.Completed), "Completed Actions"},
		{strconv.Itoa(doc.Summary.AverageProgress) + "%", "Average Progress"},
	}
	summaryW := contentW / float64(len(summary))
	y = pdf.GetY()
	setFill(pdf, panelFill)
	for i, s := range summary {
		pdf.SetXY(pageMargin+float64(i)*summaryW, y)
		pdf.SetFont("Helvetica", "B", 14)
		setText(pdf, textDark)
		pdf.CellFormat(summaryW-2, 8, s.value, "", 2, "C", true, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		setText(pdf, textMuted)
		pdf.CellFormat(summaryW-2, 5, s.label, "", 0, "C", true, 0, "")
	}

	return r.output(pdf, w, "gantt")
}

// output пишет документ целиком или возвращает ошибку, накопленную fpdf
func (r *PDFRenderer) output(pdf *fpdf.Fpdf, w io.Writer, kind string) error {
	if err := pdf.Error(); err != nil {
		r.log.Error("pdf layout failed", zap.String("kind", kind), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	if err := pdf.Output(w); err != nil {
		r.log.Error("pdf output failed", zap.String("kind", kind), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

func newDocument(orientation, title string) *fpdf.Fpdf {
	pdf := fpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, 18)
	pdf.SetTitle(title, true)
	pdf.SetCreator("okr-dashboard", true)
	return pdf
}

func sectionTitle(pdf *fpdf.Fpdf, w float64, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	setText(pdf, textDark)
	pdf.CellFormat(w, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(3)
}

func weekGrid(pdf *fpdf.Fpdf, x, y, cellW, h float64, weeks int) {
	setDraw(pdf, gridLine)
	pdf.SetLineWidth(0.2)
	for i := 0; i <= weeks; i++ {
		lx := x + float64(i)*cellW
		pdf.Line(lx, y, lx, y+h)
	}
}

func progressBar(pdf *fpdf.Fpdf, x, y, w, h float64, progress int) {
	progress = min(max(progress, 0), 100)
	setFill(pdf, gridLine)
	pdf.Rect(x, y, w, h, "F")
	setFill(pdf, palette[timeline.ColorPrimary])
	pdf.Rect(x, y, w*float64(progress)/100, h, "F")
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func setText(pdf *fpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }

func setFill(pdf *fpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }

func setDraw(pdf *fpdf.Fpdf, c rgb) { pdf.SetDrawColor(c.r, c.g, c.b) }
