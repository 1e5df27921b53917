package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/entity"
	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
)

const (
	pdfPageWidth   = 277.0 // A4 paisagem menos margens
	pdfPageBottom  = 190.0
	pdfChartHeight = 100.0
	pdfRowHeight   = 7.0
)

func (r *ExportRepositoryImpl) ExportReportToPDF(report entity.FreshnessReport, filename, outputDir string) (string, error) {
	if report.Summary == nil && report.Chart == nil {
		return "", types.ErrNothingToRender
	}

	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by Brand Freshness Dashboard (Go) | %s", report.GeneratedAt.Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFillColor(40, 40, 40)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  "+report.Presentation.PageTitle), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(50, 50, 50)
	pdf.CellFormat(0, 8, tr("  Source: "+cleanRichTags(report.Source)), "", 1, "L", true, 0, "")
	pdf.Ln(6)

	if report.Summary != nil {
		drawSectionTitle(pdf, tr, "Country Summary")
		drawSummaryTable(pdf, tr, *report.Summary)
		pdf.Ln(6)
	}

	if report.Chart != nil {
		if report.Summary != nil {
			pdf.AddPage()
		}
		drawSectionTitle(pdf, tr, report.Chart.Spec.Title)
		drawStackedChart(pdf, tr, *report.Chart)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func drawSectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, tr(title))
	pdf.Ln(7)
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+pdfPageWidth, pdf.GetY())
	pdf.Ln(4)
}

func drawSummaryTable(pdf *gofpdf.Fpdf, tr func(string) string, summary entity.CountrySummary) {
	headers := summaryHeaders(summary.Table)
	if len(headers) == 0 {
		return
	}
	colWidth := pdfPageWidth / float64(len(headers))
	stripeR, stripeG, stripeB := hexToRGB(summary.Table.StripeColor)

	drawHeader := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetTextColor(50, 50, 50)
		for i, h := range headers {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(colWidth, pdfRowHeight, tr(h), "B", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	drawHeader()
	pdf.SetFont("Arial", "", 9)
	for i, row := range summary.Rows {
		if pdf.GetY()+pdfRowHeight > pdfPageBottom {
			pdf.AddPage()
			drawHeader()
			pdf.SetFont("Arial", "", 9)
		}

		striped := i%2 == 0
		if striped {
			pdf.SetFillColor(stripeR, stripeG, stripeB)
		}
		for j, cell := range summaryRecord(summary.Table, row) {
			align := "R"
			if j == 0 {
				align = "L"
			}
			pdf.CellFormat(colWidth, pdfRowHeight, tr(cell), "", 0, align, striped, 0, "")
		}
		pdf.Ln(-1)
	}
}

// drawStackedChart desenha as barras empilhadas com retângulos, base "0-30d" embaixo.
func drawStackedChart(pdf *gofpdf.Fpdf, tr func(string) string, chart entity.TopCountriesChart) {
	if len(chart.Categories) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.Cell(0, 8, "No countries to display.")
		pdf.Ln(-1)
		return
	}

	left := pdf.GetX() + 12
	top := pdf.GetY() + 2
	width := pdfPageWidth - 12
	bottom := top + pdfChartHeight
	yMin, yMax := chart.Spec.YDomain[0], chart.Spec.YDomain[1]
	if yMax <= yMin {
		yMin, yMax = 0, 100
	}
	scale := pdfChartHeight / (yMax - yMin)

	// eixo Y com marcas a cada 20%
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFont("Arial", "", 7)
	pdf.SetTextColor(100, 100, 100)
	for tick := yMin; tick <= yMax; tick += (yMax - yMin) / 5 {
		y := bottom - (tick-yMin)*scale
		pdf.Line(left, y, left+width, y)
		pdf.Text(left-10, y+1, fmt.Sprintf("%.0f", tick))
	}

	segments := make(map[string][]entity.ChartPoint, len(chart.Categories))
	for _, p := range chart.Points {
		segments[p.CountryCode] = append(segments[p.CountryCode], p)
	}

	slot := width / float64(len(chart.Categories))
	barWidth := slot * 0.7
	for i, country := range chart.Categories {
		x := left + float64(i)*slot + (slot-barWidth)/2
		y := bottom
		for _, band := range stackFromBase(chart.Spec.ColorDomain) {
			for _, p := range segments[country] {
				if p.AgeBand != band || p.PctOfBrands <= 0 {
					continue
				}
				h := p.PctOfBrands * scale
				if y-h < top {
					h = y - top
				}
				cr, cg, cb := hexToRGB(bandPalette[band])
				pdf.SetFillColor(cr, cg, cb)
				pdf.Rect(x, y-h, barWidth, h, "F")
				y -= h
			}
		}

		pdf.SetFont("Arial", "", float64(max(chart.Spec.XLabelFontSize-3, 5)))
		pdf.SetTextColor(50, 50, 50)
		label := tr(country)
		pdf.Text(x+(barWidth-pdf.GetStringWidth(label))/2, bottom+4, label)
	}

	// legenda
	pdf.SetY(bottom + 8)
	pdf.SetX(left)
	pdf.SetFont("Arial", "", 8)
	for _, band := range chart.Spec.ColorDomain {
		cr, cg, cb := hexToRGB(bandPalette[band])
		pdf.SetFillColor(cr, cg, cb)
		pdf.Rect(pdf.GetX(), pdf.GetY()+1.5, 4, 4, "F")
		pdf.SetX(pdf.GetX() + 5)
		pdf.CellFormat(20, 7, tr(strings.TrimSpace(string(band))), "", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

// stackFromBase inverte a sequência de cores: a última banda fica na base da barra.
func stackFromBase(domain []entity.AgeBand) []entity.AgeBand {
	ordered := make([]entity.AgeBand, 0, len(domain))
	for i := len(domain) - 1; i >= 0; i-- {
		ordered = append(ordered, domain[i])
	}
	return ordered
}
