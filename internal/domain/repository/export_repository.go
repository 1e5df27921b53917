package repository

import (
	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	// Summary and chart datasets as flat files
	ExportSummaryToCSV(summary entity.CountrySummary, filename string, outputDir string) (string, error)
	ExportChartToCSV(chart entity.TopCountriesChart, filename string, outputDir string) (string, error)

	// Whole report
	ExportReportToJSON(report entity.FreshnessReport, filename string, outputDir string) (string, error)
	ExportReportToPDF(report entity.FreshnessReport, filename string, outputDir string) (string, error)
	ExportReportToHTML(report entity.FreshnessReport, filename string, outputDir string) (string, error)

	// Vega-Lite chart document
	ExportChartToVegaLite(chart entity.TopCountriesChart, filename string, outputDir string) (string, error)
}
