package export

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/entity"
	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
)

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"striped": func(i int) bool { return i%2 == 0 },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Presentation.PageTitle}}</title>
<style>
body { font-family: "Source Sans Pro", Arial, sans-serif; margin: 0; color: #31333f; }
main { margin: 0 auto; {{if .Presentation.WideLayout}}max-width: none;{{else}}max-width: 960px;{{end}} {{if .Presentation.CompactPadding}}padding: 0 1rem;{{else}}padding: 2rem 1rem;{{end}} }
header.page, footer.page { padding: 0.5rem 1rem; background: #f0f2f6; font-size: 0.85rem; }
table.summary { border-collapse: collapse; margin-bottom: 1.5rem; }
table.summary th, table.summary td { padding: 4px 10px; border-bottom: 1px solid #e6e9ef; text-align: right; }
table.summary th:first-child, table.summary td:first-child { text-align: left; }
table.summary tr.stripe td { background-color: {{.StripeColor}}; }
#chart { width: 100%; }
</style>
</head>
<body>
{{if not .Presentation.HideHeader}}<header class="page">{{.Presentation.PageTitle}} | source: {{.Source}}</header>
{{end}}<main>
{{if .Summary}}<table class="summary">
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range $i, $row := .Rows}}<tr{{if striped $i}} class="stripe"{{end}}>{{range $row}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
{{end}}{{if .Chart}}<p>{{.ChartTitle}}</p>
<div id="chart"></div>
<script src="https://cdn.jsdelivr.net/npm/vega@5"></script>
<script src="https://cdn.jsdelivr.net/npm/vega-lite@5"></script>
<script src="https://cdn.jsdelivr.net/npm/vega-embed@6"></script>
<script>
const spec = {{.Spec}};
vegaEmbed("#chart", spec, {actions: {{not .Presentation.HideToolbar}}});
</script>
{{end}}</main>
{{if not .Presentation.HideFooter}}<footer class="page">Generated by Brand Freshness Dashboard (Go) | {{.GeneratedAt}}</footer>
{{end}}</body>
</html>
`))

type htmlReport struct {
	Presentation entity.PresentationConfig
	Source       string
	GeneratedAt  string
	Summary      bool
	Headers      []string
	Rows         [][]string
	StripeColor  string
	Chart        bool
	ChartTitle   string
	Spec         map[string]interface{}
}

func (r *ExportRepositoryImpl) ExportReportToHTML(report entity.FreshnessReport, filename, outputDir string) (string, error) {
	if report.Summary == nil && report.Chart == nil {
		return "", types.ErrNothingToRender
	}

	outputFilename, err := r.generateFilename(filename, outputDir, "html")
	if err != nil {
		return "", err
	}

	data := htmlReport{
		Presentation: report.Presentation,
		Source:       report.Source,
		GeneratedAt:  report.GeneratedAt.Format("2006-01-02 15:04:05"),
	}
	if report.Summary != nil {
		data.Summary = true
		data.Headers = summaryHeaders(report.Summary.Table)
		data.StripeColor = report.Summary.Table.StripeColor
		for _, row := range report.Summary.Rows {
			data.Rows = append(data.Rows, summaryRecord(report.Summary.Table, row))
		}
	}
	if report.Chart != nil {
		data.Chart = true
		data.ChartTitle = report.Chart.Spec.Title
		data.Spec = VegaLiteSpec(*report.Chart)
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating HTML file: %w", err)
	}
	defer file.Close()

	if err := reportTemplate.Execute(file, data); err != nil {
		return "", fmt.Errorf("error rendering HTML report: %w", err)
	}

	return filepath.Abs(outputFilename)
}
