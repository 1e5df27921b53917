package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/entity"
	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/repository"
	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
	"github.com/diillson/brand-freshness-dashboard-go/pkg/format"
)

// SourceFactory builds the data source selected by the CLI arguments.
type SourceFactory func(ctx context.Context, args *types.CLIArgs) (repository.SourceRepository, error)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	newSource  SourceFactory
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
	logger     *zap.Logger
	now        func() time.Time
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	newSource SourceFactory,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		newSource:  newSource,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
		logger:     zap.NewNop(),
		now:        time.Now,
	}
}

// SetLogger define o logger estruturado usado para os diagnósticos.
func (uc *DashboardUseCase) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	uc.logger = logger
}

// DefaultPresentation returns the page chrome of the freshness dashboard.
func DefaultPresentation() entity.PresentationConfig {
	return entity.PresentationConfig{
		PageTitle:      "Places Summary Statistics - Brands Freshness",
		WideLayout:     true,
		HideToolbar:    true,
		HideFooter:     true,
		HideHeader:     true,
		CompactPadding: true,
	}
}

// ApplyConfigFile carrega o arquivo de configuração e preenche os argumentos
// que o usuário não informou explicitamente na linha de comando.
func (uc *DashboardUseCase) ApplyConfigFile(args *types.CLIArgs, explicit func(flag string) bool) error {
	if args.ConfigFile == "" {
		return nil
	}

	cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	setString := func(flag string, dst *string, v string) {
		if v != "" && !explicit(flag) {
			*dst = v
		}
	}

	setString("source", &args.Source, cfg.Source)
	setString("data-dir", &args.DataDir, cfg.DataDir)
	setString("s3-bucket", &args.S3Bucket, cfg.S3Bucket)
	setString("s3-prefix", &args.S3Prefix, cfg.S3Prefix)
	setString("profile", &args.Profile, cfg.Profile)
	setString("region", &args.Region, cfg.Region)
	setString("sheet-id", &args.SheetID, cfg.SheetID)
	setString("dsn", &args.DSN, cfg.DSN)
	setString("schema", &args.Schema, cfg.Schema)
	setString("grouped-table", &args.GroupedTable, cfg.GroupedTable)
	setString("ungrouped-table", &args.UngroupedTable, cfg.UngroupedTable)
	setString("on-invalid", &args.OnInvalid, cfg.OnInvalid)
	setString("report-name", &args.ReportName, cfg.ReportName)
	setString("dir", &args.Dir, cfg.Dir)
	setString("log-file", &args.LogFile, cfg.LogFile)

	if cfg.TopN > 0 && !explicit("top-n") {
		args.TopN = cfg.TopN
	}
	if cfg.Strict && !explicit("strict") {
		args.Strict = true
	}
	if len(cfg.ReportType) > 0 && !explicit("report-type") {
		args.ReportType = cfg.ReportType
	}

	uc.logger.Debug("config file applied", zap.String("path", args.ConfigFile))
	return nil
}

// validateArgs normaliza e valida os argumentos de construção do relatório.
func validateArgs(args *types.CLIArgs) error {
	if args.OnInvalid == "" {
		args.OnInvalid = types.OnInvalidAbort
	}
	if args.OnInvalid != types.OnInvalidAbort && args.OnInvalid != types.OnInvalidSkip {
		return fmt.Errorf("%w: %q", types.ErrInvalidPolicy, args.OnInvalid)
	}
	if args.SummaryOnly && args.ChartOnly {
		return types.ErrNothingToRender
	}
	if args.GroupedTable == "" {
		args.GroupedTable = types.DefaultGroupedTable
	}
	if args.UngroupedTable == "" {
		args.UngroupedTable = types.DefaultUngroupedTable
	}
	if args.TopN <= 0 {
		args.TopN = types.DefaultTopN
	}
	return nil
}

// RunDashboard executa a funcionalidade principal do dashboard.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	report, err := uc.BuildReport(ctx, args)
	if err != nil {
		return err
	}

	if report.Summary != nil {
		uc.console.Println()
		uc.console.Print(uc.renderSummaryTable(*report.Summary))
		uc.reportSummaryDiagnostics(report.Summary.Diagnostics)
	}

	if report.Chart != nil {
		uc.console.DisplayStackedBars(report.Chart.Spec.Title, StackedBars(*report.Chart), stackLegend(report.Chart.Spec))
		uc.reportChartDiagnostics(report.Chart.Diagnostics)
	}

	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportReport(report, args)
	}

	return nil
}

// BuildReport fetches both source tables and builds the summary and chart datasets.
func (uc *DashboardUseCase) BuildReport(ctx context.Context, args *types.CLIArgs) (entity.FreshnessReport, error) {
	report := entity.FreshnessReport{
		GeneratedAt:  uc.now(),
		Presentation: DefaultPresentation(),
	}

	if err := validateArgs(args); err != nil {
		return report, err
	}

	source, err := uc.newSource(ctx, args)
	if err != nil {
		return report, err
	}
	if closer, ok := source.(io.Closer); ok {
		defer closer.Close()
	}
	report.Source = source.Describe()

	status := uc.console.Status(fmt.Sprintf("Fetching freshness tables from %s...", report.Source))
	grouped, ungrouped, err := uc.fetchTables(ctx, source, args)
	status.Stop()
	if err != nil {
		return report, err
	}

	skip := args.SkipInvalidRows()

	if !args.ChartOnly {
		summary, err := uc.buildSummary(grouped, skip, SummaryOptions{Strict: args.Strict})
		if err != nil {
			return report, err
		}
		report.Summary = &summary
	}

	if !args.SummaryOnly {
		chart, err := uc.buildChart(ungrouped, skip, ChartOptions{TopN: args.TopN})
		if err != nil {
			return report, err
		}
		report.Chart = &chart
	}

	return report, nil
}

// fetchTables busca as duas tabelas em paralelo; as etapas não dependem uma da outra.
func (uc *DashboardUseCase) fetchTables(
	ctx context.Context,
	source repository.SourceRepository,
	args *types.CLIArgs,
) (entity.SourceTable, entity.SourceTable, error) {
	var grouped, ungrouped entity.SourceTable

	g, gctx := errgroup.WithContext(ctx)
	if !args.ChartOnly {
		g.Go(func() error {
			t, err := source.Fetch(gctx, args.GroupedTable)
			if err != nil {
				return fmt.Errorf("fetching table %q: %w", args.GroupedTable, err)
			}
			grouped = t
			return nil
		})
	}
	if !args.SummaryOnly {
		g.Go(func() error {
			t, err := source.Fetch(gctx, args.UngroupedTable)
			if err != nil {
				return fmt.Errorf("fetching table %q: %w", args.UngroupedTable, err)
			}
			ungrouped = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return grouped, ungrouped, err
	}

	uc.logger.Debug("source tables fetched",
		zap.Int("grouped_rows", len(grouped.Rows)),
		zap.Int("ungrouped_rows", len(ungrouped.Rows)))
	return grouped, ungrouped, nil
}

func (uc *DashboardUseCase) buildSummary(table entity.SourceTable, skip bool, opts SummaryOptions) (entity.CountrySummary, error) {
	records, skipped, err := CoerceFreshnessRecords(table, skip)
	if err != nil {
		return entity.CountrySummary{}, err
	}

	summary, err := BuildCountrySummary(records, opts)
	summary.Diagnostics.SkippedRows = skipped
	if err != nil {
		return summary, err
	}

	uc.logger.Info("country summary built",
		zap.String("table", table.Name),
		zap.Int("input_rows", summary.Diagnostics.InputRows),
		zap.Int("countries", len(summary.Rows)),
		zap.Strings("dropped_countries", summary.Diagnostics.DroppedCountries),
		zap.Int("zero_filled_cells", summary.Diagnostics.ZeroFilledCells),
		zap.Int("skipped_rows", len(skipped)))
	return summary, nil
}

func (uc *DashboardUseCase) buildChart(table entity.SourceTable, skip bool, opts ChartOptions) (entity.TopCountriesChart, error) {
	records, skipped, err := CoerceFreshnessRecordsByPOI(table, skip)
	if err != nil {
		return entity.TopCountriesChart{}, err
	}

	chart := BuildTopCountriesChart(records, opts)
	chart.Diagnostics.SkippedRows = skipped

	uc.logger.Info("top countries chart built",
		zap.String("table", table.Name),
		zap.Int("input_rows", chart.Diagnostics.InputRows),
		zap.Int("distinct_thresholds", chart.Diagnostics.DistinctThresholds),
		zap.Int("included_countries", chart.Diagnostics.IncludedCountries),
		zap.Int("skipped_rows", len(skipped)))
	return chart, nil
}

// renderSummaryTable cria a tabela de resumo com as máscaras de cada coluna e linhas zebradas.
func (uc *DashboardUseCase) renderSummaryTable(summary entity.CountrySummary) string {
	table := uc.console.CreateTable()
	for _, col := range summary.Table.Columns {
		table.AddColumn(col.Header)
	}
	table.SetStriped(summary.Table.StripeColor != "")

	for _, row := range summary.Rows {
		table.AddRow(SummaryCells(summary.Table, row)...)
	}

	return table.Render()
}

// SummaryCells formats one summary row following the table spec.
func SummaryCells(spec entity.TableSpec, row entity.CountrySummaryRow) []interface{} {
	cells := make([]interface{}, 0, len(spec.Columns))
	for _, col := range spec.Columns {
		if col.Field == "country_code" {
			cells = append(cells, row.CountryCode)
			continue
		}
		if v, ok := row.FieldValue(col.Field); ok {
			cells = append(cells, format.Apply(col.Format, v))
			continue
		}
		cells = append(cells, "")
	}
	return cells
}

// stackLegend returns the legend in stacking order, base band first.
func stackLegend(spec entity.ChartSpec) []string {
	legend := make([]string, 0, len(spec.ColorDomain))
	for i := len(spec.ColorDomain) - 1; i >= 0; i-- {
		legend = append(legend, string(spec.ColorDomain[i]))
	}
	return legend
}

func (uc *DashboardUseCase) reportSummaryDiagnostics(d entity.SummaryDiagnostics) {
	if len(d.DroppedCountries) > 0 {
		uc.console.LogWarning("%d countries dropped by the totals/bands join: %s",
			len(d.DroppedCountries), strings.Join(d.DroppedCountries, ", "))
	}
	if d.ZeroFilledCells > 0 {
		uc.console.LogInfo("%d missing age band cells counted as 0%%", d.ZeroFilledCells)
	}
	uc.reportSkipped(d.SkippedRows)
}

func (uc *DashboardUseCase) reportChartDiagnostics(d entity.ChartDiagnostics) {
	uc.console.LogInfo("%s countries across %d distinct POI counts",
		pterm.FgCyan.Sprint(d.IncludedCountries), d.DistinctThresholds)
	uc.reportSkipped(d.SkippedRows)
}

func (uc *DashboardUseCase) reportSkipped(rows []entity.SkippedRow) {
	for _, row := range rows {
		uc.console.LogWarning("Skipped %s", row.Reason)
		uc.logger.Warn("row skipped", zap.String("table", row.Table), zap.Int("row", row.Row), zap.String("reason", row.Reason))
	}
}

// exportReport exporta o relatório em cada formato solicitado.
func (uc *DashboardUseCase) exportReport(report entity.FreshnessReport, args *types.CLIArgs) {
	logResult := func(kind string, path string, err error) {
		if err != nil {
			uc.console.LogError("Failed to export %s: %s", kind, err)
			uc.logger.Error("export failed", zap.String("kind", kind), zap.Error(err))
			return
		}
		uc.console.LogSuccess("Successfully exported %s: %s", kind, path)
	}

	for _, reportType := range args.ReportType {
		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			if report.Summary != nil {
				path, err := uc.exportRepo.ExportSummaryToCSV(*report.Summary, args.ReportName+"_summary", args.Dir)
				logResult("summary to CSV", path, err)
			}
			if report.Chart != nil {
				path, err := uc.exportRepo.ExportChartToCSV(*report.Chart, args.ReportName+"_top_countries", args.Dir)
				logResult("chart data to CSV", path, err)
			}
		case "json":
			path, err := uc.exportRepo.ExportReportToJSON(report, args.ReportName, args.Dir)
			logResult("report to JSON", path, err)
		case "pdf":
			path, err := uc.exportRepo.ExportReportToPDF(report, args.ReportName, args.Dir)
			logResult("report to PDF", path, err)
		case "html":
			path, err := uc.exportRepo.ExportReportToHTML(report, args.ReportName, args.Dir)
			logResult("report to HTML", path, err)
		case "vega":
			if report.Chart != nil {
				path, err := uc.exportRepo.ExportChartToVegaLite(*report.Chart, args.ReportName+"_chart", args.Dir)
				logResult("chart to Vega-Lite", path, err)
			}
		default:
			uc.console.LogWarning("Unsupported report type: %s", reportType)
		}
	}
}
