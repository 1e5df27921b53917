package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/diillson/brand-freshness-dashboard-go/internal/application/usecase"
	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
	"github.com/diillson/brand-freshness-dashboard-go/pkg/logger"
	"github.com/diillson/brand-freshness-dashboard-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	version          string
	quiet            bool
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	rootCmd := &cobra.Command{
		Use:           "brand-freshness",
		Short:         "Brand freshness summary and top countries chart",
		Long:          "Reads the brand freshness tables, prints the per-country summary and the top countries chart, and exports them as csv, json, pdf, html or vega.",
		Version:       version.FormatVersion(),
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "Brand Freshness Dashboard version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")

	// Fonte de dados
	flags.String("source", "file", "Data source: file, s3, gsheets or postgres")
	flags.String("data-dir", "", "Directory holding <table>.csv files (file source, default: current directory)")
	flags.String("s3-bucket", "", "Bucket holding <prefix><table>.csv objects (s3 source)")
	flags.String("s3-prefix", "", "Key prefix inside the bucket (s3 source)")
	flags.StringP("profile", "p", "", "AWS profile used by the s3 source")
	flags.StringP("region", "r", "", "AWS region used by the s3 source")
	flags.String("sheet-id", "", "Published Google Sheet ID (gsheets source)")
	flags.String("dsn", "", "PostgreSQL connection string (postgres source)")
	flags.String("schema", "public", "PostgreSQL schema holding the tables (postgres source)")
	flags.String("grouped-table", types.DefaultGroupedTable, "Table with one row per (country, age band)")
	flags.String("ungrouped-table", types.DefaultUngroupedTable, "Table with per-country POI counts used by the chart")

	// Construção
	flags.Int("top-n", types.DefaultTopN, "Number of distinct POI counts kept in the chart")
	flags.String("on-invalid", types.OnInvalidAbort, "What to do with rows that fail numeric coercion: abort or skip")
	flags.Bool("strict", false, "Fail when the summary join drops countries")
	flags.Bool("summary-only", false, "Only build the country summary table")
	flags.Bool("chart-only", false, "Only build the top countries chart")

	// Saída
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf, html, vega")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.String("log-file", "", "Write structured logs to this file")
	flags.BoolVarP(&app.quiet, "quiet", "q", false, "Skip the welcome banner and the update check")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	args := &types.CLIArgs{}
	args.ConfigFile, _ = flags.GetString("config-file")

	args.Source, _ = flags.GetString("source")
	args.DataDir, _ = flags.GetString("data-dir")
	args.S3Bucket, _ = flags.GetString("s3-bucket")
	args.S3Prefix, _ = flags.GetString("s3-prefix")
	args.Profile, _ = flags.GetString("profile")
	args.Region, _ = flags.GetString("region")
	args.SheetID, _ = flags.GetString("sheet-id")
	args.DSN, _ = flags.GetString("dsn")
	args.Schema, _ = flags.GetString("schema")
	args.GroupedTable, _ = flags.GetString("grouped-table")
	args.UngroupedTable, _ = flags.GetString("ungrouped-table")

	args.TopN, _ = flags.GetInt("top-n")
	args.OnInvalid, _ = flags.GetString("on-invalid")
	args.Strict, _ = flags.GetBool("strict")
	args.SummaryOnly, _ = flags.GetBool("summary-only")
	args.ChartOnly, _ = flags.GetBool("chart-only")

	args.ReportName, _ = flags.GetString("report-name")
	args.ReportType, _ = flags.GetStringSlice("report-type")
	args.Dir, _ = flags.GetString("dir")
	args.Verbose, _ = flags.GetBool("verbose")
	args.LogFile, _ = flags.GetString("log-file")

	args.Source = strings.ToLower(strings.TrimSpace(args.Source))
	args.OnInvalid = strings.ToLower(strings.TrimSpace(args.OnInvalid))

	return args, nil
}

// resolveDirs converte os diretórios informados em caminhos absolutos.
func resolveDirs(args *types.CLIArgs) error {
	for _, dir := range []*string{&args.Dir, &args.DataDir} {
		if *dir == "" {
			continue
		}
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return err
		}
		*dir = abs
	}
	return nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	if !app.quiet {
		displayWelcomeBanner()
		go version.CheckLatestVersion(app.version)
	}

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Flags explícitas têm precedência sobre o arquivo de configuração
	if err := app.dashboardUseCase.ApplyConfigFile(cliArgs, cmd.Flags().Changed); err != nil {
		return err
	}
	if err := resolveDirs(cliArgs); err != nil {
		return err
	}

	log, err := logger.New(cliArgs.Verbose, cliArgs.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	app.dashboardUseCase.SetLogger(log)
	log.Debug("starting dashboard",
		zap.String("source", cliArgs.Source),
		zap.Int("top_n", cliArgs.TopN),
		zap.String("on_invalid", cliArgs.OnInvalid))

	return app.dashboardUseCase.RunDashboard(cmd.Context(), cliArgs)
}

// ExecuteContext runs the CLI application bound to ctx.
func (app *CLIApp) ExecuteContext(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}
