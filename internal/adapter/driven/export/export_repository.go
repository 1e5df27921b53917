package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/entity"
	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/repository"
	"github.com/diillson/brand-freshness-dashboard-go/pkg/format"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// --- Exportação dos dados tabulares ---

func (r *ExportRepositoryImpl) ExportSummaryToCSV(summary entity.CountrySummary, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	headers := []string{"country_code", "country_rank", "distinct_brand_count", "pct_lt_30d", "pct_lt_60d", "pct_lt_90d"}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range summary.Rows {
		record := []string{
			row.CountryCode,
			strconv.Itoa(row.CountryRank),
			strconv.FormatInt(row.DistinctBrandCount, 10),
			plainFloat(row.PctLT30d),
			plainFloat(row.PctLT60d),
			plainFloat(row.PctLT90d),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportChartToCSV(chart entity.TopCountriesChart, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	headers := []string{"country_code", "file_age_range", "country_poi_count", "pct_of_brands", "pct_of_brands_precise", "stack_order"}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, p := range chart.Points {
		record := []string{
			p.CountryCode,
			string(p.AgeBand),
			strconv.FormatInt(p.CountryPOICount, 10),
			plainFloat(p.PctOfBrands),
			plainFloat(p.PctOfBrandsPrecise),
			strconv.Itoa(p.StackOrder),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportReportToJSON(report entity.FreshnessReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}

func plainFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// summaryHeaders returns the display headers of the summary table.
func summaryHeaders(spec entity.TableSpec) []string {
	headers := make([]string, len(spec.Columns))
	for i, col := range spec.Columns {
		headers[i] = col.Header
	}
	return headers
}

// summaryRecord formats one row the same way the terminal table does.
func summaryRecord(spec entity.TableSpec, row entity.CountrySummaryRow) []string {
	record := make([]string, len(spec.Columns))
	for i, col := range spec.Columns {
		if col.Field == "country_code" {
			record[i] = row.CountryCode
			continue
		}
		if v, ok := row.FieldValue(col.Field); ok {
			record[i] = format.Apply(col.Format, v)
		}
	}
	return record
}

// bandPalette segue o esquema padrão de categorias do Vega-Lite, na ordem de StackSequence.
var bandPalette = map[entity.AgeBand]string{
	entity.Band120Plus: "#4c78a8",
	entity.Band91To120: "#f58518",
	entity.Band61To90:  "#e45756",
	entity.Band31To60:  "#72b7b2",
	entity.Band0To30:   "#54a24b",
}

// hexToRGB converte "#RRGGBB" em componentes. Valores inválidos viram cinza claro.
func hexToRGB(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 230, 230, 230
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 230, 230, 230
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
