package usecase

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/entity"
	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
)

// Column names of the source tables.
const (
	colTidyCountryCode   = "tidy_country_code"
	colTidyCountryRank   = "tidy_country_rank"
	colISOCountryCode    = "iso_country_code"
	colFileAgeRange      = "file_age_range"
	colBrandCount        = "brand_count"
	colCountryBrandCount = "country_brand_count"
	colCountryPOICount   = "country_poi_count"
	colPctOfBrands       = "pct_of_brands"
)

// resolveColumns localiza as colunas obrigatórias e devolve o índice de cada uma.
func resolveColumns(table entity.SourceTable, names ...string) (map[string]int, error) {
	idx := make(map[string]int, len(names))
	var missing []string
	for _, name := range names {
		i := table.ColumnIndex(name)
		if i < 0 {
			missing = append(missing, name)
			continue
		}
		idx[name] = i
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("table %q: %w: %s", table.Name, types.ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

// parseOptionalFloat treats blank and "nan" cells as missing values.
func parseOptionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, types.ErrNotNumeric
	}
	if math.IsNaN(v) {
		return nil, nil
	}
	if math.IsInf(v, 0) {
		return nil, types.ErrNotNumeric
	}
	return &v, nil
}

func parseOptionalInt(s string) (*int, error) {
	f, err := parseOptionalFloat(s)
	if err != nil || f == nil {
		return nil, err
	}
	if *f != math.Trunc(*f) {
		return nil, types.ErrNotNumeric
	}
	v := int(*f)
	return &v, nil
}

func parseFraction(s string) (*float64, error) {
	f, err := parseOptionalFloat(s)
	if err != nil || f == nil {
		return f, err
	}
	if *f < 0 || *f > 1 {
		return nil, types.ErrFractionRange
	}
	return f, nil
}

// rowReader acumula o contexto de erro de uma linha da tabela.
type rowReader struct {
	table entity.SourceTable
	cols  map[string]int
	row   int
}

func (r rowReader) cell(column string) string {
	i, ok := r.cols[column]
	if !ok {
		return ""
	}
	return r.table.Cell(r.row, i)
}

func (r rowReader) fail(column string, err error) error {
	return &types.RowError{
		Table:  r.table.Name,
		Row:    r.row + 1,
		Column: column,
		Value:  r.cell(column),
		Err:    err,
	}
}

func (r rowReader) countryCode(column string) (string, error) {
	code := r.cell(column)
	if code == "" {
		return "", r.fail(column, types.ErrEmptyCountryCode)
	}
	return code, nil
}

func (r rowReader) ageBand() (entity.AgeBand, error) {
	band, err := entity.ParseAgeBand(r.cell(colFileAgeRange))
	if err != nil {
		return "", r.fail(colFileAgeRange, types.ErrUnknownAgeBand)
	}
	return band, nil
}

// handleRowError applies the invalid-row policy: skip records the row, abort returns the error.
func handleRowError(err error, skip bool, skipped *[]entity.SkippedRow) error {
	if !skip {
		return err
	}
	var rowErr *types.RowError
	if !errors.As(err, &rowErr) {
		return err
	}
	*skipped = append(*skipped, entity.SkippedRow{
		Table:  rowErr.Table,
		Row:    rowErr.Row,
		Reason: rowErr.Error(),
	})
	return nil
}

// CoerceFreshnessRecords converts the grouped freshness table into typed records.
func CoerceFreshnessRecords(table entity.SourceTable, skipInvalid bool) ([]entity.FreshnessRecord, []entity.SkippedRow, error) {
	cols, err := resolveColumns(table, colTidyCountryCode, colTidyCountryRank, colFileAgeRange, colBrandCount, colPctOfBrands)
	if err != nil {
		return nil, nil, err
	}
	// Coerced like the other numeric columns when the sheet carries them.
	for _, optional := range []string{colCountryBrandCount, colCountryPOICount} {
		if i := table.ColumnIndex(optional); i >= 0 {
			cols[optional] = i
		}
	}

	records := make([]entity.FreshnessRecord, 0, len(table.Rows))
	var skipped []entity.SkippedRow

	for i := range table.Rows {
		rec, err := coerceFreshnessRow(rowReader{table: table, cols: cols, row: i})
		if err != nil {
			if err := handleRowError(err, skipInvalid, &skipped); err != nil {
				return nil, nil, err
			}
			continue
		}
		records = append(records, rec)
	}

	return records, skipped, nil
}

func coerceFreshnessRow(r rowReader) (entity.FreshnessRecord, error) {
	var rec entity.FreshnessRecord

	code, err := r.countryCode(colTidyCountryCode)
	if err != nil {
		return rec, err
	}
	band, err := r.ageBand()
	if err != nil {
		return rec, err
	}
	rank, err := parseOptionalInt(r.cell(colTidyCountryRank))
	if err != nil {
		return rec, r.fail(colTidyCountryRank, err)
	}
	brandCount, err := parseOptionalFloat(r.cell(colBrandCount))
	if err != nil {
		return rec, r.fail(colBrandCount, err)
	}
	pct, err := parseFraction(r.cell(colPctOfBrands))
	if err != nil {
		return rec, r.fail(colPctOfBrands, err)
	}
	for _, optional := range []string{colCountryBrandCount, colCountryPOICount} {
		if _, ok := r.cols[optional]; !ok {
			continue
		}
		if _, err := parseOptionalFloat(r.cell(optional)); err != nil {
			return rec, r.fail(optional, err)
		}
	}

	return entity.FreshnessRecord{
		CountryCode: code,
		CountryRank: rank,
		AgeBand:     band,
		BrandCount:  brandCount,
		PctOfBrands: pct,
	}, nil
}

// CoerceFreshnessRecordsByPOI converts the ungrouped freshness table, keeping only
// iso_country_code, file_age_range, country_poi_count and pct_of_brands.
func CoerceFreshnessRecordsByPOI(table entity.SourceTable, skipInvalid bool) ([]entity.FreshnessRecordByPOI, []entity.SkippedRow, error) {
	cols, err := resolveColumns(table, colISOCountryCode, colFileAgeRange, colCountryPOICount, colPctOfBrands)
	if err != nil {
		return nil, nil, err
	}

	records := make([]entity.FreshnessRecordByPOI, 0, len(table.Rows))
	var skipped []entity.SkippedRow

	for i := range table.Rows {
		rec, err := coercePOIRow(rowReader{table: table, cols: cols, row: i})
		if err != nil {
			if err := handleRowError(err, skipInvalid, &skipped); err != nil {
				return nil, nil, err
			}
			continue
		}
		records = append(records, rec)
	}

	return records, skipped, nil
}

func coercePOIRow(r rowReader) (entity.FreshnessRecordByPOI, error) {
	var rec entity.FreshnessRecordByPOI

	code, err := r.countryCode(colISOCountryCode)
	if err != nil {
		return rec, err
	}
	band, err := r.ageBand()
	if err != nil {
		return rec, err
	}
	poi, err := parseOptionalInt(r.cell(colCountryPOICount))
	if err == nil && poi == nil {
		err = types.ErrNotNumeric
	}
	if err != nil {
		return rec, r.fail(colCountryPOICount, err)
	}
	pct, err := parseFraction(r.cell(colPctOfBrands))
	if err == nil && pct == nil {
		err = types.ErrNotNumeric
	}
	if err != nil {
		return rec, r.fail(colPctOfBrands, err)
	}

	return entity.FreshnessRecordByPOI{
		CountryCode:     code,
		AgeBand:         band,
		CountryPOICount: int64(*poi),
		PctOfBrands:     *pct,
	}, nil
}
