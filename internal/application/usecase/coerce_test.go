package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/entity"
	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
)

func groupedTable(rows ...[]string) entity.SourceTable {
	return entity.SourceTable{
		Name:    types.DefaultGroupedTable,
		Columns: []string{"tidy_country_code", "tidy_country_rank", "file_age_range", "brand_count", "country_brand_count", "pct_of_brands", "country_poi_count"},
		Rows:    rows,
	}
}

func poiTable(rows ...[]string) entity.SourceTable {
	return entity.SourceTable{
		Name:    types.DefaultUngroupedTable,
		Columns: []string{"iso_country_code", "file_age_range", "brand_name", "country_poi_count", "pct_of_brands"},
		Rows:    rows,
	}
}

func TestCoerceFreshnessRecords(t *testing.T) {
	table := groupedTable(
		[]string{"US", "1", "0-30d", "10", "20", "0.5", "1000"},
		[]string{" US ", "1.0", "31-60d", "", "20", "", "1000"},
	)

	records, skipped, err := CoerceFreshnessRecords(table, false)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, records, 2)

	assert.Equal(t, "US", records[0].CountryCode)
	assert.Equal(t, 1, *records[0].CountryRank)
	assert.Equal(t, entity.Band0To30, records[0].AgeBand)
	assert.Equal(t, 10.0, *records[0].BrandCount)
	assert.Equal(t, 0.5, *records[0].PctOfBrands)

	assert.Equal(t, "US", records[1].CountryCode)
	assert.Equal(t, 1, *records[1].CountryRank)
	assert.Nil(t, records[1].BrandCount)
	assert.Nil(t, records[1].PctOfBrands)
}

func TestCoerceFreshnessRecords_AbortOnInvalidNumber(t *testing.T) {
	table := groupedTable(
		[]string{"US", "1", "0-30d", "ten", "20", "0.5", "1000"},
	)

	_, _, err := CoerceFreshnessRecords(table, false)
	require.ErrorIs(t, err, types.ErrNotNumeric)

	var rowErr *types.RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 1, rowErr.Row)
	assert.Equal(t, "brand_count", rowErr.Column)
	assert.Equal(t, "ten", rowErr.Value)
}

func TestCoerceFreshnessRecords_SkipInvalidRows(t *testing.T) {
	table := groupedTable(
		[]string{"US", "1", "0-30d", "10", "20", "0.5", "1000"},
		[]string{"US", "1", "31-60d", "10", "20", "1.5", "1000"},
		[]string{"US", "1", "7-14d", "10", "20", "0.5", "1000"},
		[]string{"DE", "2", "0-30d", "4", "abc", "1", "800"},
	)

	records, skipped, err := CoerceFreshnessRecords(table, true)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, skipped, 3)
	assert.Equal(t, 2, skipped[0].Row)
	assert.Contains(t, skipped[0].Reason, "pct_of_brands")
	assert.Contains(t, skipped[1].Reason, "file_age_range")
	assert.Contains(t, skipped[2].Reason, "country_brand_count")
}

func TestCoerceFreshnessRecords_MissingColumn(t *testing.T) {
	table := entity.SourceTable{
		Name:    "Brand freshness grouped",
		Columns: []string{"tidy_country_code", "file_age_range"},
	}

	_, _, err := CoerceFreshnessRecords(table, true)
	require.ErrorIs(t, err, types.ErrMissingColumn)
	assert.Contains(t, err.Error(), "tidy_country_rank")
	assert.Contains(t, err.Error(), "pct_of_brands")
}

func TestCoerceFreshnessRecordsByPOI(t *testing.T) {
	table := poiTable(
		[]string{"US", "0-30d", "Acme", "1200", "0.25"},
		[]string{"US", "120d+", "Acme", "1200.0", "0.75"},
	)

	records, skipped, err := CoerceFreshnessRecordsByPOI(table, false)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, records, 2)
	assert.Equal(t, int64(1200), records[1].CountryPOICount)
	assert.Equal(t, entity.Band120Plus, records[1].AgeBand)
	assert.Equal(t, 0.75, records[1].PctOfBrands)
}

func TestCoerceFreshnessRecordsByPOI_BlankIsInvalid(t *testing.T) {
	table := poiTable(
		[]string{"US", "0-30d", "Acme", "", "0.25"},
	)

	_, _, err := CoerceFreshnessRecordsByPOI(table, false)
	require.ErrorIs(t, err, types.ErrNotNumeric)

	records, skipped, err := CoerceFreshnessRecordsByPOI(table, true)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Len(t, skipped, 1)
}

func TestCoerceFreshnessRecordsByPOI_EmptyCountry(t *testing.T) {
	table := poiTable(
		[]string{"", "0-30d", "Acme", "10", "0.25"},
	)

	_, _, err := CoerceFreshnessRecordsByPOI(table, false)
	require.ErrorIs(t, err, types.ErrEmptyCountryCode)
}
