package usecase

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/entity"
	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
)

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func rec(code string, rank int, band entity.AgeBand, brands, pct float64) entity.FreshnessRecord {
	return entity.FreshnessRecord{
		CountryCode: code,
		CountryRank: intPtr(rank),
		AgeBand:     band,
		BrandCount:  floatPtr(brands),
		PctOfBrands: floatPtr(pct),
	}
}

func TestBuildCountrySummary_CumulativeBands(t *testing.T) {
	records := []entity.FreshnessRecord{
		rec("US", 1, entity.Band0To30, 10, 0.5),
		rec("US", 1, entity.Band31To60, 6, 0.3),
		rec("US", 1, entity.Band61To90, 4, 0.2),
	}

	summary, err := BuildCountrySummary(records, SummaryOptions{})
	require.NoError(t, err)
	require.Len(t, summary.Rows, 1)

	row := summary.Rows[0]
	assert.Equal(t, "US", row.CountryCode)
	assert.Equal(t, int64(20), row.DistinctBrandCount)
	assert.InDelta(t, 50.0, row.PctLT30d, 1e-9)
	assert.InDelta(t, 80.0, row.PctLT60d, 1e-9)
	assert.InDelta(t, 100.0, row.PctLT90d, 1e-9)
	assert.Equal(t, 3, summary.Diagnostics.InputRows)
	// 91-120d and 120d+ have no rows.
	assert.Equal(t, 2, summary.Diagnostics.ZeroFilledCells)
}

func TestBuildCountrySummary_MissingBandsCountAsZero(t *testing.T) {
	records := []entity.FreshnessRecord{
		rec("NZ", 7, entity.Band0To30, 3, 1.0),
	}

	summary, err := BuildCountrySummary(records, SummaryOptions{})
	require.NoError(t, err)
	require.Len(t, summary.Rows, 1)

	row := summary.Rows[0]
	assert.InDelta(t, 100.0, row.PctLT30d, 1e-9)
	assert.InDelta(t, 100.0, row.PctLT60d, 1e-9)
	assert.InDelta(t, 100.0, row.PctLT90d, 1e-9)
	assert.Equal(t, 4, summary.Diagnostics.ZeroFilledCells)
}

func TestBuildCountrySummary_BlankPercentageIsZeroFilled(t *testing.T) {
	blank := rec("CA", 2, entity.Band31To60, 5, 0)
	blank.PctOfBrands = nil
	records := []entity.FreshnessRecord{
		rec("CA", 2, entity.Band0To30, 5, 0.4),
		blank,
		rec("CA", 2, entity.Band61To90, 5, 0.1),
	}

	summary, err := BuildCountrySummary(records, SummaryOptions{})
	require.NoError(t, err)
	require.Len(t, summary.Rows, 1)
	assert.InDelta(t, 40.0, summary.Rows[0].PctLT60d, 1e-9)
	assert.InDelta(t, 50.0, summary.Rows[0].PctLT90d, 1e-9)
	assert.Equal(t, int64(15), summary.Rows[0].DistinctBrandCount)
	assert.Equal(t, 3, summary.Diagnostics.ZeroFilledCells)
}

func TestBuildCountrySummary_OrderedByRank(t *testing.T) {
	records := []entity.FreshnessRecord{
		rec("BR", 3, entity.Band0To30, 1, 1),
		rec("US", 1, entity.Band0To30, 1, 1),
		rec("DE", 2, entity.Band0To30, 1, 1),
	}

	summary, err := BuildCountrySummary(records, SummaryOptions{})
	require.NoError(t, err)

	var codes []string
	for _, row := range summary.Rows {
		codes = append(codes, row.CountryCode)
	}
	assert.Equal(t, []string{"US", "DE", "BR"}, codes)
}

func TestBuildCountrySummary_DuplicatePivotKey(t *testing.T) {
	records := []entity.FreshnessRecord{
		rec("US", 1, entity.Band0To30, 10, 0.5),
		rec("US", 1, entity.Band0To30, 10, 0.5),
	}

	_, err := BuildCountrySummary(records, SummaryOptions{})
	require.ErrorIs(t, err, types.ErrDuplicatePivotKey)
}

func TestBuildCountrySummary_RankConflict(t *testing.T) {
	records := []entity.FreshnessRecord{
		rec("US", 1, entity.Band0To30, 10, 0.5),
		rec("US", 4, entity.Band31To60, 10, 0.5),
	}

	_, err := BuildCountrySummary(records, SummaryOptions{})
	require.ErrorIs(t, err, types.ErrRankConflict)
}

func TestBuildCountrySummary_CountryWithoutRankIsDropped(t *testing.T) {
	unranked := rec("FR", 0, entity.Band0To30, 8, 1)
	unranked.CountryRank = nil
	records := []entity.FreshnessRecord{
		rec("US", 1, entity.Band0To30, 10, 1),
		unranked,
	}

	summary, err := BuildCountrySummary(records, SummaryOptions{})
	require.NoError(t, err)
	require.Len(t, summary.Rows, 1)
	assert.Equal(t, "US", summary.Rows[0].CountryCode)
	assert.Equal(t, []string{"FR"}, summary.Diagnostics.DroppedCountries)

	_, err = BuildCountrySummary(records, SummaryOptions{Strict: true})
	require.ErrorIs(t, err, types.ErrJoinDrop)
}

func TestBuildCountrySummary_RankFromAnyRow(t *testing.T) {
	partial := rec("JP", 0, entity.Band31To60, 2, 0.5)
	partial.CountryRank = nil
	records := []entity.FreshnessRecord{
		rec("JP", 5, entity.Band0To30, 2, 0.5),
		partial,
	}

	summary, err := BuildCountrySummary(records, SummaryOptions{})
	require.NoError(t, err)
	require.Len(t, summary.Rows, 1)
	assert.Equal(t, 5, summary.Rows[0].CountryRank)
	assert.Equal(t, int64(4), summary.Rows[0].DistinctBrandCount)
}

func TestBuildCountrySummary_EmptyInput(t *testing.T) {
	summary, err := BuildCountrySummary(nil, SummaryOptions{})
	require.NoError(t, err)
	assert.Empty(t, summary.Rows)
	assert.Equal(t, DefaultSummaryTableSpec(), summary.Table)
}

func TestBuildCountrySummary_MonotonicAndBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var records []entity.FreshnessRecord
	for c := 0; c < 40; c++ {
		code := string(rune('A'+c/26)) + string(rune('A'+c%26))
		remaining := 1.0
		for i, band := range entity.AgeBands {
			if rng.Intn(4) == 0 {
				continue
			}
			share := remaining * rng.Float64()
			if i == len(entity.AgeBands)-1 {
				share = remaining
			}
			remaining -= share
			records = append(records, rec(code, c+1, band, float64(rng.Intn(500)), share))
		}
	}

	summary, err := BuildCountrySummary(records, SummaryOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, summary.Rows)

	for i, row := range summary.Rows {
		assert.LessOrEqual(t, row.PctLT30d, row.PctLT60d, row.CountryCode)
		assert.LessOrEqual(t, row.PctLT60d, row.PctLT90d, row.CountryCode)
		for _, v := range []float64{row.PctLT30d, row.PctLT60d, row.PctLT90d} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0+1e-9)
		}
		if i > 0 {
			assert.Less(t, summary.Rows[i-1].CountryRank, row.CountryRank)
		}
	}
}

func TestInnerJoinCountries(t *testing.T) {
	left := []string{"US", "DE", "FR"}
	right := []string{"DE", "US", "IT"}
	inLeft := func(c string) bool { return c == "US" || c == "DE" || c == "FR" }
	inRight := func(c string) bool { return c == "DE" || c == "US" || c == "IT" }

	joined, dropped := innerJoinCountries(left, right, inLeft, inRight)
	assert.Equal(t, []string{"US", "DE"}, joined)
	assert.Equal(t, []string{"FR", "IT"}, dropped)
}
