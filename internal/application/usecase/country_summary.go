package usecase

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/entity"
	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
)

// Display headers of the summary table.
const (
	HeaderCountryCode        = "Country Code"
	HeaderDistinctBrandCount = "Distinct Brand Count"
	HeaderPctLT30d           = "% of brand freshness < 30 days"
	HeaderPctLT60d           = "% of brand freshness < 60 days"
	HeaderPctLT90d           = "% of brand freshness < 90 days"

	SummaryStripeColor = "#D7E8ED"
)

// SummaryOptions controls how strictly the summary build treats lossy joins.
type SummaryOptions struct {
	// Strict turns countries dropped by the totals/bands join into an error.
	Strict bool
}

// DefaultSummaryTableSpec returns the column formats and zebra rule of the summary table.
func DefaultSummaryTableSpec() entity.TableSpec {
	return entity.TableSpec{
		Columns: []entity.ColumnFormat{
			{Field: "country_code", Header: HeaderCountryCode},
			{Field: "distinct_brand_count", Header: HeaderDistinctBrandCount, Format: "{:,.0f}"},
			{Field: "pct_lt_30d", Header: HeaderPctLT30d, Format: "{:.1f}%"},
			{Field: "pct_lt_60d", Header: HeaderPctLT60d, Format: "{:.1f}%"},
			{Field: "pct_lt_90d", Header: HeaderPctLT90d, Format: "{:.1f}%"},
		},
		StripeColor: SummaryStripeColor,
	}
}

// bandCells is one pivoted country: percentage (0..100) per band, nil when blank.
type bandCells map[entity.AgeBand]*float64

type countryTotals struct {
	rank   *int
	brands float64
}

// BuildCountrySummary pivots the grouped freshness records into one row per
// country with cumulative freshness bands, ordered by the source rank.
func BuildCountrySummary(records []entity.FreshnessRecord, opts SummaryOptions) (entity.CountrySummary, error) {
	summary := entity.CountrySummary{
		Rows:  []entity.CountrySummaryRow{},
		Table: DefaultSummaryTableSpec(),
		Diagnostics: entity.SummaryDiagnostics{
			InputRows: len(records),
		},
	}

	pivot, pivotOrder, err := pivotBands(records)
	if err != nil {
		return summary, err
	}

	totals, totalsOrder, err := sumBrandTotals(records)
	if err != nil {
		return summary, err
	}

	joined, dropped := innerJoinCountries(totalsOrder, pivotOrder, func(code string) bool {
		t, ok := totals[code]
		return ok && t.rank != nil
	}, func(code string) bool {
		_, ok := pivot[code]
		return ok
	})
	summary.Diagnostics.DroppedCountries = dropped

	if opts.Strict && len(dropped) > 0 {
		return summary, fmt.Errorf("%w: %s", types.ErrJoinDrop, strings.Join(dropped, ", "))
	}

	for _, code := range joined {
		cells := pivot[code]
		band := func(b entity.AgeBand) float64 {
			v := cells[b]
			if v == nil {
				return 0
			}
			return *v
		}
		for _, b := range entity.AgeBands {
			if cells[b] == nil {
				summary.Diagnostics.ZeroFilledCells++
			}
		}

		t := totals[code]
		lt30 := band(entity.Band0To30)
		lt60 := lt30 + band(entity.Band31To60)
		lt90 := lt60 + band(entity.Band61To90)

		summary.Rows = append(summary.Rows, entity.CountrySummaryRow{
			CountryCode:        code,
			CountryRank:        *t.rank,
			DistinctBrandCount: int64(math.Round(t.brands)),
			PctLT30d:           lt30,
			PctLT60d:           lt60,
			PctLT90d:           lt90,
		})
	}

	sort.SliceStable(summary.Rows, func(i, j int) bool {
		return summary.Rows[i].CountryRank < summary.Rows[j].CountryRank
	})

	return summary, nil
}

// pivotBands reshapes the long records into one cell set per country.
// A (country, band) pair may appear only once.
func pivotBands(records []entity.FreshnessRecord) (map[string]bandCells, []string, error) {
	pivot := make(map[string]bandCells)
	var order []string

	for _, rec := range records {
		cells, ok := pivot[rec.CountryCode]
		if !ok {
			cells = make(bandCells)
			pivot[rec.CountryCode] = cells
			order = append(order, rec.CountryCode)
		}
		if _, dup := cells[rec.AgeBand]; dup {
			return nil, nil, fmt.Errorf("%w: %s / %s", types.ErrDuplicatePivotKey, rec.CountryCode, rec.AgeBand)
		}
		var pct *float64
		if rec.PctOfBrands != nil {
			v := *rec.PctOfBrands * 100
			pct = &v
		}
		cells[rec.AgeBand] = pct
	}

	return pivot, order, nil
}

// sumBrandTotals soma brand_count por país. O rank precisa ser único por país.
func sumBrandTotals(records []entity.FreshnessRecord) (map[string]*countryTotals, []string, error) {
	totals := make(map[string]*countryTotals)
	var order []string

	for _, rec := range records {
		t, ok := totals[rec.CountryCode]
		if !ok {
			t = &countryTotals{}
			totals[rec.CountryCode] = t
			order = append(order, rec.CountryCode)
		}
		if rec.CountryRank != nil {
			if t.rank != nil && *t.rank != *rec.CountryRank {
				return nil, nil, fmt.Errorf("%w: %s has ranks %d and %d",
					types.ErrRankConflict, rec.CountryCode, *t.rank, *rec.CountryRank)
			}
			rank := *rec.CountryRank
			t.rank = &rank
		}
		if rec.BrandCount != nil {
			t.brands += *rec.BrandCount
		}
	}

	return totals, order, nil
}

// innerJoinCountries keeps the countries present on both sides, in first-seen
// order, and reports the ones present on a single side.
func innerJoinCountries(left, right []string, inLeft, inRight func(string) bool) (joined, dropped []string) {
	seen := make(map[string]bool, len(left)+len(right))
	for _, code := range append(append([]string{}, left...), right...) {
		if seen[code] {
			continue
		}
		seen[code] = true
		if inLeft(code) && inRight(code) {
			joined = append(joined, code)
		} else {
			dropped = append(dropped, code)
		}
	}
	return joined, dropped
}
