package usecase

import (
	"fmt"
	"math"
	"sort"

	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/entity"
	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
)

// ChartOptions configura a seleção do gráfico de países.
type ChartOptions struct {
	// TopN is the number of distinct POI counts kept. Zero means DefaultTopN.
	TopN int
}

// DefaultChartSpec returns the stacked bar configuration for the top countries chart.
func DefaultChartSpec(topN int) entity.ChartSpec {
	return entity.ChartSpec{
		Title:             fmt.Sprintf("Brand Freshness - Top %d Countries by Branded POI Count", topN),
		Width:             800,
		Height:            400,
		YDomain:           [2]float64{0, 100},
		ColorDomain:       append([]entity.AgeBand(nil), entity.StackSequence...),
		StackSort:         "descending",
		XLabelFontSize:    10,
		XLabelAngle:       0,
		TooltipPctFormat:  ",.2%",
		UseContainerWidth: true,
	}
}

// BuildTopCountriesChart keeps the countries whose POI count is among the TopN
// largest distinct counts and turns their rows into ordered chart points.
// Ties on a count are kept together, so more than TopN countries may appear.
func BuildTopCountriesChart(records []entity.FreshnessRecordByPOI, opts ChartOptions) entity.TopCountriesChart {
	topN := opts.TopN
	if topN <= 0 {
		topN = types.DefaultTopN
	}

	thresholds := topDistinctCounts(records, topN)

	chart := entity.TopCountriesChart{
		Categories: []string{},
		Points:     []entity.ChartPoint{},
		Spec:       DefaultChartSpec(topN),
		Diagnostics: entity.ChartDiagnostics{
			InputRows:          len(records),
			DistinctThresholds: len(thresholds),
		},
	}

	firstSeen := make(map[string]int)
	for _, rec := range records {
		if !thresholds[rec.CountryPOICount] {
			continue
		}
		if _, ok := firstSeen[rec.CountryCode]; !ok {
			firstSeen[rec.CountryCode] = len(firstSeen)
		}
		chart.Points = append(chart.Points, entity.ChartPoint{
			CountryCode:        rec.CountryCode,
			AgeBand:            rec.AgeBand,
			CountryPOICount:    rec.CountryPOICount,
			PctOfBrands:        rec.PctOfBrands * 100,
			PctOfBrandsPrecise: roundHalfEven(rec.PctOfBrands, 4),
			StackOrder:         rec.AgeBand.StackOrder(),
		})
	}

	sort.SliceStable(chart.Points, func(i, j int) bool {
		a, b := chart.Points[i], chart.Points[j]
		if a.CountryPOICount != b.CountryPOICount {
			return a.CountryPOICount > b.CountryPOICount
		}
		if firstSeen[a.CountryCode] != firstSeen[b.CountryCode] {
			return firstSeen[a.CountryCode] < firstSeen[b.CountryCode]
		}
		return a.StackOrder < b.StackOrder
	})

	placed := make(map[string]bool, len(firstSeen))
	for _, p := range chart.Points {
		if !placed[p.CountryCode] {
			placed[p.CountryCode] = true
			chart.Categories = append(chart.Categories, p.CountryCode)
		}
	}
	chart.Diagnostics.IncludedCountries = len(chart.Categories)

	return chart
}

// topDistinctCounts returns the n largest distinct POI counts as a set.
func topDistinctCounts(records []entity.FreshnessRecordByPOI, n int) map[int64]bool {
	seen := make(map[int64]bool)
	var distinct []int64
	for _, rec := range records {
		if !seen[rec.CountryPOICount] {
			seen[rec.CountryPOICount] = true
			distinct = append(distinct, rec.CountryPOICount)
		}
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] > distinct[j] })
	if len(distinct) > n {
		distinct = distinct[:n]
	}

	top := make(map[int64]bool, len(distinct))
	for _, c := range distinct {
		top[c] = true
	}
	return top
}

// roundHalfEven arredonda como numpy.round.
func roundHalfEven(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.RoundToEven(v*scale) / scale
}

// StackedBars converts chart points into console bars, base segment first.
func StackedBars(chart entity.TopCountriesChart) []types.StackedBar {
	byCountry := make(map[string][]entity.ChartPoint, len(chart.Categories))
	for _, p := range chart.Points {
		byCountry[p.CountryCode] = append(byCountry[p.CountryCode], p)
	}

	bars := make([]types.StackedBar, 0, len(chart.Categories))
	for _, code := range chart.Categories {
		points := byCountry[code]
		bar := types.StackedBar{Label: code}
		// Descending stack order puts 0-30d at the base.
		for i := len(points) - 1; i >= 0; i-- {
			bar.Segments = append(bar.Segments, types.BarSegment{
				Key:   string(points[i].AgeBand),
				Value: points[i].PctOfBrands,
			})
		}
		bars = append(bars, bar)
	}
	return bars
}
