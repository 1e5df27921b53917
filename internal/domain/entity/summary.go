package entity

// CountrySummaryRow is one line of the per-country freshness summary.
// Percentages are expressed in 0..100.
type CountrySummaryRow struct {
	CountryCode        string  `json:"country_code"`
	CountryRank        int     `json:"country_rank"`
	DistinctBrandCount int64   `json:"distinct_brand_count"`
	PctLT30d           float64 `json:"pct_lt_30d"`
	PctLT60d           float64 `json:"pct_lt_60d"`
	PctLT90d           float64 `json:"pct_lt_90d"`
}

// SkippedRow descreve uma linha descartada pela política "skip".
type SkippedRow struct {
	Table  string `json:"table"`
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// SummaryDiagnostics counts what the summary build silently absorbed.
type SummaryDiagnostics struct {
	InputRows int `json:"input_rows"`
	// Countries present on only one side of the totals/bands join.
	DroppedCountries []string `json:"dropped_countries,omitempty"`
	// Band cells that were absent or blank and counted as 0.
	ZeroFilledCells int          `json:"zero_filled_cells"`
	SkippedRows     []SkippedRow `json:"skipped_rows,omitempty"`
}

// CountrySummary agrega as linhas do resumo com seus diagnósticos.
type CountrySummary struct {
	Rows        []CountrySummaryRow `json:"rows"`
	Table       TableSpec           `json:"table"`
	Diagnostics SummaryDiagnostics  `json:"diagnostics"`
}

// FieldValue returns the numeric value behind a summary column.
// The country code is textual, so it reports false.
func (r CountrySummaryRow) FieldValue(field string) (float64, bool) {
	switch field {
	case "country_rank":
		return float64(r.CountryRank), true
	case "distinct_brand_count":
		return float64(r.DistinctBrandCount), true
	case "pct_lt_30d":
		return r.PctLT30d, true
	case "pct_lt_60d":
		return r.PctLT60d, true
	case "pct_lt_90d":
		return r.PctLT90d, true
	}
	return 0, false
}
