package entity

// ChartPoint is one stacked segment of the top countries bar chart.
type ChartPoint struct {
	CountryCode     string  `json:"country_code"`
	AgeBand         AgeBand `json:"age_band"`
	CountryPOICount int64   `json:"country_poi_count"`
	// PctOfBrands is the bar height, 0..100.
	PctOfBrands float64 `json:"pct_of_brands"`
	// PctOfBrandsPrecise is the source fraction rounded to 4 decimals, shown in tooltips.
	PctOfBrandsPrecise float64 `json:"pct_of_brands_precise"`
	StackOrder         int     `json:"stack_order"`
}

// ChartSpec declares how the stacked bar chart must be drawn.
type ChartSpec struct {
	Title             string     `json:"title"`
	Width             int        `json:"width"`
	Height            int        `json:"height"`
	YDomain           [2]float64 `json:"y_domain"`
	ColorDomain       []AgeBand  `json:"color_domain"`
	StackSort         string     `json:"stack_sort"`
	XLabelFontSize    int        `json:"x_label_font_size"`
	XLabelAngle       int        `json:"x_label_angle"`
	TooltipPctFormat  string     `json:"tooltip_pct_format"`
	UseContainerWidth bool       `json:"use_container_width"`
}

// ChartDiagnostics registra o que a seleção do top-N fez com a entrada.
type ChartDiagnostics struct {
	InputRows          int          `json:"input_rows"`
	DistinctThresholds int          `json:"distinct_thresholds"`
	IncludedCountries  int          `json:"included_countries"`
	SkippedRows        []SkippedRow `json:"skipped_rows,omitempty"`
}

// TopCountriesChart is the chart-ready dataset.
type TopCountriesChart struct {
	// Categories holds the x axis order of country codes.
	Categories  []string         `json:"categories"`
	Points      []ChartPoint     `json:"points"`
	Spec        ChartSpec        `json:"spec"`
	Diagnostics ChartDiagnostics `json:"diagnostics"`
}
