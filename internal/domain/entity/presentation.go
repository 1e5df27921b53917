package entity

import "time"

// ColumnFormat pairs a display header with a brace format string
// ("{:,.0f}", "{:.1f}%") understood by the presentation adapters.
type ColumnFormat struct {
	Field  string `json:"field"`
	Header string `json:"header"`
	Format string `json:"format,omitempty"`
}

// TableSpec descreve a renderização da tabela de resumo.
type TableSpec struct {
	Columns []ColumnFormat `json:"columns"`
	// StripeColor is applied to even rows (0-based) for readability.
	StripeColor string `json:"stripe_color"`
}

// PresentationConfig carries the page chrome that used to be injected as CSS.
type PresentationConfig struct {
	PageTitle      string `json:"page_title"`
	WideLayout     bool   `json:"wide_layout"`
	HideToolbar    bool   `json:"hide_toolbar"`
	HideFooter     bool   `json:"hide_footer"`
	HideHeader     bool   `json:"hide_header"`
	CompactPadding bool   `json:"compact_padding"`
}

// FreshnessReport agrega tudo o que é apresentado em uma execução.
type FreshnessReport struct {
	GeneratedAt  time.Time          `json:"generated_at"`
	Source       string             `json:"source"`
	Presentation PresentationConfig `json:"presentation"`
	Summary      *CountrySummary    `json:"summary,omitempty"`
	Chart        *TopCountriesChart `json:"chart,omitempty"`
}
