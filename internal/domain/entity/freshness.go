package entity

import (
	"fmt"
	"strings"
)

// AgeBand is one of the fixed freshness buckets of a brand file.
type AgeBand string

const (
	Band0To30   AgeBand = "0-30d"
	Band31To60  AgeBand = "31-60d"
	Band61To90  AgeBand = "61-90d"
	Band91To120 AgeBand = "91-120d"
	Band120Plus AgeBand = "120d+"
)

// AgeBands lists the bands from freshest to oldest.
var AgeBands = []AgeBand{Band0To30, Band31To60, Band61To90, Band91To120, Band120Plus}

// StackSequence is the fixed order used for stacking and colouring the chart.
// Its index is the stack order of a band.
var StackSequence = []AgeBand{Band120Plus, Band91To120, Band61To90, Band31To60, Band0To30}

// ParseAgeBand converte o texto da planilha em um AgeBand conhecido.
func ParseAgeBand(s string) (AgeBand, error) {
	candidate := AgeBand(strings.TrimSpace(s))
	for _, band := range AgeBands {
		if candidate == band {
			return band, nil
		}
	}
	return "", fmt.Errorf("unknown age band %q", s)
}

// StackOrder returns the position of the band in StackSequence.
func (b AgeBand) StackOrder() int {
	for i, band := range StackSequence {
		if band == b {
			return i
		}
	}
	return -1
}

// FreshnessRecord is one row of the "Brand freshness grouped" table.
// Pointer fields are nil when the source cell was blank.
type FreshnessRecord struct {
	CountryCode string   `json:"country_code"`
	CountryRank *int     `json:"country_rank,omitempty"`
	AgeBand     AgeBand  `json:"age_band"`
	BrandCount  *float64 `json:"brand_count,omitempty"`
	PctOfBrands *float64 `json:"pct_of_brands,omitempty"`
}

// FreshnessRecordByPOI is one row of the "Brand freshness" table.
type FreshnessRecordByPOI struct {
	CountryCode     string  `json:"country_code"`
	AgeBand         AgeBand `json:"age_band"`
	CountryPOICount int64   `json:"country_poi_count"`
	PctOfBrands     float64 `json:"pct_of_brands"`
}
