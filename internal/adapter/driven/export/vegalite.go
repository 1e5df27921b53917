package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/entity"
)

const vegaLiteSchema = "https://vega.github.io/schema/vega-lite/v5.json"

// VegaLiteSpec builds the stacked bar chart as a Vega-Lite document.
// Data values reuse the JSON names of entity.ChartPoint.
func VegaLiteSpec(chart entity.TopCountriesChart) map[string]interface{} {
	spec := chart.Spec

	colorDomain := make([]string, len(spec.ColorDomain))
	colorRange := make([]string, len(spec.ColorDomain))
	for i, band := range spec.ColorDomain {
		colorDomain[i] = string(band)
		colorRange[i] = bandPalette[band]
	}

	var width interface{} = spec.Width
	if spec.UseContainerWidth {
		width = "container"
	}

	categories := chart.Categories
	if categories == nil {
		categories = []string{}
	}
	points := chart.Points
	if points == nil {
		points = []entity.ChartPoint{}
	}

	return map[string]interface{}{
		"$schema": vegaLiteSchema,
		"title":   spec.Title,
		"width":   width,
		"height":  spec.Height,
		"data":    map[string]interface{}{"values": points},
		"mark":    "bar",
		"encoding": map[string]interface{}{
			"x": map[string]interface{}{
				"field": "country_code",
				"type":  "nominal",
				"sort":  categories,
				"title": nil,
			},
			"y": map[string]interface{}{
				"field": "pct_of_brands",
				"type":  "quantitative",
				"title": "Percent of Brands",
				"scale": map[string]interface{}{"domain": []float64{spec.YDomain[0], spec.YDomain[1]}},
			},
			"color": map[string]interface{}{
				"field": "age_band",
				"type":  "nominal",
				"title": "File Age Range",
				"scale": map[string]interface{}{"domain": colorDomain, "range": colorRange},
			},
			"order": map[string]interface{}{
				"field": "stack_order",
				"type":  "ordinal",
				"sort":  spec.StackSort,
			},
			"tooltip": []map[string]interface{}{
				{"field": "country_code", "type": "nominal", "title": "Country Code"},
				{"field": "pct_of_brands_precise", "type": "quantitative", "format": spec.TooltipPctFormat, "title": "Percent of Brands"},
				{"field": "age_band", "type": "nominal", "title": "File Age Range"},
			},
		},
		"config": map[string]interface{}{
			"axisX": map[string]interface{}{
				"labelFontSize": spec.XLabelFontSize,
				"labelAngle":    spec.XLabelAngle,
			},
		},
	}
}

func (r *ExportRepositoryImpl) ExportChartToVegaLite(chart entity.TopCountriesChart, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "vl.json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating Vega-Lite file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(VegaLiteSpec(chart)); err != nil {
		return "", fmt.Errorf("error encoding Vega-Lite spec: %w", err)
	}

	return filepath.Abs(outputFilename)
}
