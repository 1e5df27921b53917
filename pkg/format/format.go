// Package format aplica as máscaras de exibição ("{:,.0f}", "{:.1f}%") usadas nas tabelas do relatório.
package format

import (
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// pattern matches "{:,.2f}suffix" and "{:.1f}suffix".
var pattern = regexp.MustCompile(`^\{:(,?)\.(\d+)f\}(.*)$`)

// Apply renders v with a brace format string. An empty or unknown
// format falls back to %v.
func Apply(spec string, v float64) string {
	m := pattern.FindStringSubmatch(spec)
	if m == nil {
		return fmt.Sprint(v)
	}
	decimals, _ := strconv.Atoi(m[2])
	if m[1] == "," {
		return Thousands(v, decimals) + m[3]
	}
	return strconv.FormatFloat(v, 'f', decimals, 64) + m[3]
}

// Thousands formats v with comma grouping, e.g. 1234567 -> "1,234,567".
func Thousands(v float64, decimals int) string {
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

// Percent formats a fraction as a percentage with grouping, e.g. 0.125 -> "12.50%".
func Percent(fraction float64, decimals int) string {
	return Thousands(fraction*100, decimals) + "%"
}
