package console

import (
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	m.Run()
}

func TestRenderBar(t *testing.T) {
	bar := renderBar([]types.BarSegment{
		{Key: "0-30d", Value: 50},
		{Key: "31-60d", Value: 30},
		{Key: "120d+", Value: 20},
	})

	assert.Equal(t, barWidth, strings.Count(bar, "█"))
}

func TestRenderBar_PadsAndClamps(t *testing.T) {
	partial := renderBar([]types.BarSegment{{Key: "0-30d", Value: 10}})
	assert.Equal(t, 5, strings.Count(partial, "█"))
	assert.Equal(t, barWidth-5, strings.Count(partial, " "))

	over := renderBar([]types.BarSegment{{Key: "0-30d", Value: 80}, {Key: "120d+", Value: 80}})
	assert.Equal(t, barWidth, strings.Count(over, "█"))

	empty := renderBar(nil)
	assert.Equal(t, strings.Repeat(" ", barWidth), empty)
}

func TestTable_Render(t *testing.T) {
	table := NewConsole().CreateTable()
	table.AddColumn("Country Code")
	table.AddColumn("Distinct Brand Count")
	table.AddRow("US", "2,000")
	table.AddRow("DE", 30)
	table.SetStriped(true)

	out := table.Render()
	assert.Contains(t, out, "Country Code")
	assert.Contains(t, out, "2,000")
	assert.Contains(t, out, "30")
}

func TestColorFor_Unknown(t *testing.T) {
	assert.Equal(t, pterm.FgGray, colorFor("unknown"))
	assert.Equal(t, pterm.FgGreen, colorFor("0-30d"))
}
