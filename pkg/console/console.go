package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/pterm/pterm"

	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
)

// barWidth é a largura, em caracteres, de uma barra cheia (100%).
const barWidth = 50

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
	}
}

// stripeStyle destaca as linhas pares, como o fundo #D7E8ED do relatório.
var stripeStyle = pterm.NewStyle(pterm.BgLightBlue, pterm.FgBlack)

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
	striped bool
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// SetStriped liga o destaque das linhas pares (contando a partir de 0).
func (t *Table) SetStriped(enabled bool) {
	t.striped = enabled
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for i, row := range t.rows {
		if t.striped && i%2 == 0 {
			styled := make([]string, len(row))
			for j, cell := range row {
				styled[j] = stripeStyle.Sprint(cell)
			}
			row = styled
		}
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// bandColors segue as cores do gráfico exportado, por faixa de idade.
var bandColors = map[string]pterm.Color{
	"120d+":   pterm.FgBlue,
	"91-120d": pterm.FgYellow,
	"61-90d":  pterm.FgRed,
	"31-60d":  pterm.FgCyan,
	"0-30d":   pterm.FgGreen,
}

func colorFor(key string) pterm.Color {
	if c, ok := bandColors[key]; ok {
		return c
	}
	return pterm.FgGray
}

// renderBar desenha uma barra empilhada em escala fixa de 0 a 100.
// Os limites acumulados são arredondados para que a soma não ultrapasse a largura.
func renderBar(segments []types.BarSegment) string {
	var b strings.Builder
	cumulative := 0.0
	drawn := 0
	for _, seg := range segments {
		if seg.Value <= 0 {
			continue
		}
		cumulative += seg.Value
		end := int(math.Round(math.Min(cumulative, 100) * barWidth / 100))
		if end <= drawn {
			continue
		}
		b.WriteString(colorFor(seg.Key).Sprint(strings.Repeat("█", end-drawn)))
		drawn = end
	}
	if drawn < barWidth {
		b.WriteString(strings.Repeat(" ", barWidth-drawn))
	}
	return b.String()
}

// DisplayStackedBars exibe uma barra empilhada por rótulo, dentro de um painel.
func (c *Console) DisplayStackedBars(title string, bars []types.StackedBar, legend []string) {
	if len(bars) == 0 {
		pterm.Warning.Println("No data to chart")
		return
	}

	tableData := pterm.TableData{
		{"Country", "0%" + strings.Repeat(" ", barWidth-6) + "100%"},
	}
	for _, bar := range bars {
		tableData = append(tableData, []string{bar.Label, renderBar(bar.Segments)})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	keys := make([]string, len(legend))
	for i, key := range legend {
		keys[i] = colorFor(key).Sprint("█ ") + key
	}
	content := renderedTable + "\n\n" + strings.Join(keys, "   ")

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(content)

	fmt.Println("\n" + panel)
}
