package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplayStackedBars(title string, bars []StackedBar, legend []string)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	// SetStriped highlights even rows (0-based) when enabled.
	SetStriped(enabled bool)
	Render() string
}

// StackedBar é uma barra empilhada: um rótulo e seus segmentos na ordem de empilhamento (base primeiro).
type StackedBar struct {
	Label    string       `json:"label"`
	Segments []BarSegment `json:"segments"`
}

// BarSegment is one piece of a stacked bar. Value is on a 0..100 scale.
type BarSegment struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}
