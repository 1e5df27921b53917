package entity

import "strings"

// SourceTable é uma tabela tal como chega da fonte de dados: colunas nomeadas e células em texto.
type SourceTable struct {
	Name    string     `json:"name"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ColumnIndex returns the position of the named column, or -1.
// Header names are compared after trimming surrounding whitespace.
func (t SourceTable) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if strings.TrimSpace(col) == name {
			return i
		}
	}
	return -1
}

// Cell returns the trimmed value at row/col, or "" when the row is short.
func (t SourceTable) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][col])
}
