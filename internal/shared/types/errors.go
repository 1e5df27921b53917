package types

import (
	"errors"
	"fmt"
)

var (
	ErrMissingColumn     = errors.New("required column not found")
	ErrNotNumeric        = errors.New("value is not numeric")
	ErrFractionRange     = errors.New("fraction outside [0, 1]")
	ErrUnknownAgeBand    = errors.New("unknown age band")
	ErrEmptyCountryCode  = errors.New("empty country code")
	ErrDuplicatePivotKey = errors.New("country and age band appear more than once")
	ErrRankConflict      = errors.New("country carries more than one rank")
	ErrJoinDrop          = errors.New("countries dropped by totals/bands join")
	ErrTableNotFound     = errors.New("source table not found")
	ErrUnsupportedSource = errors.New("unsupported data source")
	ErrInvalidPolicy     = errors.New("invalid value for --on-invalid (use abort or skip)")
	ErrNothingToRender   = errors.New("both summary and chart are disabled")
)

// RowError aponta a tabela, a linha (1-based, sem cabeçalho) e a coluna de um valor inválido.
type RowError struct {
	Table  string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s row %d: %v", e.Table, e.Row, e.Err)
	}
	return fmt.Sprintf("%s row %d, column %s (%q): %v", e.Table, e.Row, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
