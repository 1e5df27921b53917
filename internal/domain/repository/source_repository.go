package repository

import (
	"context"

	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/entity"
)

// SourceRepository defines the tabular data source the report reads from.
type SourceRepository interface {
	// Fetch returns the named table with its header and text cells.
	Fetch(ctx context.Context, tableName string) (entity.SourceTable, error)
	// Describe returns a human readable location of the source, used in logs and exports.
	Describe() string
}
