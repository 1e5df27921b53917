package source

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/entity"
	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/repository"
	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
)

const pqUndefinedTable = "42P01"

// PostgresSourceImpl lê cada tabela com SELECT * e entrega as células como texto.
type PostgresSourceImpl struct {
	db     *sqlx.DB
	schema string
}

// NewPostgresSource abre a conexão com o banco informado no DSN.
func NewPostgresSource(dsn, schema string) (repository.SourceRepository, error) {
	if dsn == "" {
		return nil, fmt.Errorf("%w: postgres source needs --dsn", types.ErrUnsupportedSource)
	}
	if schema == "" {
		schema = "public"
	}

	conn, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	conn.SetMaxOpenConns(2)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresSourceImpl{db: conn, schema: schema}, nil
}

func (r *PostgresSourceImpl) Fetch(ctx context.Context, tableName string) (entity.SourceTable, error) {
	table := entity.SourceTable{Name: tableName, Rows: [][]string{}}

	query := fmt.Sprintf("SELECT * FROM %s.%s", pq.QuoteIdentifier(r.schema), pq.QuoteIdentifier(tableName))
	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUndefinedTable {
			return table, fmt.Errorf("%w: %s.%s", types.ErrTableNotFound, r.schema, tableName)
		}
		return table, fmt.Errorf("error querying %s.%s: %w", r.schema, tableName, err)
	}
	defer rows.Close()

	table.Columns, err = rows.Columns()
	if err != nil {
		return table, err
	}

	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return table, fmt.Errorf("error scanning %s.%s: %w", r.schema, tableName, err)
		}
		record := make([]string, len(values))
		for i, v := range values {
			record[i] = cellText(v)
		}
		table.Rows = append(table.Rows, record)
	}

	return table, rows.Err()
}

func (r *PostgresSourceImpl) Describe() string {
	return "postgres schema " + r.schema
}

// Close libera o pool de conexões.
func (r *PostgresSourceImpl) Close() error {
	return r.db.Close()
}

// cellText renders a scanned value the way a spreadsheet export would.
func cellText(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
