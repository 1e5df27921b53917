package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/entity"
	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/repository"
	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
)

// FileSourceImpl lê cada tabela de "<dir>/<tabela>.csv".
type FileSourceImpl struct {
	dir string
}

// NewFileSource cria uma fonte baseada em arquivos CSV locais.
func NewFileSource(dir string) repository.SourceRepository {
	return &FileSourceImpl{dir: dir}
}

func (r *FileSourceImpl) Fetch(ctx context.Context, tableName string) (entity.SourceTable, error) {
	if err := ctx.Err(); err != nil {
		return entity.SourceTable{}, err
	}

	path := filepath.Join(r.dir, tableName+".csv")
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entity.SourceTable{}, fmt.Errorf("%w: %s", types.ErrTableNotFound, path)
		}
		return entity.SourceTable{}, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer file.Close()

	return readCSVTable(tableName, file)
}

func (r *FileSourceImpl) Describe() string {
	return "directory " + r.dir
}
