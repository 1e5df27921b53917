package source

import (
	"context"
	"fmt"
	"os"

	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/repository"
	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
)

// Source kinds accepted by --source.
const (
	KindFile     = "file"
	KindS3       = "s3"
	KindGSheets  = "gsheets"
	KindPostgres = "postgres"
)

// NewSourceRepository escolhe a fonte de dados a partir dos argumentos da CLI.
func NewSourceRepository(ctx context.Context, args *types.CLIArgs) (repository.SourceRepository, error) {
	switch args.Source {
	case "", KindFile:
		dir := args.DataDir
		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			dir = cwd
		}
		return NewFileSource(dir), nil
	case KindS3:
		return NewS3Source(ctx, args.S3Bucket, args.S3Prefix, args.Profile, args.Region)
	case KindGSheets:
		return NewGSheetsSource(args.SheetID)
	case KindPostgres:
		return NewPostgresSource(args.DSN, args.Schema)
	default:
		return nil, fmt.Errorf("%w: %q (use file, s3, gsheets or postgres)", types.ErrUnsupportedSource, args.Source)
	}
}
