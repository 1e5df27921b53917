package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3Types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/entity"
	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/repository"
	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
)

// s3GetObjectAPI é o subconjunto do cliente S3 usado pela fonte.
type s3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3SourceImpl lê cada tabela de "s3://<bucket>/<prefix><tabela>.csv".
type S3SourceImpl struct {
	client    s3GetObjectAPI
	bucket    string
	prefix    string
	accountID string
}

// NewS3Source carrega a configuração AWS do perfil informado e valida as
// credenciais com STS antes da primeira leitura.
func NewS3Source(ctx context.Context, bucket, prefix, profile, region string) (repository.SourceRepository, error) {
	if bucket == "" {
		return nil, fmt.Errorf("%w: s3 source needs --s3-bucket", types.ErrUnsupportedSource)
	}

	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}

	identity, err := sts.NewFromConfig(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("error validating AWS credentials: %w", err)
	}

	return newS3SourceWithClient(s3.NewFromConfig(cfg), bucket, prefix, aws.ToString(identity.Account)), nil
}

func newS3SourceWithClient(client s3GetObjectAPI, bucket, prefix, accountID string) *S3SourceImpl {
	return &S3SourceImpl{
		client:    client,
		bucket:    bucket,
		prefix:    prefix,
		accountID: accountID,
	}
}

func (r *S3SourceImpl) objectKey(tableName string) string {
	prefix := r.prefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + tableName + ".csv"
}

func (r *S3SourceImpl) Fetch(ctx context.Context, tableName string) (entity.SourceTable, error) {
	key := r.objectKey(tableName)

	output, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *s3Types.NoSuchKey
		if errors.As(err, &noKey) {
			return entity.SourceTable{}, fmt.Errorf("%w: s3://%s/%s", types.ErrTableNotFound, r.bucket, key)
		}
		return entity.SourceTable{}, fmt.Errorf("error getting s3://%s/%s: %w", r.bucket, key, err)
	}
	defer output.Body.Close()

	return readCSVTable(tableName, output.Body)
}

func (r *S3SourceImpl) Describe() string {
	location := fmt.Sprintf("s3://%s/%s", r.bucket, r.prefix)
	if r.accountID != "" {
		location += fmt.Sprintf(" (account %s)", r.accountID)
	}
	return location
}
