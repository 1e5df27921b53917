package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "config.toml",
			content: `source = "S3"
s3_bucket = "freshness-exports"
top_n = 10
on_invalid = "skip"
report_type = ["CSV", "html"]
`,
		},
		{
			name: "yaml",
			file: "config.yml",
			content: `source: s3
s3_bucket: freshness-exports
top_n: 10
on_invalid: Skip
report_type: [csv, html]
`,
		},
		{
			name:    "json",
			file:    "config.JSON",
			content: `{"source": "s3", "s3_bucket": "freshness-exports", "top_n": 10, "on_invalid": "skip", "report_type": ["csv", "html"]}`,
		},
	}

	repo := NewConfigRepository()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := repo.LoadConfigFile(writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, "s3", cfg.Source)
			assert.Equal(t, "freshness-exports", cfg.S3Bucket)
			assert.Equal(t, 10, cfg.TopN)
			assert.Equal(t, types.OnInvalidSkip, cfg.OnInvalid)
			assert.Equal(t, []string{"csv", "html"}, cfg.ReportType)
		})
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = repo.LoadConfigFile(t.TempDir())
	assert.ErrorContains(t, err, "is a directory")

	_, err = repo.LoadConfigFile(writeConfig(t, "config.ini", "source=file"))
	assert.ErrorContains(t, err, "unsupported config file format")

	_, err = repo.LoadConfigFile(writeConfig(t, "config.json", "{not json"))
	assert.ErrorContains(t, err, "error parsing JSON file")

	_, err = repo.LoadConfigFile(writeConfig(t, "config.yaml", "on_invalid: retry\n"))
	assert.ErrorIs(t, err, types.ErrInvalidPolicy)

	_, err = repo.LoadConfigFile(writeConfig(t, "config.yaml", "top_n: -1\n"))
	assert.ErrorContains(t, err, "top_n")
}
