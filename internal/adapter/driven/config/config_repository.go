package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/repository"
	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	if err := normalize(&config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}

	return &config, nil
}

// normalize padroniza caixa e espaços e rejeita valores que a CLI também recusaria.
func normalize(config *types.Config) error {
	config.Source = strings.ToLower(strings.TrimSpace(config.Source))
	config.OnInvalid = strings.ToLower(strings.TrimSpace(config.OnInvalid))

	switch config.OnInvalid {
	case "", types.OnInvalidAbort, types.OnInvalidSkip:
	default:
		return fmt.Errorf("%w: got %q", types.ErrInvalidPolicy, config.OnInvalid)
	}

	if config.TopN < 0 {
		return fmt.Errorf("top_n must not be negative, got %d", config.TopN)
	}

	for i, reportType := range config.ReportType {
		config.ReportType[i] = strings.ToLower(strings.TrimSpace(reportType))
	}
	return nil
}
