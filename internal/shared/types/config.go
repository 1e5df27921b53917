package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Source         string   `json:"source" yaml:"source" toml:"source"`
	DataDir        string   `json:"data_dir" yaml:"data_dir" toml:"data_dir"`
	S3Bucket       string   `json:"s3_bucket" yaml:"s3_bucket" toml:"s3_bucket"`
	S3Prefix       string   `json:"s3_prefix" yaml:"s3_prefix" toml:"s3_prefix"`
	Profile        string   `json:"profile" yaml:"profile" toml:"profile"`
	Region         string   `json:"region" yaml:"region" toml:"region"`
	SheetID        string   `json:"sheet_id" yaml:"sheet_id" toml:"sheet_id"`
	DSN            string   `json:"dsn" yaml:"dsn" toml:"dsn"`
	Schema         string   `json:"schema" yaml:"schema" toml:"schema"`
	GroupedTable   string   `json:"grouped_table" yaml:"grouped_table" toml:"grouped_table"`
	UngroupedTable string   `json:"ungrouped_table" yaml:"ungrouped_table" toml:"ungrouped_table"`
	TopN           int      `json:"top_n" yaml:"top_n" toml:"top_n"`
	OnInvalid      string   `json:"on_invalid" yaml:"on_invalid" toml:"on_invalid"`
	Strict         bool     `json:"strict" yaml:"strict" toml:"strict"`
	ReportName     string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType     []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir            string   `json:"dir" yaml:"dir" toml:"dir"`
	LogFile        string   `json:"log_file" yaml:"log_file" toml:"log_file"`
}
