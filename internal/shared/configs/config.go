package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Ingestion   IngestionConfig   `mapstructure:"ingestion" validate:"required"`
	Query       QueryConfig       `mapstructure:"query" validate:"required"`
	Probes      ProbesConfig      `mapstructure:"probes" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// IngestionConfig holds the log tail ingestion configuration.
// IntervalSeconds bounds the lag between log emission and queryability.
type IngestionConfig struct {
	SourcePath         string `mapstructure:"source_path" validate:"required"`
	Format             string `mapstructure:"format" validate:"required,oneof=combined combined_extended"`
	IntervalSeconds    int    `mapstructure:"interval_seconds" validate:"required,min=1"`
	CycleBudgetSeconds int    `mapstructure:"cycle_budget_seconds" validate:"required,min=1"`
	AppendMaxRetries   int    `mapstructure:"append_max_retries" validate:"min=0"`
	AppendBackoffMs    int    `mapstructure:"append_backoff_ms" validate:"min=0"`
}

// QueryConfig holds the query-side limits and scan budgets.
type QueryConfig struct {
	MaxPageSize   int `mapstructure:"max_page_size" validate:"required,min=1"`
	MaxRangeHours int `mapstructure:"max_range_hours" validate:"required,min=1"`
	MaxScanRows   int `mapstructure:"max_scan_rows" validate:"required,min=1"`
}

// ProbesConfig holds the uptime health-check prober configuration.
type ProbesConfig struct {
	IntervalSeconds int           `mapstructure:"interval_seconds" validate:"required,min=1"`
	TimeoutSeconds  int           `mapstructure:"timeout_seconds" validate:"required,min=1"`
	Targets         []ProbeTarget `mapstructure:"targets" validate:"dive"`
}

// ProbeTarget is one HTTP endpoint checked by the prober.
type ProbeTarget struct {
	Name string `mapstructure:"name" validate:"required"`
	URL  string `mapstructure:"url" validate:"required,url"`
}
