package config

// Config is the root configuration for a seriesagg run.
type Config struct {
	Instance InstanceConfig `yaml:"instance"`
	Input    InputConfig    `yaml:"input"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Database DatabaseConfig `yaml:"database"`
	Writer   WriterConfig   `yaml:"writer"`
	Log      LogConfig      `yaml:"log"`
}

// InstanceConfig identifies this process in logs and stored results.
type InstanceConfig struct {
	ID string `yaml:"id"`
}

// InputConfig describes where raw records are read from.
type InputConfig struct {
	Path   string `yaml:"path"`   // File path, or "-" for stdin
	Format string `yaml:"format"` // auto, json or jsonl
}

// PipelineConfig holds batch processing settings.
type PipelineConfig struct {
	Concurrency int  `yaml:"concurrency"`
	FailFast    bool `yaml:"fail_fast"` // Stop on the first invalid record
}

// DatabaseConfig holds the optional PostgreSQL sink for results.
type DatabaseConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Postgres DBConfig `yaml:"postgres"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// WriterConfig holds batch writer settings.
type WriterConfig struct {
	BatchSize int `yaml:"batch_size"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}
