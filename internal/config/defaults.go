package config

// Default values for optional configuration fields.
const (
	DefaultInstanceID  = "seriesagg"
	DefaultInputPath   = "-"
	DefaultInputFormat = "auto"
	DefaultConcurrency = 8
	DefaultDBPort      = 5432
	DefaultDBSSLMode   = "prefer"
	DefaultMaxConns    = 4
	DefaultMinConns    = 1
	DefaultBatchSize   = 1000
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

func (c *Config) applyDefaults() {
	if c.Instance.ID == "" {
		c.Instance.ID = DefaultInstanceID
	}

	if c.Input.Path == "" {
		c.Input.Path = DefaultInputPath
	}
	if c.Input.Format == "" {
		c.Input.Format = DefaultInputFormat
	}

	if c.Pipeline.Concurrency == 0 {
		c.Pipeline.Concurrency = DefaultConcurrency
	}

	applyDBDefaults(&c.Database.Postgres)

	if c.Writer.BatchSize == 0 {
		c.Writer.BatchSize = DefaultBatchSize
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
