package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Xapi     XapiConfig     `yaml:"xapi"`
}

// ServerConfig holds HTTP server settings for the ingest host.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	RunMigrations   bool          `yaml:"run_migrations"     env:"DATABASE_RUN_MIGRATIONS"     env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// XapiConfig holds statement-pipeline settings. It replaces the mutable
// process-wide toggles of earlier designs: everything the pipeline needs is
// passed in here at construction time.
type XapiConfig struct {
	// LogStatements enables an info-level log line per recorded statement.
	// Defaults to true in Load; an env-default tag would re-apply "true"
	// over an explicit YAML false because cleanenv treats the zero value
	// as unset.
	LogStatements bool `yaml:"log_statements" env:"XAPI_LOG_STATEMENTS"`
	// DefaultLocale selects the language-map entry used for human-readable
	// rendering of verbs and definitions.
	DefaultLocale string `yaml:"default_locale" env:"XAPI_DEFAULT_LOCALE" env-default:"en-US"`
	// QueueSize bounds the buffer of the deferred-recording queue.
	QueueSize int `yaml:"queue_size" env:"XAPI_QUEUE_SIZE" env-default:"128"`
}
