package config

import "time"

// Default configuration values.
const (
	defaultServiceName     = "policy-classifier"
	defaultServiceVersion  = "2.1.0"
	defaultServicePort     = 8090
	defaultReadTimeoutSec  = 15
	defaultWriteTimeoutSec = 30
	defaultIdleTimeoutSec  = 60
	defaultShutdownSec     = 10
	defaultMaxBatchSize    = 100
	defaultConcurrency     = 4
	defaultMaxUploadBytes  = 1 << 20
	defaultDBPath          = "data/classifier.db"
	defaultDBMaxConns      = 10
	defaultSearchModel     = "claude-sonnet-4-5"
	defaultSearchRPM       = 10
	defaultSearchBurst     = 2
	defaultSearchTimeout   = 30
	defaultSearchMaxTokens = 1024
	defaultLogLevel        = "info"
)

// Config holds all configuration for the policy classifier service.
type Config struct {
	Service    ServiceConfig    `yaml:"service"`
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Search     SearchConfig     `yaml:"search"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServiceConfig holds service identity settings.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Debug   bool   `env:"APP_DEBUG" yaml:"debug"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"CLASSIFIER_PORT" yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBatchSize    int           `yaml:"max_batch_size"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes"`
}

// DatabaseConfig holds history database settings.
type DatabaseConfig struct {
	Path           string `env:"CLASSIFIER_DB_PATH" yaml:"path"`
	MaxConnections int    `yaml:"max_connections"`
}

// ClassifierConfig holds classification engine settings.
type ClassifierConfig struct {
	// Concurrency bounds the batch analysis worker pool.
	Concurrency int `env:"CLASSIFIER_CONCURRENCY" yaml:"concurrency"`
	// LatencyMin/LatencyMax inject artificial processing delay. Disabled
	// when LatencyMax is zero.
	LatencyMin time.Duration `yaml:"latency_min"`
	LatencyMax time.Duration `yaml:"latency_max"`
}

// SearchConfig holds advanced search collaborator settings.
type SearchConfig struct {
	Enabled   bool          `env:"SEARCH_ENABLED"    yaml:"enabled"`
	APIKey    string        `env:"ANTHROPIC_API_KEY" yaml:"api_key"`
	Model     string        `env:"SEARCH_MODEL"      yaml:"model"`
	MaxTokens int           `yaml:"max_tokens"`
	Timeout   time.Duration `yaml:"timeout"`
	// RequestsPerMinute and Burst bound outbound API traffic.
	RequestsPerMinute int `yaml:"requests_per_minute"`
	Burst             int `yaml:"burst"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level       string `env:"LOG_LEVEL" yaml:"level"`
	Development bool   `yaml:"development"`
}

// Load reads configuration from path, applies defaults, then applies
// environment overrides. Env always wins.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := load(path, &cfg); err != nil {
		return nil, err
	}
	setDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setServerDefaults(&cfg.Server)
	setDatabaseDefaults(&cfg.Database)
	setSearchDefaults(&cfg.Search)
	setLoggingDefaults(&cfg.Logging)
	if cfg.Classifier.Concurrency == 0 {
		cfg.Classifier.Concurrency = defaultConcurrency
	}
	// Classifier latency defaults to disabled.
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
}

func setServerDefaults(s *ServerConfig) {
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = defaultReadTimeoutSec * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = defaultWriteTimeoutSec * time.Second
	}
	if s.IdleTimeout == 0 {
		s.IdleTimeout = defaultIdleTimeoutSec * time.Second
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = defaultShutdownSec * time.Second
	}
	if s.MaxBatchSize == 0 {
		s.MaxBatchSize = defaultMaxBatchSize
	}
	if s.MaxUploadBytes == 0 {
		s.MaxUploadBytes = defaultMaxUploadBytes
	}
}

func setDatabaseDefaults(d *DatabaseConfig) {
	if d.Path == "" {
		d.Path = defaultDBPath
	}
	if d.MaxConnections == 0 {
		d.MaxConnections = defaultDBMaxConns
	}
}

func setSearchDefaults(s *SearchConfig) {
	if s.Model == "" {
		s.Model = defaultSearchModel
	}
	if s.MaxTokens == 0 {
		s.MaxTokens = defaultSearchMaxTokens
	}
	if s.Timeout == 0 {
		s.Timeout = defaultSearchTimeout * time.Second
	}
	if s.RequestsPerMinute == 0 {
		s.RequestsPerMinute = defaultSearchRPM
	}
	if s.Burst == 0 {
		s.Burst = defaultSearchBurst
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
}
