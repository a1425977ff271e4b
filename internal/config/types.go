package config

import "time"

// Built-in values used when no config file is given or a key is left out.
const (
	DefaultBaseURL    = "https://fakestoreapi.com"
	DefaultLogLevel   = "warn"
	DefaultItemFormat = "- {{.title}} (${{.price}})"
)

// Config holds the tool's settings. Every field has a usable default.
type Config struct {
	BaseURL        string        `yaml:"base_url"`
	TimeoutSeconds int           `yaml:"timeout_seconds"`
	Logging        LoggingConfig `yaml:"logging"`
	Output         OutputConfig  `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// OutputConfig controls how list results are rendered.
type OutputConfig struct {
	// ItemFormat is a text/template executed once per listed product with
	// the keys "title" and "price".
	ItemFormat string `yaml:"item_format"`
}

// Default returns the configuration used when no file is loaded.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Timeout converts TimeoutSeconds; zero means the client never times out.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func applyDefaults(cfg *Config) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Output.ItemFormat == "" {
		cfg.Output.ItemFormat = DefaultItemFormat
	}
}
