// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	HTTP    HTTPConfig    `mapstructure:"http"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type HTTPConfig struct {
	Timeout int `mapstructure:"timeout"` // milliseconds
}

// OutputConfig controls the generated output.
type OutputConfig struct {
	// PrintAll prints every compiled document instead of only the first.
	PrintAll bool `mapstructure:"print_all"`
	// DefaultName is used when a schema document has no usable title.
	DefaultName string `mapstructure:"default_name"`
	// AllowAdditionalProperties leaves additionalProperties untouched on the
	// documents handed to the compiler.
	AllowAdditionalProperties bool `mapstructure:"allow_additional_properties"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RequestTimeout converts the configured milliseconds to a time.Duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.HTTP.Timeout) * time.Millisecond
}
