package app

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"sigbench/internal/bench"
)

// Default configuration values.
const (
	DefaultLogLevel   = "info"
	DefaultConfigName = "sigbench"
	EnvPrefix         = "SIGBENCH"
)

// Config holds runtime options for building the app.
type Config struct {
	// ConfigDir is searched for a sigbench.{toml,yaml,json} file.
	ConfigDir string `mapstructure:"config-dir"`

	// Iterations is the number of calls made in every benchmark phase.
	Iterations uint32 `mapstructure:"iterations"`

	// Message is signed and verified by the benchmark.
	Message string `mapstructure:"message"`

	// LogLevel determines the chattiness of the log output.
	LogLevel string `mapstructure:"log"`

	// LogFile, when set, receives a copy of every log entry.
	LogFile string `mapstructure:"log-file"`

	// Strict makes a run with any failed operation exit non-zero.
	Strict bool `mapstructure:"strict"`
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		ConfigDir:  ".",
		Iterations: bench.DefaultIterations,
		Message:    bench.DefaultMessage,
		LogLevel:   DefaultLogLevel,
	}
}

// Bench returns the harness configuration.
func (c *Config) Bench() bench.Config {
	return bench.Config{
		Iterations: c.Iterations,
		Message:    []byte(c.Message),
	}
}

// Load overlays the config file and environment held by v onto c. A missing
// config file is not an error.
func Load(v *viper.Viper, c *Config) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	dir := c.ConfigDir
	if d := v.GetString("config-dir"); d != "" {
		dir = d
	}
	v.AddConfigPath(dir)
	v.SetConfigName(DefaultConfigName)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return v.Unmarshal(c)
}
