package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/leofalp/llmextract/providers/observability/slogobs"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LLMEXTRACT"

// Config holds the resolved settings for a run.
type Config struct {
	// APIKey authenticates against the chat-completion backend.
	// May reference an environment variable as ${NAME}.
	APIKey string `mapstructure:"api_key"`

	// BaseURL overrides the backend endpoint. Empty keeps the provider default.
	BaseURL string `mapstructure:"base_url"`

	Model     string        `mapstructure:"model"`
	MaxTokens int           `mapstructure:"max_tokens"`
	Timeout   time.Duration `mapstructure:"timeout"`

	// Repair runs malformed JSON through jsonrepair before binding.
	Repair bool `mapstructure:"repair"`

	// ValidateRecords checks bound records against their JSON Schema.
	ValidateRecords bool `mapstructure:"validate_records"`

	// Output is the CLI output format: yaml or json.
	Output string `mapstructure:"output"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig controls the observer and the request logging middleware.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`

	// Requests selects the request logging detail: off, minimal, standard or verbose.
	Requests string `mapstructure:"requests"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Model:     "gpt-4o-mini",
		MaxTokens: 1024,
		Timeout:   60 * time.Second,
		Output:    "yaml",
		Log: LogConfig{
			Level:    "info",
			Format:   "text",
			Requests: "off",
		},
	}
}

// Load resolves the configuration. cfgFile names an explicit config file;
// when empty, llmextract.yaml is looked up in the working directory and in
// $HOME/.llmextract. A missing config file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("api_key", defaults.APIKey)
	v.SetDefault("base_url", defaults.BaseURL)
	v.SetDefault("model", defaults.Model)
	v.SetDefault("max_tokens", defaults.MaxTokens)
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("repair", defaults.Repair)
	v.SetDefault("validate_records", defaults.ValidateRecords)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.requests", defaults.Log.Requests)

	// Environment variables with LLMEXTRACT_ prefix, log.level -> LLMEXTRACT_LOG_LEVEL
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api_key", EnvPrefix+"_API_KEY", "OPENAI_API_KEY"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("base_url", EnvPrefix+"_BASE_URL", "OPENAI_API_BASE_URL"); err != nil {
		return nil, err
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("llmextract")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.llmextract")
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.APIKey = ResolveEnvVars(cfg.APIKey)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	switch c.Output {
	case "yaml", "json":
	default:
		return fmt.Errorf("unknown output format %q (want yaml or json)", c.Output)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.Log.Format)
	}
	switch c.Log.Requests {
	case "off", "minimal", "standard", "verbose":
	default:
		return fmt.Errorf("unknown request log level %q", c.Log.Requests)
	}
	if _, err := slogobs.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

var envRefPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// ResolveEnvVars expands ${ENV_VAR} references in a string.
func ResolveEnvVars(value string) string {
	if value == "" {
		return value
	}
	return envRefPattern.ReplaceAllStringFunc(value, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})
}
