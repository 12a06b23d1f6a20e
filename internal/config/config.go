// ABOUTME: Configuration loading for the mokom client
// ABOUTME: YAML with ${VAR} expansion, .env loading, and duration parsing

package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default endpoint and timeout when nothing is configured
const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 30 * time.Second
)

// envBaseURL overrides api.base_url when set
const envBaseURL = "MOKOM_API_BASE"

// Config is the complete client configuration
type Config struct {
	API     APIConfig     `yaml:"api"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
	Voice   VoiceConfig   `yaml:"voice"`
}

// APIConfig holds backend endpoint configuration
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"-"`

	// Raw string value for YAML unmarshaling
	TimeoutRaw string `yaml:"timeout"`
}

// AuthConfig holds token storage configuration
type AuthConfig struct {
	// TokenPath overrides the default token file location
	TokenPath string `yaml:"token_path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// VoiceConfig holds default voice room settings
type VoiceConfig struct {
	Room        string `yaml:"room"`
	Participant string `yaml:"participant"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a configuration file and returns a parsed Config. A .env file
// in the working directory is loaded first so ${VAR} expansion and env
// overrides see it. Environment variables in the format ${VAR_NAME} are
// expanded; duration strings are parsed into time.Duration values.
func Load(path string) (*Config, error) {
	// Best effort; missing .env just means plain environment variables
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.parseDurations(); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills unset fields, with MOKOM_API_BASE taking precedence
// over the file value for the endpoint.
func (c *Config) applyDefaults() {
	if base := os.Getenv(envBaseURL); base != "" {
		c.API.BaseURL = base
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 && c.API.TimeoutRaw == "" {
		c.API.Timeout = DefaultTimeout
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Voice.Room == "" {
		c.Voice.Room = "mokom-voice"
	}
	if c.Voice.Participant == "" {
		c.Voice.Participant = "mokom-user"
	}
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding
// environment variable values. Unset variables become empty strings.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func (c *Config) parseDurations() error {
	if c.API.TimeoutRaw != "" {
		timeout, err := time.ParseDuration(c.API.TimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing api.timeout %q: %w", c.API.TimeoutRaw, err)
		}
		c.API.Timeout = timeout
	}
	return nil
}
