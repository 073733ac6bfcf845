package config

import (
	"errors"
	"fmt"
	"go-frankfurter/frankfurter"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
)

// DefaultFile the .env file loaded when Load is given no files.
const DefaultFile = ".env"

// ColorMode when to color the output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses auto, always or never, ignoring case.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	}
	return "", fmt.Errorf("invalid color mode %q: expected auto, always or never", s)
}

// LogLevel the minimum level logged.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
	LogNone  LogLevel = "none"
)

// ParseLogLevel parses debug, info, warn, error or none, ignoring case.
func ParseLogLevel(s string) (LogLevel, error) {
	switch l := LogLevel(strings.ToLower(strings.TrimSpace(s))); l {
	case LogDebug, LogInfo, LogWarn, LogError, LogNone:
		return l, nil
	}
	return "", fmt.Errorf("invalid log level %q: expected debug, info, warn, error or none", s)
}

// Option the go-kit level filter for l.
func (l LogLevel) Option() level.Option {
	switch l {
	case LogDebug:
		return level.AllowDebug()
	case LogInfo:
		return level.AllowInfo()
	case LogError:
		return level.AllowError()
	case LogNone:
		return level.AllowNone()
	default:
		return level.AllowWarn()
	}
}

// Config of the command line client.
type Config struct {
	// URL of the Frankfurter API.
	URL string
	// Timeout of a single request, including reading the response.
	Timeout time.Duration
	// LogLevel the minimum level logged to stderr.
	LogLevel LogLevel
	// Color when to color the output.
	Color ColorMode
	// PushgatewayURL where metrics are pushed on exit, disabled when empty.
	PushgatewayURL string
}

// Load reads the configuration from the environment, after loading the given
// .env files (DefaultFile when none). Missing files are skipped and variables
// already set in the environment take precedence over the files.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{DefaultFile}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	timeout, err := getEnvDuration("FRANKFURTER_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	config := &Config{
		URL:            getEnvString("FRANKFURTER_URL", frankfurter.DefaultURL),
		Timeout:        timeout,
		LogLevel:       LogLevel(strings.ToLower(getEnvString("LOG_LEVEL", string(LogWarn)))),
		Color:          ColorMode(strings.ToLower(getEnvString("FRANKFURTER_COLOR", string(ColorAuto)))),
		PushgatewayURL: getEnvString("METRICS_PUSHGATEWAY_URL", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks every setting, reporting the first invalid one.
func (c *Config) Validate() error {
	if err := validateURL("FRANKFURTER_URL", c.URL); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("FRANKFURTER_TIMEOUT: must be positive, got %s", c.Timeout)
	}
	if _, err := ParseLogLevel(string(c.LogLevel)); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if _, err := ParseColorMode(string(c.Color)); err != nil {
		return fmt.Errorf("FRANKFURTER_COLOR: %w", err)
	}
	if c.PushgatewayURL != "" {
		if err := validateURL("METRICS_PUSHGATEWAY_URL", c.PushgatewayURL); err != nil {
			return err
		}
	}
	return nil
}

func validateURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%s: %q is not an absolute URL", key, raw)
	}
	return nil
}

func getEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}
