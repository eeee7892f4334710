// Package config loads runtime settings for the longhike binary from the
// process environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel  = "LONGHIKE_LOG_LEVEL"
	EnvLogFormat = "LONGHIKE_LOG_FORMAT"
	EnvTimeout   = "LONGHIKE_TIMEOUT"
)

// ErrInvalid indicates a setting with an unsupported value.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	LogLevel  string        // debug, info, warn or error
	LogFormat string        // text or json
	Timeout   time.Duration // search deadline; 0 disables it
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{LogLevel: "info", LogFormat: "text", Timeout: 0}
}

// Load reads settings from the environment, falling back to the given
// .env files (".env" when none are named). Process environment variables
// take precedence over file values; missing files are skipped.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	fileVals := make(map[string]string)
	for _, name := range envFiles {
		vals, err := godotenv.Read(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", name, err)
		}
		for k, v := range vals {
			if _, seen := fileVals[k]; !seen {
				fileVals[k] = v
			}
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	}

	cfg := Default()
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFormat); ok {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvTimeout, v, err)
		}
		cfg.Timeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first unsupported setting.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q must be 'debug', 'info', 'warn', or 'error'", ErrInvalid, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format %q must be 'text' or 'json'", ErrInvalid, c.LogFormat)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout %v must not be negative", ErrInvalid, c.Timeout)
	}
	return nil
}
