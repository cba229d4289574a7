package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/itaas-cloud/vsphere-console-sdk/internal/common/core"
)

type Config struct {
	Url                string `yaml:"url"`
	Username           string `yaml:"username"`
	Password           string `yaml:"password"`
	Token              string `yaml:"token"`
	InsecureSkipVerify bool   `yaml:"insecure"`
	// Mostly used for log level.
	Development  bool          `yaml:"development"`
	RetryMode    core.RetryMode `yaml:"-"`
	RetryMaxTime time.Duration  `yaml:"retry_max_time"`

	RetryModeName string `yaml:"retry_mode"`
}

var retryModeMap = map[string]core.RetryMode{
	"none":    core.None,
	"backoff": core.Backoff,
}

// New returns a new Config with sensible defaults.
//
// The following environment variables are honored:
//
// - CONSOLE_URL: the base URL of the console API.
// - CONSOLE_USER: the username to use when connecting to the API.
// - CONSOLE_PASSWORD: the password to use when connecting to the API.
// - CONSOLE_TOKEN: the authentication token to use when connecting to the API.
// - CONSOLE_INSECURE: whether to skip verifying the server's TLS certificate.
// - CONSOLE_DEVELOPMENT: whether to enable development mode.
// - CONSOLE_RETRY_MODE: the retry mode to use. Defaults to "none". Valid values are "none", "backoff".
// - CONSOLE_RETRY_MAX_TIME: the maximum total time spent retrying. Defaults to 5 minutes.
//
// CONSOLE_URL is required; credentials are optional because development
// deployments of the console run without authentication.
func New() (*Config, error) {
	if os.Getenv("CONSOLE_URL") == "" {
		return nil, fmt.Errorf("CONSOLE_URL is not set, please set it to the console API URL")
	}

	retryMode := core.None
	retryMaxTime := 5 * time.Minute

	if v := os.Getenv("CONSOLE_RETRY_MODE"); v != "" {
		retry, ok := retryModeMap[v]
		if !ok {
			fmt.Println("[ERROR] unknown retry mode, disabling retries")
		} else {
			retryMode = retry
		}
	}

	if v := os.Getenv("CONSOLE_RETRY_MAX_TIME"); v != "" {
		duration, err := time.ParseDuration(v)
		if err == nil {
			retryMaxTime = duration
		} else {
			fmt.Println("[ERROR] failed to parse retry max time, keeping default")
		}
	}

	insecure := false
	if v := os.Getenv("CONSOLE_INSECURE"); v != "" {
		insecure, _ = strconv.ParseBool(v)
	}

	development := false
	if v := os.Getenv("CONSOLE_DEVELOPMENT"); v != "" {
		development, _ = strconv.ParseBool(v)
	}

	return &Config{
		Url:                os.Getenv("CONSOLE_URL"),
		Username:           os.Getenv("CONSOLE_USER"),
		Password:           os.Getenv("CONSOLE_PASSWORD"),
		Token:              os.Getenv("CONSOLE_TOKEN"),
		InsecureSkipVerify: insecure,
		Development:        development,
		RetryMode:          retryMode,
		RetryMaxTime:       retryMaxTime,
	}, nil
}

// FromFile loads the configuration from a YAML file. Used by the CLI when
// a --config flag is given instead of environment variables.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Config{RetryMaxTime: 5 * time.Minute}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Url == "" {
		return nil, fmt.Errorf("url is not set in %s", path)
	}

	if cfg.RetryModeName != "" {
		retry, ok := retryModeMap[cfg.RetryModeName]
		if !ok {
			return nil, fmt.Errorf("unknown retry mode %q", cfg.RetryModeName)
		}
		cfg.RetryMode = retry
	}

	return &cfg, nil
}
