package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"market-viewer/src/format"
	"market-viewer/src/helpers"
	"market-viewer/src/logger"
	"market-viewer/src/models"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	DefaultName            = "market-viewer"
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8000
	DefaultGrpcPort        = 50051
	DefaultEndpoint        = "https://brsapi.ir/Api/Market/Gold_Currency.php"
	DefaultIntervalSeconds = 300
	DefaultTimeoutSeconds  = 15
	DefaultLocale          = format.DefaultLocale
	DefaultLogLevel        = "INFO"
	DefaultUserAgent       = "market-viewer/1.0"

	EnvAPIKey   = "MARKET_VIEWER_API_KEY"
	EnvEndpoint = "MARKET_VIEWER_ENDPOINT"
	EnvPort     = "MARKET_VIEWER_PORT"
	EnvLogLevel = "MARKET_VIEWER_LOG_LEVEL"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig loads the YAML file at configPath. An empty path starts from
// defaults so the service can run from environment variables alone.
func NewConfig(configPath string) (*Config, error) {
	var modelConfig models.MConfig

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
		}
		if err := Parse(data, &modelConfig); err != nil {
			return nil, err
		}
	}

	config := &Config{MConfig: &modelConfig}
	config.applyDefaults()
	if err := config.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Parse expands ${VAR} references and decodes YAML into out.
func Parse(data []byte, out *models.MConfig) error {
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), out); err != nil {
		return fmt.Errorf("failed to parse config from YAML: %w", err)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.GrpcHost == "" {
		c.GrpcHost = c.Host
	}
	if c.GrpcPort == 0 {
		c.GrpcPort = DefaultGrpcPort
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Network.RequestTimeout == 0 {
		c.Network.RequestTimeout = DefaultTimeoutSeconds
	}
	if c.Network.UserAgent == "" {
		c.Network.UserAgent = DefaultUserAgent
	}
	if c.DataSource.Endpoint == "" {
		c.DataSource.Endpoint = DefaultEndpoint
	}
	if c.DataSource.UpdateIntervalSeconds == 0 {
		c.DataSource.UpdateIntervalSeconds = DefaultIntervalSeconds
	}
	if c.Presentation.Locale == "" {
		c.Presentation.Locale = DefaultLocale
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAPIKey); ok && v != "" {
		c.DataSource.APIKey = v
	}
	if v, ok := lookup(EnvEndpoint); ok && v != "" {
		c.DataSource.Endpoint = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		c.Port = port
	}
	return nil
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("unknown log level: %s", c.LogLevel)
	}

	// Servers
	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}
	if c.GrpcPort <= 1024 || c.GrpcPort > 65535 {
		return fmt.Errorf("invalid grpc port number: %d (must be between 1025 and 65535)", c.GrpcPort)
	}
	if c.GrpcPort == c.Port && c.GrpcHost == c.Host {
		return fmt.Errorf("grpc and http servers cannot share %s:%d", c.Host, c.Port)
	}

	// Network
	if c.Network.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be greater than 0")
	}
	for _, p := range c.Network.Proxies {
		if !helpers.ValidateProxy(p) {
			return fmt.Errorf("invalid proxy: %q", helpers.FormatProxy(p))
		}
	}

	// DataSource
	if !strings.HasPrefix(c.DataSource.Endpoint, "http://") && !strings.HasPrefix(c.DataSource.Endpoint, "https://") {
		return fmt.Errorf("data source endpoint must be an http(s) URL: %q", c.DataSource.Endpoint)
	}
	if c.DataSource.APIKey == "" {
		return fmt.Errorf("data source api key is empty (set %s)", EnvAPIKey)
	}
	if c.DataSource.UpdateIntervalSeconds <= 0 {
		return fmt.Errorf("update interval must be greater than 0")
	}

	// Presentation
	if _, err := language.Parse(c.Presentation.Locale); err != nil {
		return fmt.Errorf("invalid presentation locale %q: %w", c.Presentation.Locale, err)
	}

	return nil
}

// -----------------------------------------------------------------------------

// UpdateInterval is the polling period as a duration.
func (c *Config) UpdateInterval() time.Duration {
	return time.Duration(c.DataSource.UpdateIntervalSeconds) * time.Second
}

// RequestTimeout is the per-request deadline as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Network.RequestTimeout) * time.Second
}

// Redacted returns a copy safe to log or expose: the api key is masked and
// proxy credentials are dropped.
func (c *Config) Redacted() models.MConfig {
	out := *c.MConfig
	if out.DataSource.APIKey != "" {
		out.DataSource.APIKey = maskSecret(out.DataSource.APIKey)
	}
	if len(out.Network.Proxies) > 0 {
		out.Network.Proxies = make([]string, len(c.Network.Proxies))
		for i, p := range c.Network.Proxies {
			out.Network.Proxies[i] = redactProxy(p)
		}
	}
	return out
}

func redactProxy(p string) string {
	u, err := url.Parse(helpers.FormatProxy(p))
	if err != nil {
		return "invalid"
	}
	return u.Redacted()
}

func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
