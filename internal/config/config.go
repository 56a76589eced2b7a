package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/landing/internal/navigate"
)

const (
	defaultPort           = "8080"
	defaultLogLevel       = "info"
	defaultRateLimitRPS   = 25.0
	defaultRateLimitBurst = 50
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Port                 string
	ContentFile          string
	WatchContent         bool
	SiteOrigin           string
	LogLevel             string
	ShutdownGracePeriod  time.Duration
	ReadHeaderTimeout    time.Duration
	WriteTimeout         time.Duration
	IdleTimeout          time.Duration
	EnableRequestLogging bool
	RateLimitRPS         float64
	RateLimitBurst       int
}

// yamlConfig represents the YAML configuration file structure. Pointers tell
// an absent key apart from a zero value.
type yamlConfig struct {
	Port                 string        `yaml:"port"`
	ContentFile          string        `yaml:"content_file"`
	WatchContent         *bool         `yaml:"watch_content"`
	SiteOrigin           string        `yaml:"site_origin"`
	LogLevel             string        `yaml:"log_level"`
	ShutdownGracePeriod  string        `yaml:"shutdown_grace_period"`
	ReadHeaderTimeout    string        `yaml:"read_header_timeout"`
	WriteTimeout         string        `yaml:"write_timeout"`
	IdleTimeout          string        `yaml:"idle_timeout"`
	EnableRequestLogging *bool         `yaml:"enable_request_logging"`
	RateLimit            yamlRateLimit `yaml:"rate_limit"`
}

// yamlRateLimit represents the rate limit section in YAML.
type yamlRateLimit struct {
	RPS   *float64 `yaml:"rps"`
	Burst *int     `yaml:"burst"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile     string
	Port           *string
	ContentFile    *string
	WatchContent   *bool
	SiteOrigin     *string
	LogLevel       *string
	RateLimitRPS   *float64
	RateLimitBurst *int
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Apply environment variables
	applyEnvConfig(&cfg)

	// Load from YAML file if specified (overrides environment)
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		if err := applyYAMLConfig(&cfg, yamlCfg); err != nil {
			return Config{}, fmt.Errorf("apply YAML config: %w", err)
		}
	}

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	// Validate final configuration
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Port:                 defaultPort,
		LogLevel:             defaultLogLevel,
		ShutdownGracePeriod:  10 * time.Second,
		ReadHeaderTimeout:    5 * time.Second,
		WriteTimeout:         15 * time.Second,
		IdleTimeout:          60 * time.Second,
		EnableRequestLogging: true,
		RateLimitRPS:         defaultRateLimitRPS,
		RateLimitBurst:       defaultRateLimitBurst,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) error {
	if yamlCfg.Port != "" {
		cfg.Port = yamlCfg.Port
	}
	if yamlCfg.ContentFile != "" {
		cfg.ContentFile = yamlCfg.ContentFile
	}
	if yamlCfg.WatchContent != nil {
		cfg.WatchContent = *yamlCfg.WatchContent
	}
	if yamlCfg.SiteOrigin != "" {
		cfg.SiteOrigin = yamlCfg.SiteOrigin
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	durations := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"shutdown_grace_period", yamlCfg.ShutdownGracePeriod, &cfg.ShutdownGracePeriod},
		{"read_header_timeout", yamlCfg.ReadHeaderTimeout, &cfg.ReadHeaderTimeout},
		{"write_timeout", yamlCfg.WriteTimeout, &cfg.WriteTimeout},
		{"idle_timeout", yamlCfg.IdleTimeout, &cfg.IdleTimeout},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		value, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
		*d.dst = value
	}

	if yamlCfg.EnableRequestLogging != nil {
		cfg.EnableRequestLogging = *yamlCfg.EnableRequestLogging
	}
	if yamlCfg.RateLimit.RPS != nil {
		cfg.RateLimitRPS = *yamlCfg.RateLimit.RPS
	}
	if yamlCfg.RateLimit.Burst != nil {
		cfg.RateLimitBurst = *yamlCfg.RateLimit.Burst
	}
	return nil
}

// envBindings maps environment variables onto Config. Values that fail to
// parse are ignored.
var envBindings = map[string]func(cfg *Config, value string){
	"PORT":             func(cfg *Config, v string) { cfg.Port = v },
	"CONTENT_FILE":     func(cfg *Config, v string) { cfg.ContentFile = v },
	"SITE_ORIGIN":      func(cfg *Config, v string) { cfg.SiteOrigin = v },
	"LOG_LEVEL":        func(cfg *Config, v string) { cfg.LogLevel = v },
	"WATCH_CONTENT":    parsed(strconv.ParseBool, func(cfg *Config, b bool) { cfg.WatchContent = b }),
	"RATE_LIMIT_RPS":   parsed(parseNonNegativeFloat, func(cfg *Config, f float64) { cfg.RateLimitRPS = f }),
	"RATE_LIMIT_BURST": parsed(parseNonNegativeInt, func(cfg *Config, n int) { cfg.RateLimitBurst = n }),
}

func parsed[T any](parse func(string) (T, error), set func(*Config, T)) func(*Config, string) {
	return func(cfg *Config, raw string) {
		if v, err := parse(raw); err == nil {
			set(cfg, v)
		}
	}
}

func parseNonNegativeFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err == nil && f < 0 {
		err = fmt.Errorf("negative value %v", f)
	}
	return f, err
}

func parseNonNegativeInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err == nil && n < 0 {
		err = fmt.Errorf("negative value %d", n)
	}
	return n, err
}

func applyEnvConfig(cfg *Config) {
	for name, apply := range envBindings {
		if value := strings.TrimSpace(os.Getenv(name)); value != "" {
			apply(cfg, value)
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.Port != nil && *overrides.Port != "" {
		cfg.Port = *overrides.Port
	}

	if overrides.ContentFile != nil && *overrides.ContentFile != "" {
		cfg.ContentFile = *overrides.ContentFile
	}

	if overrides.WatchContent != nil {
		cfg.WatchContent = *overrides.WatchContent
	}

	if overrides.SiteOrigin != nil && *overrides.SiteOrigin != "" {
		cfg.SiteOrigin = *overrides.SiteOrigin
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	if overrides.RateLimitRPS != nil && *overrides.RateLimitRPS >= 0 {
		cfg.RateLimitRPS = *overrides.RateLimitRPS
	}

	if overrides.RateLimitBurst != nil && *overrides.RateLimitBurst >= 0 {
		cfg.RateLimitBurst = *overrides.RateLimitBurst
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be >= 0")
	}
	if cfg.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be >= 0")
	}
	if cfg.WatchContent && cfg.ContentFile == "" {
		return fmt.Errorf("watching content requires a content file")
	}
	if _, err := navigate.ParseOrigin(cfg.SiteOrigin); err != nil {
		return fmt.Errorf("invalid site origin: %w", err)
	}
	return nil
}
