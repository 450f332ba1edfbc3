// Package config provides configuration structures and loading logic for the
// measurement engine.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/polisai/measure/pkg/domain"
	"github.com/polisai/measure/pkg/number"
)

// Config holds the engine configuration.
type Config struct {
	Precision  PrecisionConfig `yaml:"precision"`
	Comparison PrecisionConfig `yaml:"comparison"`
	AutoScale  AutoScaleConfig `yaml:"autoscale"`
	Rules      RulesConfig     `yaml:"rules"`
	Telemetry  TelemetryConfig `yaml:"telemetry"`
	Logging    LoggingConfig   `yaml:"logging"`
}

// PrecisionConfig sets the scale and rounding mode of an operation.
type PrecisionConfig struct {
	Scale    int32  `yaml:"scale"`
	Rounding string `yaml:"rounding"`
}

// AutoScaleConfig holds the default auto-scaling range and system filter.
type AutoScaleConfig struct {
	Min       string          `yaml:"min"`
	Max       string          `yaml:"max"`
	System    string          `yaml:"system"`
	Precision PrecisionConfig `yaml:"precision"`
}

// RulesConfig lists the unit catalog files loaded on top of the builtin
// registry.
type RulesConfig struct {
	Files    []string      `yaml:"files"`
	Watch    bool          `yaml:"watch"`
	Debounce time.Duration `yaml:"debounce"`
}

// TelemetryConfig holds configuration for metrics.
type TelemetryConfig struct {
	Metrics     bool   `yaml:"metrics"`
	ServiceName string `yaml:"service_name"`
	Environment string `yaml:"environment"`
}

// LoggingConfig holds configuration for logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

const maxScale = 1000

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	return &Config{
		Precision:  PrecisionConfig{Scale: 10, Rounding: "half_up"},
		Comparison: PrecisionConfig{Scale: 32, Rounding: "half_even"},
		AutoScale: AutoScaleConfig{
			Min:       "1",
			Max:       "1000",
			Precision: PrecisionConfig{Scale: 10, Rounding: "half_up"},
		},
		Rules: RulesConfig{
			Debounce: 100 * time.Millisecond,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "measure",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a file and applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		//nolint:gosec // Config file path is controlled by admin/operator
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("MEASURE_SCALE"); val != "" {
		scale, err := parseScale("MEASURE_SCALE", val)
		if err != nil {
			return err
		}
		cfg.Precision.Scale = scale
	}
	if val := os.Getenv("MEASURE_ROUNDING"); val != "" {
		cfg.Precision.Rounding = val
	}
	if val := os.Getenv("MEASURE_COMPARE_SCALE"); val != "" {
		scale, err := parseScale("MEASURE_COMPARE_SCALE", val)
		if err != nil {
			return err
		}
		cfg.Comparison.Scale = scale
	}

	if val := os.Getenv("MEASURE_AUTOSCALE_MIN"); val != "" {
		cfg.AutoScale.Min = val
	}
	if val := os.Getenv("MEASURE_AUTOSCALE_MAX"); val != "" {
		cfg.AutoScale.Max = val
	}
	if val := os.Getenv("MEASURE_AUTOSCALE_SYSTEM"); val != "" {
		cfg.AutoScale.System = val
	}

	if val := os.Getenv("MEASURE_RULE_FILES"); val != "" {
		cfg.Rules.Files = cfg.Rules.Files[:0]
		for _, f := range strings.Split(val, ",") {
			if f = strings.TrimSpace(f); f != "" {
				cfg.Rules.Files = append(cfg.Rules.Files, f)
			}
		}
	}
	if val := os.Getenv("MEASURE_WATCH_RULES"); val == "true" {
		cfg.Rules.Watch = true
	}

	if val := os.Getenv("MEASURE_METRICS"); val == "true" {
		cfg.Telemetry.Metrics = true
	}

	if val := os.Getenv("MEASURE_LOG_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}

	return nil
}

func parseScale(name, val string) (int32, error) {
	scale, err := strconv.ParseInt(strings.TrimSpace(val), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, val, err)
	}
	return int32(scale), nil
}

// Validate performs validation of the entire configuration, normalising
// defaults where a section leaves them empty.
func (c *Config) Validate() error {
	if err := c.Precision.Validate(); err != nil {
		return fmt.Errorf("precision configuration: %w", err)
	}

	if err := c.Comparison.Validate(); err != nil {
		return fmt.Errorf("comparison configuration: %w", err)
	}

	if err := c.AutoScale.Validate(); err != nil {
		return fmt.Errorf("autoscale configuration: %w", err)
	}

	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("rules configuration: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging configuration: %w", err)
	}

	return nil
}

// Validate checks the scale bounds and the rounding mode name.
func (c *PrecisionConfig) Validate() error {
	if c.Scale < 0 || c.Scale > maxScale {
		return fmt.Errorf("scale %d out of range [0, %d]", c.Scale, maxScale)
	}
	if strings.TrimSpace(c.Rounding) == "" {
		c.Rounding = number.HalfUp.String()
	}
	if _, err := number.ParseRoundingMode(c.Rounding); err != nil {
		return err
	}
	return nil
}

// Mode returns the configured rounding mode. Call Validate first; an invalid
// name falls back to half-up.
func (c PrecisionConfig) Mode() number.RoundingMode {
	mode, err := number.ParseRoundingMode(c.Rounding)
	if err != nil {
		return number.HalfUp
	}
	return mode
}

// Validate checks that 0 < min < max and that the system, if any, is known.
func (c *AutoScaleConfig) Validate() error {
	lo, hi, err := c.parseRange()
	if err != nil {
		return err
	}
	if lo.Sign() <= 0 || lo.Cmp(hi) >= 0 {
		return fmt.Errorf("range [%s, %s] must satisfy 0 < min < max", lo, hi)
	}
	if strings.TrimSpace(c.System) != "" {
		if _, err := domain.ParseUnitSystem(c.System); err != nil {
			return err
		}
	}
	if err := c.Precision.Validate(); err != nil {
		return fmt.Errorf("precision: %w", err)
	}
	return nil
}

// Range returns the parsed target range. Call Validate first.
func (c AutoScaleConfig) Range() (number.Number, number.Number) {
	lo, hi, err := c.parseRange()
	if err != nil {
		return number.One(), number.FromInt64(1000)
	}
	return lo, hi
}

// SystemFilter returns the configured unit system and whether one is set.
func (c AutoScaleConfig) SystemFilter() (domain.UnitSystem, bool) {
	if strings.TrimSpace(c.System) == "" {
		return domain.SystemNone, false
	}
	system, err := domain.ParseUnitSystem(c.System)
	if err != nil {
		return domain.SystemNone, false
	}
	return system, true
}

func (c AutoScaleConfig) parseRange() (number.Decimal, number.Decimal, error) {
	lo, err := number.Parse(defaultString(c.Min, "1"))
	if err != nil {
		return number.Decimal{}, number.Decimal{}, fmt.Errorf("min: %w", err)
	}
	hi, err := number.Parse(defaultString(c.Max, "1000"))
	if err != nil {
		return number.Decimal{}, number.Decimal{}, fmt.Errorf("max: %w", err)
	}
	return lo, hi, nil
}

func defaultString(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// Validate performs validation of the catalog file list.
func (c *RulesConfig) Validate() error {
	seen := make(map[string]bool, len(c.Files))
	for i, f := range c.Files {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("rule file %d is empty", i)
		}
		if seen[f] {
			return fmt.Errorf("duplicate rule file %q", f)
		}
		seen[f] = true
	}
	if c.Watch && len(c.Files) == 0 {
		return fmt.Errorf("watch requires at least one rule file")
	}
	if c.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative")
	}
	return nil
}

// Validate performs validation of logging configuration
func (c *LoggingConfig) Validate() error {
	// Set default log level if not provided
	if strings.TrimSpace(c.Level) == "" {
		c.Level = "info"
	}

	level := strings.TrimSpace(strings.ToLower(c.Level))
	switch level {
	case "debug", "info", "warn", "error":
		c.Level = level // Normalize to lowercase
		return nil
	default:
		return fmt.Errorf("invalid log level %q, supported levels: debug, info, warn, error", c.Level)
	}
}
