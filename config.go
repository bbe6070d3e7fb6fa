package swiftmt

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// RuleConfig tunes the network-validation layer (C7). Every message family
// is validated against the same rule set; there is no per-BIC override,
// unlike the teacher's per-bank connector list — this codec has one
// counterparty: the wire format itself.
type RuleConfig struct {
	Version string `yaml:"version"`

	Charset CharsetConfig `yaml:"charset"`
	Amounts AmountConfig  `yaml:"amounts"`
	Limits  LimitsConfig  `yaml:"limits"`
}

// CharsetConfig holds the commodity-currency (C08) and 59F line-numbering
// switches. They are loaded and carried, but no parser or validator reads
// them: the field codec always rejects commodity currencies where C08
// applies and always enforces 59F line numbering.
type CharsetConfig struct {
	RejectCommodityCurrencies bool `yaml:"reject_commodity_currencies"` // C08
	StrictLineNumbering59F    bool `yaml:"strict_line_numbering_59f"`
}

// AmountConfig holds the ISO 4217 decimal-precision (C03) switches. They
// are loaded and carried, but no parser or validator reads them: C03 is
// always enforced with the built-in exponent table, and ExponentOverrides
// has no effect.
type AmountConfig struct {
	EnforceCurrencyExponent bool              `yaml:"enforce_currency_exponent"`
	ExponentOverrides       map[string]int    `yaml:"exponent_overrides"`
}

// LimitsConfig bounds how much work the validator does on one message.
type LimitsConfig struct {
	MaxValidationErrors int `yaml:"max_validation_errors"` // 0 = unlimited
	StopOnFirstError    bool `yaml:"stop_on_first_error"`
}

// Default returns the configuration SR2025 itself implies: reject
// commodity currencies, enforce ISO 4217 precision, collect every error.
func Default() *RuleConfig {
	return &RuleConfig{
		Version: "1.0.0",
		Charset: CharsetConfig{
			RejectCommodityCurrencies: true,
			StrictLineNumbering59F:    true,
		},
		Amounts: AmountConfig{
			EnforceCurrencyExponent: true,
		},
		Limits: LimitsConfig{
			MaxValidationErrors: 0,
			StopOnFirstError:    false,
		},
	}
}

// Load reads RuleConfig from the path named by the SWIFTMT_CONFIG
// environment variable, or returns Default() with environment overrides
// applied when no file is configured.
func Load() (*RuleConfig, error) {
	path := os.Getenv("SWIFTMT_CONFIG")
	if path == "" {
		cfg := Default()
		applyEnvOverrides(cfg)
		return cfg, nil
	}
	return loadFromFile(path)
}

func loadFromFile(path string) (*RuleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("swiftmt: failed to read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("swiftmt: failed to parse config: %w", err)
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *RuleConfig) {
	if v := os.Getenv("SWIFTMT_STOP_ON_FIRST_ERROR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Limits.StopOnFirstError = b
		}
	}
	if v := os.Getenv("SWIFTMT_MAX_VALIDATION_ERRORS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Limits.MaxValidationErrors = n
		}
	}
}
