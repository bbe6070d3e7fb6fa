package swiftmt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.Charset.RejectCommodityCurrencies)
	assert.True(t, cfg.Charset.StrictLineNumbering59F)
	assert.True(t, cfg.Amounts.EnforceCurrencyExponent)
	assert.Equal(t, 0, cfg.Limits.MaxValidationErrors)
	assert.False(t, cfg.Limits.StopOnFirstError)
}

func TestLoadWithNoConfigPathAppliesDefaults(t *testing.T) {
	t.Setenv("SWIFTMT_CONFIG", "")
	t.Setenv("SWIFTMT_STOP_ON_FIRST_ERROR", "")
	t.Setenv("SWIFTMT_MAX_VALIDATION_ERRORS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("SWIFTMT_CONFIG", "")
	t.Setenv("SWIFTMT_STOP_ON_FIRST_ERROR", "true")
	t.Setenv("SWIFTMT_MAX_VALIDATION_ERRORS", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Limits.StopOnFirstError)
	assert.Equal(t, 5, cfg.Limits.MaxValidationErrors)
}

func TestLoadAppliesEnvOverridesOnTopOfFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	yamlContent := "version: \"2.0.0\"\n" +
		"charset:\n  reject_commodity_currencies: false\n  strict_line_numbering_59f: false\n" +
		"amounts:\n  enforce_currency_exponent: false\n" +
		"limits:\n  max_validation_errors: 0\n  stop_on_first_error: false\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o644))

	t.Setenv("SWIFTMT_CONFIG", path)
	t.Setenv("SWIFTMT_MAX_VALIDATION_ERRORS", "3")
	t.Setenv("SWIFTMT_STOP_ON_FIRST_ERROR", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.Version)
	assert.False(t, cfg.Charset.RejectCommodityCurrencies)
	assert.Equal(t, 3, cfg.Limits.MaxValidationErrors)
}

func TestLoadFromFileMissingReturnsError(t *testing.T) {
	t.Setenv("SWIFTMT_CONFIG", filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	_, err := Load()
	require.Error(t, err)
}

func TestLoadFromFileMalformedYAMLReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid: yaml"), 0o644))

	t.Setenv("SWIFTMT_CONFIG", path)
	_, err := Load()
	require.Error(t, err)
}
