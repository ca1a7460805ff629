package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/iwvelando/severance-calculator/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = "../../test/test_config.yaml"

var now = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

func mustParse(t *testing.T, args ...string) options {
	t.Helper()
	opts, err := parseFlags(args, io.Discard)
	require.NoError(t, err)
	return opts
}

func TestParseFlags(t *testing.T) {
	opts := mustParse(t, "-config", "x.yaml", "-salary", "50.000", "-notice-given", "true", "-lang", "en")

	assert.Equal(t, "x.yaml", opts.configLocation)
	assert.True(t, opts.explicitConfig)
	assert.Equal(t, "en", opts.language)
	assert.Equal(t, map[string]string{"salary": "50.000", "notice-given": "true"}, opts.overrides)

	opts = mustParse(t)
	assert.False(t, opts.explicitConfig)
	assert.Empty(t, opts.overrides)

	_, err := parseFlags([]string{"-unknown"}, io.Discard)
	assert.Error(t, err)
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"true", "1", "evet", "Yes"} {
		got, err := parseBool(v)
		require.NoError(t, err)
		assert.True(t, got, v)
	}
	for _, v := range []string{"false", "0", "hayır", "no"} {
		got, err := parseBool(v)
		require.NoError(t, err)
		assert.False(t, got, v)
	}
	_, err := parseBool("maybe")
	assert.Error(t, err)
}

func TestRunPretty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(mustParse(t, "-config", testConfig), &out, now))

	// 2023-01-01 precedes the configured schedule, so its earliest cap applies
	text := out.String()
	assert.Contains(t, text, "Kıdem ve İhbar Tazminatı Hesaplaması")
	assert.Contains(t, text, "₺1.394,28")
	assert.Contains(t, text, "₺125.599,86")
	assert.Contains(t, text, "₺78.079,72")
	assert.Contains(t, text, "₺203.679,58")
	assert.Contains(t, text, "No cap period covers 2023-01-01")
}

func TestRunJSONWithOverrides(t *testing.T) {
	var out bytes.Buffer
	opts := mustParse(t,
		"-config", testConfig,
		"-output-format", "json",
		"-lang", "en",
		"-start", "2025-01-01",
		"-end", "2025-10-31",
		"-salary", "30.000",
		"-additional", "2.500,50",
		"-reason", "resignation_voluntary",
	)
	require.NoError(t, run(opts, &out, now))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))

	input := doc["input"].(map[string]interface{})
	assert.Equal(t, 30000.0, input["grossSalary"])
	assert.Equal(t, 2500.5, input["additionalIncome"])
	assert.Equal(t, "Voluntary resignation", input["reasonLabel"])

	result := doc["result"].(map[string]interface{})
	assert.Equal(t, 0.0, result["severancePay"])
	assert.Equal(t, 0.0, result["totalAmount"])
	assert.Equal(t, "notice_voluntary_resignation", result["noticeNote"].(map[string]interface{})["kind"])
	assert.Equal(t, "2026-03-15", doc["calculatedAt"])
}

func TestRunWithoutConfigFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	var out bytes.Buffer
	opts := mustParse(t, "-salary", "40000", "-reason", "employer_termination", "-output-format", "json", "-log-level", "error")
	require.NoError(t, run(opts, &out, now))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	input := doc["input"].(map[string]interface{})
	assert.Equal(t, "2025-03-15", input["startDate"])
	assert.Equal(t, "2026-03-15", input["endDate"])
	assert.Equal(t, true, input["applyCap"])
}

func TestRunPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.pdf")

	var out bytes.Buffer
	require.NoError(t, run(mustParse(t, "-config", testConfig, "-output-format", "pdf", "-pdf-out", path), &out, now))
	assert.Zero(t, out.Len())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"Missing explicit config", []string{"-config", "nonexistent.yaml"}},
		{"Invalid output format", []string{"-config", testConfig, "-output-format", "csv"}},
		{"Invalid language", []string{"-config", testConfig, "-lang", "de"}},
		{"Invalid salary", []string{"-config", testConfig, "-salary", "lots"}},
		{"Invalid boolean", []string{"-config", testConfig, "-apply-cap", "sometimes"}},
		{"Invalid log level", []string{"-config", testConfig, "-log-level", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Error(t, run(mustParse(t, tt.args...), &out, now))
		})
	}
}

func TestRunValidationError(t *testing.T) {
	var out bytes.Buffer
	err := run(mustParse(t, "-config", testConfig, "-reason", ""), &out, now)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.CodeReasonMissing, verr.Code)
	assert.ErrorIs(t, err, validation.ErrReasonMissing)
}
