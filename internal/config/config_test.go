package config

import (
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/severance-calculator/internal/severance"
	"github.com/iwvelando/severance-calculator/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigPath = "../../test/test_config.yaml"

func fixedDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	require.NoError(t, err)
	return d
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Test config",
			configPath: testConfigPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationContents(t *testing.T) {
	conf, err := LoadConfiguration(testConfigPath)
	require.NoError(t, err)

	assert.Equal(t, "warn", conf.Logging.Level)
	assert.Equal(t, "console", conf.Logging.Format)
	assert.Equal(t, constants.OutputFormatPretty, conf.Output.Format)
	assert.Equal(t, constants.LanguageTurkish, conf.Output.Language)

	require.Len(t, conf.Rules.CapSchedule, 3)
	assert.Equal(t, "2026-01-01", conf.Rules.CapSchedule[2].Start)
	assert.Equal(t, 47804.40, conf.Rules.CapSchedule[2].Amount)

	require.Len(t, conf.Rules.NoticeTiers, 4)
	require.NotNil(t, conf.Rules.NoticeTiers[0].MaxMonths)
	assert.Equal(t, 6.0, *conf.Rules.NoticeTiers[0].MaxMonths)
	assert.Nil(t, conf.Rules.NoticeTiers[3].MaxMonths)
	assert.Equal(t, 56, conf.Rules.NoticeTiers[3].Days)

	assert.Equal(t, "2020-01-01", conf.Employment.StartDate)
	assert.Equal(t, "2023-01-01", conf.Employment.EndDate)
	assert.Equal(t, 50000.0, conf.Employment.GrossSalary)
	assert.Equal(t, "employer_termination", conf.Employment.TerminationReason)
	assert.False(t, conf.Employment.NoticeGiven)
	assert.True(t, conf.Employment.ApplyCap)
}

func TestLoadConfigurationFromReaderDefaults(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(`
employment:
  grossSalary: 30000
  terminationReason: retirement
`))
	require.NoError(t, err)

	assert.Equal(t, constants.OutputFormatPretty, conf.Output.Format)
	assert.Equal(t, constants.LanguageTurkish, conf.Output.Language)
	assert.True(t, conf.Employment.ApplyCap)
	assert.Empty(t, conf.Rules.CapSchedule)
	assert.Empty(t, conf.Rules.NoticeTiers)
	assert.Equal(t, 30000.0, conf.Employment.GrossSalary)
}

func TestLoadConfigurationFromReaderApplyCapFalse(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(`
employment:
  applyCap: false
`))
	require.NoError(t, err)
	assert.False(t, conf.Employment.ApplyCap)
}

func TestLoadConfigurationFromReaderInvalid(t *testing.T) {
	_, err := LoadConfigurationFromReader(strings.NewReader("employment: [unterminated"))
	assert.Error(t, err)
}

func TestApplyDefaultDates(t *testing.T) {
	now := time.Date(2026, 3, 15, 17, 45, 0, 0, time.UTC)

	tests := []struct {
		name      string
		start     string
		end       string
		wantStart string
		wantEnd   string
	}{
		{"Both missing", "", "", "2025-03-15", "2026-03-15"},
		{"Start missing", "", "2024-06-30", "2023-06-30", "2024-06-30"},
		{"End missing", "2020-01-01", "", "2020-01-01", "2026-03-15"},
		{"Both present", "2020-01-01", "2021-01-01", "2020-01-01", "2021-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &Configuration{}
			conf.Employment.StartDate = tt.start
			conf.Employment.EndDate = tt.end

			conf.ApplyDefaultDates(now)

			assert.Equal(t, tt.wantStart, conf.Employment.StartDate)
			assert.Equal(t, tt.wantEnd, conf.Employment.EndDate)
		})
	}
}

func TestBuildRulesDefaults(t *testing.T) {
	conf := &Configuration{}

	rules, warnings, err := conf.BuildRules(fixedDate(t, "2026-03-31"))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, constants.DefaultSeveranceCap, rules.Cap)
	assert.Equal(t, severance.DefaultNoticeTiers(), rules.NoticeTiers)
}

func TestBuildRulesFromSchedule(t *testing.T) {
	conf, err := LoadConfiguration(testConfigPath)
	require.NoError(t, err)

	tests := []struct {
		name         string
		date         string
		wantCap      float64
		wantWarnings int
	}{
		{"First half 2025", "2025-03-01", 41828.42, 0},
		{"Second half 2025", "2025-12-31", 46655.43, 0},
		{"First half 2026", "2026-06-30", 47804.40, 0},
		{"After schedule", "2026-10-01", 47804.40, 1},
		{"Before schedule", "2023-01-01", 41828.42, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, warnings, err := conf.BuildRules(fixedDate(t, tt.date))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCap, rules.Cap)
			assert.Len(t, warnings, tt.wantWarnings)
			assert.Len(t, rules.NoticeTiers, 4)
			assert.True(t, rules.NoticeTiers[3].Unbounded())
		})
	}
}

func TestBuildRulesErrors(t *testing.T) {
	tests := []struct {
		name  string
		rules RulesConfig
	}{
		{
			name:  "Invalid cap start",
			rules: RulesConfig{CapSchedule: []CapPeriod{{Start: "01.01.2026", Amount: 1}}},
		},
		{
			name:  "Invalid cap end",
			rules: RulesConfig{CapSchedule: []CapPeriod{{Start: "2026-01-01", End: "soon", Amount: 1}}},
		},
		{
			name: "Overlapping periods",
			rules: RulesConfig{CapSchedule: []CapPeriod{
				{Start: "2026-01-01", End: "2026-06-30", Amount: 1},
				{Start: "2026-06-01", End: "2026-12-31", Amount: 2},
			}},
		},
		{
			name: "Descending tiers",
			rules: RulesConfig{NoticeTiers: []NoticeTier{
				{MaxMonths: floatPtr(18), Days: 28},
				{MaxMonths: floatPtr(6), Days: 14},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &Configuration{Rules: tt.rules}
			_, _, err := conf.BuildRules(fixedDate(t, "2026-03-01"))
			assert.Error(t, err)
		})
	}
}

func TestValidateConfigurationWithFixedTime(t *testing.T) {
	conf, err := LoadConfiguration(testConfigPath)
	require.NoError(t, err)

	assert.Empty(t, conf.ValidateConfigurationWithFixedTime(fixedDate(t, "2026-02-01")))

	warnings := conf.ValidateConfigurationWithFixedTime(fixedDate(t, "2027-02-01"))
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "2027-02-01")

	conf.Employment.ApplyCap = false
	warnings = conf.ValidateConfigurationWithFixedTime(fixedDate(t, "2026-02-01"))
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "cap is disabled")
}
