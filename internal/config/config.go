// Package config defines the data structures related to configuration and
// includes functions for loading the config and turning it into calculation
// rules.
package config

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/iwvelando/severance-calculator/internal/severance"
	"github.com/iwvelando/severance-calculator/pkg/constants"
	"github.com/iwvelando/severance-calculator/pkg/datetime"
	"github.com/iwvelando/severance-calculator/pkg/validation"
	"github.com/spf13/viper"
)

// DateLayout is the format expected in config files and is also the output
// date format.
const DateLayout = constants.DateLayout

// Configuration holds all configuration for severance-calculator.
type Configuration struct {
	Logging    LoggingConfig      `yaml:"logging,omitempty"`
	Output     OutputConfig       `yaml:"output,omitempty"`
	Rules      RulesConfig        `yaml:"rules,omitempty"`
	Employment validation.Request `yaml:"employment,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output configuration options
type OutputConfig struct {
	Format   string `yaml:"format,omitempty"`   // pretty, json, pdf
	Language string `yaml:"language,omitempty"` // tr, en
	PDFFile  string `yaml:"pdfFile,omitempty"`  // target of the pdf format
}

// RulesConfig holds the statutory constants. Empty sections fall back to the
// compiled defaults.
type RulesConfig struct {
	CapSchedule []CapPeriod  `yaml:"capSchedule,omitempty"`
	NoticeTiers []NoticeTier `yaml:"noticeTiers,omitempty"`
}

// CapPeriod is a cap amount and the dates it is in force. An empty End means
// the period is open-ended.
type CapPeriod struct {
	Start  string  `yaml:"start"`
	End    string  `yaml:"end,omitempty"`
	Amount float64 `yaml:"amount"`
}

// NoticeTier is a notice length for tenures up to MaxMonths. A missing
// MaxMonths marks the unbounded last tier.
type NoticeTier struct {
	MaxMonths *float64 `yaml:"maxMonths,omitempty"`
	Days      int      `yaml:"days"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix("SEVERANCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.language", constants.LanguageTurkish)
	v.SetDefault("employment.applyCap", true)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ApplyDefaultDates fills missing employment dates the way the calculator
// form does: the end date is today and the start date one year earlier.
func (conf *Configuration) ApplyDefaultDates(now time.Time) {
	today := datetime.Truncate(now)
	if conf.Employment.EndDate == "" {
		conf.Employment.EndDate = today.Format(DateLayout)
	}
	if conf.Employment.StartDate == "" {
		if end, err := datetime.ParseDate(conf.Employment.EndDate); err == nil {
			today = end
		}
		conf.Employment.StartDate = today.AddDate(-1, 0, 0).Format(DateLayout)
	}
}

// CapSchedule parses the configured cap schedule, falling back to the
// default schedule when none is configured.
func (conf *Configuration) CapSchedule() (severance.CapSchedule, error) {
	if len(conf.Rules.CapSchedule) == 0 {
		return severance.DefaultCapSchedule(), nil
	}

	schedule := make(severance.CapSchedule, 0, len(conf.Rules.CapSchedule))
	for i, period := range conf.Rules.CapSchedule {
		start, err := datetime.ParseDate(period.Start)
		if err != nil {
			return nil, fmt.Errorf("cap period %d: invalid start date: %w", i, err)
		}
		var end time.Time
		if period.End != "" {
			end, err = datetime.ParseDate(period.End)
			if err != nil {
				return nil, fmt.Errorf("cap period %d: invalid end date: %w", i, err)
			}
		}
		schedule = append(schedule, severance.CapPeriod{Start: start, End: end, Amount: period.Amount})
	}

	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	return schedule, nil
}

// NoticeTiers converts the configured notice tiers, falling back to the
// statutory tiers when none are configured.
func (conf *Configuration) NoticeTiers() ([]severance.NoticeTier, error) {
	if len(conf.Rules.NoticeTiers) == 0 {
		return severance.DefaultNoticeTiers(), nil
	}

	tiers := make([]severance.NoticeTier, 0, len(conf.Rules.NoticeTiers))
	for _, tier := range conf.Rules.NoticeTiers {
		maxMonths := math.Inf(1)
		if tier.MaxMonths != nil {
			maxMonths = *tier.MaxMonths
		}
		tiers = append(tiers, severance.NoticeTier{MaxMonths: maxMonths, Days: tier.Days})
	}

	if err := severance.ValidateNoticeTiers(tiers); err != nil {
		return nil, err
	}
	return tiers, nil
}

// BuildRules returns the rules for an employment terminated on
// terminationDate. A warning is returned when the cap schedule has no period
// covering that date and the nearest period is used instead.
func (conf *Configuration) BuildRules(terminationDate time.Time) (severance.Rules, []string, error) {
	schedule, err := conf.CapSchedule()
	if err != nil {
		return severance.Rules{}, nil, err
	}
	tiers, err := conf.NoticeTiers()
	if err != nil {
		return severance.Rules{}, nil, err
	}

	var warnings []string
	period, ok := schedule.Resolve(terminationDate)
	if !ok {
		warnings = append(warnings, fmt.Sprintf(
			"No cap period covers %s - using the cap of %.2f in force from %s",
			terminationDate.Format(DateLayout), period.Amount, period.Start.Format(DateLayout)))
	}

	return severance.Rules{Cap: period.Amount, NoticeTiers: tiers}, warnings, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	return conf.ValidateConfigurationWithFixedTime(time.Now())
}

// ValidateConfigurationWithFixedTime validates the configuration against a
// fixed "today" for testing.
func (conf *Configuration) ValidateConfigurationWithFixedTime(fixedTime time.Time) []string {
	cv := validation.ConfigValidator{
		Today:      fixedTime.Format(DateLayout),
		Employment: conf.Employment,
	}
	for _, period := range conf.Rules.CapSchedule {
		cv.CapSchedule = append(cv.CapSchedule, validation.CapPeriodConfig{
			Start:  period.Start,
			End:    period.End,
			Amount: period.Amount,
		})
	}
	for _, tier := range conf.Rules.NoticeTiers {
		cv.NoticeTiers = append(cv.NoticeTiers, validation.NoticeTierConfig{
			MaxMonths: tier.MaxMonths,
			Days:      tier.Days,
		})
	}

	return cv.ValidateAll()
}
