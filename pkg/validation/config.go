package validation

import (
	"fmt"

	"github.com/iwvelando/severance-calculator/pkg/datetime"
)

// ValidateCapPeriod checks a single cap period and returns warnings.
func ValidateCapPeriod(index int, period CapPeriodConfig) []string {
	var warnings []string

	start, err := datetime.ParseDate(period.Start)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("Cap period %d has an invalid start date %q", index, period.Start))
	}
	if period.End != "" {
		end, endErr := datetime.ParseDate(period.End)
		if endErr != nil {
			warnings = append(warnings, fmt.Sprintf("Cap period %d has an invalid end date %q", index, period.End))
		} else if err == nil && end.Before(start) {
			warnings = append(warnings, fmt.Sprintf("Cap period %d ends before it starts (%s < %s)",
				index, period.End, period.Start))
		}
	}
	if period.Amount <= 0 {
		warnings = append(warnings, fmt.Sprintf("Cap period %d has a non-positive amount %.2f", index, period.Amount))
	}

	return warnings
}

// ConfigValidator checks the statutory rules and the employment section of
// a configuration.
type ConfigValidator struct {
	// Today is the date the cap schedule must cover, in DateLayout.
	Today       string
	CapSchedule []CapPeriodConfig
	NoticeTiers []NoticeTierConfig
	Employment  Request
}

// CapPeriodConfig mirrors a configured cap period.
type CapPeriodConfig struct {
	Start  string
	End    string
	Amount float64
}

// NoticeTierConfig mirrors a configured notice tier; a nil MaxMonths is unbounded.
type NoticeTierConfig struct {
	MaxMonths *float64
	Days      int
}

// ValidateAll validates the configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	covered := len(cv.CapSchedule) == 0
	today, todayErr := datetime.ParseDate(cv.Today)
	for i, period := range cv.CapSchedule {
		periodWarnings := ValidateCapPeriod(i, period)
		warnings = append(warnings, periodWarnings...)
		if len(periodWarnings) > 0 || todayErr != nil {
			continue
		}
		start, _ := datetime.ParseDate(period.Start)
		end, _ := datetime.ParseDate(period.End)
		if datetime.Within(today, start, end) {
			covered = true
		}
	}
	if !covered && todayErr == nil {
		warnings = append(warnings, fmt.Sprintf("No cap period is in force on %s - the nearest period will be used", cv.Today))
	}

	for i, tier := range cv.NoticeTiers {
		if tier.Days <= 0 {
			warnings = append(warnings, fmt.Sprintf("Notice tier %d has non-positive days %d", i, tier.Days))
		}
		if i > 0 && tier.MaxMonths != nil {
			prev := cv.NoticeTiers[i-1].MaxMonths
			if prev == nil || *tier.MaxMonths <= *prev {
				warnings = append(warnings, fmt.Sprintf("Notice tier %d is not in ascending order", i))
			}
		}
		if tier.MaxMonths == nil && i != len(cv.NoticeTiers)-1 {
			warnings = append(warnings, fmt.Sprintf("Notice tier %d is unbounded but not last - later tiers are unreachable", i))
		}
	}
	if n := len(cv.NoticeTiers); n > 0 && cv.NoticeTiers[n-1].MaxMonths != nil {
		warnings = append(warnings, "Last notice tier is bounded - longer tenures get the maximum notice of 56 days")
	}

	if cv.Employment.GrossSalary > 0 && !cv.Employment.ApplyCap {
		warnings = append(warnings, "Severance cap is disabled - the uncapped monthly income will be used")
	}

	return warnings
}
