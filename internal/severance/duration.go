package severance

import (
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/severance-calculator/pkg/constants"
	"github.com/iwvelando/severance-calculator/pkg/datetime"
)

// WorkDuration is the length of employment. Years, Months and Days are a
// display breakdown of TotalDays using 365-day years and 30-day months; they
// drift from calendar figures for long tenures and must not feed any amount.
type WorkDuration struct {
	TotalDays   int     `json:"totalDays"`
	TotalMonths float64 `json:"totalMonths"`
	Years       int     `json:"years"`
	Months      int     `json:"months"`
	Days        int     `json:"days"`
	Text        string  `json:"text"`
}

// ComputeWorkDuration measures the time between start and end.
func ComputeWorkDuration(start, end time.Time) WorkDuration {
	totalDays := datetime.ElapsedDays(start, end)
	remaining := totalDays % constants.DaysPerYear

	d := WorkDuration{
		TotalDays:   totalDays,
		TotalMonths: float64(totalDays) / constants.AverageDaysPerMonth,
		Years:       totalDays / constants.DaysPerYear,
		Months:      remaining / constants.DaysPerMonth,
		Days:        remaining % constants.DaysPerMonth,
	}
	d.Text = d.Compose("yıl", "ay", "gün")
	return d
}

// Compose joins the non-zero parts with the given unit words, e.g.
// "3 yıl 1 gün". All-zero durations render as "0 <dayUnit>".
func (d WorkDuration) Compose(yearUnit, monthUnit, dayUnit string) string {
	var parts []string
	if d.Years > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", d.Years, yearUnit))
	}
	if d.Months > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", d.Months, monthUnit))
	}
	if d.Days > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", d.Days, dayUnit))
	}
	if len(parts) == 0 {
		return "0 " + dayUnit
	}
	return strings.Join(parts, " ")
}
