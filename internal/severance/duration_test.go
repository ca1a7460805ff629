package severance

import (
	"testing"
	"time"
)

func TestComputeWorkDuration(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		days       int
		wantYears  int
		wantMonths int
		wantDays   int
		wantText   string
	}{
		{"Zero length", 0, 0, 0, 0, "0 gün"},
		{"Single day", 1, 0, 0, 1, "1 gün"},
		{"Exactly one 30-day month", 30, 0, 1, 0, "1 ay"},
		{"Just under a year", 364, 0, 12, 4, "12 ay 4 gün"},
		{"Exactly one year", 365, 1, 0, 0, "1 yıl"},
		{"Year month and days", 400, 1, 1, 5, "1 yıl 1 ay 5 gün"},
		{"Three years with a leap day", 1096, 3, 0, 1, "3 yıl 1 gün"},
		// Ten calendar years include leap days that spill into the remainder.
		{"Ten calendar years", 3653, 10, 0, 3, "10 yıl 3 gün"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ComputeWorkDuration(base, base.AddDate(0, 0, tt.days))

			if d.TotalDays != tt.days {
				t.Errorf("TotalDays = %d, expected %d", d.TotalDays, tt.days)
			}
			if d.Years != tt.wantYears || d.Months != tt.wantMonths || d.Days != tt.wantDays {
				t.Errorf("breakdown = %d/%d/%d, expected %d/%d/%d",
					d.Years, d.Months, d.Days, tt.wantYears, tt.wantMonths, tt.wantDays)
			}
			if d.Text != tt.wantText {
				t.Errorf("Text = %q, expected %q", d.Text, tt.wantText)
			}
			if want := float64(tt.days) / 30.44; d.TotalMonths != want {
				t.Errorf("TotalMonths = %v, expected %v", d.TotalMonths, want)
			}
		})
	}
}

func TestComputeWorkDurationReversedDates(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	if got := ComputeWorkDuration(start, end).TotalDays; got != 1096 {
		t.Errorf("TotalDays = %d, expected 1096", got)
	}
}

func TestWorkDurationCompose(t *testing.T) {
	d := WorkDuration{Years: 2, Months: 0, Days: 7}

	if got := d.Compose("years", "months", "days"); got != "2 years 7 days" {
		t.Errorf("Compose() = %q, expected %q", got, "2 years 7 days")
	}
	if got := (WorkDuration{}).Compose("years", "months", "days"); got != "0 days" {
		t.Errorf("Compose() = %q, expected %q", got, "0 days")
	}
}
