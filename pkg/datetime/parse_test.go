package datetime

import (
	"testing"
	"time"
)

func TestMustParseTime(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		dateStr  string
		expected string
	}{
		{
			name:     "Valid date",
			layout:   DateLayout,
			dateStr:  "2025-01-31",
			expected: "2025-01-31",
		},
		{
			name:     "Leap day",
			layout:   DateLayout,
			dateStr:  "2024-02-29",
			expected: "2024-02-29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseTime(tt.layout, tt.dateStr)
			if result.Format(tt.layout) != tt.expected {
				t.Errorf("MustParseTime() = %s, expected %s", result.Format(tt.layout), tt.expected)
			}
		})
	}
}

func TestMustParseTimePanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected MustParseTime to panic with invalid date")
		}
	}()

	MustParseTime(DateLayout, "invalid-date")
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Plain date", "2023-01-01", false},
		{"Surrounding whitespace", "  2023-01-01 ", false},
		{"Month only", "2023-01", true},
		{"Turkish order", "01.01.2023", true},
		{"Invalid day", "2023-02-30", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) expected error but got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.input, err)
			}
			if result.Location() != time.UTC {
				t.Errorf("ParseDate(%q) location = %v, expected UTC", tt.input, result.Location())
			}
		})
	}
}

func TestElapsedDays(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "Three years with a leap year",
			start:    MustParseTime(DateLayout, "2020-01-01"),
			end:      MustParseTime(DateLayout, "2023-01-01"),
			expected: 1096,
		},
		{
			name:     "Single day",
			start:    MustParseTime(DateLayout, "2023-01-01"),
			end:      MustParseTime(DateLayout, "2023-01-02"),
			expected: 1,
		},
		{
			name:     "Reversed order",
			start:    MustParseTime(DateLayout, "2023-01-02"),
			end:      MustParseTime(DateLayout, "2023-01-01"),
			expected: 1,
		},
		{
			name:     "Same instant",
			start:    MustParseTime(DateLayout, "2023-01-01"),
			end:      MustParseTime(DateLayout, "2023-01-01"),
			expected: 0,
		},
		{
			name:     "Partial day rounds up",
			start:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2023, 1, 2, 1, 0, 0, 0, time.UTC),
			expected: 2,
		},
		{
			name:     "Partial day across reversed order",
			start:    time.Date(2023, 1, 2, 1, 0, 0, 500, time.UTC),
			end:      time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: 2,
		},
		{
			name:     "Nanoseconds before a full day",
			start:    time.Date(2023, 1, 1, 0, 0, 0, 1, time.UTC),
			end:      time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "Longer than time.Duration can hold",
			start:    MustParseTime(DateLayout, "1700-01-01"),
			end:      MustParseTime(DateLayout, "2025-01-01"),
			expected: 118704,
		},
		{
			name:     "Whole calendar range",
			start:    MustParseTime(DateLayout, "0001-01-01"),
			end:      MustParseTime(DateLayout, "9999-12-31"),
			expected: 3652058,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElapsedDays(tt.start, tt.end); got != tt.expected {
				t.Errorf("ElapsedDays() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	in := time.Date(2026, 3, 14, 15, 9, 26, 0, time.FixedZone("TRT", 3*60*60))
	got := Truncate(in)
	if got.Format(DateLayout) != "2026-03-14" {
		t.Errorf("Truncate() = %s, expected 2026-03-14", got.Format(DateLayout))
	}
	if got.Hour() != 0 || got.Location() != time.UTC {
		t.Errorf("Truncate() = %v, expected UTC midnight", got)
	}
}

func TestDateBeforeDate(t *testing.T) {
	tests := []struct {
		name       string
		firstDate  string
		secondDate string
		expected   bool
		wantErr    bool
	}{
		{
			name:       "Different years",
			firstDate:  "2024-12-31",
			secondDate: "2025-01-01",
			expected:   true,
		},
		{
			name:       "Reverse order",
			firstDate:  "2025-06-01",
			secondDate: "2025-01-01",
			expected:   false,
		},
		{
			name:       "Equal dates",
			firstDate:  "2025-06-01",
			secondDate: "2025-06-01",
			expected:   false,
		},
		{
			name:       "Invalid first date",
			firstDate:  "2025-13-01",
			secondDate: "2025-06-01",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := DateBeforeDate(tt.firstDate, tt.secondDate)
			if tt.wantErr {
				if err == nil {
					t.Errorf("DateBeforeDate() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("DateBeforeDate() error = %v", err)
				return
			}
			if result != tt.expected {
				t.Errorf("DateBeforeDate() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestWithin(t *testing.T) {
	start := MustParseTime(DateLayout, "2026-01-01")
	end := MustParseTime(DateLayout, "2026-06-30")

	tests := []struct {
		name     string
		date     string
		end      time.Time
		expected bool
	}{
		{"First day", "2026-01-01", end, true},
		{"Last day", "2026-06-30", end, true},
		{"Day before", "2025-12-31", end, false},
		{"Day after", "2026-07-01", end, false},
		{"Open ended", "2030-01-01", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Within(MustParseTime(DateLayout, tt.date), start, tt.end); got != tt.expected {
				t.Errorf("Within(%s) = %v, expected %v", tt.date, got, tt.expected)
			}
		})
	}
}
