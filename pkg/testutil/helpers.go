// Package testutil provides common utility functions for testing.
package testutil

import (
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/severance-calculator/internal/severance"
	"github.com/iwvelando/severance-calculator/pkg/datetime"
)

// Date parses a YYYY-MM-DD date and fails the test if it is malformed.
func Date(t testing.TB, value string) time.Time {
	t.Helper()
	d, err := datetime.ParseDate(value)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", value, err)
	}
	return d
}

// Facts builds employment facts with the cap applied and no notice given.
func Facts(t testing.TB, start, end string, gross float64, reason severance.Reason) severance.EmploymentFacts {
	t.Helper()
	return severance.EmploymentFacts{
		StartDate:   Date(t, start),
		EndDate:     Date(t, end),
		GrossSalary: gross,
		Reason:      reason,
		ApplyCap:    true,
	}
}

// FindWarning returns the first warning containing substr.
// Returns an empty string and false if there is none.
func FindWarning(warnings []string, substr string) (string, bool) {
	for _, warning := range warnings {
		if strings.Contains(warning, substr) {
			return warning, true
		}
	}
	return "", false
}
