package severance

import "github.com/iwvelando/severance-calculator/pkg/constants"

// NoticePeriodDays returns the notice length for a tenure of totalMonths.
// Tiers are scanned in order and the first one whose ceiling reaches
// totalMonths wins, so a tenure of exactly 6 months is still in the first
// tier. A tenure beyond every ceiling gets the statutory maximum.
func NoticePeriodDays(totalMonths float64, tiers []NoticeTier) int {
	for _, tier := range tiers {
		if totalMonths <= tier.MaxMonths {
			return tier.Days
		}
	}
	return constants.MaxNoticeDays
}
