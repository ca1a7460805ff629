package severance

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/iwvelando/severance-calculator/pkg/constants"
	"github.com/iwvelando/severance-calculator/pkg/datetime"
)

// NoticeTier maps a tenure ceiling in months to a notice length in days.
// MaxMonths is inclusive; math.Inf(1) marks the unbounded last tier.
type NoticeTier struct {
	MaxMonths float64 `json:"maxMonths"`
	Days      int     `json:"days"`
}

// Unbounded reports whether the tier has no upper limit.
func (t NoticeTier) Unbounded() bool {
	return math.IsInf(t.MaxMonths, 1)
}

// MarshalJSON renders the unbounded ceiling as null since JSON has no infinity.
func (t NoticeTier) MarshalJSON() ([]byte, error) {
	if t.Unbounded() {
		return []byte(fmt.Sprintf(`{"maxMonths":null,"days":%d}`, t.Days)), nil
	}
	return []byte(fmt.Sprintf(`{"maxMonths":%g,"days":%d}`, t.MaxMonths, t.Days)), nil
}

// Rules holds the tunable statutory constants for a single calculation.
type Rules struct {
	// Cap is the monthly income ceiling for the severance and notice wage base.
	Cap         float64
	NoticeTiers []NoticeTier
}

// DefaultNoticeTiers returns the Labour Act art. 17 notice periods.
func DefaultNoticeTiers() []NoticeTier {
	return []NoticeTier{
		{MaxMonths: 6, Days: 14},
		{MaxMonths: 18, Days: 28},
		{MaxMonths: 36, Days: 42},
		{MaxMonths: math.Inf(1), Days: constants.MaxNoticeDays},
	}
}

// DefaultRules returns the rules in force with the default cap.
func DefaultRules() Rules {
	return Rules{
		Cap:         constants.DefaultSeveranceCap,
		NoticeTiers: DefaultNoticeTiers(),
	}
}

// ValidateNoticeTiers checks that tiers are strictly ascending and have
// positive lengths. A bounded last tier is allowed; see NoticePeriodDays.
func ValidateNoticeTiers(tiers []NoticeTier) error {
	if len(tiers) == 0 {
		return errors.New("notice tier table is empty")
	}
	for i, tier := range tiers {
		if tier.Days <= 0 {
			return fmt.Errorf("notice tier %d has non-positive days %d", i, tier.Days)
		}
		if tier.MaxMonths < 0 {
			return fmt.Errorf("notice tier %d has negative month ceiling %g", i, tier.MaxMonths)
		}
		if i > 0 && tier.MaxMonths <= tiers[i-1].MaxMonths {
			return fmt.Errorf("notice tier %d ceiling %g is not above previous ceiling %g",
				i, tier.MaxMonths, tiers[i-1].MaxMonths)
		}
	}
	return nil
}

// CapPeriod is a statutory cap amount with the dates it is in force.
// A zero End means the period has no announced end.
type CapPeriod struct {
	Start  time.Time
	End    time.Time
	Amount float64
}

// Covers reports whether date falls inside the period.
func (p CapPeriod) Covers(date time.Time) bool {
	return datetime.Within(date, p.Start, p.End)
}

// CapSchedule is the versioned list of cap amounts.
type CapSchedule []CapPeriod

// DefaultCapSchedule returns the schedule holding the cap currently in force.
func DefaultCapSchedule() CapSchedule {
	return CapSchedule{
		{
			Start:  datetime.MustParseTime(constants.DateLayout, constants.DefaultCapStart),
			End:    datetime.MustParseTime(constants.DateLayout, constants.DefaultCapEnd),
			Amount: constants.DefaultSeveranceCap,
		},
	}
}

// Sorted returns a copy of the schedule ordered by start date.
func (s CapSchedule) Sorted() CapSchedule {
	out := make(CapSchedule, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// Validate checks amounts, ranges and overlaps.
func (s CapSchedule) Validate() error {
	if len(s) == 0 {
		return errors.New("cap schedule is empty")
	}
	sorted := s.Sorted()
	for i, p := range sorted {
		if p.Amount <= 0 {
			return fmt.Errorf("cap period starting %s has non-positive amount %.2f",
				p.Start.Format(constants.DateLayout), p.Amount)
		}
		if !p.End.IsZero() && p.End.Before(p.Start) {
			return fmt.Errorf("cap period starting %s ends before it starts",
				p.Start.Format(constants.DateLayout))
		}
		if i > 0 {
			prev := sorted[i-1]
			if prev.End.IsZero() || !prev.End.Before(p.Start) {
				return fmt.Errorf("cap periods starting %s and %s overlap",
					prev.Start.Format(constants.DateLayout), p.Start.Format(constants.DateLayout))
			}
		}
	}
	return nil
}

// Resolve returns the cap period in force on date. When no period covers the
// date, the latest period that started before it is returned, or the earliest
// period if the date precedes the whole schedule; ok is false in both cases.
// Resolve panics on an empty schedule.
func (s CapSchedule) Resolve(date time.Time) (period CapPeriod, ok bool) {
	if len(s) == 0 {
		panic("severance: Resolve on empty cap schedule")
	}
	sorted := s.Sorted()
	for _, p := range sorted {
		if p.Covers(date) {
			return p, true
		}
	}
	nearest := sorted[0]
	for _, p := range sorted {
		if p.Start.After(date) {
			break
		}
		nearest = p
	}
	return nearest, false
}
