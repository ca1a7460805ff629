// Package severance computes Turkish statutory severance (kıdem) and notice
// (ihbar) indemnities from the facts of an employment.
//
// Calculate is a pure function: it performs no I/O, keeps no state and is
// safe for concurrent use. Input validation belongs to the caller; see
// pkg/validation for the request boundary.
package severance

import (
	"time"

	"github.com/iwvelando/severance-calculator/pkg/constants"
	"github.com/iwvelando/severance-calculator/pkg/mathutil"
)

// EmploymentFacts are the inputs of a calculation. StartDate must be before
// EndDate and GrossSalary must be positive.
type EmploymentFacts struct {
	StartDate        time.Time
	EndDate          time.Time
	GrossSalary      float64
	AdditionalIncome float64
	Reason           Reason
	NoticeGiven      bool
	ApplyCap         bool
}

// Result is the outcome of a calculation. Amounts are not rounded.
type Result struct {
	WorkDuration        WorkDuration `json:"workDuration"`
	TotalMonthlyIncome  float64      `json:"totalMonthlyIncome"`
	CappedMonthlyIncome float64      `json:"cappedMonthlyIncome"`
	CapApplied          bool         `json:"capApplied"`
	DailyWage           float64      `json:"dailyWage"`
	IsSeveranceEligible bool         `json:"isSeveranceEligible"`
	SeverancePay        float64      `json:"severancePay"`
	SeveranceNote       Note         `json:"severanceNote"`
	IsNoticeEligible    bool         `json:"isNoticeEligible"`
	NoticeDays          int          `json:"noticeDays"`
	NoticePay           float64      `json:"noticePay"`
	NoticeNote          Note         `json:"noticeNote"`
	TotalAmount         float64      `json:"totalAmount"`
}

// Calculate computes severance and notice pay for facts under rules.
func Calculate(facts EmploymentFacts, rules Rules) Result {
	var res Result
	res.WorkDuration = ComputeWorkDuration(facts.StartDate, facts.EndDate)

	res.TotalMonthlyIncome = facts.GrossSalary + facts.AdditionalIncome
	res.CappedMonthlyIncome = res.TotalMonthlyIncome
	if facts.ApplyCap {
		res.CappedMonthlyIncome = mathutil.Min(res.TotalMonthlyIncome, rules.Cap)
		res.CapApplied = res.TotalMonthlyIncome > rules.Cap
	}
	res.DailyWage = res.CappedMonthlyIncome / constants.DaysPerMonth

	res.IsSeveranceEligible = facts.Reason.SeveranceEligible()
	res.SeverancePay, res.SeveranceNote = severancePay(facts, rules, res)

	res.IsNoticeEligible = facts.Reason.NoticeEligible()
	res.NoticeDays, res.NoticePay, res.NoticeNote = noticePay(facts, rules, res)

	res.TotalAmount = res.SeverancePay + res.NoticePay
	return res
}

func severancePay(facts EmploymentFacts, rules Rules, res Result) (float64, Note) {
	switch {
	case !res.IsSeveranceEligible:
		return 0, Note{Kind: NoteSeveranceReasonIneligible}
	case res.WorkDuration.TotalDays < constants.DaysPerYear:
		return 0, Note{Kind: NoteSeveranceUnderOneYear}
	}

	years := float64(res.WorkDuration.TotalDays) / constants.DaysPerYear
	pay := years * res.CappedMonthlyIncome

	switch {
	case res.CapApplied:
		return pay, Note{Kind: NoteSeveranceCapApplied, Amount: res.TotalMonthlyIncome}
	case !facts.ApplyCap && res.TotalMonthlyIncome > rules.Cap:
		return pay, Note{Kind: NoteSeveranceUncapped, Amount: rules.Cap}
	}
	return pay, Note{}
}

func noticePay(facts EmploymentFacts, rules Rules, res Result) (int, float64, Note) {
	switch {
	case res.IsNoticeEligible && !facts.NoticeGiven:
		days := NoticePeriodDays(res.WorkDuration.TotalMonths, rules.NoticeTiers)
		return days, float64(days) * res.DailyWage, Note{Kind: NoteNoticePaid, Days: days}
	case facts.NoticeGiven:
		return 0, 0, Note{Kind: NoteNoticeHonoured}
	case facts.Reason != ReasonResignationVoluntary:
		return 0, 0, Note{Kind: NoteNoticeNotApplicable}
	default:
		return 0, 0, Note{Kind: NoteNoticeVoluntaryResignation}
	}
}
