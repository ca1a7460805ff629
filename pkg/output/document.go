package output

import (
	"time"

	"github.com/iwvelando/severance-calculator/internal/severance"
	"github.com/iwvelando/severance-calculator/pkg/constants"
	"github.com/iwvelando/severance-calculator/pkg/format"
	"github.com/iwvelando/severance-calculator/pkg/mathutil"
)

// Rendered holds the display strings of a result in one language.
type Rendered struct {
	Language            string `json:"language"`
	WorkDuration        string `json:"workDuration"`
	TotalDays           string `json:"totalDays"`
	TotalMonthlyIncome  string `json:"totalMonthlyIncome"`
	CappedMonthlyIncome string `json:"cappedMonthlyIncome"`
	DailyWage           string `json:"dailyWage"`
	SeverancePay        string `json:"severancePay"`
	SeveranceNote       string `json:"severanceNote,omitempty"`
	NoticePay           string `json:"noticePay"`
	NoticeNote          string `json:"noticeNote,omitempty"`
	TotalAmount         string `json:"totalAmount"`
}

// Render localizes result into lang ("tr" or "en").
func Render(result severance.Result, lang string) Rendered {
	tag := format.Language(lang)
	lang = tag.String()
	p := printer(lang)

	return Rendered{
		Language:            lang,
		WorkDuration:        DurationText(result.WorkDuration, lang),
		TotalDays:           p.Sprintf(msgTotalDaysValue, format.Integer(int64(result.WorkDuration.TotalDays), lang)),
		TotalMonthlyIncome:  format.Currency(result.TotalMonthlyIncome, lang),
		CappedMonthlyIncome: format.Currency(result.CappedMonthlyIncome, lang),
		DailyWage:           format.Currency(result.DailyWage, lang),
		SeverancePay:        format.Currency(result.SeverancePay, lang),
		SeveranceNote:       NoteText(result.SeveranceNote, lang),
		NoticePay:           format.Currency(result.NoticePay, lang),
		NoticeNote:          NoteText(result.NoticeNote, lang),
		TotalAmount:         format.Currency(result.TotalAmount, lang),
	}
}

// Rounded returns a copy of result with every amount rounded to kuruş. The
// total is the sum of the rounded parts. Tenure figures are left untouched.
func Rounded(result severance.Result) severance.Result {
	result.TotalMonthlyIncome = mathutil.Round(result.TotalMonthlyIncome)
	result.CappedMonthlyIncome = mathutil.Round(result.CappedMonthlyIncome)
	result.DailyWage = mathutil.Round(result.DailyWage)
	result.SeverancePay = mathutil.Round(result.SeverancePay)
	result.SeveranceNote.Amount = mathutil.Round(result.SeveranceNote.Amount)
	result.NoticePay = mathutil.Round(result.NoticePay)
	result.NoticeNote.Amount = mathutil.Round(result.NoticeNote.Amount)
	result.TotalAmount = mathutil.Round(result.SeverancePay + result.NoticePay)
	return result
}

// Input echoes the facts a statement was calculated from.
type Input struct {
	StartDate         string  `json:"startDate"`
	EndDate           string  `json:"endDate"`
	GrossSalary       float64 `json:"grossSalary"`
	AdditionalIncome  float64 `json:"additionalIncome"`
	TerminationReason string  `json:"terminationReason"`
	ReasonLabel       string  `json:"reasonLabel"`
	NoticeGiven       bool    `json:"noticeGiven"`
	ApplyCap          bool    `json:"applyCap"`
}

// Document is a complete calculation statement. It is the common source of
// the pretty, JSON and PDF outputs.
type Document struct {
	CalculatedAt string           `json:"calculatedAt"`
	Input        Input            `json:"input"`
	Result       severance.Result `json:"result"`
	Display      Rendered         `json:"display"`
	Warnings     []string         `json:"warnings,omitempty"`
}

// NewDocument assembles a statement. Amounts in Result are rounded to kuruş
// and the display strings are rendered from them.
func NewDocument(facts severance.EmploymentFacts, result severance.Result, lang string, calculatedAt time.Time, warnings []string) Document {
	rounded := Rounded(result)
	display := Render(rounded, lang)
	return Document{
		CalculatedAt: calculatedAt.Format(constants.DateLayout),
		Input: Input{
			StartDate:         facts.StartDate.Format(constants.DateLayout),
			EndDate:           facts.EndDate.Format(constants.DateLayout),
			GrossSalary:       facts.GrossSalary,
			AdditionalIncome:  facts.AdditionalIncome,
			TerminationReason: facts.Reason.String(),
			ReasonLabel:       ReasonLabel(facts.Reason, display.Language),
			NoticeGiven:       facts.NoticeGiven,
			ApplyCap:          facts.ApplyCap,
		},
		Result:   rounded,
		Display:  display,
		Warnings: warnings,
	}
}
