// Package output provides utilities for rendering and writing severance
// results in Turkish and English.
package output

import (
	"fmt"

	"github.com/iwvelando/severance-calculator/internal/severance"
	"github.com/iwvelando/severance-calculator/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys are the English texts.
const (
	msgTitle               = "Severance and Notice Pay Calculation"
	msgCalculatedAt        = "Calculation date"
	msgStartDate           = "Start date"
	msgEndDate             = "End date"
	msgReason              = "Termination reason"
	msgNoticeGiven         = "Notice given"
	msgWorkDuration        = "Work duration"
	msgTotalDays           = "Total days"
	msgTotalDaysValue      = "%s days"
	msgMonthlyIncome       = "Monthly gross income"
	msgSeveranceBase       = "Severance base"
	msgDailyWage           = "Daily wage"
	msgSeverancePay        = "Severance pay"
	msgNoticePay           = "Notice pay"
	msgTotal               = "Total"
	msgYes                 = "Yes"
	msgNo                  = "No"
	msgGrossDisclaimer     = "Amounts are gross, before statutory deductions."
	msgWarnings            = "Warnings"
	msgYearUnit            = "year(s)"
	msgMonthUnit           = "month(s)"
	msgDayUnit             = "day(s)"
	msgCapApplied          = "Statutory cap applied. Actual monthly income: %s"
	msgUncapped            = "Calculated without the cap. Statutory cap: %s"
	msgUnderOneYear        = "Less than one year worked - no severance entitlement."
	msgReasonIneligible    = "This reason for leaving creates no severance entitlement."
	msgNoticePaid          = "For a notice period of %d days"
	msgNoticeHonoured      = "The notice period was honoured."
	msgNoticeNotApplicable = "Notice pay does not apply in this case."
	msgNoticeVoluntary     = "No notice pay because you resigned voluntarily."
)

var noteMessages = map[severance.NoteKind]string{
	severance.NoteSeveranceCapApplied:        msgCapApplied,
	severance.NoteSeveranceUncapped:          msgUncapped,
	severance.NoteSeveranceUnderOneYear:      msgUnderOneYear,
	severance.NoteSeveranceReasonIneligible:  msgReasonIneligible,
	severance.NoteNoticePaid:                 msgNoticePaid,
	severance.NoteNoticeHonoured:             msgNoticeHonoured,
	severance.NoteNoticeNotApplicable:        msgNoticeNotApplicable,
	severance.NoteNoticeVoluntaryResignation: msgNoticeVoluntary,
}

var reasonMessages = map[severance.Reason]string{
	severance.ReasonEmployerTermination:  "Termination by the employer",
	severance.ReasonResignationValid:     "Resignation for just cause",
	severance.ReasonResignationVoluntary: "Voluntary resignation",
	severance.ReasonRetirement:           "Retirement",
	severance.ReasonMilitary:             "Military service",
	severance.ReasonMarriageFemale:       "Marriage (female employee, within one year)",
	severance.ReasonHealth:               "Health reasons",
	severance.ReasonDeath:                "Death of the employee",
	severance.ReasonJustCauseDismissal:   "Dismissal for just cause (art. 25/II)",
}

var turkish = map[string]string{
	msgTitle:               "Kıdem ve İhbar Tazminatı Hesaplaması",
	msgCalculatedAt:        "Hesaplama tarihi",
	msgStartDate:           "İşe giriş tarihi",
	msgEndDate:             "İşten çıkış tarihi",
	msgReason:              "Ayrılma nedeni",
	msgNoticeGiven:         "İhbar süresi kullandırıldı",
	msgWorkDuration:        "Çalışma süresi",
	msgTotalDays:           "Toplam gün",
	msgTotalDaysValue:      "%s gün",
	msgMonthlyIncome:       "Aylık brüt gelir",
	msgSeveranceBase:       "Tazminata esas ücret",
	msgDailyWage:           "Günlük ücret",
	msgSeverancePay:        "Kıdem tazminatı",
	msgNoticePay:           "İhbar tazminatı",
	msgTotal:               "Toplam",
	msgYes:                 "Evet",
	msgNo:                  "Hayır",
	msgGrossDisclaimer:     "Tutarlar brüttür, yasal kesintiler öncesidir.",
	msgWarnings:            "Uyarılar",
	msgYearUnit:            "yıl",
	msgMonthUnit:           "ay",
	msgDayUnit:             "gün",
	msgCapApplied:          "Yasal tavan uygulandı. Gerçek maaşınız: %s",
	msgUncapped:            "Tavansız hesaplama. Yasal tavan: %s",
	msgUnderOneYear:        "1 yıldan az çalışma süresi - Kıdem tazminatı hakkı yoktur.",
	msgReasonIneligible:    "Bu ayrılma nedeni kıdem tazminatı hakkı doğurmaz.",
	msgNoticePaid:          "%d günlük ihbar süresi için",
	msgNoticeHonoured:      "İhbar süresi kullandırıldı.",
	msgNoticeNotApplicable: "Bu durumda ihbar tazminatı uygulanmaz.",
	msgNoticeVoluntary:     "Kendi isteğinizle ayrıldığınız için ihbar tazminatı yoktur.",

	"Termination by the employer":                 "İşveren tarafından fesih",
	"Resignation for just cause":                  "Haklı nedenle istifa",
	"Voluntary resignation":                       "Kendi isteğiyle istifa",
	"Retirement":                                  "Emeklilik",
	"Military service":                            "Askerlik",
	"Marriage (female employee, within one year)": "Evlilik (kadın çalışan, bir yıl içinde)",
	"Health reasons":                              "Sağlık nedenleri",
	"Death of the employee":                       "Çalışanın ölümü",
	"Dismissal for just cause (art. 25/II)":       "İşverenin haklı nedenle feshi (md. 25/II)",
}

var messages = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Turkish))
	for key, tr := range turkish {
		if err := b.SetString(language.Turkish, key, tr); err != nil {
			panic(fmt.Sprintf("output: invalid Turkish message %q: %v", key, err))
		}
		if err := b.SetString(language.English, key, key); err != nil {
			panic(fmt.Sprintf("output: invalid English message %q: %v", key, err))
		}
	}
	return b
}

func printer(lang string) *message.Printer {
	return message.NewPrinter(format.Language(lang), message.Catalog(messages))
}

// NoteText renders a note in lang. Empty notes render as "".
func NoteText(note severance.Note, lang string) string {
	key, ok := noteMessages[note.Kind]
	if !ok {
		return ""
	}
	p := printer(lang)
	switch note.Kind {
	case severance.NoteSeveranceCapApplied, severance.NoteSeveranceUncapped:
		return p.Sprintf(key, format.Currency(note.Amount, lang))
	case severance.NoteNoticePaid:
		return p.Sprintf(key, note.Days)
	}
	return p.Sprintf(key)
}

// ReasonLabel returns the human readable name of a termination reason.
func ReasonLabel(reason severance.Reason, lang string) string {
	key, ok := reasonMessages[reason]
	if !ok {
		return reason.String()
	}
	return printer(lang).Sprintf(key)
}

// DurationText composes a work duration with the unit words of lang.
func DurationText(d severance.WorkDuration, lang string) string {
	p := printer(lang)
	return d.Compose(p.Sprintf(msgYearUnit), p.Sprintf(msgMonthUnit), p.Sprintf(msgDayUnit))
}
