package output

import (
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/message"
)

const labelWidth = 28

// PrettyFormat writes a human-readable rather than machine-readable statement.
func PrettyFormat(w io.Writer, doc Document) {
	lang := doc.Display.Language
	p := printer(lang)

	title := p.Sprintf(msgTitle)
	_, _ = p.Fprintf(w, "--- %s ---\n", title)
	row(w, p, msgCalculatedAt, doc.CalculatedAt)
	row(w, p, msgStartDate, doc.Input.StartDate)
	row(w, p, msgEndDate, doc.Input.EndDate)
	row(w, p, msgReason, doc.Input.ReasonLabel)
	row(w, p, msgNoticeGiven, yesNo(p, doc.Input.NoticeGiven))
	_, _ = io.WriteString(w, "\n")

	row(w, p, msgWorkDuration, doc.Display.WorkDuration)
	row(w, p, msgTotalDays, doc.Display.TotalDays)
	row(w, p, msgMonthlyIncome, doc.Display.TotalMonthlyIncome)
	row(w, p, msgSeveranceBase, doc.Display.CappedMonthlyIncome)
	row(w, p, msgDailyWage, doc.Display.DailyWage)
	_, _ = io.WriteString(w, "\n")

	row(w, p, msgSeverancePay, doc.Display.SeverancePay)
	note(w, doc.Display.SeveranceNote)
	row(w, p, msgNoticePay, doc.Display.NoticePay)
	note(w, doc.Display.NoticeNote)
	_, _ = io.WriteString(w, strings.Repeat("_", labelWidth+18)+"\n")
	row(w, p, msgTotal, doc.Display.TotalAmount)
	_, _ = io.WriteString(w, "\n")
	_, _ = p.Fprintf(w, "%s\n", p.Sprintf(msgGrossDisclaimer))

	if len(doc.Warnings) > 0 {
		_, _ = p.Fprintf(w, "\n%s:\n", p.Sprintf(msgWarnings))
		for _, warning := range doc.Warnings {
			_, _ = p.Fprintf(w, "  - %s\n", warning)
		}
	}
}

func row(w io.Writer, p *message.Printer, key, value string) {
	_, _ = io.WriteString(w, pad(p.Sprintf(key))+" | "+value+"\n")
}

func pad(label string) string {
	if n := utf8.RuneCountInString(label); n < labelWidth {
		return label + strings.Repeat(" ", labelWidth-n)
	}
	return label
}

func note(w io.Writer, text string) {
	if text == "" {
		return
	}
	_, _ = io.WriteString(w, pad("")+" | "+text+"\n")
}

func yesNo(p *message.Printer, v bool) string {
	if v {
		return p.Sprintf(msgYes)
	}
	return p.Sprintf(msgNo)
}
