package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// The core PDF fonts use cp1252, which lacks a few Turkish letters and the
// lira sign.
var pdfReplacer = strings.NewReplacer(
	"ğ", "g", "Ğ", "G",
	"ş", "s", "Ş", "S",
	"ı", "i", "İ", "I",
	"₺", "TL ",
)

// WritePDF writes the statement as a single page A4 PDF.
func WritePDF(w io.Writer, doc Document) error {
	p := printer(doc.Display.Language)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string {
		return tr(pdfReplacer.Replace(s))
	}

	line := func(label, value string) {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(70, 7, text(p.Sprintf(label)), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, text(value), "", 1, "L", false, 0, "")
	}
	amount := func(label, value, note string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(70, 7, text(p.Sprintf(label)), "T", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, text(value), "T", 1, "R", false, 0, "")
		if note != "" {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.MultiCell(0, 5, text(note), "", "L", false)
		}
	}

	pdf.SetTitle(text(p.Sprintf(msgTitle)), false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, text(p.Sprintf(msgTitle)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	line(msgCalculatedAt, doc.CalculatedAt)
	line(msgStartDate, doc.Input.StartDate)
	line(msgEndDate, doc.Input.EndDate)
	line(msgReason, doc.Input.ReasonLabel)
	line(msgNoticeGiven, yesNo(p, doc.Input.NoticeGiven))
	pdf.Ln(4)

	line(msgWorkDuration, doc.Display.WorkDuration)
	line(msgTotalDays, doc.Display.TotalDays)
	line(msgMonthlyIncome, doc.Display.TotalMonthlyIncome)
	line(msgSeveranceBase, doc.Display.CappedMonthlyIncome)
	line(msgDailyWage, doc.Display.DailyWage)
	pdf.Ln(4)

	amount(msgSeverancePay, doc.Display.SeverancePay, doc.Display.SeveranceNote)
	amount(msgNoticePay, doc.Display.NoticePay, doc.Display.NoticeNote)
	amount(msgTotal, doc.Display.TotalAmount, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, text(p.Sprintf(msgGrossDisclaimer)), "", "L", false)
	for _, warning := range doc.Warnings {
		pdf.MultiCell(0, 5, text("- "+warning), "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
