package validation

import ut "github.com/go-playground/universal-translator"

var turkishMessages = map[Code]string{
	CodeReasonMissing:     "Lütfen işten ayrılma nedenini seçiniz.",
	CodeReasonUnknown:     "Geçersiz işten ayrılma nedeni.",
	CodeInvalidDate:       "{0} YYYY-AA-GG biçiminde geçerli bir tarih olmalıdır.",
	CodeDateOrder:         "İşe giriş tarihi, işten çıkış tarihinden önce olmalıdır.",
	CodeSalaryNotPositive: "Lütfen geçerli bir brüt maaş giriniz.",
	CodeNegativeIncome:    "Ek ödemeler negatif olamaz.",
}

var englishMessages = map[Code]string{
	CodeReasonMissing:     "Please select a termination reason.",
	CodeReasonUnknown:     "Unknown termination reason.",
	CodeInvalidDate:       "{0} must be a valid date in YYYY-MM-DD format.",
	CodeDateOrder:         "The start date must be before the end date.",
	CodeSalaryNotPositive: "Please enter a valid gross salary.",
	CodeNegativeIncome:    "Additional income must not be negative.",
}

func registerMessages(trans ut.Translator, messages map[Code]string) {
	for code, text := range messages {
		_ = trans.Add(string(code), text, true)
	}
}
