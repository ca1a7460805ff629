// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/severance-calculator/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatJSON, constants.OutputFormatPDF:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatJSON, constants.OutputFormatPDF, format)
}

// ValidateLanguage checks if the output language is supported.
func ValidateLanguage(lang string) error {
	if lang != constants.LanguageTurkish && lang != constants.LanguageEnglish {
		return fmt.Errorf("expected language of %s or %s, got %s",
			constants.LanguageTurkish, constants.LanguageEnglish, lang)
	}
	return nil
}
