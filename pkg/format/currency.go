// Package format renders and parses amounts the way Turkish payroll
// documents write them.
package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/severance-calculator/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

var supported = []language.Tag{language.Turkish, language.English}

var matcher = language.NewMatcher(supported)

// Language resolves a caller supplied language ("tr", "en-GB", "tr-TR", ...)
// to one of the supported tags. Anything unrecognised is Turkish.
func Language(lang string) language.Tag {
	if strings.TrimSpace(lang) == "" {
		return language.Turkish
	}
	_, index := language.MatchStrings(matcher, lang)
	return supported[index]
}

type separators struct {
	group   byte
	decimal byte
}

func separatorsFor(tag language.Tag) separators {
	if tag == language.English {
		return separators{group: ',', decimal: '.'}
	}
	return separators{group: '.', decimal: ','}
}

// Currency returns the amount in Turkish lira, e.g. "₺47.804,40" for "tr"
// and "TRY 47,804.40" for "en". Negative amounts get a leading minus.
func Currency(amount float64, lang string) string {
	tag := Language(lang)
	formatted := NumericCurrency(amount, lang)

	sign := ""
	if strings.HasPrefix(formatted, "-") {
		sign, formatted = "-", formatted[1:]
	}
	if tag == language.English {
		return sign + "TRY " + formatted
	}
	return sign + "₺" + formatted
}

// NumericCurrency returns the amount with separators but without a currency
// symbol (e.g., "-1.234,56" for "tr").
func NumericCurrency(amount float64, lang string) string {
	sep := separatorsFor(Language(lang))

	d := decimal.NewFromFloat(amount).Round(constants.DecimalPlaces)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	formatted := d.StringFixed(constants.DecimalPlaces)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	return sign + group(intPart, sep.group) + string(sep.decimal) + decPart
}

// Integer returns a whole number with thousands separators, the way the
// salary fields of the calculator form display input ("33.000").
func Integer(value int64, lang string) string {
	sep := separatorsFor(Language(lang))
	if value < 0 {
		return "-" + group(fmt.Sprintf("%d", -value), sep.group)
	}
	return group(fmt.Sprintf("%d", value), sep.group)
}

func group(intPart string, separator byte) string {
	if len(intPart) <= 3 {
		return intPart
	}
	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(separator)
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}

// ErrInvalidAmount is returned by ParseAmount for input that is not a number.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount parses an amount typed in Turkish notation. Dots are thousands
// separators and a comma starts the fraction, so "50.000" is 50000 and
// "1.250,75" is 1250.75. A currency symbol or "TL" suffix is ignored and an
// empty string is zero.
func ParseAmount(value string) (float64, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.TrimPrefix(cleaned, "₺")
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "TL")
	cleaned = strings.Join(strings.Fields(cleaned), "")
	if cleaned == "" {
		return 0, nil
	}

	cleaned = strings.ReplaceAll(cleaned, ".", "")
	if strings.Count(cleaned, ",") > 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}
	return d.InexactFloat64(), nil
}
