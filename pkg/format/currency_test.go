package format

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		lang   string
		want   string
	}{
		{47804.40, "tr", "₺47.804,40"},
		{47804.40, "en", "TRY 47,804.40"},
		{143544.17, "tr", "₺143.544,17"},
		{1593.48, "tr", "₺1.593,48"},
		{0, "tr", "₺0,00"},
		{999.999, "tr", "₺1.000,00"},
		{1.005, "tr", "₺1,01"},
		{-1234.56, "tr", "-₺1.234,56"},
		{-1234.56, "en", "-TRY 1,234.56"},
		{1234567.891, "en", "TRY 1,234,567.89"},
		{100, "", "₺100,00"},
		{100, "de", "₺100,00"},
	}

	for _, tt := range tests {
		if got := Currency(tt.amount, tt.lang); got != tt.want {
			t.Errorf("Currency(%v, %q) = %q, expected %q", tt.amount, tt.lang, got, tt.want)
		}
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		lang   string
		want   string
	}{
		{89234.88, "tr", "89.234,88"},
		{89234.88, "en", "89,234.88"},
		{-0.5, "tr", "-0,50"},
		{12, "en", "12.00"},
	}

	for _, tt := range tests {
		if got := NumericCurrency(tt.amount, tt.lang); got != tt.want {
			t.Errorf("NumericCurrency(%v, %q) = %q, expected %q", tt.amount, tt.lang, got, tt.want)
		}
	}
}

func TestInteger(t *testing.T) {
	tests := []struct {
		value int64
		lang  string
		want  string
	}{
		{33000, "tr", "33.000"},
		{33000, "en", "33,000"},
		{999, "tr", "999"},
		{-1500000, "tr", "-1.500.000"},
	}

	for _, tt := range tests {
		if got := Integer(tt.value, tt.lang); got != tt.want {
			t.Errorf("Integer(%d, %q) = %q, expected %q", tt.value, tt.lang, got, tt.want)
		}
	}
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		lang string
		want language.Tag
	}{
		{"tr", language.Turkish},
		{"tr-TR", language.Turkish},
		{"en", language.English},
		{"en-GB", language.English},
		{"", language.Turkish},
		{"xx", language.Turkish},
	}

	for _, tt := range tests {
		if got := Language(tt.lang); got != tt.want {
			t.Errorf("Language(%q) = %v, expected %v", tt.lang, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"50.000", 50000, false},
		{"33.000", 33000, false},
		{"1.250,75", 1250.75, false},
		{"47804,40", 47804.40, false},
		{"₺12.500", 12500, false},
		{"12.500 TL", 12500, false},
		{" 7 500 ", 7500, false},
		{"", 0, false},
		{"abc", 0, true},
		{"1,2,3", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("ParseAmount(%q) error = %v, expected ErrInvalidAmount", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, expected %v", tt.input, got, tt.want)
		}
	}
}
