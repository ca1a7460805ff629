// Package constants provides shared constants for the severance-calculator application.
package constants

// DateLayout is the format expected for dates in config files, requests and
// output.
const DateLayout = "2006-01-02"

// Statutory calculation constants
const (
	// DaysPerYear is the year length used for severance and the duration breakdown
	DaysPerYear = 365

	// DaysPerMonth is the month length used for the duration breakdown and the daily wage
	DaysPerMonth = 30

	// AverageDaysPerMonth converts total days into fractional months for the notice tiers
	AverageDaysPerMonth = 30.44

	// DefaultSeveranceCap is the monthly severance cap in force from
	// 2026-01-01 to 2026-06-30.
	DefaultSeveranceCap = 47804.40

	// DefaultCapStart is the first day the default cap is in force
	DefaultCapStart = "2026-01-01"

	// DefaultCapEnd is the last day the default cap is in force
	DefaultCapEnd = "2026-06-30"

	// MaxNoticeDays is the notice length returned when no tier matches
	MaxNoticeDays = 56

	// DecimalPlaces is the precision for currency rounding at the presentation boundary
	DecimalPlaces = 2
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatPDF is the PDF statement output format
	OutputFormatPDF = "pdf"
)

// Language constants
const (
	// LanguageTurkish is the default output language
	LanguageTurkish = "tr"

	// LanguageEnglish is the alternative output language
	LanguageEnglish = "en"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultPDFFile is the file written when the pdf output format has no explicit target
	DefaultPDFFile = "severance-statement.pdf"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 kuruş)
	CurrencyTolerance = 0.01
)
