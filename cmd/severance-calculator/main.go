package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/iwvelando/severance-calculator/internal/config"
	"github.com/iwvelando/severance-calculator/internal/logging"
	"github.com/iwvelando/severance-calculator/internal/severance"
	"github.com/iwvelando/severance-calculator/pkg/constants"
	"github.com/iwvelando/severance-calculator/pkg/format"
	"github.com/iwvelando/severance-calculator/pkg/output"
	"github.com/iwvelando/severance-calculator/pkg/validation"
	"go.uber.org/zap"
)

// options holds the command line flags. Employment overrides only apply when
// the flag was given, so they are kept as raw strings.
type options struct {
	configLocation string
	outputFormat   string
	logLevel       string
	language       string
	pdfOut         string
	explicitConfig bool

	overrides map[string]string
}

var employmentFlags = []struct {
	name  string
	usage string
}{
	{"start", "employment start date override (YYYY-MM-DD)"},
	{"end", "employment end date override (YYYY-MM-DD)"},
	{"salary", "monthly gross salary override, Turkish notation accepted (e.g. 50.000)"},
	{"additional", "monthly additional income override, Turkish notation accepted"},
	{"reason", "termination reason override"},
	{"notice-given", "whether the notice period was honoured (true/false)"},
	{"apply-cap", "whether the statutory severance cap applies (true/false)"},
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fset := flag.NewFlagSet("severance-calculator", flag.ContinueOnError)
	fset.SetOutput(stderr)

	opts := options{overrides: make(map[string]string)}
	fset.StringVar(&opts.configLocation, "config", constants.DefaultConfigFile, "path to configuration file")
	fset.StringVar(&opts.outputFormat, "output-format", "", "type of output override: pretty, json, pdf")
	fset.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	fset.StringVar(&opts.language, "lang", "", "output language override: tr, en")
	fset.StringVar(&opts.pdfOut, "pdf-out", "", "target file of the pdf output format")

	values := make(map[string]*string, len(employmentFlags))
	for _, ef := range employmentFlags {
		values[ef.name] = fset.String(ef.name, "", ef.usage)
	}

	if err := fset.Parse(args); err != nil {
		return options{}, err
	}

	fset.Visit(func(f *flag.Flag) {
		if v, ok := values[f.Name]; ok {
			opts.overrides[f.Name] = *v
		}
		if f.Name == "config" {
			opts.explicitConfig = true
		}
	})

	return opts, nil
}

// loadConfiguration reads the config file. The default file may be absent,
// in which case flags alone describe the calculation.
func loadConfiguration(opts options) (*config.Configuration, error) {
	conf, err := config.LoadConfiguration(opts.configLocation)
	if err == nil {
		return conf, nil
	}
	if !opts.explicitConfig {
		if _, statErr := os.Stat(opts.configLocation); errors.Is(statErr, fs.ErrNotExist) {
			return config.LoadConfigurationFromReader(strings.NewReader(""))
		}
	}
	return nil, err
}

func applyOverrides(conf *config.Configuration, opts options) error {
	for name, value := range opts.overrides {
		var err error
		switch name {
		case "start":
			conf.Employment.StartDate = value
		case "end":
			conf.Employment.EndDate = value
		case "salary":
			conf.Employment.GrossSalary, err = format.ParseAmount(value)
		case "additional":
			conf.Employment.AdditionalIncome, err = format.ParseAmount(value)
		case "reason":
			conf.Employment.TerminationReason = value
		case "notice-given":
			conf.Employment.NoticeGiven, err = parseBool(value)
		case "apply-cap":
			conf.Employment.ApplyCap, err = parseBool(value)
		}
		if err != nil {
			return fmt.Errorf("invalid -%s value: %w", name, err)
		}
	}

	if opts.outputFormat != "" {
		conf.Output.Format = opts.outputFormat
	}
	if conf.Output.Format == "" {
		conf.Output.Format = constants.OutputFormatPretty
	}
	if opts.language != "" {
		conf.Output.Language = opts.language
	}
	if conf.Output.Language == "" {
		conf.Output.Language = constants.LanguageTurkish
	}
	if opts.pdfOut != "" {
		conf.Output.PDFFile = opts.pdfOut
	}
	return nil
}

// parseBool accepts the usual Go spellings plus Turkish evet/hayır.
func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "t", "yes", "evet", "e":
		return true, nil
	case "false", "0", "f", "no", "hayır", "hayir", "h":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", value)
}

func run(opts options, stdout io.Writer, now time.Time) error {
	conf, err := loadConfiguration(opts)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", opts.configLocation, err)
	}

	// Initialize logging based on config and CLI override
	logger, err := logging.New(conf.Logging, opts.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := applyOverrides(conf, opts); err != nil {
		return err
	}
	conf.ApplyDefaultDates(now)

	if err := validation.ValidateOutputFormat(conf.Output.Format); err != nil {
		return err
	}
	if err := validation.ValidateLanguage(conf.Output.Language); err != nil {
		return err
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfigurationWithFixedTime(now)
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	lang := conf.Output.Language
	facts, err := validation.Default().Validate(conf.Employment, lang)
	if err != nil {
		return err
	}

	rules, ruleWarnings, err := conf.BuildRules(facts.EndDate)
	if err != nil {
		return fmt.Errorf("failed to build calculation rules: %w", err)
	}
	for _, warning := range ruleWarnings {
		logger.Warn(warning,
			zap.String("op", "main"),
		)
	}

	result := severance.Calculate(facts, rules)
	logger.Debug("severance calculated",
		zap.String("op", "main"),
		zap.Int("totalDays", result.WorkDuration.TotalDays),
		zap.Float64("cap", rules.Cap),
		zap.Float64("severancePay", result.SeverancePay),
		zap.Float64("noticePay", result.NoticePay),
	)

	doc := output.NewDocument(facts, result, lang, now, ruleWarnings)

	switch conf.Output.Format {
	case constants.OutputFormatPretty:
		output.PrettyFormat(stdout, doc)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(stdout, doc); err != nil {
			return fmt.Errorf("failed to write JSON output: %w", err)
		}
	case constants.OutputFormatPDF:
		path := conf.Output.PDFFile
		if path == "" {
			path = constants.DefaultPDFFile
		}
		if err := writePDFFile(path, doc); err != nil {
			return err
		}
		logger.Info("PDF statement written",
			zap.String("op", "main"),
			zap.String("file", path),
		)
	}

	return nil
}

func writePDFFile(path string, doc output.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := output.WritePDF(f, doc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if err := run(opts, os.Stdout, time.Now()); err != nil {
		logger, logErr := zap.NewProduction()
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "severance calculation failed: %v\n", err)
			os.Exit(1)
		}
		logger.Fatal("severance calculation failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
