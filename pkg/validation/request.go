// Package validation provides the request boundary of the calculator: it
// checks caller input and turns it into severance.EmploymentFacts.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/tr"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	tr_translations "github.com/go-playground/validator/v10/translations/tr"
	"github.com/iwvelando/severance-calculator/internal/severance"
	"github.com/iwvelando/severance-calculator/pkg/constants"
	"github.com/iwvelando/severance-calculator/pkg/datetime"
)

// Request is the caller-supplied input of a calculation.
type Request struct {
	StartDate         string  `json:"startDate" yaml:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate           string  `json:"endDate" yaml:"endDate" validate:"required,datetime=2006-01-02"`
	GrossSalary       float64 `json:"grossSalary" yaml:"grossSalary" validate:"gt=0"`
	AdditionalIncome  float64 `json:"additionalIncome" yaml:"additionalIncome" validate:"gte=0"`
	TerminationReason string  `json:"terminationReason" yaml:"terminationReason" validate:"required,reason"`
	NoticeGiven       bool    `json:"noticeGiven" yaml:"noticeGiven"`
	ApplyCap          bool    `json:"applyCap" yaml:"applyCap"`
}

// Code identifies a rejected request.
type Code string

const (
	CodeReasonMissing     Code = "reason_missing"
	CodeReasonUnknown     Code = "reason_unknown"
	CodeInvalidDate       Code = "invalid_date"
	CodeDateOrder         Code = "date_order"
	CodeSalaryNotPositive Code = "salary_not_positive"
	CodeNegativeIncome    Code = "negative_income"
	CodeInvalid           Code = "invalid"
)

// Sentinel errors wrapped by *Error, one per Code.
var (
	ErrReasonMissing     = errors.New("termination reason is required")
	ErrUnknownReason     = errors.New("unknown termination reason")
	ErrInvalidDate       = errors.New("invalid date")
	ErrDateOrder         = errors.New("start date must be before end date")
	ErrSalaryNotPositive = errors.New("gross salary must be positive")
	ErrNegativeIncome    = errors.New("additional income must not be negative")
	ErrInvalid           = errors.New("invalid request")
)

// priority mirrors the order in which a form reports problems: reason first,
// then dates, then amounts.
var priority = []Code{
	CodeReasonMissing,
	CodeReasonUnknown,
	CodeInvalidDate,
	CodeDateOrder,
	CodeSalaryNotPositive,
	CodeNegativeIncome,
	CodeInvalid,
}

var sentinels = map[Code]error{
	CodeReasonMissing:     ErrReasonMissing,
	CodeReasonUnknown:     ErrUnknownReason,
	CodeInvalidDate:       ErrInvalidDate,
	CodeDateOrder:         ErrDateOrder,
	CodeSalaryNotPositive: ErrSalaryNotPositive,
	CodeNegativeIncome:    ErrNegativeIncome,
	CodeInvalid:           ErrInvalid,
}

// Error is a rejected request with a localized message.
type Error struct {
	Field   string
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validator checks requests with localized messages.
type Validator struct {
	validate *validator.Validate
	uni      *ut.UniversalTranslator
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
)

// Default returns a shared Validator, initializing it on first use.
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = New()
	})
	return defaultValidator
}

// New builds a Validator with Turkish and English messages.
func New() *Validator {
	trLoc := tr.New()
	uni := ut.New(trLoc, trLoc, en.New())

	v := validator.New(validator.WithRequiredStructEnabled())

	// prefer json tag names in messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get("json")
		if tag == "-" || tag == "" {
			return fld.Name
		}
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		return tag
	})

	_ = v.RegisterValidation("reason", func(fl validator.FieldLevel) bool {
		_, err := severance.ParseReason(fl.Field().String())
		return err == nil
	})
	v.RegisterStructValidation(validateDateOrder, Request{})

	trTrans, _ := uni.GetTranslator(constants.LanguageTurkish)
	_ = tr_translations.RegisterDefaultTranslations(v, trTrans)
	registerMessages(trTrans, turkishMessages)

	enTrans, _ := uni.GetTranslator(constants.LanguageEnglish)
	_ = en_translations.RegisterDefaultTranslations(v, enTrans)
	registerMessages(enTrans, englishMessages)

	return &Validator{validate: v, uni: uni}
}

func validateDateOrder(sl validator.StructLevel) {
	req := sl.Current().Interface().(Request)
	before, err := datetime.DateBeforeDate(req.StartDate, req.EndDate)
	if err != nil {
		return
	}
	if !before {
		sl.ReportError(req.EndDate, "endDate", "EndDate", "after_start", "")
	}
}

// Validate checks req and returns the facts for a calculation. Messages are
// in lang ("tr" or "en"); unknown languages fall back to Turkish. When
// several fields are wrong the most significant one is reported.
func (v *Validator) Validate(req Request, lang string) (severance.EmploymentFacts, error) {
	trans, _ := v.uni.GetTranslator(lang)

	req.TerminationReason = strings.TrimSpace(req.TerminationReason)
	if err := v.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return severance.EmploymentFacts{}, &Error{Code: CodeInvalid, Message: err.Error(), Err: ErrInvalid}
		}
		return severance.EmploymentFacts{}, pick(verrs, trans)
	}

	// Both dates and the reason already passed the struct rules above.
	start, _ := datetime.ParseDate(req.StartDate)
	end, _ := datetime.ParseDate(req.EndDate)
	reason, _ := severance.ParseReason(req.TerminationReason)

	return severance.EmploymentFacts{
		StartDate:        start,
		EndDate:          end,
		GrossSalary:      req.GrossSalary,
		AdditionalIncome: req.AdditionalIncome,
		Reason:           reason,
		NoticeGiven:      req.NoticeGiven,
		ApplyCap:         req.ApplyCap,
	}, nil
}

func pick(verrs validator.ValidationErrors, trans ut.Translator) *Error {
	found := make(map[Code]validator.FieldError, len(verrs))
	for _, fe := range verrs {
		code := classify(fe)
		if _, seen := found[code]; !seen {
			found[code] = fe
		}
	}
	for _, code := range priority {
		fe, ok := found[code]
		if !ok {
			continue
		}
		msg, err := trans.T(string(code), fe.Field())
		if err != nil || msg == "" {
			msg = fe.Translate(trans)
		}
		return &Error{Field: fe.Field(), Code: code, Message: msg, Err: sentinels[code]}
	}
	return &Error{Code: CodeInvalid, Message: verrs.Error(), Err: ErrInvalid}
}

func classify(fe validator.FieldError) Code {
	switch fe.Field() {
	case "terminationReason":
		if fe.Tag() == "required" {
			return CodeReasonMissing
		}
		return CodeReasonUnknown
	case "startDate", "endDate":
		if fe.Tag() == "after_start" {
			return CodeDateOrder
		}
		return CodeInvalidDate
	case "grossSalary":
		return CodeSalaryNotPositive
	case "additionalIncome":
		return CodeNegativeIncome
	}
	return CodeInvalid
}
