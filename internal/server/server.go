// Package server exposes the severance calculator over HTTP.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/iwvelando/severance-calculator/internal/config"
	"github.com/iwvelando/severance-calculator/internal/severance"
	"github.com/iwvelando/severance-calculator/pkg/constants"
	"github.com/iwvelando/severance-calculator/pkg/format"
	"github.com/iwvelando/severance-calculator/pkg/output"
	"github.com/iwvelando/severance-calculator/pkg/validation"
	"go.uber.org/zap"
)

const calculationIDHeader = "X-Calculation-ID"

type handler struct {
	logger    *zap.Logger
	rules     *config.Configuration
	validator *validation.Validator
	version   string
	now       func() time.Time
}

// NewHandler constructs the HTTP handler that serves the calculation API.
// A nil rules configuration uses the compiled defaults.
func NewHandler(logger *zap.Logger, cfg *Config, rules *config.Configuration, version string) http.Handler {
	return newHandler(logger, rules, version).routes(cfg)
}

func newHandler(logger *zap.Logger, rules *config.Configuration, version string) *handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rules == nil {
		rules = &config.Configuration{}
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	return &handler{
		logger:    logger,
		rules:     rules,
		validator: validation.Default(),
		version:   trimmedVersion,
		now:       time.Now,
	}
}

func (h *handler) routes(cfg *Config) http.Handler {
	if cfg == nil {
		cfg = &Config{}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(accessLog(h.logger))
	r.Use(middleware.Recoverer)
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(corsHandler(cfg.AllowedOrigins))
	}
	r.Use(limitBody(cfg.BodySizeBytes()))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.respondError(w, r, http.StatusNotFound, errorResponse{Error: http.StatusText(http.StatusNotFound), Code: "not_found"}, "server.notFound")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.respondError(w, r, http.StatusMethodNotAllowed, errorResponse{Error: http.StatusText(http.StatusMethodNotAllowed), Code: "method_not_allowed"}, "server.methodNotAllowed")
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/calculate", h.handleCalculate)
		r.Post("/calculate/pdf", h.handleCalculatePDF)
		r.Get("/rules", h.handleRules)
		r.Get("/version", h.handleVersion)
	})

	return r
}

// calculateRequest is the body of the calculation endpoints.
type calculateRequest struct {
	validation.Request
	Language string `json:"language,omitempty"`
}

type calculateResponse struct {
	CalculationID string `json:"calculationId"`
	output.Document
	Rules appliedRules `json:"rules"`
}

type appliedRules struct {
	Cap         float64                `json:"cap"`
	NoticeTiers []severance.NoticeTier `json:"noticeTiers"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

type calculation struct {
	id    string
	rules severance.Rules
	doc   output.Document
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"

	calc, ok := h.calculate(w, r, op)
	if !ok {
		return
	}

	w.Header().Set(calculationIDHeader, calc.id)
	h.writeJSON(w, http.StatusOK, calculateResponse{
		CalculationID: calc.id,
		Document:      calc.doc,
		Rules: appliedRules{
			Cap:         calc.rules.Cap,
			NoticeTiers: calc.rules.NoticeTiers,
		},
	})
}

func (h *handler) handleCalculatePDF(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculatePDF"

	calc, ok := h.calculate(w, r, op)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := output.WritePDF(&buf, calc.doc); err != nil {
		h.respondError(w, r, http.StatusInternalServerError, errorResponse{Error: err.Error(), Code: "pdf_failed"}, op)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="severance-%s.pdf"`, calc.id))
	w.Header().Set(calculationIDHeader, calc.id)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write PDF response",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

// calculate decodes, validates and evaluates a request. It writes the error
// response itself and reports false when the request was rejected.
func (h *handler) calculate(w http.ResponseWriter, r *http.Request, op string) (calculation, bool) {
	start := time.Now()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge, errorResponse{
				Error: fmt.Sprintf("request body exceeds limit of %d bytes", maxBytesErr.Limit),
				Code:  "body_too_large",
			}, op)
			return calculation{}, false
		}
		h.respondError(w, r, http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("failed to read request: %v", err),
			Code:  "invalid_body",
		}, op)
		return calculation{}, false
	}

	var req calculateRequest
	req.ApplyCap = true
	if err := json.Unmarshal(body, &req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("failed to decode request: %v", err),
			Code:  "invalid_json",
		}, op)
		return calculation{}, false
	}

	lang := requestLanguage(r, req.Language)

	facts, err := h.validator.Validate(req.Request, lang)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			h.respondError(w, r, http.StatusBadRequest, errorResponse{
				Error: verr.Message,
				Code:  string(verr.Code),
				Field: verr.Field,
			}, op)
			return calculation{}, false
		}
		h.respondError(w, r, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: string(validation.CodeInvalid)}, op)
		return calculation{}, false
	}

	rules, warnings, err := h.rules.BuildRules(facts.EndDate)
	if err != nil {
		h.respondError(w, r, http.StatusInternalServerError, errorResponse{Error: err.Error(), Code: "rules_invalid"}, op)
		return calculation{}, false
	}

	result := severance.Calculate(facts, rules)
	calc := calculation{
		id:    uuid.NewString(),
		rules: rules,
		doc:   output.NewDocument(facts, result, lang, h.now(), warnings),
	}

	h.logger.Info("severance calculated",
		zap.String("op", op),
		zap.String("calculationId", calc.id),
		zap.String("requestId", middleware.GetReqID(r.Context())),
		zap.String("reason", facts.Reason.String()),
		zap.Int("totalDays", result.WorkDuration.TotalDays),
		zap.Float64("severancePay", calc.doc.Result.SeverancePay),
		zap.Float64("noticePay", calc.doc.Result.NoticePay),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", time.Since(start)),
	)

	return calc, true
}

type rulesResponse struct {
	Language    string                 `json:"language"`
	CapSchedule []capPeriod            `json:"capSchedule"`
	NoticeTiers []severance.NoticeTier `json:"noticeTiers"`
	Reasons     []reasonInfo           `json:"reasons"`
}

type capPeriod struct {
	Start  string  `json:"start"`
	End    string  `json:"end,omitempty"`
	Amount float64 `json:"amount"`
}

type reasonInfo struct {
	Code              string `json:"code"`
	Label             string `json:"label"`
	SeveranceEligible bool   `json:"severanceEligible"`
	NoticeEligible    bool   `json:"noticeEligible"`
}

func (h *handler) handleRules(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleRules"

	schedule, err := h.rules.CapSchedule()
	if err != nil {
		h.respondError(w, r, http.StatusInternalServerError, errorResponse{Error: err.Error(), Code: "rules_invalid"}, op)
		return
	}
	tiers, err := h.rules.NoticeTiers()
	if err != nil {
		h.respondError(w, r, http.StatusInternalServerError, errorResponse{Error: err.Error(), Code: "rules_invalid"}, op)
		return
	}

	lang := requestLanguage(r, "")
	resp := rulesResponse{
		Language:    lang,
		NoticeTiers: tiers,
	}
	for _, period := range schedule.Sorted() {
		p := capPeriod{Start: period.Start.Format(constants.DateLayout), Amount: period.Amount}
		if !period.End.IsZero() {
			p.End = period.End.Format(constants.DateLayout)
		}
		resp.CapSchedule = append(resp.CapSchedule, p)
	}
	for _, reason := range severance.Reasons() {
		resp.Reasons = append(resp.Reasons, reasonInfo{
			Code:              reason.String(),
			Label:             output.ReasonLabel(reason, lang),
			SeveranceEligible: reason.SeveranceEligible(),
			NoticeEligible:    reason.NoticeEligible(),
		})
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// requestLanguage picks the response language from the body, the lang query
// parameter or the Accept-Language header, in that order.
func requestLanguage(r *http.Request, bodyLang string) string {
	lang := strings.TrimSpace(bodyLang)
	if lang == "" {
		lang = r.URL.Query().Get("lang")
	}
	if lang == "" {
		lang = r.Header.Get("Accept-Language")
	}
	return format.Language(lang).String()
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, resp errorResponse, op string) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("requestId", middleware.GetReqID(r.Context())),
		zap.Int("status", status),
		zap.String("error", resp.Error),
		zap.String("code", resp.Code),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields...)
	} else {
		h.logger.Info("request rejected", fields...)
	}

	h.writeJSON(w, status, resp)
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
